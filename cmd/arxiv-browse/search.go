package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scholium/arxiv"
)

var (
	searchCategory string
	searchMax      int
	searchStart    int
)

func init() {
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "Restrict results to an arXiv category (e.g. cs.LG)")
	searchCmd.Flags().IntVar(&searchMax, "max", 0, "Maximum results to return")
	searchCmd.Flags().IntVar(&searchStart, "start", 0, "Result offset for paging")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search TERMS...",
	Short: "Search arXiv for papers",
	Long: `Search arXiv for papers matching the given terms.

Examples:
  arxiv-browse search transformer attention
  arxiv-browse search --category cs.LG diffusion models
  arxiv-browse search --max 10 --start 10 quantum error correction`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	q := arxiv.Query{
		Search:     strings.Join(args, " "),
		Category:   searchCategory,
		Start:      searchStart,
		MaxResults: searchMax,
	}
	if q.MaxResults == 0 {
		q.MaxResults = cfg.MaxResults
	}
	q.SortBy = cfg.SortBy
	q.SortOrder = cfg.SortOrder

	papers, err := newLoader().Load(cmd.Context(), q)
	if err != nil {
		return err
	}
	if len(papers) == 0 {
		fmt.Println("No results")
		return nil
	}
	for _, p := range papers {
		printPaper(p)
	}
	return nil
}
