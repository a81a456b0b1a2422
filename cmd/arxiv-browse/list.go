package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scholium/arxiv"
)

var listMax int

func init() {
	listCmd.Flags().IntVar(&listMax, "max", 0, "Maximum results to return")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list CATEGORY",
	Short: "List recent papers in a category",
	Long: `List the most recent papers in an arXiv category.

Unknown category names get "did you mean" suggestions.

Examples:
  arxiv-browse list cs.LG
  arxiv-browse list --max 5 math.CO`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	suggester := arxiv.NewCategorySuggester()
	cat := args[0]
	if !suggester.Known(cat) {
		if alts := suggester.Suggest(cat); len(alts) > 0 {
			return fmt.Errorf("unknown category %q (did you mean %s?)", cat, strings.Join(alts, ", "))
		}
		return fmt.Errorf("unknown category %q", cat)
	}

	q := arxiv.Query{
		Category:   suggester.Canonical(cat),
		MaxResults: listMax,
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
