package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scholium/arxiv"
	"github.com/scholium/arxiv/internal/clipboard"
)

var (
	citeFormat string
	citeCopy   bool
)

func init() {
	citeCmd.Flags().StringVar(&citeFormat, "format", "", "Citation format: bibtex, apa, mla, or ris")
	citeCmd.Flags().BoolVar(&citeCopy, "copy", false, "Copy the citation to the system clipboard")
	rootCmd.AddCommand(citeCmd)
}

var citeCmd = &cobra.Command{
	Use:   "cite ID",
	Short: "Format a citation for a paper",
	Long: `Fetch a paper by arXiv identifier and print a formatted citation.

The default format comes from the config file (bibtex unless
overridden).

Examples:
  arxiv-browse cite 2301.00001
  arxiv-browse cite --format apa 2301.00001
  arxiv-browse cite --format mla --copy 2301.00001`,
	Args: cobra.ExactArgs(1),
	RunE: runCite,
}

func runCite(cmd *cobra.Command, args []string) error {
	format := citeFormat
	if format == "" {
		format = cfg.Format
	}

	p, err := newClient().Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	citation, err := arxiv.Cite(p, arxiv.Format(format))
	if err != nil {
		return err
	}

	fmt.Println(citation)
	if citeCopy {
		if err := clipboard.Copy(citation); err != nil {
			return fmt.Errorf("copying citation: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard")
	}
	return nil
}
