package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Show full metadata for a paper",
	Long: `Fetch a single paper by arXiv identifier and print its metadata.

Version suffixes are accepted and stripped (2301.00001v2 and
2301.00001 refer to the same paper).

Examples:
  arxiv-browse get 2301.00001
  arxiv-browse get hep-th/9901001`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	p, err := newClient().Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	printPaperDetail(p)
	return nil
}
