package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scholium/arxiv"
)

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List known arXiv categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range arxiv.CategoryNames {
			fmt.Println(name)
		}
		return nil
	},
}
