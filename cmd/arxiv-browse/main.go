// Package main provides the arxiv-browse CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", renderError(err))
		os.Exit(1)
	}
}
