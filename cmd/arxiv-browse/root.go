package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scholium/arxiv"
	"github.com/scholium/arxiv/internal/config"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "arxiv-browse",
	Short: "Browse and cite arXiv papers",
	Long: `arxiv-browse searches the arXiv API, prints paper metadata, and
formats citations.

Results are cached in memory for a short time, so repeating a query
does not hit the API again. Configuration is read from an optional
YAML file (see --config).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadOrDefault(configPath)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")
}

// newLoader builds a loader backed by a rate-limited API client and an
// in-memory query cache, both sized from the active config.
func newLoader() *arxiv.Loader {
	client := arxiv.NewClient(
		arxiv.WithHTTPClient(&http.Client{Timeout: cfg.TimeoutDuration()}),
	)
	return arxiv.NewLoader(client, arxiv.NewQueryCache(cfg.CacheTTLDuration()))
}

func newClient() *arxiv.Client {
	return arxiv.NewClient(
		arxiv.WithHTTPClient(&http.Client{Timeout: cfg.TimeoutDuration()}),
	)
}

// renderError maps library errors onto user-facing messages.
func renderError(err error) string {
	var perr *arxiv.ParseError
	var verr *arxiv.ValidationError
	switch {
	case errors.As(err, &perr):
		return fmt.Sprintf("feed unreadable: %v", perr.Err)
	case arxiv.IsNotFound(err):
		return err.Error()
	case arxiv.IsNetwork(err):
		return fmt.Sprintf("network failure: %v", err)
	case errors.As(err, &verr):
		return fmt.Sprintf("bad entry: %v", verr)
	default:
		return err.Error()
	}
}

// printPaper writes a short human-readable summary of a paper.
func printPaper(p *arxiv.Paper) {
	fmt.Printf("%s  %s\n", p.ID, p.Title)
	if len(p.Authors) > 0 {
		names := make([]string, len(p.Authors))
		for i, a := range p.Authors {
			names[i] = a.Name
		}
		fmt.Printf("    %s\n", strings.Join(names, ", "))
	}
	fmt.Printf("    %s  [%s]\n", p.Published.Format("2006-01-02"), p.PrimaryCategory)
	fmt.Printf("    %s\n", p.Links.Abs)
}

// printPaperDetail writes the full metadata view for a single paper.
func printPaperDetail(p *arxiv.Paper) {
	fmt.Printf("arXiv:%s\n", p.ID)
	fmt.Printf("Title:      %s\n", p.Title)
	for i, a := range p.Authors {
		label := "Authors:"
		if i > 0 {
			label = ""
		}
		if a.Affiliation != "" {
			fmt.Printf("%-11s %s (%s)\n", label, a.Name, a.Affiliation)
		} else {
			fmt.Printf("%-11s %s\n", label, a.Name)
		}
	}
	fmt.Printf("Categories: %s\n", strings.Join(p.Categories, ", "))
	fmt.Printf("Published:  %s\n", p.Published.Format("2006-01-02"))
	fmt.Printf("Updated:    %s\n", p.Updated.Format("2006-01-02"))
	if p.DOI != "" {
		fmt.Printf("DOI:        %s\n", p.DOI)
	}
	if p.JournalRef != "" {
		fmt.Printf("Journal:    %s\n", p.JournalRef)
	}
	if p.Comment != "" {
		fmt.Printf("Comment:    %s\n", p.Comment)
	}
	fmt.Printf("Abstract:   %s\n", p.Links.Abs)
	fmt.Printf("PDF:        %s\n", p.Links.PDF)
	if p.Summary != "" {
		fmt.Printf("\n%s\n", p.Summary)
	}
}
