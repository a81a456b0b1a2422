package arxiv

import (
	"time"
)

// Author is a single paper author.
type Author struct {
	// Name is the author's full name as given in the feed.
	Name string

	// Affiliation is the author's institution, if the feed provided one.
	Affiliation string
}

// Links holds the resolved URLs for a paper.
type Links struct {
	// Abs is the abstract page URL. Always populated.
	Abs string

	// PDF is the PDF URL. When the source feed carries no PDF link,
	// NormalizeEntry derives one from the identifier.
	PDF string
}

// Paper is the canonical record for one arXiv paper. Papers are built by
// NormalizeEntry and never mutated afterwards; a refresh produces a brand
// new Paper.
type Paper struct {
	// ID is the bare arXiv identifier with any version suffix stripped
	// (e.g. "2301.00001" or "hep-th/9901001").
	ID string

	// Title, whitespace-collapsed and trimmed.
	Title string

	// Summary (abstract), whitespace-collapsed and trimmed.
	Summary string

	// Authors in source order. May be empty.
	Authors []Author

	// Categories, deduplicated, in first-seen order. Never empty.
	Categories []string

	// PrimaryCategory is always a member of Categories.
	PrimaryCategory string

	// Published is when the paper was first submitted.
	Published time.Time

	// Updated is when the paper was last updated. Never precedes Published.
	Updated time.Time

	// Links to the abstract page and PDF.
	Links Links

	// DOI is the Digital Object Identifier, if available.
	DOI string

	// Comment from the submitter (e.g. "10 pages, 3 figures").
	Comment string

	// JournalRef is the journal reference if published.
	JournalRef string
}

// AbstractURL returns the canonical abstract page URL for an identifier.
func AbstractURL(id string) string {
	return "https://arxiv.org/abs/" + id
}

// PDFURL returns the canonical PDF URL for an identifier.
func PDFURL(id string) string {
	return "https://arxiv.org/pdf/" + id
}

// HasCategory reports whether cat is a member of the paper's category set.
func (p *Paper) HasCategory(cat string) bool {
	for _, c := range p.Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Year returns the calendar year of the paper's submission in UTC.
func (p *Paper) Year() int {
	return p.Published.UTC().Year()
}
