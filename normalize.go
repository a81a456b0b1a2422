package arxiv

import (
	"regexp"
	"strings"
	"time"
)

var (
	whitespaceRe    = regexp.MustCompile(`\s+`)
	versionSuffixRe = regexp.MustCompile(`v\d+$`)
)

// CanonicalID extracts the bare arXiv identifier from a feed id URL
// (e.g. "http://arxiv.org/abs/2301.00001v2" -> "2301.00001"). The version
// suffix is always stripped: the canonical identifier names the paper, not
// a revision, and the same policy applies wherever the id is used as a
// lookup key, a route parameter, or a citation-key fragment.
func CanonicalID(raw string) string {
	id := strings.TrimSpace(raw)
	if idx := strings.LastIndex(id, "/abs/"); idx >= 0 {
		id = id[idx+len("/abs/"):]
	}
	return versionSuffixRe.ReplaceAllString(id, "")
}

// collapseWhitespace collapses any run of whitespace (including newlines)
// to a single space and trims the result.
func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// NormalizeEntry converts a raw feed entry into a canonical Paper.
//
// It fails with *ValidationError if the id or title text is absent, the
// normalized category set is empty, a date cannot be parsed, or updated
// precedes published. Everything else degrades gracefully: an author node
// without a name is dropped, missing links are derived from the canonical
// identifier, and the optional doi/comment/journal-ref fields stay empty.
func NormalizeEntry(e RawEntry) (*Paper, error) {
	rawID := strings.TrimSpace(e.ID)
	if rawID == "" {
		return nil, &ValidationError{Field: "id", Reason: "missing"}
	}
	id := CanonicalID(rawID)

	title := collapseWhitespace(e.Title)
	if title == "" {
		return nil, &ValidationError{EntryID: rawID, Field: "title", Reason: "missing"}
	}

	var authors []Author
	for _, a := range e.Authors {
		name := collapseWhitespace(a.Name)
		if name == "" {
			// A single malformed author node never fails the entry.
			continue
		}
		authors = append(authors, Author{
			Name:        name,
			Affiliation: collapseWhitespace(a.Affiliation),
		})
	}

	categories := normalizeCategories(e.Categories)
	if len(categories) == 0 {
		return nil, &ValidationError{EntryID: rawID, Field: "categories", Reason: "empty after normalization"}
	}

	primary := strings.TrimSpace(e.PrimaryCategory)
	if primary == "" || !contains(categories, primary) {
		primary = categories[0]
	}

	published, err := time.Parse(time.RFC3339, strings.TrimSpace(e.Published))
	if err != nil {
		return nil, &ValidationError{EntryID: rawID, Field: "published", Reason: "unparseable timestamp"}
	}
	updated, err := time.Parse(time.RFC3339, strings.TrimSpace(e.Updated))
	if err != nil {
		return nil, &ValidationError{EntryID: rawID, Field: "updated", Reason: "unparseable timestamp"}
	}
	if updated.Before(published) {
		return nil, &ValidationError{EntryID: rawID, Field: "updated", Reason: "precedes published"}
	}

	return &Paper{
		ID:              id,
		Title:           title,
		Summary:         collapseWhitespace(e.Summary),
		Authors:         authors,
		Categories:      categories,
		PrimaryCategory: primary,
		Published:       published,
		Updated:         updated,
		Links:           deriveLinks(e, rawID, id),
		DOI:             strings.TrimSpace(e.DOI),
		Comment:         collapseWhitespace(e.Comment),
		JournalRef:      collapseWhitespace(e.JournalRef),
	}, nil
}

// NormalizeAll converts entries in source order, skipping any entry that
// fails validation. The returned errors hold one *ValidationError per
// skipped entry; one bad entry never blocks the rest of the feed.
func NormalizeAll(entries []RawEntry) ([]*Paper, []error) {
	papers := make([]*Paper, 0, len(entries))
	var errs []error
	for _, e := range entries {
		p, err := NormalizeEntry(e)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		papers = append(papers, p)
	}
	return papers, errs
}

func normalizeCategories(terms []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// deriveLinks resolves the pdf/abs link pair. Explicit feed links win;
// otherwise the abstract link falls back to the source id URL and the PDF
// link is derived from the canonical identifier, so every Paper has a
// usable abs link even when the source omitted one.
func deriveLinks(e RawEntry, rawID, id string) Links {
	links := Links{
		Abs: e.AbsLink(),
		PDF: e.PDFLink(),
	}
	if links.Abs == "" {
		if strings.HasPrefix(rawID, "http://") || strings.HasPrefix(rawID, "https://") {
			links.Abs = rawID
		} else {
			links.Abs = AbstractURL(id)
		}
	}
	if links.PDF == "" {
		links.PDF = PDFURL(id)
	}
	return links
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
