package arxiv

import (
	"encoding/xml"
	"strings"
)

// arXivNS is the namespace arXiv uses for its Atom feed extensions
// (primary_category, doi, comment, journal_ref).
const arXivNS = "http://arxiv.org/schemas/atom"

// RawEntry holds the unvalidated text fragments of one feed entry. It is
// produced by ParseFeed and consumed once by NormalizeEntry; no semantic
// interpretation beyond text extraction happens at this layer.
type RawEntry struct {
	ID              string
	Title           string
	Summary         string
	Published       string
	Updated         string
	Authors         []RawAuthor
	Categories      []string
	Links           []RawLink
	PrimaryCategory string
	DOI             string
	Comment         string
	JournalRef      string
}

// RawAuthor mirrors one author element.
type RawAuthor struct {
	Name        string
	Affiliation string
}

// RawLink mirrors one link element's attributes.
type RawLink struct {
	Href  string
	Rel   string
	Title string
}

// AbsLink returns the href of the abstract-page link: the link whose
// rel is "alternate" and which carries no title attribute. Empty if the
// entry has no such link.
func (e RawEntry) AbsLink() string {
	for _, l := range e.Links {
		if l.Rel == "alternate" && l.Title == "" {
			return l.Href
		}
	}
	return ""
}

// PDFLink returns the href of the link whose title attribute is "pdf",
// or empty if the entry has none.
func (e RawEntry) PDFLink() string {
	for _, l := range e.Links {
		if l.Title == "pdf" {
			return l.Href
		}
	}
	return ""
}

// Atom feed structures for the arXiv API.

type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID         string         `xml:"id"`
	Title      string         `xml:"title"`
	Summary    string         `xml:"summary"`
	Published  string         `xml:"published"`
	Updated    string         `xml:"updated"`
	Authors    []atomAuthor   `xml:"author"`
	Categories []atomCategory `xml:"category"`
	Links      []atomLink     `xml:"link"`

	// Extra collects the arXiv extension elements (primary_category, doi,
	// comment, journal_ref) so ext() can resolve them by explicit lookup:
	// the namespaced name first, the bare name as fallback.
	Extra []xmlElement `xml:",any"`
}

type xmlElement struct {
	XMLName xml.Name
	Term    string `xml:"term,attr"`
	Content string `xml:",chardata"`
}

type atomAuthor struct {
	Name        string `xml:"name"`
	Affiliation string `xml:"affiliation"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

type atomLink struct {
	Href  string `xml:"href,attr"`
	Rel   string `xml:"rel,attr"`
	Title string `xml:"title,attr"`
}

// ext resolves an extension element by local name: the arXiv-namespaced
// element wins, a bare element of the same name is the fallback.
func (e atomEntry) ext(local string) xmlElement {
	for _, x := range e.Extra {
		if x.XMLName.Space == arXivNS && x.XMLName.Local == local {
			return x
		}
	}
	for _, x := range e.Extra {
		if x.XMLName.Local == local {
			return x
		}
	}
	return xmlElement{}
}

func (e atomEntry) extText(local string) string {
	return strings.TrimSpace(e.ext(local).Content)
}

// ParseFeed parses raw Atom feed XML into an ordered sequence of raw
// entries. An empty feed is valid and yields an empty slice. Malformed
// XML fails with *ParseError.
//
// Text content is extracted as-is; whitespace collapsing is deferred to
// NormalizeEntry.
func ParseFeed(data []byte) ([]RawEntry, error) {
	var feed atomFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, &ParseError{Err: err}
	}

	entries := make([]RawEntry, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		raw := RawEntry{
			ID:              e.ID,
			Title:           e.Title,
			Summary:         e.Summary,
			Published:       e.Published,
			Updated:         e.Updated,
			PrimaryCategory: e.ext("primary_category").Term,
			DOI:             e.extText("doi"),
			Comment:         e.extText("comment"),
			JournalRef:      e.extText("journal_ref"),
		}
		for _, a := range e.Authors {
			raw.Authors = append(raw.Authors, RawAuthor{
				Name:        a.Name,
				Affiliation: a.Affiliation,
			})
		}
		for _, c := range e.Categories {
			raw.Categories = append(raw.Categories, c.Term)
		}
		for _, l := range e.Links {
			raw.Links = append(raw.Links, RawLink{
				Href:  l.Href,
				Rel:   l.Rel,
				Title: l.Title,
			})
		}
		entries = append(entries, raw)
	}

	return entries, nil
}
