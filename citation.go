package arxiv

import (
	"fmt"
	"strings"
)

// Format selects a citation output format.
type Format string

// Supported citation formats.
const (
	FormatBibTeX Format = "bibtex"
	FormatAPA    Format = "apa"
	FormatMLA    Format = "mla"
	FormatRIS    Format = "ris"
)

// Formats lists the supported citation formats.
var Formats = []Format{FormatBibTeX, FormatAPA, FormatMLA, FormatRIS}

// unknownAuthor substitutes for the author field when a paper has no
// authors; citation rendering never fails on an empty author list.
const unknownAuthor = "Unknown"

// Cite renders a citation for the paper in the requested format. It is
// pure and deterministic: the only time involved is the paper's own
// Published field. An unrecognized format is an error.
func Cite(p *Paper, format Format) (string, error) {
	switch format {
	case FormatBibTeX:
		return citeBibTeX(p), nil
	case FormatAPA:
		return citeAPA(p), nil
	case FormatMLA:
		return citeMLA(p), nil
	case FormatRIS:
		return citeRIS(p), nil
	default:
		return "", fmt.Errorf("unsupported citation format %q", format)
	}
}

// BibTeXKey returns the citation key: the first author's surname
// (lowercased), the publication year, and the paper id with all
// non-alphanumeric characters removed. Keys are not globally unique;
// two papers by the same first author in the same year can collide.
func BibTeXKey(p *Paper) string {
	surname := unknownAuthor
	if len(p.Authors) > 0 {
		surname = lastNameOf(p.Authors[0].Name)
	}
	return strings.ToLower(surname) + fmt.Sprintf("%d", p.Year()) + sanitizeKeyFragment(p.ID)
}

func citeBibTeX(p *Paper) string {
	// Literal braces would break the brace-delimited fields.
	title := strings.NewReplacer("{", "", "}", "").Replace(p.Title)

	author := unknownAuthor
	if len(p.Authors) > 0 {
		names := make([]string, len(p.Authors))
		for i, a := range p.Authors {
			names[i] = a.Name
		}
		author = strings.Join(names, " and ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@article{%s,\n", BibTeXKey(p))
	fmt.Fprintf(&b, "  title = {%s},\n", title)
	fmt.Fprintf(&b, "  author = {%s},\n", author)
	fmt.Fprintf(&b, "  year = {%d},\n", p.Year())
	fmt.Fprintf(&b, "  eprint = {%s},\n", p.ID)
	fmt.Fprintf(&b, "  archivePrefix = {arXiv},\n")
	fmt.Fprintf(&b, "  primaryClass = {%s},\n", p.PrimaryCategory)
	if p.DOI != "" {
		fmt.Fprintf(&b, "  doi = {%s},\n", p.DOI)
	}
	if p.JournalRef != "" {
		fmt.Fprintf(&b, "  journal = {%s},\n", p.JournalRef)
	}
	fmt.Fprintf(&b, "  url = {%s},\n", p.Links.Abs)
	b.WriteString("}\n")
	return b.String()
}

// citeAPA renders a single-line APA-style citation ending with the
// abstract URL.
func citeAPA(p *Paper) string {
	var author string
	switch len(p.Authors) {
	case 0:
		author = unknownAuthor
	case 1:
		author = p.Authors[0].Name
	case 2:
		author = p.Authors[0].Name + " & " + p.Authors[1].Name
	default:
		author = p.Authors[0].Name + ", et al."
	}
	return fmt.Sprintf("%s (%d). %s. arXiv:%s. %s", author, p.Year(), p.Title, p.ID, p.Links.Abs)
}

// citeMLA renders a single-line MLA-style citation ending with the
// abstract URL. The first author appears surname-first; additional
// authors collapse to "et al.".
func citeMLA(p *Paper) string {
	author := unknownAuthor
	if len(p.Authors) > 0 {
		author = invertName(p.Authors[0].Name)
		if len(p.Authors) > 1 {
			author += ", et al."
		}
	}
	return fmt.Sprintf("%s. \"%s.\" arXiv:%s (%d), %s", author, p.Title, p.ID, p.Year(), p.Links.Abs)
}

// citeRIS renders the paper as an RIS record.
func citeRIS(p *Paper) string {
	var b strings.Builder
	b.WriteString("TY  - JOUR\n")
	fmt.Fprintf(&b, "TI  - %s\n", p.Title)
	if len(p.Authors) == 0 {
		fmt.Fprintf(&b, "AU  - %s\n", unknownAuthor)
	}
	for _, a := range p.Authors {
		fmt.Fprintf(&b, "AU  - %s\n", a.Name)
	}
	fmt.Fprintf(&b, "PY  - %d\n", p.Year())
	if p.Summary != "" {
		fmt.Fprintf(&b, "AB  - %s\n", p.Summary)
	}
	if p.DOI != "" {
		fmt.Fprintf(&b, "DO  - %s\n", p.DOI)
	}
	if p.JournalRef != "" {
		fmt.Fprintf(&b, "JO  - %s\n", p.JournalRef)
	}
	fmt.Fprintf(&b, "KW  - %s\n", p.PrimaryCategory)
	fmt.Fprintf(&b, "UR  - %s\n", p.Links.Abs)
	fmt.Fprintf(&b, "M3  - arXiv:%s\n", p.ID)
	b.WriteString("ER  - \n")
	return b.String()
}

// lastNameOf treats the final whitespace-separated token as the surname.
func lastNameOf(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return unknownAuthor
	}
	return fields[len(fields)-1]
}

// invertName renders "First ... Last" as "Last, First ...". A single-token
// name is returned unchanged.
func invertName(name string) string {
	fields := strings.Fields(name)
	if len(fields) < 2 {
		return name
	}
	last := fields[len(fields)-1]
	return last + ", " + strings.Join(fields[:len(fields)-1], " ")
}

func sanitizeKeyFragment(id string) string {
	var b strings.Builder
	for _, r := range id {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
