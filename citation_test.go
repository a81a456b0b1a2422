package arxiv

import (
	"strings"
	"testing"
	"time"
)

func testPaper(authors ...string) *Paper {
	as := make([]Author, len(authors))
	for i, a := range authors {
		as[i] = Author{Name: a}
	}
	return &Paper{
		ID:              "2301.00001",
		Title:           "A Study of Things",
		Summary:         "We study things.",
		Authors:         as,
		Categories:      []string{"cs.AI", "cs.LG"},
		PrimaryCategory: "cs.AI",
		Published:       time.Date(2023, 1, 1, 18, 0, 0, 0, time.UTC),
		Updated:         time.Date(2023, 2, 1, 9, 30, 0, 0, time.UTC),
		Links: Links{
			Abs: "https://arxiv.org/abs/2301.00001",
			PDF: "https://arxiv.org/pdf/2301.00001",
		},
	}
}

func TestBibTeXKey(t *testing.T) {
	p := testPaper("Jane Doe", "John Smith")
	if got := BibTeXKey(p); got != "doe2023230100001" {
		t.Errorf("key = %q", got)
	}

	if got := BibTeXKey(testPaper()); got != "unknown2023230100001" {
		t.Errorf("authorless key = %q", got)
	}
}

func TestCiteBibTeX(t *testing.T) {
	p := testPaper("Jane Doe", "John Smith")
	got, err := Cite(p, FormatBibTeX)
	if err != nil {
		t.Fatalf("Cite: %v", err)
	}

	if !strings.HasPrefix(got, "@article{doe2023230100001,\n") {
		t.Errorf("unexpected block start:\n%s", got)
	}
	for _, want := range []string{
		"author = {Jane Doe and John Smith}",
		"year = {2023}",
		"eprint = {2301.00001}",
		"primaryClass = {cs.AI}",
		"url = {https://arxiv.org/abs/2301.00001}",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestCiteBibTeXStripsBraces(t *testing.T) {
	p := testPaper("Jane Doe")
	p.Title = "On {Braced} Titles {and} Things"
	got, _ := Cite(p, FormatBibTeX)
	if !strings.Contains(got, "title = {On Braced Titles and Things}") {
		t.Errorf("braces not stripped:\n%s", got)
	}
}

func TestCiteAPAAuthorBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		authors []string
		want    string
	}{
		{"zero", nil, "Unknown"},
		{"one", []string{"Jane Doe"}, "Jane Doe"},
		{"two", []string{"Jane Doe", "John Smith"}, "Jane Doe & John Smith"},
		{"three", []string{"Jane Doe", "John Smith", "Ann Lee"}, "Jane Doe, et al."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cite(testPaper(tt.authors...), FormatAPA)
			if err != nil {
				t.Fatalf("Cite: %v", err)
			}
			wantFull := tt.want + " (2023). A Study of Things. arXiv:2301.00001. https://arxiv.org/abs/2301.00001"
			if got != wantFull {
				t.Errorf("got  %q\nwant %q", got, wantFull)
			}
		})
	}
}

func TestCiteMLA(t *testing.T) {
	got, err := Cite(testPaper("Jane Doe", "John Smith"), FormatMLA)
	if err != nil {
		t.Fatalf("Cite: %v", err)
	}
	want := `Doe, Jane, et al. "A Study of Things." arXiv:2301.00001 (2023), https://arxiv.org/abs/2301.00001`
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}

	got, _ = Cite(testPaper("Jane van der Berg"), FormatMLA)
	if !strings.HasPrefix(got, "Berg, Jane van der.") {
		t.Errorf("surname should be the final token: %q", got)
	}
	if strings.Contains(got, "et al") {
		t.Errorf("single author should not gain et al.: %q", got)
	}

	got, _ = Cite(testPaper(), FormatMLA)
	if !strings.HasPrefix(got, "Unknown.") {
		t.Errorf("authorless MLA = %q", got)
	}
}

func TestCiteRIS(t *testing.T) {
	got, err := Cite(testPaper("Jane Doe"), FormatRIS)
	if err != nil {
		t.Fatalf("Cite: %v", err)
	}
	for _, want := range []string{
		"TY  - JOUR\n",
		"AU  - Jane Doe\n",
		"PY  - 2023\n",
		"M3  - arXiv:2301.00001\n",
		"ER  - \n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestCiteYearIsUTC(t *testing.T) {
	p := testPaper("Jane Doe")
	// 2023-12-31T23:30:00-05:00 is already 2024 in UTC.
	loc := time.FixedZone("EST", -5*3600)
	p.Published = time.Date(2023, 12, 31, 23, 30, 0, 0, loc)
	got, _ := Cite(p, FormatAPA)
	if !strings.Contains(got, "(2024)") {
		t.Errorf("expected UTC year 2024, got %q", got)
	}
}

func TestCiteUnknownFormat(t *testing.T) {
	if _, err := Cite(testPaper("Jane Doe"), Format("endnote")); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestCiteDeterministic(t *testing.T) {
	p := testPaper("Jane Doe")
	for _, f := range Formats {
		a, err := Cite(p, f)
		if err != nil {
			t.Fatalf("Cite(%s): %v", f, err)
		}
		b, _ := Cite(p, f)
		if a != b {
			t.Errorf("Cite(%s) not deterministic", f)
		}
	}
}
