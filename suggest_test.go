package arxiv

import (
	"testing"
)

func TestCategorySuggesterKnown(t *testing.T) {
	s := NewCategorySuggester()

	if !s.Known("cs.AI") {
		t.Error("cs.AI should be known")
	}
	if !s.Known("cs.ai") {
		t.Error("lookup should ignore case")
	}
	if !s.Known(" quant-ph ") {
		t.Error("lookup should ignore surrounding whitespace")
	}
	if s.Known("cs.ZZ") {
		t.Error("cs.ZZ should be unknown")
	}
}

func TestCategorySuggesterCanonical(t *testing.T) {
	s := NewCategorySuggester()

	if got := s.Canonical("cs.ai"); got != "cs.AI" {
		t.Errorf("Canonical(cs.ai) = %q", got)
	}
	if got := s.Canonical("made.up"); got != "made.up" {
		t.Errorf("unknown category should pass through, got %q", got)
	}
}

func TestCategorySuggesterSuggest(t *testing.T) {
	s := NewCategorySuggester()

	// An exact (lowercased) term suggests its canonical form.
	got := s.Suggest("stat.ml")
	if len(got) == 0 || got[0] != "stat.ML" {
		t.Errorf("Suggest(stat.ml) = %v", got)
	}

	// Suggestions are always in canonical casing and never duplicated.
	seen := make(map[string]bool)
	for _, c := range s.Suggest("cs.lg") {
		if seen[c] {
			t.Errorf("duplicate suggestion %q", c)
		}
		seen[c] = true
		if !s.Known(c) {
			t.Errorf("suggestion %q is not a known category", c)
		}
	}

	if got := s.Suggest("   "); got != nil {
		t.Errorf("Suggest(blank) = %v, want nil", got)
	}
}
