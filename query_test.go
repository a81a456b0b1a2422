package arxiv

import (
	"testing"
)

func TestQueryDefaults(t *testing.T) {
	q := Query{Search: "quantum computing"}.WithDefaults()
	if q.MaxResults != 50 {
		t.Errorf("MaxResults = %d", q.MaxResults)
	}
	if q.SortBy != "submittedDate" {
		t.Errorf("SortBy = %q", q.SortBy)
	}
	if q.SortOrder != "descending" {
		t.Errorf("SortOrder = %q", q.SortOrder)
	}
	if q.Start != 0 {
		t.Errorf("Start = %d", q.Start)
	}
}

func TestQueryValues(t *testing.T) {
	v := Query{Category: "cs.AI", Start: 20, MaxResults: 10}.Values()
	if got := v.Get("search_query"); got != "cat:cs.AI" {
		t.Errorf("search_query = %q", got)
	}
	if got := v.Get("start"); got != "20" {
		t.Errorf("start = %q", got)
	}
	if got := v.Get("max_results"); got != "10" {
		t.Errorf("max_results = %q", got)
	}

	v = Query{Search: "neural nets"}.Values()
	if got := v.Get("search_query"); got != "all:neural nets" {
		t.Errorf("search_query = %q", got)
	}

	v = Query{Category: "cs.AI", Search: "transformers"}.Values()
	if got := v.Get("search_query"); got != "cat:cs.AI AND all:transformers" {
		t.Errorf("search_query = %q", got)
	}
}

func TestQueryKeyCanonical(t *testing.T) {
	// A query with explicit defaults and one relying on implicit defaults
	// describe the same search and must share a cache key.
	a := Query{Category: "cs.AI"}
	b := Query{Category: "cs.AI", MaxResults: 50, SortBy: "submittedDate", SortOrder: "descending"}
	if a.Key() != b.Key() {
		t.Errorf("keys differ:\n%s\n%s", a.Key(), b.Key())
	}

	c := Query{Category: "cs.AI", Start: 50}
	if a.Key() == c.Key() {
		t.Error("different pagination must produce different keys")
	}
}
