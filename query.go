package arxiv

import (
	"fmt"
	"net/url"
)

// Query defaults applied by WithDefaults.
const (
	DefaultMaxResults = 50
	DefaultSortBy     = "submittedDate"
	DefaultSortOrder  = "descending"
)

// Query describes one arXiv API search. Category and Search may be
// combined; at least one should be set for a useful query.
type Query struct {
	// Category restricts results to one arXiv category (e.g. "cs.AI").
	Category string

	// Search is a free-text query over all fields.
	Search string

	// Start is the pagination offset.
	Start int

	// MaxResults is the page size. Zero means DefaultMaxResults.
	MaxResults int

	// SortBy is one of "submittedDate", "lastUpdatedDate", "relevance".
	// Empty means DefaultSortBy.
	SortBy string

	// SortOrder is "ascending" or "descending". Empty means
	// DefaultSortOrder.
	SortOrder string
}

// WithDefaults returns a copy of q with zero-valued fields replaced by
// the package defaults.
func (q Query) WithDefaults() Query {
	if q.MaxResults <= 0 {
		q.MaxResults = DefaultMaxResults
	}
	if q.SortBy == "" {
		q.SortBy = DefaultSortBy
	}
	if q.SortOrder == "" {
		q.SortOrder = DefaultSortOrder
	}
	if q.Start < 0 {
		q.Start = 0
	}
	return q
}

// searchQuery builds the arXiv search_query expression.
func (q Query) searchQuery() string {
	switch {
	case q.Category != "" && q.Search != "":
		return fmt.Sprintf("cat:%s AND all:%s", q.Category, q.Search)
	case q.Category != "":
		return "cat:" + q.Category
	default:
		return "all:" + q.Search
	}
}

// Values returns the query as arXiv API request parameters, with defaults
// applied.
func (q Query) Values() url.Values {
	q = q.WithDefaults()
	v := url.Values{}
	v.Set("search_query", q.searchQuery())
	v.Set("start", fmt.Sprintf("%d", q.Start))
	v.Set("max_results", fmt.Sprintf("%d", q.MaxResults))
	v.Set("sortBy", q.SortBy)
	v.Set("sortOrder", q.SortOrder)
	return v
}

// Encode returns the URL-encoded query string.
func (q Query) Encode() string {
	return q.Values().Encode()
}

// Key returns a canonical cache key for the query. Values().Encode sorts
// parameters by name, so two queries describing the same search always
// produce the same key regardless of how they were constructed.
func (q Query) Key() string {
	return q.Encode()
}
