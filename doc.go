// Package arxiv ingests the arXiv Atom API feed, normalizes each entry
// into a canonical Paper record, and renders formatted citations.
//
// The pipeline has three pure stages:
//   - ParseFeed turns raw feed XML into an ordered sequence of RawEntry
//     records (structural extraction only).
//   - NormalizeEntry turns a RawEntry into an immutable Paper, applying
//     the identifier, author, category, link and date policies.
//   - Cite maps a Paper plus a citation format to a single string.
//
// A rate-limited Client supplies feed text from the arXiv API, and a
// Loader combines the Client with a TTL QueryCache so repeated queries
// within the cache window skip the fetch+parse+normalize cycle.
//
// Basic usage:
//
//	client := arxiv.NewClient()
//	papers, err := client.Search(ctx, arxiv.Query{Category: "cs.AI"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, p := range papers {
//		s, _ := arxiv.Cite(p, arxiv.FormatBibTeX)
//		fmt.Println(s)
//	}
package arxiv
