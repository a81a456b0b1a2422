package arxiv

import (
	"strings"

	"github.com/sajari/fuzzy"
)

// CategoryNames is the known arXiv category taxonomy used for lookup
// validation and typo suggestions. It covers the active archives; it is
// not required to be exhaustive, unknown-but-valid categories still work
// as query terms.
var CategoryNames = []string{
	"cs.AI", "cs.AR", "cs.CC", "cs.CE", "cs.CG", "cs.CL", "cs.CR",
	"cs.CV", "cs.CY", "cs.DB", "cs.DC", "cs.DL", "cs.DM", "cs.DS",
	"cs.ET", "cs.FL", "cs.GL", "cs.GR", "cs.GT", "cs.HC", "cs.IR",
	"cs.IT", "cs.LG", "cs.LO", "cs.MA", "cs.MM", "cs.MS", "cs.NA",
	"cs.NE", "cs.NI", "cs.OH", "cs.OS", "cs.PF", "cs.PL", "cs.RO",
	"cs.SC", "cs.SD", "cs.SE", "cs.SI", "cs.SY",
	"econ.EM", "econ.GN", "econ.TH",
	"eess.AS", "eess.IV", "eess.SP", "eess.SY",
	"math.AC", "math.AG", "math.AP", "math.AT", "math.CA", "math.CO",
	"math.CT", "math.CV", "math.DG", "math.DS", "math.FA", "math.GM",
	"math.GN", "math.GR", "math.GT", "math.HO", "math.IT", "math.KT",
	"math.LO", "math.MG", "math.MP", "math.NA", "math.NT", "math.OA",
	"math.OC", "math.PR", "math.QA", "math.RA", "math.RT", "math.SG",
	"math.SP", "math.ST",
	"astro-ph.CO", "astro-ph.EP", "astro-ph.GA", "astro-ph.HE",
	"astro-ph.IM", "astro-ph.SR",
	"cond-mat.dis-nn", "cond-mat.mes-hall", "cond-mat.mtrl-sci",
	"cond-mat.other", "cond-mat.quant-gas", "cond-mat.soft",
	"cond-mat.stat-mech", "cond-mat.str-el", "cond-mat.supr-con",
	"gr-qc", "hep-ex", "hep-lat", "hep-ph", "hep-th",
	"math-ph", "nlin.AO", "nlin.CD", "nlin.CG", "nlin.PS", "nlin.SI",
	"nucl-ex", "nucl-th",
	"physics.acc-ph", "physics.ao-ph", "physics.app-ph",
	"physics.atm-clus", "physics.atom-ph", "physics.bio-ph",
	"physics.chem-ph", "physics.class-ph", "physics.comp-ph",
	"physics.data-an", "physics.ed-ph", "physics.flu-dyn",
	"physics.gen-ph", "physics.geo-ph", "physics.hist-ph",
	"physics.ins-det", "physics.med-ph", "physics.optics",
	"physics.plasm-ph", "physics.pop-ph", "physics.soc-ph",
	"physics.space-ph",
	"q-bio.BM", "q-bio.CB", "q-bio.GN", "q-bio.MN", "q-bio.NC",
	"q-bio.OT", "q-bio.PE", "q-bio.QM", "q-bio.SC", "q-bio.TO",
	"q-fin.CP", "q-fin.EC", "q-fin.GN", "q-fin.MF", "q-fin.PM",
	"q-fin.PR", "q-fin.RM", "q-fin.ST", "q-fin.TR",
	"quant-ph",
	"stat.AP", "stat.CO", "stat.ME", "stat.ML", "stat.OT", "stat.TH",
}

// CategorySuggester answers "is this a known category" and "what did the
// user probably mean" for mistyped category names. Matching is
// case-insensitive.
type CategorySuggester struct {
	model     *fuzzy.Model
	canonical map[string]string // lowercased -> canonical casing
}

// NewCategorySuggester builds a suggester trained on CategoryNames.
func NewCategorySuggester() *CategorySuggester {
	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(2)

	canonical := make(map[string]string, len(CategoryNames))
	lowered := make([]string, len(CategoryNames))
	for i, name := range CategoryNames {
		l := strings.ToLower(name)
		canonical[l] = name
		lowered[i] = l
	}
	model.Train(lowered)

	return &CategorySuggester{model: model, canonical: canonical}
}

// Known reports whether cat names a known category, ignoring case.
func (s *CategorySuggester) Known(cat string) bool {
	_, ok := s.canonical[strings.ToLower(strings.TrimSpace(cat))]
	return ok
}

// Canonical returns the canonical casing for a known category, or the
// input unchanged if the category is unknown.
func (s *CategorySuggester) Canonical(cat string) string {
	if c, ok := s.canonical[strings.ToLower(strings.TrimSpace(cat))]; ok {
		return c
	}
	return cat
}

// Suggest returns known categories close to cat, best match first, in
// canonical casing. An empty slice means nothing was close enough.
func (s *CategorySuggester) Suggest(cat string) []string {
	input := strings.ToLower(strings.TrimSpace(cat))
	if input == "" {
		return nil
	}

	var out []string
	seen := make(map[string]bool)
	add := func(l string) {
		if c, ok := s.canonical[l]; ok && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	if best := s.model.SpellCheck(input); best != "" {
		add(best)
	}
	for _, sug := range s.model.Suggestions(input, false) {
		add(sug)
	}
	return out
}
