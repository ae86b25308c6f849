package matching

import "strings"

const (
	// exactNameStrength is assigned when the query literally contains the
	// domain's name; it dominates any term-based strength.
	exactNameStrength = 1.0

	baseTermStrength  = 0.3
	termDensityWeight = 0.6
	maxTermStrength   = 0.9

	// Multi-word matched terms are more specific than single words and earn
	// a small bonus, capped across all phrase matches for a domain.
	phraseBonus    = 0.05
	maxPhraseBonus = 0.1
)

// Classify determines which legal domains a query plausibly concerns and how
// strongly, as a mapping from domain name to a strength in [0, 1]. Only
// matched domains appear. The call is deterministic and side-effect free; an
// empty or unrecognized query yields an empty mapping.
func (e *Engine) Classify(query string) map[string]float64 {
	scores := make(map[string]float64)

	lowerQuery := strings.ToLower(query)
	if strings.TrimSpace(lowerQuery) == "" {
		return scores
	}

	for _, name := range e.registry.Names() {
		terms, _ := e.registry.Terms(name)
		if strength, matched := matchDomain(lowerQuery, name, terms); matched {
			scores[name] = strength
		}
	}

	return scores
}

// matchDomain computes the match strength of one domain against a
// lower-cased query. A query may legitimately match several domains; callers
// must not deduplicate across domains.
func matchDomain(lowerQuery, name string, terms []string) (float64, bool) {
	if strings.Contains(lowerQuery, strings.ToLower(name)) {
		return exactNameStrength, true
	}

	var matched []string
	for _, term := range terms {
		if strings.Contains(lowerQuery, strings.ToLower(term)) {
			matched = append(matched, term)
		}
	}
	if len(matched) == 0 {
		return 0, false
	}

	strength := baseTermStrength + float64(len(matched))/float64(len(terms))*termDensityWeight
	if strength > maxTermStrength {
		strength = maxTermStrength
	}

	bonus := 0.0
	for _, term := range matched {
		if len(strings.Fields(term)) > 1 {
			bonus += phraseBonus
		}
	}
	if bonus > maxPhraseBonus {
		bonus = maxPhraseBonus
	}

	return strength + bonus, true
}
