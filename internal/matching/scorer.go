package matching

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// directReferenceMultiplier applies when a skill name contains the domain
	// name itself: the lawyer labeled their own skill with the domain.
	directReferenceMultiplier = 3.0
	// termReferenceMultiplier applies when a skill name contains one of the
	// domain's terms.
	termReferenceMultiplier = 1.5
)

// domainMatch is the evidence for one matched domain of one lawyer.
type domainMatch struct {
	domain   string
	score    float64
	strength float64
	weighted float64
	skills   []contribution
}

// expertiseEvaluation is the outcome of scoring one skill profile against the
// classified query domains.
type expertiseEvaluation struct {
	total              float64
	matches            []domainMatch
	hasDomainExpertise bool
}

// evaluateExpertise scores a lawyer's skill profile against the classified
// query domains. Each skill counts at most once per domain: a direct domain
// reference wins over the term scan, and the term scan stops at the first
// matching term. A domain present in the query mapping but absent from the
// registry indicates classifier/registry drift and is returned as an error.
func (e *Engine) evaluateExpertise(skills map[string]float64, queryDomains map[string]float64) (*expertiseEvaluation, error) {
	evaluation := &expertiseEvaluation{}

	skillNames := make([]string, 0, len(skills))
	for name := range skills {
		skillNames = append(skillNames, name)
	}
	sort.Strings(skillNames)

	for _, domainName := range sortedKeys(queryDomains) {
		terms, ok := e.registry.Terms(domainName)
		if !ok {
			return nil, fmt.Errorf("classified domain %q is not present in the registry", domainName)
		}

		strength := queryDomains[domainName]
		lowerDomain := strings.ToLower(domainName)

		match := domainMatch{domain: domainName, strength: strength}

		for _, skillName := range skillNames {
			points := skills[skillName]
			lowerSkill := strings.ToLower(skillName)

			if strings.Contains(lowerSkill, lowerDomain) {
				score := points * directReferenceMultiplier
				match.score += score
				match.skills = append(match.skills, contribution{skill: skillName, points: points, score: score})
				evaluation.hasDomainExpertise = true
				continue
			}

			for _, term := range terms {
				if strings.Contains(lowerSkill, strings.ToLower(term)) {
					score := points * termReferenceMultiplier
					match.score += score
					match.skills = append(match.skills, contribution{skill: skillName, points: points, score: score})
					evaluation.hasDomainExpertise = true
					break
				}
			}
		}

		if match.score > 0 {
			match.weighted = match.score * strength
			evaluation.total += match.weighted
			evaluation.matches = append(evaluation.matches, match)
		}
	}

	return evaluation, nil
}

// contributions flattens per-domain evidence. A skill may appear under
// several domains; cross-domain deduplication happens in topEvidence.
func (ev *expertiseEvaluation) contributions() []contribution {
	var all []contribution
	for _, match := range ev.matches {
		all = append(all, match.skills...)
	}
	return all
}

func (ev *expertiseEvaluation) domainNames() []string {
	names := make([]string, 0, len(ev.matches))
	for _, match := range ev.matches {
		names = append(names, match.domain)
	}
	return names
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
