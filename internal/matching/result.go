package matching

import (
	"sort"

	"github.com/legalops/lexfinder/internal/roster"
)

// maxEvidence caps the display evidence attached to one result.
const maxEvidence = 5

// SkillEvidence is one skill that contributed to a result, with the points
// the lawyer allocated to it.
type SkillEvidence struct {
	Skill  string  `json:"skill"`
	Points float64 `json:"points"`
}

// MatchResult is one ranked lawyer together with the evidence behind the
// score. MatchedSkills holds at most five entries with unique skill names.
// HasDomainExpertise is only ever set in domain mode; keyword-fallback
// results are structurally distinguishable by it being false with no
// matched domains.
type MatchResult struct {
	Lawyer             *roster.Lawyer  `json:"lawyer"`
	Score              float64         `json:"score"`
	MatchedSkills      []SkillEvidence `json:"matched_skills"`
	MatchedDomains     []string        `json:"matched_domains,omitempty"`
	HasDomainExpertise bool            `json:"has_domain_expertise"`
}

// contribution records one skill's contribution to one matched domain before
// cross-domain deduplication.
type contribution struct {
	skill  string
	points float64
	score  float64
}

// topEvidence sorts contributions by contributed score descending,
// deduplicates by skill name keeping the highest-scoring instance, and
// truncates to the evidence cap.
func topEvidence(contributions []contribution) []SkillEvidence {
	sort.SliceStable(contributions, func(i, j int) bool {
		return contributions[i].score > contributions[j].score
	})

	seen := make(map[string]bool, len(contributions))
	evidence := make([]SkillEvidence, 0, maxEvidence)
	for _, c := range contributions {
		if seen[c.skill] {
			continue
		}
		seen[c.skill] = true
		evidence = append(evidence, SkillEvidence{Skill: c.skill, Points: c.points})
		if len(evidence) >= maxEvidence {
			break
		}
	}
	return evidence
}
