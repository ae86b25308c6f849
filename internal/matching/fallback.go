package matching

import (
	"sort"
	"strings"
)

const (
	// verbatimSkillMultiplier applies when a full skill name appears inside
	// the query.
	verbatimSkillMultiplier = 2.0
	// overlapSkillMultiplier applies when at least half of a skill's words
	// appear in the query.
	overlapSkillMultiplier = 1.0
	overlapThreshold       = 0.5
)

// keywordScore is the fallback scorer used when the classifier finds no
// domain signal in the query at all. It returns the lawyer's total score and
// the display evidence (top skills by points, at most five).
func keywordScore(query string, skills map[string]float64) (float64, []SkillEvidence) {
	lowerQuery := strings.ToLower(query)
	queryWords := wordSet(lowerQuery)

	total := 0.0
	var matched []SkillEvidence

	for _, skillName := range sortedSkillNames(skills) {
		points := skills[skillName]
		lowerSkill := strings.ToLower(skillName)
		if lowerSkill == "" {
			continue
		}

		if strings.Contains(lowerQuery, lowerSkill) {
			total += points * verbatimSkillMultiplier
			matched = append(matched, SkillEvidence{Skill: skillName, Points: points})
			continue
		}

		skillWords := strings.Fields(lowerSkill)
		if len(skillWords) == 0 {
			continue
		}

		overlap := 0
		for _, word := range skillWords {
			if queryWords[word] {
				overlap++
			}
		}
		if overlap > 0 && float64(overlap)/float64(len(skillWords)) >= overlapThreshold {
			total += points * overlapSkillMultiplier
			matched = append(matched, SkillEvidence{Skill: skillName, Points: points})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Points > matched[j].Points
	})
	if len(matched) > maxEvidence {
		matched = matched[:maxEvidence]
	}

	return total, matched
}

func wordSet(s string) map[string]bool {
	words := make(map[string]bool)
	for _, word := range strings.Fields(s) {
		words[word] = true
	}
	return words
}

func sortedSkillNames(skills map[string]float64) []string {
	names := make([]string, 0, len(skills))
	for name := range skills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
