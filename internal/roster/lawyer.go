package roster

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Lawyer is one member of the firm's roster. Skills map a self-reported skill
// name to the points the lawyer allocated to it. PracticeArea, Availability
// and Bio are descriptive pass-through fields that scoring never interprets.
type Lawyer struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email,omitempty"`
	Skills       map[string]float64 `json:"skills"`
	PracticeArea string             `json:"practice_area,omitempty"`
	Availability string             `json:"availability,omitempty"`
	Bio          string             `json:"bio,omitempty"`
}

// SkillPoint pairs a skill name with its allocated points.
type SkillPoint struct {
	Name   string  `json:"skill"`
	Points float64 `json:"points"`
}

// Roster holds the full set of lawyer records for one dataset snapshot.
type Roster struct {
	Lawyers []*Lawyer `json:"lawyers"`
}

// StableID derives the deterministic identifier for a lawyer record. Two
// loads of the same record always produce the same ID, which is what the
// biography join keys on.
func StableID(name, email string) uuid.UUID {
	key := fmt.Sprintf("lexfinder://lawyer/%s/%s",
		strings.ToLower(strings.TrimSpace(name)),
		strings.ToLower(strings.TrimSpace(email)),
	)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key))
}

func (r *Roster) Len() int {
	return len(r.Lawyers)
}

func (r *Roster) FindByName(name string) *Lawyer {
	for _, lawyer := range r.Lawyers {
		if lawyer.Name == name {
			return lawyer
		}
	}
	return nil
}

func (r *Roster) FindByID(id uuid.UUID) *Lawyer {
	for _, lawyer := range r.Lawyers {
		if lawyer.ID == id {
			return lawyer
		}
	}
	return nil
}

func (r *Roster) Names() []string {
	names := make([]string, 0, len(r.Lawyers))
	for _, lawyer := range r.Lawyers {
		names = append(names, lawyer.Name)
	}
	return names
}

// Clone returns a shallow copy of the roster. The lawyer records themselves
// are shared and treated as read-only, so a clone is what request-scoped
// filtering operates on while the snapshot stays untouched.
func (r *Roster) Clone() *Roster {
	lawyers := make([]*Lawyer, len(r.Lawyers))
	copy(lawyers, r.Lawyers)
	return &Roster{Lawyers: lawyers}
}

// Exclude removes lawyers whose name matches one of the targets exactly and
// returns the removed names.
func (r *Roster) Exclude(targets []string) []string {
	var excluded []string
	for _, target := range targets {
		for idx, lawyer := range r.Lawyers {
			if lawyer.Name == target {
				r.removeByIndex(idx)
				excluded = append(excluded, lawyer.Name)
				break
			}
		}
	}
	return excluded
}

// removeByIndex removes a lawyer from the list by index. Does not preserve order.
func (r *Roster) removeByIndex(idx int) {
	r.Lawyers[idx] = r.Lawyers[len(r.Lawyers)-1]
	r.Lawyers = r.Lawyers[:len(r.Lawyers)-1]
}

// TopSkills returns the lawyer's highest-point skills, at most limit entries,
// ordered by points descending with name as a deterministic secondary key.
func (l *Lawyer) TopSkills(limit int) []SkillPoint {
	skills := make([]SkillPoint, 0, len(l.Skills))
	for name, points := range l.Skills {
		skills = append(skills, SkillPoint{Name: name, Points: points})
	}
	sort.Slice(skills, func(i, j int) bool {
		if skills[i].Points != skills[j].Points {
			return skills[i].Points > skills[j].Points
		}
		return skills[i].Name < skills[j].Name
	})
	if limit > 0 && len(skills) > limit {
		skills = skills[:limit]
	}
	return skills
}

// ReportByPracticeArea groups lawyers by practice area for quick overviews.
func (r *Roster) ReportByPracticeArea() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, lawyer := range r.Lawyers {
		area := lawyer.PracticeArea
		if area == "" {
			area = "Unassigned"
		}
		top := make([]string, 0, 3)
		for _, skill := range lawyer.TopSkills(3) {
			top = append(top, fmt.Sprintf("%s (%g)", skill.Name, skill.Points))
		}
		report[area] = append(report[area], map[string]string{
			"name":         lawyer.Name,
			"email":        lawyer.Email,
			"availability": lawyer.Availability,
			"top skills":   strings.Join(top, ", "),
		})
	}
	return report
}

// DumpToTmpFile writes the roster as indented JSON to a temporary file and
// returns its name.
func (r *Roster) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "roster_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
