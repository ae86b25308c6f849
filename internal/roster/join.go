package roster

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Bio is a biography record from the independently maintained bios roster.
type Bio struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PracticeArea string
	Biography    string
}

// JoinReport describes how a biography join went. Fuzzy and ambiguous joins
// are surfaced here instead of being silently guessed.
type JoinReport struct {
	Matched   int
	Fuzzy     []string
	Unmatched []string
	Ambiguous []string
}

// AttachBios joins biography records onto the roster. The stable ID is the
// primary join key; when a bio carries no usable ID the join falls back to
// first/last name token matching, which is logged and flagged in the report.
// A bio that matches no lawyer, or more than one, is reported and skipped.
func (r *Roster) AttachBios(bios []*Bio, logger *zap.Logger) *JoinReport {
	if logger == nil {
		logger = zap.NewNop()
	}

	report := &JoinReport{}

	for _, bio := range bios {
		if bio == nil {
			continue
		}

		if bio.ID == uuid.Nil && bio.Email != "" {
			bio.ID = StableID(bio.Name, bio.Email)
		}

		if bio.ID != uuid.Nil {
			if lawyer := r.FindByID(bio.ID); lawyer != nil {
				attach(lawyer, bio)
				report.Matched++
				continue
			}
		}

		candidates := r.fuzzyNameCandidates(bio.Name)
		switch len(candidates) {
		case 0:
			report.Unmatched = append(report.Unmatched, bio.Name)
			logger.Warn("bio record matched no lawyer",
				zap.String("bio_name", bio.Name),
			)
		case 1:
			attach(candidates[0], bio)
			report.Matched++
			report.Fuzzy = append(report.Fuzzy, bio.Name)
			logger.Warn("bio record joined by fuzzy name match",
				zap.String("bio_name", bio.Name),
				zap.String("lawyer_name", candidates[0].Name),
			)
		default:
			report.Ambiguous = append(report.Ambiguous, bio.Name)
			names := make([]string, 0, len(candidates))
			for _, c := range candidates {
				names = append(names, c.Name)
			}
			logger.Warn("bio record matched multiple lawyers; skipping",
				zap.String("bio_name", bio.Name),
				zap.Strings("candidates", names),
			)
		}
	}

	return report
}

func attach(lawyer *Lawyer, bio *Bio) {
	if bio.Biography != "" {
		lawyer.Bio = bio.Biography
	}
	if bio.PracticeArea != "" && lawyer.PracticeArea == "" {
		lawyer.PracticeArea = bio.PracticeArea
	}
}

// fuzzyNameCandidates finds lawyers whose first and last name tokens both
// appear in the bio name (or vice versa), case-insensitively.
func (r *Roster) fuzzyNameCandidates(name string) []*Lawyer {
	first, last, ok := nameTokens(name)
	if !ok {
		return nil
	}

	var candidates []*Lawyer
	for _, lawyer := range r.Lawyers {
		lf, ll, lok := nameTokens(lawyer.Name)
		if !lok {
			continue
		}
		if (strings.Contains(lf, first) || strings.Contains(first, lf)) &&
			(strings.Contains(ll, last) || strings.Contains(last, ll)) {
			candidates = append(candidates, lawyer)
		}
	}
	return candidates
}

func nameTokens(name string) (first, last string, ok bool) {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) < 2 {
		return "", "", false
	}
	return fields[0], fields[len(fields)-1], true
}
