package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

const (
	nameColumn         = "Submitter Name"
	emailColumn        = "Submitter Email"
	practiceAreaColumn = "Practice Area"
	availabilityColumn = "Availability"
	bioColumn          = "Bio"
)

// skillColumnPattern matches the export convention for skill columns. The
// same skill can appear in several numbered columns; the highest value wins.
var skillColumnPattern = regexp.MustCompile(`^(.*) \(Skill \d+\)$`)

// LoadCSV reads a roster export from disk.
func LoadCSV(path string) (*Roster, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster csv: %w", err)
	}
	defer file.Close()

	roster, err := ParseCSV(file)
	if err != nil {
		return nil, fmt.Errorf("parsing roster csv %q: %w", path, err)
	}
	return roster, nil
}

// ParseCSV parses a roster export. Skill columns follow the
// "<skill name> (Skill N)" convention; duplicate columns for one skill are
// collapsed by taking the maximum value, and zero-point skills are dropped.
func ParseCSV(r io.Reader) (*Roster, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	nameIdx, emailIdx := -1, -1
	areaIdx, availIdx, bioIdx := -1, -1, -1
	skillColumns := make(map[string][]int)

	for idx, column := range header {
		column = strings.TrimSpace(column)
		switch column {
		case nameColumn:
			nameIdx = idx
		case emailColumn:
			emailIdx = idx
		case practiceAreaColumn:
			areaIdx = idx
		case availabilityColumn:
			availIdx = idx
		case bioColumn:
			bioIdx = idx
		default:
			if m := skillColumnPattern.FindStringSubmatch(column); m != nil {
				skill := strings.TrimSpace(m[1])
				skillColumns[skill] = append(skillColumns[skill], idx)
			}
		}
	}

	if nameIdx < 0 {
		return nil, fmt.Errorf("required column %q not found", nameColumn)
	}

	roster := &Roster{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record at line %d: %w", line+1, err)
		}
		line++

		name := strings.TrimSpace(field(record, nameIdx))
		if name == "" {
			continue
		}

		lawyer := &Lawyer{
			Name:         name,
			Email:        strings.TrimSpace(field(record, emailIdx)),
			Skills:       make(map[string]float64),
			PracticeArea: strings.TrimSpace(field(record, areaIdx)),
			Availability: strings.TrimSpace(field(record, availIdx)),
			Bio:          strings.TrimSpace(field(record, bioIdx)),
		}
		lawyer.ID = StableID(lawyer.Name, lawyer.Email)

		for skill, columns := range skillColumns {
			value := maxSkillValue(record, columns)
			if value > 0 {
				lawyer.Skills[skill] = value
			}
		}

		roster.Lawyers = append(roster.Lawyers, lawyer)
	}

	return roster, nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}

func maxSkillValue(record []string, columns []int) float64 {
	max := 0.0
	for _, idx := range columns {
		raw := strings.TrimSpace(field(record, idx))
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		if value > max {
			max = value
		}
	}
	return max
}
