package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	bioNameColumn  = "Name"
	bioEmailColumn = "Email"
	bioAreaColumn  = "Practice Area"
	bioTextColumn  = "Biography"
)

// LoadBiosCSV reads the biography roster from disk.
func LoadBiosCSV(path string) ([]*Bio, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening bios csv: %w", err)
	}
	defer file.Close()

	bios, err := ParseBiosCSV(file)
	if err != nil {
		return nil, fmt.Errorf("parsing bios csv %q: %w", path, err)
	}
	return bios, nil
}

// ParseBiosCSV parses the biography roster. The bios dataset is maintained
// separately from the skills roster, so records carry no shared identifier
// beyond name and, when present, email.
func ParseBiosCSV(r io.Reader) ([]*Bio, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	nameIdx, emailIdx, areaIdx, textIdx := -1, -1, -1, -1
	for idx, column := range header {
		switch strings.TrimSpace(column) {
		case bioNameColumn:
			nameIdx = idx
		case bioEmailColumn:
			emailIdx = idx
		case bioAreaColumn:
			areaIdx = idx
		case bioTextColumn:
			textIdx = idx
		}
	}

	if nameIdx < 0 {
		return nil, fmt.Errorf("required column %q not found", bioNameColumn)
	}

	var bios []*Bio
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}

		name := strings.TrimSpace(field(record, nameIdx))
		if name == "" {
			continue
		}

		bio := &Bio{
			Name:         name,
			Email:        strings.TrimSpace(field(record, emailIdx)),
			PracticeArea: strings.TrimSpace(field(record, areaIdx)),
			Biography:    strings.TrimSpace(field(record, textIdx)),
		}
		if bio.Email != "" {
			bio.ID = StableID(bio.Name, bio.Email)
		}

		bios = append(bios, bio)
	}

	return bios, nil
}
