// Package schedule defines the structured availability schema for lawyers
// and imports the hand-maintained free-text tables into it. Scoring never
// depends on the raw text; the tables are just one import format feeding
// this schema.
package schedule

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Range is a closed vacation interval.
type Range struct {
	Start time.Time
	End   time.Time
}

// Availability is one lawyer's structured availability record.
type Availability struct {
	DaysPerWeek    int
	HoursPerWeek   int
	Vacations      []Range
	EngagementNote string
}

// Diagnostic reports a table line that could not be fully interpreted.
// Imports never guess silently; anything odd ends up here.
type Diagnostic struct {
	Line   int
	Text   string
	Reason string
}

var (
	daysPattern  = regexp.MustCompile(`(?i)(\d+)\s*days?`)
	hoursPattern = regexp.MustCompile(`(?i)(\d+)\s*h(?:ou)?rs?`)
	rangePattern = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})\s*(?:\.\.|to|-)\s*(\d{4}-\d{2}-\d{2})`)
)

// LoadTable reads an availability table from disk.
func LoadTable(path string) (map[string]*Availability, []Diagnostic, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening availability table: %w", err)
	}
	defer file.Close()

	return ParseTable(file)
}

// ParseTable imports a pipe-separated free-text availability table:
//
//	Name | days | hours | vacations | engagement note
//
// Header and separator lines are skipped. Cells are parsed leniently; lines
// without a usable name, and cells that do not parse, are reported as
// diagnostics rather than guessed at.
func ParseTable(r io.Reader) (map[string]*Availability, []Diagnostic, error) {
	result := make(map[string]*Availability)
	var diagnostics []Diagnostic

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || isSeparator(text) {
			continue
		}

		cells := splitRow(text)
		if len(cells) < 2 {
			diagnostics = append(diagnostics, Diagnostic{Line: line, Text: text, Reason: "not a table row"})
			continue
		}

		name := strings.TrimSpace(cells[0])
		if name == "" || strings.EqualFold(name, "name") {
			continue
		}

		availability := &Availability{}
		for _, cell := range cells[1:] {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			if parsed, ok := parseCell(cell, availability); !ok {
				diagnostics = append(diagnostics, Diagnostic{Line: line, Text: cell, Reason: parsed})
			}
		}

		result[name] = availability
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	return result, diagnostics, nil
}

// parseCell interprets one cell. The second return is false when the cell
// carried no recognizable structure, with the first return as the reason.
func parseCell(cell string, availability *Availability) (string, bool) {
	recognized := false

	if m := daysPattern.FindStringSubmatch(cell); m != nil {
		if days, err := strconv.Atoi(m[1]); err == nil {
			availability.DaysPerWeek = days
			recognized = true
		}
	}
	if m := hoursPattern.FindStringSubmatch(cell); m != nil {
		if hours, err := strconv.Atoi(m[1]); err == nil {
			availability.HoursPerWeek = hours
			recognized = true
		}
	}
	for _, m := range rangePattern.FindAllStringSubmatch(cell, -1) {
		start, startErr := time.Parse(dateLayout, m[1])
		end, endErr := time.Parse(dateLayout, m[2])
		if startErr != nil || endErr != nil || end.Before(start) {
			return "invalid vacation range", false
		}
		availability.Vacations = append(availability.Vacations, Range{Start: start, End: end})
		recognized = true
	}

	if !recognized {
		// Anything non-numeric and non-date is the engagement note.
		if availability.EngagementNote != "" {
			availability.EngagementNote += "; "
		}
		availability.EngagementNote += cell
		recognized = true
	}

	return "", recognized
}

// OnVacation reports whether the lawyer is on vacation at the given time.
func (a *Availability) OnVacation(at time.Time) bool {
	for _, vacation := range a.Vacations {
		if !at.Before(vacation.Start) && !at.After(vacation.End) {
			return true
		}
	}
	return false
}

func isSeparator(line string) bool {
	trimmed := strings.Trim(line, "|+- =")
	return trimmed == ""
}

func splitRow(line string) []string {
	line = strings.Trim(line, "|")
	return strings.Split(line, "|")
}
