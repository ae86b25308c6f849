package schedule

import (
	"strings"
	"testing"
	"time"
)

const sampleTable = `
| Name        | Days   | Hours    | Vacations                | Notes                      |
|-------------|--------|----------|--------------------------|----------------------------|
| Alice Reed  | 3 days | 20 hours | 2026-07-01..2026-07-14   | wrapping up Client 204     |
| Bob Stone   | 5 days | 40 hrs   |                          |                            |
| Carol Diaz  | 2 days |          | 2026-12-20 to 2027-01-05 | engaged until end of year  |
`

func TestParseTable(t *testing.T) {
	table, diagnostics, err := ParseTable(strings.NewReader(sampleTable))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", diagnostics)
	}
	if len(table) != 3 {
		t.Fatalf("expected 3 records, got %d", len(table))
	}

	alice := table["Alice Reed"]
	if alice == nil {
		t.Fatalf("expected Alice Reed record")
	}
	if alice.DaysPerWeek != 3 || alice.HoursPerWeek != 20 {
		t.Fatalf("unexpected capacity: %+v", alice)
	}
	if len(alice.Vacations) != 1 {
		t.Fatalf("expected 1 vacation range, got %+v", alice.Vacations)
	}
	if alice.EngagementNote != "wrapping up Client 204" {
		t.Fatalf("unexpected note: %q", alice.EngagementNote)
	}

	bob := table["Bob Stone"]
	if bob == nil || bob.DaysPerWeek != 5 || bob.HoursPerWeek != 40 {
		t.Fatalf("unexpected Bob Stone record: %+v", bob)
	}
	if len(bob.Vacations) != 0 {
		t.Fatalf("did not expect vacations for Bob Stone")
	}

	carol := table["Carol Diaz"]
	if carol == nil || len(carol.Vacations) != 1 {
		t.Fatalf("unexpected Carol Diaz record: %+v", carol)
	}
}

func TestParseTableReportsBadLines(t *testing.T) {
	input := "just some prose that is not a table\n| Dana Fox | 3 days | 2026-13-40..2026-13-41 |\n"

	table, diagnostics, err := ParseTable(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(diagnostics) != 2 {
		t.Fatalf("expected 2 diagnostics, got %+v", diagnostics)
	}
	if _, ok := table["Dana Fox"]; !ok {
		t.Fatalf("expected Dana Fox record despite bad vacation cell")
	}
}

func TestOnVacation(t *testing.T) {
	start, _ := time.Parse(dateLayout, "2026-07-01")
	end, _ := time.Parse(dateLayout, "2026-07-14")
	availability := &Availability{Vacations: []Range{{Start: start, End: end}}}

	inside, _ := time.Parse(dateLayout, "2026-07-07")
	outside, _ := time.Parse(dateLayout, "2026-08-01")

	if !availability.OnVacation(inside) {
		t.Fatalf("expected vacation on %v", inside)
	}
	if availability.OnVacation(outside) {
		t.Fatalf("did not expect vacation on %v", outside)
	}
}
