package roster

import "testing"

func sampleRoster() *Roster {
	return &Roster{Lawyers: []*Lawyer{
		{Name: "Alice Reed", PracticeArea: "Privacy", Skills: map[string]float64{"Privacy Law": 10, "Data Privacy": 4}},
		{Name: "Bob Stone", PracticeArea: "Corporate", Skills: map[string]float64{"Corporate Law": 8}},
		{Name: "Carol Diaz", Skills: map[string]float64{"Tax Law": 6}},
	}}
}

func TestExclude(t *testing.T) {
	r := sampleRoster()

	excluded := r.Exclude([]string{"Bob Stone", "Nobody Known"})

	if len(excluded) != 1 || excluded[0] != "Bob Stone" {
		t.Fatalf("unexpected exclusions: %v", excluded)
	}
	if r.Len() != 2 {
		t.Fatalf("expected 2 lawyers left, got %d", r.Len())
	}
	if r.FindByName("Bob Stone") != nil {
		t.Fatalf("expected Bob Stone removed")
	}
}

func TestCloneLeavesOriginalUntouched(t *testing.T) {
	r := sampleRoster()
	clone := r.Clone()

	clone.Exclude([]string{"Alice Reed"})

	if clone.Len() != 2 {
		t.Fatalf("expected clone to shrink, got %d", clone.Len())
	}
	if r.Len() != 3 {
		t.Fatalf("expected original untouched, got %d", r.Len())
	}
}

func TestTopSkills(t *testing.T) {
	lawyer := &Lawyer{Skills: map[string]float64{
		"Privacy Law":  10,
		"Data Privacy": 4,
		"Tax Law":      4,
		"Corporate":    8,
	}}

	top := lawyer.TopSkills(3)

	if len(top) != 3 {
		t.Fatalf("expected 3 skills, got %d", len(top))
	}
	if top[0].Name != "Privacy Law" || top[1].Name != "Corporate" {
		t.Fatalf("unexpected order: %+v", top)
	}
	// Equal points order alphabetically.
	if top[2].Name != "Data Privacy" {
		t.Fatalf("expected deterministic tie order, got %+v", top)
	}
}

func TestReportByPracticeArea(t *testing.T) {
	report := sampleRoster().ReportByPracticeArea()

	if len(report["Privacy"]) != 1 {
		t.Fatalf("expected one privacy lawyer, got %+v", report["Privacy"])
	}
	if len(report["Unassigned"]) != 1 {
		t.Fatalf("expected lawyers without practice area under Unassigned, got %+v", report)
	}
	entry := report["Privacy"][0]
	if entry["name"] != "Alice Reed" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry["top skills"] == "" {
		t.Fatalf("expected top skills summary")
	}
}
