package matching

import (
	"math"
	"reflect"
	"testing"

	"github.com/legalops/lexfinder/internal/legal"
	"github.com/legalops/lexfinder/internal/roster"
)

func lawyer(name string, skills map[string]float64) *roster.Lawyer {
	return &roster.Lawyer{
		ID:     roster.StableID(name, name+"@example.com"),
		Name:   name,
		Email:  name + "@example.com",
		Skills: skills,
	}
}

func TestRankOrdersByWeightedScore(t *testing.T) {
	engine := newTestEngine()
	lawyers := []*roster.Lawyer{
		lawyer("Bob Stone", map[string]float64{"Privacy Law": 5}),
		lawyer("Alice Reed", map[string]float64{"Privacy Law": 10}),
		lawyer("Carol Diaz", map[string]float64{"Aviation Law": 9}),
	}

	results, err := engine.Rank(lawyers, "privacy law compliance", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Lawyer.Name != "Alice Reed" || results[1].Lawyer.Name != "Bob Stone" {
		t.Fatalf("unexpected order: %s then %s", results[0].Lawyer.Name, results[1].Lawyer.Name)
	}
	if results[0].Score <= results[1].Score {
		t.Fatalf("expected strictly higher score first: %v vs %v", results[0].Score, results[1].Score)
	}
	if !results[0].HasDomainExpertise {
		t.Fatalf("expected domain expertise flag for direct skill reference")
	}
}

func TestRankRespectsTopN(t *testing.T) {
	engine := newTestEngine()

	var lawyers []*roster.Lawyer
	names := []string{"Ada", "Ben", "Cleo", "Dan", "Eve", "Finn", "Gia"}
	for i, name := range names {
		lawyers = append(lawyers, lawyer(name+" Moore", map[string]float64{"Privacy Law": float64(i + 1)}))
	}

	results, err := engine.Rank(lawyers, "privacy law compliance", Options{TopN: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	defaulted, err := engine.Rank(lawyers, "privacy law compliance", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(defaulted) != DefaultTopN {
		t.Fatalf("expected default top-n %d, got %d", DefaultTopN, len(defaulted))
	}
}

func TestRankExcludesInternalIdentities(t *testing.T) {
	engine := newTestEngine()
	lawyers := []*roster.Lawyer{
		lawyer("Test User", map[string]float64{"Privacy Law": 100}),
		lawyer("Tania Brooks", map[string]float64{"Privacy Law": 100}),
		lawyer("Alice Reed", map[string]float64{"Privacy Law": 10}),
		lawyer("Carol Diaz", map[string]float64{"Privacy Law": 9}),
	}

	results, err := engine.Rank(lawyers, "privacy law compliance", Options{Exclusions: []string{"Carol"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Lawyer.Name != "Alice Reed" {
		t.Fatalf("unexpected result: %s", results[0].Lawyer.Name)
	}
}

func TestRankIsIdempotent(t *testing.T) {
	engine := newTestEngine()
	lawyers := []*roster.Lawyer{
		lawyer("Alice Reed", map[string]float64{"Privacy Law": 10, "Technology Licensing": 5}),
		lawyer("Bob Stone", map[string]float64{"Corporate Governance": 8}),
	}

	query := "Technology licensing and SaaS contracts"
	first, err := engine.Rank(lawyers, query, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := engine.Rank(lawyers, query, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output across calls")
	}
}

func TestRankTieBreaksAlphabetically(t *testing.T) {
	engine := newTestEngine()
	lawyers := []*roster.Lawyer{
		lawyer("Zoe Quinn", map[string]float64{"Privacy Law": 5}),
		lawyer("Alice Reed", map[string]float64{"Privacy Law": 5}),
	}

	results, err := engine.Rank(lawyers, "privacy law compliance", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Score != results[1].Score {
		t.Fatalf("expected a tie, got %v and %v", results[0].Score, results[1].Score)
	}
	if results[0].Lawyer.Name != "Alice Reed" {
		t.Fatalf("expected alphabetical tie-break, got %s first", results[0].Lawyer.Name)
	}
}

func TestRankEmptyQueryYieldsEmptyList(t *testing.T) {
	engine := newTestEngine()
	lawyers := []*roster.Lawyer{
		lawyer("Alice Reed", map[string]float64{"Privacy Law": 10}),
	}

	results, err := engine.Rank(lawyers, "", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty result, got %d entries", len(results))
	}
}

func TestRankFallbackMode(t *testing.T) {
	engine := newTestEngine()
	lawyers := []*roster.Lawyer{
		lawyer("Alice Reed", map[string]float64{"Chess Coaching": 4}),
		lawyer("Bob Stone", map[string]float64{"Corporate Governance": 8}),
	}

	results, err := engine.Rank(lawyers, "chess coaching for beginners", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 fallback result, got %d", len(results))
	}
	result := results[0]
	if result.Lawyer.Name != "Alice Reed" {
		t.Fatalf("unexpected result: %s", result.Lawyer.Name)
	}
	if result.HasDomainExpertise {
		t.Fatalf("fallback results must not carry the domain expertise flag")
	}
	if len(result.MatchedDomains) != 0 {
		t.Fatalf("fallback results must not carry matched domains, got %v", result.MatchedDomains)
	}
}

func TestRankEvidenceIsUniqueAndCapped(t *testing.T) {
	engine := newTestEngine()
	lawyers := []*roster.Lawyer{
		lawyer("Alice Reed", map[string]float64{
			"Data Privacy":       5,
			"Privacy Compliance": 4,
		}),
	}

	// The query spans several domains and both skills contribute to more
	// than one of them; the evidence must still list each skill once.
	results, err := engine.Rank(lawyers, "privacy and data privacy compliance", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	result := results[0]
	if len(result.MatchedDomains) < 2 {
		t.Fatalf("expected the query to span domains, got %v", result.MatchedDomains)
	}
	if len(result.MatchedSkills) != 2 {
		t.Fatalf("expected 2 unique evidence entries, got %+v", result.MatchedSkills)
	}

	seen := make(map[string]bool)
	for _, evidence := range result.MatchedSkills {
		if seen[evidence.Skill] {
			t.Fatalf("duplicate evidence skill %q", evidence.Skill)
		}
		seen[evidence.Skill] = true
	}
}

func TestRankTermPathScenario(t *testing.T) {
	registry := legal.NewRegistry()
	engine := NewEngine(registry, nil)

	lawyers := []*roster.Lawyer{
		lawyer("Alice Reed", map[string]float64{"Mergers and Acquisitions": 8}),
	}

	query := "M&A for tech companies"
	strength, ok := engine.Classify(query)["Corporate Law"]
	if !ok {
		t.Fatalf("expected Corporate Law to classify for %q", query)
	}

	terms, _ := registry.Terms("Corporate Law")
	expectedStrength := baseTermStrength + 1.0/float64(len(terms))*termDensityWeight
	if math.Abs(strength-expectedStrength) > 1e-9 {
		t.Fatalf("expected no phrase bonus for single-word term: %v vs %v", strength, expectedStrength)
	}

	results, err := engine.Rank(lawyers, query, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	expectedScore := 8 * termReferenceMultiplier * strength
	if math.Abs(results[0].Score-expectedScore) > 1e-9 {
		t.Fatalf("expected term-path score %v, got %v", expectedScore, results[0].Score)
	}
}
