package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/legalops/lexfinder/internal/matching"
	"github.com/legalops/lexfinder/internal/roster"
)

type stubGenerator struct {
	response string
	err      error

	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func sampleMatches() []*matching.MatchResult {
	return []*matching.MatchResult{
		{
			Lawyer: &roster.Lawyer{
				Name:         "Alice Reed",
				PracticeArea: "Technology",
				Bio:          "Advises SaaS vendors on licensing.",
			},
			Score: 24,
			MatchedSkills: []matching.SkillEvidence{
				{Skill: "Technology Licensing", Points: 8},
			},
			MatchedDomains:     []string{"Technology Law"},
			HasDomainExpertise: true,
		},
		{
			Lawyer: &roster.Lawyer{Name: "Bob Stone"},
			Score:  10,
			MatchedSkills: []matching.SkillEvidence{
				{Skill: "Contract Drafting", Points: 5},
			},
		},
	}
}

func TestNarratorExplain(t *testing.T) {
	stub := &stubGenerator{response: `{"Alice Reed": "Deep SaaS licensing background.", "Bob Stone": "Strong contract drafting record."}`}
	narrator := NewNarrator(stub, 0, nil)

	explanations, err := narrator.Explain(context.Background(), "technology licensing", sampleMatches())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := explanations.For("Alice Reed"); got != "Deep SaaS licensing background." {
		t.Fatalf("unexpected explanation for Alice Reed: %q", got)
	}
	if got := explanations.For("Bob Stone"); got != "Strong contract drafting record." {
		t.Fatalf("unexpected explanation for Bob Stone: %q", got)
	}
}

func TestNarratorExplainPromptContents(t *testing.T) {
	stub := &stubGenerator{response: `{}`}
	narrator := NewNarrator(stub, 0, nil)

	if _, err := narrator.Explain(context.Background(), "technology licensing", sampleMatches()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"technology licensing",
		"Alice Reed",
		"Practice Area: Technology",
		"Technology Licensing: 8 points",
		"Matched legal domains: Technology Law",
		"Bob Stone",
	} {
		if !strings.Contains(stub.lastPrompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, stub.lastPrompt)
		}
	}
	if strings.Contains(stub.lastPrompt, "{{QUERY}}") || strings.Contains(stub.lastPrompt, "{{MATCHES}}") {
		t.Fatalf("prompt placeholders were not substituted:\n%s", stub.lastPrompt)
	}
}

func TestNarratorExplainFencedResponse(t *testing.T) {
	stub := &stubGenerator{response: "```json\n{\"Alice Reed\": \"Fence-wrapped answer.\"}\n```"}
	narrator := NewNarrator(stub, 0, nil)

	explanations, err := narrator.Explain(context.Background(), "technology licensing", sampleMatches())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := explanations.For("Alice Reed"); got != "Fence-wrapped answer." {
		t.Fatalf("unexpected explanation: %q", got)
	}
}

func TestNarratorExplainGeneratorError(t *testing.T) {
	wantErr := errors.New("quota exceeded")
	narrator := NewNarrator(&stubGenerator{err: wantErr}, 0, nil)

	if _, err := narrator.Explain(context.Background(), "technology licensing", sampleMatches()); !errors.Is(err, wantErr) {
		t.Fatalf("expected generator error, got %v", err)
	}
}

func TestNarratorExplainInvalidJSON(t *testing.T) {
	narrator := NewNarrator(&stubGenerator{response: "I cannot answer that."}, 0, nil)

	if _, err := narrator.Explain(context.Background(), "technology licensing", sampleMatches()); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestNarratorExplainNoMatches(t *testing.T) {
	stub := &stubGenerator{}
	narrator := NewNarrator(stub, 0, nil)

	explanations, err := narrator.Explain(context.Background(), "technology licensing", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(explanations) != 0 {
		t.Fatalf("expected no explanations, got %v", explanations)
	}
	if stub.lastPrompt != "" {
		t.Fatal("generator should not be called without matches")
	}
}

func TestNarratorExplainMissingNameFallback(t *testing.T) {
	narrator := NewNarrator(&stubGenerator{response: `{"Alice Reed": "Covered."}`}, 0, nil)

	explanations, err := narrator.Explain(context.Background(), "technology licensing", sampleMatches())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := explanations.For("Bob Stone"); got == "" || got == "Covered." {
		t.Fatalf("expected default explanation for missing name, got %q", got)
	}
}
