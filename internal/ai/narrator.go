// Package ai defines the boundary to the narrative generator. The generator
// is a best-effort collaborator: ranking results must render even when it is
// unavailable or returns malformed output.
package ai

import (
	"context"

	"github.com/legalops/lexfinder/internal/matching"
)

// DefaultExplanation is rendered when the generator supplied no text for a
// lawyer.
const DefaultExplanation = "This lawyer has relevant expertise in the areas described in the client query."

// Explanations maps a lawyer's name to the narrative text for one query.
type Explanations map[string]string

// For returns the explanation for the named lawyer, falling back to the
// generic default when the generator skipped them.
func (e Explanations) For(name string) string {
	if e == nil {
		return DefaultExplanation
	}
	if text, ok := e[name]; ok && text != "" {
		return text
	}
	return DefaultExplanation
}

// Narrator produces match explanations for a ranked shortlist.
type Narrator interface {
	Explain(ctx context.Context, query string, matches []*matching.MatchResult) (Explanations, error)
}
