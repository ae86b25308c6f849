package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/legalops/lexfinder/internal/ai"
	"github.com/legalops/lexfinder/internal/logger"
	"github.com/legalops/lexfinder/internal/matching"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Narrator turns a ranked shortlist into per-lawyer match explanations via
// Gemini.
type Narrator struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewNarrator(generator contentGenerator, maxLogLength int, log *zap.Logger) *Narrator {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Narrator{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

// Explain requests an explanation for every match and returns them keyed by
// lawyer name. Lawyers missing from the response simply fall back to the
// default explanation at render time; a transport or parse failure is
// returned to the caller to log and degrade.
func (n *Narrator) Explain(ctx context.Context, query string, matches []*matching.MatchResult) (ai.Explanations, error) {
	if len(matches) == 0 {
		return ai.Explanations{}, nil
	}

	prompt := buildPrompt(query, matches)

	n.logger.Debug("gemini narrative request",
		zap.Int("matches", len(matches)),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, n.maxLogLen)),
	)

	raw, err := n.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	n.logger.Debug("gemini narrative response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, n.maxLogLen)),
	)

	return parseResponse(raw)
}

func buildPrompt(query string, matches []*matching.MatchResult) string {
	var block strings.Builder
	for i, match := range matches {
		fmt.Fprintf(&block, "Lawyer %d: %s\n", i+1, match.Lawyer.Name)
		if match.Lawyer.PracticeArea != "" {
			fmt.Fprintf(&block, "Practice Area: %s\n", match.Lawyer.PracticeArea)
		}
		if len(match.MatchedDomains) > 0 {
			fmt.Fprintf(&block, "Matched legal domains: %s\n", strings.Join(match.MatchedDomains, ", "))
		}
		block.WriteString("Relevant skills:\n")
		for _, skill := range match.MatchedSkills {
			fmt.Fprintf(&block, "- %s: %g points\n", skill.Skill, skill.Points)
		}
		if match.Lawyer.Bio != "" {
			fmt.Fprintf(&block, "Background: %s\n", match.Lawyer.Bio)
		}
		block.WriteString("\n")
	}

	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Query:\n{{QUERY}}\n\nMatches:\n{{MATCHES}}\n\nJSON Response:"
	}
	prompt := strings.ReplaceAll(template, "{{QUERY}}", query)
	prompt = strings.ReplaceAll(prompt, "{{MATCHES}}", strings.TrimSpace(block.String()))
	return prompt
}

func parseResponse(raw string) (ai.Explanations, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	var decoded map[string]string
	cfg := &mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &decoded,
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}

	explanations := make(ai.Explanations, len(decoded))
	for name, text := range decoded {
		if text = strings.TrimSpace(text); text != "" {
			explanations[name] = text
		}
	}

	return explanations, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

