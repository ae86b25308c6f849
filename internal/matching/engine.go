// Package matching implements the domain-aware scoring engine: it classifies
// a free-text client query into weighted legal domains, scores every lawyer's
// skill profile against them, and produces a ranked, deduplicated shortlist.
// When the query carries no recognizable domain vocabulary the engine falls
// back to plain keyword matching.
package matching

import (
	"sort"
	"strings"

	"github.com/legalops/lexfinder/internal/legal"
	"github.com/legalops/lexfinder/internal/roster"

	"go.uber.org/zap"
)

// DefaultTopN is the shortlist size when the caller does not request one.
const DefaultTopN = 5

// DefaultExclusions lists internal test identities that must never appear in
// ranked output. Matching is by name substring.
var DefaultExclusions = []string{"Ankita", "Test", "Tania"}

// Options control a single Rank call.
type Options struct {
	// TopN caps the shortlist. Zero or negative means DefaultTopN.
	TopN int
	// Exclusions are name substrings; any lawyer whose name contains one of
	// them is skipped regardless of score.
	Exclusions []string
}

// Engine is the matching and scoring engine. It holds only immutable
// collaborators, so concurrent Rank calls over one roster snapshot are safe.
type Engine struct {
	registry *legal.Registry
	logger   *zap.Logger
}

func NewEngine(registry *legal.Registry, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{registry: registry, logger: logger}
}

// Rank scores every lawyer against the query and returns the shortlist,
// descending by total score. Lawyers with no positive score are dropped, so
// an empty result is a valid outcome, not an error. Ties order alphabetically
// by lawyer name.
func (e *Engine) Rank(lawyers []*roster.Lawyer, query string, opts Options) ([]*MatchResult, error) {
	topN := opts.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	queryDomains := e.Classify(query)

	var (
		results []*MatchResult
		err     error
	)

	if len(queryDomains) == 0 {
		e.logger.Debug("no domains classified; using keyword fallback",
			zap.String("query", query),
		)
		results = e.rankByKeywords(lawyers, query, opts.Exclusions)
	} else {
		results, err = e.rankByDomains(lawyers, queryDomains, opts.Exclusions)
		if err != nil {
			return nil, err
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Lawyer.Name < results[j].Lawyer.Name
	})

	if len(results) > topN {
		results = results[:topN]
	}

	e.logger.Debug("ranking complete",
		zap.String("query", query),
		zap.Int("classified_domains", len(queryDomains)),
		zap.Int("results", len(results)),
	)

	return results, nil
}

func (e *Engine) rankByDomains(lawyers []*roster.Lawyer, queryDomains map[string]float64, exclusions []string) ([]*MatchResult, error) {
	var results []*MatchResult

	for _, lawyer := range lawyers {
		if isExcluded(lawyer.Name, exclusions) {
			continue
		}

		evaluation, err := e.evaluateExpertise(lawyer.Skills, queryDomains)
		if err != nil {
			return nil, err
		}
		if evaluation.total <= 0 {
			continue
		}

		results = append(results, &MatchResult{
			Lawyer:             lawyer,
			Score:              evaluation.total,
			MatchedSkills:      topEvidence(evaluation.contributions()),
			MatchedDomains:     evaluation.domainNames(),
			HasDomainExpertise: evaluation.hasDomainExpertise,
		})
	}

	return results, nil
}

func (e *Engine) rankByKeywords(lawyers []*roster.Lawyer, query string, exclusions []string) []*MatchResult {
	var results []*MatchResult

	for _, lawyer := range lawyers {
		if isExcluded(lawyer.Name, exclusions) {
			continue
		}

		score, evidence := keywordScore(query, lawyer.Skills)
		if score <= 0 {
			continue
		}

		results = append(results, &MatchResult{
			Lawyer:        lawyer,
			Score:         score,
			MatchedSkills: evidence,
		})
	}

	return results
}

func isExcluded(name string, exclusions []string) bool {
	for _, excluded := range DefaultExclusions {
		if strings.Contains(name, excluded) {
			return true
		}
	}
	for _, excluded := range exclusions {
		if excluded != "" && strings.Contains(name, excluded) {
			return true
		}
	}
	return false
}
