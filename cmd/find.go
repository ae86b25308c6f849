package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/legalops/lexfinder/internal/ai"
	"github.com/legalops/lexfinder/internal/ai/gemini"
	"github.com/legalops/lexfinder/internal/filtering"
	"github.com/legalops/lexfinder/internal/legal"
	"github.com/legalops/lexfinder/internal/logger"
	"github.com/legalops/lexfinder/internal/matching"
	"github.com/legalops/lexfinder/internal/roster"
	"github.com/legalops/lexfinder/internal/schedule"
	"github.com/legalops/lexfinder/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptNewQuery             = "New query"
	PromptOwnQuery             = "Type my own query"
	PromptReportByPracticeArea = "Report by practice area"
	PromptResultsToFile        = "Dump roster to file"
	PromptExit                 = "Exit"
)

// presetQueries mirror the shortlist of client matters the legal ops team
// most often searches for.
var presetQueries = []string{
	"Privacy compliance and cross-border data transfers",
	"Securities regulation and capital markets",
	"Technology licensing and SaaS contracts",
	"Startup funding and equity compensation",
	"Employment issues and workplace discrimination",
	"Healthcare compliance regulations in Canada",
	"Intellectual property protection and licensing",
	"Environmental compliance in British Columbia",
	"Fintech regulatory compliance",
	"M&A for tech companies",
}

var errExit = errors.New("exit requested")

var actionPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptNewQuery, PromptReportByPracticeArea, PromptResultsToFile, PromptExit},
}

var findCmd = &cobra.Command{
	Use:   "find [query]",
	Short: "Find the lawyers best matching a free-text client legal need",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		find(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(findCmd)

	findCmd.Flags().IntP("top-n", "n", 0, "shortlist size. Default is 5.")
	findCmd.Flags().StringP("exclude-file", "e", "", "special file with lawyer names to exclude. Default is unset.")

	viper.BindPFlag("match.top-n", findCmd.Flags().Lookup("top-n"))
	viper.BindPFlag("roster.exclude-file", findCmd.Flags().Lookup("exclude-file"))
}

// find is the main command for the cli.
func find(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the lexfinder", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil || config.Roster == nil || config.Roster.CSV == "" {
		logger.Fatal("roster csv path is required under roster.csv")
	}

	store := roster.NewStore(config.Roster.CSV, logger)

	snapshot, err := store.Load()
	if err != nil {
		logger.Fatal("loading the roster", zap.Error(err))
	}

	logger.Info("loading the roster", zap.Int("count", snapshot.Len()))

	if config.Roster.Watch {
		if err := store.Watch(); err != nil {
			logger.Fatal("watching the roster file", zap.Error(err))
		}
		defer store.Close()
	}

	bios := loadBios(config, logger)
	availability := loadAvailability(config, logger)

	engine := matching.NewEngine(legal.NewRegistry(), logger)

	narrator := prepareNarrator(ctx, config.AI, logger)

	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		if query, err = promptQuery(); err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
	}

	var attached *roster.Roster
	for {
		snapshot = store.Snapshot()
		if len(bios) > 0 && snapshot != attached {
			report := snapshot.AttachBios(bios, logger)
			logger.Info("attaching bios",
				zap.Int("matched", report.Matched),
				zap.Int("fuzzy", len(report.Fuzzy)),
				zap.Int("unmatched", len(report.Unmatched)),
				zap.Int("ambiguous", len(report.Ambiguous)),
			)
			attached = snapshot
		}

		candidates, err := filtering.Run(ctx, filtering.Deps{Logger: logger}, prepareFilters(config), snapshot.Clone())
		if err != nil {
			logger.Fatal("filtering failed", zap.Error(err))
		}

		results, err := engine.Rank(candidates.Lawyers, query, rankOptions(config))
		if err != nil {
			logger.Fatal("ranking failed", zap.Error(err))
		}

		if len(results) == 0 {
			logger.Info("no matching lawyers found", zap.String("query", query))
		} else {
			explanations := explain(ctx, narrator, logger, query, results)
			render(query, results, availability, explanations)
		}

		if err := handleAction(snapshot, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}

		if query, err = promptQuery(); err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

// handleAction loops over the post-result menu until a new query is requested
// or exit is chosen.
func handleAction(snapshot *roster.Roster, logger *zap.Logger) error {
	for {
		_, action, err := actionPrompt.Run()
		if err != nil {
			return err
		}

		switch action {
		case PromptNewQuery:
			return nil
		case PromptReportByPracticeArea:
			pretty, _ := json.MarshalIndent(snapshot.ReportByPracticeArea(), "", "  ")
			logger.Info(string(pretty), zap.Int("lawyers count", snapshot.Len()))
		case PromptResultsToFile:
			filename, err := snapshot.DumpToTmpFile()
			if err != nil {
				return fmt.Errorf("dump roster to file: %w", err)
			}
			logger.Info("dumping roster to file", zap.String("filename", filename))
		case PromptExit:
			logger.Info("exiting", zap.String("reason", "got exit from prompt"))
			return errExit
		default:
			return fmt.Errorf("invalid action: %s", action)
		}
	}
}

// promptQuery offers the preset matters and falls back to free-text input.
func promptQuery() (string, error) {
	queryPrompt := promptui.Select{
		Label: "Choose a client matter or type your own",
		Items: append(append([]string{}, presetQueries...), PromptOwnQuery),
	}

	_, selected, err := queryPrompt.Run()
	if err != nil {
		return "", err
	}

	if selected != PromptOwnQuery {
		return selected, nil
	}

	input := promptui.Prompt{
		Label: "Client legal need",
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("query must not be empty")
			}
			return nil
		},
	}

	typed, err := input.Run()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(typed), nil
}

func prepareFilters(config *Config) []filtering.Filter {
	skipOnLeave := config.Match != nil && config.Match.SkipOnLeave

	excludeFile := viper.GetString("roster.exclude-file")
	if excludeFile == "" && config.Roster != nil {
		excludeFile = config.Roster.ExcludeFile
	}

	return []filtering.Filter{
		filtering.NewAvailability(skipOnLeave),
		filtering.NewExcludeFile(excludeFile),
	}
}

func rankOptions(config *Config) matching.Options {
	opts := matching.Options{TopN: viper.GetInt("match.top-n")}
	if config.Match != nil {
		if opts.TopN <= 0 {
			opts.TopN = config.Match.TopN
		}
		opts.Exclusions = config.Match.Exclusions
	}
	return opts
}

func loadBios(config *Config, logger *zap.Logger) []*roster.Bio {
	if config.Roster.Bios == "" {
		return nil
	}

	bios, err := roster.LoadBiosCSV(config.Roster.Bios)
	if err != nil {
		logger.Warn("skipping bios", zap.Error(err))
		return nil
	}

	logger.Info("loading bios", zap.Int("count", len(bios)))
	return bios
}

func loadAvailability(config *Config, logger *zap.Logger) map[string]*schedule.Availability {
	if config.Roster.Availability == "" {
		return nil
	}

	table, diagnostics, err := schedule.LoadTable(config.Roster.Availability)
	if err != nil {
		logger.Warn("skipping availability table", zap.Error(err))
		return nil
	}

	for _, diag := range diagnostics {
		logger.Warn("availability table line not understood",
			zap.Int("line", diag.Line),
			zap.String("text", diag.Text),
			zap.String("reason", diag.Reason),
		)
	}

	logger.Info("loading availability table", zap.Int("count", len(table)))
	return table
}

func prepareNarrator(ctx context.Context, cfg *AIConfig, logger *zap.Logger) ai.Narrator {
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	narrator, err := newAINarrator(ctx, cfg, logger)
	if err != nil {
		logger.Warn("skipping AI explanations", zap.Error(err))
		return nil
	}

	return narrator
}

func newAINarrator(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Narrator, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, errors.New("ai.gemini section is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", cfg.Gemini.Model),
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewNarrator(generator, cfg.Gemini.MaxLogLength, genLogger), nil
}

// explain asks the narrator for per-lawyer reasoning. Any failure degrades to
// the built-in default explanations; ranking output never depends on it.
func explain(ctx context.Context, narrator ai.Narrator, logger *zap.Logger, query string, results []*matching.MatchResult) ai.Explanations {
	if narrator == nil {
		return nil
	}

	explanations, err := narrator.Explain(ctx, query, results)
	if err != nil {
		logger.Warn("falling back to default explanations", zap.Error(err))
		return nil
	}

	return explanations
}

func render(query string, results []*matching.MatchResult, availability map[string]*schedule.Availability, explanations ai.Explanations) {
	fmt.Printf("\nTop matches for: %s\n\n", query)

	for i, result := range results {
		fmt.Printf("%d. %s (score: %.1f)\n", i+1, result.Lawyer.Name, result.Score)

		if result.Lawyer.PracticeArea != "" {
			fmt.Printf("   Practice area: %s\n", result.Lawyer.PracticeArea)
		}
		if result.HasDomainExpertise {
			fmt.Printf("   Domain expertise: %s\n", strings.Join(result.MatchedDomains, ", "))
		} else if len(result.MatchedDomains) > 0 {
			fmt.Printf("   Related domains: %s\n", strings.Join(result.MatchedDomains, ", "))
		}

		for _, skill := range result.MatchedSkills {
			fmt.Printf("   - %s: %g points\n", skill.Skill, skill.Points)
		}

		fmt.Printf("   Availability: %s\n", describeAvailability(result.Lawyer, availability))
		fmt.Printf("   %s\n\n", explanations.For(result.Lawyer.Name))
	}
}

func describeAvailability(lawyer *roster.Lawyer, availability map[string]*schedule.Availability) string {
	record, ok := availability[lawyer.Name]
	if !ok || record == nil {
		if lawyer.Availability != "" {
			return lawyer.Availability
		}
		return "unknown"
	}

	var parts []string
	if record.DaysPerWeek > 0 {
		parts = append(parts, fmt.Sprintf("%d days/week", record.DaysPerWeek))
	}
	if record.HoursPerWeek > 0 {
		parts = append(parts, fmt.Sprintf("%d hours/week", record.HoursPerWeek))
	}
	for _, vacation := range record.Vacations {
		parts = append(parts, fmt.Sprintf("vacation %s..%s",
			vacation.Start.Format("2006-01-02"), vacation.End.Format("2006-01-02")))
	}
	if record.EngagementNote != "" {
		parts = append(parts, record.EngagementNote)
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, ", ")
}
