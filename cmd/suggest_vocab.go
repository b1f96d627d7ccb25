package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/recrutaml/recruta/internal/ai"
	"github.com/recrutaml/recruta/internal/ai/gemini"
	"github.com/recrutaml/recruta/internal/logger"
	"github.com/recrutaml/recruta/internal/pipeline"
	"github.com/recrutaml/recruta/internal/secrets"
)

var suggestVocabCmd = &cobra.Command{
	Use:   "suggest-vocab",
	Short: "Ask Gemini to sort statuses outside the labeling vocabularies into success and failure",
	Run: func(_ *cobra.Command, _ []string) {
		suggestVocab()
	},
}

func init() {
	rootCmd.AddCommand(suggestVocabCmd)
}

func suggestVocab() {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}
	if config == nil {
		logger.Fatal("config is required")
	}

	if config.Sources == nil || config.Sources.Prospects == "" {
		logger.Fatal("prospects source is required under sources.prospects to collect statuses")
	}

	state, err := pipeline.New(pipelineConfig(config), logger).Run(ctx)
	if err != nil {
		logger.Fatal("pipeline failed", zap.Error(err))
	}

	if len(state.Unlabeled) == 0 {
		logger.Info("exiting", zap.String("reason", "every status is already covered by the vocabularies"))
		return
	}

	advisor, err := newAdvisor(ctx, config.AI, logger)
	if err != nil {
		logger.Fatal("building vocabulary advisor",
			zap.Error(err),
			zap.String("hint", "enable ai in the configuration and set ai.gemini.api-key-file or GEMINI_API_KEY_FILE"),
		)
	}

	suggestions, err := advisor.SuggestVocabulary(ctx, state.Unlabeled)
	if err != nil {
		logger.Fatal("requesting suggestions", zap.Error(err))
	}

	// Print the review table on stdout; the suggestions are for a human, not
	// for the pipeline.
	fmt.Println("Suggested vocabulary placements (review before adding to labels):")
	for _, suggestion := range suggestions {
		fmt.Printf("  %-12s %q  (%s)\n", suggestion.Outcome, suggestion.Status, suggestion.Reason)
	}
}

func newAdvisor(ctx context.Context, cfg *AIConfig, log *zap.Logger) (ai.Advisor, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, fmt.Errorf("ai advisor is not enabled in the configuration")
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, err
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, log)
	if err != nil {
		return nil, err
	}

	return gemini.NewAdvisor(generator, log, cfg.Gemini.MaxLogLength), nil
}
