package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/recrutaml/recruta/internal/artifacts"
	"github.com/recrutaml/recruta/internal/dataset"
	"github.com/recrutaml/recruta/internal/logger"
	"github.com/recrutaml/recruta/internal/pipeline"
	"github.com/recrutaml/recruta/internal/prep"
	"github.com/recrutaml/recruta/internal/trainer"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var overwritePrompt = promptui.Select{
	Label: "Artifacts directory already holds a model. Overwrite?",
	Items: []string{PromptYes, PromptNo},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: ingest, clean, join, label, train and export",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("auto-aprove", "y", false, "do not ask for confirmation before overwriting existing artifacts")
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting recruta", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	if config.Sources == nil || config.Sources.Prospects == "" {
		logger.Fatal("prospects source is required under sources.prospects to build training rows")
	}

	if !confirmOverwrite(cmd, config) {
		logger.Info("exiting", zap.String("reason", "overwrite declined"))
		return
	}

	state, err := pipeline.New(pipelineConfig(config), logger).Run(ctx)
	if err != nil {
		logger.Fatal("pipeline failed", zap.Error(err))
	}

	if len(state.Unlabeled) > 0 {
		logger.Info("statuses outside the vocabularies were skipped",
			zap.Int("count", len(state.Unlabeled)),
			zap.Strings("statuses", state.Unlabeled),
			zap.String("hint", "review them with the suggest-vocab command"),
		)
	}

	if state.Rows.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no labeled rows to train on"))
		return
	}

	params := trainer.DefaultParams()
	if config.Trainer != nil {
		params = *config.Trainer
	}

	model, eval, err := trainer.Train(state.Features, params)
	if err != nil {
		logger.Fatal("training failed", zap.Error(err))
	}

	logger.Info("model trained",
		zap.Int("train_rows", eval.TrainRows),
		zap.Int("test_rows", eval.TestRows),
		zap.Float64("accuracy", eval.Accuracy),
		zap.Float64("positive_rate", eval.PositiveRate),
	)

	if err := export(config, logger, state, model, eval); err != nil {
		logger.Fatal("exporting artifacts", zap.Error(err))
	}

	logger.Info("run finished", zap.String("artifacts", outputDir(config)))
}

// confirmOverwrite asks before replacing an existing model bundle unless the
// auto-approve flag is set.
func confirmOverwrite(cmd *cobra.Command, config *Config) bool {
	if cmd.Flag("auto-aprove").Value.String() == "true" {
		return true
	}
	if _, err := os.Stat(filepath.Join(outputDir(config), artifacts.ModelFile)); err != nil {
		return true
	}

	_, action, err := overwritePrompt.Run()
	if err != nil {
		return false
	}
	return action == PromptYes
}

func export(config *Config, log *zap.Logger, state *pipeline.State, model *trainer.Model, eval trainer.Evaluation) error {
	exporter, err := artifacts.NewExporter(outputDir(config), log)
	if err != nil {
		return err
	}

	if err := exporter.WritePostings(state.Postings); err != nil {
		return err
	}
	if err := exporter.WriteCandidates(state.Candidates); err != nil {
		return err
	}
	if err := exporter.WriteModel(model); err != nil {
		return err
	}

	academic, professional := prep.LevelMaps()
	maps := artifacts.EngineeringMaps{
		LanguageLevels:     prep.LanguageLevels(),
		AcademicLevels:     academic,
		ProfessionalLevels: professional,
	}
	if config.Matching != nil {
		maps.PostingTechnologies = config.Matching.Technologies
		maps.CandidateSkills = config.Matching.Skills
	}
	if err := exporter.WriteEngineering(maps); err != nil {
		return err
	}

	if err := exporter.WriteExamples(selectExamples(state, model)); err != nil {
		return err
	}

	if config.Output != nil && config.Output.Excel {
		if err := exporter.WriteSummary(state.Postings, state.Candidates, eval); err != nil {
			return err
		}
	}
	return nil
}

// selectExamples picks one true positive and one true negative for the
// dashboard. When the model gets no row of a class right, the first row of
// that class stands in so the export is never empty for a represented class.
func selectExamples(state *pipeline.State, model *trainer.Model) []artifacts.Example {
	var truePositive, trueNegative *artifacts.Example
	var firstPositive, firstNegative *artifacts.Example

	for i, row := range state.Rows.Items {
		score := model.Score(state.Features.X[i])
		example := toExample(row, score)

		if row.Label == 1 {
			if firstPositive == nil {
				firstPositive = &example
			}
			if truePositive == nil && model.Predict(state.Features.X[i]) == 1 {
				truePositive = &example
			}
		} else {
			if firstNegative == nil {
				firstNegative = &example
			}
			if trueNegative == nil && model.Predict(state.Features.X[i]) == 0 {
				trueNegative = &example
			}
		}
	}

	if truePositive == nil {
		truePositive = firstPositive
	}
	if trueNegative == nil {
		trueNegative = firstNegative
	}

	examples := make([]artifacts.Example, 0, 2)
	if truePositive != nil {
		truePositive.Kind = "verdadeiro_positivo"
		examples = append(examples, *truePositive)
	}
	if trueNegative != nil {
		trueNegative.Kind = "verdadeiro_negativo"
		examples = append(examples, *trueNegative)
	}
	return examples
}

func toExample(row *dataset.TrainingRow, score float64) artifacts.Example {
	return artifacts.Example{
		PostingTitle:  row.Prospect.PostingTitle,
		CandidateName: row.Prospect.CandidateName,
		Status:        row.Prospect.Status,
		Label:         row.Label,
		Score:         score,
	}
}
