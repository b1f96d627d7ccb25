package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/recrutaml/recruta/internal/modeling"
	"github.com/recrutaml/recruta/internal/pipeline"
	"github.com/recrutaml/recruta/internal/trainer"
)

const (
	app = "recruta"
)

type Config struct {
	Sources  *SourcesConfig  `mapstructure:"sources"`
	Output   *OutputConfig   `mapstructure:"output"`
	Cleaning *CleaningConfig `mapstructure:"cleaning"`
	Matching *MatchingConfig `mapstructure:"matching"`
	Labels   *LabelsConfig   `mapstructure:"labels"`
	Trainer  *trainer.Params `mapstructure:"trainer"`
	AI       *AIConfig       `mapstructure:"ai"`
}

type SourcesConfig struct {
	Postings   string `mapstructure:"vagas"`
	Candidates string `mapstructure:"candidatos"`
	Prospects  string `mapstructure:"prospects"`
}

type OutputConfig struct {
	Dir   string `mapstructure:"dir"`
	Excel bool   `mapstructure:"excel"`
}

type CleaningConfig struct {
	GarbageValues []string `mapstructure:"garbage-values"`
}

type MatchingConfig struct {
	Technologies []string `mapstructure:"technologies"`
	Skills       []string `mapstructure:"skills"`
}

type LabelsConfig struct {
	Success []string `mapstructure:"success"`
	Failure []string `mapstructure:"failure"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "recruta builds the recruitment matching dataset and trains the hire-outcome model",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is recruta.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Only the commands that process data need the config file.
	if runCmd.CalledAs() == "" && suggestVocabCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

// pipelineConfig translates the file configuration into the pipeline's view
// of a run.
func pipelineConfig(config *Config) *pipeline.Config {
	cfg := &pipeline.Config{}
	if config.Sources != nil {
		cfg.PostingsPath = config.Sources.Postings
		cfg.CandidatesPath = config.Sources.Candidates
		cfg.ProspectsPath = config.Sources.Prospects
	}
	if config.Cleaning != nil {
		cfg.GarbageValues = config.Cleaning.GarbageValues
	}
	if config.Matching != nil {
		cfg.Technologies = config.Matching.Technologies
		cfg.Skills = config.Matching.Skills
	}
	if config.Labels != nil {
		cfg.Vocabulary = modeling.Vocabulary{
			Success: config.Labels.Success,
			Failure: config.Labels.Failure,
		}
	}
	return cfg
}

func outputDir(config *Config) string {
	if config.Output != nil && config.Output.Dir != "" {
		return config.Output.Dir
	}
	return "artifacts"
}
