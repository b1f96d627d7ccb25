package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/recrutaml/recruta/internal/artifacts"
	"github.com/recrutaml/recruta/internal/logger"
)

var checkArtifactsCmd = &cobra.Command{
	Use:   "check-artifacts",
	Short: "Verify that an artifacts directory holds a complete, consistent export",
	Run: func(cmd *cobra.Command, _ []string) {
		checkArtifacts(cmd)
	},
}

func init() {
	rootCmd.AddCommand(checkArtifactsCmd)

	checkArtifactsCmd.Flags().String("dir", "artifacts", "artifacts directory to verify")
}

func checkArtifacts(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	dir := cmd.Flag("dir").Value.String()

	verified, err := artifacts.Check(dir)
	if err != nil {
		logger.Fatal("artifacts check failed", zap.String("dir", dir), zap.Error(err))
	}

	logger.Info("artifacts are consistent",
		zap.String("dir", dir),
		zap.Strings("files", verified),
	)
}
