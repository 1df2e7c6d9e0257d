// cmd/hkindustry/main.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hkindustry/internal/common/config"
	"hkindustry/internal/common/logger"
)

var (
	// Global flags
	cfgFile string
	verbose bool

	// Shared state built by initApp for every command except version.
	cfg    *config.Config
	zapLog *zap.Logger
	log    logger.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hkindustry",
	Short: "Hong Kong industry analysis pipeline",
	Long: `hkindustry analyzes Hong Kong company data for two under-classified
industries: medical research & development and patent brokerage.

It collects company records from the configured datasets, classifies each
record with a keyword-overlap scorer, aggregates industry and geographic
distributions, and writes the analysis reports (JSON, Excel, slide deck,
text summary, HTML charts).

Run 'hkindustry run' to execute the full pipeline.`,
	PersistentPreRunE: initApp,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if zapLog != nil {
			_ = zapLog.Sync()
		}
	},
}

// initApp loads configuration and builds the shared logger. The version
// command works without either.
func initApp(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFromFile(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	zapLog = logger.New(level, cfg.Logging.Format)
	log = logger.NewZapAdapter(zapLog)

	return nil
}

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: configs/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
