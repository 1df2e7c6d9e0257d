// cmd/hkindustry/run.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hkindustry/internal/analyze"
	"hkindustry/internal/collect"
	"hkindustry/internal/common/config"
	"hkindustry/internal/common/database"
	"hkindustry/internal/common/observability"
	"hkindustry/internal/export"
	"hkindustry/internal/pipeline"
	"hkindustry/internal/store"
)

var (
	runOutputDir string
	runThreshold float64
)

// runCmd executes the full analysis pipeline
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full analysis pipeline",
	Long: `Collects company records from every enabled source, classifies them,
and writes the configured report formats to the output directory.

When the store is enabled, the run and its classified companies are also
persisted to the SQLite database.`,
	RunE: runAnalysis,
}

func init() {
	runCmd.Flags().StringVarP(&runOutputDir, "output", "o", "", "Output directory for reports (overrides export.output_dir)")
	runCmd.Flags().Float64VarP(&runThreshold, "threshold", "t", 0, "Classification threshold (overrides analysis.threshold)")
}

func runAnalysis(cmd *cobra.Command, args []string) error {
	if runOutputDir != "" {
		cfg.Export.OutputDir = runOutputDir
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Analysis.Threshold = runThreshold
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		zapLog.Info("Shutdown signal received, canceling run...")
		cancel()
	}()

	zapLog.Info("Starting industry analysis...")

	obs := observability.New("hkindustry")
	defer obs.Shutdown()

	classifier, err := buildClassifier(cfg)
	if err != nil {
		return err
	}

	// --- Result store (optional) with retry ---
	var st *store.Store
	if cfg.Store.Enabled {
		var sqlite *database.SQLiteClient
		err = retryWithBackoff(func() error {
			var err error
			sqlite, err = database.NewSQLite(cfg.Store)
			if err != nil {
				return err
			}
			return sqlite.Ping(ctx)
		}, 5, 2*time.Second, zapLog, "SQLite open")

		if err != nil {
			return fmt.Errorf("store open failed after retries: %w", err)
		}
		defer sqlite.Close()

		st = store.New(sqlite, log)
		if err := st.Migrate(ctx); err != nil {
			return err
		}
		zapLog.Info("Result store ready", zap.String("path", cfg.Store.Path))
	}

	// --- Classification cache (optional); unavailability degrades to
	// direct classification rather than failing the run ---
	var cache *analyze.ClassificationCache
	if cfg.Cache.Enabled {
		redisClient, err := database.NewRedis(cfg.Cache)
		if err == nil {
			err = redisClient.Ping(ctx)
		}
		if err != nil {
			zapLog.Warn("Cache unavailable, classifying without it", zap.Error(err))
		} else {
			defer redisClient.Close()
			cache = analyze.NewClassificationCache(
				redisClient.GetClient(),
				config.GetDuration(cfg.Cache.TTL),
				classifier,
				log,
			)
			zapLog.Info("Classification cache connected", zap.String("address", cfg.Cache.Address))
		}
	}

	if cfg.Metrics.Enabled {
		startMetricsServer(cfg.Metrics.ListenAddress)
	}

	collector := collect.NewCollector(cfg, collect.NewDefaultSources(cfg), log)
	analyzer := analyze.NewAnalyzer(classifier, cache, cfg.Analysis.Parallelism, log)
	exporter := export.New(cfg.Export, log)

	p := pipeline.New(cfg, collector, analyzer, exporter, st, obs, log)
	result, err := p.Run(ctx)
	if err != nil {
		return err
	}

	printRunSummary(result)
	return nil
}

// startMetricsServer exposes health and Prometheus endpoints for scheduled
// or long-running invocations.
func startMetricsServer(addr string) {
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening", zap.String("address", addr))
		if err := http.ListenAndServe(addr, nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()
}

func printRunSummary(result *pipeline.RunResult) {
	summary := result.Results.Summary

	fmt.Println()
	fmt.Println("Analysis complete.")
	fmt.Printf("  Run ID:            %s\n", result.RunID)
	fmt.Printf("  Companies:         %d\n", summary.TotalCompaniesAnalyzed)
	fmt.Printf("  Medical R&D:       %d\n", summary.MedicalRDCompanies)
	fmt.Printf("  Patent brokerage:  %d\n", summary.PatentBrokerageCompanies)
	fmt.Printf("  Other:             %d\n", summary.OtherCompanies)
	fmt.Printf("  Duration:          %s\n", result.Duration.Round(time.Millisecond))

	if len(result.Artifacts) > 0 {
		fmt.Println()
		fmt.Println("Reports:")
		for _, artifact := range result.Artifacts {
			fmt.Printf("  [%s] %s\n", artifact.Format, artifact.Path)
		}
	}
}
