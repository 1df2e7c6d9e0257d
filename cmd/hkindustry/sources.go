// cmd/hkindustry/sources.go
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hkindustry/internal/collect"
	"hkindustry/internal/common/config"
)

// sourcesCmd lists the configured data sources
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List data sources and their record counts",
	RunE:  runSources,
}

func runSources(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fmt.Printf("%-20s %-9s %s\n", "SOURCE", "ENABLED", "RECORDS")
	for _, source := range collect.NewDefaultSources(cfg) {
		if !config.IsSourceEnabled(cfg, source.Name()) {
			fmt.Printf("%-20s %-9s %s\n", source.Name(), "no", "-")
			continue
		}

		records, err := source.Fetch(ctx)
		if err != nil {
			fmt.Printf("%-20s %-9s error: %v\n", source.Name(), "yes", err)
			continue
		}
		fmt.Printf("%-20s %-9s %d\n", source.Name(), "yes", len(records))
	}

	return nil
}
