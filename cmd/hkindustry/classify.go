// cmd/hkindustry/classify.go
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hkindustry/internal/classify"
)

var classifyThreshold float64

// classifyCmd runs a one-shot classification of a description string
var classifyCmd = &cobra.Command{
	Use:   "classify [description]",
	Short: "Classify a single company description",
	Long: `Runs one description through the configured classifier and prints the
label, confidence, and industry codes.

Example:
  hkindustry classify "Clinical research and biotech development in Shatin"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().Float64VarP(&classifyThreshold, "threshold", "t", 0, "Classification threshold (overrides analysis.threshold)")
}

func runClassify(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("threshold") {
		cfg.Analysis.Threshold = classifyThreshold
	}

	classifier, err := buildClassifier(cfg)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	result := classifier.Classify(text)
	codes := classify.IndustryCodes(result.Label)

	fmt.Printf("Label:       %s\n", result.Label)
	fmt.Printf("Confidence:  %.4f\n", result.Confidence)
	fmt.Printf("ISIC code:   %s\n", codes.ISICCode)
	fmt.Printf("HSIC code:   %s\n", codes.HSICCode)
	fmt.Printf("Industry:    %s\n", codes.Description)

	return nil
}
