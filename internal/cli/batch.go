package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ppiankov/veridoc/internal/pipeline"
	"github.com/ppiankov/veridoc/internal/worker"
	"github.com/spf13/cobra"
)

var (
	batchWorkers int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Verify multiple documents from a file in parallel",
	Long: `Batch verifies multiple document URLs concurrently:
- Read URLs from input file (one per line, # comments allowed)
- Each document gets an isolated verification run with its own caches
- Write one JSON report per document to the output directory

Example:
  veridoc batch docs.txt
  veridoc batch docs.txt --workers 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchWorkers, "workers", 4, "number of concurrent verifications")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./veridoc-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Batch.Workers = batchWorkers

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p := pipeline.New(cfg)
	processor := worker.NewBatchProcessor(p, cfg.Batch.Workers)

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return err
	}

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.DocURL, result.Err)
			continue
		}

		outPath := filepath.Join(outputDir, result.Report.DocID+".json")
		data, err := json.MarshalIndent(result.Report, "", "  ")
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: encode report: %v\n", result.DocURL, err)
			continue
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: write report: %v\n", result.DocURL, err)
			continue
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ %s -> %s\n", result.DocURL, outPath)
		}
	}

	fmt.Fprintf(os.Stderr, "Verified %d documents, %d failed\n", len(results)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d verifications failed", failed, len(results))
	}
	return nil
}
