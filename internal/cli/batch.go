package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akravets/bureauscan/internal/cache"
	"github.com/akravets/bureauscan/internal/pipeline"
	"github.com/akravets/bureauscan/internal/worker"
	"github.com/spf13/cobra"
)

var (
	batchOutDir  string
	batchWorkers int
	batchTimeout time.Duration
	batchNoCache bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <paths.txt>",
	Short: "Audit many report files concurrently",
	Long: `Batch reads report file paths (one per line, # comments allowed) and audits
them concurrently. Each audit is independent and stateless; results are
cached by content hash so unchanged files are not re-audited on the next
run.

One JSON report is written per input file into the output directory.

Example:
  bureauscan batch reports.txt
  bureauscan batch reports.txt --out-dir audits --workers 8`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "audits", "directory for per-report JSON output")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "concurrent workers (default: from config)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "overall batch timeout")
	batchCmd.Flags().BoolVar(&batchNoCache, "no-cache", false, "disable the audit-result cache")
}

func runBatch(cmd *cobra.Command, args []string) error {
	listPath := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Cache.Enabled = cfg.Cache.Enabled && !batchNoCache

	workers := batchWorkers
	if workers <= 0 {
		workers = cfg.Concurrency.BatchWorkers
	}

	if err := os.MkdirAll(batchOutDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	processor := worker.NewBatchProcessor(pipeline.New(cfg), workers)
	if cfg.Cache.Enabled {
		processor.WithCache(newResultCache(cfg.Cache.Dir, cfg.Cache.MemoryTTL, cfg.Cache.DiskTTL), cfg.Cache.DiskTTL)
	}

	outcomes, err := processor.ProcessFile(ctx, listPath)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	succeeded, cached, failed := 0, 0, 0
	for _, outcome := range outcomes {
		if outcome.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", outcome.Path, outcome.Error)
			continue
		}

		outPath := filepath.Join(batchOutDir, outputName(outcome.Path))
		data, err := json.MarshalIndent(outcome.Report, "", "  ")
		if err == nil {
			err = os.WriteFile(outPath, data, 0644)
		}
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: write output: %v\n", outcome.Path, err)
			continue
		}

		succeeded++
		if outcome.Cached {
			cached++
		}
		if verbose {
			marker := "✓"
			if outcome.Cached {
				marker = "✓ (cached)"
			}
			fmt.Fprintf(os.Stderr, "%s %s: %d findings → %s\n",
				marker, outcome.Path, len(outcome.Report.Findings), outPath)
		}
	}

	fmt.Printf("\nBatch complete: %d audited (%d from cache), %d failed\n", succeeded, cached, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d reports failed", failed, len(outcomes))
	}
	return nil
}

// newResultCache builds the configured cache, falling back to memory-only
// when no disk directory is usable
func newResultCache(dir string, memTTL, diskTTL time.Duration) cache.Cache {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cache.NewMemoryCache(memTTL, 10*time.Minute)
		}
		dir = filepath.Join(home, ".bureauscan", "cache")
	}
	return cache.NewLayeredCache(memTTL, dir, diskTTL)
}

// outputName maps an input path to its JSON output file name
func outputName(inputPath string) string {
	base := filepath.Base(inputPath)
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return base + ".audit.json"
}
