package worker

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akravets/bureauscan/internal/cache"
	"github.com/akravets/bureauscan/internal/model"
	"github.com/akravets/bureauscan/internal/pipeline"
)

// Auditor runs one report audit; satisfied by *pipeline.Pipeline
type Auditor interface {
	AuditText(ctx context.Context, subject, rawText string) (*pipeline.AuditResult, error)
}

// AuditJob audits a single report file, consulting the result cache first
type AuditJob struct {
	Path    string
	Auditor Auditor
	Cache   cache.Cache // nil disables caching
	TTL     time.Duration
}

// AuditOutcome is the result of one file's audit
type AuditOutcome struct {
	Path   string
	Report *model.Report
	Cached bool
	Error  error
}

// GetError returns the job error, if any
func (o *AuditOutcome) GetError() error {
	return o.Error
}

// Execute reads the file, serves from cache when the content hash hits,
// and otherwise runs the full audit and stores the result
func (j *AuditJob) Execute(ctx context.Context) Result {
	data, err := os.ReadFile(j.Path)
	if err != nil {
		return &AuditOutcome{Path: j.Path, Error: fmt.Errorf("read report: %w", err)}
	}

	var key string
	if j.Cache != nil {
		key = cache.ContentKey(data)
		if cached, found := j.Cache.Get(key); found {
			var report model.Report
			if err := json.Unmarshal(cached, &report); err == nil {
				return &AuditOutcome{Path: j.Path, Report: &report, Cached: true}
			}
			// A corrupt entry is re-audited, not fatal
		}
	}

	result, err := j.Auditor.AuditText(ctx, subjectFromPath(j.Path), string(data))
	if err != nil {
		return &AuditOutcome{Path: j.Path, Error: err}
	}

	if j.Cache != nil {
		if data, err := json.Marshal(result.Report); err == nil {
			_ = j.Cache.Set(key, data, j.TTL)
		}
	}

	return &AuditOutcome{Path: j.Path, Report: result.Report}
}

// BatchProcessor audits multiple report files concurrently
type BatchProcessor struct {
	auditor     Auditor
	concurrency int
	cache       cache.Cache
	cacheTTL    time.Duration
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(auditor Auditor, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		auditor:     auditor,
		concurrency: concurrency,
	}
}

// WithCache enables the audit-result cache
func (b *BatchProcessor) WithCache(c cache.Cache, ttl time.Duration) *BatchProcessor {
	b.cache = c
	b.cacheTTL = ttl
	return b
}

// ProcessPaths audits the given report files concurrently. Results are
// drained while jobs are still being submitted; batches larger than the
// pool's channel buffers must not block the submitter.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*AuditOutcome {
	if len(paths) == 0 {
		return []*AuditOutcome{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	go func() {
		for _, path := range paths {
			pool.Submit(&AuditJob{
				Path:    path,
				Auditor: b.auditor,
				Cache:   b.cache,
				TTL:     b.cacheTTL,
			})
		}
	}()

	outcomes := make([]*AuditOutcome, 0, len(paths))
	for range paths {
		result, ok := <-pool.results
		if !ok {
			break
		}
		outcomes = append(outcomes, result.(*AuditOutcome))
	}
	pool.Shutdown()

	return outcomes
}

// ProcessFile reads report paths from a list file and audits them
func (b *BatchProcessor) ProcessFile(ctx context.Context, listPath string) ([]*AuditOutcome, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read path list: %w", err)
	}

	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads file paths from a list file (one per line)
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}

// subjectFromPath mirrors the pipeline's subject naming for cached entries
func subjectFromPath(path string) string {
	base := filepath.Base(path)
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")
	return base
}
