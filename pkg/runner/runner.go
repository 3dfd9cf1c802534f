package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/yaklabco/msgparse/internal/logging"
	"github.com/yaklabco/msgparse/pkg/fsutil"
	"github.com/yaklabco/msgparse/pkg/parser"
)

// Runner parses many message files with a shared parser.
type Runner struct {
	// Parser is safe for concurrent use by the workers.
	Parser *parser.Parser
}

// New creates a Runner. A nil parser means parser defaults.
func New(p *parser.Parser) *Runner {
	if p == nil {
		p = parser.New(parser.DefaultOptions())
	}
	return &Runner{Parser: p}
}

// Run discovers files under opts.Paths and parses them concurrently.
// Outcomes are returned in path order regardless of completion order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)
	started := time.Now()

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	jobs = min(jobs, len(files))

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Go(func() {
			r.worker(ctx, workCh, outCh, opts)
		})
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("scan cancelled: %w", ctx.Err())
	}

	logger.Debug("scan finished",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesFailed, result.Stats.FilesErrored,
		logging.FieldLinks, len(result.Stats.Messages.Links),
		logging.FieldPunycode, len(result.Stats.Messages.PunycodeWarnings),
		logging.FieldJobs, jobs,
		logging.FieldDuration, time.Since(started))

	return result, nil
}

// worker parses files from workCh and sends outcomes to outCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome, opts Options) {
	for path := range workCh {
		if ctx.Err() != nil {
			return
		}

		outcome := r.processFile(ctx, path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// processFile reads and parses a single file.
func (r *Runner) processFile(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, info, err := fsutil.ReadFile(ctx, path, opts.MaxFileSize)
	if err != nil {
		outcome.Error = err
		logging.FromContext(ctx).Debug("skipping file", logging.FieldPath, path, logging.FieldError, err)
		return outcome
	}

	text := string(content)
	outcome.Info = info
	outcome.Elements = r.Parser.Parse(text, opts.Mode)
	outcome.Stats = parser.Summarize(text, outcome.Elements)
	return outcome
}
