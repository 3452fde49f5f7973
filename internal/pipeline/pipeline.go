package pipeline

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/AnyUserName/codecq/internal/manifest"
	"github.com/AnyUserName/codecq/internal/profile"
)

// Config holds all parameters for a batch run.
type Config struct {
	OriginalDir   string
	CompressedDir string
	Profile       profile.Profile
	Workers       int
	Verbose       bool
}

// Pipeline scores every compressed image against its original.
type Pipeline struct {
	cfg Config
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Pipeline{cfg: cfg}
}

// Run executes the batch and returns the manifest.
func (p *Pipeline) Run() (*manifest.Manifest, error) {
	// Step 1: Pair up inputs.
	pairs, unmatched, err := ScanPairs(p.cfg.OriginalDir, p.cfg.CompressedDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("no image pairs found in %s and %s", p.cfg.OriginalDir, p.cfg.CompressedDir)
	}

	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[codecq] found %d pairs (%d unmatched)\n", len(pairs), len(unmatched))
	}

	// Step 2: Score pairs in parallel. Each worker writes only its own slot.
	opts := p.cfg.Profile.SSIMOptions()
	results := make([]processResult, len(pairs))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i, pair := range pairs {
		wg.Add(1)
		go func(idx int, pr Pair) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			if p.cfg.Verbose {
				fmt.Fprintf(os.Stderr, "[codecq] scoring: %s\n", pr.Compressed.RelPath)
			}

			results[idx] = processPair(pr, opts)

			if p.cfg.Verbose && results[idx].err == nil {
				fmt.Fprintf(os.Stderr, "[codecq] done: %s (PSNR %.2f dB, SSIM %.4f)\n",
					pr.Compressed.RelPath, results[idx].entry.PSNR, results[idx].entry.SSIM)
			}
		}(i, pair)
	}
	wg.Wait()

	// Step 3: Collect results into manifest.
	m := manifest.New(p.cfg.Profile.Name)
	m.Unmatched = unmatched

	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		m.Pairs[r.key] = r.entry
	}

	// Report errors but don't fail the entire batch for partial failures.
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[codecq] error: %v\n", e)
		}
		if len(errs) == len(pairs) {
			return nil, fmt.Errorf("all %d pairs failed to score", len(errs))
		}
		fmt.Fprintf(os.Stderr, "[codecq] warning: %d of %d pairs had errors\n",
			len(errs), len(pairs))
	}

	m.BuildInfo = &manifest.BuildInfo{
		Workers:    p.cfg.Workers,
		WindowSize: opts.WindowSize,
		K1:         opts.K1,
		K2:         opts.K2,
	}
	m.Stats.Failed = len(errs)
	m.ComputeStats()
	return m, nil
}
