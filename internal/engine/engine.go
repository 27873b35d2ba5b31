package engine

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"

	"github.com/secretaudit/secretaudit/internal/classify"
	"github.com/secretaudit/secretaudit/internal/files"
	"github.com/secretaudit/secretaudit/internal/git"
	"github.com/secretaudit/secretaudit/internal/ignore"
	"github.com/secretaudit/secretaudit/internal/rules"
	"github.com/secretaudit/secretaudit/internal/scan"
	"github.com/secretaudit/secretaudit/internal/types"
)

// IgnoreFileName is the repo-local ignore file consulted on every scan.
const IgnoreFileName = ".secretauditignore"

// Config controls scanning behavior including scope, performance, and filters.
type Config struct {
	Root         string
	IncludeGlobs string // comma-separated doublestar globs; positive filter
	ExcludeGlobs string // comma-separated doublestar globs; subtracted last
	MaxBytes     int64  // skip files larger than this (0 = 1 MiB default)
	Threads      int    // worker count (0 = GOMAXPROCS)
	Registry     *rules.Registry
	Progress     func() // invoked once per scanned file, may be nil
}

// Result contains categorized findings and basic scan statistics.
type Result struct {
	Findings     []types.Finding
	FilesScanned int
	FilesSkipped int
	Duration     time.Duration

	// SkipErrors aggregates per-file read failures. They never abort the
	// run; callers may surface them after reporting.
	SkipErrors error
}

// Scan runs a scan and returns only findings (without stats).
func Scan(cfg Config) ([]types.Finding, error) {
	res, err := ScanWithStats(cfg)
	if err != nil {
		return nil, err
	}
	return res.Findings, nil
}

// ScanWithStats enumerates tracked files, scans eligible ones concurrently,
// classifies surviving findings, and returns them in deterministic order
// (tracked-file order, registry order within a file). The scan as a whole
// fails only when the file listing itself fails.
func ScanWithStats(cfg Config) (Result, error) {
	var result Result
	started := time.Now()

	reg := cfg.Registry
	if reg == nil {
		reg = rules.Default()
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 1 << 20
	}
	if cfg.Threads <= 0 {
		cfg.Threads = runtime.GOMAXPROCS(0)
	}

	tracked, err := git.TrackedFiles(cfg.Root)
	if err != nil {
		return result, err
	}

	ign, _ := ignore.Load(filepath.Join(cfg.Root, IgnoreFileName))

	var targets []string
	for _, rel := range tracked {
		if !allowedByGlobs(rel, cfg) {
			continue
		}
		if ign.Match(rel) {
			continue
		}
		if !files.Eligible(cfg.Root, rel) {
			continue
		}
		targets = append(targets, rel)
	}

	// Per-target result slots keep workers lock-free and the merge order
	// independent of scheduling.
	slots := make([][]types.Finding, len(targets))
	errs := make([]error, len(targets))
	skipped := make([]bool, len(targets))

	var wg sync.WaitGroup
	jobs := make(chan int)
	var progressMu sync.Mutex

	worker := func() {
		defer wg.Done()
		for i := range jobs {
			slots[i], errs[i], skipped[i] = scanOne(cfg.Root, targets[i], cfg.MaxBytes, reg)
			if cfg.Progress != nil {
				progressMu.Lock()
				cfg.Progress()
				progressMu.Unlock()
			}
		}
	}

	workers := cfg.Threads
	if workers > len(targets) && len(targets) > 0 {
		workers = len(targets)
	}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go worker()
	}
	for i := range targets {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var merr *multierror.Error
	for i := range targets {
		if errs[i] != nil {
			merr = multierror.Append(merr, errs[i])
		}
		if skipped[i] {
			result.FilesSkipped++
			continue
		}
		result.FilesScanned++
		for _, f := range slots[i] {
			f.Category = classify.Categorize(f)
			result.Findings = append(result.Findings, f)
		}
	}

	result.Duration = time.Since(started)
	result.SkipErrors = merr.ErrorOrNil()
	return result, nil
}

// scanOne reads and scans a single file. Read failures and oversized files
// skip the file without failing the run; a tracked file missing from the
// working tree is skipped silently.
func scanOne(root, rel string, maxBytes int64, reg *rules.Registry) ([]types.Finding, error, bool) {
	abs := filepath.Join(root, filepath.FromSlash(rel))
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, true
		}
		log.Warn().Err(err).Str("file", rel).Msg("skipping unreadable file")
		return nil, err, true
	}
	if info.Size() > maxBytes {
		log.Debug().Str("file", rel).Int64("size", info.Size()).Msg("skipping oversized file")
		return nil, nil, true
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		log.Warn().Err(err).Str("file", rel).Msg("skipping unreadable file")
		return nil, err, true
	}
	return scan.File(rel, data, reg), nil, false
}

// CountTargets estimates the number of files a scan would process. It mirrors
// the selection logic of ScanWithStats without reading file contents.
func CountTargets(cfg Config) (int, error) {
	tracked, err := git.TrackedFiles(cfg.Root)
	if err != nil {
		return 0, err
	}
	ign, _ := ignore.Load(filepath.Join(cfg.Root, IgnoreFileName))
	n := 0
	for _, rel := range tracked {
		if !allowedByGlobs(rel, cfg) {
			continue
		}
		if ign.Match(rel) {
			continue
		}
		if !files.Eligible(cfg.Root, rel) {
			continue
		}
		n++
	}
	return n, nil
}
