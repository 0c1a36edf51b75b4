// Package driver is the outer boundary spec §4.6 describes: for each input
// file it reads the source bytes (latin-1 encoded), hands them to
// internal/parser, and folds the resulting design file into the project's
// target library — in parallel for parsing, sequentially (in input order)
// for the fold, since Library.AddCST mutates shared state (spec §5).
package driver

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/charmap"

	"github.com/robert-at-pretension-io/vhdlfront/internal/config"
	"github.com/robert-at-pretension-io/vhdlfront/internal/cst"
	"github.com/robert-at-pretension-io/vhdlfront/internal/parser"
	"github.com/robert-at-pretension-io/vhdlfront/internal/project"
	"github.com/robert-at-pretension-io/vhdlfront/internal/vhdlerrors"
)

// Options controls one driver run (spec §6's CLI surface, minus the
// printer-selection flags the caller handles after Run returns).
type Options struct {
	// RootPath is the directory the configured library globs are expanded
	// against.
	RootPath string

	// Ambig requests explicit-ambiguity parsing (the -a/--ambig flag).
	Ambig bool

	// MaxParallel bounds the file-parsing worker pool; 0 picks a small
	// fixed default sized to the job count.
	MaxParallel int

	// PerFileTimeout bounds how long a single file's parse may run before
	// it is abandoned as a failure (spec §5's recommended per-file
	// timeout); 0 disables the timeout.
	PerFileTimeout time.Duration
}

// FileResult is one input file's outcome, used for --debug reporting and
// the process exit code (spec §6: exit 1 on any file failure).
type FileResult struct {
	Path     string
	Library  string
	Design   *cst.DesignFile // nil on failure
	Err      error
	Warnings []error
}

// Run resolves the configured libraries' file sets, parses every file
// concurrently, then folds each parsed file into the project sequentially
// in input order (spec §5). It returns the built project and the per-file
// results; a file that failed to lex/parse or whose fold was rejected
// (library/entity/package conflict) is reported in its FileResult.Err
// rather than aborting the run.
func Run(ctx context.Context, cfg *config.Config, opts Options) (*project.Project, []FileResult) {
	libs, err := cfg.ResolveLibraries(opts.RootPath)
	if err != nil {
		return project.New(), []FileResult{{Err: fmt.Errorf("resolving libraries: %w", err)}}
	}

	type job struct {
		path    string
		library string
	}
	var jobs []job
	for _, lib := range libs {
		for _, f := range lib.Files {
			jobs = append(jobs, job{path: f, library: lib.Name})
		}
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].path < jobs[j].path })

	type parsed struct {
		df       *cst.DesignFile
		err      error
		warnings []error
	}
	parseResults := make([]parsed, len(jobs))

	limit := opts.MaxParallel
	if limit <= 0 {
		limit = 8
	}
	if limit > len(jobs) && len(jobs) > 0 {
		limit = len(jobs)
	}

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			df, perr, warnings := parseOne(gctx, j.path, opts)
			parseResults[i] = parsed{df: df, err: perr, warnings: warnings}
			return nil
		})
	}
	_ = g.Wait()

	proj := project.New()
	results := make([]FileResult, len(jobs))
	for i, j := range jobs {
		res := FileResult{Path: j.path, Library: j.library}
		pr := parseResults[i]
		if pr.err != nil {
			res.Err = pr.err
			results[i] = res
			continue
		}
		res.Warnings = pr.warnings
		res.Design = pr.df

		lib := proj.GetOrAddLibrary(j.library)
		if err := lib.AddCST(j.path, pr.df); err != nil {
			if _, ok := err.(*vhdlerrors.UnsupportedUnit); ok {
				res.Warnings = append(res.Warnings, err)
			} else {
				res.Err = err
			}
		}
		results[i] = res
	}

	return proj, results
}

// parseOne reads and parses a single file, honouring opts.PerFileTimeout
// via a context deadline; a timed-out parse is reported as a failure to
// the caller immediately rather than blocking the worker pool on it (spec
// §5's per-file timeout recommendation). The parse goroutine itself is not
// forcibly killed, matching Go's usual best-effort cancellation.
func parseOne(ctx context.Context, path string, opts Options) (*cst.DesignFile, error, []error) {
	src, err := readLatin1(path)
	if err != nil {
		return nil, err, nil
	}

	if opts.PerFileTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.PerFileTimeout)
		defer cancel()
	}

	type outcome struct {
		df       *cst.DesignFile
		errs     []error
	}
	done := make(chan outcome, 1)
	go func() {
		df, errs := parser.ParseFile(path, src, opts.Ambig)
		done <- outcome{df: df, errs: errs}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", path, ctx.Err()), nil
	case out := <-done:
		if out.df == nil {
			if len(out.errs) == 0 {
				return nil, fmt.Errorf("%s: parse failed", path), nil
			}
			return nil, out.errs[0], out.errs[1:]
		}
		return out.df, nil, out.errs
	}
}

// readLatin1 reads path's bytes and decodes them from ISO-8859-1, the
// legacy single-byte encoding VHDL source historically ships in (spec
// §4.6's "reads file bytes (latin-1 encoded)").
func readLatin1(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decoding %s as latin-1: %w", path, err)
	}
	return string(decoded), nil
}
