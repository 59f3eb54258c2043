package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/jacoelho/otm"
	otmerrors "github.com/jacoelho/otm/errors"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("otmresolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "json", "output format: json or yaml")
	inputFormat := fs.String("input", "", "force document format: hcl or yaml (default: by extension)")
	viewName := fs.String("view", "", "print only the view of this entity (QNAME, prefix:Local or Local)")
	depsName := fs.String("deps", "", "print the dependency closure of this entity instead of views")
	duplicates := fs.Bool("duplicates", false, "keep inherited attributes with duplicate names")
	ghosts := fs.Bool("ghosts", true, "include inherited contextual facets")
	substitute := fs.Bool("substitute", false, "redirect references to empty facets")
	allowUnresolved := fs.Bool("allow-unresolved", false, "report unknown references as warnings")
	logLevel := fs.String("log-level", "warn", "log level: debug, info, warn or error")
	logFormat := fs.String("log-format", "text", "log format: text or json")
	cpuProfilePath := fs.String("cpuprofile", "", "write CPU profile to file")
	memProfilePath := fs.String("memprofile", "", "write memory profile to file")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s [options] <model.hcl|model.yaml|dir>...\n\n", os.Args[0]),
			writeln(stderr, "Loads OpenTravel Model (OTM) documents and prints resolved facet views."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	paths := fs.Args()
	if len(paths) == 0 {
		if err := writeln(stderr, "error: at least one model document is required"); err != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}

	logger, err := newLogger(stderr, *logLevel, *logFormat)
	if err != nil {
		if writeErr := writef(stderr, "error: %v\n", err); writeErr != nil {
			return 1
		}
		return 2
	}

	loadOpts := otm.NewLoadOptions().
		WithFormat(*inputFormat).
		WithLogger(logger).
		WithAllowUnresolved(*allowUnresolved)
	viewOpts := otm.NewViewOptions().
		WithFormat(*format).
		WithIncludeDuplicateNames(*duplicates).
		WithIncludeGhosts(*ghosts).
		WithSubstituteEmpty(*substitute)
	if err := errors.Join(loadOpts.Validate(), viewOpts.Validate()); err != nil {
		if writeErr := writef(stderr, "error: %v\n", err); writeErr != nil {
			return 1
		}
		return 2
	}

	if *cpuProfilePath != "" {
		stopCPUProfile, err := startCPUProfile(*cpuProfilePath)
		if err != nil {
			_ = writef(stderr, "error starting CPU profile: %v\n", err)
			return 1
		}
		defer func() {
			if err := stopCPUProfile(); err != nil {
				_ = writef(stderr, "error stopping CPU profile: %v\n", err)
			}
		}()
	}

	if *memProfilePath != "" {
		defer func() {
			if err := writeMemProfile(*memProfilePath); err != nil {
				_ = writef(stderr, "error writing memory profile: %v\n", err)
			}
		}()
	}

	m, err := otm.LoadFiles(context.Background(), loadOpts, paths...)
	if err != nil {
		if diags, ok := otmerrors.AsDiagnostics(err); ok {
			for _, d := range diags {
				if writeErr := writeln(stderr, d.Error()); writeErr != nil {
					return 1
				}
			}
			_ = writef(stderr, "%s: model has %d problem(s)\n", strings.Join(paths, ", "), len(diags))
			return 1
		}
		_ = writef(stderr, "error loading model: %v\n", err)
		return 1
	}
	for _, w := range m.Warnings() {
		if err := writef(stderr, "warning: %s\n", w.Error()); err != nil {
			return 1
		}
	}

	if *depsName != "" {
		deps, err := m.Dependencies(*depsName, viewOpts)
		if err != nil {
			_ = writef(stderr, "error: %v\n", err)
			return 1
		}
		for _, name := range deps {
			if err := writeln(stdout, name); err != nil {
				return 1
			}
		}
		return 0
	}

	var views []*otm.View
	if *viewName != "" {
		v, err := m.View(*viewName, viewOpts)
		if err != nil {
			_ = writef(stderr, "error: %v\n", err)
			return 1
		}
		views = []*otm.View{v}
	} else {
		views, err = m.Views(viewOpts)
		if err != nil {
			_ = writef(stderr, "error: %v\n", err)
			return 1
		}
	}
	if err := otm.WriteViews(stdout, views, viewOpts); err != nil {
		_ = writef(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("invalid log format %q", format)
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}

func startCPUProfile(path string) (func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create cpu profile %s: %w", path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		if closeErr := f.Close(); closeErr != nil {
			return nil, fmt.Errorf("start cpu profile %s: %w (close failed: %w)", path, err, closeErr)
		}
		return nil, fmt.Errorf("start cpu profile %s: %w", path, err)
	}
	return func() error {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			return fmt.Errorf("close cpu profile %s: %w", path, err)
		}
		return nil
	}, nil
}

func writeMemProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create mem profile %s: %w", path, err)
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		if closeErr := f.Close(); closeErr != nil {
			return fmt.Errorf("write mem profile %s: %w (close failed: %w)", path, err, closeErr)
		}
		return fmt.Errorf("write mem profile %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close mem profile %s: %w", path, err)
	}
	return nil
}
