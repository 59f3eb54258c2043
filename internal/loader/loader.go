// Package loader reads model documents written in HCL or YAML and links
// them into an entity graph.
package loader

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"

	otmerrors "github.com/jacoelho/otm/errors"
	"github.com/jacoelho/otm/internal/ctxlog"
	"github.com/jacoelho/otm/internal/model"
)

// Format is the syntax of a model document.
type Format string

const (
	// FormatAuto selects the format from the file extension.
	FormatAuto Format = ""
	// FormatHCL is the HCL native syntax.
	FormatHCL Format = "hcl"
	// FormatYAML is YAML, one library per YAML document.
	FormatYAML Format = "yaml"
)

// ParseFormat maps a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "hcl":
		return FormatHCL, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, fmt.Errorf("unknown document format %q", s)
	}
}

// DetectFormat returns the format implied by a file name.
func DetectFormat(name string) Format {
	switch strings.ToLower(path.Ext(name)) {
	case ".hcl":
		return FormatHCL
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// Config holds configuration for the model loader.
type Config struct {
	// FS is where Load reads documents from.
	FS fs.FS

	// Format overrides extension based format detection.
	Format Format

	// AllowUnresolved records references to unknown entities as warnings
	// instead of failing the load. Such references stay dangling.
	AllowUnresolved bool
}

// Source is a model document held in memory.
type Source struct {
	Name   string
	Data   []byte
	Format Format
}

// Result is a linked model and the problems that did not stop loading.
type Result struct {
	Model    *model.Model
	Warnings otmerrors.DiagnosticList
}

// Loader loads model documents into an entity graph.
type Loader struct {
	config Config
}

// New creates a loader with the given configuration.
func New(cfg Config) *Loader {
	return &Loader{config: cfg}
}

// Load reads the named files from the configured filesystem and loads them.
// Directories are walked for .hcl, .yaml and .yml files in lexical order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*Result, error) {
	if l.config.FS == nil {
		return nil, fmt.Errorf("load model: no filesystem configured")
	}
	sources, err := ReadSources(l.config.FS, paths...)
	if err != nil {
		return nil, err
	}
	return l.LoadSources(ctx, sources...)
}

// LoadSources decodes and links in-memory documents.
func (l *Loader) LoadSources(ctx context.Context, sources ...Source) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("model loader started", "sources", len(sources))

	var (
		docs  []*Document
		diags otmerrors.DiagnosticList
	)
	for _, src := range sources {
		decoded, err := l.decode(src)
		if err != nil {
			if list, ok := otmerrors.AsDiagnostics(err); ok {
				diags = append(diags, list...)
				continue
			}
			return nil, err
		}
		logger.Debug("decoded model document", "file", src.Name, "libraries", len(decoded))
		docs = append(docs, decoded...)
	}
	if len(diags) > 0 {
		return nil, diags
	}

	b := newBuilder(ctx, l.config)
	return b.run(docs)
}

func (l *Loader) decode(src Source) ([]*Document, error) {
	format := src.Format
	if format == FormatAuto {
		format = l.config.Format
	}
	if format == FormatAuto {
		format = DetectFormat(src.Name)
	}
	switch format {
	case FormatHCL:
		return decodeHCL(src.Name, src.Data)
	case FormatYAML:
		return decodeYAML(src.Name, src.Data)
	default:
		return nil, otmerrors.DiagnosticList{{
			Code:    string(otmerrors.ErrUnknownFormat),
			Message: "cannot determine document format",
			File:    src.Name,
		}}
	}
}

// ReadSources reads documents from fsys. Directories contribute every model
// document below them.
func ReadSources(fsys fs.FS, paths ...string) ([]Source, error) {
	var sources []Source
	seen := make(map[string]bool)
	add := func(name string) error {
		if seen[name] {
			return nil
		}
		seen[name] = true
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("read model document %s: %w", name, err)
		}
		sources = append(sources, Source{Name: name, Data: data})
		return nil
	}

	for _, p := range paths {
		info, err := fs.Stat(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read model document %s: %w", p, err)
		}
		if !info.IsDir() {
			if err := add(p); err != nil {
				return nil, err
			}
			continue
		}
		err = fs.WalkDir(fsys, p, func(name string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || DetectFormat(name) == FormatAuto {
				return nil
			}
			return add(name)
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", p, err)
		}
	}
	return sources, nil
}
