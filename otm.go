// Package otm loads OpenTravel Model (OTM) libraries and resolves the
// inherited structure code generators need: facets, ghosts, aliases,
// inherited members and dependency closures.
package otm

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	otmerrors "github.com/jacoelho/otm/errors"
	"github.com/jacoelho/otm/internal/content"
	"github.com/jacoelho/otm/internal/ctxlog"
	"github.com/jacoelho/otm/internal/loader"
	"github.com/jacoelho/otm/internal/model"
	"github.com/jacoelho/otm/internal/navigate"
	"github.com/jacoelho/otm/internal/view"
	"github.com/jacoelho/otm/internal/visitor"
)

// View is the resolved view of a facet owner.
type View = view.Owner

// Visitor receives the nodes reached by Walk.
type Visitor = visitor.Visitor

// VisitorAdapter implements Visitor with defaults; embed it and override
// the methods of interest.
type VisitorAdapter = visitor.Adapter

// Model is a loaded, linked model.
type Model struct {
	graph    *model.Model
	warnings otmerrors.DiagnosticList
}

// Load loads the model documents at paths in fsys. Directories are walked
// for .hcl, .yaml and .yml files.
func Load(fsys fs.FS, paths ...string) (*Model, error) {
	return LoadWithOptions(context.Background(), fsys, NewLoadOptions(), paths...)
}

// LoadWithOptions loads model documents with explicit configuration.
func LoadWithOptions(ctx context.Context, fsys fs.FS, opts LoadOptions, paths ...string) (*Model, error) {
	what := strings.Join(paths, ", ")
	if fsys == nil {
		return nil, fmt.Errorf("load model %s: nil filesystem", what)
	}
	sources, err := loader.ReadSources(fsys, paths...)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", what, err)
	}
	return loadSources(ctx, what, opts, sources)
}

// LoadFiles loads model documents from the local filesystem.
func LoadFiles(ctx context.Context, opts LoadOptions, paths ...string) (*Model, error) {
	what := strings.Join(paths, ", ")
	var sources []loader.Source
	for _, p := range paths {
		dir := filepath.Dir(p)
		found, err := loader.ReadSources(os.DirFS(dir), filepath.Base(p))
		if err != nil {
			return nil, fmt.Errorf("load model %s: %w", what, err)
		}
		for _, src := range found {
			src.Name = filepath.Join(dir, filepath.FromSlash(src.Name))
			sources = append(sources, src)
		}
	}
	return loadSources(ctx, what, opts, sources)
}

// LoadSource loads a single in-memory document. name selects the format by
// extension unless the options force one.
func LoadSource(ctx context.Context, opts LoadOptions, name string, data []byte) (*Model, error) {
	return loadSources(ctx, name, opts, []loader.Source{{Name: name, Data: data}})
}

func loadSources(ctx context.Context, what string, opts LoadOptions, sources []loader.Source) (*Model, error) {
	cfg, err := opts.config()
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", what, err)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ctxlog.WithLogger(ctx, opts.logger)
	res, err := loader.New(cfg).LoadSources(ctx, sources...)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", what, err)
	}
	return &Model{graph: res.Model, warnings: res.Warnings}, nil
}

// Warnings returns the problems that did not stop loading: cycles and, when
// allowed, unresolved references.
func (m *Model) Warnings() []otmerrors.Diagnostic {
	if m == nil {
		return nil
	}
	return slices.Clone(m.warnings)
}

// Libraries returns the namespaces of the loaded libraries in load order.
// Builtin libraries come last.
func (m *Model) Libraries() []string {
	if m == nil {
		return nil
	}
	out := make([]string, 0, len(m.graph.Libraries))
	for _, lib := range m.graph.Libraries {
		out = append(out, lib.Namespace.String())
	}
	return out
}

// Views returns the resolved view of every facet owner in the model.
func (m *Model) Views(opts ViewOptions) ([]*View, error) {
	if m == nil {
		return nil, nil
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	views, err := view.BuildModel(m.graph, opts.view())
	if err != nil {
		return nil, fmt.Errorf("resolve views: %w", err)
	}
	return views, nil
}

// View returns the resolved view of the facet owner called name. Names are
// "{namespace}Local", "prefix:Local" or a bare local name.
func (m *Model) View(name string, opts ViewOptions) (*View, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	e, err := m.find(name)
	if err != nil {
		return nil, err
	}
	owner, ok := model.AsFacetOwner(e)
	if !ok {
		return nil, fmt.Errorf("resolve view %s: not a facet owner", name)
	}
	v, err := view.Build(owner, opts.view())
	if err != nil {
		return nil, fmt.Errorf("resolve view %s: %w", name, err)
	}
	return v, nil
}

// WriteViews encodes views in the format selected by opts.
func WriteViews(w io.Writer, views []*View, opts ViewOptions) error {
	format, err := view.ParseFormat(opts.format)
	if err != nil {
		return fmt.Errorf("view options: %w", err)
	}
	return view.Encode(w, format, views)
}

// Dependencies returns the qualified names of every entity name depends on,
// name included, in navigation order without duplicates.
func (m *Model) Dependencies(name string, opts ViewOptions) ([]string, error) {
	e, err := m.find(name)
	if err != nil {
		return nil, err
	}
	nav := navigate.Options{SkipGhosts: !opts.includeGhosts}
	if opts.substituteEmpty {
		nav.Checker = content.Default
	}
	rec := &visitor.Recorder{}
	if err := navigate.NewDependency(rec, nav).NavigateEntity(e); err != nil {
		return nil, fmt.Errorf("dependencies of %s: %w", name, err)
	}
	seen := make(map[model.QName]bool, len(rec.Names))
	var out []string
	for _, q := range rec.Names {
		if seen[q] {
			continue
		}
		seen[q] = true
		out = append(out, q.String())
	}
	return out, nil
}

// Walk reports every declared node of the model to v, library by library.
func (m *Model) Walk(v Visitor) error {
	if m == nil {
		return nil
	}
	return navigate.NewStructural(v).NavigateModel(m.graph)
}

// find resolves a member or operation name.
func (m *Model) find(name string) (model.NamedEntity, error) {
	if m == nil {
		return nil, fmt.Errorf("entity %s: no model loaded", name)
	}
	q := model.ParseQName(name)
	prefix := ""
	if q.Namespace.IsEmpty() {
		if p, local, ok := strings.Cut(q.Local, ":"); ok {
			prefix, q.Local = p, local
		}
	}
	for _, lib := range m.graph.Libraries {
		switch {
		case !q.Namespace.IsEmpty() && lib.Namespace != q.Namespace:
			continue
		case prefix != "" && lib.Prefix != prefix:
			continue
		}
		if e, ok := lib.Member(q.Local); ok {
			return e, nil
		}
		for _, member := range lib.Members {
			svc, ok := member.(*model.Service)
			if !ok {
				continue
			}
			for _, op := range svc.Operations {
				if op.LocalName == q.Local {
					return op, nil
				}
			}
		}
	}
	return nil, fmt.Errorf("entity %s: not found", name)
}
