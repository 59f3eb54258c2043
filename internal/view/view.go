// Package view builds resolved, serialisable snapshots of facet owners: every
// facet with its local hierarchy, the members it inherits and the aliases it
// carries.
package view

import (
	"fmt"

	"github.com/jacoelho/otm/internal/aliases"
	"github.com/jacoelho/otm/internal/content"
	"github.com/jacoelho/otm/internal/facets"
	"github.com/jacoelho/otm/internal/ghost"
	"github.com/jacoelho/otm/internal/inherit"
	"github.com/jacoelho/otm/internal/model"
	"github.com/jacoelho/otm/internal/substitute"
)

// maxDepth bounds contextual facet nesting.
const maxDepth = 32

// Options controls what a view includes.
type Options struct {
	// IncludeDuplicateNames keeps inherited attributes that share a name
	// with a more ancestral attribute.
	IncludeDuplicateNames bool
	// IncludeGhosts adds the contextual facets an owner inherits without
	// declaring them.
	IncludeGhosts bool
	// SubstituteEmpty redirects element types that reference a facet
	// without content to the nearest sibling facet that has some.
	SubstituteEmpty bool
	// Checker decides whether a facet has content. Nil uses content.Default.
	Checker content.Checker
}

// Owner is the resolved view of a facet owner.
type Owner struct {
	Name       string      `json:"name" yaml:"name"`
	Kind       string      `json:"kind" yaml:"kind"`
	Extends    string      `json:"extends,omitempty" yaml:"extends,omitempty"`
	Root       string      `json:"root,omitempty" yaml:"root,omitempty"`
	Aliases    []string    `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Simple     *Simple     `json:"simple,omitempty" yaml:"simple,omitempty"`
	Facets     []Facet     `json:"facets,omitempty" yaml:"facets,omitempty"`
	ListFacets []ListFacet `json:"list_facets,omitempty" yaml:"list_facets,omitempty"`
}

// Simple is the simple facet of a core object.
type Simple struct {
	Name     string            `json:"name" yaml:"name"`
	Type     string            `json:"type,omitempty" yaml:"type,omitempty"`
	Base     []string          `json:"base,omitempty" yaml:"base,omitempty"`
	Aliases  []string          `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Examples map[string]string `json:"examples,omitempty" yaml:"examples,omitempty"`
}

// ListFacet is a repeating core object facet.
type ListFacet struct {
	Name    string   `json:"name" yaml:"name"`
	Item    string   `json:"item" yaml:"item"`
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// Facet is a resolved facet. Ghost facets name the facet they stand for in
// GhostOf.
type Facet struct {
	Name       string      `json:"name" yaml:"name"`
	Kind       string      `json:"kind" yaml:"kind"`
	Identity   string      `json:"identity" yaml:"identity"`
	Ghost      bool        `json:"ghost,omitempty" yaml:"ghost,omitempty"`
	GhostOf    string      `json:"ghost_of,omitempty" yaml:"ghost_of,omitempty"`
	Hierarchy  []string    `json:"hierarchy" yaml:"hierarchy"`
	Attributes []Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Properties []Property  `json:"properties,omitempty" yaml:"properties,omitempty"`
	Indicators []Indicator `json:"indicators,omitempty" yaml:"indicators,omitempty"`
	Aliases    []string    `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Contextual []Facet     `json:"contextual,omitempty" yaml:"contextual,omitempty"`
}

// Attribute is an inherited attribute. From names the declaring entity.
type Attribute struct {
	Name      string `json:"name" yaml:"name"`
	Type      string `json:"type,omitempty" yaml:"type,omitempty"`
	Mandatory bool   `json:"mandatory,omitempty" yaml:"mandatory,omitempty"`
	Reference bool   `json:"reference,omitempty" yaml:"reference,omitempty"`
	From      string `json:"from" yaml:"from"`
}

// Property is an inherited element. When its facet type was substituted,
// Declared keeps the type the element was declared with.
type Property struct {
	Name      string `json:"name" yaml:"name"`
	Type      string `json:"type,omitempty" yaml:"type,omitempty"`
	Declared  string `json:"declared,omitempty" yaml:"declared,omitempty"`
	Repeat    int    `json:"repeat,omitempty" yaml:"repeat,omitempty"`
	Mandatory bool   `json:"mandatory,omitempty" yaml:"mandatory,omitempty"`
	Reference bool   `json:"reference,omitempty" yaml:"reference,omitempty"`
	From      string `json:"from" yaml:"from"`
}

// Indicator is an inherited indicator.
type Indicator struct {
	Name             string `json:"name" yaml:"name"`
	PublishAsElement bool   `json:"publish_as_element,omitempty" yaml:"publish_as_element,omitempty"`
	From             string `json:"from" yaml:"from"`
}

type builder struct {
	opts Options
}

// Build returns the resolved view of owner. The only error source is the
// content checker.
func Build(owner model.FacetOwner, opts Options) (*Owner, error) {
	if model.IsNil(owner) {
		return nil, nil
	}
	if opts.Checker == nil {
		opts.Checker = content.Default
	}
	b := &builder{opts: opts}
	return b.owner(owner)
}

// BuildModel returns views of every facet owner declared in m, operations
// included, in library and declaration order. Builtin libraries are skipped.
func BuildModel(m *model.Model, opts Options) ([]*Owner, error) {
	if m == nil {
		return nil, nil
	}
	var out []*Owner
	add := func(owner model.FacetOwner) error {
		v, err := Build(owner, opts)
		if err != nil {
			return err
		}
		out = append(out, v)
		return nil
	}
	for _, lib := range m.Libraries {
		if lib.Builtin {
			continue
		}
		for _, member := range lib.Members {
			switch e := member.(type) {
			case *model.Service:
				for _, op := range e.Operations {
					if err := add(op); err != nil {
						return nil, err
					}
				}
			case model.FacetOwner:
				if err := add(e); err != nil {
					return nil, err
				}
			}
		}
	}
	return out, nil
}

func (b *builder) owner(owner model.FacetOwner) (*Owner, error) {
	v := &Owner{
		Name:    owner.Name().String(),
		Kind:    ownerKind(owner),
		Aliases: aliasNames(model.OwnerAliases(owner)),
	}
	if ext := model.ExtensionOf(owner); ext != nil {
		v.Extends = ext.ExtendsName.String()
	}
	if root, ok := inherit.InheritanceRoot(owner); ok && root.Owner != owner.Name() {
		v.Root = root.Owner.String()
	}

	if core, ok := owner.(*model.CoreObject); ok {
		v.Simple = simple(core.Simple)
		for _, list := range facets.ListFacets(core) {
			v.ListFacets = append(v.ListFacets, ListFacet{
				Name:    list.Name().Local,
				Item:    entityName(list.Item),
				Aliases: aliasNames(list.Aliases),
			})
		}
	}

	fs, err := b.facets(owner, 0)
	if err != nil {
		return nil, fmt.Errorf("view %s: %w", owner.Name().Local, err)
	}
	v.Facets = fs
	return v, nil
}

// facets resolves the facets declared directly by owner followed by its
// ghosts.
func (b *builder) facets(owner model.FacetOwner, depth int) ([]Facet, error) {
	if depth > maxDepth {
		return nil, nil
	}
	var declared []*model.Facet
	if parent, ok := owner.(*model.Facet); ok {
		declared = parent.Contextual
	} else {
		declared = facets.AllFacets(owner)
	}
	var out []Facet
	for _, f := range declared {
		v, err := b.facet(f, depth)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if !b.opts.IncludeGhosts {
		return out, nil
	}
	for _, g := range ghost.FindAllGhostFacets(owner) {
		v, err := b.facet(g, depth)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (b *builder) facet(f *model.Facet, depth int) (Facet, error) {
	v := Facet{
		Name:     f.LocalName(),
		Kind:     f.Kind.String(),
		Identity: f.Identity(),
		Ghost:    f.IsGhost(),
	}
	if src := f.GhostOf(); src != nil {
		v.GhostOf = src.Name().String()
	}
	for _, level := range facets.LocalHierarchy(f) {
		v.Hierarchy = append(v.Hierarchy, level.LocalName())
	}
	for _, a := range inherit.InheritedAttributes(f, b.opts.IncludeDuplicateNames) {
		v.Attributes = append(v.Attributes, Attribute{
			Name:      a.DeclaredName(),
			Type:      typeName(a.Type, a.TypeName),
			Mandatory: a.Mandatory,
			Reference: a.Reference,
			From:      entityName(a.Owner),
		})
	}
	for _, p := range inherit.InheritedProperties(f) {
		prop, err := b.property(f, p)
		if err != nil {
			return Facet{}, err
		}
		v.Properties = append(v.Properties, prop)
	}
	for _, i := range inherit.InheritedIndicators(f) {
		v.Indicators = append(v.Indicators, Indicator{
			Name:             i.DeclaredName(),
			PublishAsElement: i.PublishAsElement,
			From:             entityName(i.Owner),
		})
	}
	if f.IsGhost() {
		v.Aliases = aliasNames(aliases.GhostFacetAliases(f))
	} else {
		v.Aliases = aliasNames(f.Aliases)
	}
	if f.IsContextual() {
		nested, err := b.facets(f, depth+1)
		if err != nil {
			return Facet{}, err
		}
		v.Contextual = nested
	}
	return v, nil
}

func (b *builder) property(origin *model.Facet, p *model.Property) (Property, error) {
	v := Property{
		Name:      p.DeclaredName(),
		Type:      typeName(p.Type, p.TypeName),
		Repeat:    p.Repeat,
		Mandatory: p.Mandatory,
		Reference: p.Reference,
		From:      entityName(p.Owner),
	}
	if !b.opts.SubstituteEmpty {
		return v, nil
	}
	referenced, ok := model.AsAbstractFacet(p.Type)
	if !ok {
		return v, nil
	}
	target, err := substitute.FindNonEmptyFacet(b.opts.Checker, origin, referenced)
	if err != nil {
		return Property{}, err
	}
	if target != referenced {
		v.Declared = v.Type
		v.Type = target.Name().String()
	}
	return v, nil
}

func simple(f *model.SimpleFacet) *Simple {
	if f == nil {
		return nil
	}
	v := &Simple{
		Name:    f.Name().Local,
		Type:    typeName(f.Type, f.TypeName),
		Aliases: aliasNames(f.Aliases),
	}
	// Parent types of the declared type, nearest first.
	if chain := inherit.TypeChain(f.Type); len(chain) > 1 {
		for _, parent := range chain[1:] {
			v.Base = append(v.Base, parent.Name().String())
		}
	}
	if len(f.Examples) > 0 {
		v.Examples = make(map[string]string, len(f.Examples))
		for _, ex := range f.Examples {
			v.Examples[ex.Context] = ex.Value
		}
	}
	return v
}

func ownerKind(owner model.FacetOwner) string {
	switch owner.(type) {
	case *model.BusinessObject:
		return "business_object"
	case *model.CoreObject:
		return "core_object"
	case *model.ChoiceObject:
		return "choice_object"
	case *model.Operation:
		return "operation"
	case *model.Facet:
		return "contextual_facet"
	}
	return "unknown"
}

func typeName(t model.NamedEntity, declared model.QName) string {
	if !model.IsNil(t) {
		return t.Name().String()
	}
	return declared.String()
}

func entityName(e model.NamedEntity) string {
	if model.IsNil(e) {
		return ""
	}
	return e.Name().Local
}

func aliasNames(list []*model.Alias) []string {
	if len(list) == 0 {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.Name().Local)
	}
	return out
}
