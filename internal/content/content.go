// Package content decides whether a facet has anything to render.
package content

import (
	"github.com/jacoelho/otm/internal/inherit"
	"github.com/jacoelho/otm/internal/model"
)

// Checker reports whether a facet has renderable content. Implementations
// are supplied by code generators; errors are returned to the caller as is.
type Checker interface {
	HasContent(facet model.AbstractFacet) (bool, error)
}

// CheckerFunc adapts a function to Checker.
type CheckerFunc func(facet model.AbstractFacet) (bool, error)

// HasContent calls f.
func (f CheckerFunc) HasContent(facet model.AbstractFacet) (bool, error) {
	return f(facet)
}

// Members is the default Checker. A facet has content when it or one of the
// facets it inherits from declares a member. A simple facet has content
// when it, or the simple facet of an extended core object, is typed. A list
// facet has the content of its item.
type Members struct{}

// Default is the checker used when none is configured.
var Default Checker = Members{}

// HasContent implements Checker.
func (Members) HasContent(facet model.AbstractFacet) (bool, error) {
	return hasContent(facet, 0), nil
}

func hasContent(facet model.AbstractFacet, depth int) bool {
	if model.IsNil(facet) || depth > 8 {
		return false
	}
	switch f := facet.(type) {
	case *model.Facet:
		for _, level := range inherit.FacetChain(f) {
			if level.HasDeclaredMembers() {
				return true
			}
		}
		if f.IsGhost() && f.GhostOf() != nil {
			return hasContent(f.GhostOf(), depth+1)
		}
	case *model.SimpleFacet:
		if f.Owner == nil {
			return typed(f)
		}
		for _, owner := range inherit.ExtensionChain(f.Owner) {
			if core, ok := owner.(*model.CoreObject); ok && typed(core.Simple) {
				return true
			}
		}
	case *model.ListFacet:
		return hasContent(f.Item, depth+1)
	case *model.ExtensionPointFacet:
		return len(f.Attributes) > 0 || len(f.Properties) > 0 || len(f.Indicators) > 0
	}
	return false
}

func typed(f *model.SimpleFacet) bool {
	return f != nil && (!model.IsNil(f.Type) || !f.TypeName.IsZero())
}
