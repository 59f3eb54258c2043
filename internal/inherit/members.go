package inherit

import (
	"github.com/jacoelho/otm/internal/facets"
	"github.com/jacoelho/otm/internal/model"
)

// InheritedAttributes returns the attributes facet exposes once its local
// hierarchy and every extension ancestor are merged in. Ancestor members
// precede descendant members and declaration order is kept within a level.
// Unless includeDuplicateNames is set, a name seen earlier in the result
// drops later attributes of the same name, so the most ancestral wins.
func InheritedAttributes(facet *model.Facet, includeDuplicateNames bool) []*model.Attribute {
	var out []*model.Attribute
	for _, level := range facets.LocalHierarchy(facet) {
		out = append(out, chainAttributes(level)...)
	}
	if includeDuplicateNames {
		return out
	}
	return firstByName(out)
}

// InheritedProperties returns the elements facet exposes once its local
// hierarchy and every extension ancestor are merged in. An ancestor element
// whose type shares an inheritance root with an element contributed by a
// more derived level is eclipsed.
func InheritedProperties(facet *model.Facet) []*model.Property {
	var out []*model.Property
	for _, level := range facets.LocalHierarchy(facet) {
		out = append(out, chainProperties(level)...)
	}
	return out
}

// InheritedIndicators returns the indicators facet exposes once its local
// hierarchy and every extension ancestor are merged in. The first indicator
// of a given name wins.
func InheritedIndicators(facet *model.Facet) []*model.Indicator {
	var out []*model.Indicator
	for _, level := range facets.LocalHierarchy(facet) {
		out = append(out, chainIndicators(level)...)
	}
	return firstByName(out)
}

func chainAttributes(facet *model.Facet) []*model.Attribute {
	var acc []*model.Attribute
	for _, level := range FacetChain(facet) {
		acc = prepend(acc, level.Attributes)
	}
	return acc
}

func chainIndicators(facet *model.Facet) []*model.Indicator {
	var acc []*model.Indicator
	for _, level := range FacetChain(facet) {
		acc = prepend(acc, level.Indicators)
	}
	return acc
}

func chainProperties(facet *model.Facet) []*model.Property {
	var acc []*model.Property
	eclipsed := make(map[Root]bool)
	for _, level := range FacetChain(facet) {
		// Roots eclipse ancestor levels only; a level may reference the same
		// root more than once.
		contributed := make(map[Root]bool)
		kept := make([]*model.Property, 0, len(level.Properties))
		for _, prop := range level.Properties {
			root, ok := InheritanceRoot(prop.Type)
			if ok {
				if eclipsed[root] {
					continue
				}
				contributed[root] = true
			}
			kept = append(kept, prop)
		}
		for root := range contributed {
			eclipsed[root] = true
		}
		acc = prepend(acc, kept)
	}
	return acc
}

// prepend places level in front of acc. Walking nearest-first and prepending
// every level yields root-first order overall.
func prepend[T any](acc, level []T) []T {
	if len(level) == 0 {
		return acc
	}
	out := make([]T, 0, len(level)+len(acc))
	out = append(out, level...)
	return append(out, acc...)
}

type declared interface {
	DeclaredName() string
}

func firstByName[T declared](members []T) []T {
	seen := make(map[string]bool, len(members))
	out := make([]T, 0, len(members))
	for _, m := range members {
		name := m.DeclaredName()
		if name != "" {
			if seen[name] {
				continue
			}
			seen[name] = true
		}
		out = append(out, m)
	}
	return out
}
