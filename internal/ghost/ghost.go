// Package ghost synthesizes transient facets for contextual structures an
// owner inherits from its extension ancestors without declaring them.
package ghost

import (
	"github.com/jacoelho/otm/internal/facets"
	"github.com/jacoelho/otm/internal/inherit"
	"github.com/jacoelho/otm/internal/model"
)

// FindGhostFacets returns one ghost facet for every facet of kind declared
// by an ancestor of owner whose identity owner does not declare. Ghosts are
// ordered by first appearance walking from the nearest ancestor outward;
// when several ancestors declare the same identity the nearest one wins.
// Facets marked Local are never inherited. Every call allocates new ghosts.
func FindGhostFacets(owner model.FacetOwner, kind model.FacetKind) []*model.Facet {
	if model.IsNil(owner) || !facets.Supports(owner, kind) {
		return nil
	}
	declared := make(map[string]bool)
	for _, facet := range facets.AllFacetsOfKind(owner, kind) {
		declared[facet.Identity()] = true
	}

	var ghosts []*model.Facet
	seen := make(map[string]bool)
	for _, ancestor := range ancestors(owner) {
		for _, facet := range facets.AllFacetsOfKind(ancestor, kind) {
			if facet.Local {
				continue
			}
			identity := facet.Identity()
			if seen[identity] {
				continue
			}
			seen[identity] = true
			if declared[identity] {
				continue
			}
			ghosts = append(ghosts, model.NewGhostFacet(facet, owner))
		}
	}
	return ghosts
}

// FindAllGhostFacets returns the ghosts of every contextual kind owner
// supports, in slot order.
func FindAllGhostFacets(owner model.FacetOwner) []*model.Facet {
	var out []*model.Facet
	for _, kind := range facets.SupportedKinds(owner) {
		if !kind.IsContextual() {
			continue
		}
		out = append(out, FindGhostFacets(owner, kind)...)
	}
	return out
}

// FindGhostActionFacets returns one ghost action facet for every action
// facet declared by an ancestor resource whose name resource does not
// declare. The nearest ancestor wins.
func FindGhostActionFacets(resource *model.Resource) []*model.ActionFacet {
	chain := inherit.ResourceChain(resource)
	if len(chain) < 2 {
		return nil
	}
	declared := make(map[string]bool, len(resource.ActionFacets))
	for _, facet := range resource.ActionFacets {
		if facet != nil {
			declared[facet.Identity()] = true
		}
	}

	var ghosts []*model.ActionFacet
	seen := make(map[string]bool)
	for _, ancestor := range chain[1:] {
		for _, facet := range ancestor.ActionFacets {
			if facet == nil {
				continue
			}
			identity := facet.Identity()
			if seen[identity] {
				continue
			}
			seen[identity] = true
			if declared[identity] {
				continue
			}
			ghosts = append(ghosts, model.NewGhostActionFacet(facet, resource))
		}
	}
	return ghosts
}

// ancestors returns the owners whose facets owner inherits, nearest first.
// For a contextual facet these are its same-identity ancestor facets.
func ancestors(owner model.FacetOwner) []model.FacetOwner {
	facet, ok := owner.(*model.Facet)
	if !ok {
		return inherit.ExtensionAncestors(owner)
	}
	var out []model.FacetOwner
	for _, ancestor := range ancestorFacets(facet) {
		out = append(out, ancestor)
	}
	return out
}

// ancestorFacets resolves the ancestors of a ghost through the facet it
// stands for when its owner chain yields none.
func ancestorFacets(facet *model.Facet) []*model.Facet {
	found := inherit.FacetAncestors(facet)
	if len(found) > 0 || !facet.IsGhost() || facet.GhostOf() == nil {
		return found
	}
	return inherit.FacetChain(facet.GhostOf())
}
