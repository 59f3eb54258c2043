package inherit

import (
	"github.com/jacoelho/otm/internal/facets"
	"github.com/jacoelho/otm/internal/model"
	"github.com/jacoelho/otm/internal/typewalk"
)

func ownerParent(owner model.FacetOwner) (model.FacetOwner, bool) {
	parent := facets.OwnerExtension(owner)
	return parent, parent != nil
}

// ExtensionChain returns owner followed by the owners it extends, nearest
// first. The walk stops at a missing ancestor or the first repeated owner.
func ExtensionChain(owner model.FacetOwner) []model.FacetOwner {
	if model.IsNil(owner) {
		return nil
	}
	return typewalk.Chain(owner, ownerParent)
}

// ExtensionAncestors returns the owners owner extends, nearest first.
func ExtensionAncestors(owner model.FacetOwner) []model.FacetOwner {
	chain := ExtensionChain(owner)
	if len(chain) == 0 {
		return nil
	}
	return chain[1:]
}

// ExtensionRoot returns the last owner of the extension chain.
func ExtensionRoot(owner model.FacetOwner) model.FacetOwner {
	chain := ExtensionChain(owner)
	if len(chain) == 0 {
		return nil
	}
	return chain[len(chain)-1]
}

// FacetChain returns facet followed by the facets with the same kind and
// identity declared along its owner's extension chain, nearest first. Levels
// that do not declare the facet are skipped.
func FacetChain(facet *model.Facet) []*model.Facet {
	if facet == nil {
		return nil
	}
	return facetChain(facet, make(map[*model.Facet]bool))
}

func facetChain(facet *model.Facet, visited map[*model.Facet]bool) []*model.Facet {
	if visited[facet] {
		return nil
	}
	visited[facet] = true
	chain := []*model.Facet{facet}
	identity := facet.Identity()

	var levels []model.FacetOwner
	if parent, ok := facet.Owner.(*model.Facet); ok {
		// A nested contextual facet inherits through the ancestors of the
		// contextual facet that owns it.
		if parents := facetChain(parent, visited); len(parents) > 1 {
			for _, ancestor := range parents[1:] {
				levels = append(levels, ancestor)
			}
		}
	} else {
		levels = ExtensionAncestors(facet.Owner)
	}
	for _, owner := range levels {
		ancestor := facets.FacetOfIdentity(owner, facet.Kind, identity)
		if ancestor == nil || visited[ancestor] {
			continue
		}
		visited[ancestor] = true
		chain = append(chain, ancestor)
	}
	return chain
}

// FacetAncestors returns the facets facet inherits from, nearest first.
func FacetAncestors(facet *model.Facet) []*model.Facet {
	chain := FacetChain(facet)
	if len(chain) == 0 {
		return nil
	}
	return chain[1:]
}

func resourceParent(r *model.Resource) (*model.Resource, bool) {
	ext := model.ExtensionOf(r)
	if ext == nil {
		return nil, false
	}
	parent, ok := ext.Target().(*model.Resource)
	return parent, ok && parent != nil
}

// ResourceChain returns resource followed by the resources it extends,
// nearest first.
func ResourceChain(resource *model.Resource) []*model.Resource {
	if resource == nil {
		return nil
	}
	return typewalk.Chain(resource, resourceParent)
}
