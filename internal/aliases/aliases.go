// Package aliases derives owner, sibling and facet aliases from one another
// by name. Facet aliases are named "<owner alias>_<facet identity>" and list
// facet aliases append "_List" to the alias of their item facet.
package aliases

import (
	"strings"

	"github.com/jacoelho/otm/internal/facets"
	"github.com/jacoelho/otm/internal/model"
)

// OwnerAlias returns the owner alias a facet alias was derived from. When
// the owner declares no alias of the derived name, a ghost alias bound to
// the owner is returned. It returns nil when alias is not a facet alias or
// its name does not follow the facet alias pattern.
func OwnerAlias(alias *model.Alias) *model.Alias {
	if alias == nil {
		return nil
	}
	facet, ok := alias.Owner.(model.AbstractFacet)
	if !ok || model.IsNil(facet) {
		return nil
	}
	if list, ok := facet.(*model.ListFacet); ok {
		item := itemAlias(alias, list)
		if item == nil {
			return nil
		}
		return OwnerAlias(item)
	}
	owner := facet.FacetOwner()
	if model.IsNil(owner) {
		return nil
	}
	prefix, ok := strings.CutSuffix(alias.LocalName, "_"+identity(facet))
	if !ok || prefix == "" {
		return nil
	}
	if found := model.FindAlias(model.OwnerAliases(owner), prefix); found != nil {
		return found
	}
	return model.NewGhostAlias(prefix, owner, alias)
}

// itemAlias returns the alias of the item facet a list facet alias
// corresponds to, synthesizing a ghost when the item declares none.
func itemAlias(alias *model.Alias, list *model.ListFacet) *model.Alias {
	if model.IsNil(list.Item) {
		return nil
	}
	name, ok := strings.CutSuffix(alias.LocalName, model.ListSuffix)
	if !ok || name == "" {
		return nil
	}
	if found := model.FindAlias(list.Item.FacetAliases(), name); found != nil {
		return found
	}
	return model.NewGhostAlias(name, list.Item, alias)
}

// SiblingAlias returns the alias of the facet of targetKind that shares an
// owner with the facet alias belongs to. A ghost facet stands in for a
// missing sibling and a ghost alias for a missing alias.
func SiblingAlias(alias *model.Alias, targetKind model.FacetKind) *model.Alias {
	owner := OwnerAlias(alias)
	if owner == nil {
		return nil
	}
	facetOwner, ok := owner.Owner.(model.FacetOwner)
	if !ok {
		return nil
	}
	sibling := facets.AbstractFacetOfKind(facetOwner, targetKind)
	if model.IsNil(sibling) {
		if !facets.Supports(facetOwner, targetKind) {
			return nil
		}
		sibling = model.NewGhostFacetOfKind(targetKind, facetOwner)
	}
	return aliasOn(sibling, owner)
}

// FacetAlias returns the alias declared on the facet of kind, context and
// label of the owner ownerAlias belongs to, named after ownerAlias. It
// returns nil when the facet or the alias does not exist.
func FacetAlias(ownerAlias *model.Alias, kind model.FacetKind, context, label string) *model.Alias {
	if ownerAlias == nil {
		return nil
	}
	owner, ok := ownerAlias.Owner.(model.FacetOwner)
	if !ok || model.IsNil(owner) {
		return nil
	}
	var facet model.AbstractFacet
	if kind == model.KindSimple {
		facet = facets.AbstractFacetOfKind(owner, kind)
	} else if f := facets.ContextualFacetOfKind(owner, kind, context, label); f != nil {
		facet = f
	}
	if model.IsNil(facet) {
		return nil
	}
	return model.FindAlias(facet.FacetAliases(), ownerAlias.LocalName+"_"+identity(facet))
}

// ListFacetAlias returns the alias of the core object list facet whose item
// has kind, named after ownerAlias.
func ListFacetAlias(ownerAlias *model.Alias, kind model.FacetKind) *model.Alias {
	if ownerAlias == nil {
		return nil
	}
	core, ok := ownerAlias.Owner.(*model.CoreObject)
	if !ok || core == nil {
		return nil
	}
	list := facets.ListFacetOfKind(core, kind)
	if list == nil {
		return nil
	}
	return model.FindAlias(list.Aliases, ownerAlias.LocalName+"_"+kind.Identity()+model.ListSuffix)
}

// GhostFacetAliases returns the aliases a ghost facet would carry: one
// ghost alias per alias of its owner. When the owner is itself a ghost
// facet its aliases are derived first, so nested ghosts are named
// "<owner alias>_<outer>_<inner>". Each call allocates new aliases.
func GhostFacetAliases(ghost *model.Facet) []*model.Alias {
	if ghost == nil || model.IsNil(ghost.Owner) {
		return nil
	}
	ownerAliases := model.OwnerAliases(ghost.Owner)
	if outer, ok := ghost.Owner.(*model.Facet); ok && outer.IsGhost() {
		ownerAliases = GhostFacetAliases(outer)
	}
	if len(ownerAliases) == 0 {
		return nil
	}
	out := make([]*model.Alias, 0, len(ownerAliases))
	for _, owner := range ownerAliases {
		out = append(out, model.NewGhostAlias(owner.LocalName+"_"+ghost.Identity(), ghost, owner))
	}
	return out
}

// Corresponding returns the alias of target that corresponds to alias,
// following the owner, facet, sibling and list facet axes. It returns nil
// when target is not structurally related to the entity alias names.
func Corresponding(alias *model.Alias, target model.NamedEntity) *model.Alias {
	if alias == nil || model.IsNil(target) {
		return nil
	}
	if alias.Owner == target {
		return alias
	}
	if owner, ok := alias.Owner.(model.FacetOwner); ok {
		if list, ok := target.(*model.ListFacet); ok && list.Owner != nil && model.FacetOwner(list.Owner) == owner {
			return orGhost(ListFacetAlias(alias, list.FacetKind()), alias.LocalName+"_"+identity(list), list, alias)
		}
		if facet, ok := target.(model.AbstractFacet); ok && facet.FacetOwner() == owner {
			return aliasOn(facet, alias)
		}
	}
	// A contextual facet is both an owner and a facet.
	if owned, ok := alias.Owner.(model.AbstractFacet); ok {
		parent := owned.FacetOwner()
		if model.IsNil(parent) {
			return nil
		}
		if target == model.NamedEntity(parent) {
			return OwnerAlias(alias)
		}
		if facet, ok := target.(model.AbstractFacet); ok && facet.FacetOwner() == parent {
			if ownerAlias := OwnerAlias(alias); ownerAlias != nil {
				return aliasOn(facet, ownerAlias)
			}
		}
	}
	return nil
}

// aliasOn returns the alias of facet named after ownerAlias, or a ghost.
func aliasOn(facet model.AbstractFacet, ownerAlias *model.Alias) *model.Alias {
	name := ownerAlias.LocalName + "_" + identity(facet)
	return orGhost(model.FindAlias(facet.FacetAliases(), name), name, facet, ownerAlias)
}

func orGhost(found *model.Alias, name string, owner model.NamedEntity, source *model.Alias) *model.Alias {
	if found != nil {
		return found
	}
	return model.NewGhostAlias(name, owner, source)
}

// identity returns the name suffix an alias of facet carries.
func identity(facet model.AbstractFacet) string {
	switch f := facet.(type) {
	case *model.Facet:
		return f.Identity()
	case *model.ListFacet:
		if model.IsNil(f.Item) {
			return ""
		}
		return identity(f.Item) + model.ListSuffix
	}
	return facet.FacetKind().Identity()
}
