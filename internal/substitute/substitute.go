// Package substitute redirects references to facets without content toward
// the nearest sibling facet that has some.
package substitute

import (
	"fmt"

	"github.com/jacoelho/otm/internal/content"
	"github.com/jacoelho/otm/internal/facets"
	"github.com/jacoelho/otm/internal/model"
)

// FindNonEmptyFacet returns referenced when it has content. Otherwise it
// returns the first alternate of referenced, for the owner pair of origin
// and referenced, that has content, or referenced unchanged when none does.
// A nil checker uses content.Default. Checker errors are returned wrapped.
func FindNonEmptyFacet(checker content.Checker, origin, referenced model.AbstractFacet) (model.AbstractFacet, error) {
	if model.IsNil(referenced) {
		return referenced, nil
	}
	if checker == nil {
		checker = content.Default
	}
	ok, err := hasContent(checker, referenced)
	if err != nil || ok {
		return referenced, err
	}
	for _, candidate := range AlternateFacets(origin, referenced) {
		ok, err := hasContent(checker, candidate)
		if err != nil {
			return referenced, err
		}
		if ok {
			return candidate, nil
		}
	}
	return referenced, nil
}

func hasContent(checker content.Checker, facet model.AbstractFacet) (bool, error) {
	ok, err := checker.HasContent(facet)
	if err != nil {
		return false, fmt.Errorf("check content of %s: %w", facet.Name().Local, err)
	}
	return ok, nil
}

// AlternateFacets returns the ordered candidates that may replace
// referenced when it has no content. The list is empty when the owner pair
// of origin and referenced has no rule for the referenced kind.
func AlternateFacets(origin, referenced model.AbstractFacet) []model.AbstractFacet {
	if model.IsNil(origin) || model.IsNil(referenced) {
		return nil
	}
	pair := pairOf(origin, referenced)
	if pair == pairNone {
		return nil
	}
	var out []model.AbstractFacet
	for _, kind := range lookup(pair, origin.FacetKind(), referenced.FacetKind()) {
		if candidate := sibling(referenced, kind); candidate != nil {
			out = append(out, candidate)
		}
	}
	return out
}

// sibling returns the facet of kind declared beside referenced.
func sibling(referenced model.AbstractFacet, kind model.FacetKind) model.AbstractFacet {
	if list, ok := referenced.(*model.ListFacet); ok {
		if found := facets.ListFacetOfKind(list.Owner, kind); found != nil {
			return found
		}
		return nil
	}
	owner := referenced.FacetOwner()
	if model.IsNil(owner) {
		return nil
	}
	return facets.AbstractFacetOfKind(owner, kind)
}

func pairOf(origin, referenced model.AbstractFacet) ownerPair {
	from := variantOf(origin)
	to := variantOf(referenced)
	switch {
	case from == variantBusiness && to == variantBusiness:
		return pairBusinessToBusiness
	case from == variantBusiness && to == variantCore:
		return pairBusinessToCore
	case from == variantCore && to == variantBusiness:
		return pairCoreToBusiness
	case from == variantCore && to == variantCore:
		return pairCoreToCore
	case from == variantExtension && to == variantBusiness:
		return pairExtensionToBusiness
	case from == variantExtension && to == variantCore:
		return pairExtensionToCore
	case from == variantCore && to == variantList:
		return pairCoreToList
	}
	return pairNone
}

type variant uint8

const (
	variantOther variant = iota
	variantBusiness
	variantCore
	variantExtension
	variantList
)

// variantOf classifies a facet by its top-level owner. Nested contextual
// facets take the variant of the owner at the top of their nesting.
func variantOf(facet model.AbstractFacet) variant {
	switch facet.(type) {
	case *model.ExtensionPointFacet:
		return variantExtension
	case *model.ListFacet:
		return variantList
	}
	owner := facet.FacetOwner()
	for depth := 0; depth < 64; depth++ {
		switch o := owner.(type) {
		case *model.BusinessObject:
			return variantBusiness
		case *model.CoreObject:
			return variantCore
		case *model.Facet:
			if o == nil {
				return variantOther
			}
			owner = o.Owner
			continue
		}
		return variantOther
	}
	return variantOther
}
