package facets

import "github.com/jacoelho/otm/internal/model"

// LocalHierarchy returns the facets of facet's owner that facet specializes,
// ordered root to leaf. facet is always the last element.
//
//	business object: ID => [ID]; Summary => [ID, Summary];
//	                 Detail, Custom => [ID, Summary, self]
//	core object:     Detail => [Summary, Detail]
//	choice object:   Choice => [Shared, Choice]
//	operation:       [self]
//
// A contextual facet nested in another contextual facet extends the
// hierarchy of the facet that owns it.
func LocalHierarchy(facet *model.Facet) []*model.Facet {
	if facet == nil {
		return nil
	}
	var prefix []*model.Facet
	switch owner := facet.Owner.(type) {
	case *model.BusinessObject:
		switch facet.Kind {
		case model.KindDetail, model.KindCustom:
			prefix = appendPresent(prefix, owner.ID, owner.Summary)
		case model.KindSummary:
			prefix = appendPresent(prefix, owner.ID)
		}
	case *model.CoreObject:
		if facet.Kind == model.KindDetail {
			prefix = appendPresent(prefix, owner.Summary)
		}
	case *model.ChoiceObject:
		if facet.Kind == model.KindChoice {
			prefix = appendPresent(prefix, owner.Shared)
		}
	case *model.Facet:
		prefix = nestedHierarchy(owner, map[*model.Facet]bool{facet: true})
	}
	return append(prefix, facet)
}

func nestedHierarchy(owner *model.Facet, visited map[*model.Facet]bool) []*model.Facet {
	if owner == nil || visited[owner] {
		return nil
	}
	visited[owner] = true
	if parent, ok := owner.Owner.(*model.Facet); ok {
		return append(nestedHierarchy(parent, visited), owner)
	}
	return LocalHierarchy(owner)
}

func appendPresent(dst []*model.Facet, facets ...*model.Facet) []*model.Facet {
	for _, f := range facets {
		if f != nil {
			dst = append(dst, f)
		}
	}
	return dst
}
