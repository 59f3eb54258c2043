package facets

import "github.com/jacoelho/otm/internal/model"

// SupportedKinds returns the facet kinds owner exposes, in slot order.
func SupportedKinds(owner model.FacetOwner) []model.FacetKind {
	switch o := owner.(type) {
	case *model.BusinessObject:
		return []model.FacetKind{model.KindID, model.KindSummary, model.KindDetail,
			model.KindCustom, model.KindQuery, model.KindUpdate}
	case *model.CoreObject:
		return []model.FacetKind{model.KindSimple, model.KindSummary, model.KindDetail}
	case *model.ChoiceObject:
		return []model.FacetKind{model.KindShared, model.KindChoice}
	case *model.Operation:
		return []model.FacetKind{model.KindRequest, model.KindResponse, model.KindNotification}
	case *model.Facet:
		if o != nil && o.IsContextual() {
			return []model.FacetKind{o.Kind}
		}
	}
	return nil
}

// Supports reports whether owner has a slot for kind.
func Supports(owner model.FacetOwner, kind model.FacetKind) bool {
	for _, k := range SupportedKinds(owner) {
		if k == kind {
			return true
		}
	}
	return false
}

// slot returns the fixed facet or the contextual list for kind.
func slot(owner model.FacetOwner, kind model.FacetKind) (*model.Facet, []*model.Facet, bool) {
	if model.IsNil(owner) {
		return nil, nil, false
	}
	switch o := owner.(type) {
	case *model.BusinessObject:
		switch kind {
		case model.KindID:
			return o.ID, nil, true
		case model.KindSummary:
			return o.Summary, nil, true
		case model.KindDetail:
			return o.Detail, nil, true
		case model.KindCustom:
			return nil, o.Custom, true
		case model.KindQuery:
			return nil, o.Query, true
		case model.KindUpdate:
			return nil, o.Update, true
		}
	case *model.CoreObject:
		switch kind {
		case model.KindSummary:
			return o.Summary, nil, true
		case model.KindDetail:
			return o.Detail, nil, true
		}
	case *model.ChoiceObject:
		switch kind {
		case model.KindShared:
			return o.Shared, nil, true
		case model.KindChoice:
			return nil, o.Choice, true
		}
	case *model.Operation:
		switch kind {
		case model.KindRequest:
			return o.Request, nil, true
		case model.KindResponse:
			return o.Response, nil, true
		case model.KindNotification:
			return o.Notification, nil, true
		}
	case *model.Facet:
		if o.IsContextual() && kind == o.Kind {
			return nil, o.Contextual, true
		}
	}
	return nil, nil, false
}

// FacetOfKind returns the facet of kind declared on owner using the default
// context and label. It returns nil when owner does not support kind or the
// slot is empty. The simple facet of a core object is not a *model.Facet and
// is only reachable through AbstractFacetOfKind.
func FacetOfKind(owner model.FacetOwner, kind model.FacetKind) *model.Facet {
	return ContextualFacetOfKind(owner, kind, "", "")
}

// ContextualFacetOfKind returns the facet of kind whose identity matches the
// one composed from context and label.
func ContextualFacetOfKind(owner model.FacetOwner, kind model.FacetKind, context, label string) *model.Facet {
	return FacetOfIdentity(owner, kind, model.ComposeIdentity(kind, context, label))
}

// FacetOfIdentity returns the facet of kind on owner with the given identity.
func FacetOfIdentity(owner model.FacetOwner, kind model.FacetKind, identity string) *model.Facet {
	single, list, ok := slot(owner, kind)
	if !ok {
		return nil
	}
	if !kind.IsContextual() {
		return single
	}
	for _, facet := range list {
		if facet != nil && facet.Identity() == identity {
			return facet
		}
	}
	return nil
}

// AllFacetsOfKind returns every facet of kind declared on owner: the
// contextual set for contextual kinds, a singleton otherwise.
func AllFacetsOfKind(owner model.FacetOwner, kind model.FacetKind) []*model.Facet {
	single, list, ok := slot(owner, kind)
	if !ok {
		return nil
	}
	if kind.IsContextual() {
		out := make([]*model.Facet, 0, len(list))
		for _, facet := range list {
			if facet != nil {
				out = append(out, facet)
			}
		}
		return out
	}
	if single == nil {
		return nil
	}
	return []*model.Facet{single}
}

// AllFacets returns every member-bearing facet declared on owner in slot order.
func AllFacets(owner model.FacetOwner) []*model.Facet {
	var out []*model.Facet
	for _, kind := range SupportedKinds(owner) {
		out = append(out, AllFacetsOfKind(owner, kind)...)
	}
	return out
}

// FacetByIdentity finds a declared facet of owner by identity, regardless of
// kind. Action facets use it to resolve their reference facet name.
func FacetByIdentity(owner model.FacetOwner, identity string) *model.Facet {
	for _, facet := range AllFacets(owner) {
		if facet.Identity() == identity {
			return facet
		}
	}
	return nil
}

// AbstractFacetOfKind is FacetOfKind extended to the simple facet of core
// objects.
func AbstractFacetOfKind(owner model.FacetOwner, kind model.FacetKind) model.AbstractFacet {
	if core, ok := owner.(*model.CoreObject); ok && kind == model.KindSimple {
		if core == nil || core.Simple == nil {
			return nil
		}
		return core.Simple
	}
	if facet := FacetOfKind(owner, kind); facet != nil {
		return facet
	}
	return nil
}

// ListFacetOfKind returns the list facet of a core object for an item kind.
func ListFacetOfKind(core *model.CoreObject, kind model.FacetKind) *model.ListFacet {
	if core == nil {
		return nil
	}
	switch kind {
	case model.KindSimple:
		return core.SimpleList
	case model.KindSummary:
		return core.SummaryList
	case model.KindDetail:
		return core.DetailList
	}
	return nil
}

// ListFacets returns the declared list facets of a core object.
func ListFacets(core *model.CoreObject) []*model.ListFacet {
	if core == nil {
		return nil
	}
	var out []*model.ListFacet
	for _, list := range []*model.ListFacet{core.SimpleList, core.SummaryList, core.DetailList} {
		if list != nil {
			out = append(out, list)
		}
	}
	return out
}

// IsExtensible reports whether other owners may extend owner.
func IsExtensible(owner model.FacetOwner) bool {
	if model.IsNil(owner) {
		return false
	}
	switch o := owner.(type) {
	case *model.BusinessObject:
		return !o.NotExtendable
	case *model.CoreObject:
		return !o.NotExtendable
	case *model.ChoiceObject:
		return !o.NotExtendable
	case *model.Operation:
		return !o.NotExtendable
	case *model.Facet:
		return !o.NotExtendable
	}
	return false
}

// OwnerExtension returns the facet owner that owner extends, or nil.
// Contextual facets do not extend: their ancestors are derived from the
// extension chain of their owner.
func OwnerExtension(owner model.FacetOwner) model.FacetOwner {
	if _, ok := owner.(*model.Facet); ok {
		return nil
	}
	ext := model.ExtensionOf(owner)
	if ext == nil {
		return nil
	}
	target := ext.Target()
	if target == nil {
		return nil
	}
	switch owner.(type) {
	case *model.BusinessObject:
		if bo, ok := model.AsBusinessObject(target); ok {
			return bo
		}
	case *model.CoreObject:
		if core, ok := model.AsCoreObject(target); ok {
			return core
		}
	case *model.ChoiceObject:
		if choice, ok := model.AsChoiceObject(target); ok {
			return choice
		}
	case *model.Operation:
		if op, ok := target.(*model.Operation); ok {
			return op
		}
	}
	return nil
}
