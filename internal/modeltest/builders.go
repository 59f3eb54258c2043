// Package modeltest builds small entity graphs for tests.
package modeltest

import "github.com/jacoelho/otm/internal/model"

// Namespace is the namespace used by Library when none is given.
const Namespace = "urn:otm:test"

// Library returns an empty library in ns, or in Namespace when ns is empty.
func Library(ns string) *model.Library {
	if ns == "" {
		ns = Namespace
	}
	return &model.Library{Namespace: model.NamespaceURI(ns), Prefix: "t", Name: "Test"}
}

// String returns a legacy simple type usable as an attribute type.
func String(lib *model.Library) *model.LegacySimpleType {
	if existing, ok := lib.Member("string"); ok {
		if st, ok := existing.(*model.LegacySimpleType); ok {
			return st
		}
	}
	st := &model.LegacySimpleType{Named: model.Named{LocalName: "string"}}
	lib.AddMember(st)
	return st
}

// BusinessObject declares a business object with empty ID, Summary and
// Detail facets.
func BusinessObject(lib *model.Library, name string) *model.BusinessObject {
	bo := &model.BusinessObject{Named: model.Named{LocalName: name}}
	bo.ID = &model.Facet{Kind: model.KindID, Owner: bo}
	bo.Summary = &model.Facet{Kind: model.KindSummary, Owner: bo}
	bo.Detail = &model.Facet{Kind: model.KindDetail, Owner: bo}
	lib.AddMember(bo)
	return bo
}

// CoreObject declares a core object with empty facets and list facets.
func CoreObject(lib *model.Library, name string) *model.CoreObject {
	core := &model.CoreObject{Named: model.Named{LocalName: name}}
	core.Simple = &model.SimpleFacet{Owner: core}
	core.Summary = &model.Facet{Kind: model.KindSummary, Owner: core}
	core.Detail = &model.Facet{Kind: model.KindDetail, Owner: core}
	core.SimpleList = &model.ListFacet{Owner: core, Item: core.Simple}
	core.SummaryList = &model.ListFacet{Owner: core, Item: core.Summary}
	core.DetailList = &model.ListFacet{Owner: core, Item: core.Detail}
	lib.AddMember(core)
	return core
}

// ChoiceObject declares a choice object with an empty shared facet.
func ChoiceObject(lib *model.Library, name string) *model.ChoiceObject {
	choice := &model.ChoiceObject{Named: model.Named{LocalName: name}}
	choice.Shared = &model.Facet{Kind: model.KindShared, Owner: choice}
	lib.AddMember(choice)
	return choice
}

// Operation declares a service operation with empty message facets.
func Operation(lib *model.Library, service, name string) *model.Operation {
	var svc *model.Service
	if existing, ok := lib.Member(service); ok {
		svc, _ = existing.(*model.Service)
	}
	if svc == nil {
		svc = &model.Service{Named: model.Named{LocalName: service}}
		lib.AddMember(svc)
	}
	op := &model.Operation{Named: model.Named{LocalName: name, Library: lib}, Service: svc}
	op.Request = &model.Facet{Kind: model.KindRequest, Owner: op}
	op.Response = &model.Facet{Kind: model.KindResponse, Owner: op}
	op.Notification = &model.Facet{Kind: model.KindNotification, Owner: op}
	svc.Operations = append(svc.Operations, op)
	return op
}

// Extend makes child extend parent.
func Extend(child, parent model.NamedEntity) {
	ext := &model.Extension{Owner: child, Extends: parent, ExtendsName: parent.Name()}
	switch c := child.(type) {
	case *model.BusinessObject:
		c.Extension = ext
	case *model.CoreObject:
		c.Extension = ext
	case *model.ChoiceObject:
		c.Extension = ext
	case *model.Operation:
		c.Extension = ext
	case *model.OpenEnumeration:
		c.Extension = ext
	case *model.ClosedEnumeration:
		c.Extension = ext
	case *model.Resource:
		c.Extension = ext
	case *model.ExtensionPointFacet:
		c.Extension = ext
	}
}

// Contextual declares a contextual facet of kind on owner.
func Contextual(owner model.FacetOwner, kind model.FacetKind, label string) *model.Facet {
	facet := &model.Facet{Kind: kind, Owner: owner, Label: label}
	switch o := owner.(type) {
	case *model.BusinessObject:
		switch kind {
		case model.KindCustom:
			o.Custom = append(o.Custom, facet)
		case model.KindQuery:
			o.Query = append(o.Query, facet)
		case model.KindUpdate:
			o.Update = append(o.Update, facet)
		}
	case *model.ChoiceObject:
		o.Choice = append(o.Choice, facet)
	case *model.Facet:
		o.Contextual = append(o.Contextual, facet)
	}
	return facet
}

// Attrs appends attributes of the given names to owner.
func Attrs(owner model.NamedEntity, names ...string) []*model.Attribute {
	var out []*model.Attribute
	for _, name := range names {
		attr := &model.Attribute{Owner: owner, LocalName: name}
		switch o := owner.(type) {
		case *model.Facet:
			o.Attributes = append(o.Attributes, attr)
		case *model.ValueWithAttributes:
			o.Attributes = append(o.Attributes, attr)
		case *model.ExtensionPointFacet:
			o.Attributes = append(o.Attributes, attr)
		}
		out = append(out, attr)
	}
	return out
}

// Prop appends an element of the given name and type to facet.
func Prop(facet *model.Facet, name string, typ model.NamedEntity) *model.Property {
	prop := &model.Property{Owner: facet, LocalName: name, Type: typ}
	if !model.IsNil(typ) {
		prop.TypeName = typ.Name()
	}
	facet.Properties = append(facet.Properties, prop)
	return prop
}

// Indicators appends indicators of the given names to owner.
func Indicators(owner model.NamedEntity, names ...string) []*model.Indicator {
	var out []*model.Indicator
	for _, name := range names {
		ind := &model.Indicator{Owner: owner, LocalName: name}
		switch o := owner.(type) {
		case *model.Facet:
			o.Indicators = append(o.Indicators, ind)
		case *model.ValueWithAttributes:
			o.Indicators = append(o.Indicators, ind)
		}
		out = append(out, ind)
	}
	return out
}

// Names returns the declared names of members in order.
func Names[T interface{ DeclaredName() string }](members []T) []string {
	out := make([]string, 0, len(members))
	for _, m := range members {
		out = append(out, m.DeclaredName())
	}
	return out
}
