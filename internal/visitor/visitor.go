// Package visitor defines the per-entity callbacks invoked by navigators.
//
// Every callback returns whether the navigator should descend into the
// entity's children. The entity itself counts as visited either way.
package visitor

import "github.com/jacoelho/otm/internal/model"

// Visitor receives one callback per entity variant reached by a navigator.
type Visitor interface {
	VisitLibrary(lib *model.Library) bool
	VisitContext(ctx *model.Context) bool

	VisitSimpleType(t *model.SimpleType) bool
	VisitValueWithAttributes(t *model.ValueWithAttributes) bool
	VisitOpenEnumeration(e *model.OpenEnumeration) bool
	VisitClosedEnumeration(e *model.ClosedEnumeration) bool
	VisitEnumValue(v *model.EnumValue) bool

	VisitBusinessObject(bo *model.BusinessObject) bool
	VisitCoreObject(core *model.CoreObject) bool
	VisitRole(role *model.Role) bool
	VisitChoiceObject(choice *model.ChoiceObject) bool
	VisitService(svc *model.Service) bool
	VisitOperation(op *model.Operation) bool

	VisitFacet(f *model.Facet) bool
	VisitSimpleFacet(f *model.SimpleFacet) bool
	VisitListFacet(f *model.ListFacet) bool
	VisitExtensionPointFacet(f *model.ExtensionPointFacet) bool
	VisitAlias(a *model.Alias) bool

	VisitAttribute(a *model.Attribute) bool
	VisitProperty(p *model.Property) bool
	VisitIndicator(i *model.Indicator) bool
	VisitExtension(e *model.Extension) bool

	VisitResource(r *model.Resource) bool
	VisitResourceParentRef(ref *model.ResourceParentRef) bool
	VisitParamGroup(g *model.ParamGroup) bool
	VisitParameter(p *model.Parameter) bool
	VisitActionFacet(f *model.ActionFacet) bool
	VisitAction(a *model.Action) bool
	VisitActionRequest(r *model.ActionRequest) bool
	VisitActionResponse(r *model.ActionResponse) bool

	VisitLegacyElement(e *model.LegacyElement) bool
	VisitLegacyComplexType(t *model.LegacyComplexType) bool
	VisitLegacySimpleType(t *model.LegacySimpleType) bool

	VisitDocumentation(owner model.NamedEntity, doc *model.Documentation) bool
	VisitEquivalent(owner model.NamedEntity, eq *model.Equivalent) bool
	VisitExample(owner model.NamedEntity, ex *model.Example) bool
}

// Adapter implements Visitor. It continues into every structural entity and
// skips documentation, equivalents and examples. Embed it and override the
// callbacks of interest.
type Adapter struct{}

var _ Visitor = Adapter{}

func (Adapter) VisitLibrary(*model.Library) bool                         { return true }
func (Adapter) VisitContext(*model.Context) bool                         { return true }
func (Adapter) VisitSimpleType(*model.SimpleType) bool                   { return true }
func (Adapter) VisitValueWithAttributes(*model.ValueWithAttributes) bool { return true }
func (Adapter) VisitOpenEnumeration(*model.OpenEnumeration) bool         { return true }
func (Adapter) VisitClosedEnumeration(*model.ClosedEnumeration) bool     { return true }
func (Adapter) VisitEnumValue(*model.EnumValue) bool                     { return true }
func (Adapter) VisitBusinessObject(*model.BusinessObject) bool           { return true }
func (Adapter) VisitCoreObject(*model.CoreObject) bool                   { return true }
func (Adapter) VisitRole(*model.Role) bool                               { return true }
func (Adapter) VisitChoiceObject(*model.ChoiceObject) bool               { return true }
func (Adapter) VisitService(*model.Service) bool                         { return true }
func (Adapter) VisitOperation(*model.Operation) bool                     { return true }
func (Adapter) VisitFacet(*model.Facet) bool                             { return true }
func (Adapter) VisitSimpleFacet(*model.SimpleFacet) bool                 { return true }
func (Adapter) VisitListFacet(*model.ListFacet) bool                     { return true }
func (Adapter) VisitExtensionPointFacet(*model.ExtensionPointFacet) bool { return true }
func (Adapter) VisitAlias(*model.Alias) bool                             { return true }
func (Adapter) VisitAttribute(*model.Attribute) bool                     { return true }
func (Adapter) VisitProperty(*model.Property) bool                       { return true }
func (Adapter) VisitIndicator(*model.Indicator) bool                     { return true }
func (Adapter) VisitExtension(*model.Extension) bool                     { return true }
func (Adapter) VisitResource(*model.Resource) bool                       { return true }
func (Adapter) VisitResourceParentRef(*model.ResourceParentRef) bool     { return true }
func (Adapter) VisitParamGroup(*model.ParamGroup) bool                   { return true }
func (Adapter) VisitParameter(*model.Parameter) bool                     { return true }
func (Adapter) VisitActionFacet(*model.ActionFacet) bool                 { return true }
func (Adapter) VisitAction(*model.Action) bool                           { return true }
func (Adapter) VisitActionRequest(*model.ActionRequest) bool             { return true }
func (Adapter) VisitActionResponse(*model.ActionResponse) bool           { return true }
func (Adapter) VisitLegacyElement(*model.LegacyElement) bool             { return true }
func (Adapter) VisitLegacyComplexType(*model.LegacyComplexType) bool     { return true }
func (Adapter) VisitLegacySimpleType(*model.LegacySimpleType) bool       { return true }

func (Adapter) VisitDocumentation(model.NamedEntity, *model.Documentation) bool { return false }
func (Adapter) VisitEquivalent(model.NamedEntity, *model.Equivalent) bool       { return false }
func (Adapter) VisitExample(model.NamedEntity, *model.Example) bool             { return false }

// Recorder is a Visitor that records the qualified name of every named
// entity it is offered, in visit order. Non-entity nodes are ignored.
type Recorder struct {
	Adapter
	Names []model.QName
}

func (r *Recorder) add(e model.NamedEntity) bool {
	r.Names = append(r.Names, e.Name())
	return true
}

func (r *Recorder) VisitSimpleType(t *model.SimpleType) bool {
	return r.add(t)
}

func (r *Recorder) VisitValueWithAttributes(t *model.ValueWithAttributes) bool {
	return r.add(t)
}

func (r *Recorder) VisitOpenEnumeration(e *model.OpenEnumeration) bool {
	return r.add(e)
}

func (r *Recorder) VisitClosedEnumeration(e *model.ClosedEnumeration) bool {
	return r.add(e)
}

func (r *Recorder) VisitBusinessObject(bo *model.BusinessObject) bool {
	return r.add(bo)
}

func (r *Recorder) VisitCoreObject(core *model.CoreObject) bool {
	return r.add(core)
}

func (r *Recorder) VisitChoiceObject(choice *model.ChoiceObject) bool {
	return r.add(choice)
}

func (r *Recorder) VisitService(svc *model.Service) bool {
	return r.add(svc)
}

func (r *Recorder) VisitOperation(op *model.Operation) bool {
	return r.add(op)
}

func (r *Recorder) VisitFacet(f *model.Facet) bool {
	return r.add(f)
}

func (r *Recorder) VisitSimpleFacet(f *model.SimpleFacet) bool {
	return r.add(f)
}

func (r *Recorder) VisitListFacet(f *model.ListFacet) bool {
	return r.add(f)
}

func (r *Recorder) VisitExtensionPointFacet(f *model.ExtensionPointFacet) bool {
	return r.add(f)
}

func (r *Recorder) VisitAlias(a *model.Alias) bool {
	return r.add(a)
}

func (r *Recorder) VisitResource(res *model.Resource) bool {
	return r.add(res)
}

func (r *Recorder) VisitActionFacet(f *model.ActionFacet) bool {
	return r.add(f)
}

func (r *Recorder) VisitLegacyElement(e *model.LegacyElement) bool {
	return r.add(e)
}

func (r *Recorder) VisitLegacyComplexType(t *model.LegacyComplexType) bool {
	return r.add(t)
}

func (r *Recorder) VisitLegacySimpleType(t *model.LegacySimpleType) bool {
	return r.add(t)
}
