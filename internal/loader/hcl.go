package loader

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	otmerrors "github.com/jacoelho/otm/errors"
)

// hclFile decodes every top-level block of an HCL model document.
type hclFile struct {
	Library         *hclLibrary         `hcl:"library,block"`
	Imports         []hclImport         `hcl:"import,block"`
	Contexts        []hclContext        `hcl:"context,block"`
	SimpleTypes     []hclSimpleType     `hcl:"simple_type,block"`
	ValueTypes      []hclValueType      `hcl:"value_with_attributes,block"`
	Enumerations    []hclEnumeration    `hcl:"enumeration,block"`
	BusinessObjects []hclBusinessObject `hcl:"business_object,block"`
	CoreObjects     []hclCoreObject     `hcl:"core_object,block"`
	ChoiceObjects   []hclChoiceObject   `hcl:"choice_object,block"`
	Services        []hclService        `hcl:"service,block"`
	ExtensionPoints []hclExtensionPoint `hcl:"extension_point,block"`
	Resources       []hclResource       `hcl:"resource,block"`
}

type hclLibrary struct {
	Name          string            `hcl:"name,label"`
	Namespace     string            `hcl:"namespace"`
	Prefix        string            `hcl:"prefix"`
	Version       string            `hcl:"version,optional"`
	Documentation *hclDocumentation `hcl:"documentation,block"`
}

type hclImport struct {
	Prefix    string `hcl:"prefix,label"`
	Namespace string `hcl:"namespace"`
}

type hclContext struct {
	ID                 string            `hcl:"id,label"`
	ApplicationContext string            `hcl:"application_context,optional"`
	Documentation      *hclDocumentation `hcl:"documentation,block"`
}

type hclDocumentation struct {
	Description  string   `hcl:"description,optional"`
	Deprecations []string `hcl:"deprecations,optional"`
	References   []string `hcl:"references,optional"`
	Implementers []string `hcl:"implementers,optional"`
	MoreInfos    []string `hcl:"more_info,optional"`
}

type hclSimpleType struct {
	Name          string            `hcl:"name,label"`
	Parent        hcl.Expression    `hcl:"parent"`
	List          bool              `hcl:"list,optional"`
	Pattern       string            `hcl:"pattern,optional"`
	MinLength     int               `hcl:"min_length,optional"`
	MaxLength     int               `hcl:"max_length,optional"`
	Documentation *hclDocumentation `hcl:"documentation,block"`
	Equivalents   hcl.Expression    `hcl:"equivalents,optional"`
	Examples      hcl.Expression    `hcl:"examples,optional"`
}

type hclValueType struct {
	Name          string            `hcl:"name,label"`
	Parent        hcl.Expression    `hcl:"parent"`
	Attributes    []hclAttribute    `hcl:"attribute,block"`
	Indicators    []hclIndicator    `hcl:"indicator,block"`
	Documentation *hclDocumentation `hcl:"documentation,block"`
	Equivalents   hcl.Expression    `hcl:"equivalents,optional"`
	Examples      hcl.Expression    `hcl:"examples,optional"`
}

type hclEnumeration struct {
	Name          string            `hcl:"name,label"`
	Open          bool              `hcl:"open,optional"`
	Extends       hcl.Expression    `hcl:"extends,optional"`
	Values        []hclEnumValue    `hcl:"value,block"`
	Documentation *hclDocumentation `hcl:"documentation,block"`
}

type hclEnumValue struct {
	Literal       string            `hcl:"literal,label"`
	Label         string            `hcl:"label,optional"`
	Documentation *hclDocumentation `hcl:"documentation,block"`
	Equivalents   hcl.Expression    `hcl:"equivalents,optional"`
}

type hclAttribute struct {
	Name          string            `hcl:"name,label"`
	Type          hcl.Expression    `hcl:"type"`
	Reference     bool              `hcl:"reference,optional"`
	Mandatory     bool              `hcl:"mandatory,optional"`
	Documentation *hclDocumentation `hcl:"documentation,block"`
	Equivalents   hcl.Expression    `hcl:"equivalents,optional"`
	Examples      hcl.Expression    `hcl:"examples,optional"`
}

type hclElement struct {
	Name          string            `hcl:"name,optional"`
	Type          hcl.Expression    `hcl:"type"`
	Reference     bool              `hcl:"reference,optional"`
	Repeat        int               `hcl:"repeat,optional"`
	Mandatory     bool              `hcl:"mandatory,optional"`
	Documentation *hclDocumentation `hcl:"documentation,block"`
	Equivalents   hcl.Expression    `hcl:"equivalents,optional"`
	Examples      hcl.Expression    `hcl:"examples,optional"`
}

type hclIndicator struct {
	Name             string            `hcl:"name,label"`
	PublishAsElement bool              `hcl:"publish_as_element,optional"`
	Documentation    *hclDocumentation `hcl:"documentation,block"`
	Equivalents      hcl.Expression    `hcl:"equivalents,optional"`
}

type hclFacet struct {
	Attributes    []hclAttribute    `hcl:"attribute,block"`
	Elements      []hclElement      `hcl:"element,block"`
	Indicators    []hclIndicator    `hcl:"indicator,block"`
	Documentation *hclDocumentation `hcl:"documentation,block"`
	Equivalents   hcl.Expression    `hcl:"equivalents,optional"`
}

type hclContextualFacet struct {
	Label         string               `hcl:"label,label"`
	Context       string               `hcl:"context,optional"`
	Local         bool                 `hcl:"local,optional"`
	NotExtendable bool                 `hcl:"not_extendable,optional"`
	Attributes    []hclAttribute       `hcl:"attribute,block"`
	Elements      []hclElement         `hcl:"element,block"`
	Indicators    []hclIndicator       `hcl:"indicator,block"`
	Contextual    []hclContextualFacet `hcl:"contextual,block"`
	Documentation *hclDocumentation    `hcl:"documentation,block"`
	Equivalents   hcl.Expression       `hcl:"equivalents,optional"`
}

type hclBusinessObject struct {
	Name          string               `hcl:"name,label"`
	Extends       hcl.Expression       `hcl:"extends,optional"`
	Aliases       []string             `hcl:"aliases,optional"`
	NotExtendable bool                 `hcl:"not_extendable,optional"`
	ID            *hclFacet            `hcl:"id,block"`
	Summary       *hclFacet            `hcl:"summary,block"`
	Detail        *hclFacet            `hcl:"detail,block"`
	Custom        []hclContextualFacet `hcl:"custom,block"`
	Query         []hclContextualFacet `hcl:"query,block"`
	Update        []hclContextualFacet `hcl:"update,block"`
	Documentation *hclDocumentation    `hcl:"documentation,block"`
	Equivalents   hcl.Expression       `hcl:"equivalents,optional"`
}

type hclSimpleFacet struct {
	Type          hcl.Expression    `hcl:"type"`
	Documentation *hclDocumentation `hcl:"documentation,block"`
	Equivalents   hcl.Expression    `hcl:"equivalents,optional"`
	Examples      hcl.Expression    `hcl:"examples,optional"`
}

type hclCoreObject struct {
	Name          string            `hcl:"name,label"`
	Extends       hcl.Expression    `hcl:"extends,optional"`
	Aliases       []string          `hcl:"aliases,optional"`
	NotExtendable bool              `hcl:"not_extendable,optional"`
	Simple        *hclSimpleFacet   `hcl:"simple,block"`
	Summary       *hclFacet         `hcl:"summary,block"`
	Detail        *hclFacet         `hcl:"detail,block"`
	Roles         []string          `hcl:"roles,optional"`
	Documentation *hclDocumentation `hcl:"documentation,block"`
	Equivalents   hcl.Expression    `hcl:"equivalents,optional"`
}

type hclChoiceObject struct {
	Name          string               `hcl:"name,label"`
	Extends       hcl.Expression       `hcl:"extends,optional"`
	Aliases       []string             `hcl:"aliases,optional"`
	NotExtendable bool                 `hcl:"not_extendable,optional"`
	Shared        *hclFacet            `hcl:"shared,block"`
	Choice        []hclContextualFacet `hcl:"choice,block"`
	Documentation *hclDocumentation    `hcl:"documentation,block"`
	Equivalents   hcl.Expression       `hcl:"equivalents,optional"`
}

type hclService struct {
	Name          string            `hcl:"name,label"`
	Operations    []hclOperation    `hcl:"operation,block"`
	Documentation *hclDocumentation `hcl:"documentation,block"`
	Equivalents   hcl.Expression    `hcl:"equivalents,optional"`
}

type hclOperation struct {
	Name          string            `hcl:"name,label"`
	Extends       hcl.Expression    `hcl:"extends,optional"`
	NotExtendable bool              `hcl:"not_extendable,optional"`
	Request       *hclFacet         `hcl:"request,block"`
	Response      *hclFacet         `hcl:"response,block"`
	Notification  *hclFacet         `hcl:"notification,block"`
	Documentation *hclDocumentation `hcl:"documentation,block"`
	Equivalents   hcl.Expression    `hcl:"equivalents,optional"`
}

type hclExtensionPoint struct {
	Extends       hcl.Expression    `hcl:"extends"`
	Attributes    []hclAttribute    `hcl:"attribute,block"`
	Elements      []hclElement      `hcl:"element,block"`
	Indicators    []hclIndicator    `hcl:"indicator,block"`
	Documentation *hclDocumentation `hcl:"documentation,block"`
}

type hclResource struct {
	Name           string           `hcl:"name,label"`
	BusinessObject hcl.Expression   `hcl:"business_object,optional"`
	Extends        hcl.Expression   `hcl:"extends,optional"`
	BasePath       string           `hcl:"base_path,optional"`
	Abstract       bool             `hcl:"abstract,optional"`
	FirstClass     bool             `hcl:"first_class,optional"`
	ParentRefs     []hclParentRef   `hcl:"parent_ref,block"`
	ParamGroups    []hclParamGroup  `hcl:"param_group,block"`
	ActionFacets   []hclActionFacet `hcl:"action_facet,block"`
	Actions        []hclAction      `hcl:"action,block"`
}

type hclParentRef struct {
	Parent        hcl.Expression    `hcl:"parent"`
	ParamGroup    string            `hcl:"param_group,optional"`
	PathTemplate  string            `hcl:"path_template,optional"`
	Documentation *hclDocumentation `hcl:"documentation,block"`
}

type hclParamGroup struct {
	Name          string            `hcl:"name,label"`
	IDGroup       bool              `hcl:"id_group,optional"`
	Facet         string            `hcl:"facet"`
	Parameters    []hclParameter    `hcl:"parameter,block"`
	Documentation *hclDocumentation `hcl:"documentation,block"`
}

type hclParameter struct {
	Field         string            `hcl:"field,label"`
	Location      string            `hcl:"location,optional"`
	Documentation *hclDocumentation `hcl:"documentation,block"`
	Equivalents   hcl.Expression    `hcl:"equivalents,optional"`
	Examples      hcl.Expression    `hcl:"examples,optional"`
}

type hclActionFacet struct {
	Name            string            `hcl:"name,label"`
	ReferenceType   string            `hcl:"reference_type,optional"`
	ReferenceFacet  string            `hcl:"reference_facet,optional"`
	ReferenceRepeat int               `hcl:"reference_repeat,optional"`
	BasePayload     hcl.Expression    `hcl:"base_payload,optional"`
	Documentation   *hclDocumentation `hcl:"documentation,block"`
}

type hclAction struct {
	ID            string              `hcl:"id,label"`
	Common        bool                `hcl:"common,optional"`
	Request       *hclActionRequest   `hcl:"request,block"`
	Responses     []hclActionResponse `hcl:"response,block"`
	Documentation *hclDocumentation   `hcl:"documentation,block"`
}

type hclActionRequest struct {
	Method        string            `hcl:"method"`
	PathTemplate  string            `hcl:"path_template,optional"`
	ParamGroup    string            `hcl:"param_group,optional"`
	Payload       string            `hcl:"payload,optional"`
	MIMETypes     []string          `hcl:"mime_types,optional"`
	Documentation *hclDocumentation `hcl:"documentation,block"`
}

type hclActionResponse struct {
	StatusCodes   []int             `hcl:"status_codes"`
	Payload       string            `hcl:"payload,optional"`
	MIMETypes     []string          `hcl:"mime_types,optional"`
	Documentation *hclDocumentation `hcl:"documentation,block"`
}

// decodeHCL parses one HCL document and translates it into a Document.
func decodeHCL(name string, data []byte) ([]*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, hclDiagnostics(otmerrors.ErrParse, diags)
	}

	var root hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, hclDiagnostics(otmerrors.ErrInvalidDocument, diags)
	}
	if root.Library == nil {
		return nil, otmerrors.DiagnosticList{{
			Code:    string(otmerrors.ErrInvalidDocument),
			Message: "document declares no library block",
			File:    name,
		}}
	}

	t := &hclTranslator{}
	doc := t.document(root)
	doc.File = name
	if t.diags.HasErrors() {
		return nil, hclDiagnostics(otmerrors.ErrInvalidDocument, t.diags)
	}
	return []*Document{doc}, nil
}

func hclDiagnostics(code otmerrors.ErrorCode, diags hcl.Diagnostics) otmerrors.DiagnosticList {
	var out otmerrors.DiagnosticList
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}
		msg := d.Summary
		if d.Detail != "" {
			msg += ": " + d.Detail
		}
		diag := otmerrors.Diagnostic{Code: string(code), Message: msg}
		if d.Subject != nil {
			diag.File = d.Subject.Filename
			diag.Line = d.Subject.Start.Line
			diag.Column = d.Subject.Start.Column
		}
		out = append(out, diag)
	}
	return out
}

// hclTranslator converts decoded HCL blocks into the format neutral
// document, collecting diagnostics for malformed expressions.
type hclTranslator struct {
	diags hcl.Diagnostics
}

func (t *hclTranslator) errorf(rng hcl.Range, summary, format string, args ...any) {
	t.diags = append(t.diags, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   fmt.Sprintf(format, args...),
		Subject:  rng.Ptr(),
	})
}

// ref reads a reference written either as a traversal (Money, common.Money)
// or as a string ("common:Money").
func (t *hclTranslator) ref(expr hcl.Expression) Ref {
	if expr == nil {
		return Ref{}
	}
	rng := expr.Range()
	pos := Pos{File: rng.Filename, Line: rng.Start.Line, Column: rng.Start.Column}

	if len(expr.Variables()) > 0 {
		traversal, diags := hcl.AbsTraversalForExpr(expr)
		if diags.HasErrors() {
			t.diags = append(t.diags, diags...)
			return Ref{}
		}
		var ref Ref
		switch len(traversal) {
		case 1:
			ref = Ref{Local: traversal.RootName()}
		case 2:
			attr, ok := traversal[1].(hcl.TraverseAttr)
			if !ok {
				t.errorf(rng, "Invalid reference", "A reference is written as Name or prefix.Name.")
				return Ref{}
			}
			ref = Ref{Prefix: traversal.RootName(), Local: attr.Name}
		default:
			t.errorf(rng, "Invalid reference", "A reference is written as Name or prefix.Name.")
			return Ref{}
		}
		ref.Pos = pos
		return ref
	}

	value, diags := expr.Value(nil)
	if diags.HasErrors() {
		t.diags = append(t.diags, diags...)
		return Ref{}
	}
	if value.IsNull() {
		return Ref{}
	}
	str, err := convert.Convert(value, cty.String)
	if err != nil || !str.IsKnown() || str.IsNull() {
		t.errorf(rng, "Invalid reference", "A reference must be a name or a string.")
		return Ref{}
	}
	ref := ParseRef(str.AsString())
	ref.Pos = pos
	return ref
}

// values reads a map of context to value. Any primitive value is accepted
// and converted to its string form.
func (t *hclTranslator) values(expr hcl.Expression) map[string]string {
	if expr == nil {
		return nil
	}
	value, diags := expr.Value(nil)
	if diags.HasErrors() {
		t.diags = append(t.diags, diags...)
		return nil
	}
	if value.IsNull() {
		return nil
	}
	ty := value.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		t.errorf(expr.Range(), "Invalid value map", "Expected an object such as { default = \"value\" }.")
		return nil
	}
	out := make(map[string]string, value.LengthInt())
	for it := value.ElementIterator(); it.Next(); {
		key, elem := it.Element()
		str, err := convert.Convert(elem, cty.String)
		if err != nil || !str.IsKnown() {
			t.errorf(expr.Range(), "Invalid value map", "Value for %q cannot be converted to a string.", key.AsString())
			continue
		}
		if str.IsNull() {
			continue
		}
		out[key.AsString()] = str.AsString()
	}
	return out
}

func (t *hclTranslator) document(root hclFile) *Document {
	doc := &Document{
		Library: LibraryDoc{
			Name:          root.Library.Name,
			Namespace:     root.Library.Namespace,
			Prefix:        root.Library.Prefix,
			Version:       root.Library.Version,
			Documentation: documentation(root.Library.Documentation),
		},
	}
	for _, imp := range root.Imports {
		doc.Imports = append(doc.Imports, ImportDoc(imp))
	}
	for _, c := range root.Contexts {
		doc.Contexts = append(doc.Contexts, ContextDoc{
			ID:                 c.ID,
			ApplicationContext: c.ApplicationContext,
			Documentation:      documentation(c.Documentation),
		})
	}
	for _, st := range root.SimpleTypes {
		doc.SimpleTypes = append(doc.SimpleTypes, SimpleTypeDoc{
			Name:          st.Name,
			Parent:        t.ref(st.Parent),
			List:          st.List,
			Pattern:       st.Pattern,
			MinLength:     st.MinLength,
			MaxLength:     st.MaxLength,
			Documentation: documentation(st.Documentation),
			Equivalents:   t.values(st.Equivalents),
			Examples:      t.values(st.Examples),
		})
	}
	for _, vt := range root.ValueTypes {
		doc.ValueTypes = append(doc.ValueTypes, ValueTypeDoc{
			Name:          vt.Name,
			Parent:        t.ref(vt.Parent),
			Attributes:    t.attributes(vt.Attributes),
			Indicators:    t.indicators(vt.Indicators),
			Documentation: documentation(vt.Documentation),
			Equivalents:   t.values(vt.Equivalents),
			Examples:      t.values(vt.Examples),
		})
	}
	for _, e := range root.Enumerations {
		enum := EnumerationDoc{
			Name:          e.Name,
			Open:          e.Open,
			Extends:       t.ref(e.Extends),
			Documentation: documentation(e.Documentation),
		}
		for _, v := range e.Values {
			enum.Values = append(enum.Values, EnumValueDoc{
				Literal:       v.Literal,
				Label:         v.Label,
				Documentation: documentation(v.Documentation),
				Equivalents:   t.values(v.Equivalents),
			})
		}
		doc.Enumerations = append(doc.Enumerations, enum)
	}
	for _, bo := range root.BusinessObjects {
		doc.BusinessObjects = append(doc.BusinessObjects, BusinessObjectDoc{
			Name:          bo.Name,
			Extends:       t.ref(bo.Extends),
			Aliases:       bo.Aliases,
			NotExtendable: bo.NotExtendable,
			ID:            t.facet(bo.ID),
			Summary:       t.facet(bo.Summary),
			Detail:        t.facet(bo.Detail),
			Custom:        t.contextual(bo.Custom),
			Query:         t.contextual(bo.Query),
			Update:        t.contextual(bo.Update),
			Documentation: documentation(bo.Documentation),
			Equivalents:   t.values(bo.Equivalents),
		})
	}
	for _, core := range root.CoreObjects {
		co := CoreObjectDoc{
			Name:          core.Name,
			Extends:       t.ref(core.Extends),
			Aliases:       core.Aliases,
			NotExtendable: core.NotExtendable,
			Summary:       t.facet(core.Summary),
			Detail:        t.facet(core.Detail),
			Roles:         core.Roles,
			Documentation: documentation(core.Documentation),
			Equivalents:   t.values(core.Equivalents),
		}
		if s := core.Simple; s != nil {
			co.Simple = &SimpleFacetDoc{
				Type:          t.ref(s.Type),
				Documentation: documentation(s.Documentation),
				Equivalents:   t.values(s.Equivalents),
				Examples:      t.values(s.Examples),
			}
		}
		doc.CoreObjects = append(doc.CoreObjects, co)
	}
	for _, choice := range root.ChoiceObjects {
		doc.ChoiceObjects = append(doc.ChoiceObjects, ChoiceObjectDoc{
			Name:          choice.Name,
			Extends:       t.ref(choice.Extends),
			Aliases:       choice.Aliases,
			NotExtendable: choice.NotExtendable,
			Shared:        t.facet(choice.Shared),
			Choice:        t.contextual(choice.Choice),
			Documentation: documentation(choice.Documentation),
			Equivalents:   t.values(choice.Equivalents),
		})
	}
	for _, svc := range root.Services {
		service := ServiceDoc{
			Name:          svc.Name,
			Documentation: documentation(svc.Documentation),
			Equivalents:   t.values(svc.Equivalents),
		}
		for _, op := range svc.Operations {
			service.Operations = append(service.Operations, OperationDoc{
				Name:          op.Name,
				Extends:       t.ref(op.Extends),
				NotExtendable: op.NotExtendable,
				Request:       t.facet(op.Request),
				Response:      t.facet(op.Response),
				Notification:  t.facet(op.Notification),
				Documentation: documentation(op.Documentation),
				Equivalents:   t.values(op.Equivalents),
			})
		}
		doc.Services = append(doc.Services, service)
	}
	for _, ep := range root.ExtensionPoints {
		doc.ExtensionPoints = append(doc.ExtensionPoints, ExtensionPointDoc{
			Extends:       t.ref(ep.Extends),
			Attributes:    t.attributes(ep.Attributes),
			Elements:      t.elements(ep.Elements),
			Indicators:    t.indicators(ep.Indicators),
			Documentation: documentation(ep.Documentation),
		})
	}
	for _, r := range root.Resources {
		doc.Resources = append(doc.Resources, t.resource(r))
	}
	return doc
}

func (t *hclTranslator) facet(f *hclFacet) *FacetDoc {
	if f == nil {
		return nil
	}
	return &FacetDoc{
		Attributes:    t.attributes(f.Attributes),
		Elements:      t.elements(f.Elements),
		Indicators:    t.indicators(f.Indicators),
		Documentation: documentation(f.Documentation),
		Equivalents:   t.values(f.Equivalents),
	}
}

func (t *hclTranslator) contextual(list []hclContextualFacet) []ContextualFacetDoc {
	var out []ContextualFacetDoc
	for _, f := range list {
		out = append(out, ContextualFacetDoc{
			FacetDoc: FacetDoc{
				Attributes:    t.attributes(f.Attributes),
				Elements:      t.elements(f.Elements),
				Indicators:    t.indicators(f.Indicators),
				Documentation: documentation(f.Documentation),
				Equivalents:   t.values(f.Equivalents),
			},
			Label:         f.Label,
			Context:       f.Context,
			Local:         f.Local,
			NotExtendable: f.NotExtendable,
			Contextual:    t.contextual(f.Contextual),
		})
	}
	return out
}

func (t *hclTranslator) attributes(list []hclAttribute) []AttributeDoc {
	var out []AttributeDoc
	for _, a := range list {
		out = append(out, AttributeDoc{
			Name:          a.Name,
			Type:          t.ref(a.Type),
			Reference:     a.Reference,
			Mandatory:     a.Mandatory,
			Documentation: documentation(a.Documentation),
			Equivalents:   t.values(a.Equivalents),
			Examples:      t.values(a.Examples),
		})
	}
	return out
}

func (t *hclTranslator) elements(list []hclElement) []ElementDoc {
	var out []ElementDoc
	for _, e := range list {
		out = append(out, ElementDoc{
			Name:          e.Name,
			Type:          t.ref(e.Type),
			Reference:     e.Reference,
			Repeat:        e.Repeat,
			Mandatory:     e.Mandatory,
			Documentation: documentation(e.Documentation),
			Equivalents:   t.values(e.Equivalents),
			Examples:      t.values(e.Examples),
		})
	}
	return out
}

func (t *hclTranslator) indicators(list []hclIndicator) []IndicatorDoc {
	var out []IndicatorDoc
	for _, i := range list {
		out = append(out, IndicatorDoc{
			Name:             i.Name,
			PublishAsElement: i.PublishAsElement,
			Documentation:    documentation(i.Documentation),
			Equivalents:      t.values(i.Equivalents),
		})
	}
	return out
}

func (t *hclTranslator) resource(r hclResource) ResourceDoc {
	out := ResourceDoc{
		Name:           r.Name,
		BusinessObject: t.ref(r.BusinessObject),
		Extends:        t.ref(r.Extends),
		BasePath:       r.BasePath,
		Abstract:       r.Abstract,
		FirstClass:     r.FirstClass,
	}
	for _, p := range r.ParentRefs {
		out.ParentRefs = append(out.ParentRefs, ParentRefDoc{
			Parent:        t.ref(p.Parent),
			ParamGroup:    p.ParamGroup,
			PathTemplate:  p.PathTemplate,
			Documentation: documentation(p.Documentation),
		})
	}
	for _, g := range r.ParamGroups {
		group := ParamGroupDoc{
			Name:          g.Name,
			IDGroup:       g.IDGroup,
			Facet:         g.Facet,
			Documentation: documentation(g.Documentation),
		}
		for _, p := range g.Parameters {
			group.Parameters = append(group.Parameters, ParameterDoc{
				Field:         p.Field,
				Location:      p.Location,
				Documentation: documentation(p.Documentation),
				Equivalents:   t.values(p.Equivalents),
				Examples:      t.values(p.Examples),
			})
		}
		out.ParamGroups = append(out.ParamGroups, group)
	}
	for _, f := range r.ActionFacets {
		out.ActionFacets = append(out.ActionFacets, ActionFacetDoc{
			Name:            f.Name,
			ReferenceType:   f.ReferenceType,
			ReferenceFacet:  f.ReferenceFacet,
			ReferenceRepeat: f.ReferenceRepeat,
			BasePayload:     t.ref(f.BasePayload),
			Documentation:   documentation(f.Documentation),
		})
	}
	for _, a := range r.Actions {
		action := ActionDoc{
			ID:            a.ID,
			Common:        a.Common,
			Documentation: documentation(a.Documentation),
		}
		if req := a.Request; req != nil {
			action.Request = &ActionRequestDoc{
				Method:        req.Method,
				PathTemplate:  req.PathTemplate,
				ParamGroup:    req.ParamGroup,
				Payload:       req.Payload,
				MIMETypes:     req.MIMETypes,
				Documentation: documentation(req.Documentation),
			}
		}
		for _, resp := range a.Responses {
			action.Responses = append(action.Responses, ActionResponseDoc{
				StatusCodes:   resp.StatusCodes,
				Payload:       resp.Payload,
				MIMETypes:     resp.MIMETypes,
				Documentation: documentation(resp.Documentation),
			})
		}
		out.Actions = append(out.Actions, action)
	}
	return out
}

func documentation(d *hclDocumentation) *DocumentationDoc {
	if d == nil {
		return nil
	}
	return &DocumentationDoc{
		Description:  d.Description,
		Deprecations: d.Deprecations,
		References:   d.References,
		Implementers: d.Implementers,
		MoreInfos:    d.MoreInfos,
	}
}
