package loader

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jacoelho/otm/internal/model"
)

// Pos is a position inside a source document.
type Pos struct {
	File   string
	Line   int
	Column int
}

// Ref is an unresolved reference to a named entity. It is written as
// "Local", "prefix:Local" or "{namespace}Local" in YAML and HCL strings, or
// as the traversals Local and prefix.Local in HCL.
type Ref struct {
	Namespace string
	Prefix    string
	Local     string
	Pos       Pos
}

// ParseRef parses the string form of a reference.
func ParseRef(s string) Ref {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "{") {
		q := model.ParseQName(s)
		return Ref{Namespace: q.Namespace.String(), Local: q.Local}
	}
	if prefix, local, ok := strings.Cut(s, ":"); ok {
		return Ref{Prefix: prefix, Local: local}
	}
	return Ref{Local: s}
}

// IsZero reports whether the reference is absent.
func (r Ref) IsZero() bool {
	return r.Local == ""
}

// String returns the reference as written.
func (r Ref) String() string {
	switch {
	case r.Namespace != "":
		return "{" + r.Namespace + "}" + r.Local
	case r.Prefix != "":
		return r.Prefix + ":" + r.Local
	default:
		return r.Local
	}
}

// UnmarshalYAML decodes a scalar reference and records its position.
func (r *Ref) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: reference must be a string", node.Line)
	}
	*r = ParseRef(node.Value)
	r.Pos = Pos{Line: node.Line, Column: node.Column}
	return nil
}

// Document is one library in source form, independent of the syntax it was
// written in.
type Document struct {
	File string `yaml:"-"`

	Library         LibraryDoc          `yaml:"library"`
	Imports         []ImportDoc         `yaml:"imports,omitempty"`
	Contexts        []ContextDoc        `yaml:"contexts,omitempty"`
	SimpleTypes     []SimpleTypeDoc     `yaml:"simple_types,omitempty"`
	ValueTypes      []ValueTypeDoc      `yaml:"value_with_attributes,omitempty"`
	Enumerations    []EnumerationDoc    `yaml:"enumerations,omitempty"`
	BusinessObjects []BusinessObjectDoc `yaml:"business_objects,omitempty"`
	CoreObjects     []CoreObjectDoc     `yaml:"core_objects,omitempty"`
	ChoiceObjects   []ChoiceObjectDoc   `yaml:"choice_objects,omitempty"`
	Services        []ServiceDoc        `yaml:"services,omitempty"`
	ExtensionPoints []ExtensionPointDoc `yaml:"extension_points,omitempty"`
	Resources       []ResourceDoc       `yaml:"resources,omitempty"`
}

// LibraryDoc names the library a document declares.
type LibraryDoc struct {
	Name          string            `yaml:"name"`
	Namespace     string            `yaml:"namespace"`
	Prefix        string            `yaml:"prefix"`
	Version       string            `yaml:"version,omitempty"`
	Documentation *DocumentationDoc `yaml:"documentation,omitempty"`
}

// ImportDoc binds a prefix to a namespace for references in this document.
type ImportDoc struct {
	Prefix    string `yaml:"prefix"`
	Namespace string `yaml:"namespace"`
}

// ContextDoc declares a context identifier.
type ContextDoc struct {
	ID                 string            `yaml:"id"`
	ApplicationContext string            `yaml:"application_context,omitempty"`
	Documentation      *DocumentationDoc `yaml:"documentation,omitempty"`
}

// DocumentationDoc is descriptive text.
type DocumentationDoc struct {
	Description  string   `yaml:"description,omitempty"`
	Deprecations []string `yaml:"deprecations,omitempty"`
	References   []string `yaml:"references,omitempty"`
	Implementers []string `yaml:"implementers,omitempty"`
	MoreInfos    []string `yaml:"more_info,omitempty"`
}

// SimpleTypeDoc declares a simple type restriction.
type SimpleTypeDoc struct {
	Name          string            `yaml:"name"`
	Parent        Ref               `yaml:"parent"`
	List          bool              `yaml:"list,omitempty"`
	Pattern       string            `yaml:"pattern,omitempty"`
	MinLength     int               `yaml:"min_length,omitempty"`
	MaxLength     int               `yaml:"max_length,omitempty"`
	Documentation *DocumentationDoc `yaml:"documentation,omitempty"`
	Equivalents   map[string]string `yaml:"equivalents,omitempty"`
	Examples      map[string]string `yaml:"examples,omitempty"`
}

// ValueTypeDoc declares a value with attributes.
type ValueTypeDoc struct {
	Name          string            `yaml:"name"`
	Parent        Ref               `yaml:"parent"`
	Attributes    []AttributeDoc    `yaml:"attributes,omitempty"`
	Indicators    []IndicatorDoc    `yaml:"indicators,omitempty"`
	Documentation *DocumentationDoc `yaml:"documentation,omitempty"`
	Equivalents   map[string]string `yaml:"equivalents,omitempty"`
	Examples      map[string]string `yaml:"examples,omitempty"`
}

// EnumerationDoc declares an open or closed enumeration.
type EnumerationDoc struct {
	Name          string            `yaml:"name"`
	Open          bool              `yaml:"open,omitempty"`
	Extends       Ref               `yaml:"extends,omitempty"`
	Values        []EnumValueDoc    `yaml:"values,omitempty"`
	Documentation *DocumentationDoc `yaml:"documentation,omitempty"`
}

// EnumValueDoc is one enumeration literal.
type EnumValueDoc struct {
	Literal       string            `yaml:"literal"`
	Label         string            `yaml:"label,omitempty"`
	Documentation *DocumentationDoc `yaml:"documentation,omitempty"`
	Equivalents   map[string]string `yaml:"equivalents,omitempty"`
}

// AttributeDoc declares an attribute.
type AttributeDoc struct {
	Name          string            `yaml:"name"`
	Type          Ref               `yaml:"type"`
	Reference     bool              `yaml:"reference,omitempty"`
	Mandatory     bool              `yaml:"mandatory,omitempty"`
	Documentation *DocumentationDoc `yaml:"documentation,omitempty"`
	Equivalents   map[string]string `yaml:"equivalents,omitempty"`
	Examples      map[string]string `yaml:"examples,omitempty"`
}

// ElementDoc declares an element. An empty name takes the type's name.
type ElementDoc struct {
	Name          string            `yaml:"name,omitempty"`
	Type          Ref               `yaml:"type"`
	Reference     bool              `yaml:"reference,omitempty"`
	Repeat        int               `yaml:"repeat,omitempty"`
	Mandatory     bool              `yaml:"mandatory,omitempty"`
	Documentation *DocumentationDoc `yaml:"documentation,omitempty"`
	Equivalents   map[string]string `yaml:"equivalents,omitempty"`
	Examples      map[string]string `yaml:"examples,omitempty"`
}

// IndicatorDoc declares an indicator.
type IndicatorDoc struct {
	Name             string            `yaml:"name"`
	PublishAsElement bool              `yaml:"publish_as_element,omitempty"`
	Documentation    *DocumentationDoc `yaml:"documentation,omitempty"`
	Equivalents      map[string]string `yaml:"equivalents,omitempty"`
}

// FacetDoc is the member list of a facet.
type FacetDoc struct {
	Attributes    []AttributeDoc    `yaml:"attributes,omitempty"`
	Elements      []ElementDoc      `yaml:"elements,omitempty"`
	Indicators    []IndicatorDoc    `yaml:"indicators,omitempty"`
	Documentation *DocumentationDoc `yaml:"documentation,omitempty"`
	Equivalents   map[string]string `yaml:"equivalents,omitempty"`
}

// ContextualFacetDoc declares a contextual facet. Nested facets share the
// kind of the facet that declares them.
type ContextualFacetDoc struct {
	FacetDoc `yaml:",inline"`

	Label         string               `yaml:"label,omitempty"`
	Context       string               `yaml:"context,omitempty"`
	Local         bool                 `yaml:"local,omitempty"`
	NotExtendable bool                 `yaml:"not_extendable,omitempty"`
	Contextual    []ContextualFacetDoc `yaml:"contextual,omitempty"`
}

// BusinessObjectDoc declares a business object.
type BusinessObjectDoc struct {
	Name          string               `yaml:"name"`
	Extends       Ref                  `yaml:"extends,omitempty"`
	Aliases       []string             `yaml:"aliases,omitempty"`
	NotExtendable bool                 `yaml:"not_extendable,omitempty"`
	ID            *FacetDoc            `yaml:"id,omitempty"`
	Summary       *FacetDoc            `yaml:"summary,omitempty"`
	Detail        *FacetDoc            `yaml:"detail,omitempty"`
	Custom        []ContextualFacetDoc `yaml:"custom,omitempty"`
	Query         []ContextualFacetDoc `yaml:"query,omitempty"`
	Update        []ContextualFacetDoc `yaml:"update,omitempty"`
	Documentation *DocumentationDoc    `yaml:"documentation,omitempty"`
	Equivalents   map[string]string    `yaml:"equivalents,omitempty"`
}

// SimpleFacetDoc declares the simple facet of a core object.
type SimpleFacetDoc struct {
	Type          Ref               `yaml:"type"`
	Documentation *DocumentationDoc `yaml:"documentation,omitempty"`
	Equivalents   map[string]string `yaml:"equivalents,omitempty"`
	Examples      map[string]string `yaml:"examples,omitempty"`
}

// CoreObjectDoc declares a core object.
type CoreObjectDoc struct {
	Name          string            `yaml:"name"`
	Extends       Ref               `yaml:"extends,omitempty"`
	Aliases       []string          `yaml:"aliases,omitempty"`
	NotExtendable bool              `yaml:"not_extendable,omitempty"`
	Simple        *SimpleFacetDoc   `yaml:"simple,omitempty"`
	Summary       *FacetDoc         `yaml:"summary,omitempty"`
	Detail        *FacetDoc         `yaml:"detail,omitempty"`
	Roles         []string          `yaml:"roles,omitempty"`
	Documentation *DocumentationDoc `yaml:"documentation,omitempty"`
	Equivalents   map[string]string `yaml:"equivalents,omitempty"`
}

// ChoiceObjectDoc declares a choice object.
type ChoiceObjectDoc struct {
	Name          string               `yaml:"name"`
	Extends       Ref                  `yaml:"extends,omitempty"`
	Aliases       []string             `yaml:"aliases,omitempty"`
	NotExtendable bool                 `yaml:"not_extendable,omitempty"`
	Shared        *FacetDoc            `yaml:"shared,omitempty"`
	Choice        []ContextualFacetDoc `yaml:"choice,omitempty"`
	Documentation *DocumentationDoc    `yaml:"documentation,omitempty"`
	Equivalents   map[string]string    `yaml:"equivalents,omitempty"`
}

// ServiceDoc declares a service and its operations.
type ServiceDoc struct {
	Name          string            `yaml:"name"`
	Operations    []OperationDoc    `yaml:"operations,omitempty"`
	Documentation *DocumentationDoc `yaml:"documentation,omitempty"`
	Equivalents   map[string]string `yaml:"equivalents,omitempty"`
}

// OperationDoc declares an operation.
type OperationDoc struct {
	Name          string            `yaml:"name"`
	Extends       Ref               `yaml:"extends,omitempty"`
	NotExtendable bool              `yaml:"not_extendable,omitempty"`
	Request       *FacetDoc         `yaml:"request,omitempty"`
	Response      *FacetDoc         `yaml:"response,omitempty"`
	Notification  *FacetDoc         `yaml:"notification,omitempty"`
	Documentation *DocumentationDoc `yaml:"documentation,omitempty"`
	Equivalents   map[string]string `yaml:"equivalents,omitempty"`
}

// ExtensionPointDoc contributes members to a facet of another library.
type ExtensionPointDoc struct {
	Extends       Ref               `yaml:"extends"`
	Attributes    []AttributeDoc    `yaml:"attributes,omitempty"`
	Elements      []ElementDoc      `yaml:"elements,omitempty"`
	Indicators    []IndicatorDoc    `yaml:"indicators,omitempty"`
	Documentation *DocumentationDoc `yaml:"documentation,omitempty"`
}

// ResourceDoc declares a resource.
type ResourceDoc struct {
	Name           string           `yaml:"name"`
	BusinessObject Ref              `yaml:"business_object,omitempty"`
	Extends        Ref              `yaml:"extends,omitempty"`
	BasePath       string           `yaml:"base_path,omitempty"`
	Abstract       bool             `yaml:"abstract,omitempty"`
	FirstClass     bool             `yaml:"first_class,omitempty"`
	ParentRefs     []ParentRefDoc   `yaml:"parent_refs,omitempty"`
	ParamGroups    []ParamGroupDoc  `yaml:"param_groups,omitempty"`
	ActionFacets   []ActionFacetDoc `yaml:"action_facets,omitempty"`
	Actions        []ActionDoc      `yaml:"actions,omitempty"`
}

// ParentRefDoc nests a resource under a parent resource.
type ParentRefDoc struct {
	Parent        Ref               `yaml:"parent"`
	ParamGroup    string            `yaml:"param_group,omitempty"`
	PathTemplate  string            `yaml:"path_template,omitempty"`
	Documentation *DocumentationDoc `yaml:"documentation,omitempty"`
}

// ParamGroupDoc declares a parameter group.
type ParamGroupDoc struct {
	Name          string            `yaml:"name"`
	IDGroup       bool              `yaml:"id_group,omitempty"`
	Facet         string            `yaml:"facet"`
	Parameters    []ParameterDoc    `yaml:"parameters,omitempty"`
	Documentation *DocumentationDoc `yaml:"documentation,omitempty"`
}

// ParameterDoc binds a facet field to a request location.
type ParameterDoc struct {
	Field         string            `yaml:"field"`
	Location      string            `yaml:"location,omitempty"`
	Documentation *DocumentationDoc `yaml:"documentation,omitempty"`
	Equivalents   map[string]string `yaml:"equivalents,omitempty"`
	Examples      map[string]string `yaml:"examples,omitempty"`
}

// ActionFacetDoc declares an action facet.
type ActionFacetDoc struct {
	Name            string            `yaml:"name"`
	ReferenceType   string            `yaml:"reference_type,omitempty"`
	ReferenceFacet  string            `yaml:"reference_facet,omitempty"`
	ReferenceRepeat int               `yaml:"reference_repeat,omitempty"`
	BasePayload     Ref               `yaml:"base_payload,omitempty"`
	Documentation   *DocumentationDoc `yaml:"documentation,omitempty"`
}

// ActionDoc declares an action.
type ActionDoc struct {
	ID            string              `yaml:"id"`
	Common        bool                `yaml:"common,omitempty"`
	Request       *ActionRequestDoc   `yaml:"request,omitempty"`
	Responses     []ActionResponseDoc `yaml:"responses,omitempty"`
	Documentation *DocumentationDoc   `yaml:"documentation,omitempty"`
}

// ActionRequestDoc declares the request of an action.
type ActionRequestDoc struct {
	Method        string            `yaml:"method"`
	PathTemplate  string            `yaml:"path_template,omitempty"`
	ParamGroup    string            `yaml:"param_group,omitempty"`
	Payload       string            `yaml:"payload,omitempty"`
	MIMETypes     []string          `yaml:"mime_types,omitempty"`
	Documentation *DocumentationDoc `yaml:"documentation,omitempty"`
}

// ActionResponseDoc declares one response of an action.
type ActionResponseDoc struct {
	StatusCodes   []int             `yaml:"status_codes"`
	Payload       string            `yaml:"payload,omitempty"`
	MIMETypes     []string          `yaml:"mime_types,omitempty"`
	Documentation *DocumentationDoc `yaml:"documentation,omitempty"`
}
