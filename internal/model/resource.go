package model

// ReferenceType controls whether an action facet embeds a business object
// facet and whether the reference is optional.
type ReferenceType uint8

const (
	// ReferenceNone means the action facet does not reference the business object.
	ReferenceNone ReferenceType = iota
	// ReferenceRequired means the business object facet is mandatory.
	ReferenceRequired
	// ReferenceOptional means the business object facet may be omitted.
	ReferenceOptional
)

// String returns the reference type name.
func (r ReferenceType) String() string {
	switch r {
	case ReferenceRequired:
		return "required"
	case ReferenceOptional:
		return "optional"
	default:
		return "none"
	}
}

// ParamLocation is the position of a resource parameter in a request.
type ParamLocation uint8

const (
	// ParamPath is a URL path parameter.
	ParamPath ParamLocation = iota
	// ParamQuery is a URL query parameter.
	ParamQuery
	// ParamHeader is an HTTP header parameter.
	ParamHeader
)

// String returns the location name.
func (l ParamLocation) String() string {
	switch l {
	case ParamQuery:
		return "query"
	case ParamHeader:
		return "header"
	default:
		return "path"
	}
}

// Resource exposes a business object through REST actions.
type Resource struct {
	Named
	BusinessObject     *BusinessObject
	BusinessObjectName QName
	Extension          *Extension
	BasePath           string
	Abstract           bool
	FirstClass         bool
	ParentRefs         []*ResourceParentRef
	ParamGroups        []*ParamGroup
	ActionFacets       []*ActionFacet
	Actions            []*Action
}

// ResourceParentRef nests a resource under a parent resource.
type ResourceParentRef struct {
	Owner          *Resource
	Parent         *Resource
	ParentName     QName
	ParamGroupName string
	PathTemplate   string
	Documentation  *Documentation
}

// ParamGroup is a named set of parameters drawn from a business object facet.
type ParamGroup struct {
	Owner         *Resource
	LocalName     string
	IDGroup       bool
	Facet         AbstractFacet
	FacetName     string
	Parameters    []*Parameter
	Documentation *Documentation
}

// Parameter binds one facet field to a request location.
type Parameter struct {
	Owner         *ParamGroup
	FieldName     string
	Location      ParamLocation
	Documentation *Documentation
	Equivalents   []*Equivalent
	Examples      []*Example
}

// ActionFacet is a payload shape of a resource: an optional reference to a
// business object facet wrapped in an optional base payload.
type ActionFacet struct {
	Owner              *Resource
	LocalName          string
	ReferenceType      ReferenceType
	ReferenceFacetName string
	ReferenceRepeat    int
	BasePayload        NamedEntity
	BasePayloadName    QName
	Documentation      *Documentation

	ghost   bool
	ghostOf *ActionFacet
}

// Action is one operation exposed by a resource.
type Action struct {
	Owner         *Resource
	ActionID      string
	Common        bool
	Request       *ActionRequest
	Responses     []*ActionResponse
	Documentation *Documentation
}

// ActionRequest describes the HTTP request of an action.
type ActionRequest struct {
	Owner          *Action
	HTTPMethod     string
	PathTemplate   string
	ParamGroup     *ParamGroup
	ParamGroupName string
	Payload        *ActionFacet
	PayloadName    string
	MIMETypes      []string
	Documentation  *Documentation
}

// ActionResponse describes one HTTP response of an action.
type ActionResponse struct {
	Owner         *Action
	StatusCodes   []int
	Payload       *ActionFacet
	PayloadName   string
	MIMETypes     []string
	Documentation *Documentation
}

func (*Resource) namedEntity()    {}
func (*ActionFacet) namedEntity() {}

// Name returns the qualified action facet name.
func (f *ActionFacet) Name() QName {
	if f == nil {
		return QName{}
	}
	if f.Owner == nil {
		return QName{Local: f.LocalName}
	}
	owner := f.Owner.Name()
	return QName{Namespace: owner.Namespace, Local: owner.Local + "_" + f.LocalName}
}

// OwningLibrary returns the library of the owning resource.
func (f *ActionFacet) OwningLibrary() *Library {
	if f == nil || f.Owner == nil {
		return nil
	}
	return f.Owner.Library
}

// Identity returns the action facet name used for matching across resources.
func (f *ActionFacet) Identity() string {
	if f == nil {
		return ""
	}
	return f.LocalName
}

// IsGhost reports whether the action facet was synthesized during resolution.
func (f *ActionFacet) IsGhost() bool {
	return f != nil && f.ghost
}

// GhostOf returns the ancestor action facet a ghost stands for.
func (f *ActionFacet) GhostOf() *ActionFacet {
	if f == nil {
		return nil
	}
	return f.ghostOf
}

// ActionFacet returns the action facet declared on r with the given name.
func (r *Resource) ActionFacet(name string) *ActionFacet {
	if r == nil {
		return nil
	}
	for _, facet := range r.ActionFacets {
		if facet.LocalName == name {
			return facet
		}
	}
	return nil
}

// ParamGroup returns the parameter group declared on r with the given name.
func (r *Resource) ParamGroup(name string) *ParamGroup {
	if r == nil {
		return nil
	}
	for _, group := range r.ParamGroups {
		if group.LocalName == name {
			return group
		}
	}
	return nil
}
