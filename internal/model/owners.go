package model

// BusinessObject is a facet owner with identity, summary and detail facets
// plus contextual custom, query and update facets.
type BusinessObject struct {
	Named
	ID            *Facet
	Summary       *Facet
	Detail        *Facet
	Custom        []*Facet
	Query         []*Facet
	Update        []*Facet
	Aliases       []*Alias
	Extension     *Extension
	NotExtendable bool
	Equivalents   []*Equivalent
}

// CoreObject is a facet owner with simple, summary and detail facets and a
// parallel list facet for each of them.
type CoreObject struct {
	Named
	Simple        *SimpleFacet
	Summary       *Facet
	Detail        *Facet
	SimpleList    *ListFacet
	SummaryList   *ListFacet
	DetailList    *ListFacet
	Roles         []*Role
	Aliases       []*Alias
	Extension     *Extension
	NotExtendable bool
	Equivalents   []*Equivalent
}

// Role is one value of a core object's role enumeration.
type Role struct {
	Owner         *CoreObject
	LocalName     string
	Documentation *Documentation
}

// ChoiceObject is a facet owner with a shared facet and contextual choice
// facets.
type ChoiceObject struct {
	Named
	Shared        *Facet
	Choice        []*Facet
	Aliases       []*Alias
	Extension     *Extension
	NotExtendable bool
	Equivalents   []*Equivalent
}

// Service groups operations.
type Service struct {
	Named
	Operations  []*Operation
	Equivalents []*Equivalent
}

// Operation is a facet owner with request, response and notification
// message facets.
type Operation struct {
	Named
	Service       *Service
	Request       *Facet
	Response      *Facet
	Notification  *Facet
	Extension     *Extension
	NotExtendable bool
	Equivalents   []*Equivalent
}

func (*BusinessObject) namedEntity() {}
func (*CoreObject) namedEntity()     {}
func (*ChoiceObject) namedEntity()   {}
func (*Service) namedEntity()        {}
func (*Operation) namedEntity()      {}

func (*BusinessObject) facetOwner() {}
func (*CoreObject) facetOwner()     {}
func (*ChoiceObject) facetOwner()   {}
func (*Operation) facetOwner()      {}

// OwnerAliases returns the aliases declared directly on a facet owner.
func OwnerAliases(owner FacetOwner) []*Alias {
	switch o := owner.(type) {
	case *BusinessObject:
		if o != nil {
			return o.Aliases
		}
	case *CoreObject:
		if o != nil {
			return o.Aliases
		}
	case *ChoiceObject:
		if o != nil {
			return o.Aliases
		}
	case *Facet:
		if o != nil {
			return o.Aliases
		}
	}
	return nil
}
