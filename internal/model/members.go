package model

// Attribute is an attribute declared on a facet, value-with-attributes or
// extension point facet.
type Attribute struct {
	Owner         NamedEntity
	LocalName     string
	Type          NamedEntity
	TypeName      QName
	Reference     bool
	Mandatory     bool
	Documentation *Documentation
	Equivalents   []*Equivalent
	Examples      []*Example
}

// Property is an element declared on a facet or extension point facet.
type Property struct {
	Owner         NamedEntity
	LocalName     string
	Type          NamedEntity
	TypeName      QName
	Reference     bool
	Repeat        int
	Mandatory     bool
	Documentation *Documentation
	Equivalents   []*Equivalent
	Examples      []*Example
}

// Indicator is a boolean flag declared on a facet or value-with-attributes.
type Indicator struct {
	Owner            NamedEntity
	LocalName        string
	PublishAsElement bool
	Documentation    *Documentation
	Equivalents      []*Equivalent
}

// Documentation holds descriptive text attached to an entity or member.
type Documentation struct {
	Description  string
	Deprecations []string
	References   []string
	Implementers []string
	MoreInfos    []string
}

// IsEmpty reports whether the documentation carries no text.
func (d *Documentation) IsEmpty() bool {
	if d == nil {
		return true
	}
	return d.Description == "" && len(d.Deprecations) == 0 && len(d.References) == 0 &&
		len(d.Implementers) == 0 && len(d.MoreInfos) == 0
}

// Equivalent maps an entity or member to a term of an external vocabulary.
type Equivalent struct {
	Context string
	Value   string
}

// Example is a sample value for a simple-valued entity or member.
type Example struct {
	Context string
	Value   string
}

// DeclaredName returns the attribute name.
func (a *Attribute) DeclaredName() string {
	if a == nil {
		return ""
	}
	return a.LocalName
}

// DeclaredName returns the element name, falling back to the local name of
// the assigned type when no explicit name was declared.
func (p *Property) DeclaredName() string {
	if p == nil {
		return ""
	}
	if p.LocalName != "" {
		return p.LocalName
	}
	if !IsNil(p.Type) {
		return p.Type.Name().Local
	}
	return p.TypeName.Local
}

// DeclaredName returns the indicator name.
func (i *Indicator) DeclaredName() string {
	if i == nil {
		return ""
	}
	return i.LocalName
}
