package model

// SimpleType is a named restriction of another simple type.
type SimpleType struct {
	Named
	Parent      NamedEntity
	ParentName  QName
	ListTypeInd bool
	Pattern     string
	MinLength   int
	MaxLength   int
	Equivalents []*Equivalent
	Examples    []*Example
}

// ValueWithAttributes is a simple value decorated with attributes and
// indicators. Parent is either a simple type or another ValueWithAttributes.
type ValueWithAttributes struct {
	Named
	Parent      NamedEntity
	ParentName  QName
	Attributes  []*Attribute
	Indicators  []*Indicator
	Equivalents []*Equivalent
	Examples    []*Example
}

// EnumValue is one literal of an enumeration.
type EnumValue struct {
	Owner         NamedEntity
	Literal       string
	Label         string
	Documentation *Documentation
	Equivalents   []*Equivalent
}

// OpenEnumeration is an enumeration that also accepts undeclared values.
type OpenEnumeration struct {
	Named
	Values    []*EnumValue
	Extension *Extension
}

// ClosedEnumeration is an enumeration restricted to its declared values.
type ClosedEnumeration struct {
	Named
	Values    []*EnumValue
	Extension *Extension
}

func (*SimpleType) namedEntity()          {}
func (*ValueWithAttributes) namedEntity() {}
func (*OpenEnumeration) namedEntity()     {}
func (*ClosedEnumeration) namedEntity()   {}

// ParentType returns the parent of a simple or value-with-attributes type.
func ParentType(entity NamedEntity) NamedEntity {
	switch e := entity.(type) {
	case *SimpleType:
		if e != nil && !IsNil(e.Parent) {
			return e.Parent
		}
	case *ValueWithAttributes:
		if e != nil && !IsNil(e.Parent) {
			return e.Parent
		}
	}
	return nil
}
