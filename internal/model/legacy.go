package model

// LegacyElement is a global element imported from a legacy schema.
type LegacyElement struct {
	Named
	TypeName QName
}

// LegacyComplexType is a complex type imported from a legacy schema.
type LegacyComplexType struct {
	Named
}

// LegacySimpleType is a simple type imported from a legacy schema, including
// the built-in XML Schema datatypes.
type LegacySimpleType struct {
	Named
}

func (*LegacyElement) namedEntity()     {}
func (*LegacyComplexType) namedEntity() {}
func (*LegacySimpleType) namedEntity()  {}
