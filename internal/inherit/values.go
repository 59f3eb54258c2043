package inherit

import (
	"github.com/jacoelho/otm/internal/model"
	"github.com/jacoelho/otm/internal/typewalk"
)

func valueParent(current *model.ValueWithAttributes) (*model.ValueWithAttributes, bool) {
	parent, ok := model.ParentType(current).(*model.ValueWithAttributes)
	return parent, ok && parent != nil
}

// ValueChain returns vwa followed by the value-with-attributes types it
// derives from, nearest first.
func ValueChain(vwa *model.ValueWithAttributes) []*model.ValueWithAttributes {
	if vwa == nil {
		return nil
	}
	return typewalk.Chain(vwa, valueParent)
}

// ValueAttributes returns the attributes of vwa and its value-with-attributes
// ancestors, root first. Unless includeDuplicateNames is set the first
// attribute of a given name wins.
func ValueAttributes(vwa *model.ValueWithAttributes, includeDuplicateNames bool) []*model.Attribute {
	var acc []*model.Attribute
	for _, level := range ValueChain(vwa) {
		acc = prepend(acc, level.Attributes)
	}
	if includeDuplicateNames {
		return acc
	}
	return firstByName(acc)
}

// ValueIndicators returns the indicators of vwa and its ancestors, root
// first, first name wins.
func ValueIndicators(vwa *model.ValueWithAttributes) []*model.Indicator {
	var acc []*model.Indicator
	for _, level := range ValueChain(vwa) {
		acc = prepend(acc, level.Indicators)
	}
	return firstByName(acc)
}

// BaseSimpleType returns the first parent along vwa's chain that is not a
// value-with-attributes type, or nil when the chain is dangling or cyclic.
func BaseSimpleType(vwa *model.ValueWithAttributes) model.NamedEntity {
	chain := ValueChain(vwa)
	if len(chain) == 0 {
		return nil
	}
	last := chain[len(chain)-1]
	parent := model.ParentType(last)
	if _, ok := parent.(*model.ValueWithAttributes); ok {
		// The chain stopped on a repeated value type.
		return nil
	}
	return parent
}

func typeParent(current model.NamedEntity) (model.NamedEntity, bool) {
	parent := model.ParentType(current)
	return parent, parent != nil
}

// TypeChain returns t followed by its parent types, nearest first. Only
// simple and value-with-attributes types have parents.
func TypeChain(t model.NamedEntity) []model.NamedEntity {
	if model.IsNil(t) {
		return nil
	}
	return typewalk.Chain(t, typeParent)
}

func enumParent(current model.NamedEntity) (model.NamedEntity, bool) {
	ext := model.ExtensionOf(current)
	if ext == nil {
		return nil, false
	}
	switch parent := ext.Target().(type) {
	case *model.OpenEnumeration:
		return parent, parent != nil
	case *model.ClosedEnumeration:
		return parent, parent != nil
	}
	return nil, false
}

// InheritedEnumValues returns the values of an open or closed enumeration
// and of the enumerations it extends, root first. The first value declared
// for a literal wins.
func InheritedEnumValues(enum model.NamedEntity) []*model.EnumValue {
	switch enum.(type) {
	case *model.OpenEnumeration, *model.ClosedEnumeration:
	default:
		return nil
	}
	if model.IsNil(enum) {
		return nil
	}
	var acc []*model.EnumValue
	for _, level := range typewalk.Chain(enum, enumParent) {
		acc = prepend(acc, enumValues(level))
	}
	seen := make(map[string]bool, len(acc))
	out := make([]*model.EnumValue, 0, len(acc))
	for _, v := range acc {
		if seen[v.Literal] {
			continue
		}
		seen[v.Literal] = true
		out = append(out, v)
	}
	return out
}

func enumValues(enum model.NamedEntity) []*model.EnumValue {
	switch e := enum.(type) {
	case *model.OpenEnumeration:
		return e.Values
	case *model.ClosedEnumeration:
		return e.Values
	}
	return nil
}
