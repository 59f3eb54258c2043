package loader

import "github.com/jacoelho/otm/internal/model"

// XSDNamespace is the namespace of the built-in XML Schema datatypes.
const XSDNamespace model.NamespaceURI = "http://www.w3.org/2001/XMLSchema"

var xsdTypes = []string{
	"anySimpleType", "anyURI", "base64Binary", "boolean", "byte", "date",
	"dateTime", "decimal", "double", "duration", "float", "gDay", "gMonth",
	"gMonthDay", "gYear", "gYearMonth", "hexBinary", "ID", "IDREF", "int",
	"integer", "language", "long", "Name", "NCName", "negativeInteger",
	"nonNegativeInteger", "nonPositiveInteger", "normalizedString",
	"positiveInteger", "QName", "short", "string", "time", "token",
	"unsignedByte", "unsignedInt", "unsignedLong", "unsignedShort",
}

// addBuiltins appends the XML Schema library unless a document declares
// that namespace itself.
func (b *builder) addBuiltins() {
	if _, ok := b.libraries[XSDNamespace]; ok {
		return
	}
	lib := &model.Library{Namespace: XSDNamespace, Prefix: "xsd", Name: "XMLSchema", Builtin: true}
	for _, name := range xsdTypes {
		lib.AddMember(&model.LegacySimpleType{Named: model.Named{LocalName: name}})
	}
	b.libraries[XSDNamespace] = lib
	b.model.AddLibrary(lib)
}
