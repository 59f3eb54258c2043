package model

import (
	"cmp"
	"strings"
)

// NamespaceURI represents a library namespace.
type NamespaceURI string

// String returns the namespace as a string.
func (ns NamespaceURI) String() string {
	return string(ns)
}

// IsEmpty reports whether the namespace is empty.
func (ns NamespaceURI) IsEmpty() bool {
	return ns == ""
}

// QName represents a qualified name with namespace and local part
type QName struct {
	Namespace NamespaceURI
	Local     string
}

// String returns the QName in {namespace}local format, or just local if no namespace
func (q QName) String() string {
	if q.Namespace.IsEmpty() {
		return q.Local
	}
	return "{" + q.Namespace.String() + "}" + q.Local
}

// IsZero returns true if the QName is the zero value
func (q QName) IsZero() bool {
	return q.Namespace.IsEmpty() && q.Local == ""
}

// Equal returns true if two QNames are equal
func (q QName) Equal(other QName) bool {
	return q.Namespace == other.Namespace && q.Local == other.Local
}

// CompareQNames orders names by namespace, then local part.
func CompareQNames(a, b QName) int {
	if c := cmp.Compare(a.Namespace, b.Namespace); c != 0 {
		return c
	}
	return cmp.Compare(a.Local, b.Local)
}

// ParseQName parses "{namespace}local" or a bare local name.
func ParseQName(s string) QName {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "{") {
		if end := strings.IndexByte(s, '}'); end > 0 {
			return QName{Namespace: NamespaceURI(s[1:end]), Local: s[end+1:]}
		}
	}
	return QName{Local: s}
}
