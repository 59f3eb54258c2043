package model

import "strings"

// FacetKind identifies the slot a facet occupies on its owner.
type FacetKind uint8

const (
	// KindUnknown is the zero kind.
	KindUnknown FacetKind = iota
	// KindID is the business object identity facet.
	KindID
	// KindSummary is the summary facet of business and core objects.
	KindSummary
	// KindDetail is the detail facet of business and core objects.
	KindDetail
	// KindCustom is the contextual custom facet of business objects.
	KindCustom
	// KindQuery is the contextual query facet of business objects.
	KindQuery
	// KindUpdate is the contextual update facet of business objects.
	KindUpdate
	// KindShared is the shared facet of choice objects.
	KindShared
	// KindChoice is the contextual choice facet of choice objects.
	KindChoice
	// KindSimple is the simple facet of core objects.
	KindSimple
	// KindRequest is the request message of an operation.
	KindRequest
	// KindResponse is the response message of an operation.
	KindResponse
	// KindNotification is the notification message of an operation.
	KindNotification
)

// ListSuffix is appended to item facet names to form list facet names.
const ListSuffix = "_List"

var facetKindNames = [...]string{
	KindUnknown:      "unknown",
	KindID:           "ID",
	KindSummary:      "Summary",
	KindDetail:       "Detail",
	KindCustom:       "Custom",
	KindQuery:        "Query",
	KindUpdate:       "Update",
	KindShared:       "Shared",
	KindChoice:       "Choice",
	KindSimple:       "Simple",
	KindRequest:      "Request",
	KindResponse:     "Response",
	KindNotification: "Notification",
}

var facetKindIdentities = [...]string{
	KindUnknown:      "",
	KindID:           "ID",
	KindSummary:      "Summary",
	KindDetail:       "Detail",
	KindCustom:       "Custom",
	KindQuery:        "Query",
	KindUpdate:       "Update",
	KindShared:       "Shared",
	KindChoice:       "Choice",
	KindSimple:       "Simple",
	KindRequest:      "RQ",
	KindResponse:     "RS",
	KindNotification: "Notif",
}

// String returns the kind name.
func (k FacetKind) String() string {
	if int(k) < len(facetKindNames) {
		return facetKindNames[k]
	}
	return "unknown"
}

// Identity returns the name fragment used to build facet and alias names.
func (k FacetKind) Identity() string {
	if int(k) < len(facetKindIdentities) {
		return facetKindIdentities[k]
	}
	return ""
}

// IsContextual reports whether an owner may declare several facets of this kind.
func (k FacetKind) IsContextual() bool {
	switch k {
	case KindCustom, KindQuery, KindUpdate, KindChoice:
		return true
	default:
		return false
	}
}

// ParseFacetKind maps a kind name, case-insensitively, to its FacetKind.
func ParseFacetKind(s string) (FacetKind, bool) {
	for k := KindID; k <= KindNotification; k++ {
		if strings.EqualFold(s, facetKindNames[k]) || strings.EqualFold(s, facetKindIdentities[k]) {
			return k, true
		}
	}
	return KindUnknown, false
}

// ComposeIdentity builds the canonical identity string of a facet. Two facets
// of the same owner chain with equal identities are the same logical facet.
func ComposeIdentity(kind FacetKind, context, label string) string {
	identity := kind.Identity()
	if !kind.IsContextual() {
		return identity
	}
	switch {
	case label != "":
		return identity + "_" + label
	case context != "":
		return identity + "_" + context
	default:
		return identity
	}
}
