package substitute

import "github.com/jacoelho/otm/internal/model"

// ownerPair names the (originating owner, referenced owner) combination a
// substitution rule applies to.
type ownerPair uint8

const (
	pairNone ownerPair = iota
	pairBusinessToBusiness
	pairBusinessToCore
	pairCoreToBusiness
	pairCoreToCore
	pairExtensionToBusiness
	pairExtensionToCore
	pairCoreToList
)

var pairNames = [...]string{
	pairNone:                "none",
	pairBusinessToBusiness:  "business->business",
	pairBusinessToCore:      "business->core",
	pairCoreToBusiness:      "core->business",
	pairCoreToCore:          "core->core",
	pairExtensionToBusiness: "extension->business",
	pairExtensionToCore:     "extension->core",
	pairCoreToList:          "core->list",
}

func (p ownerPair) String() string {
	if int(p) < len(pairNames) {
		return pairNames[p]
	}
	return "unknown"
}

// rule lists the alternates tried, in order, for a referenced facet kind.
// origin restricts the rule to one originating facet kind; KindUnknown
// matches any.
type rule struct {
	origin     model.FacetKind
	referenced model.FacetKind
	alternates []model.FacetKind
}

const (
	id      = model.KindID
	summary = model.KindSummary
	detail  = model.KindDetail
	custom  = model.KindCustom
	query   = model.KindQuery
	update  = model.KindUpdate
	simple  = model.KindSimple
	anyKind = model.KindUnknown
)

func kinds(k ...model.FacetKind) []model.FacetKind { return k }

// Query and update facets never substitute upward to a detail facet.
var businessToBusiness = []rule{
	{origin: query, referenced: id, alternates: kinds(summary)},
	{origin: query, referenced: summary, alternates: kinds(id)},
	{origin: query, referenced: detail, alternates: kinds(summary, id)},
	{origin: update, referenced: id, alternates: kinds(summary)},
	{origin: update, referenced: summary, alternates: kinds(id)},
	{origin: update, referenced: detail, alternates: kinds(summary, id)},
	{origin: anyKind, referenced: id, alternates: kinds(summary, detail)},
	{origin: anyKind, referenced: summary, alternates: kinds(id, detail)},
	{origin: anyKind, referenced: detail, alternates: kinds(summary, id)},
	{origin: anyKind, referenced: custom, alternates: kinds(summary, id)},
	{origin: anyKind, referenced: query},
	{origin: anyKind, referenced: update},
}

var coreToCore = []rule{
	{origin: anyKind, referenced: summary, alternates: kinds(simple, detail)},
	{origin: anyKind, referenced: detail, alternates: kinds(summary, simple)},
	{origin: anyKind, referenced: simple},
}

var coreToBusiness = []rule{
	{origin: anyKind, referenced: id, alternates: kinds(summary, detail)},
	{origin: anyKind, referenced: summary, alternates: kinds(id, detail)},
	{origin: anyKind, referenced: detail, alternates: kinds(summary, id)},
	{origin: anyKind, referenced: custom},
	{origin: anyKind, referenced: query},
	{origin: anyKind, referenced: update},
}

var extensionToBusiness = []rule{
	{origin: anyKind, referenced: id},
	{origin: anyKind, referenced: summary, alternates: kinds(id)},
	{origin: anyKind, referenced: detail, alternates: kinds(summary, id)},
	{origin: anyKind, referenced: custom, alternates: kinds(summary, id)},
	{origin: anyKind, referenced: query},
	{origin: anyKind, referenced: update},
}

var extensionToCore = []rule{
	{origin: anyKind, referenced: summary},
	{origin: anyKind, referenced: detail, alternates: kinds(summary)},
	{origin: anyKind, referenced: simple},
}

// List facets are keyed by their item kind.
var coreToList = []rule{
	{origin: anyKind, referenced: simple},
	{origin: anyKind, referenced: summary, alternates: kinds(simple, detail)},
	{origin: anyKind, referenced: detail, alternates: kinds(summary, simple)},
}

var table = map[ownerPair][]rule{
	pairBusinessToBusiness:  businessToBusiness,
	pairBusinessToCore:      coreToCore,
	pairCoreToBusiness:      coreToBusiness,
	pairCoreToCore:          coreToCore,
	pairExtensionToBusiness: extensionToBusiness,
	pairExtensionToCore:     extensionToCore,
	pairCoreToList:          coreToList,
}

func lookup(pair ownerPair, origin, referenced model.FacetKind) []model.FacetKind {
	for _, r := range table[pair] {
		if r.referenced != referenced {
			continue
		}
		if r.origin != anyKind && r.origin != origin {
			continue
		}
		return r.alternates
	}
	return nil
}
