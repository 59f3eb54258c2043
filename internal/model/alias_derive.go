package model

// AddOwnerAlias declares an alias on owner and the matching alias on every
// facet it declares: "<alias>_<identity>" on facets, "<alias>_<identity>_List"
// on core object list facets, recursively for nested contextual facets.
func AddOwnerAlias(owner FacetOwner, local string) *Alias {
	if IsNil(owner) || local == "" {
		return nil
	}
	alias := &Alias{LocalName: local, Owner: owner}
	switch o := owner.(type) {
	case *BusinessObject:
		o.Aliases = append(o.Aliases, alias)
		for _, f := range []*Facet{o.ID, o.Summary, o.Detail} {
			addFacetAlias(f, local)
		}
		for _, list := range [][]*Facet{o.Custom, o.Query, o.Update} {
			for _, f := range list {
				addFacetAlias(f, local)
			}
		}
	case *CoreObject:
		o.Aliases = append(o.Aliases, alias)
		if o.Simple != nil {
			o.Simple.Aliases = append(o.Simple.Aliases, &Alias{LocalName: local + "_" + KindSimple.Identity(), Owner: o.Simple})
		}
		addFacetAlias(o.Summary, local)
		addFacetAlias(o.Detail, local)
		for _, list := range []*ListFacet{o.SimpleList, o.SummaryList, o.DetailList} {
			if list == nil || IsNil(list.Item) {
				continue
			}
			name := local + "_" + list.Item.FacetKind().Identity() + ListSuffix
			list.Aliases = append(list.Aliases, &Alias{LocalName: name, Owner: list})
		}
	case *ChoiceObject:
		o.Aliases = append(o.Aliases, alias)
		addFacetAlias(o.Shared, local)
		for _, f := range o.Choice {
			addFacetAlias(f, local)
		}
	case *Facet:
		o.Aliases = append(o.Aliases, alias)
		for _, f := range o.Contextual {
			addFacetAlias(f, local)
		}
	default:
		return nil
	}
	return alias
}

func addFacetAlias(f *Facet, ownerAlias string) {
	if f == nil {
		return
	}
	name := ownerAlias + "_" + f.Identity()
	if FindAlias(f.Aliases, name) != nil {
		return
	}
	f.Aliases = append(f.Aliases, &Alias{LocalName: name, Owner: f})
	for _, nested := range f.Contextual {
		addFacetAlias(nested, name)
	}
}
