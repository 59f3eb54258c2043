package loader

import (
	"strings"

	otmerrors "github.com/jacoelho/otm/errors"
	"github.com/jacoelho/otm/internal/facets"
	"github.com/jacoelho/otm/internal/inherit"
	"github.com/jacoelho/otm/internal/model"
)

func (b *builder) resource(s *scope, d *ResourceDoc) {
	r := &model.Resource{
		Named:      model.Named{LocalName: d.Name},
		BasePath:   d.BasePath,
		Abstract:   d.Abstract,
		FirstClass: d.FirstClass,
	}
	if !b.addMember(s, r, d.Name) {
		return
	}
	b.optional(s, d.BusinessObject, d.Name, "business_object", is[*model.BusinessObject], func(e model.NamedEntity, q model.QName) {
		r.BusinessObject, _ = e.(*model.BusinessObject)
		r.BusinessObjectName = q
	})
	b.extends(s, r, d.Extends, d.Name, is[*model.Resource], &r.Extension)

	for _, pd := range d.ParentRefs {
		ref := &model.ResourceParentRef{
			Owner:          r,
			ParamGroupName: pd.ParamGroup,
			PathTemplate:   pd.PathTemplate,
			Documentation:  toDocumentation(pd.Documentation),
		}
		b.require(s, pd.Parent, d.Name, "parent", is[*model.Resource], func(e model.NamedEntity, q model.QName) {
			ref.Parent, _ = e.(*model.Resource)
			ref.ParentName = q
		})
		r.ParentRefs = append(r.ParentRefs, ref)
	}

	for _, gd := range d.ParamGroups {
		group := &model.ParamGroup{
			Owner:         r,
			LocalName:     gd.Name,
			IDGroup:       gd.IDGroup,
			FacetName:     gd.Facet,
			Documentation: toDocumentation(gd.Documentation),
		}
		for _, pd := range gd.Parameters {
			loc, ok := parseLocation(pd.Location)
			if !ok {
				b.errorf(otmerrors.ErrInvalidDocument, Pos{File: s.doc.File}, d.Name+"/"+gd.Name, "unknown parameter location %q", pd.Location)
			}
			group.Parameters = append(group.Parameters, &model.Parameter{
				Owner:         group,
				FieldName:     pd.Field,
				Location:      loc,
				Documentation: toDocumentation(pd.Documentation),
				Equivalents:   toEquivalents(pd.Equivalents),
				Examples:      toExamples(pd.Examples),
			})
		}
		r.ParamGroups = append(r.ParamGroups, group)
		b.late = append(b.late, func() { b.bindParamGroupFacet(s, r, group) })
	}

	for _, fd := range d.ActionFacets {
		refType, ok := parseReferenceType(fd.ReferenceType)
		if !ok {
			b.errorf(otmerrors.ErrInvalidDocument, Pos{File: s.doc.File}, d.Name+"_"+fd.Name, "unknown reference type %q", fd.ReferenceType)
		}
		af := &model.ActionFacet{
			Owner:              r,
			LocalName:          fd.Name,
			ReferenceType:      refType,
			ReferenceFacetName: fd.ReferenceFacet,
			ReferenceRepeat:    fd.ReferenceRepeat,
			Documentation:      toDocumentation(fd.Documentation),
		}
		b.optional(s, fd.BasePayload, af.Name().Local, "base_payload", acceptBasePayload, func(e model.NamedEntity, q model.QName) {
			af.BasePayload, af.BasePayloadName = e, q
		})
		r.ActionFacets = append(r.ActionFacets, af)
	}

	for _, ad := range d.Actions {
		action := &model.Action{
			Owner:         r,
			ActionID:      ad.ID,
			Common:        ad.Common,
			Documentation: toDocumentation(ad.Documentation),
		}
		if rd := ad.Request; rd != nil {
			req := &model.ActionRequest{
				Owner:          action,
				HTTPMethod:     strings.ToUpper(rd.Method),
				PathTemplate:   rd.PathTemplate,
				ParamGroupName: rd.ParamGroup,
				PayloadName:    rd.Payload,
				MIMETypes:      rd.MIMETypes,
				Documentation:  toDocumentation(rd.Documentation),
			}
			action.Request = req
			b.late = append(b.late, func() { b.bindRequest(s, r, req) })
		}
		for _, rd := range ad.Responses {
			resp := &model.ActionResponse{
				Owner:         action,
				StatusCodes:   rd.StatusCodes,
				PayloadName:   rd.Payload,
				MIMETypes:     rd.MIMETypes,
				Documentation: toDocumentation(rd.Documentation),
			}
			action.Responses = append(action.Responses, resp)
			if rd.Payload != "" {
				b.late = append(b.late, func() {
					resp.Payload = b.actionFacet(s, r, rd.Payload, action.ActionID)
				})
			}
		}
		r.Actions = append(r.Actions, action)
	}
}

// bindParamGroupFacet finds the facet named by a parameter group on the
// resource's business object or any object it extends.
func (b *builder) bindParamGroupFacet(s *scope, r *model.Resource, group *model.ParamGroup) {
	bo := resourceBusinessObject(r)
	if bo == nil || group.FacetName == "" {
		return
	}
	for _, owner := range inherit.ExtensionChain(bo) {
		if f := facets.FacetByIdentity(owner, group.FacetName); f != nil {
			group.Facet = f
			return
		}
	}
	b.unresolved(Pos{File: s.doc.File}, r.Name().Local+"/"+group.LocalName, "facet %s not found on %s", group.FacetName, bo.Name().Local)
}

func (b *builder) bindRequest(s *scope, r *model.Resource, req *model.ActionRequest) {
	id := req.Owner.ActionID
	if req.ParamGroupName != "" {
		for _, res := range inherit.ResourceChain(r) {
			if group := res.ParamGroup(req.ParamGroupName); group != nil {
				req.ParamGroup = group
				break
			}
		}
		if req.ParamGroup == nil {
			b.unresolved(Pos{File: s.doc.File}, r.Name().Local+"/"+id, "parameter group %s not found", req.ParamGroupName)
		}
	}
	if req.PayloadName != "" {
		req.Payload = b.actionFacet(s, r, req.PayloadName, id)
	}
}

// actionFacet finds an action facet declared on r or inherited from the
// resources it extends.
func (b *builder) actionFacet(s *scope, r *model.Resource, name, actionID string) *model.ActionFacet {
	for _, res := range inherit.ResourceChain(r) {
		if af := res.ActionFacet(name); af != nil {
			return af
		}
	}
	b.unresolved(Pos{File: s.doc.File}, r.Name().Local+"/"+actionID, "action facet %s not found", name)
	return nil
}

// resourceBusinessObject returns the business object of r or of the nearest
// resource it extends that names one.
func resourceBusinessObject(r *model.Resource) *model.BusinessObject {
	for _, res := range inherit.ResourceChain(r) {
		if res.BusinessObject != nil {
			return res.BusinessObject
		}
	}
	return nil
}

func parseLocation(s string) (model.ParamLocation, bool) {
	switch strings.ToLower(s) {
	case "", "path":
		return model.ParamPath, true
	case "query":
		return model.ParamQuery, true
	case "header":
		return model.ParamHeader, true
	}
	return model.ParamPath, false
}

func parseReferenceType(s string) (model.ReferenceType, bool) {
	switch strings.ToLower(s) {
	case "", "none":
		return model.ReferenceNone, true
	case "required":
		return model.ReferenceRequired, true
	case "optional":
		return model.ReferenceOptional, true
	}
	return model.ReferenceNone, false
}
