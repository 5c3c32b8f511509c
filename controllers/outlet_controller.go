package controllers

import (
	"github.com/NemesisID/PreviewOnly-Dash/pkg/resp"
	"github.com/NemesisID/PreviewOnly-Dash/services"
	"github.com/NemesisID/PreviewOnly-Dash/utils"
	"github.com/NemesisID/PreviewOnly-Dash/viewstate"

	"github.com/gin-gonic/gin"
)

type OutletController struct{ Svc *services.OutletService }

func NewOutletController(svc *services.OutletService) *OutletController {
	return &OutletController{Svc: svc}
}

type outletForm struct {
	Name           string `form:"name"`
	Type           string `form:"type"`
	Address        string `form:"address"`
	GoogleMapsLink string `form:"google_maps_link"`
}

func (f outletForm) input() services.OutletInput {
	return services.OutletInput{Name: f.Name, Type: f.Type, Address: f.Address, GoogleMapsLink: f.GoogleMapsLink}
}

// GET /outlets?q=&type=&sort=
func (oc *OutletController) List(c *gin.Context) {
	var state viewstate.OutletListState
	if err := c.ShouldBindQuery(&state); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	items, err := oc.Svc.List(c.Request.Context(), state)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": len(items), "state": state})
}

// GET /outlets/types
func (oc *OutletController) Types(c *gin.Context) {
	types, err := oc.Svc.Types(c.Request.Context())
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, types)
}

// GET /outlets/:id
func (oc *OutletController) Detail(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	o, err := oc.Svc.Get(c.Request.Context(), id)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, o)
}

// POST /outlets (multipart, image required)
func (oc *OutletController) Create(c *gin.Context) {
	var f outletForm
	if err := c.ShouldBind(&f); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	img, err := readUpload(c, "image")
	if err != nil {
		resp.FromError(c, err)
		return
	}

	o, err := oc.Svc.Create(c.Request.Context(), f.input(), img)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.Created(c, o)
}

// PUT /outlets/:id
func (oc *OutletController) Update(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var f outletForm
	if err := c.ShouldBind(&f); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	img, err := readUpload(c, "image")
	if err != nil {
		resp.FromError(c, err)
		return
	}

	o, err := oc.Svc.Update(c.Request.Context(), id, f.input(), img)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, o)
}

// DELETE /outlets/:id
func (oc *OutletController) Delete(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := oc.Svc.Delete(c.Request.Context(), id); err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}
