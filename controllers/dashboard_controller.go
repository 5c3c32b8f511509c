package controllers

import (
	"github.com/NemesisID/PreviewOnly-Dash/pkg/resp"
	"github.com/NemesisID/PreviewOnly-Dash/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct{ Svc *services.DashboardService }

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{Svc: svc}
}

// GET /dashboard
func (dc *DashboardController) Summary(c *gin.Context) {
	snap, err := dc.Svc.Snapshot(c.Request.Context())
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, snap)
}
