package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/NemesisID/PreviewOnly-Dash/entity"
	"github.com/NemesisID/PreviewOnly-Dash/export"
	"github.com/NemesisID/PreviewOnly-Dash/pkg/resp"
	"github.com/NemesisID/PreviewOnly-Dash/services"
	"github.com/NemesisID/PreviewOnly-Dash/utils"
	"github.com/NemesisID/PreviewOnly-Dash/viewstate"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc             *services.OrderService
	Location        *time.Location
	TrackingBaseURL string
	Now             func() time.Time
}

func NewOrderController(svc *services.OrderService, loc *time.Location, trackingBaseURL string) *OrderController {
	return &OrderController{Svc: svc, Location: loc, TrackingBaseURL: trackingBaseURL, Now: time.Now}
}

// ===== Requests =====

type CreateOrderReq struct {
	Code               string      `form:"code" json:"code"`
	TrackingCode       string      `form:"tracking_code" json:"tracking_code"`
	ReceiptNumber      string      `form:"receipt_number" json:"receipt_number"`
	CustomerName       string      `form:"customer_name" json:"customer_name"`
	CustomerPhone      string      `form:"customer_phone" json:"customer_phone"`
	CustomerEmail      string      `form:"customer_email" json:"customer_email"`
	CustomerAddress    string      `form:"customer_address" json:"customer_address"`
	CustomerCity       string      `form:"customer_city" json:"customer_city"`
	CustomerProvince   string      `form:"customer_province" json:"customer_province"`
	CustomerPostalCode string      `form:"customer_postal_code" json:"customer_postal_code"`
	ShippingCourier    string      `form:"shipping_courier" json:"shipping_courier"`
	Source             string      `form:"source" json:"source"`
	TotalPrice         json.Number `form:"total_price" json:"total_price"`
}

func (r CreateOrderReq) input() services.OrderInput {
	return services.OrderInput{
		Code:               r.Code,
		TrackingCode:       r.TrackingCode,
		ReceiptNumber:      r.ReceiptNumber,
		CustomerName:       r.CustomerName,
		CustomerPhone:      r.CustomerPhone,
		CustomerEmail:      r.CustomerEmail,
		CustomerAddress:    r.CustomerAddress,
		CustomerCity:       r.CustomerCity,
		CustomerProvince:   r.CustomerProvince,
		CustomerPostalCode: r.CustomerPostalCode,
		ShippingCourier:    r.ShippingCourier,
		Source:             r.Source,
		TotalPrice:         r.TotalPrice.String(),
	}
}

type ImportOrderReq struct {
	CreateOrderReq
	Status string                  `json:"status"`
	Items  []services.ImportItemIn `json:"items"`
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// ===== Responses =====

type orderItemRes struct {
	ID          uint   `json:"id"`
	ProductID   uint   `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
	Subtotal    int64  `json:"subtotal"`
}

type orderRes struct {
	entity.Order
	StatusLabel string         `json:"statusLabel"`
	SourceLabel string         `json:"sourceLabel"`
	Final       bool           `json:"final"`
	TrackingURL string         `json:"trackingUrl"`
	ItemsTotal  int64          `json:"itemsTotal"`
	Items       []orderItemRes `json:"items,omitempty"`
}

func (oc *OrderController) toRes(o *entity.Order, withItems bool) orderRes {
	r := orderRes{
		Order:       *o,
		StatusLabel: o.Status.Label(),
		SourceLabel: o.Source.Label(),
		Final:       o.Status.Terminal(),
		TrackingURL: oc.TrackingBaseURL + o.TrackingCode,
		ItemsTotal:  o.ItemsTotal(),
	}
	if withItems {
		r.Items = make([]orderItemRes, 0, len(o.Items))
		for _, it := range o.Items {
			r.Items = append(r.Items, orderItemRes{
				ID:          it.ID,
				ProductID:   it.ProductID,
				ProductName: it.Product.Name,
				Quantity:    it.Quantity,
				Price:       it.Price,
				Subtotal:    it.Subtotal(),
			})
		}
	}
	return r
}

// ===== Handlers =====

// GET /orders?q=&status=&source=&sort=
func (oc *OrderController) List(c *gin.Context) {
	var state viewstate.OrderListState
	if err := c.ShouldBindQuery(&state); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	orders, err := oc.Svc.List(c.Request.Context(), state)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	out := make([]orderRes, 0, len(orders))
	for i := range orders {
		out = append(out, oc.toRes(&orders[i], false))
	}
	resp.OK(c, gin.H{"items": out, "total": len(out), "state": state})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
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
	resp.OK(c, oc.toRes(o, true))
}

// POST /orders (manual marketplace entry)
func (oc *OrderController) Create(c *gin.Context) {
	var req CreateOrderReq
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o, err := oc.Svc.Create(c.Request.Context(), req.input())
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.Created(c, oc.toRes(o, false))
}

// POST /orders/import
func (oc *OrderController) Import(c *gin.Context) {
	var req ImportOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o, err := oc.Svc.Import(c.Request.Context(), services.ImportOrderInput{
		OrderInput: req.input(),
		Status:     req.Status,
		Items:      req.Items,
	})
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.Created(c, oc.toRes(o, false))
}

// PATCH /orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o, err := oc.Svc.Transition(c.Request.Context(), id, req.Status)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, oc.toRes(o, false))
}

// DELETE /orders/:id
func (oc *OrderController) Delete(c *gin.Context) {
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

// GET /orders/export?format=xlsx|pdf&start=&end=&status=&source=
func (oc *OrderController) Export(c *gin.Context) {
	kind := c.DefaultQuery("format", export.KindXLSX)
	f, err := export.ParseFilter(c.Query("start"), c.Query("end"), c.Query("status"), c.Query("source"), oc.Location)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	orders, err := oc.Svc.All(c.Request.Context())
	if err != nil {
		resp.FromError(c, err)
		return
	}
	data, err := export.Render(kind, export.Apply(orders, f), oc.Location)
	if errors.Is(err, export.ErrInvalidFilter) {
		resp.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	name := export.FileName(kind, oc.Now(), oc.Location)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, export.ContentType(kind), data)
}
