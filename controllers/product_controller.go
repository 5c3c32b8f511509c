package controllers

import (
	"github.com/NemesisID/PreviewOnly-Dash/pkg/resp"
	"github.com/NemesisID/PreviewOnly-Dash/services"
	"github.com/NemesisID/PreviewOnly-Dash/utils"
	"github.com/NemesisID/PreviewOnly-Dash/viewstate"

	"github.com/gin-gonic/gin"
)

type ProductController struct{ Svc *services.ProductService }

func NewProductController(svc *services.ProductService) *ProductController {
	return &ProductController{Svc: svc}
}

type productForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Price       string `form:"price"`
	Category    string `form:"category"`
	IsActive    string `form:"is_active"`
}

func (f productForm) input() services.ProductInput {
	return services.ProductInput{
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		Category:    f.Category,
		IsActive:    checkbox(f.IsActive),
	}
}

// GET /products?q=&category=&status=&sort=
func (pc *ProductController) List(c *gin.Context) {
	var state viewstate.ProductListState
	if err := c.ShouldBindQuery(&state); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	items, err := pc.Svc.List(c.Request.Context(), state)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": len(items), "state": state})
}

// GET /products/categories
func (pc *ProductController) Categories(c *gin.Context) {
	cats, err := pc.Svc.Categories(c.Request.Context())
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, cats)
}

// GET /products/:id
func (pc *ProductController) Detail(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	p, err := pc.Svc.Get(c.Request.Context(), id)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, p)
}

// POST /products (multipart, image required)
func (pc *ProductController) Create(c *gin.Context) {
	var f productForm
	if err := c.ShouldBind(&f); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	img, err := readUpload(c, "image")
	if err != nil {
		resp.FromError(c, err)
		return
	}

	p, err := pc.Svc.Create(c.Request.Context(), f.input(), img)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.Created(c, p)
}

// PUT /products/:id
func (pc *ProductController) Update(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	var f productForm
	if err := c.ShouldBind(&f); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	img, err := readUpload(c, "image")
	if err != nil {
		resp.FromError(c, err)
		return
	}

	p, err := pc.Svc.Update(c.Request.Context(), id, f.input(), img)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, p)
}

// DELETE /products/:id
func (pc *ProductController) Delete(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := pc.Svc.Delete(c.Request.Context(), id); err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}
