// services/product_service.go
package services

import (
	"context"
	"strings"

	"github.com/NemesisID/PreviewOnly-Dash/entity"
	"github.com/NemesisID/PreviewOnly-Dash/pkg/storage"
	"github.com/NemesisID/PreviewOnly-Dash/repository"
	"github.com/NemesisID/PreviewOnly-Dash/viewstate"
)

const productImageFolder = "uploads/products"

type ProductService struct {
	Repo  *repository.ProductRepository
	Store storage.Store
}

func NewProductService(repo *repository.ProductRepository, store storage.Store) *ProductService {
	return &ProductService{Repo: repo, Store: store}
}

// ----- DTO from Controller -----
type ProductInput struct {
	Name        string
	Description string
	Price       string
	Category    string
	IsActive    bool
}

type productFields struct {
	name, description, category string
	price                       int64
	isActive                    bool
}

func (in ProductInput) validate() (productFields, error) {
	f := productFields{
		name:        strings.TrimSpace(in.Name),
		description: strings.TrimSpace(in.Description),
		category:    strings.TrimSpace(in.Category),
		isActive:    in.IsActive,
	}
	if f.name == "" {
		return f, invalid("name is required")
	}
	price, err := parseAmount("price", in.Price, true)
	if err != nil {
		return f, err
	}
	f.price = price
	return f, nil
}

func (s *ProductService) List(ctx context.Context, state viewstate.ProductListState) ([]entity.Product, error) {
	all, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return viewstate.FilterProducts(all, state), nil
}

func (s *ProductService) Get(ctx context.Context, id uint) (*entity.Product, error) {
	p, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "product")
	}
	return p, nil
}

func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	cats, err := s.Repo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return viewstate.Distinct(cats), nil
}

// ----- Create -----
func (s *ProductService) Create(ctx context.Context, in ProductInput, img *Upload) (*entity.Product, error) {
	if !img.Present() {
		return nil, invalid("image is required")
	}
	f, err := in.validate()
	if err != nil {
		return nil, err
	}

	path, err := saveUpload(ctx, s.Store, img, productImageFolder)
	if err != nil {
		return nil, err
	}

	p := &entity.Product{
		Name:        f.name,
		Description: f.description,
		Price:       f.price,
		Category:    f.category,
		IsActive:    f.isActive,
		ImagePath:   path,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ----- Update -----
// The image is replaced only when a new file is uploaded.
func (s *ProductService) Update(ctx context.Context, id uint, in ProductInput, img *Upload) (*entity.Product, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	f, err := in.validate()
	if err != nil {
		return nil, err
	}

	fields := map[string]any{
		"name":        f.name,
		"description": f.description,
		"price":       f.price,
		"category":    f.category,
		"is_active":   f.isActive,
	}
	if img.Present() {
		path, err := saveUpload(ctx, s.Store, img, productImageFolder)
		if err != nil {
			return nil, err
		}
		fields["image_path"] = path
	}

	if err := s.Repo.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// ----- Delete -----
// Soft delete: order items keep pointing at the row for their snapshots.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	n, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound(gormNotFound, "product")
	}
	return nil
}
