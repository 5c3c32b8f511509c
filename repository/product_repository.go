// repository/product_repository.go
package repository

import (
	"context"

	"github.com/NemesisID/PreviewOnly-Dash/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// all products, newest first
func (r *ProductRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.WithContext(ctx).Order("id DESC").Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// price lookup for building order item snapshots
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []uint) (map[uint]entity.Product, error) {
	out := make(map[uint]entity.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var products []entity.Product
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	for _, p := range products {
		out[p.ID] = p
	}
	return out, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

// Updates writes zero values too (is_active=false, price=0).
func (r *ProductRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	return r.DB.WithContext(ctx).Model(&entity.Product{}).Where("id = ?", id).Updates(fields).Error
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&entity.Product{}, id)
	return res.RowsAffected, res.Error
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&entity.Product{}).Count(&n).Error
	return n, err
}

// distinct non-empty categories for the filter picker
func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	var out []string
	err := r.DB.WithContext(ctx).Model(&entity.Product{}).
		Where("category <> ''").
		Distinct().Order("category").
		Pluck("category", &out).Error
	return out, err
}
