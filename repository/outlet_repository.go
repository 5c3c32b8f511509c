// repository/outlet_repository.go
package repository

import (
	"context"

	"github.com/NemesisID/PreviewOnly-Dash/entity"

	"gorm.io/gorm"
)

type OutletRepository struct {
	DB *gorm.DB
}

func NewOutletRepository(db *gorm.DB) *OutletRepository {
	return &OutletRepository{DB: db}
}

func (r *OutletRepository) FindAll(ctx context.Context) ([]entity.Outlet, error) {
	var outlets []entity.Outlet
	err := r.DB.WithContext(ctx).Order("id DESC").Find(&outlets).Error
	return outlets, err
}

func (r *OutletRepository) FindByID(ctx context.Context, id uint) (*entity.Outlet, error) {
	var o entity.Outlet
	if err := r.DB.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OutletRepository) Create(ctx context.Context, o *entity.Outlet) error {
	return r.DB.WithContext(ctx).Create(o).Error
}

func (r *OutletRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	return r.DB.WithContext(ctx).Model(&entity.Outlet{}).Where("id = ?", id).Updates(fields).Error
}

func (r *OutletRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&entity.Outlet{}, id)
	return res.RowsAffected, res.Error
}

func (r *OutletRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&entity.Outlet{}).Count(&n).Error
	return n, err
}

func (r *OutletRepository) Types(ctx context.Context) ([]string, error) {
	var out []string
	err := r.DB.WithContext(ctx).Model(&entity.Outlet{}).
		Where("type <> ''").
		Distinct().Order("type").
		Pluck("type", &out).Error
	return out, err
}
