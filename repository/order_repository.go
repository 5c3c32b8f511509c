package repository

import (
	"context"
	"time"

	"github.com/NemesisID/PreviewOnly-Dash/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(ctx context.Context, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.WithContext(ctx).First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// detail view: items plus the product behind each snapshot, soft-deleted products included
func (r *OrderRepository) GetOrderWithItems(ctx context.Context, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Items.Product", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// newest first, items included for the list/export views
func (r *OrderRepository) ListOrders(ctx context.Context) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Items.Product", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Order("created_at DESC").Order("id DESC").
		Find(&out).Error
	return out, err
}

// sqlite compares timestamps as text, so the bound is passed in the same zone gorm writes created_at in
func (r *OrderRepository) ListOrdersSince(ctx context.Context, since time.Time) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.WithContext(ctx).
		Where("created_at >= ?", since.Local()).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListByStatus(ctx context.Context, status entity.OrderStatus, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 5
	}
	var out []entity.Order
	err := r.DB.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&entity.Order{}).Count(&n).Error
	return n, err
}

func (r *OrderRepository) CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error) {
	var rows []struct {
		Status entity.OrderStatus
		N      int64
	}
	if err := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[entity.OrderStatus]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.N
	}
	return out, nil
}

func (r *OrderRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var cnt int64
	if err := r.DB.WithContext(ctx).Model(&entity.Order{}).Where("code = ?", code).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// guarded status write: only applies while the row still holds fromStatus
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// hard delete; items must be gone first
func (r *OrderRepository) DeleteOrder(tx *gorm.DB, orderID uint) (int64, error) {
	res := tx.Unscoped().Delete(&entity.Order{}, orderID)
	return res.RowsAffected, res.Error
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(ctx context.Context, orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.WithContext(ctx).Model(&entity.OrderItem{}).
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *OrderRepository) DeleteOrderItems(tx *gorm.DB, orderID uint) error {
	return tx.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error
}
