package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/NemesisID/PreviewOnly-Dash/entity"
	"github.com/NemesisID/PreviewOnly-Dash/repository"
	"github.com/NemesisID/PreviewOnly-Dash/viewstate"

	"gorm.io/gorm"
)

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	ProductRepo *repository.ProductRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	productRepo *repository.ProductRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, ProductRepo: productRepo}
}

// ----- DTOs from Controller -----
type OrderInput struct {
	Code               string
	TrackingCode       string
	ReceiptNumber      string
	CustomerName       string
	CustomerPhone      string
	CustomerEmail      string
	CustomerAddress    string
	CustomerCity       string
	CustomerProvince   string
	CustomerPostalCode string
	ShippingCourier    string
	Source             string
	TotalPrice         string
}

type ImportItemIn struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// ImportOrderInput is an order pulled from a sales channel, items included.
// A blank TotalPrice means "sum of the items"; a blank Status means pending.
type ImportOrderInput struct {
	OrderInput
	Status string
	Items  []ImportItemIn
}

func optional(v string) *string {
	if v = strings.TrimSpace(v); v == "" {
		return nil
	}
	return &v
}

// build checks the required fields and returns the row to insert, without status/source/total.
func (in OrderInput) build() (*entity.Order, error) {
	o := &entity.Order{
		Code:               strings.TrimSpace(in.Code),
		TrackingCode:       strings.TrimSpace(in.TrackingCode),
		ReceiptNumber:      strings.TrimSpace(in.ReceiptNumber),
		CustomerName:       strings.TrimSpace(in.CustomerName),
		CustomerPhone:      strings.TrimSpace(in.CustomerPhone),
		CustomerEmail:      optional(in.CustomerEmail),
		CustomerAddress:    optional(in.CustomerAddress),
		CustomerCity:       optional(in.CustomerCity),
		CustomerProvince:   optional(in.CustomerProvince),
		CustomerPostalCode: optional(in.CustomerPostalCode),
		ShippingCourier:    strings.TrimSpace(in.ShippingCourier),
	}

	required := []struct{ field, value string }{
		{"code", o.Code},
		{"tracking_code", o.TrackingCode},
		{"receipt_number", o.ReceiptNumber},
		{"customer_name", o.CustomerName},
		{"customer_phone", o.CustomerPhone},
		{"shipping_courier", o.ShippingCourier},
	}
	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.field)
		}
	}
	if len(missing) > 0 {
		return nil, invalid("please complete the required fields: %s", strings.Join(missing, ", "))
	}
	return o, nil
}

// Manually entered orders only come from the marketplaces; anything else is filed under shopee.
func coerceManualSource(v string) entity.OrderSource {
	if s := entity.OrderSource(strings.TrimSpace(v)); s.Marketplace() {
		return s
	}
	return entity.SourceShopee
}

func (s *OrderService) ensureUniqueCode(ctx context.Context, code string) error {
	exists, err := s.Repo.CodeExists(ctx, code)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: order code %s already exists", ErrConflict, code)
	}
	return nil
}

// ----- Create -----
func (s *OrderService) Create(ctx context.Context, in OrderInput) (*entity.Order, error) {
	o, err := in.build()
	if err != nil {
		return nil, err
	}
	total, err := parseAmount("total_price", in.TotalPrice, false)
	if err != nil {
		return nil, err
	}
	o.TotalPrice = total
	o.Status = entity.StatusPending
	o.Source = coerceManualSource(in.Source)

	if err := s.ensureUniqueCode(ctx, o.Code); err != nil {
		return nil, err
	}
	if err := s.Repo.CreateOrder(s.DB.WithContext(ctx), o); err != nil {
		return nil, err
	}
	return o, nil
}

// ----- Import -----
func (s *OrderService) Import(ctx context.Context, in ImportOrderInput) (*entity.Order, error) {
	o, err := in.build()
	if err != nil {
		return nil, err
	}

	src, ok := entity.ParseOrderSource(in.Source)
	if !ok {
		return nil, invalid("unknown source %q", in.Source)
	}
	o.Source = src

	o.Status = entity.StatusPending
	if strings.TrimSpace(in.Status) != "" {
		st, ok := entity.ParseOrderStatus(in.Status)
		if !ok {
			return nil, invalid("unknown status %q", in.Status)
		}
		o.Status = st
	}

	// price snapshots
	ids := make([]uint, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, invalid("quantity must be greater than 0")
		}
		ids = append(ids, it.ProductID)
	}
	products, err := s.ProductRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	items := make([]entity.OrderItem, 0, len(in.Items))
	var itemsTotal int64
	for _, it := range in.Items {
		p, ok := products[it.ProductID]
		if !ok {
			return nil, invalid("product %d not found", it.ProductID)
		}
		sub, ok := subtotal(p.Price, it.Quantity)
		if !ok || itemsTotal+sub > MaxAmount {
			return nil, invalid("items total is too large")
		}
		itemsTotal += sub
		items = append(items, entity.OrderItem{ProductID: p.ID, Quantity: it.Quantity, Price: p.Price})
	}
	o.Items = items

	if strings.TrimSpace(in.TotalPrice) == "" {
		o.TotalPrice = itemsTotal
	} else if o.TotalPrice, err = parseAmount("total_price", in.TotalPrice, false); err != nil {
		return nil, err
	}

	if err := s.ensureUniqueCode(ctx, o.Code); err != nil {
		return nil, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		o.Items = nil
		if err := s.Repo.CreateOrder(tx, o); err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = o.ID
			if err := s.Repo.CreateOrderItem(tx, &items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

// ----- Read -----
func (s *OrderService) Get(ctx context.Context, id uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderWithItems(ctx, id)
	if err != nil {
		return nil, notFound(err, "order")
	}
	return o, nil
}

func (s *OrderService) List(ctx context.Context, state viewstate.OrderListState) ([]entity.Order, error) {
	all, err := s.Repo.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return viewstate.FilterOrders(all, state), nil
}

// All returns every order newest first, for export.
func (s *OrderService) All(ctx context.Context) ([]entity.Order, error) {
	return s.Repo.ListOrders(ctx)
}
