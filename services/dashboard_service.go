// services/dashboard_service.go
package services

import (
	"context"
	"time"

	"github.com/NemesisID/PreviewOnly-Dash/entity"
	"github.com/NemesisID/PreviewOnly-Dash/reporting"
	"github.com/NemesisID/PreviewOnly-Dash/repository"
)

type DashboardService struct {
	Products *repository.ProductRepository
	Outlets  *repository.OutletRepository
	Orders   *repository.OrderRepository
	Location *time.Location
	Now      func() time.Time
}

func NewDashboardService(
	products *repository.ProductRepository,
	outlets *repository.OutletRepository,
	orders *repository.OrderRepository,
	loc *time.Location,
) *DashboardService {
	return &DashboardService{Products: products, Outlets: outlets, Orders: orders, Location: loc, Now: time.Now}
}

// Snapshot reads everything fresh on each call; nothing is cached between requests.
func (s *DashboardService) Snapshot(ctx context.Context) (reporting.Snapshot, error) {
	now := s.Now()
	var in reporting.Input
	var err error

	if in.Products, err = s.Products.Count(ctx); err != nil {
		return reporting.Snapshot{}, err
	}
	if in.Outlets, err = s.Outlets.Count(ctx); err != nil {
		return reporting.Snapshot{}, err
	}
	if in.Orders, err = s.Orders.Count(ctx); err != nil {
		return reporting.Snapshot{}, err
	}
	if in.WindowOrders, err = s.Orders.ListOrdersSince(ctx, reporting.WindowStart(now, s.Location)); err != nil {
		return reporting.Snapshot{}, err
	}
	if in.StatusCounts, err = s.Orders.CountByStatus(ctx); err != nil {
		return reporting.Snapshot{}, err
	}
	if in.Pending, err = s.Orders.ListByStatus(ctx, entity.StatusPending, reporting.PendingLimit); err != nil {
		return reporting.Snapshot{}, err
	}

	return reporting.Build(now, s.Location, in), nil
}
