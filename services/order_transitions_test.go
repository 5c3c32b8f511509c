package services

import (
	"context"
	"errors"
	"testing"

	"github.com/NemesisID/PreviewOnly-Dash/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCanTransition(t *testing.T) {
	for _, from := range entity.OrderStatuses {
		for _, to := range entity.OrderStatuses {
			want := !from.Terminal()
			assert.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
		assert.False(t, CanTransition(from, entity.OrderStatus("lost")), "%s -> lost", from)
	}
}

func createPending(t *testing.T, svc *OrderService, code string) *entity.Order {
	t.Helper()
	in := validOrderInput()
	in.Code = code
	o, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	return o
}

func TestTransitionPermissive(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()
	o := createPending(t, svc, "ORD-1")

	// forward, skip, backward and same-status moves are all allowed before a final state
	steps := []string{"shipped", "processing", "processing", "pending", "completed"}
	for _, st := range steps {
		got, err := svc.Transition(ctx, o.ID, st)
		require.NoError(t, err, "to %s", st)
		assert.Equal(t, entity.OrderStatus(st), got.Status)
	}

	stored, err := svc.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, stored.Status)
}

func TestTransitionFromFinalStatus(t *testing.T) {
	for _, final := range []string{"completed", "cancelled"} {
		t.Run(final, func(t *testing.T) {
			svc, _ := newOrderService(t)
			ctx := context.Background()
			o := createPending(t, svc, "ORD-1")

			_, err := svc.Transition(ctx, o.ID, final)
			require.NoError(t, err)

			_, err = svc.Transition(ctx, o.ID, "pending")
			assert.True(t, errors.Is(err, ErrIllegalTransition), "err = %v", err)

			stored, err := svc.Get(ctx, o.ID)
			require.NoError(t, err)
			assert.Equal(t, entity.OrderStatus(final), stored.Status)
		})
	}
}

func TestTransitionErrors(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()
	o := createPending(t, svc, "ORD-1")

	_, err := svc.Transition(ctx, o.ID, "refunded")
	assert.True(t, errors.Is(err, ErrValidation), "err = %v", err)

	_, err = svc.Transition(ctx, o.ID+99, "shipped")
	assert.True(t, errors.Is(err, ErrNotFound), "err = %v", err)
}

func TestStatusGuardRejectsStaleWrite(t *testing.T) {
	svc, db := newOrderService(t)
	o := createPending(t, svc, "ORD-1")

	n, err := svc.Repo.UpdateStatusGuard(db, o.ID, entity.StatusPending, entity.StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// a second writer still believing the order is pending loses
	n, err = svc.Repo.UpdateStatusGuard(db, o.ID, entity.StatusPending, entity.StatusCancelled)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTransitionConflict(t *testing.T) {
	svc, db := newOrderService(t)
	o := createPending(t, svc, "ORD-1")

	// another writer completes the order between our read and our guarded write
	require.NoError(t, db.Callback().Update().Before("gorm:update").Register("test:race", func(tx *gorm.DB) {
		if tx.Statement.Table == "orders" && tx.Statement.Context.Value(raceKey{}) != nil {
			tx.Statement.Context = context.Background()
			require.NoError(t, tx.Session(&gorm.Session{NewDB: true, SkipHooks: true}).
				Exec("UPDATE orders SET status = ? WHERE id = ?", entity.StatusCompleted, o.ID).Error)
		}
	}))

	ctx := context.WithValue(context.Background(), raceKey{}, true)
	_, err := svc.Transition(ctx, o.ID, "shipped")
	assert.True(t, errors.Is(err, ErrConflict), "err = %v", err)

	stored, err := svc.Get(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, stored.Status)
}

type raceKey struct{}

func seedOrderWithItems(t *testing.T, svc *OrderService, db *gorm.DB) *entity.Order {
	t.Helper()
	p := seedProduct(t, db, "Kopi", 18000)
	in := ImportOrderInput{OrderInput: validOrderInput(), Items: []ImportItemIn{
		{ProductID: p.ID, Quantity: 1},
		{ProductID: p.ID, Quantity: 3},
	}}
	o, err := svc.Import(context.Background(), in)
	require.NoError(t, err)
	return o
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Unscoped().Model(model).Count(&n).Error)
	return n
}

func TestDeleteOrderRemovesItemsThenOrder(t *testing.T) {
	svc, db := newOrderService(t)
	o := seedOrderWithItems(t, svc, db)

	items, err := svc.Repo.GetOrderItems(context.Background(), o.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NoError(t, svc.Delete(context.Background(), o.ID))
	items, err = svc.Repo.GetOrderItems(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, countRows(t, db, &entity.OrderItem{}))
	assert.Zero(t, countRows(t, db, &entity.Order{}))

	err = svc.Delete(context.Background(), o.ID)
	assert.True(t, errors.Is(err, ErrNotFound), "err = %v", err)
}

func TestDeleteOrderPartialFailureRollsBackItems(t *testing.T) {
	svc, db := newOrderService(t)
	o := seedOrderWithItems(t, svc, db)

	require.NoError(t, db.Callback().Delete().Before("gorm:delete").Register("test:fail_orders", func(tx *gorm.DB) {
		if tx.Statement.Table == "orders" {
			_ = tx.AddError(errors.New("disk full"))
		}
	}))

	err := svc.Delete(context.Background(), o.ID)
	assert.True(t, errors.Is(err, ErrPartialDelete), "err = %v", err)
	assert.False(t, errors.Is(err, ErrDeleteItems))

	assert.Equal(t, int64(2), countRows(t, db, &entity.OrderItem{}))
	assert.Equal(t, int64(1), countRows(t, db, &entity.Order{}))
}

func TestDeleteOrderItemsFailure(t *testing.T) {
	svc, db := newOrderService(t)
	o := seedOrderWithItems(t, svc, db)

	require.NoError(t, db.Callback().Delete().Before("gorm:delete").Register("test:fail_items", func(tx *gorm.DB) {
		if tx.Statement.Table == "order_items" {
			_ = tx.AddError(errors.New("locked"))
		}
	}))

	err := svc.Delete(context.Background(), o.ID)
	assert.True(t, errors.Is(err, ErrDeleteItems), "err = %v", err)
	assert.Equal(t, int64(2), countRows(t, db, &entity.OrderItem{}))
	assert.Equal(t, int64(1), countRows(t, db, &entity.Order{}))
}
