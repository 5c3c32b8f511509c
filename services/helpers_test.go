package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/NemesisID/PreviewOnly-Dash/entity"
	"github.com/NemesisID/PreviewOnly-Dash/pkg/maplink"
	"github.com/NemesisID/PreviewOnly-Dash/pkg/testutil"
	"github.com/NemesisID/PreviewOnly-Dash/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memStore keeps uploads in memory so tests can assert what was (not) written.
type memStore struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newMemStore() *memStore { return &memStore{files: map[string][]byte{}} }

func (m *memStore) Save(_ context.Context, data []byte, filename, folder string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := fmt.Sprintf("/%s/%d-%s", folder, len(m.files)+1, filename)
	m.files[p] = data
	return p, nil
}

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.files)
}

type fakeResolver map[string]maplink.Coordinates

func (f fakeResolver) Coordinates(_ context.Context, link string) (maplink.Coordinates, error) {
	if c, ok := f[link]; ok {
		return c, nil
	}
	if c, ok := maplink.Extract(link); ok {
		return c, nil
	}
	return maplink.Coordinates{}, maplink.ErrNoCoordinates
}

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewProductRepository(db)), db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price int64) entity.Product {
	t.Helper()
	p := entity.Product{Name: name, Price: price, IsActive: true}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func validOrderInput() OrderInput {
	return OrderInput{
		Code:            "ORD-1",
		TrackingCode:    "TRK-1",
		ReceiptNumber:   "RCPT-1",
		CustomerName:    "Budi",
		CustomerPhone:   "0812-0000-0001",
		ShippingCourier: "JNE",
		Source:          "shopee",
		TotalPrice:      "50000",
	}
}

func upload(name string) *Upload {
	return &Upload{Filename: name, Data: []byte("img")}
}
