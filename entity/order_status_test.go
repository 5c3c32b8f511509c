package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus(t *testing.T) {
	tests := []struct {
		status   OrderStatus
		valid    bool
		terminal bool
		label    string
	}{
		{StatusPending, true, false, "Pending"},
		{StatusProcessing, true, false, "Di Proses"},
		{StatusShipped, true, false, "Dikirim"},
		{StatusCompleted, true, true, "Selesai"},
		{StatusCancelled, true, true, "Dibatalkan"},
		{OrderStatus("refunded"), false, false, "refunded"},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.Valid())
			assert.Equal(t, tt.terminal, tt.status.Terminal())
			assert.Equal(t, tt.label, tt.status.Label())
		})
	}
}

func TestParseOrderStatus(t *testing.T) {
	s, ok := ParseOrderStatus("  Shipped ")
	assert.True(t, ok)
	assert.Equal(t, StatusShipped, s)

	_, ok = ParseOrderStatus("lost")
	assert.False(t, ok)
}

func TestOrderSource(t *testing.T) {
	assert.Equal(t, "Website", SourceWeb.Label())
	assert.Equal(t, "Shopee", SourceShopee.Label())
	assert.Equal(t, "TikTok", SourceTikTok.Label())

	assert.False(t, SourceWeb.Marketplace())
	assert.True(t, SourceShopee.Marketplace())
	assert.True(t, SourceTikTok.Marketplace())

	src, ok := ParseOrderSource("TIKTOK")
	assert.True(t, ok)
	assert.Equal(t, SourceTikTok, src)
	_, ok = ParseOrderSource("lazada")
	assert.False(t, ok)
}

func TestOrderItemsTotal(t *testing.T) {
	o := Order{Items: []OrderItem{
		{Quantity: 2, Price: 10000},
		{Quantity: 1, Price: 11500},
	}}
	assert.Equal(t, int64(31500), o.ItemsTotal())
	assert.Equal(t, int64(0), (&Order{}).ItemsTotal())
}
