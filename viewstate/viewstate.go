// Package viewstate holds the list-view search/filter/sort state as plain
// values and the pure functions that apply it. Handlers bind these structs
// from the query string; nothing here depends on HTTP or storage.
package viewstate

import (
	"cmp"
	"slices"
	"strings"

	"github.com/NemesisID/PreviewOnly-Dash/entity"
)

const All = "all"

type ProductListState struct {
	Query    string `form:"q" json:"q"`
	Category string `form:"category" json:"category"`
	Status   string `form:"status" json:"status"` // all | active | inactive
	Sort     string `form:"sort" json:"sort"`     // newest | name | price_asc | price_desc
}

type OutletListState struct {
	Query string `form:"q" json:"q"`
	Type  string `form:"type" json:"type"`
	Sort  string `form:"sort" json:"sort"` // newest | name
}

type OrderListState struct {
	Query  string `form:"q" json:"q"`
	Status string `form:"status" json:"status"`
	Source string `form:"source" json:"source"`
	Sort   string `form:"sort" json:"sort"` // newest | oldest | total_desc | total_asc
}

func unset(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, All)
}

func matches(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(strings.Join(fields, " ")), term)
}

func term(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// FilterProducts returns a new slice; the input is left untouched.
func FilterProducts(products []entity.Product, s ProductListState) []entity.Product {
	t := term(s.Query)
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if !matches(t, p.Name, p.Category, p.Description) {
			continue
		}
		if !unset(s.Category) && p.Category != s.Category {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(s.Status)) {
		case "active":
			if !p.IsActive {
				continue
			}
		case "inactive":
			if p.IsActive {
				continue
			}
		}
		out = append(out, p)
	}

	switch s.Sort {
	case "name":
		slices.SortStableFunc(out, func(a, b entity.Product) int {
			return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	case "price_asc":
		slices.SortStableFunc(out, func(a, b entity.Product) int { return cmp.Compare(a.Price, b.Price) })
	case "price_desc":
		slices.SortStableFunc(out, func(a, b entity.Product) int { return cmp.Compare(b.Price, a.Price) })
	default:
		slices.SortStableFunc(out, func(a, b entity.Product) int { return cmp.Compare(b.ID, a.ID) })
	}
	return out
}

func FilterOutlets(outlets []entity.Outlet, s OutletListState) []entity.Outlet {
	t := term(s.Query)
	out := make([]entity.Outlet, 0, len(outlets))
	for _, o := range outlets {
		if !matches(t, o.Name, o.Type, o.Address) {
			continue
		}
		if !unset(s.Type) && o.Type != s.Type {
			continue
		}
		out = append(out, o)
	}

	if s.Sort == "name" {
		slices.SortStableFunc(out, func(a, b entity.Outlet) int {
			return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	} else {
		slices.SortStableFunc(out, func(a, b entity.Outlet) int { return cmp.Compare(b.ID, a.ID) })
	}
	return out
}

func FilterOrders(orders []entity.Order, s OrderListState) []entity.Order {
	t := term(s.Query)
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if !matches(t, o.Code, o.CustomerName, o.CustomerPhone, o.TrackingCode, o.ReceiptNumber) {
			continue
		}
		if !unset(s.Status) && string(o.Status) != strings.ToLower(strings.TrimSpace(s.Status)) {
			continue
		}
		if !unset(s.Source) && string(o.Source) != strings.ToLower(strings.TrimSpace(s.Source)) {
			continue
		}
		out = append(out, o)
	}

	newest := func(a, b entity.Order) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	}
	switch s.Sort {
	case "oldest":
		slices.SortStableFunc(out, func(a, b entity.Order) int { return -newest(a, b) })
	case "total_desc":
		slices.SortStableFunc(out, func(a, b entity.Order) int { return cmp.Compare(b.TotalPrice, a.TotalPrice) })
	case "total_asc":
		slices.SortStableFunc(out, func(a, b entity.Order) int { return cmp.Compare(a.TotalPrice, b.TotalPrice) })
	default:
		slices.SortStableFunc(out, newest)
	}
	return out
}

// Distinct keeps first-seen order and drops blanks, for category/type pickers.
func Distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
