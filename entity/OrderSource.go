package entity

import "strings"

type OrderSource string

const (
	SourceWeb    OrderSource = "web"
	SourceShopee OrderSource = "shopee"
	SourceTikTok OrderSource = "tiktok"
)

var OrderSources = []OrderSource{SourceWeb, SourceShopee, SourceTikTok}

var sourceLabels = map[OrderSource]string{
	SourceWeb:    "Website",
	SourceShopee: "Shopee",
	SourceTikTok: "TikTok",
}

func (s OrderSource) Valid() bool {
	_, ok := sourceLabels[s]
	return ok
}

// Marketplace reports whether the source is one of the two third-party channels.
func (s OrderSource) Marketplace() bool {
	return s == SourceShopee || s == SourceTikTok
}

func (s OrderSource) Label() string {
	if l, ok := sourceLabels[s]; ok {
		return l
	}
	return string(s)
}

func ParseOrderSource(v string) (OrderSource, bool) {
	s := OrderSource(strings.ToLower(strings.TrimSpace(v)))
	return s, s.Valid()
}
