package catalog

import (
	"sort"
	"strings"

	"github.com/velora/storefront/internal/domain"
)

const DefaultPerPage = 4

const (
	SortFeatured  = "featured"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNameAsc   = "name-asc"
)

// Filter narrows and orders a product list for browsing. Zero values mean
// "no constraint": empty category matches everything, MaxPrice <= 0 means
// no price cap, an unknown sort falls back to featured (catalog) order.
type Filter struct {
	Category string
	Query    string
	MaxPrice float64
	SortBy   string
	Page     int
	PerPage  int
}

// Page is one page of filtered results.
type Page struct {
	Products   []domain.Product `json:"products"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
	TotalItems int              `json:"totalItems"`
}

// Apply filters, sorts and paginates products. The requested page is
// clamped into [1, TotalPages].
func Apply(products []domain.Product, f Filter) Page {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		filtered = append(filtered, p)
	}

	switch f.SortBy {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case SortNameAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Name < filtered[j].Name })
	}

	perPage := f.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	totalPages := (len(filtered) + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Page{
		Products:   filtered[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalItems: len(filtered),
	}
}
