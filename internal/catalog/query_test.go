package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora/storefront/internal/domain"
)

func queryFixture() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Rouge Lipstick", Category: "Makeup", Price: 84, Stock: 10},
		{ID: 2, Name: "Silver Mascara", Category: "Makeup", Price: 92, Stock: 10},
		{ID: 3, Name: "Bee Serum", Category: "Skincare", Price: 82, Stock: 10},
		{ID: 4, Name: "Foam Cleanser", Category: "Skincare", Price: 87, Stock: 10},
		{ID: 5, Name: "Rich Cream", Category: "Skincare", Price: 88, Stock: 10},
	}
}

func TestApply_FiltersByCategory(t *testing.T) {
	page := Apply(queryFixture(), Filter{Category: "Makeup"})

	require.Len(t, page.Products, 2)
	for _, p := range page.Products {
		assert.Equal(t, "Makeup", p.Category)
	}
}

func TestApply_SearchIsCaseInsensitive(t *testing.T) {
	page := Apply(queryFixture(), Filter{Query: "  rOuGe "})

	require.Len(t, page.Products, 1)
	assert.Equal(t, int64(1), page.Products[0].ID)
}

func TestApply_MaxPriceCap(t *testing.T) {
	page := Apply(queryFixture(), Filter{MaxPrice: 85})

	require.Len(t, page.Products, 2)
	assert.Equal(t, int64(1), page.Products[0].ID)
	assert.Equal(t, int64(3), page.Products[1].ID)
}

func TestApply_SortPriceAsc(t *testing.T) {
	page := Apply(queryFixture(), Filter{SortBy: SortPriceAsc})

	prices := make([]float64, 0, len(page.Products))
	for _, p := range page.Products {
		prices = append(prices, p.Price)
	}
	assert.Equal(t, []float64{82, 84, 87, 88}, prices) // first page of 4
}

func TestApply_SortPriceDesc(t *testing.T) {
	page := Apply(queryFixture(), Filter{SortBy: SortPriceDesc, PerPage: 5})

	assert.Equal(t, 92.0, page.Products[0].Price)
	assert.Equal(t, 82.0, page.Products[4].Price)
}

func TestApply_SortNameAsc(t *testing.T) {
	page := Apply(queryFixture(), Filter{SortBy: SortNameAsc, PerPage: 5})

	assert.Equal(t, "Bee Serum", page.Products[0].Name)
	assert.Equal(t, "Silver Mascara", page.Products[4].Name)
}

func TestApply_UnknownSortKeepsFeaturedOrder(t *testing.T) {
	page := Apply(queryFixture(), Filter{SortBy: "price-banana", PerPage: 5})

	assert.Equal(t, int64(1), page.Products[0].ID)
	assert.Equal(t, int64(5), page.Products[4].ID)
}

func TestApply_Pagination(t *testing.T) {
	page := Apply(queryFixture(), Filter{Page: 2, PerPage: 2})

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 5, page.TotalItems)
	require.Len(t, page.Products, 2)
	assert.Equal(t, int64(3), page.Products[0].ID)
}

func TestApply_PageClampedIntoRange(t *testing.T) {
	page := Apply(queryFixture(), Filter{Page: 99, PerPage: 2})
	assert.Equal(t, 3, page.Page)
	require.Len(t, page.Products, 1)

	page = Apply(queryFixture(), Filter{Page: -3, PerPage: 2})
	assert.Equal(t, 1, page.Page)
}

func TestApply_EmptyResultStillOnePage(t *testing.T) {
	page := Apply(queryFixture(), Filter{Query: "no such product"})

	assert.Empty(t, page.Products)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 0, page.TotalItems)
}
