package catalog

import "github.com/velora/storefront/internal/domain"

// DefaultProducts returns the Velora launch catalog. The same twelve
// products seed the SQLite source's migration.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, SKU: "MUP-GLD-001", Name: "Rouge G Jewel Case · Gold Harmony", Category: "Makeup", Price: 84, Stock: 26,
			Description: "Iconic couture lipstick case with a luminous gold finish for a bold, polished statement."},
		{ID: 2, SKU: "MUP-SLV-002", Name: "Rouge G Jewel Case · Silver Veil", Category: "Makeup", Price: 86, Stock: 22,
			Description: "Elegant silver case paired with a refined nude tone designed for effortless daily luxury."},
		{ID: 3, SKU: "MUP-PTN-003", Name: "Rouge G Jewel Case · Signature Motif", Category: "Makeup", Price: 88, Stock: 20,
			Description: "Exclusive patterned case inspired by Maison Guerlain design codes and collectible artistry."},
		{ID: 4, SKU: "MUP-MSC-004", Name: "Noir G Intense Volume Mascara", Category: "Makeup", Price: 90, Stock: 28,
			Description: "Long-wear mascara with couture volume and clean definition for sophisticated eye looks."},
		{ID: 5, SKU: "MUP-CHR-005", Name: "KissKiss Bee Glow · Cherry Bloom", Category: "Makeup", Price: 85, Stock: 30,
			Description: "Fresh floral tint with a radiant finish, crafted for naturally vibrant lips."},
		{ID: 6, SKU: "MUP-DNM-006", Name: "Rouge G Collector Case · Denim Flora", Category: "Makeup", Price: 89, Stock: 18,
			Description: "Seasonal limited collector case with denim-floral artistry for exclusive beauty wardrobes."},
		{ID: 7, SKU: "MUP-RRS-007", Name: "Rouge G Satin · Red Rose", Category: "Makeup", Price: 92, Stock: 24,
			Description: "Satin lipstick in a deep rose tone delivering elegant color payoff for evening glam."},
		{ID: 8, SKU: "SKN-GLW-008", Name: "Abeille Royale Youth Watery Oil Serum", Category: "Skincare", Price: 82, Stock: 40,
			Description: "Silky daily serum that boosts glow and comfort while leaving skin supple and radiant."},
		{ID: 9, SKU: "SKN-CLN-009", Name: "Orchidée Impériale Gentle Foam Cleanser", Category: "Skincare", Price: 87, Stock: 34,
			Description: "Soft cleansing foam that purifies without stripping, preserving hydration and comfort."},
		{ID: 10, SKU: "SKN-TON-010", Name: "Abeille Royale Fortifying Lotion", Category: "Skincare", Price: 90, Stock: 29,
			Description: "Lightweight pre-serum lotion that refines skin texture and enhances your skincare ritual."},
		{ID: 11, SKU: "SKN-CRM-011", Name: "Orchidée Impériale Rich Cream", Category: "Skincare", Price: 88, Stock: 31,
			Description: "Nourishing face cream with a velvety texture designed to support firmness and resilience."},
		{ID: 12, SKU: "SKN-MST-012", Name: "Parure Gold Skin Mist Essence", Category: "Skincare", Price: 83, Stock: 27,
			Description: "Refreshing essence mist for instant hydration and luminous skin throughout the day."},
	}
}
