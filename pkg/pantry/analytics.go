package pantry

import (
	"Smart-Grocery-Agent/domain"
	"Smart-Grocery-Agent/entities"
)

// Summarize aggregates the pantry for the dashboard. Entries whose product
// is gone count as category Unknown, price 0 and not healthy.
func Summarize(entries []entities.PantryEntry, catalog ProductLookup) domain.DashboardStatsResponse {
	stats := domain.DashboardStatsResponse{
		ItemCount:       len(entries),
		SpendByCategory: make(map[string]float64),
	}

	healthy := 0
	for _, entry := range entries {
		category := domain.CategoryUnknown
		price := 0.0
		if product, ok := catalog.Lookup(entry.Item); ok {
			category = product.Category
			price = product.Price
			if product.Healthy {
				healthy++
			}
		}
		stats.TotalValue += price
		stats.SpendByCategory[category] += price

		switch entry.Status {
		case domain.StatusGood:
			stats.GoodItems++
		case domain.StatusExpiringSoon:
			stats.ExpiringItems++
		case domain.StatusCritical:
			stats.CriticalItems++
		case domain.StatusExpired:
			stats.ExpiredItems++
		}
	}

	if stats.ItemCount > 0 {
		stats.HealthScore = float64(healthy) / float64(stats.ItemCount) * 100
	}

	return stats
}
