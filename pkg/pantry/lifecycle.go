package pantry

import (
	"fmt"
	"time"

	"Smart-Grocery-Agent/domain"
	"Smart-Grocery-Agent/entities"
)

const day = 24 * time.Hour

// ProductLookup resolves catalog products by name. Absent names are normal:
// pantry entries may outlive the product they reference.
type ProductLookup interface {
	Lookup(name string) (entities.Product, bool)
}

type restockRule struct {
	minDays int
	message func(item string, daysSinceBuy int) string
}

// Categories not listed here never trigger a restock suggestion.
var restockRules = map[string]restockRule{
	domain.CategoryDairyChill: {7, func(item string, days int) string {
		return fmt.Sprintf("It's been %d days since you bought %s. Need more?", days, item)
	}},
	domain.CategoryBakerySnacks: {4, func(item string, _ int) string {
		return fmt.Sprintf("Your %s might be finished by now. Restock?", item)
	}},
	domain.CategoryRiceGrains: {30, func(item string, _ int) string {
		return fmt.Sprintf("It's been a month since you bought %s. Checking stock?", item)
	}},
	domain.CategoryProduce: {7, func(item string, _ int) string {
		return fmt.Sprintf("Fresh veggies like %s might need replacing.", item)
	}},
	domain.CategoryBeverages: {14, func(item string, _ int) string {
		return fmt.Sprintf("Running low on %s?", item)
	}},
	domain.CategoryPantryStaples: {60, func(item string, _ int) string {
		return fmt.Sprintf("Check your %s supply.", item)
	}},
}

// DaysBetween returns the whole days from -> to, flooring partial days
// (-1.5 days is -2). Both sides are compared by wall clock, so a DST change
// between them does not shift the count.
func DaysBetween(from, to time.Time) int {
	d := wallClock(to).Sub(wallClock(from))
	days := int(d / day)
	if d%day < 0 {
		days--
	}
	return days
}

func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// ClassifyDaysLeft maps days until expiry to a status. Every integer maps to
// exactly one status.
func ClassifyDaysLeft(daysLeft int) string {
	switch {
	case daysLeft < 0:
		return domain.StatusExpired
	case daysLeft <= 2:
		return domain.StatusCritical
	case daysLeft <= 5:
		return domain.StatusExpiringSoon
	default:
		return domain.StatusGood
	}
}

func expiryAlert(item string, status string, daysLeft int) string {
	switch status {
	case domain.StatusExpired:
		return fmt.Sprintf("%s has expired!", item)
	case domain.StatusCritical:
		return fmt.Sprintf("%s expires in %d days!", item, daysLeft)
	case domain.StatusExpiringSoon:
		return fmt.Sprintf("%s expires in %d days.", item, daysLeft)
	default:
		return ""
	}
}

// EvaluateStatuses recomputes every entry's status against ref and returns
// the updated entries with one alert per non-Good entry, in pantry order.
// Statuses are not monotonic: moving ref backwards can turn Expired into Good.
func EvaluateStatuses(entries []entities.PantryEntry, ref time.Time) ([]entities.PantryEntry, []string) {
	updated := make([]entities.PantryEntry, len(entries))
	alerts := make([]string, 0)

	for i, entry := range entries {
		daysLeft := DaysBetween(ref, entry.ExpiryDate)
		entry.Status = ClassifyDaysLeft(daysLeft)
		updated[i] = entry

		if alert := expiryAlert(entry.Item, entry.Status, daysLeft); alert != "" {
			alerts = append(alerts, alert)
		}
	}

	return updated, alerts
}

// PredictRestockNeeds suggests restocking by elapsed time since purchase.
// Only the first pantry entry of each product name is considered.
func PredictRestockNeeds(entries []entities.PantryEntry, catalog ProductLookup, ref time.Time) []string {
	suggestions := make([]string, 0)
	visited := make(map[string]struct{})

	for _, entry := range entries {
		if _, seen := visited[entry.Item]; seen {
			continue
		}
		visited[entry.Item] = struct{}{}

		product, ok := catalog.Lookup(entry.Item)
		if !ok {
			continue
		}
		rule, ok := restockRules[product.Category]
		if !ok {
			continue
		}

		daysSinceBuy := DaysBetween(entry.BuyDate, ref)
		if daysSinceBuy >= rule.minDays {
			suggestions = append(suggestions, rule.message(entry.Item, daysSinceBuy))
		}
	}

	return suggestions
}

// IsConsumable reports whether a status still counts as stock.
func IsConsumable(status string) bool {
	switch status {
	case domain.StatusGood, domain.StatusExpiringSoon, domain.StatusCritical:
		return true
	default:
		return false
	}
}

// CountStock counts consumable entries of exactly this product.
func CountStock(entries []entities.PantryEntry, item string) int {
	count := 0
	for _, entry := range entries {
		if entry.Item == item && IsConsumable(entry.Status) {
			count++
		}
	}
	return count
}

// Checkout turns cart lines into pantry entries bought at ref. Lines whose
// product no longer resolves are returned as skipped.
func Checkout(lines []domain.CartLine, catalog ProductLookup, ref time.Time) ([]entities.PantryEntry, []string) {
	added := make([]entities.PantryEntry, 0, len(lines))
	var skipped []string

	for _, line := range lines {
		product, ok := catalog.Lookup(line.Item)
		if !ok {
			skipped = append(skipped, line.Item)
			continue
		}
		added = append(added, entities.PantryEntry{
			Item:       line.Item,
			BuyDate:    ref,
			ExpiryDate: ref.AddDate(0, 0, product.DaysToExpire),
			Status:     domain.StatusGood,
		})
	}

	return added, skipped
}
