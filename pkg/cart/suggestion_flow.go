package cart

import (
	"fmt"

	"Smart-Grocery-Agent/domain"
	"Smart-Grocery-Agent/entities"
	"Smart-Grocery-Agent/pkg/pantry"
)

// Decision is the outcome of one step of the add-to-cart gate. Exactly one
// of Commit and Pending is set, except after Cancel where both are empty.
type Decision struct {
	Commit  string
	Pending *domain.PendingSuggestion
}

func (d Decision) Committed() bool {
	return d.Commit != ""
}

// RequestAdd decides what happens when the user asks for name. The pantry
// statuses must already be evaluated at the current reference date.
func RequestAdd(catalog pantry.ProductLookup, stock []entities.PantryEntry, name string) (Decision, error) {
	product, ok := catalog.Lookup(name)
	if !ok {
		return Decision{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, name)
	}

	if product.HasAlternative() {
		return Decision{Pending: domain.NewHealthSuggestion(name, *product.Alternative)}, nil
	}

	return checkDuplicate(stock, name), nil
}

// AcceptAlternative swaps the original for its alternative. The alternative
// still goes through the duplicate check, never the health check again.
func AcceptAlternative(catalog pantry.ProductLookup, stock []entities.PantryEntry, pending *domain.PendingSuggestion) (Decision, error) {
	if err := expect(pending, domain.SuggestionHealth); err != nil {
		return Decision{}, err
	}
	if _, ok := catalog.Lookup(pending.Alternative); !ok {
		return Decision{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, pending.Alternative)
	}
	return checkDuplicate(stock, pending.Alternative), nil
}

// KeepOriginal declines the alternative and re-checks stock of the original.
func KeepOriginal(catalog pantry.ProductLookup, stock []entities.PantryEntry, pending *domain.PendingSuggestion) (Decision, error) {
	if err := expect(pending, domain.SuggestionHealth); err != nil {
		return Decision{}, err
	}
	if _, ok := catalog.Lookup(pending.Original); !ok {
		return Decision{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, pending.Original)
	}
	return checkDuplicate(stock, pending.Original), nil
}

func AddAnyway(catalog pantry.ProductLookup, pending *domain.PendingSuggestion) (Decision, error) {
	if err := expect(pending, domain.SuggestionDuplicate); err != nil {
		return Decision{}, err
	}
	if _, ok := catalog.Lookup(pending.Item); !ok {
		return Decision{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, pending.Item)
	}
	return Decision{Commit: pending.Item}, nil
}

// Cancel drops any pending suggestion without committing.
func Cancel(pending *domain.PendingSuggestion) (Decision, error) {
	if pending == nil {
		return Decision{}, domain.ErrNoPendingSuggestion
	}
	return Decision{}, nil
}

// Resolve dispatches a user action against the pending suggestion.
func Resolve(catalog pantry.ProductLookup, stock []entities.PantryEntry, pending *domain.PendingSuggestion, action string) (Decision, error) {
	switch action {
	case domain.ActionAccept:
		return AcceptAlternative(catalog, stock, pending)
	case domain.ActionKeep:
		return KeepOriginal(catalog, stock, pending)
	case domain.ActionAddAnyway:
		return AddAnyway(catalog, pending)
	case domain.ActionCancel:
		return Cancel(pending)
	default:
		return Decision{}, fmt.Errorf("%w: unknown action %q", domain.ErrSuggestionMismatch, action)
	}
}

func checkDuplicate(stock []entities.PantryEntry, name string) Decision {
	if count := pantry.CountStock(stock, name); count > 0 {
		return Decision{Pending: domain.NewDuplicateSuggestion(name, count)}
	}
	return Decision{Commit: name}
}

func expect(pending *domain.PendingSuggestion, kind string) error {
	if pending == nil {
		return domain.ErrNoPendingSuggestion
	}
	if pending.Kind != kind {
		return domain.ErrSuggestionMismatch
	}
	return nil
}
