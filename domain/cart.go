package domain

import (
	"errors"
)

const (
	CartLinePending = "Pending"

	SuggestionHealth    = "health"
	SuggestionDuplicate = "duplicate"

	ActionAccept    = "accept"
	ActionKeep      = "keep"
	ActionAddAnyway = "add_anyway"
	ActionCancel    = "cancel"
)

var (
	MessageSuccessGetCart           = "cart retrieved successfully"
	MessageSuccessAddToCart         = "item added to cart"
	MessageSuccessSuggestionPending = "confirmation required before adding item"
	MessageSuccessResolveSuggestion = "suggestion resolved"
	MessageSuccessRemoveCartLine    = "item removed from cart"
	MessageSuccessClearCart         = "cart cleared"
	MessageSuccessCheckout          = "checkout complete"

	MessageFailedGetCart           = "failed to retrieve cart"
	MessageFailedAddToCart         = "failed to add item to cart"
	MessageFailedResolveSuggestion = "failed to resolve suggestion"
	MessageFailedRemoveCartLine    = "failed to remove item from cart"
	MessageFailedClearCart         = "failed to clear cart"
	MessageFailedCheckout          = "failed to checkout"

	ErrNoPendingSuggestion = errors.New("no pending suggestion")
	ErrSuggestionMismatch  = errors.New("action does not apply to the pending suggestion")
	ErrCartLineNotFound    = errors.New("cart line not found")
	ErrEmptyCart           = errors.New("cart is empty")
)

type (
	CartLine struct {
		ID       string  `json:"id"`
		Item     string  `json:"item"`
		Category string  `json:"category"`
		Price    float64 `json:"price"`
		Status   string  `json:"status"`
	}

	// PendingSuggestion is a paused add-to-cart awaiting confirmation.
	// Health uses Original and Alternative; Duplicate uses Item and Count.
	PendingSuggestion struct {
		Kind        string `json:"kind"`
		Original    string `json:"original,omitempty"`
		Alternative string `json:"alternative,omitempty"`
		Item        string `json:"item,omitempty"`
		Count       int    `json:"count,omitempty"`
	}

	AddToCartRequest struct {
		Item string `json:"item" validate:"required"`
	}

	ResolveSuggestionRequest struct {
		Action string `json:"action" validate:"required,oneof=accept keep add_anyway cancel"`
	}

	CartResponse struct {
		Lines   []CartLine         `json:"lines"`
		Total   float64            `json:"total"`
		Pending *PendingSuggestion `json:"pending_suggestion"`
	}

	AddToCartResponse struct {
		Added   *CartLine          `json:"added,omitempty"`
		Pending *PendingSuggestion `json:"pending_suggestion,omitempty"`
	}

	CheckoutResponse struct {
		Total        float64  `json:"total"`
		AddedEntries int      `json:"added_entries"`
		SkippedItems []string `json:"skipped_items,omitempty"`
	}
)

func NewHealthSuggestion(original, alternative string) *PendingSuggestion {
	return &PendingSuggestion{Kind: SuggestionHealth, Original: original, Alternative: alternative}
}

func NewDuplicateSuggestion(item string, count int) *PendingSuggestion {
	return &PendingSuggestion{Kind: SuggestionDuplicate, Item: item, Count: count}
}
