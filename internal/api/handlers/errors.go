package handlers

import (
	"errors"

	"Smart-Grocery-Agent/domain"
	"Smart-Grocery-Agent/internal/utils/mailing"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps service errors to HTTP status codes. Anything unknown is
// treated as a server-side failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrPantryEntryNotFound),
		errors.Is(err, domain.ErrCartLineNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrProductExists),
		errors.Is(err, domain.ErrNoPendingSuggestion),
		errors.Is(err, domain.ErrSuggestionMismatch),
		errors.Is(err, domain.ErrEmptyCart):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidProduct),
		errors.Is(err, domain.ErrInvalidIndex),
		errors.Is(err, domain.ErrSelfAlternative),
		errors.Is(err, domain.ErrAlternativeNotFound):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotificationRecipient),
		errors.Is(err, mailing.ErrSMTPNotConfigured):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
