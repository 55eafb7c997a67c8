package handlers

import (
	"Smart-Grocery-Agent/domain"
	"Smart-Grocery-Agent/internal/api/presenters"
	"Smart-Grocery-Agent/pkg/cart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CartHandler interface {
		GetCart(c *fiber.Ctx) error
		AddToCart(c *fiber.Ctx) error
		ResolveSuggestion(c *fiber.Ctx) error
		RemoveLine(c *fiber.Ctx) error
		ClearCart(c *fiber.Ctx) error
		Checkout(c *fiber.Ctx) error
	}

	cartHandler struct {
		cartService cart.CartService
		validator   *validator.Validate
	}
)

func NewCartHandler(cartService cart.CartService, validator *validator.Validate) CartHandler {
	return &cartHandler{
		cartService: cartService,
		validator:   validator,
	}
}

func (h *cartHandler) GetCart(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.cartService.GetCart(c.Context()), fiber.StatusOK, domain.MessageSuccessGetCart)
}

func (h *cartHandler) AddToCart(c *fiber.Ctx) error {
	req := new(domain.AddToCartRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToCart, err)
	}

	res, err := h.cartService.AddToCart(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddToCart, err)
	}

	return addResponse(c, res, domain.MessageSuccessAddToCart)
}

func (h *cartHandler) ResolveSuggestion(c *fiber.Ctx) error {
	req := new(domain.ResolveSuggestionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResolveSuggestion, err)
	}

	res, err := h.cartService.ResolveSuggestion(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedResolveSuggestion, err)
	}

	return addResponse(c, res, domain.MessageSuccessResolveSuggestion)
}

func (h *cartHandler) RemoveLine(c *fiber.Ctx) error {
	if err := h.cartService.RemoveLine(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedRemoveCartLine, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveCartLine)
}

func (h *cartHandler) ClearCart(c *fiber.Ctx) error {
	h.cartService.Clear(c.Context())
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClearCart)
}

func (h *cartHandler) Checkout(c *fiber.Ctx) error {
	res, err := h.cartService.Checkout(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCheckout, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCheckout)
}

// addResponse answers 201 when a line was committed and 202 while the add
// waits on a suggestion.
func addResponse(c *fiber.Ctx, res domain.AddToCartResponse, message string) error {
	switch {
	case res.Added != nil:
		return presenters.SuccessResponse(c, res, fiber.StatusCreated, message)
	case res.Pending != nil:
		return presenters.SuccessResponse(c, res, fiber.StatusAccepted, domain.MessageSuccessSuggestionPending)
	default:
		return presenters.SuccessResponse(c, res, fiber.StatusOK, message)
	}
}
