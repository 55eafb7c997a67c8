package handlers

import (
	"strconv"

	"Smart-Grocery-Agent/domain"
	"Smart-Grocery-Agent/internal/api/presenters"
	"Smart-Grocery-Agent/pkg/notify"
	"Smart-Grocery-Agent/pkg/pantry"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PantryHandler interface {
		GetPantry(c *fiber.Ctx) error
		DeleteEntry(c *fiber.Ctx) error
		GetDashboardStats(c *fiber.Ctx) error
		GetNotifications(c *fiber.Ctx) error
		SendDigest(c *fiber.Ctx) error
		GetSimulation(c *fiber.Ctx) error
		SetSimulation(c *fiber.Ctx) error
	}

	pantryHandler struct {
		pantryService pantry.PantryService
		notifyService notify.NotifyService
		validator     *validator.Validate
	}
)

func NewPantryHandler(pantryService pantry.PantryService, notifyService notify.NotifyService, validator *validator.Validate) PantryHandler {
	return &pantryHandler{
		pantryService: pantryService,
		notifyService: notifyService,
		validator:     validator,
	}
}

func (h *pantryHandler) GetPantry(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.pantryService.GetPantry(c.Context()), fiber.StatusOK, domain.MessageSuccessGetPantry)
}

func (h *pantryHandler) DeleteEntry(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePantryEntry, domain.ErrInvalidIndex)
	}

	if err := h.pantryService.DeleteEntry(c.Context(), index); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeletePantryEntry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePantryEntry)
}

func (h *pantryHandler) GetDashboardStats(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.pantryService.GetDashboardStats(c.Context()), fiber.StatusOK, domain.MessageSuccessGetDashboardStats)
}

func (h *pantryHandler) GetNotifications(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.pantryService.GetNotifications(c.Context()), fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *pantryHandler) SendDigest(c *fiber.Ctx) error {
	res, err := h.notifyService.SendDigest(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSendDigest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSendDigest)
}

func (h *pantryHandler) GetSimulation(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.pantryService.GetSimulation(c.Context()), fiber.StatusOK, domain.MessageSuccessGetSimulation)
}

func (h *pantryHandler) SetSimulation(c *fiber.Ctx) error {
	req := new(domain.SimulationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetSimulation, err)
	}

	res := h.pantryService.SetSimulation(c.Context(), *req)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSetSimulation)
}
