package handlers

import (
	"Smart-Grocery-Agent/domain"
	"Smart-Grocery-Agent/internal/api/presenters"
	"Smart-Grocery-Agent/pkg/chat"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ChatHandler interface {
		Send(c *fiber.Ctx) error
		GetTranscript(c *fiber.Ctx) error
		Reset(c *fiber.Ctx) error
	}

	chatHandler struct {
		chatService chat.ChatService
		validator   *validator.Validate
	}
)

func NewChatHandler(chatService chat.ChatService, validator *validator.Validate) ChatHandler {
	return &chatHandler{
		chatService: chatService,
		validator:   validator,
	}
}

func (h *chatHandler) Send(c *fiber.Ctx) error {
	req := new(domain.ChatRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedChat, err)
	}

	res, err := h.chatService.Send(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedChat, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessChat)
}

func (h *chatHandler) GetTranscript(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.chatService.Transcript(c.Context()), fiber.StatusOK, domain.MessageSuccessGetTranscript)
}

func (h *chatHandler) Reset(c *fiber.Ctx) error {
	h.chatService.Reset(c.Context())
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessResetChat)
}
