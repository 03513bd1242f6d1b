package handlers

import (
	"github.com/gofiber/fiber/v2"

	apierrors "withbliss-api/errors"
	"withbliss-api/metrics"
	"withbliss-api/model"
)

func (h *Handler) GetContactMessages(c *fiber.Ctx) error {
	messages, err := h.store.ListContactMessages(c.UserContext())
	if err != nil {
		return h.storageError(c, "list_contact_messages", err)
	}

	views := make([]model.ContactMessageView, 0, len(messages))
	for _, msg := range messages {
		views = append(views, msg.View())
	}
	return c.JSON(views)
}

// CreateContactMessage answers 200, not 201, like the gallery endpoint.
func (h *Handler) CreateContactMessage(c *fiber.Ctx) error {
	var req contactRequest
	if err := h.bind(c, &req); err != nil {
		return apierrors.RaiseBadRequestError(c, err.Error())
	}

	msg := req.toModel()
	if err := h.store.CreateContactMessage(c.UserContext(), &msg); err != nil {
		return h.storageError(c, "create_contact_message", err)
	}
	metrics.IncCreated("contact_message")

	return c.JSON(fiber.Map{"message": "Message received"})
}
