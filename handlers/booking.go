package handlers

import (
	"github.com/gofiber/fiber/v2"

	apierrors "withbliss-api/errors"
	"withbliss-api/metrics"
	"withbliss-api/model"
)

func (h *Handler) GetBookings(c *fiber.Ctx) error {
	bookings, err := h.store.ListBookings(c.UserContext())
	if err != nil {
		return h.storageError(c, "list_bookings", err)
	}

	views := make([]model.BookingView, 0, len(bookings))
	for _, booking := range bookings {
		views = append(views, booking.View())
	}
	return c.JSON(views)
}

func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	var req bookingRequest
	if err := h.bind(c, &req); err != nil {
		return apierrors.RaiseBadRequestError(c, err.Error())
	}

	booking := req.toModel()
	if err := h.store.CreateBooking(c.UserContext(), &booking); err != nil {
		return h.storageError(c, "create_booking", err)
	}
	metrics.IncCreated("booking")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Booking successful",
		"id":      model.FormatID(booking.ID)})
}
