package handlers

import (
	"github.com/gofiber/fiber/v2"

	apierrors "withbliss-api/errors"
	"withbliss-api/metrics"
	"withbliss-api/model"
)

func (h *Handler) GetGallery(c *fiber.Ctx) error {
	images, err := h.store.ListGalleries(c.UserContext())
	if err != nil {
		return h.storageError(c, "list_gallery", err)
	}

	views := make([]model.GalleryView, 0, len(images))
	for _, img := range images {
		views = append(views, img.View())
	}
	return c.JSON(views)
}

func (h *Handler) CreateGalleryImage(c *fiber.Ctx) error {
	var req galleryRequest
	if err := h.bind(c, &req); err != nil {
		return apierrors.RaiseBadRequestError(c, err.Error())
	}

	img := req.toModel()
	if err := h.store.CreateGallery(c.UserContext(), &img); err != nil {
		return h.storageError(c, "create_gallery_image", err)
	}
	metrics.IncCreated("gallery_image")

	return c.JSON(fiber.Map{"message": "Image added to gallery"})
}
