package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"withbliss-api/database"
	apierrors "withbliss-api/errors"
	"withbliss-api/metrics"
	"withbliss-api/model"
)

const packageNotFound = "Package not found"

func (h *Handler) GetPackages(c *fiber.Ctx) error {
	packages, err := h.store.ListPackages(c.UserContext())
	if err != nil {
		return h.storageError(c, "list_packages", err)
	}

	views := make([]model.PackageView, 0, len(packages))
	for _, pkg := range packages {
		views = append(views, pkg.View())
	}
	return c.JSON(views)
}

func (h *Handler) CreatePackage(c *fiber.Ctx) error {
	var req packageRequest
	if err := h.bind(c, &req); err != nil {
		return apierrors.RaiseBadRequestError(c, err.Error())
	}

	pkg := req.toModel()
	if err := h.store.CreatePackage(c.UserContext(), &pkg); err != nil {
		return h.storageError(c, "create_package", err)
	}
	metrics.IncCreated("package")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Package added",
		"id":      model.FormatID(pkg.ID)})
}

func (h *Handler) UpdatePackage(c *fiber.Ctx) error {
	id, ok := packageID(c)
	if !ok {
		return apierrors.RaiseNotFoundError(c, packageNotFound)
	}

	var req packagePatchRequest
	if err := h.bind(c, &req); err != nil {
		return apierrors.RaiseBadRequestError(c, err.Error())
	}

	err := h.store.UpdatePackage(c.UserContext(), id, req.toPatch())
	if errors.Is(err, database.ErrNotFound) {
		return apierrors.RaiseNotFoundError(c, packageNotFound)
	}
	if err != nil {
		return h.storageError(c, "update_package", err)
	}
	metrics.IncPackageChanged("update")

	return c.JSON(fiber.Map{"message": "Package updated"})
}

func (h *Handler) DeletePackage(c *fiber.Ctx) error {
	id, ok := packageID(c)
	if !ok {
		return apierrors.RaiseNotFoundError(c, packageNotFound)
	}

	err := h.store.DeletePackage(c.UserContext(), id)
	if errors.Is(err, database.ErrNotFound) {
		return apierrors.RaiseNotFoundError(c, packageNotFound)
	}
	if err != nil {
		return h.storageError(c, "delete_package", err)
	}
	metrics.IncPackageChanged("delete")

	return c.JSON(fiber.Map{"message": "Package deleted"})
}

// packageID parses the :id segment. Anything that is not a non-negative
// integer cannot name a package.
func packageID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
