package handlers

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"withbliss-api/database"
	apierrors "withbliss-api/errors"
	"withbliss-api/metrics"
)

// Handler serves every endpoint against a single store.
type Handler struct {
	store    database.Store
	log      zerolog.Logger
	validate *validator.Validate
}

func New(store database.Store, logger zerolog.Logger) *Handler {
	return &Handler{
		store:    store,
		log:      logger.With().Str("component", "handlers").Logger(),
		validate: newValidator(),
	}
}

var endpoints = []string{"/api/packages", "/api/bookings", "/api/contact", "/api/gallery"}

func (h *Handler) Home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "online",
		"message":   "With Bliss Backend API is running successfully",
		"endpoints": endpoints,
	})
}

func (h *Handler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.log.Warn().Err(err).Msg("store ping failed")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bind decodes the JSON body into req and validates it. The returned error
// is meant for the client.
func (h *Handler) bind(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return fmt.Errorf("cannot parse body: %v", err)
	}
	if err := h.validate.Struct(req); err != nil {
		return errors.New(validationMessage(err))
	}
	if ck, ok := req.(checker); ok {
		return ck.check()
	}
	return nil
}

// checker is implemented by requests with rules the validator tags cannot
// express.
type checker interface {
	check() error
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required", "required_without":
			messages = append(messages, fmt.Sprintf("%s is required", fe.Field()))
		case "min":
			messages = append(messages, fmt.Sprintf("%s must not be empty", fe.Field()))
		default:
			messages = append(messages, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(messages, "; ")
}

func (h *Handler) storageError(c *fiber.Ctx, operation string, err error) error {
	metrics.IncStorageError(operation)
	h.log.Error().Err(err).Str("operation", operation).Msg("storage failure")
	return apierrors.RaiseInternalServerError(c, fmt.Sprintf("database error: %v", err))
}
