package assets

import (
	"errors"
	"strconv"

	"asset-loader/core/logger"
	"asset-loader/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for documents.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the asset routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/assets")
	group.Post("/load", h.HandleLoad)
	group.Get("/status", h.HandleStatus)
	group.Put("/hot-reload", h.HandleHotReload)
	group.Get("/:id", h.HandleGet)
}

// HandleLoad queues a document load and returns its handle.
func (h *Handler) HandleLoad(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req LoadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	resp, err := h.service.Load(req)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Load failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Load queued", zap.String("name", req.Name), zap.Uint64("handle", resp.Handle))
	return c.Status(fiber.StatusAccepted).JSON(resp)
}

// HandleGet returns the state of one handle.
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid handle id"})
	}

	status, err := h.service.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(status)
}

// HandleStatus returns loader-wide progress.
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}

// HandleHotReload toggles the hot-reload flag.
func (h *Handler) HandleHotReload(c *fiber.Ctx) error {
	enabled, err := utils.ParseBool(c.Query("enabled"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	h.service.SetHotReload(enabled)
	return c.JSON(fiber.Map{"hot_reload": enabled})
}
