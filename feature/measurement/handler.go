package measurement

import (
	"errors"
	"strconv"

	"playero-reconciler/core/logger"
	"playero-reconciler/feature/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for measurement details.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the measurement routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/mediciones")
	group.Get("/:id_bod/:fecha", h.HandleDayDetail)
}

// HandleDayDetail returns the opening and closing measurements of one
// warehouse-day, with photo evidence inlined.
func (h *Handler) HandleDayDetail(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	warehouseID, err := strconv.Atoi(c.Params("id_bod"))
	if err != nil || warehouseID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id_bod"})
	}
	date, err := strconv.Atoi(c.Params("fecha"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid fecha"})
	}

	detail, err := h.service.DayDetail(c.Context(), warehouseID, date)
	if err != nil {
		if errors.Is(err, reconcile.ErrWarehouseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Measurement detail failed",
			zap.Int("id_bod", warehouseID),
			zap.Int("fecha", date),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.JSON(detail)
}
