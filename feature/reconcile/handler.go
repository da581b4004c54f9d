package reconcile

import (
	"errors"

	"playero-reconciler/core/logger"
	"playero-reconciler/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reconciliation reports.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the reconciliation routes. The POST route keeps
// the legacy path and body shape so existing callers keep working.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reportes")
	group.Post("/getParams", h.HandleDailyReport)
}

// dailyReportRequest is the legacy request body.
type dailyReportRequest struct {
	BranchID int `json:"idSuc"`
	Date     int `json:"fecha"`
}

// HandleDailyReport reconciles every warehouse of a branch for one date and
// returns the ordered result list.
func (h *Handler) HandleDailyReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req dailyReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.BranchID <= 0 || !utils.ValidDate(req.Date) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "idSuc and fecha (YYYYMMDD) are required",
		})
	}

	l.Info("Reconciling branch",
		zap.Int("id_sucursal", req.BranchID),
		zap.Int("fecha", req.Date))

	results, err := h.service.DailyReport(c.Context(), req.BranchID, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, ErrBranchNotFound), errors.Is(err, ErrNoWarehouses):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		default:
			l.Error("Reconciliation failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal server error",
			})
		}
	}

	return c.JSON(results)
}
