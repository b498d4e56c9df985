package calendar

import (
	"time"

	"roster-importer/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for calendar events.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the calendar routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/roster")
	group.Get("/events/:year/:month", h.HandleListEvents)
}

// HandleListEvents returns all calendar events of one month.
// @Summary List Calendar Events
// @Description Get all calendar events of the given month, roster shifts and foreign entries alike.
// @Tags calendar
// @Accept json
// @Produce json
// @Param year path int true "Year (e.g. 2015)"
// @Param month path int true "Month (1-12)"
// @Success 200 {array} calendar.EventResponse "Events"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /roster/events/{year}/{month} [get]
func (h *Handler) HandleListEvents(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	year, err := c.ParamsInt("year")
	if err != nil || year < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid year",
		})
	}
	month, err := c.ParamsInt("month")
	if err != nil || month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid month",
		})
	}

	events, err := h.service.ListEvents(c.Context(), year, time.Month(month))
	if err != nil {
		l.Error("Listing calendar events failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(events)
}
