package importer

import (
	"errors"
	"fmt"
	"io"
	"time"

	"roster-importer/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for roster imports.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// RegisterRoutes registers the importer routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/roster")
	group.Post("/import", h.HandleImport)
	group.Get("/archive/:year/:month", h.HandleListArchive)
	group.Get("/archive/:year/:month/:filename", h.HandleFetchArchive)
}

// HandleImport imports a duty roster document.
// @Summary Import Duty Roster
// @Description Extract the roster from the uploaded document, reconcile it against the calendar and return the change report.
// @Tags roster
// @Accept multipart/form-data
// @Produce plain
// @Param document formData file true "Roster document (xlsx, named YYYY_MM.xlsx)"
// @Param year query int false "Roster year (inferred from filename when omitted)"
// @Param month query int false "Roster month 1-12 (inferred from filename when omitted)"
// @Param dry_run query bool false "Compute and report without touching the calendar"
// @Param create_csv query bool false "Additionally return a Google calendar CSV"
// @Success 200 {string} string "Change report or 'no changes in duty roster'"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]string "Unusable Document"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /roster/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	fileHeader, err := c.FormFile("document")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing form file 'document'",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unreadable form file 'document'",
		})
	}
	defer file.Close()

	document, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unreadable form file 'document'",
		})
	}

	req := ImportRequest{
		Filename:  fileHeader.Filename,
		Year:      c.QueryInt("year"),
		Month:     time.Month(c.QueryInt("month")),
		DryRun:    c.QueryBool("dry_run"),
		CreateCSV: c.QueryBool("create_csv"),
	}

	result, err := h.service.Import(c.Context(), req, document)
	if err != nil {
		var formatErr *UnsupportedFormatError
		var dateErr *DateRangeError
		if errors.As(err, &formatErr) || errors.As(err, &dateErr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Roster import failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if req.CreateCSV && result.CSV != "" {
		return c.JSON(fiber.Map{
			"report": result.Report,
			"csv":    result.CSV,
		})
	}
	return c.SendString(result.Report)
}

// HandleListArchive lists the archived documents of one month.
// @Summary List Archived Documents
// @Description Get the names of all roster documents archived for the given month.
// @Tags roster
// @Produce json
// @Param year path int true "Year (e.g. 2015)"
// @Param month path int true "Month (1-12)"
// @Success 200 {array} string "Object names"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 503 {object} map[string]string "Archive Unavailable"
// @Router /roster/archive/{year}/{month} [get]
func (h *Handler) HandleListArchive(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	year, month, ok := archiveParams(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid year or month",
		})
	}

	names, err := h.service.archiver.List(c.Context(), year, month)
	if err != nil {
		if errors.Is(err, ErrArchiveDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Listing archive failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if names == nil {
		names = []string{}
	}
	return c.JSON(names)
}

// HandleFetchArchive streams one archived document.
// @Summary Download Archived Document
// @Description Download a roster document previously archived on import.
// @Tags roster
// @Produce octet-stream
// @Param year path int true "Year (e.g. 2015)"
// @Param month path int true "Month (1-12)"
// @Param filename path string true "Document name, e.g. 2015_03.xlsx"
// @Success 200 {file} binary "Document"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 503 {object} map[string]string "Archive Unavailable"
// @Router /roster/archive/{year}/{month}/{filename} [get]
func (h *Handler) HandleFetchArchive(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	year, month, ok := archiveParams(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid year or month",
		})
	}

	filename := c.Params("filename")
	objectName := fmt.Sprintf("%04d_%02d/%s", year, month, filename)

	obj, err := h.service.archiver.Fetch(c.Context(), objectName)
	if err != nil {
		if errors.Is(err, ErrArchiveDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Fetching archived document failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.SendStream(obj)
}

func archiveParams(c *fiber.Ctx) (year, month int, ok bool) {
	year, err := c.ParamsInt("year")
	if err != nil || year < 1 {
		return 0, 0, false
	}
	month, err = c.ParamsInt("month")
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}
