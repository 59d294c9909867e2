package integrity

import (
	"errors"

	"catalog-sync/core/logger"
	"catalog-sync/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/bucket", h.HandleBucketCheck)
	group.Get("/ledger", h.HandleLedgerCheck)
}

// HandleIntegrityCheck runs every check.
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	return c.JSON(h.service.RunAll(c.Context()))
}

// HandleSchemaCheck checks the catalog tables and optionally migrates them.
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix, err := utils.ParseBool(c.Query("fix"), false)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if report.Matched || !fix {
		return c.JSON(report)
	}

	l.Warn("Schema mismatch detected, migrating")
	if err := h.service.FixSchema(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to migrate schema",
			"details": err.Error(),
			"report":  report,
		})
	}

	fixed, err := h.service.CheckSchema()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "fixed", "report": fixed})
}

// HandleBucketCheck checks and optionally creates the cache bucket.
func (h *Handler) HandleBucketCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix, err := utils.ParseBool(c.Query("fix"), false)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	report, err := h.service.CheckBucket(c.Context())
	if errors.Is(err, ErrBucketNotConfigured) {
		return c.JSON(fiber.Map{"status": "skipped"})
	}
	if err != nil {
		l.Error("Bucket check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if report.Exists || !fix {
		return c.JSON(fiber.Map{"status": "checked", "bucket": report.Bucket, "exists": report.Exists})
	}

	if err := h.service.FixBucket(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to create bucket",
			"details": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "fixed", "bucket": report.Bucket, "exists": true})
}

// HandleLedgerCheck reports the sync ledger state.
func (h *Handler) HandleLedgerCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckLedger(c.Context())
	if err != nil {
		l.Error("Ledger check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
