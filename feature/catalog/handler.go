package catalog

import (
	"errors"
	"strings"

	"catalog-sync/core/logger"
	"catalog-sync/core/utils"
	"catalog-sync/feature/catalog/models"
	"catalog-sync/feature/catalog/syncer"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// typeStats requests the product count and latest ledger entry instead of a pass.
const typeStats = "stats"

// Handler handles HTTP requests for catalog sync.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/sync", h.HandleSync)
	app.Post("/sync", h.HandleSync)
}

// HandleSync runs a sync pass or returns stats.
//
// Query parameters:
//   - type: full, incremental (default) or stats
//   - cache: read upstream collections through the response cache
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	useCache, err := utils.ParseBool(c.Query("cache"), h.service.cacheDefault)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	typ := strings.ToLower(c.Query("type", string(models.KindIncremental)))
	if typ == typeStats {
		stats, err := h.service.Stats(c.UserContext())
		if err != nil {
			l.Error("Stats query failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(stats)
	}

	kind, ok := models.ParseSyncKind(typ)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid type " + typ + ", expected full, incremental or stats",
		})
	}

	l.Info("Sync requested", zap.String("kind", string(kind)), zap.Bool("cache", useCache))

	res, err := h.service.Run(c.UserContext(), kind, syncer.Options{UseCache: useCache})
	if errors.Is(err, syncer.ErrSyncInProgress) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Sync could not start", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}

	if res.Failed() {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  strings.Join(res.Errors, "; "),
			"result": res,
		})
	}

	return c.JSON(res)
}
