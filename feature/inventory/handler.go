package inventory

import (
	"context"
	"errors"

	"kitinventory/core/logger"
	"kitinventory/feature/inventory/models"
	"kitinventory/feature/inventory/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the inventory feature.
type Handler struct {
	service    *Service
	controller *Controller
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, controller *Controller) *Handler {
	return &Handler{service: service, controller: controller}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Get("/summary", h.HandleGetSummary)
	group.Get("/events", h.HandleGetEvents)
	group.Get("/kits", h.HandleSearchKits)
	group.Post("/select", h.HandleSelectKit)
	group.Delete("/select", h.HandleClearSelection)
	group.Get("/parts", h.HandleGetParts)
	group.Post("/parts/:id/adjust", h.HandleAdjustCount)
	group.Post("/register", h.HandleRegister)
}

// HandleGetSummary returns the derived per-system summaries.
// @Summary Get Inventory Summary
// @Description Recomputes the per-system summary (pieces, piece types, kits) from the event log.
// @Tags inventory
// @Produce json
// @Success 200 {object} map[string]models.SystemSummary "Per-system summary"
// @Router /inventory/summary [get]
func (h *Handler) HandleGetSummary(c *fiber.Ctx) error {
	return c.JSON(h.service.Summary())
}

// HandleGetEvents returns the acquisition event log in append order.
// @Summary List Acquisition Events
// @Tags inventory
// @Produce json
// @Success 200 {array} models.AcquisitionEvent "Events"
// @Router /inventory/events [get]
func (h *Handler) HandleGetEvents(c *fiber.Ctx) error {
	return c.JSON(h.service.Events())
}

// HandleSearchKits searches the catalog for kits.
// @Summary Search Kits
// @Description Fulltext search for kits in the remote catalog.
// @Tags inventory
// @Produce json
// @Param text query string true "Kit name or product number"
// @Success 200 {array} models.Kit "Matching kits"
// @Failure 502 {object} map[string]string "Catalog unavailable"
// @Router /inventory/kits [get]
func (h *Handler) HandleSearchKits(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	kits, err := h.service.SearchKits(c.Context(), c.Query("text"))
	if err != nil {
		l.Error("Kit search failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(kits)
}

// HandleSelectKit selects a kit and starts fetching its parts list.
// @Summary Select Kit
// @Description Makes the kit the active selection; its parts list is fetched in the background.
// @Tags inventory
// @Accept json
// @Produce json
// @Param kit body models.Kit true "Kit to select"
// @Success 202 {object} models.Kit "Selected kit"
// @Failure 400 {object} map[string]string "Malformed body"
// @Router /inventory/select [post]
func (h *Handler) HandleSelectKit(c *fiber.Ctx) error {
	var kit models.Kit
	if err := c.BodyParser(&kit); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed kit payload",
		})
	}

	// The fetch outlives this request; it is tied to the selection, not to
	// the request context.
	h.controller.SelectKit(context.Background(), kit)
	return c.Status(fiber.StatusAccepted).JSON(kit)
}

// HandleClearSelection drops the active kit selection.
// @Summary Clear Selection
// @Tags inventory
// @Success 204 "Selection cleared"
// @Router /inventory/select [delete]
func (h *Handler) HandleClearSelection(c *fiber.Ctx) error {
	h.controller.ClearSelection()
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetParts returns the live part collection for the selected kit.
// @Summary Get Live Parts
// @Tags inventory
// @Produce json
// @Success 200 {object} models.PartMap "Live part collection"
// @Router /inventory/parts [get]
func (h *Handler) HandleGetParts(c *fiber.Ctx) error {
	parts := h.controller.Parts()
	if parts == nil {
		parts = models.PartMap{}
	}
	return c.JSON(parts)
}

type adjustRequest struct {
	Delta int `json:"delta"`
}

type adjustResponse struct {
	Part  models.Part     `json:"part"`
	Delta reconcile.Delta `json:"delta"`
}

// HandleAdjustCount increments or decrements a part's actual count.
// @Summary Adjust Part Count
// @Description Applies a single increment (delta > 0) or decrement (delta < 0). Decrements at zero are no-ops.
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Part ID"
// @Param adjustment body adjustRequest true "Adjustment"
// @Success 200 {object} adjustResponse "Updated part and classified delta"
// @Failure 400 {object} map[string]string "Malformed request"
// @Failure 404 {object} map[string]string "Unknown part"
// @Router /inventory/parts/{id}/adjust [post]
func (h *Handler) HandleAdjustCount(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "part id must be an integer",
		})
	}

	var req adjustRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed adjustment payload",
		})
	}

	part, delta, err := h.controller.AdjustCount(id, req.Delta)
	if err != nil {
		if errors.Is(err, ErrUnknownPart) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(adjustResponse{Part: part, Delta: delta})
}

type registerResponse struct {
	EventID int64 `json:"eventId"`
}

// HandleRegister records one acquisition event for the selected kit.
// @Summary Register Acquisition
// @Description Snapshots the selected kit, its reconciled parts, and the form metadata into one event.
// @Tags inventory
// @Accept json
// @Produce json
// @Param metadata body models.Metadata true "Acquisition metadata"
// @Success 201 {object} registerResponse "New event id"
// @Failure 400 {object} map[string]string "Malformed body"
// @Failure 409 {object} map[string]string "No kit selected"
// @Router /inventory/register [post]
func (h *Handler) HandleRegister(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var meta models.Metadata
	if err := c.BodyParser(&meta); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed metadata payload",
		})
	}

	eventID, err := h.controller.Register(meta)
	if err != nil {
		if errors.Is(err, ErrNoKitSelected) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Registration failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(registerResponse{EventID: eventID})
}
