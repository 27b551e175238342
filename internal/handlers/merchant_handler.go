package handlers

import (
	"catalog/internal/apperr"
	"catalog/internal/models"
	"catalog/internal/search"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// MerchantHandler handles HTTP requests for merchants.
type MerchantHandler struct {
	service *services.MerchantService
}

// NewMerchantHandler creates a new MerchantHandler.
func NewMerchantHandler(service *services.MerchantService) *MerchantHandler {
	return &MerchantHandler{service: service}
}

// RegisterRoutes registers the merchant routes on router.
func (h *MerchantHandler) RegisterRoutes(router fiber.Router) {
	merchantRoutes := router.Group("/merchants")
	merchantRoutes.Get("/", h.HandleGetMerchants)
	merchantRoutes.Get("/find_all", h.HandleFindMerchants)
	merchantRoutes.Get("/:id", h.HandleGetMerchantByID)
	merchantRoutes.Get("/:id/items", h.HandleGetMerchantItems)
	merchantRoutes.Post("/", h.HandleCreateMerchant)
	merchantRoutes.Patch("/:id", h.HandleUpdateMerchant)
	merchantRoutes.Delete("/:id", h.HandleDeleteMerchant)
}

// HandleGetMerchants lists every merchant.
func (h *MerchantHandler) HandleGetMerchants(c *fiber.Ctx) error {
	merchants, err := h.service.GetAllMerchants()
	if err != nil {
		return err
	}
	return collection(c, merchantResources(merchants))
}

// HandleGetMerchantByID returns one merchant.
func (h *MerchantHandler) HandleGetMerchantByID(c *fiber.Ctx) error {
	id, err := parseID(c, "Merchant", apperr.OriginLookup)
	if err != nil {
		return err
	}
	merchant, err := h.service.GetMerchantByID(id)
	if err != nil {
		return err
	}
	return single(c, fiber.StatusOK, merchantResource(merchant))
}

// HandleFindMerchants returns every merchant whose name contains the name
// parameter. Without a usable name the result is empty.
func (h *MerchantHandler) HandleFindMerchants(c *fiber.Ctx) error {
	name, ok := search.ResolveMerchantName(c.Queries())
	if !ok {
		return empty(c)
	}
	merchants, err := h.service.FindMerchants(name)
	if err != nil {
		return err
	}
	return collection(c, merchantResources(merchants))
}

// HandleCreateMerchant creates a merchant.
func (h *MerchantHandler) HandleCreateMerchant(c *fiber.Ctx) error {
	var params models.MerchantParams
	if err := c.BodyParser(&params); err != nil {
		return malformedBody(err)
	}
	merchant, err := h.service.CreateMerchant(params)
	if err != nil {
		return err
	}
	return single(c, fiber.StatusCreated, merchantResource(merchant))
}

// HandleUpdateMerchant applies a partial update to a merchant.
func (h *MerchantHandler) HandleUpdateMerchant(c *fiber.Ctx) error {
	id, err := parseID(c, "Merchant", apperr.OriginLookup)
	if err != nil {
		return err
	}
	var params models.MerchantParams
	if err := c.BodyParser(&params); err != nil {
		return malformedBody(err)
	}
	merchant, err := h.service.UpdateMerchant(id, params)
	if err != nil {
		return err
	}
	return single(c, fiber.StatusOK, merchantResource(merchant))
}

// HandleDeleteMerchant deletes a merchant with its items and invoices.
func (h *MerchantHandler) HandleDeleteMerchant(c *fiber.Ctx) error {
	id, err := parseID(c, "Merchant", apperr.OriginLookup)
	if err != nil {
		return err
	}
	if err := h.service.DeleteMerchant(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetMerchantItems lists the items a merchant sells.
func (h *MerchantHandler) HandleGetMerchantItems(c *fiber.Ctx) error {
	id, err := parseID(c, "Merchant", apperr.OriginStore)
	if err != nil {
		return err
	}
	items, err := h.service.GetMerchantItems(id)
	if err != nil {
		return err
	}
	return collection(c, itemResources(items))
}
