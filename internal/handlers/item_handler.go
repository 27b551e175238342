package handlers

import (
	"catalog/internal/apperr"
	"catalog/internal/models"
	"catalog/internal/search"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ItemHandler handles HTTP requests for items.
type ItemHandler struct {
	service *services.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *services.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// RegisterRoutes registers the item routes on router.
func (h *ItemHandler) RegisterRoutes(router fiber.Router) {
	itemRoutes := router.Group("/items")
	itemRoutes.Get("/", h.HandleGetItems)
	// /find must be registered before /:id.
	itemRoutes.Get("/find", h.HandleFindItem)
	itemRoutes.Get("/:id", h.HandleGetItemByID)
	itemRoutes.Get("/:id/merchant", h.HandleGetItemMerchant)
	itemRoutes.Post("/", h.HandleCreateItem)
	itemRoutes.Patch("/:id", h.HandleUpdateItem)
	itemRoutes.Delete("/:id", h.HandleDeleteItem)
}

// HandleGetItems lists every item.
func (h *ItemHandler) HandleGetItems(c *fiber.Ctx) error {
	items, err := h.service.GetAllItems()
	if err != nil {
		return err
	}
	return collection(c, itemResources(items))
}

// HandleGetItemByID returns one item.
func (h *ItemHandler) HandleGetItemByID(c *fiber.Ctx) error {
	id, err := parseID(c, "Item", apperr.OriginLookup)
	if err != nil {
		return err
	}
	item, err := h.service.GetItemByID(id)
	if err != nil {
		return err
	}
	return single(c, fiber.StatusOK, itemResource(item))
}

// HandleFindItem returns the first item matching either a name fragment or
// a price range.
func (h *ItemHandler) HandleFindItem(c *fiber.Ctx) error {
	query, err := search.Resolve(search.FromQuery(c.Queries()))
	if err != nil {
		return err
	}
	item, err := h.service.FindItem(query)
	if err != nil {
		return err
	}
	if item == nil {
		return empty(c)
	}
	return single(c, fiber.StatusOK, itemResource(item))
}

// HandleCreateItem creates an item.
func (h *ItemHandler) HandleCreateItem(c *fiber.Ctx) error {
	var params models.ItemParams
	if err := c.BodyParser(&params); err != nil {
		return malformedBody(err)
	}
	item, err := h.service.CreateItem(params)
	if err != nil {
		return err
	}
	return single(c, fiber.StatusCreated, itemResource(item))
}

// HandleUpdateItem applies a partial update to an item.
func (h *ItemHandler) HandleUpdateItem(c *fiber.Ctx) error {
	id, err := parseID(c, "Item", apperr.OriginLookup)
	if err != nil {
		return err
	}
	var params models.ItemParams
	if err := c.BodyParser(&params); err != nil {
		return malformedBody(err)
	}
	item, err := h.service.UpdateItem(id, params)
	if err != nil {
		return err
	}
	return single(c, fiber.StatusOK, itemResource(item))
}

// HandleDeleteItem deletes an item together with the invoices that only
// contained it.
func (h *ItemHandler) HandleDeleteItem(c *fiber.Ctx) error {
	id, err := parseID(c, "Item", apperr.OriginLookup)
	if err != nil {
		return err
	}
	if err := h.service.DeleteItem(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetItemMerchant returns the merchant that sells an item.
func (h *ItemHandler) HandleGetItemMerchant(c *fiber.Ctx) error {
	id, err := parseID(c, "Item", apperr.OriginStore)
	if err != nil {
		return err
	}
	merchant, err := h.service.GetItemMerchant(id)
	if err != nil {
		return err
	}
	return single(c, fiber.StatusOK, merchantResource(merchant))
}
