package services

import (
	"fmt"
	"net/http"

	"catalog/internal/apperr"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/search"

	"github.com/rs/zerolog"
)

// ItemService handles business logic related to items.
type ItemService struct {
	items     repositories.ItemRepository
	merchants repositories.MerchantRepository
	notifier  notifier
}

// NewItemService creates a new ItemService. events may be nil.
func NewItemService(items repositories.ItemRepository, merchants repositories.MerchantRepository, events EventPublisher, log zerolog.Logger) *ItemService {
	return &ItemService{
		items:     items,
		merchants: merchants,
		notifier:  notifier{events: events, log: log.With().Str("component", "item_service").Logger()},
	}
}

// GetAllItems retrieves all items.
func (s *ItemService) GetAllItems() ([]models.Item, error) {
	items, err := s.items.GetAll()
	if err != nil {
		return nil, internal("failed to list items", err)
	}
	return items, nil
}

// GetItemByID retrieves a single item, or a NotFound error.
func (s *ItemService) GetItemByID(id uint) (*models.Item, error) {
	item, err := s.items.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NewNotFound("Item", id)
		}
		return nil, internal("failed to get item", err)
	}
	return item, nil
}

// CreateItem validates params and stores a new item.
func (s *ItemService) CreateItem(params models.ItemParams) (*models.Item, error) {
	item := &models.Item{}
	fields, err := s.check(item, params, true)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		return nil, apperr.NewValidationFailed("item could not be created", fields)
	}

	if err := s.items.Create(item); err != nil {
		return nil, internal("failed to create item", err)
	}
	s.notifier.publish(EventItemCreated, item)
	return item, nil
}

// UpdateItem applies params to an existing item and re-validates it.
// Validation failures answered 404 in the legacy API.
func (s *ItemService) UpdateItem(id uint, params models.ItemParams) (*models.Item, error) {
	item, err := s.GetItemByID(id)
	if err != nil {
		return nil, err
	}

	fields, err := s.check(item, params, false)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		return nil, apperr.NewValidationFailed("item could not be updated", fields).
			WithLegacyStatus(http.StatusNotFound)
	}

	if err := s.items.Update(item); err != nil {
		if isNotFound(err) {
			return nil, apperr.NewNotFound("Item", id)
		}
		return nil, internal("failed to update item", err)
	}
	s.notifier.publish(EventItemUpdated, item)
	return item, nil
}

// DeleteItem removes an item and any invoice it was the only item of.
func (s *ItemService) DeleteItem(id uint) error {
	if err := s.items.Delete(id); err != nil {
		if isNotFound(err) {
			return apperr.NewNotFound("Item", id)
		}
		return internal("failed to delete item", err)
	}
	s.notifier.publish(EventItemDeleted, deletedEvent{ID: id})
	return nil
}

// GetItemMerchant returns the merchant selling the given item. A missing
// item is reported with the item's id.
func (s *ItemService) GetItemMerchant(itemID uint) (*models.Merchant, error) {
	item, err := s.items.GetByID(itemID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NewStoreNotFound("Item", itemID, err)
		}
		return nil, internal("failed to get item", err)
	}

	merchant, err := s.merchants.GetByID(item.MerchantID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NewStoreNotFound("Merchant", item.MerchantID, err)
		}
		return nil, internal("failed to get merchant", err)
	}
	return merchant, nil
}

// FindItem runs a resolved search. A nil item with a nil error means
// nothing matched.
func (s *ItemService) FindItem(q search.Query) (*models.Item, error) {
	var (
		item *models.Item
		err  error
	)
	switch q.Mode {
	case search.ByName:
		item, err = s.items.FindFirstByName(q.Name)
	case search.ByPriceMin:
		item, err = s.items.FindFirstByMinPrice(q.Min)
	case search.ByPriceMax:
		item, err = s.items.FindFirstByMaxPrice(q.Max)
	case search.ByPriceRange:
		item, err = s.items.FindFirstByPriceRange(q.Min, q.Max)
	default:
		return nil, internal("failed to search items", fmt.Errorf("unknown search mode %d", q.Mode))
	}
	if err != nil {
		return nil, internal("failed to search items", err)
	}
	return item, nil
}

// check applies params to item and collects every rule it breaks,
// including a merchant_id that does not resolve.
func (s *ItemService) check(item *models.Item, params models.ItemParams, creating bool) ([]apperr.FieldError, error) {
	fields := params.Apply(item, creating)
	if err := item.Validate(); err != nil {
		fields = append(fields, models.FieldErrors(err)...)
	}

	if item.MerchantID != 0 && (creating || params.MerchantID != nil) {
		exists, err := s.merchants.Exists(item.MerchantID)
		if err != nil {
			return nil, internal("failed to check merchant", err)
		}
		if !exists {
			fields = append(fields, apperr.FieldError{Field: "merchant_id", Error: "must reference an existing merchant"})
		}
	}
	return fields, nil
}
