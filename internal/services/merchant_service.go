package services

import (
	"net/http"

	"catalog/internal/apperr"
	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/rs/zerolog"
)

// MerchantService handles business logic related to merchants.
type MerchantService struct {
	merchants repositories.MerchantRepository
	items     repositories.ItemRepository
	notifier  notifier
}

// NewMerchantService creates a new MerchantService. events may be nil.
func NewMerchantService(merchants repositories.MerchantRepository, items repositories.ItemRepository, events EventPublisher, log zerolog.Logger) *MerchantService {
	return &MerchantService{
		merchants: merchants,
		items:     items,
		notifier:  notifier{events: events, log: log.With().Str("component", "merchant_service").Logger()},
	}
}

// GetAllMerchants retrieves all merchants.
func (s *MerchantService) GetAllMerchants() ([]models.Merchant, error) {
	merchants, err := s.merchants.GetAll()
	if err != nil {
		return nil, internal("failed to list merchants", err)
	}
	return merchants, nil
}

// GetMerchantByID retrieves a single merchant, or a NotFound error.
func (s *MerchantService) GetMerchantByID(id uint) (*models.Merchant, error) {
	merchant, err := s.merchants.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NewNotFound("Merchant", id)
		}
		return nil, internal("failed to get merchant", err)
	}
	return merchant, nil
}

// CreateMerchant validates params and stores a new merchant.
func (s *MerchantService) CreateMerchant(params models.MerchantParams) (*models.Merchant, error) {
	merchant := &models.Merchant{}
	params.Apply(merchant)
	if err := merchant.Validate(); err != nil {
		return nil, apperr.NewValidationFailed("merchant could not be created", models.FieldErrors(err))
	}

	if err := s.merchants.Create(merchant); err != nil {
		return nil, internal("failed to create merchant", err)
	}
	s.notifier.publish(EventMerchantCreated, merchant)
	return merchant, nil
}

// UpdateMerchant applies params to an existing merchant and re-validates it.
func (s *MerchantService) UpdateMerchant(id uint, params models.MerchantParams) (*models.Merchant, error) {
	merchant, err := s.GetMerchantByID(id)
	if err != nil {
		return nil, err
	}

	params.Apply(merchant)
	if err := merchant.Validate(); err != nil {
		return nil, apperr.NewValidationFailed("merchant could not be updated", models.FieldErrors(err)).
			WithLegacyStatus(http.StatusNotFound)
	}

	if err := s.merchants.Update(merchant); err != nil {
		if isNotFound(err) {
			return nil, apperr.NewNotFound("Merchant", id)
		}
		return nil, internal("failed to update merchant", err)
	}
	s.notifier.publish(EventMerchantUpdated, merchant)
	return merchant, nil
}

// DeleteMerchant removes a merchant with its items and invoices.
func (s *MerchantService) DeleteMerchant(id uint) error {
	if err := s.merchants.Delete(id); err != nil {
		if isNotFound(err) {
			return apperr.NewNotFound("Merchant", id)
		}
		return internal("failed to delete merchant", err)
	}
	s.notifier.publish(EventMerchantDeleted, deletedEvent{ID: id})
	return nil
}

// GetMerchantItems lists the items a merchant sells.
func (s *MerchantService) GetMerchantItems(id uint) ([]models.Item, error) {
	exists, err := s.merchants.Exists(id)
	if err != nil {
		return nil, internal("failed to check merchant", err)
	}
	if !exists {
		return nil, apperr.NewStoreNotFound("Merchant", id, repositories.ErrNotFound)
	}

	items, err := s.items.GetByMerchant(id)
	if err != nil {
		return nil, internal("failed to list merchant items", err)
	}
	return items, nil
}

// FindMerchants returns every merchant whose name contains name.
func (s *MerchantService) FindMerchants(name string) ([]models.Merchant, error) {
	merchants, err := s.merchants.FindAllByName(name)
	if err != nil {
		return nil, internal("failed to search merchants", err)
	}
	return merchants, nil
}
