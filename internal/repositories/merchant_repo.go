package repositories

import (
	"catalog/internal/models"
)

// MerchantRepository defines the interface for merchant data access.
type MerchantRepository interface {
	GetAll() ([]models.Merchant, error)
	GetByID(id uint) (*models.Merchant, error)
	Exists(id uint) (bool, error)
	Create(merchant *models.Merchant) error
	Update(merchant *models.Merchant) error
	// Delete removes the merchant, its items, its invoices and their lines.
	Delete(id uint) error
	// FindAllByName returns every merchant whose name contains fragment,
	// ordered by name.
	FindAllByName(fragment string) ([]models.Merchant, error)
}
