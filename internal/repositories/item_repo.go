package repositories

import (
	"errors"

	"catalog/internal/models"
)

// ErrNotFound is wrapped by every repository lookup that finds no row.
var ErrNotFound = errors.New("record not found")

// ItemRepository defines the interface for item data access.
//
// The FindFirst methods return the alphabetically first matching item, or
// nil with a nil error when nothing matches.
type ItemRepository interface {
	GetAll() ([]models.Item, error)
	GetByID(id uint) (*models.Item, error)
	GetByMerchant(merchantID uint) ([]models.Item, error)
	Create(item *models.Item) error
	Update(item *models.Item) error
	// Delete removes the item together with every invoice left without
	// other items, in one transaction.
	Delete(id uint) error

	FindFirstByName(fragment string) (*models.Item, error)
	FindFirstByMinPrice(min float64) (*models.Item, error)
	FindFirstByMaxPrice(max float64) (*models.Item, error)
	FindFirstByPriceRange(min, max float64) (*models.Item, error)
}
