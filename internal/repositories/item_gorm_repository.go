package repositories

import (
	"errors"
	"fmt"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// GORMItemRepository is a GORM implementation of ItemRepository.
type GORMItemRepository struct {
	db *gorm.DB
}

// NewGORMItemRepository creates a new instance of GORMItemRepository.
func NewGORMItemRepository(db *gorm.DB) *GORMItemRepository {
	return &GORMItemRepository{
		db: db,
	}
}

// GetAll retrieves all items ordered by id.
func (r *GORMItemRepository) GetAll() ([]models.Item, error) {
	var items []models.Item
	if err := r.db.Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get all items: %w", err)
	}
	return items, nil
}

// GetByID retrieves a single item by its ID.
func (r *GORMItemRepository) GetByID(id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get item by ID %d: %w", id, err)
	}
	return &item, nil
}

// GetByMerchant retrieves the items sold by a merchant.
func (r *GORMItemRepository) GetByMerchant(merchantID uint) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.Where("merchant_id = ?", merchantID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get items for merchant %d: %w", merchantID, err)
	}
	return items, nil
}

// Create creates a new item in the database.
func (r *GORMItemRepository) Create(item *models.Item) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// Update writes every attribute of an existing item, zero values included.
func (r *GORMItemRepository) Update(item *models.Item) error {
	res := r.db.Model(&models.Item{ID: item.ID}).
		Select("name", "description", "unit_price", "merchant_id", "updated_at").
		Updates(item)
	if res.Error != nil {
		return fmt.Errorf("failed to update item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("item with ID %d for update: %w", item.ID, ErrNotFound)
	}
	return nil
}

// Delete removes an item. Invoices whose only item is this one go with it;
// invoices that still list other items only lose their lines for it.
func (r *GORMItemRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Item{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("item with ID %d for deletion: %w", id, ErrNotFound)
		}

		invoices, err := invoicesForItem(tx, id)
		if err != nil {
			return err
		}

		emptied := make([]uint, 0, len(invoices))
		for i := range invoices {
			if invoices[i].HasOneItem() {
				emptied = append(emptied, invoices[i].ID)
			}
		}
		if len(emptied) > 0 {
			if err := tx.Where("invoice_id IN ?", emptied).Delete(&models.InvoiceItem{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.Invoice{}, emptied).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("item_id = ?", id).Delete(&models.InvoiceItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Item{}, id).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete item %d: %w", id, err)
	}
	return nil
}

// FindFirstByName returns the first item, by name, whose name contains fragment.
func (r *GORMItemRepository) FindFirstByName(fragment string) (*models.Item, error) {
	return r.first(r.db.Where(nameContains, containsPattern(fragment)), "name")
}

// FindFirstByMinPrice returns the first item, by name, priced at least min.
func (r *GORMItemRepository) FindFirstByMinPrice(min float64) (*models.Item, error) {
	return r.first(r.db.Where("unit_price >= ?", min), "min price")
}

// FindFirstByMaxPrice returns the first item, by name, priced at most max.
func (r *GORMItemRepository) FindFirstByMaxPrice(max float64) (*models.Item, error) {
	return r.first(r.db.Where("unit_price <= ?", max), "max price")
}

// FindFirstByPriceRange returns the first item, by name, priced within [min, max].
func (r *GORMItemRepository) FindFirstByPriceRange(min, max float64) (*models.Item, error) {
	return r.first(r.db.Where("unit_price >= ? AND unit_price <= ?", min, max), "price range")
}

func (r *GORMItemRepository) first(scope *gorm.DB, mode string) (*models.Item, error) {
	var items []models.Item
	if err := scope.Order(byName).Limit(1).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to search items by %s: %w", mode, err)
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}
