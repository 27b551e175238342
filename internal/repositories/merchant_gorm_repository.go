package repositories

import (
	"errors"
	"fmt"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// GORMMerchantRepository is a GORM implementation of MerchantRepository.
type GORMMerchantRepository struct {
	db *gorm.DB
}

// NewGORMMerchantRepository creates a new instance of GORMMerchantRepository.
func NewGORMMerchantRepository(db *gorm.DB) *GORMMerchantRepository {
	return &GORMMerchantRepository{
		db: db,
	}
}

// GetAll retrieves all merchants ordered by id.
func (r *GORMMerchantRepository) GetAll() ([]models.Merchant, error) {
	var merchants []models.Merchant
	if err := r.db.Order("id ASC").Find(&merchants).Error; err != nil {
		return nil, fmt.Errorf("failed to get all merchants: %w", err)
	}
	return merchants, nil
}

// GetByID retrieves a single merchant by its ID.
func (r *GORMMerchantRepository) GetByID(id uint) (*models.Merchant, error) {
	var merchant models.Merchant
	if err := r.db.First(&merchant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("merchant with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get merchant by ID %d: %w", id, err)
	}
	return &merchant, nil
}

// Exists reports whether a merchant with the given ID is stored.
func (r *GORMMerchantRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Merchant{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check merchant %d: %w", id, err)
	}
	return count > 0, nil
}

// Create creates a new merchant in the database.
func (r *GORMMerchantRepository) Create(merchant *models.Merchant) error {
	if err := r.db.Create(merchant).Error; err != nil {
		return fmt.Errorf("failed to create merchant: %w", err)
	}
	return nil
}

// Update writes the attributes of an existing merchant.
func (r *GORMMerchantRepository) Update(merchant *models.Merchant) error {
	res := r.db.Model(&models.Merchant{ID: merchant.ID}).
		Select("name", "updated_at").
		Updates(merchant)
	if res.Error != nil {
		return fmt.Errorf("failed to update merchant: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("merchant with ID %d for update: %w", merchant.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a merchant with everything it owns.
func (r *GORMMerchantRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Merchant{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("merchant with ID %d for deletion: %w", id, ErrNotFound)
		}

		invoices := tx.Model(&models.Invoice{}).Select("id").Where("merchant_id = ?", id)
		items := tx.Model(&models.Item{}).Select("id").Where("merchant_id = ?", id)

		if err := tx.Where("invoice_id IN (?) OR item_id IN (?)", invoices, items).Delete(&models.InvoiceItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("merchant_id = ?", id).Delete(&models.Invoice{}).Error; err != nil {
			return err
		}
		if err := tx.Where("merchant_id = ?", id).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Merchant{}, id).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete merchant %d: %w", id, err)
	}
	return nil
}

// FindAllByName returns every merchant whose name contains fragment.
func (r *GORMMerchantRepository) FindAllByName(fragment string) ([]models.Merchant, error) {
	var merchants []models.Merchant
	if err := r.db.Where(nameContains, containsPattern(fragment)).Order(byName).Find(&merchants).Error; err != nil {
		return nil, fmt.Errorf("failed to search merchants by name: %w", err)
	}
	return merchants, nil
}
