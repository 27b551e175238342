package repositories

import (
	"fmt"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// GORMInvoiceRepository is a GORM implementation of InvoiceRepository.
type GORMInvoiceRepository struct {
	db *gorm.DB
}

// NewGORMInvoiceRepository creates a new instance of GORMInvoiceRepository.
func NewGORMInvoiceRepository(db *gorm.DB) *GORMInvoiceRepository {
	return &GORMInvoiceRepository{
		db: db,
	}
}

// Create stores an invoice together with its lines.
func (r *GORMInvoiceRepository) Create(invoice *models.Invoice) error {
	if err := r.db.Create(invoice).Error; err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	return nil
}

// GetByItem retrieves every invoice with a line for the given item.
func (r *GORMInvoiceRepository) GetByItem(itemID uint) ([]models.Invoice, error) {
	invoices, err := invoicesForItem(r.db, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoices for item %d: %w", itemID, err)
	}
	return invoices, nil
}

// invoicesForItem loads, with their lines, the invoices that list itemID.
// db may be a transaction.
func invoicesForItem(db *gorm.DB, itemID uint) ([]models.Invoice, error) {
	var invoices []models.Invoice
	linked := db.Model(&models.InvoiceItem{}).Select("invoice_id").Where("item_id = ?", itemID)
	err := db.Preload("InvoiceItems").Where("id IN (?)", linked).Order("id ASC").Find(&invoices).Error
	return invoices, err
}
