package repositories

import (
	"catalog/internal/models"
)

// InvoiceRepository defines the interface for invoice data access.
type InvoiceRepository interface {
	Create(invoice *models.Invoice) error
	GetByItem(itemID uint) ([]models.Invoice, error)
}
