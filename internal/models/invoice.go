package models

import "time"

// Invoice groups the items of a single sale.
type Invoice struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	MerchantID   uint          `json:"merchant_id" gorm:"not null;index"`
	Status       string        `json:"status" gorm:"type:varchar(32);not null;default:shipped"`
	InvoiceItems []InvoiceItem `json:"invoice_items,omitempty" gorm:"foreignKey:InvoiceID"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// InvoiceItem is one line of an invoice.
type InvoiceItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	InvoiceID uint    `json:"invoice_id" gorm:"not null;index"`
	ItemID    uint    `json:"item_id" gorm:"not null;index"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// HasOneItem reports whether the invoice references at most one distinct
// item. An invoice without lines counts as having one.
func (inv *Invoice) HasOneItem() bool {
	seen := make(map[uint]struct{}, len(inv.InvoiceItems))
	for _, line := range inv.InvoiceItems {
		seen[line.ItemID] = struct{}{}
	}
	return len(seen) <= 1
}
