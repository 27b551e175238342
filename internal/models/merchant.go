package models

import "time"

// Merchant sells items and issues invoices.
type Merchant struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null;index" validate:"required,notblank"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the merchant against its field rules.
func (m *Merchant) Validate() error {
	return validate.Struct(m)
}

// MerchantParams is the create/update payload for a merchant. Nil fields
// are left untouched on update.
type MerchantParams struct {
	Name *string `json:"name"`
}

// Apply copies the supplied fields onto m.
func (p MerchantParams) Apply(m *Merchant) {
	if p.Name != nil {
		m.Name = *p.Name
	}
}
