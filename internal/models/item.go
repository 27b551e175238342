package models

import (
	"time"

	"catalog/internal/apperr"
)

// Item is a product sold by exactly one merchant.
type Item struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null;index" validate:"required,notblank"`
	Description string    `json:"description" gorm:"type:text;not null" validate:"required,notblank"`
	UnitPrice   float64   `json:"unit_price" gorm:"not null;index"`
	MerchantID  uint      `json:"merchant_id" gorm:"not null;index" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks the item against its field rules. The unit price is
// checked when the payload is applied, since any float is a valid price.
func (i *Item) Validate() error {
	return validate.Struct(i)
}

// ItemParams is the create/update payload for an item. UnitPrice stays
// untyped so both JSON numbers and numeric strings are accepted.
type ItemParams struct {
	Name        *string     `json:"name"`
	Description *string     `json:"description"`
	UnitPrice   interface{} `json:"unit_price"`
	MerchantID  *uint       `json:"merchant_id"`
}

// Apply copies the supplied fields onto item. When requirePrice is set a
// missing unit price is reported too. The returned field errors are empty
// when every supplied value could be read.
func (p ItemParams) Apply(item *Item, requirePrice bool) []apperr.FieldError {
	var fields []apperr.FieldError

	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.MerchantID != nil {
		item.MerchantID = *p.MerchantID
	}

	switch {
	case p.UnitPrice != nil:
		price, err := ParsePrice(p.UnitPrice)
		if err != nil {
			fields = append(fields, apperr.FieldError{Field: "unit_price", Error: "is not a number"})
			break
		}
		item.UnitPrice = price
	case requirePrice:
		fields = append(fields, apperr.FieldError{Field: "unit_price", Error: "is required"})
	}

	return fields
}
