package main

import (
	"fmt"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"gorm.io/gorm"
)

// seed populates an empty database with a few merchants, items and one
// invoice. A database that already has merchants is left alone.
func seed(db *gorm.DB) error {
	var (
		merchantRepo repositories.MerchantRepository = repositories.NewGORMMerchantRepository(db)
		itemRepo     repositories.ItemRepository     = repositories.NewGORMItemRepository(db)
		invoiceRepo  repositories.InvoiceRepository  = repositories.NewGORMInvoiceRepository(db)
	)

	existing, err := merchantRepo.GetAll()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	merchants := []models.Merchant{
		{Name: "Schroeder-Jerde"},
		{Name: "Klein, Rempel and Jones"},
		{Name: "Willms and Sons"},
	}
	for i := range merchants {
		if err := merchantRepo.Create(&merchants[i]); err != nil {
			return fmt.Errorf("seeding merchant %q: %w", merchants[i].Name, err)
		}
	}

	items := []models.Item{
		{Name: "Item Qui Esse", Description: "Nihil autem sit odio inventore deleniti.", UnitPrice: 751.07, MerchantID: merchants[0].ID},
		{Name: "Item Autem Minima", Description: "Cumque consequuntur ad.", UnitPrice: 670.76, MerchantID: merchants[0].ID},
		{Name: "Item Ea Voluptatum", Description: "Sunt officia eum qui molestiae.", UnitPrice: 323.01, MerchantID: merchants[1].ID},
		{Name: "Item Nemo Facere", Description: "Sunt eum id eius magni consequuntur.", UnitPrice: 42.91, MerchantID: merchants[2].ID},
	}
	for i := range items {
		if err := itemRepo.Create(&items[i]); err != nil {
			return fmt.Errorf("seeding item %q: %w", items[i].Name, err)
		}
	}

	invoice := models.Invoice{
		MerchantID: merchants[0].ID,
		InvoiceItems: []models.InvoiceItem{
			{ItemID: items[0].ID, Quantity: 5, UnitPrice: items[0].UnitPrice},
			{ItemID: items[1].ID, Quantity: 9, UnitPrice: items[1].UnitPrice},
		},
	}
	return invoiceRepo.Create(&invoice)
}
