package postgres

import (
	"melodia/internal/adapters/out/postgres/cartrepo"
	"melodia/internal/adapters/out/postgres/invoicerepo"
	"melodia/internal/adapters/out/postgres/orderrepo"
	"melodia/internal/adapters/out/postgres/trackrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persistence DTO.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.HistoryEntryDTO{},
		&cartrepo.CartItemDTO{},
		&invoicerepo.InvoiceDTO{},
		&invoicerepo.InvoiceItemDTO{},
		&invoicerepo.SequenceDTO{},
		&trackrepo.TrackDTO{},
		&trackrepo.TrackPriceDTO{},
	)
}
