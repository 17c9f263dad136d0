package invoicerepo

import (
	"context"
	"errors"

	"melodia/internal/core/domain/model/invoice"
	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInvoiceRepository implements InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB, tracker aggregateTracker) *GormInvoiceRepository {
	return &GormInvoiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly assembled invoice with its lines.
func (r *GormInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, itemDTOs := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&itemDTOs).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an invoice by ID, lines included.
func (r *GormInvoiceRepository) Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InvoiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("invoice", id.String())
		}
		return nil, err
	}

	itemDTOs, err := r.loadItems(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, itemDTOs)
}

// GetAllByCustomer retrieves the customer's invoices, newest first.
func (r *GormInvoiceRepository) GetAllByCustomer(
	ctx context.Context, customerID kernel.UUID,
) ([]*invoice.Invoice, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []InvoiceDTO
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.String()).
		Order("issued_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	invoices := make([]*invoice.Invoice, 0, len(dtos))
	for _, dto := range dtos {
		itemDTOs, itemErr := r.loadItems(ctx, dto.ID)
		if itemErr != nil {
			return nil, itemErr
		}
		inv, invErr := toDomain(dto, itemDTOs)
		if invErr != nil {
			return nil, invErr
		}
		invoices = append(invoices, inv)
	}

	return invoices, nil
}

// NextNumber atomically draws the next value of the per-year sequence and
// returns it formatted. The upsert takes a row lock on the year, so two
// concurrent transactions can never observe the same value; a rollback of
// the surrounding transaction releases the draw.
func (r *GormInvoiceRepository) NextNumber(ctx context.Context, year int) (string, error) {
	var value int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO invoice_sequences (year, value)
		VALUES (?, 1)
		ON CONFLICT (year) DO UPDATE SET value = invoice_sequences.value + 1
		RETURNING value
	`, year).Scan(&value).Error
	if err != nil {
		return "", err
	}

	return invoice.FormatNumber(year, value), nil
}

func (r *GormInvoiceRepository) loadItems(ctx context.Context, invoiceID string) ([]InvoiceItemDTO, error) {
	var itemDTOs []InvoiceItemDTO
	err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("position").
		Find(&itemDTOs).Error
	if err != nil {
		return nil, err
	}
	return itemDTOs, nil
}
