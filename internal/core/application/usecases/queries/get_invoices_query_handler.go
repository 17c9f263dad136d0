package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetInvoicesQueryHandler lists a customer's invoices with their lines.
type GetInvoicesQueryHandler struct {
	db *gorm.DB
}

// NewGetInvoicesQueryHandler creates a handler for invoice list queries.
func NewGetInvoicesQueryHandler(db *gorm.DB) GetInvoicesQueryHandler {
	return GetInvoicesQueryHandler{db: db}
}

// Handle executes the query and returns the customer's invoices.
func (h GetInvoicesQueryHandler) Handle(ctx context.Context, query GetInvoicesQuery) ([]InvoiceResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	invoices := make([]InvoiceResponse, 0)
	index := make(map[string]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			order_id,
			subtotal,
			tax,
			total,
			issued_at
		FROM invoices
		WHERE customer_id = ?
		ORDER BY issued_at DESC
	`, query.CustomerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp InvoiceResponse
		var orderID sql.NullString

		err = rows.Scan(
			&resp.ID,
			&resp.Number,
			&orderID,
			&resp.Subtotal,
			&resp.Tax,
			&resp.Total,
			&resp.IssuedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.OrderID = orderID.String
		resp.Items = make([]InvoiceItemResponse, 0)
		index[resp.ID] = len(invoices)
		invoices = append(invoices, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(invoices) == 0 {
		return invoices, nil
	}

	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ii.invoice_id,
			ii.description,
			ii.amount
		FROM invoice_items ii
		JOIN invoices i ON i.id = ii.invoice_id
		WHERE i.customer_id = ?
		ORDER BY ii.invoice_id, ii.position
	`, query.CustomerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var invoiceID string
		var item InvoiceItemResponse
		if err = itemRows.Scan(&invoiceID, &item.Description, &item.Amount); err != nil {
			return nil, err
		}
		if i, ok := index[invoiceID]; ok {
			invoices[i].Items = append(invoices[i].Items, item)
		}
	}
	if err = itemRows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}
