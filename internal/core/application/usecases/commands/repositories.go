// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"melodia/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// InvoiceRepoFactory provides access to the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// TrackRepoFactory provides access to the track repository within a transaction.
	TrackRepoFactory interface {
		TrackRepository() ports.TrackRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by the lifecycle commands that touch a single order aggregate;
	// the order's pending audit entries ride in the same transaction.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderCartUoW manages transactions spanning orders and carts.
	// Used by cancellation, which purges the order from all carts in the
	// same transaction as the status change.
	OrderCartUoW interface {
		TxManager
		OrderRepoFactory
		CartRepoFactory
	}

	// OrderCartUoWFactory creates new order-and-cart unit of work instances.
	OrderCartUoWFactory interface {
		Create() OrderCartUoW
	}

	// CartUoW manages transactions for cart operations, which read orders
	// and tracks to validate the purchased subject.
	CartUoW interface {
		TxManager
		CartRepoFactory
		OrderRepoFactory
		TrackRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// InvoiceUoW manages transactions for invoice assembly, which reads
	// the invoiced order and draws the invoice number in the same
	// transaction as the insert.
	InvoiceUoW interface {
		TxManager
		InvoiceRepoFactory
		OrderRepoFactory
	}

	// InvoiceUoWFactory creates new invoice unit of work instances.
	InvoiceUoWFactory interface {
		Create() InvoiceUoW
	}
)
