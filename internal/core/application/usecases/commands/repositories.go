// Package commands contains business operations that modify the order
// ledger and driver roster. Implements the Command pattern for write
// operations in the CQRS architecture. All commands follow a consistent
// pattern: validation, gate checks, transaction management, persistence,
// and a ledger-change notification after commit.
package commands

import (
	"context"

	"resto/internal/core/ports"
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

	// OrderRepoFactory provides access to the order ledger within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DriverRepoFactory provides access to the driver roster within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// StaffRepoFactory provides read access to the staff roster within a transaction.
	StaffRepoFactory interface {
		StaffRepository() ports.StaffRepository
	}

	// OrderUoW manages transactions for ledger-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new ledger unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderStaffUoW manages transactions for gated ledger operations that
	// resolve waiter or admin credentials alongside the order.
	OrderStaffUoW interface {
		TxManager
		OrderRepoFactory
		StaffRepoFactory
	}

	// OrderStaffUoWFactory creates new gated unit of work instances.
	OrderStaffUoWFactory interface {
		Create() OrderStaffUoW
	}

	// OrderDriverUoW manages transactions coordinating the ledger and the
	// driver roster, used by dispatch and delivery completion.
	OrderDriverUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
	}

	// OrderDriverUoWFactory creates new dispatch unit of work instances.
	OrderDriverUoWFactory interface {
		Create() OrderDriverUoW
	}

	// FullUoW manages transactions spanning all three stores, used by
	// cancellation which may free a driver under the admin gate.
	FullUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
		StaffRepoFactory
	}

	// FullUoWFactory creates new full unit of work instances.
	FullUoWFactory interface {
		Create() FullUoW
	}
)
