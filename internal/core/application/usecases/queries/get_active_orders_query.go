// Package queries contains read operations over the order ledger and the
// driver roster. Implements the Query side of the CQRS architecture:
// handlers read raw SQL into flat response models, bypassing the domain
// aggregates entirely.
package queries

import (
	"errors"
	"time"

	"resto/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves the full board of non-terminal orders.
// Clients filter per surface themselves; the board is small enough that
// no pagination is offered.
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for the active order board.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// LineItemResponse is one dish line on an order read model.
type LineItemResponse struct {
	Name           string
	Variation      string
	UnitPriceCents int64
	Quantity       int
	Stale          bool
}

// GetActiveOrdersQueryResponse is a flat read model of one active order.
type GetActiveOrdersQueryResponse struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	Destination   string
	Channel       string
	Status        string
	PaymentStatus string
	TotalCents    int64
	CreatedAt     time.Time
	Items         []LineItemResponse
}
