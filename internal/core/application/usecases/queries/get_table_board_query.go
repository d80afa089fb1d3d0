package queries

import (
	"errors"

	"resto/internal/pkg/errs"
	"resto/internal/pkg/guard"
)

var ErrGetTableBoardQueryIsNotConstructed = errors.New(
	"GetTableBoardQuery must be created via NewGetTableBoardQuery constructor",
)

// GetTableBoardQuery retrieves the seating board. A table is occupied
// exactly while a non-terminal order references it; release and
// cancellation free it with no extra bookkeeping.
//
//nolint:recvcheck //using for validation
type GetTableBoardQuery struct {
	tableCount int

	guard guard.ConstructorGuard
}

// NewGetTableBoardQuery creates a seating board query covering tables
// 1 through tableCount.
func NewGetTableBoardQuery(tableCount int) (GetTableBoardQuery, error) {
	if tableCount <= 0 {
		return GetTableBoardQuery{}, errs.NewValueIsInvalidError("tableCount")
	}

	return GetTableBoardQuery{
		tableCount: tableCount,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTableBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetTableBoardQueryIsNotConstructed)
}

// TableCount returns how many tables the board covers.
func (q GetTableBoardQuery) TableCount() int {
	return q.tableCount
}

// GetTableBoardQueryResponse is one table's seating state. OrderID and
// CustomerName are empty while the table is free.
type GetTableBoardQueryResponse struct {
	Table        int
	Occupied     bool
	OrderID      string
	CustomerName string
}
