package queries

import (
	"context"

	"gorm.io/gorm"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
)

// GetTableBoardQueryHandler reads the seating board, one row per table.
type GetTableBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetTableBoardQueryHandler creates a handler for seating board queries.
func NewGetTableBoardQueryHandler(db *gorm.DB) GetTableBoardQueryHandler {
	return GetTableBoardQueryHandler{db: db}
}

// Handle executes the query. Every table appears, free ones included, so
// the host stand sees the whole floor at once.
func (h GetTableBoardQueryHandler) Handle(
	ctx context.Context,
	query GetTableBoardQuery,
) ([]GetTableBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	board := make([]GetTableBoardQueryResponse, query.TableCount())
	for i := range board {
		board[i] = GetTableBoardQueryResponse{Table: i + 1}
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			dest_table,
			id,
			customer_name
		FROM orders
		WHERE dest_kind = ? AND status NOT IN (?, ?)
		ORDER BY dest_table
	`, kernel.DestinationTable, order.Delivered, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var table int
		var orderID, customerName string

		if err = rows.Scan(&table, &orderID, &customerName); err != nil {
			return nil, err
		}

		if table < 1 || table > query.TableCount() {
			continue
		}

		board[table-1].Occupied = true
		board[table-1].OrderID = orderID
		board[table-1].CustomerName = customerName
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}
