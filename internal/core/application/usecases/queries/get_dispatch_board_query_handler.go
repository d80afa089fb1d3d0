package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
)

// GetDispatchBoardQueryHandler reads the logistics board: Ready orders
// headed off premises, oldest wait first.
type GetDispatchBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetDispatchBoardQueryHandler creates a handler for dispatch board queries.
func NewGetDispatchBoardQueryHandler(db *gorm.DB) GetDispatchBoardQueryHandler {
	return GetDispatchBoardQueryHandler{db: db}
}

// Handle executes the query. Wait is truncated to whole minutes.
func (h GetDispatchBoardQueryHandler) Handle(
	ctx context.Context,
	query GetDispatchBoardQuery,
) ([]GetDispatchBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	board := make([]GetDispatchBoardQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			dest_address,
			dest_note,
			total_cents,
			created_at
		FROM orders
		WHERE status = ? AND dest_kind = ?
		ORDER BY created_at, id
	`, order.Ready, kernel.DestinationAddress).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDispatchBoardQueryResponse
		var createdAt time.Time

		err = rows.Scan(
			&resp.ID,
			&resp.CustomerName,
			&resp.Address,
			&resp.Note,
			&resp.TotalCents,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		wait := query.Now().Sub(createdAt)
		if wait < 0 {
			wait = 0
		}
		resp.WaitMinutes = int(wait / time.Minute)
		resp.Urgent = wait >= query.UrgentThreshold()

		board = append(board, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}
