package queries

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
)

// GetActiveOrdersQueryHandler reads all non-terminal orders with their
// line items from the database.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back oldest first; line items
// keep their intake ordering.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)
	indexByID := make(map[string]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			customer_phone,
			dest_kind,
			dest_table,
			dest_address,
			channel,
			status,
			payment_status,
			total_cents,
			created_at
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY created_at, id
	`, order.Delivered, order.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var destKind, status, paymentStatus, channel int
		var destTable int
		var destAddress string
		var createdAt time.Time

		err = rows.Scan(
			&resp.ID,
			&resp.CustomerName,
			&resp.CustomerPhone,
			&destKind,
			&destTable,
			&destAddress,
			&channel,
			&status,
			&paymentStatus,
			&resp.TotalCents,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		resp.Destination = formatDestination(destKind, destTable, destAddress)
		resp.Channel = order.Channel(channel).String()
		resp.Status = order.Status(status).String()
		resp.PaymentStatus = order.PaymentStatus(paymentStatus).String()
		resp.CreatedAt = createdAt
		resp.Items = make([]LineItemResponse, 0)

		indexByID[resp.ID] = len(orders)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err = h.attachItems(ctx, orders, indexByID); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems loads line items for the already-selected orders and slots
// each under its parent.
func (h GetActiveOrdersQueryHandler) attachItems(
	ctx context.Context,
	orders []GetActiveOrdersQueryResponse,
	indexByID map[string]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			li.order_id,
			li.name,
			li.variation,
			li.unit_price_cents,
			li.quantity,
			li.stale
		FROM line_items li
		JOIN orders o ON o.id = li.order_id
		WHERE o.status NOT IN (?, ?)
		ORDER BY li.order_id, li.id
	`, order.Delivered, order.Cancelled).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var item LineItemResponse

		err = rows.Scan(
			&orderID,
			&item.Name,
			&item.Variation,
			&item.UnitPriceCents,
			&item.Quantity,
			&item.Stale,
		)
		if err != nil {
			return err
		}

		idx, ok := indexByID[orderID]
		if !ok {
			continue
		}
		orders[idx].Items = append(orders[idx].Items, item)
	}

	return rows.Err()
}

// formatDestination renders the destination columns into display text.
func formatDestination(kind, table int, address string) string {
	switch kernel.DestinationKind(kind) {
	case kernel.DestinationTable:
		return fmt.Sprintf("Table %d", table)
	case kernel.DestinationCounter:
		return "Counter"
	case kernel.DestinationAddress:
		return address
	default:
		return "Unknown"
	}
}
