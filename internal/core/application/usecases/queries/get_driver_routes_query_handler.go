package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"resto/internal/core/domain/model/driver"
	"resto/internal/core/domain/model/order"
)

// GetDriverRoutesQueryHandler joins busy drivers to their out-for-delivery
// order. A busy driver with no matching order shows up with empty order
// fields rather than being hidden.
type GetDriverRoutesQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverRoutesQueryHandler creates a handler for driver route queries.
func NewGetDriverRoutesQueryHandler(db *gorm.DB) GetDriverRoutesQueryHandler {
	return GetDriverRoutesQueryHandler{db: db}
}

// Handle executes the query, sorted by driver name.
func (h GetDriverRoutesQueryHandler) Handle(
	ctx context.Context,
	query GetDriverRoutesQuery,
) ([]GetDriverRoutesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	routes := make([]GetDriverRoutesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.name,
			d.phone,
			d.vehicle,
			COALESCE(o.id, ''),
			COALESCE(o.dest_address, ''),
			COALESCE(o.customer_name, ''),
			o.dispatched_at
		FROM drivers d
		LEFT JOIN orders o ON o.driver_id = d.id AND o.status = ?
		WHERE d.status = ?
		ORDER BY d.name, d.id
	`, order.Delivery, driver.Busy).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDriverRoutesQueryResponse
		var vehicle int
		var dispatchedAt *time.Time

		err = rows.Scan(
			&resp.DriverID,
			&resp.DriverName,
			&resp.DriverPhone,
			&vehicle,
			&resp.OrderID,
			&resp.Address,
			&resp.CustomerName,
			&dispatchedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.Vehicle = driver.VehicleType(vehicle).String()

		if dispatchedAt != nil {
			onRoute := query.Now().Sub(*dispatchedAt)
			if onRoute > 0 {
				resp.RouteMinutes = int(onRoute / time.Minute)
			}
		}

		routes = append(routes, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}
