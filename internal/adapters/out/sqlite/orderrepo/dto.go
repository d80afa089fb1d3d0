// Package orderrepo provides data transfer objects and mapping functions
// for order ledger persistence. It implements the repository pattern for
// the order aggregate, converting between domain entities and their
// relational representation.
package orderrepo

import (
	"time"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"
)

// OrderDTO is the database row for one ledger order. Line items live in
// their own table keyed by the ticket identifier; payment fields are
// flattened into the order row since settlement is one-to-one.
type OrderDTO struct {
	ID            string `gorm:"primaryKey"`
	CustomerName  string
	CustomerPhone string
	DestKind      int `gorm:"index"`
	DestTable     int `gorm:"column:dest_table;index"`
	DestAddress   string
	DestNote      string
	Channel       int
	TotalCents    int64
	Status        int `gorm:"index"`

	PaymentMethod     int
	PaymentStatus     int `gorm:"index"`
	CashReceivedCents *int64
	ChangeCents       *int64
	PaymentReference  string
	PaidAt            *time.Time

	DriverID     *string `gorm:"index"`
	WaiterID     *string
	CreatedAt    time.Time
	DispatchedAt *time.Time
	Version      int64

	Items []LineItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one dish line belonging to an order. The autoincrement
// id preserves intake ordering across reloads.
type LineItemDTO struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	OrderID        string `gorm:"index"`
	Name           string
	Variation      string
	UnitPriceCents int64
	Quantity       int
	Stale          bool
}

// TableName overrides GORM's default naming to use "line_items".
func (LineItemDTO) TableName() string {
	return "line_items"
}

// TicketCounterDTO is the single-row counter backing ticket sequencing.
type TicketCounterDTO struct {
	ID        int `gorm:"primaryKey"`
	NextValue int64
}

// TableName overrides GORM's default naming to use "ticket_counters".
func (TicketCounterDTO) TableName() string {
	return "ticket_counters"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dest := aggregate.Destination()
	payment := aggregate.Payment()

	dto := OrderDTO{
		ID:            aggregate.ID().String(),
		CustomerName:  aggregate.CustomerName(),
		CustomerPhone: aggregate.CustomerPhone(),
		DestKind:      int(dest.Kind()),
		DestTable:     dest.Table(),
		DestAddress:   dest.Address(),
		DestNote:      dest.Note(),
		Channel:       int(aggregate.Channel()),
		TotalCents:    aggregate.Total().Cents(),
		Status:        int(aggregate.Status()),

		PaymentMethod:    int(payment.Method()),
		PaymentStatus:    int(payment.Status()),
		PaymentReference: payment.Reference(),
		PaidAt:           payment.PaidAt(),

		CreatedAt:    aggregate.CreatedAt(),
		DispatchedAt: aggregate.DispatchedAt(),
		Version:      aggregate.Version(),
	}

	if received := payment.CashReceived(); received != nil {
		cents := received.Cents()
		dto.CashReceivedCents = &cents
	}

	if change := payment.Change(); change != nil {
		cents := change.Cents()
		dto.ChangeCents = &cents
	}

	if driverID := aggregate.Driver(); driverID != nil {
		s := driverID.String()
		dto.DriverID = &s
	}

	if waiterID := aggregate.Waiter(); waiterID != nil {
		s := waiterID.String()
		dto.WaiterID = &s
	}

	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, LineItemDTO{
			OrderID:        dto.ID,
			Name:           item.Name(),
			Variation:      item.Variation(),
			UnitPriceCents: item.UnitPrice().Cents(),
			Quantity:       item.Quantity(),
			Stale:          item.IsStale(),
		})
	}

	return dto
}

// toDomain converts a database row back into an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewTicketID(dto.ID)
	if err != nil {
		return nil, err
	}

	dest, err := destinationFromRow(dto)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, row := range dto.Items {
		price, priceErr := kernel.NewMoney(row.UnitPriceCents)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.RestoreLineItem(row.Name, row.Variation, price, row.Quantity, row.Stale)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	payment, err := paymentFromRow(dto)
	if err != nil {
		return nil, err
	}

	driverID, err := uuidFromColumn(dto.DriverID)
	if err != nil {
		return nil, err
	}

	waiterID, err := uuidFromColumn(dto.WaiterID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		dto.CustomerPhone,
		dest,
		order.Channel(dto.Channel),
		items,
		order.Status(dto.Status),
		payment,
		driverID,
		waiterID,
		dto.CreatedAt,
		dto.DispatchedAt,
		dto.Version,
	)
}

func destinationFromRow(dto OrderDTO) (kernel.Destination, error) {
	switch kernel.DestinationKind(dto.DestKind) {
	case kernel.DestinationTable:
		return kernel.NewTableDestination(dto.DestTable)
	case kernel.DestinationCounter:
		return kernel.NewCounterDestination(), nil
	case kernel.DestinationAddress:
		return kernel.NewAddressDestination(dto.DestAddress, dto.DestNote)
	default:
		return kernel.Destination{}, errs.NewValueIsInvalidError("destination kind")
	}
}

func paymentFromRow(dto OrderDTO) (order.Payment, error) {
	var received, change *kernel.Money

	if dto.CashReceivedCents != nil {
		m, err := kernel.NewMoney(*dto.CashReceivedCents)
		if err != nil {
			return order.Payment{}, err
		}
		received = &m
	}

	if dto.ChangeCents != nil {
		m, err := kernel.NewMoney(*dto.ChangeCents)
		if err != nil {
			return order.Payment{}, err
		}
		change = &m
	}

	return order.RestorePayment(
		order.Method(dto.PaymentMethod),
		order.PaymentStatus(dto.PaymentStatus),
		received,
		change,
		dto.PaymentReference,
		dto.PaidAt,
	), nil
}

func uuidFromColumn(value *string) (*kernel.UUID, error) {
	if value == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*value)
	if err != nil {
		return nil, err
	}

	return &id, nil
}
