package http

import (
	"strings"
	"time"

	"resto/internal/core/application/usecases/commands"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"
)

type unlockRequest struct {
	Secret string `json:"secret"`
}

type unlockResponse struct {
	Surface string `json:"surface"`
	Token   string `json:"token"`
}

type lineItemRequest struct {
	Name      string `json:"name"`
	Variation string `json:"variation"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

type placeOrderRequest struct {
	CustomerName  string            `json:"customer_name"`
	CustomerPhone string            `json:"customer_phone"`
	Destination   string            `json:"destination"`
	Table         int               `json:"table"`
	Address       string            `json:"address"`
	Note          string            `json:"note"`
	Channel       string            `json:"channel"`
	Items         []lineItemRequest `json:"items"`
	WaiterID      string            `json:"waiter_id"`
}

type editOrderRequest struct {
	Items      []lineItemRequest `json:"items"`
	StaffID    string            `json:"staff_id"`
	Credential string            `json:"credential"`
}

type settlePaymentRequest struct {
	Method       string `json:"method"`
	CashReceived string `json:"cash_received"`
	Reference    string `json:"reference"`
	Credential   string `json:"credential"`
}

type dispatchOrderRequest struct {
	DriverID     string `json:"driver_id"`
	Confirmation string `json:"confirmation"`
}

type cancelOrderRequest struct {
	AdminID    string `json:"admin_id"`
	Credential string `json:"credential"`
}

func (r placeOrderRequest) toCommand() (commands.PlaceOrderCommand, error) {
	dest, err := parseDestination(r.Destination, r.Table, r.Address, r.Note)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	channel, err := parseChannel(r.Channel)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	items, err := parseItems(r.Items)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	waiterID, err := parseOptionalUUID(r.WaiterID)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	return commands.NewPlaceOrderCommand(
		r.CustomerName,
		r.CustomerPhone,
		dest,
		channel,
		items,
		waiterID,
		time.Now(),
	)
}

func (r editOrderRequest) toCommand(rawID string) (commands.EditOrderCommand, error) {
	ticketID, err := parseTicket(rawID)
	if err != nil {
		return commands.EditOrderCommand{}, err
	}

	items, err := parseItems(r.Items)
	if err != nil {
		return commands.EditOrderCommand{}, err
	}

	staffID, err := parseOptionalUUID(r.StaffID)
	if err != nil {
		return commands.EditOrderCommand{}, err
	}

	return commands.NewEditOrderCommand(ticketID, items, staffID, r.Credential)
}

func (r settlePaymentRequest) toCommand(rawID string) (commands.SettlePaymentCommand, error) {
	ticketID, err := parseTicket(rawID)
	if err != nil {
		return commands.SettlePaymentCommand{}, err
	}

	method, err := order.MethodFromString(r.Method)
	if err != nil {
		return commands.SettlePaymentCommand{}, err
	}

	return commands.NewSettlePaymentCommand(
		ticketID,
		method,
		r.CashReceived,
		r.Reference,
		r.Credential,
		time.Now(),
	)
}

func (r dispatchOrderRequest) toCommand(rawID string) (commands.DispatchOrderCommand, error) {
	ticketID, err := parseTicket(rawID)
	if err != nil {
		return commands.DispatchOrderCommand{}, err
	}

	driverID, err := kernel.UUIDFromString(r.DriverID)
	if err != nil {
		return commands.DispatchOrderCommand{}, err
	}

	return commands.NewDispatchOrderCommand(ticketID, driverID, r.Confirmation, time.Now())
}

func (r cancelOrderRequest) toCommand(rawID string) (commands.CancelOrderCommand, error) {
	ticketID, err := parseTicket(rawID)
	if err != nil {
		return commands.CancelOrderCommand{}, err
	}

	adminID, err := kernel.UUIDFromString(r.AdminID)
	if err != nil {
		return commands.CancelOrderCommand{}, err
	}

	return commands.NewCancelOrderCommand(ticketID, adminID, r.Credential)
}

func parseTicket(raw string) (kernel.TicketID, error) {
	return kernel.NewTicketID(raw)
}

func parseDestination(kind string, table int, address, note string) (kernel.Destination, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "table":
		return kernel.NewTableDestination(table)
	case "counter":
		return kernel.NewCounterDestination(), nil
	case "address":
		return kernel.NewAddressDestination(address, note)
	default:
		return kernel.Destination{}, errs.NewValueIsInvalidError("destination")
	}
}

func parseChannel(raw string) (order.Channel, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "counter", "":
		return order.ChannelCounterOfSale, nil
	case "online":
		return order.ChannelOnline, nil
	default:
		return order.ChannelUnknown, errs.NewValueIsInvalidError("channel")
	}
}

func parseItems(reqs []lineItemRequest) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(reqs))
	for _, req := range reqs {
		price, err := kernel.ParseMoney(req.UnitPrice)
		if err != nil {
			return nil, err
		}

		item, err := order.NewLineItem(req.Name, req.Variation, price, req.Quantity)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

func parseOptionalUUID(raw string) (*kernel.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}

	return &id, nil
}
