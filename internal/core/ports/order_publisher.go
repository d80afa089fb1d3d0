package ports

import (
	"resto/internal/core/domain/model/kernel"
)

// OrderPublisher announces ledger changes so subscribed stations can
// refresh their boards. Publishing is fire-and-forget: a slow or absent
// subscriber never blocks a command.
type OrderPublisher interface {
	PublishOrderChanged(id kernel.TicketID)
}
