// Package driver provides the DeliveryDriver aggregate for the dispatch
// roster. Drivers cycle between available and busy as delivery orders are
// dispatched to them and completed; the active order itself is derived
// from the ledger rather than stored on the driver, so the ledger stays
// the single source of truth for assignments.
package driver
