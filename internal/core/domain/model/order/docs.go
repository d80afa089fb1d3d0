// Package order provides domain entities and business logic for the order
// ledger. It implements the Order aggregate root with lifecycle management
// and state transitions across the restaurant's stations.
//
// The package includes:
//   - Order: The aggregate root managing identity, line items, payment and lifecycle
//   - Status: A state machine enforcing valid station transitions
//   - Payment: The monotonic settlement record with method-specific fields
//   - LineItem: An ordered dish with variation, unit price, quantity and stale flag
//   - Channel: The intake origin tag (staff counter vs public storefront)
//
// Key business rules:
//   - The total always equals the sum of line extensions and is recomputed on edits
//   - Status follows Kitchen -> Ready -> (Delivery ->) Delivered, with Cancelled terminal
//   - Delivery dispatch requires a driver and case-insensitive ticket verification
//   - Payment is settled once; counter orders complete service on settlement
//   - Delivering an already delivered order is a no-op, keeping delayed
//     transitions idempotent
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
