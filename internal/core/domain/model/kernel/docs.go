// Package kernel provides core domain primitives and utilities for the
// restaurant operations system. It implements fundamental building blocks
// following Domain-Driven Design principles that are used throughout the
// domain model.
//
// The package includes:
//   - TicketID: A value object for human-displayed order identifiers, doubling as the dispatch-verification secret
//   - Money: A value object for non-negative monetary amounts stored in cents
//   - Destination: A value object discriminating table, counter, and delivery-address service
//   - UUID: A value object for driver and staff identities with validation and comparison capabilities
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
//
// The package follows Domain-Driven Design best practices, providing rich domain
// behavior and encapsulation of implementation details.
package kernel
