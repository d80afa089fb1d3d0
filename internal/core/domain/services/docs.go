// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the restaurant system. It implements
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - DispatchService: releases a verified ready order to an available driver
//
// Domain services coordinate between aggregates, implementing business logic
// that spans aggregate boundaries following Domain-Driven Design principles.
package services
