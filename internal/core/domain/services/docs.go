// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the storefront. It implements business
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderPricer: A domain service that turns a cart into priced order lines
//     with shipping and payment surcharges applied
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
