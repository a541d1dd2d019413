// Package order provides the local order aggregate that mirrors a marketplace order.
//
// The package includes:
//   - Order: the aggregate root bound to exactly one external order number
//   - Ref: the database-generated local reference of an order
//   - Status: the marketplace status string currently stored on the order
//   - StatusChange: the tagged result of a status transition (applied or already applied)
//
// Key business rules:
//   - An order is created once per external order number and never rebound
//   - Any non-blank status string is accepted; there is no allow-list
//   - Re-applying the stored status is not an error, it yields StatusAlreadyApplied
//     so callers can treat duplicate deliveries as a no-op
package order
