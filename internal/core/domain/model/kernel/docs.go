// Package kernel holds the primitives shared by the order sync domain model.
//
// It currently provides UUID, the identifier used for outbox messages. Local order
// references are database generated and live in the order package instead.
package kernel
