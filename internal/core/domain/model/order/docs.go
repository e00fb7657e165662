// Package order holds the laundry order aggregate and its lifecycle rules.
//
// The package includes:
//   - Order: the aggregate root owned by exactly one customer and referring to
//     exactly one catalog service
//   - Status: the state machine Pending -> InProgress -> Completed, with
//     Cancelled reachable from any non-terminal status
//   - Patch: the sparse set of fields a customer may edit
//
// Key business rules:
//   - quantity is positive and the expected delivery date lies in the future
//     when the order is placed
//   - owner and service never change after creation
//   - Completed and Cancelled orders can be neither edited nor cancelled
//   - transitions return new values instead of mutating the receiver
package order
