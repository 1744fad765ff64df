// Package kernel holds the value objects shared by the tracker domain:
//
//   - UUID: identifier for trackers, orders and order items
//   - Money: a decimal amount in a named currency
//
// Zero values of both types are invalid; use the constructors.
package kernel
