// Package tracking models the fulfillment workflow of a single order item.
//
// The package includes:
//   - Step: the five-step state machine with its transitions
//   - OrderItem: the immutable item snapshot a tracker is started for
//   - Tracker: the aggregate root holding the current step
//   - RenderPanel / RenderSteps: the pure view model the dashboard renders
//
// Workflow:
//
//	OrderPlaced -> OutForDelivery -> Delivered -> FundsReleased -> Completed
//
// Every transition is triggered by an explicit seller action. Leaving
// Delivered additionally requires the buyer's delivery code. There is no
// cancel or rollback path, so the step never decreases.
package tracking
