package tracking

import (
	"fmt"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/pkg/errs"
)

// Step is the position of an order item in its fulfillment workflow.
//
//	OrderPlaced ──> OutForDelivery ──> Delivered ──> FundsReleased ──> Completed
//	        mark out        mark        submit code      view
//	      for delivery    delivered                     wallet
//
// Each step accepts exactly one action, and that action moves it to the next
// step. Completed accepts none.
type Step int

const (
	// Unknown is the zero value and is never a valid step.
	Unknown Step = iota
	OrderPlaced
	OutForDelivery
	Delivered
	FundsReleased
	Completed
)

// Action is a seller interaction that advances a tracker.
type Action string

const (
	ActionNone               Action = ""
	ActionMarkOutForDelivery Action = "mark_out_for_delivery"
	ActionMarkDelivered      Action = "mark_delivered"
	ActionSubmitDeliveryCode Action = "submit_delivery_code"
	ActionViewWallet         Action = "view_wallet"
)

type stepInfo struct {
	name        string
	title       string
	description string
	action      Action
}

func getStepInfo() map[Step]stepInfo {
	return map[Step]stepInfo{
		OrderPlaced: {
			name:        "OrderPlaced",
			title:       "Order Placed",
			description: "The buyer has placed an order for this item.",
			action:      ActionMarkOutForDelivery,
		},
		OutForDelivery: {
			name:        "OutForDelivery",
			title:       "Out for Delivery",
			description: "The item is on its way to the buyer.",
			action:      ActionMarkDelivered,
		},
		Delivered: {
			name:        "Delivered",
			title:       "Delivered",
			description: "Enter the code provided by the buyer to confirm delivery.",
			action:      ActionSubmitDeliveryCode,
		},
		FundsReleased: {
			name:        "FundsReleased",
			title:       "Funds Released",
			description: "Payment for this item has been released to your wallet.",
			action:      ActionViewWallet,
		},
		Completed: {
			name:        "Completed",
			title:       "Completed",
			description: "This order item is complete.",
			action:      ActionNone,
		},
	}
}

func getActionLabels() map[Action]string {
	return map[Action]string{
		ActionMarkOutForDelivery: "Mark as out for delivery",
		ActionMarkDelivered:      "Mark as Delivered",
		ActionSubmitDeliveryCode: "Enter delivery code",
		ActionViewWallet:         "View Wallet",
	}
}

// Steps returns every valid step in workflow order.
func Steps() []Step {
	return []Step{OrderPlaced, OutForDelivery, Delivered, FundsReleased, Completed}
}

func (s Step) Validate() error {
	if _, ok := getStepInfo()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("step is invalid", fmt.Errorf("%d is not a valid step", s))
	}
	return nil
}

func (s Step) String() string {
	if info, ok := getStepInfo()[s]; ok {
		return info.name
	}
	return "Unknown"
}

// Number is the 1-based position shown on the step marker.
func (s Step) Number() int {
	return int(s)
}

func (s Step) Title() string {
	return getStepInfo()[s].title
}

func (s Step) Description() string {
	return getStepInfo()[s].description
}

// Action returns the single action accepted in this step, or ActionNone for
// Completed and invalid steps.
func (s Step) Action() Action {
	return getStepInfo()[s].action
}

func (s Step) IsTerminal() bool {
	return s == Completed
}

// MarkOutForDelivery moves OrderPlaced to OutForDelivery.
func (s Step) MarkOutForDelivery() (Step, error) {
	return s.advance(ActionMarkOutForDelivery)
}

// MarkDelivered moves OutForDelivery to Delivered.
func (s Step) MarkDelivered() (Step, error) {
	return s.advance(ActionMarkDelivered)
}

// ReleaseFunds moves Delivered to FundsReleased. The delivery code check is
// done by Tracker.ConfirmDelivery before calling it.
func (s Step) ReleaseFunds() (Step, error) {
	return s.advance(ActionSubmitDeliveryCode)
}

// Complete moves FundsReleased to Completed.
func (s Step) Complete() (Step, error) {
	return s.advance(ActionViewWallet)
}

// ValidateAction checks whether action is the one accepted by s, without
// transitioning.
func (s Step) ValidateAction(action Action) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if action == ActionNone || s.Action() != action {
		return errs.NewTransitionIsInvalidError(s.String(), action.String())
	}
	return nil
}

func (s Step) advance(action Action) (Step, error) {
	if err := s.ValidateAction(action); err != nil {
		return Unknown, err
	}
	return s + 1, nil
}

// Label is the button text for the action.
func (a Action) Label() string {
	return getActionLabels()[a]
}

func (a Action) String() string {
	if a == ActionNone {
		return "none"
	}
	return string(a)
}
