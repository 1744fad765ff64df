package tracking

import (
	"time"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
)

// ActionSet lists the actions the caller can handle. Only those are rendered
// as buttons.
type ActionSet map[Action]bool

// AllActions enables every action.
func AllActions() ActionSet {
	return ActionSet{
		ActionMarkOutForDelivery: true,
		ActionMarkDelivered:      true,
		ActionSubmitDeliveryCode: true,
		ActionViewWallet:         true,
	}
}

// ActionView is one rendered button.
type ActionView struct {
	Action Action
	Label  string
}

// StepView is the rendered state of one step marker.
type StepView struct {
	Number      int
	Step        Step
	Title       string
	Description string
	// IsActive colours the marker: every step up to the current one.
	IsActive  bool
	IsCurrent bool
	ReachedAt *time.Time
	// Actions is non-empty only for the current step.
	Actions []ActionView
}

// RenderSteps renders the five step markers for current. It is a pure
// function of its arguments.
func RenderSteps(current Step, reachedAt map[Step]time.Time, handlers ActionSet) []StepView {
	steps := Steps()
	views := make([]StepView, 0, len(steps))

	for _, s := range steps {
		view := StepView{
			Number:      s.Number(),
			Step:        s,
			Title:       s.Title(),
			Description: s.Description(),
			IsActive:    s.Number() <= current.Number(),
			IsCurrent:   s == current,
			Actions:     []ActionView{},
		}

		if at, ok := reachedAt[s]; ok && view.IsActive {
			view.ReachedAt = &at
		}

		if view.IsCurrent {
			if action := s.Action(); action != ActionNone && handlers[action] {
				view.Actions = append(view.Actions, ActionView{Action: action, Label: action.Label()})
			}
		}

		views = append(views, view)
	}

	return views
}

// RenderOptions control display-only aspects of the panel.
type RenderOptions struct {
	// ShowFullDetails adds the item detail block. It never affects the step.
	ShowFullDetails bool
	Handlers        ActionSet
}

// ItemSummary is the item header shown above the steps.
type ItemSummary struct {
	ID       kernel.UUID
	Name     string
	ImageURL string
	Price    kernel.Money
	Quantity int
}

// ItemDetails is the full order-item view.
type ItemDetails struct {
	Price    kernel.Money
	Quantity int
	Subtotal kernel.Money
	Color    string
	Size     string
	ImageURL string
}

// PanelView is everything the tracker panel displays.
type PanelView struct {
	TrackerID       kernel.UUID
	OrderID         kernel.UUID
	Item            ItemSummary
	CurrentStep     Step
	Steps           []StepView
	ShowFullDetails bool
	Details         *ItemDetails
}

// RenderPanel renders a tracker. It reads the tracker and never modifies it.
func RenderPanel(t *Tracker, opts RenderOptions) (PanelView, error) {
	if err := t.Validate(); err != nil {
		return PanelView{}, err
	}

	item := t.Item()
	view := PanelView{
		TrackerID: t.ID(),
		OrderID:   t.OrderID(),
		Item: ItemSummary{
			ID:       item.ID(),
			Name:     item.Name(),
			ImageURL: item.ImageURL(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
		},
		CurrentStep:     t.Step(),
		Steps:           RenderSteps(t.Step(), t.reachedAt, opts.Handlers),
		ShowFullDetails: opts.ShowFullDetails,
	}

	if opts.ShowFullDetails {
		subtotal, err := item.Subtotal()
		if err != nil {
			return PanelView{}, err
		}
		view.Details = &ItemDetails{
			Price:    item.Price(),
			Quantity: item.Quantity(),
			Subtotal: subtotal,
			Color:    item.Color(),
			Size:     item.Size(),
			ImageURL: item.ImageURL(),
		}
	}

	return view, nil
}
