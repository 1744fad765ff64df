package http

import (
	"time"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/application/usecases/queries"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Wire types of the tracker API. Field names follow openapi.yaml.

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type MoneyResponse struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type StoreProfileResponse struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

type NewItemRequest struct {
	ID       openapi_types.UUID `json:"id"`
	Name     string             `json:"name"`
	Price    string             `json:"price"`
	Currency string             `json:"currency"`
	Quantity int                `json:"quantity"`
	ImageURL string             `json:"imageUrl"`
	Color    string             `json:"color,omitempty"`
	Size     string             `json:"size,omitempty"`
}

type NewTrackerRequest struct {
	TrackerID *openapi_types.UUID `json:"trackerId,omitempty"`
	OrderID   openapi_types.UUID  `json:"orderId"`
	Item      NewItemRequest      `json:"item"`
}

type DeliveryCodeRequest struct {
	Code string `json:"code"`
}

type ActionResponse struct {
	Action string `json:"action"`
	Label  string `json:"label"`
}

type StepResponse struct {
	Number      int              `json:"number"`
	Step        string           `json:"step"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	IsActive    bool             `json:"isActive"`
	IsCurrent   bool             `json:"isCurrent"`
	ReachedAt   *time.Time       `json:"reachedAt,omitempty"`
	Actions     []ActionResponse `json:"actions"`
}

type ItemSummaryResponse struct {
	ID       openapi_types.UUID `json:"id"`
	Name     string             `json:"name"`
	ImageURL string             `json:"imageUrl"`
	Price    MoneyResponse      `json:"price"`
	Quantity int                `json:"quantity"`
}

type ItemDetailsResponse struct {
	Price    MoneyResponse `json:"price"`
	Quantity int           `json:"quantity"`
	Subtotal MoneyResponse `json:"subtotal"`
	Color    string        `json:"color,omitempty"`
	Size     string        `json:"size,omitempty"`
	ImageURL string        `json:"imageUrl"`
}

type PanelResponse struct {
	TrackerID       openapi_types.UUID   `json:"trackerId"`
	OrderID         openapi_types.UUID   `json:"orderId"`
	Item            ItemSummaryResponse  `json:"item"`
	CurrentStep     int                  `json:"currentStep"`
	CurrentStepName string               `json:"currentStepName"`
	Steps           []StepResponse       `json:"steps"`
	ShowFullDetails bool                 `json:"showFullDetails"`
	Details         *ItemDetailsResponse `json:"details,omitempty"`
}

type TrackerSummaryResponse struct {
	TrackerID openapi_types.UUID `json:"trackerId"`
	OrderID   openapi_types.UUID `json:"orderId"`
	ItemName  string             `json:"itemName"`
	Quantity  int                `json:"quantity"`
	Price     MoneyResponse      `json:"price"`
	Step      int                `json:"step"`
	StepName  string             `json:"stepName"`
	CreatedAt time.Time          `json:"createdAt"`
}

func toMoney(m kernel.Money) MoneyResponse {
	return toAmount(m.Amount(), m.Currency())
}

func toAmount(amount decimal.Decimal, currency string) MoneyResponse {
	return MoneyResponse{Amount: amount.StringFixed(kernel.MinorUnits), Currency: currency}
}

func toPanelResponse(p tracking.PanelView) PanelResponse {
	steps := make([]StepResponse, len(p.Steps))
	for i, s := range p.Steps {
		actions := make([]ActionResponse, len(s.Actions))
		for j, a := range s.Actions {
			actions[j] = ActionResponse{Action: a.Action.String(), Label: a.Label}
		}

		steps[i] = StepResponse{
			Number:      s.Number,
			Step:        s.Step.String(),
			Title:       s.Title,
			Description: s.Description,
			IsActive:    s.IsActive,
			IsCurrent:   s.IsCurrent,
			ReachedAt:   s.ReachedAt,
			Actions:     actions,
		}
	}

	resp := PanelResponse{
		TrackerID: p.TrackerID.Bytes(),
		OrderID:   p.OrderID.Bytes(),
		Item: ItemSummaryResponse{
			ID:       p.Item.ID.Bytes(),
			Name:     p.Item.Name,
			ImageURL: p.Item.ImageURL,
			Price:    toMoney(p.Item.Price),
			Quantity: p.Item.Quantity,
		},
		CurrentStep:     p.CurrentStep.Number(),
		CurrentStepName: p.CurrentStep.String(),
		Steps:           steps,
		ShowFullDetails: p.ShowFullDetails,
	}

	if d := p.Details; d != nil {
		resp.Details = &ItemDetailsResponse{
			Price:    toMoney(d.Price),
			Quantity: d.Quantity,
			Subtotal: toMoney(d.Subtotal),
			Color:    d.Color,
			Size:     d.Size,
			ImageURL: d.ImageURL,
		}
	}

	return resp
}

func toTrackerSummaries(rows []queries.GetActiveTrackersQueryResponse) []TrackerSummaryResponse {
	out := make([]TrackerSummaryResponse, len(rows))
	for i, r := range rows {
		out[i] = TrackerSummaryResponse{
			TrackerID: r.TrackerID.Bytes(),
			OrderID:   r.OrderID.Bytes(),
			ItemName:  r.ItemName,
			Quantity:  r.Quantity,
			Price:     toAmount(r.Price, r.Currency),
			Step:      r.Step.Number(),
			StepName:  r.Step.String(),
			CreatedAt: r.CreatedAt,
		}
	}
	return out
}
