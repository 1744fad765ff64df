// Package http exposes the tracker use cases over a JSON API.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/application/usecases/commands"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/application/usecases/queries"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"

	"github.com/labstack/echo/v4"
)

type (
	StartTrackingHandler interface {
		Handle(ctx context.Context, cmd commands.StartTrackingCommand) error
	}
	MarkOutForDeliveryHandler interface {
		Handle(ctx context.Context, cmd commands.MarkOutForDeliveryCommand) error
	}
	MarkDeliveredHandler interface {
		Handle(ctx context.Context, cmd commands.MarkDeliveredCommand) error
	}
	SubmitDeliveryCodeHandler interface {
		Handle(ctx context.Context, cmd commands.SubmitDeliveryCodeCommand) error
	}
	ResendDeliveryCodeHandler interface {
		Handle(ctx context.Context, cmd commands.ResendDeliveryCodeCommand) error
	}
	ViewWalletHandler interface {
		Handle(ctx context.Context, cmd commands.ViewWalletCommand) error
	}
	TrackerPanelHandler interface {
		Handle(ctx context.Context, query queries.GetTrackerPanelQuery) (tracking.PanelView, error)
	}
	ActiveTrackersHandler interface {
		Handle(ctx context.Context, query queries.GetActiveTrackersQuery) ([]queries.GetActiveTrackersQueryResponse, error)
	}
	StoreProfileHandler interface {
		Handle(ctx context.Context, query queries.GetStoreProfileQuery) (queries.StoreProfile, error)
	}
)

// Handlers groups the use cases served by Server.
type Handlers struct {
	StartTracking      StartTrackingHandler
	MarkOutForDelivery MarkOutForDeliveryHandler
	MarkDelivered      MarkDeliveredHandler
	SubmitDeliveryCode SubmitDeliveryCodeHandler
	ResendDeliveryCode ResendDeliveryCodeHandler
	ViewWallet         ViewWalletHandler

	TrackerPanel   TrackerPanelHandler
	ActiveTrackers ActiveTrackersHandler
	StoreProfile   StoreProfileHandler
}

// Server maps HTTP requests onto commands and queries.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http_server"),
	}
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// GetStoreProfile handles GET /api/v1/store/profile.
func (s *Server) GetStoreProfile(c echo.Context) error {
	profile, err := s.h.StoreProfile.Handle(c.Request().Context(), queries.NewGetStoreProfileQuery())
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, StoreProfileResponse{
		Name:     profile.Name,
		Currency: profile.Currency,
	})
}

// GetActiveTrackers handles GET /api/v1/trackers.
func (s *Server) GetActiveTrackers(c echo.Context) error {
	rows, err := s.h.ActiveTrackers.Handle(c.Request().Context(), queries.NewGetActiveTrackersQuery())
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, toTrackerSummaries(rows))
}

// StartTracking handles POST /api/v1/trackers. The tracker ID is generated
// when the request does not carry one.
func (s *Server) StartTracking(c echo.Context) error {
	fullDetails, err := bindFullDetails(c)
	if err != nil {
		return s.badRequest(c, err)
	}

	var req NewTrackerRequest
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := newStartTrackingCommand(req)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.h.StartTracking.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return s.renderPanel(c, http.StatusCreated, cmd.TrackerID(), fullDetails)
}

// GetTrackerPanel handles GET /api/v1/trackers/{trackerId}.
func (s *Server) GetTrackerPanel(c echo.Context) error {
	trackerID, err := bindTrackerID(c)
	if err != nil {
		return s.badRequest(c, err)
	}

	fullDetails, err := bindFullDetails(c)
	if err != nil {
		return s.badRequest(c, err)
	}

	return s.renderPanel(c, http.StatusOK, trackerID, fullDetails)
}

// MarkOutForDelivery handles POST /api/v1/trackers/{trackerId}/out-for-delivery.
func (s *Server) MarkOutForDelivery(c echo.Context) error {
	return s.transition(c, func(ctx context.Context, id kernel.UUID) error {
		cmd, err := commands.NewMarkOutForDeliveryCommand(id)
		if err != nil {
			return err
		}
		return s.h.MarkOutForDelivery.Handle(ctx, cmd)
	})
}

// MarkDelivered handles POST /api/v1/trackers/{trackerId}/delivered.
func (s *Server) MarkDelivered(c echo.Context) error {
	return s.transition(c, func(ctx context.Context, id kernel.UUID) error {
		cmd, err := commands.NewMarkDeliveredCommand(id)
		if err != nil {
			return err
		}
		return s.h.MarkDelivered.Handle(ctx, cmd)
	})
}

// SubmitDeliveryCode handles POST /api/v1/trackers/{trackerId}/delivery-code.
// A wrong code answers 422 "invalid code" and can be retried.
func (s *Server) SubmitDeliveryCode(c echo.Context) error {
	var req DeliveryCodeRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	return s.transition(c, func(ctx context.Context, id kernel.UUID) error {
		cmd, err := commands.NewSubmitDeliveryCodeCommand(id, req.Code)
		if err != nil {
			return err
		}
		return s.h.SubmitDeliveryCode.Handle(ctx, cmd)
	})
}

// ResendDeliveryCode handles POST /api/v1/trackers/{trackerId}/delivery-code/resend.
func (s *Server) ResendDeliveryCode(c echo.Context) error {
	trackerID, err := bindTrackerID(c)
	if err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewResendDeliveryCodeCommand(trackerID)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.h.ResendDeliveryCode.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ViewWallet handles POST /api/v1/trackers/{trackerId}/wallet-view.
func (s *Server) ViewWallet(c echo.Context) error {
	return s.transition(c, func(ctx context.Context, id kernel.UUID) error {
		cmd, err := commands.NewViewWalletCommand(id)
		if err != nil {
			return err
		}
		return s.h.ViewWallet.Handle(ctx, cmd)
	})
}

// transition runs run for the path's tracker and answers with the panel
// rendered after it.
func (s *Server) transition(c echo.Context, run func(ctx context.Context, id kernel.UUID) error) error {
	trackerID, err := bindTrackerID(c)
	if err != nil {
		return s.badRequest(c, err)
	}

	fullDetails, err := bindFullDetails(c)
	if err != nil {
		return s.badRequest(c, err)
	}

	if err = run(c.Request().Context(), trackerID); err != nil {
		return s.writeError(c, err)
	}

	return s.renderPanel(c, http.StatusOK, trackerID, fullDetails)
}

func (s *Server) renderPanel(c echo.Context, status int, trackerID kernel.UUID, fullDetails bool) error {
	query, err := queries.NewGetTrackerPanelQuery(trackerID, fullDetails)
	if err != nil {
		return s.writeError(c, err)
	}

	panel, err := s.h.TrackerPanel.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(status, toPanelResponse(panel))
}

func newStartTrackingCommand(req NewTrackerRequest) (commands.StartTrackingCommand, error) {
	trackerID := kernel.NewUUID()
	if req.TrackerID != nil {
		id, err := kernel.UUIDFromBytes(req.TrackerID[:])
		if err != nil {
			return commands.StartTrackingCommand{}, err
		}
		trackerID = id
	}

	orderID, err := kernel.UUIDFromBytes(req.OrderID[:])
	if err != nil {
		return commands.StartTrackingCommand{}, err
	}

	itemID, err := kernel.UUIDFromBytes(req.Item.ID[:])
	if err != nil {
		return commands.StartTrackingCommand{}, err
	}

	price, err := kernel.MoneyFromString(req.Item.Price, req.Item.Currency)
	if err != nil {
		return commands.StartTrackingCommand{}, err
	}

	item, err := tracking.NewOrderItem(itemID, req.Item.Name, price, req.Item.Quantity, req.Item.ImageURL,
		tracking.WithColor(req.Item.Color),
		tracking.WithSize(req.Item.Size),
	)
	if err != nil {
		return commands.StartTrackingCommand{}, err
	}

	return commands.NewStartTrackingCommand(trackerID, orderID, item)
}
