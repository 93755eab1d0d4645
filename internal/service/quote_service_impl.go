package service

import (
	"context"

	"github.com/luisitotec2025/transportesManoloBack/internal/model"
	"github.com/luisitotec2025/transportesManoloBack/internal/notify"
	"github.com/luisitotec2025/transportesManoloBack/internal/repository"
)

// quoteServiceImpl is the production implementation of QuoteService.
type quoteServiceImpl struct {
	vehicles      repository.VehicleRepository
	dispatcher    Enqueuer
	publicBaseURL string
}

// NewQuoteService creates a QuoteService. publicBaseURL is used to turn
// relative photo paths into absolute URLs inside the notification.
func NewQuoteService(vehicles repository.VehicleRepository, dispatcher Enqueuer, publicBaseURL string) QuoteService {
	return &quoteServiceImpl{vehicles: vehicles, dispatcher: dispatcher, publicBaseURL: publicBaseURL}
}

// Request resolves the referenced vehicle, composes the operator
// notification and hands it to the dispatcher. Failure before composition
// aborts with no side effect. Once enqueued the request succeeds regardless
// of delivery outcome, and a full queue is not an error for the caller.
func (s *quoteServiceImpl) Request(ctx context.Context, q model.QuoteRequest) error {
	vehicle, err := s.vehicles.GetByID(ctx, q.VehicleID)
	if err != nil {
		return err
	}

	payload, err := notify.BuildPayload(q, *vehicle, s.publicBaseURL)
	if err != nil {
		return err
	}

	n, err := notify.Render(payload)
	if err != nil {
		return err
	}

	_ = s.dispatcher.Enqueue(n)
	return nil
}
