package service

import (
	"context"

	"github.com/luisitotec2025/transportesManoloBack/internal/model"
	"github.com/luisitotec2025/transportesManoloBack/internal/notify"
)

// QuoteService orchestrates the quote-request workflow: resolve the
// referenced vehicle, compose the notification, and hand it to the
// dispatcher.
type QuoteService interface {
	// Request processes one quote request. It returns
	// repository.ErrNotFound when the referenced vehicle does not exist
	// (no side effect occurs in that case), a *notify.ValidationError for
	// malformed input, and nil once the notification was accepted for
	// dispatch. Dispatch outcome never affects the return value.
	Request(ctx context.Context, q model.QuoteRequest) error
}

// Enqueuer is the dispatcher surface the quote workflow needs. Satisfied
// by *notify.Dispatcher.
type Enqueuer interface {
	Enqueue(n notify.Notification) bool
}
