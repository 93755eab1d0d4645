package service

import (
	"context"

	"github.com/luisitotec2025/transportesManoloBack/internal/model"
)

// MessageService defines the business logic for contact form submissions.
type MessageService interface {
	// Submit stores a new contact message. msg.ID and msg.CreatedAt are
	// populated by the implementation.
	Submit(ctx context.Context, msg *model.Message) error
}
