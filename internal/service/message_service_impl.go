package service

import (
	"context"

	"github.com/luisitotec2025/transportesManoloBack/internal/model"
	"github.com/luisitotec2025/transportesManoloBack/internal/repository"
)

// messageServiceImpl is the production implementation of MessageService.
type messageServiceImpl struct {
	repo repository.MessageRepository
}

// NewMessageService creates a MessageService backed by the given repository.
func NewMessageService(repo repository.MessageRepository) MessageService {
	return &messageServiceImpl{repo: repo}
}

// Submit stores a new contact message. Messages are immutable once stored;
// the creation timestamp comes from the database.
func (s *messageServiceImpl) Submit(ctx context.Context, msg *model.Message) error {
	return s.repo.Save(ctx, msg)
}
