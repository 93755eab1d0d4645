package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/luisitotec2025/transportesManoloBack/internal/model"
)

// MessageRepository defines the persistence interface for contact messages.
type MessageRepository interface {
	Save(ctx context.Context, msg *model.Message) error
}

// PgMessageRepository is the PostgreSQL implementation of MessageRepository.
type PgMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPgMessageRepository creates a PgMessageRepository backed by the given pool.
func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

var _ MessageRepository = (*PgMessageRepository)(nil)

// Save inserts a new messages row and populates msg.ID and msg.CreatedAt
// from the database RETURNING clause.
func (r *PgMessageRepository) Save(ctx context.Context, msg *model.Message) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO messages (name, email, phone, body)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		msg.Name, msg.Email, msg.Phone, msg.Body,
	).Scan(&msg.ID, &msg.CreatedAt)
}
