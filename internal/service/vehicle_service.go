package service

import (
	"context"

	"github.com/luisitotec2025/transportesManoloBack/internal/model"
)

// VehicleService defines the business logic for fleet vehicle records.
// There is no update operation: vehicles are created, listed, and deleted.
type VehicleService interface {
	// Create stores a new vehicle. v.ID is populated by the implementation.
	Create(ctx context.Context, v *model.Vehicle) error

	// List returns all vehicles, newest first.
	List(ctx context.Context) ([]*model.Vehicle, error)

	// Delete removes a vehicle by id. Returns repository.ErrNotFound when
	// the id does not exist.
	Delete(ctx context.Context, id int64) error
}
