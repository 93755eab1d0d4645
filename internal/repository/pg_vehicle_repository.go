package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/luisitotec2025/transportesManoloBack/internal/model"
)

// VehicleRepository defines the persistence interface for fleet vehicles.
type VehicleRepository interface {
	Save(ctx context.Context, v *model.Vehicle) error
	GetByID(ctx context.Context, id int64) (*model.Vehicle, error)
	List(ctx context.Context) ([]*model.Vehicle, error)
	Delete(ctx context.Context, id int64) error
}

// PgVehicleRepository is the PostgreSQL implementation of VehicleRepository.
type PgVehicleRepository struct {
	pool *pgxpool.Pool
}

// NewPgVehicleRepository creates a PgVehicleRepository backed by the given pool.
func NewPgVehicleRepository(pool *pgxpool.Pool) *PgVehicleRepository {
	return &PgVehicleRepository{pool: pool}
}

var _ VehicleRepository = (*PgVehicleRepository)(nil)

// Save inserts a new vehicles row and populates v.ID from the RETURNING clause.
func (r *PgVehicleRepository) Save(ctx context.Context, v *model.Vehicle) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO vehicles (brand, model, plate, year, type, capacity, notes, photo_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		v.Brand, v.Model, v.Plate, v.Year, v.Type, v.Capacity, v.Notes, v.PhotoURL,
	).Scan(&v.ID)
}

// GetByID returns the vehicle with the given id, or ErrNotFound.
func (r *PgVehicleRepository) GetByID(ctx context.Context, id int64) (*model.Vehicle, error) {
	var v model.Vehicle
	err := r.pool.QueryRow(ctx,
		`SELECT id, brand, model, plate, year, type, capacity, notes, photo_url
		 FROM vehicles WHERE id = $1`,
		id,
	).Scan(&v.ID, &v.Brand, &v.Model, &v.Plate, &v.Year, &v.Type, &v.Capacity, &v.Notes, &v.PhotoURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// List returns all vehicles, newest first.
func (r *PgVehicleRepository) List(ctx context.Context) ([]*model.Vehicle, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, brand, model, plate, year, type, capacity, notes, photo_url
		 FROM vehicles
		 ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []*model.Vehicle
	for rows.Next() {
		var v model.Vehicle
		if err := rows.Scan(&v.ID, &v.Brand, &v.Model, &v.Plate, &v.Year, &v.Type, &v.Capacity, &v.Notes, &v.PhotoURL); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, &v)
	}
	return vehicles, rows.Err()
}

// Delete removes a vehicle. Returns ErrNotFound when the id does not exist,
// so a second delete of the same id is a 404 to the caller.
func (r *PgVehicleRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
