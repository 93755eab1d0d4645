package service

import (
	"context"

	"github.com/luisitotec2025/transportesManoloBack/internal/model"
	"github.com/luisitotec2025/transportesManoloBack/internal/repository"
)

// vehicleServiceImpl is the production implementation of VehicleService.
type vehicleServiceImpl struct {
	repo repository.VehicleRepository
}

// NewVehicleService creates a VehicleService backed by the given repository.
func NewVehicleService(repo repository.VehicleRepository) VehicleService {
	return &vehicleServiceImpl{repo: repo}
}

func (s *vehicleServiceImpl) Create(ctx context.Context, v *model.Vehicle) error {
	return s.repo.Save(ctx, v)
}

func (s *vehicleServiceImpl) List(ctx context.Context) ([]*model.Vehicle, error) {
	return s.repo.List(ctx)
}

func (s *vehicleServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
