package service

import (
	"context"
	"strings"

	"jobunyacar-backend/internal/domain"
	"jobunyacar-backend/internal/logger"
	"jobunyacar-backend/internal/repository"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type vehicleService struct {
	store repository.Store
}

func NewVehicleService(store repository.Store) VehicleService {
	return &vehicleService{store: store}
}

func (s *vehicleService) CreateVehicle(ctx context.Context, principal *domain.User, vehicle *domain.Vehicle) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}
	if err := validateVehicle(vehicle); err != nil {
		return err
	}
	if vehicle.Status == "" {
		vehicle.Status = domain.VehicleStatusAvailable
	}
	if err := s.store.Vehicles().Create(ctx, vehicle); err != nil {
		return err
	}
	logger.Info("vehicle created", "vehicle_id", vehicle.ID, "admin_id", principal.ID)
	return nil
}

func validateVehicle(v *domain.Vehicle) error {
	if strings.TrimSpace(v.Name) == "" {
		return domain.NewValidationError("name", "vehicle name is required")
	}
	if strings.TrimSpace(v.Model) == "" {
		return domain.NewValidationError("model", "vehicle model is required")
	}
	if v.DailyRateCents <= 0 {
		return domain.NewValidationError("daily_rate", "daily rate must be positive")
	}
	if v.Seats <= 0 {
		return domain.NewValidationError("seats", "seat count must be positive")
	}
	if v.MinDays != nil && *v.MinDays < 1 {
		return domain.NewValidationError("min_days", "minimum rental period must be at least 1 day")
	}
	return nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	vehicle, err := s.store.Vehicles().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	images, err := s.store.Vehicles().GetImages(ctx, id)
	if err != nil {
		return nil, err
	}
	vehicle.Images = images
	return vehicle, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, principal *domain.User, vehicle *domain.Vehicle) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}
	if err := validateVehicle(vehicle); err != nil {
		return err
	}
	// Status is managed by the booking lifecycle; an admin edit keeps
	// whatever status the row currently has.
	current, err := s.store.Vehicles().GetByID(ctx, vehicle.ID)
	if err != nil {
		return err
	}
	vehicle.Status = current.Status
	return s.store.Vehicles().Update(ctx, vehicle)
}

// DeleteVehicle removes the vehicle and, through the schema's cascade,
// every booking that references it.
func (s *vehicleService) DeleteVehicle(ctx context.Context, principal *domain.User, id int32) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}
	if err := s.store.Vehicles().Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("vehicle deleted", "vehicle_id", id, "admin_id", principal.ID)
	return nil
}

func (s *vehicleService) ListVehicles(ctx context.Context, filter domain.VehicleFilter, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return s.store.Vehicles().List(ctx, filter, page, pageSize)
}

func (s *vehicleService) AddVehicleImage(ctx context.Context, principal *domain.User, image *domain.VehicleImage) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}
	if strings.TrimSpace(image.ImageURL) == "" {
		return domain.NewValidationError("image_url", "image url is required")
	}
	if _, err := s.store.Vehicles().GetByID(ctx, image.VehicleID); err != nil {
		return err
	}
	return s.store.Vehicles().AddImage(ctx, image)
}
