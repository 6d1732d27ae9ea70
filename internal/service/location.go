package service

import (
	"context"
	"strings"

	"jobunyacar-backend/internal/domain"
	"jobunyacar-backend/internal/repository"
)

type locationService struct {
	store repository.Store
}

func NewLocationService(store repository.Store) LocationService {
	return &locationService{store: store}
}

func validateLocation(l *domain.Location) error {
	if strings.TrimSpace(l.Name) == "" {
		return domain.NewValidationError("name", "location name is required")
	}
	if strings.TrimSpace(l.Address) == "" {
		return domain.NewValidationError("address", "address is required")
	}
	if strings.TrimSpace(l.City) == "" {
		return domain.NewValidationError("city", "city is required")
	}
	return nil
}

func (s *locationService) CreateLocation(ctx context.Context, principal *domain.User, location *domain.Location) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}
	if err := validateLocation(location); err != nil {
		return err
	}
	return s.store.Locations().Create(ctx, location)
}

func (s *locationService) UpdateLocation(ctx context.Context, principal *domain.User, location *domain.Location) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}
	if err := validateLocation(location); err != nil {
		return err
	}
	return s.store.Locations().Update(ctx, location)
}

func (s *locationService) DeleteLocation(ctx context.Context, principal *domain.User, id int32) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}
	return s.store.Locations().Delete(ctx, id)
}

func (s *locationService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	return s.store.Locations().List(ctx)
}
