package service

import (
	"context"

	"jobunyacar-backend/internal/domain"
	"jobunyacar-backend/internal/repository"
)

type userService struct {
	store repository.Store
}

func NewUserService(store repository.Store) UserService {
	return &userService{store: store}
}

func (s *userService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	return s.store.Users().GetByID(ctx, userID)
}

func (s *userService) ListUsers(ctx context.Context, principal *domain.User) ([]domain.User, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	return s.store.Users().List(ctx)
}
