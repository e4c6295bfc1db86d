package services

import (
	"context"
	"fmt"

	"github.com/yigit/sectiontrack/internal/app/models"
)

// UserService defines the interface for user-related operations
type UserService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
}

type userServiceImpl struct {
	userRepo UserStore
}

// NewUserService creates a new user service instance
func NewUserService(userRepo UserStore) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

// ListUsers returns every user, unfiltered
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	return users, nil
}
