package service

import (
	"context"

	"github.com/Mariha-B/nc-news/internal/models"
	"github.com/Mariha-B/nc-news/internal/repository"
)

type userService struct {
	repo repository.UserRepository
}

func newUserService(repo repository.UserRepository) *userService {
	return &userService{repo: repo}
}

// List returns every user
func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.List(ctx)
}
