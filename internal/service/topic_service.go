package service

import (
	"context"

	"github.com/Mariha-B/nc-news/internal/models"
	"github.com/Mariha-B/nc-news/internal/repository"
)

type topicService struct {
	repo repository.TopicRepository
}

func newTopicService(repo repository.TopicRepository) *topicService {
	return &topicService{repo: repo}
}

// List returns every topic
func (s *topicService) List(ctx context.Context) ([]*models.Topic, error) {
	return s.repo.List(ctx)
}

// Exists reports whether a topic with the given slug exists
func (s *topicService) Exists(ctx context.Context, slug string) (bool, error) {
	return s.repo.Exists(ctx, slug)
}
