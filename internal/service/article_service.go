package service

import (
	"context"

	"github.com/Mariha-B/nc-news/internal/apperror"
	"github.com/Mariha-B/nc-news/internal/models"
	"github.com/Mariha-B/nc-news/internal/repository"
	"github.com/Mariha-B/nc-news/internal/validation"
	"github.com/rs/zerolog"
)

const (
	msgArticleNotFound = "article does not exist"
	msgTopicNotFound   = "topic does not exist"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	repo      repository.ArticleRepository
	topics    TopicService
	validator *validation.Validator
	log       zerolog.Logger
}

func newArticleService(repo repository.ArticleRepository, topics TopicService, v *validation.Validator, log zerolog.Logger) *articleService {
	return &articleService{
		repo:      repo,
		topics:    topics,
		validator: v,
		log:       log.With().Str("service", "article").Logger(),
	}
}

// Get returns a single article with its body
func (s *articleService) Get(ctx context.Context, id int64) (*models.Article, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, apperror.NotFound(msgArticleNotFound)
	}
	return article, nil
}

// List returns article summaries, optionally restricted to one topic.
// Sort parameters are checked before the topic lookup so a bad sort_by is
// reported even when the topic is also unknown.
func (s *articleService) List(ctx context.Context, topic, sortBy, order string) ([]*models.ArticleSummary, error) {
	sort, err := s.validator.ArticleSort(sortBy, order)
	if err != nil {
		return nil, err
	}

	if topic != "" {
		exists, err := s.topics.Exists(ctx, topic)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperror.NotFound(msgTopicNotFound)
		}
	}

	return s.repo.List(ctx, models.ArticleFilter{Topic: topic, Sort: sort})
}

// UpdateVotes applies a signed vote delta. A zero delta leaves the row
// untouched and returns the current article.
func (s *articleService) UpdateVotes(ctx context.Context, id int64, delta int) (*models.Article, error) {
	if delta == 0 {
		return s.Get(ctx, id)
	}

	article, err := s.repo.IncrementVotes(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, apperror.NotFound(msgArticleNotFound)
	}

	s.log.Debug().
		Int64("article_id", id).
		Int("delta", delta).
		Int("votes", article.Votes).
		Msg("Article votes updated")

	return article, nil
}
