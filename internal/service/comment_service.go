package service

import (
	"context"

	"github.com/Mariha-B/nc-news/internal/apperror"
	"github.com/Mariha-B/nc-news/internal/models"
	"github.com/Mariha-B/nc-news/internal/repository"
	"github.com/Mariha-B/nc-news/internal/validation"
	"github.com/rs/zerolog"
)

const msgCommentNotFound = "comment does not exist"

// commentService is the concrete implementation of CommentService
type commentService struct {
	repo      repository.CommentRepository
	articles  ArticleService
	validator *validation.Validator
	log       zerolog.Logger
}

func newCommentService(repo repository.CommentRepository, articles ArticleService, v *validation.Validator, log zerolog.Logger) *commentService {
	return &commentService{
		repo:      repo,
		articles:  articles,
		validator: v,
		log:       log.With().Str("service", "comment").Logger(),
	}
}

// ListByArticle returns the comments on an existing article. The article
// lookup and the comment query are separate reads.
func (s *commentService) ListByArticle(ctx context.Context, articleID int64, sortBy, order string) ([]*models.Comment, error) {
	sort, err := s.validator.CommentSort(sortBy, order)
	if err != nil {
		return nil, err
	}

	if _, err := s.articles.Get(ctx, articleID); err != nil {
		return nil, err
	}

	return s.repo.ListByArticle(ctx, articleID, sort)
}

// Create posts a comment. Unknown articles and authors are rejected by the
// store's foreign keys.
func (s *commentService) Create(ctx context.Context, comment *models.NewComment) (*models.Comment, error) {
	if err := s.validator.NewComment(comment); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("comment_id", created.CommentID).
		Int64("article_id", created.ArticleID).
		Str("author", created.Author).
		Msg("Comment created")

	return created, nil
}

// Delete removes a comment by id
func (s *commentService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound(msgCommentNotFound)
	}

	s.log.Info().Int64("comment_id", id).Msg("Comment deleted")
	return nil
}
