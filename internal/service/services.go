package service

import (
	"context"

	"github.com/Mariha-B/nc-news/internal/models"
	"github.com/Mariha-B/nc-news/internal/repository"
	"github.com/Mariha-B/nc-news/internal/validation"
	"github.com/rs/zerolog"
)

// ArticleService defines the interface for article operations
type ArticleService interface {
	Get(ctx context.Context, id int64) (*models.Article, error)
	List(ctx context.Context, topic, sortBy, order string) ([]*models.ArticleSummary, error)
	UpdateVotes(ctx context.Context, id int64, delta int) (*models.Article, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	ListByArticle(ctx context.Context, articleID int64, sortBy, order string) ([]*models.Comment, error)
	Create(ctx context.Context, comment *models.NewComment) (*models.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// TopicService defines the interface for topic operations
type TopicService interface {
	List(ctx context.Context) ([]*models.Topic, error)
	Exists(ctx context.Context, slug string) (bool, error)
}

// UserService defines the interface for user operations
type UserService interface {
	List(ctx context.Context) ([]*models.User, error)
}

// Services holds all service interfaces
type Services struct {
	Article ArticleService
	Comment CommentService
	Topic   TopicService
	User    UserService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	v := validation.NewValidator()

	topicSvc := newTopicService(repos.Topic)
	articleSvc := newArticleService(repos.Article, topicSvc, v, log)
	commentSvc := newCommentService(repos.Comment, articleSvc, v, log)

	return &Services{
		Article: articleSvc,
		Comment: commentSvc,
		Topic:   topicSvc,
		User:    newUserService(repos.User),
	}
}
