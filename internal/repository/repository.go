package repository

import (
	"context"
	"database/sql"

	"github.com/Mariha-B/nc-news/internal/models"
)

// DBTX is the query-execution surface the repositories need. It is satisfied
// by *sql.DB, *sql.Tx and *database.DB.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	List(ctx context.Context) ([]*models.Topic, error)
	Exists(ctx context.Context, slug string) (bool, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	List(ctx context.Context) ([]*models.User, error)
}

// ArticleRepository defines the interface for article data operations.
// Lookups by id return (nil, nil) when no row matches.
type ArticleRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	List(ctx context.Context, filter models.ArticleFilter) ([]*models.ArticleSummary, error)
	IncrementVotes(ctx context.Context, id int64, delta int) (*models.Article, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID int64, sort models.Sort) ([]*models.Comment, error)
	Create(ctx context.Context, comment *models.NewComment) (*models.Comment, error)
	// Delete reports whether a row was removed
	Delete(ctx context.Context, id int64) (bool, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Topic   TopicRepository
	User    UserRepository
	Article ArticleRepository
	Comment CommentRepository
}

// New creates all repositories over the given connection pool
func New(db DBTX) *Repositories {
	return &Repositories{
		Topic:   NewTopicRepo(db),
		User:    NewUserRepo(db),
		Article: NewArticleRepo(db),
		Comment: NewCommentRepo(db),
	}
}
