package repository

import (
	"context"
	"fmt"

	"github.com/Mariha-B/nc-news/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db DBTX
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db DBTX) CommentRepository {
	return &commentRepo{db: db}
}

// ListByArticle retrieves the comments posted on an article. It does not check
// that the article exists; an unknown id yields an empty list.
func (r *commentRepo) ListByArticle(ctx context.Context, articleID int64, sort models.Sort) ([]*models.Comment, error) {
	orderBy, err := orderByClause(commentSortColumns, sort)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT c.comment_id, c.article_id, c.author, c.body, c.votes, c.created_at
		FROM comments c
		WHERE c.article_id = $1
		` + orderBy

	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("ListByArticle: %w", err)
	}
	defer rows.Close()

	comments := make([]*models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListByArticle: Scan: %w", err)
		}
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}

// Create inserts a new comment and returns it with its assigned id, default
// vote count and creation time
func (r *commentRepo) Create(ctx context.Context, comment *models.NewComment) (*models.Comment, error) {
	query := `
		INSERT INTO comments (body, author, article_id)
		VALUES ($1, $2, $3)
		RETURNING comment_id, article_id, author, body, votes, created_at
	`

	var c models.Comment
	err := r.db.QueryRowContext(ctx, query, comment.Body, comment.Author, comment.ArticleID).Scan(
		&c.CommentID, &c.ArticleID, &c.Author, &c.Body, &c.Votes, &c.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	return &c, nil
}

// Delete removes a comment by ID
func (r *commentRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	return affected > 0, nil
}
