package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Mariha-B/nc-news/internal/models"
)

const articleColumns = `article_id, author, title, body, topic, created_at, votes, article_img_url`

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db DBTX
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db DBTX) ArticleRepository {
	return &articleRepo{db: db}
}

// GetByID retrieves an article by ID
func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE article_id = $1`

	article, err := scanArticle(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return article, nil
}

// List retrieves article summaries with their comment counts. Articles without
// comments are kept by the outer join and report a count of zero.
func (r *articleRepo) List(ctx context.Context, filter models.ArticleFilter) ([]*models.ArticleSummary, error) {
	orderBy, err := orderByClause(articleSortColumns, filter.Sort)
	if err != nil {
		return nil, err
	}

	var where string
	var args []interface{}
	if filter.Topic != "" {
		where = "WHERE a.topic = $1"
		args = append(args, filter.Topic)
	}

	query := fmt.Sprintf(`
		SELECT a.article_id, a.author, a.title, a.topic, a.created_at, a.votes, a.article_img_url,
			COUNT(c.comment_id)::INT AS comment_count
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
		%s
		GROUP BY a.article_id
		%s`, where, orderBy)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer rows.Close()

	articles := make([]*models.ArticleSummary, 0)
	for rows.Next() {
		var a models.ArticleSummary
		var imgURL sql.NullString
		if err := rows.Scan(
			&a.ArticleID, &a.Author, &a.Title, &a.Topic, &a.CreatedAt, &a.Votes,
			&imgURL, &a.CommentCount,
		); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		a.ArticleImgURL = imgURL.String
		articles = append(articles, &a)
	}
	return articles, rows.Err()
}

// IncrementVotes adds delta to the stored vote count in a single statement and
// returns the updated article
func (r *articleRepo) IncrementVotes(ctx context.Context, id int64, delta int) (*models.Article, error) {
	query := `
		UPDATE articles SET votes = votes + $1
		WHERE article_id = $2
		RETURNING ` + articleColumns

	article, err := scanArticle(r.db.QueryRowContext(ctx, query, delta, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("IncrementVotes: %w", err)
	}
	return article, nil
}

func scanArticle(row *sql.Row) (*models.Article, error) {
	var article models.Article
	var imgURL sql.NullString
	err := row.Scan(
		&article.ArticleID, &article.Author, &article.Title, &article.Body, &article.Topic,
		&article.CreatedAt, &article.Votes, &imgURL,
	)
	if err != nil {
		return nil, err
	}
	article.ArticleImgURL = imgURL.String
	return &article, nil
}
