package database

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/Mariha-B/nc-news/internal/models"
	"github.com/lib/pq"
)

//go:embed seeds/*.json
var seedFiles embed.FS

// SeedData is a complete dataset loaded into an empty schema. Articles are
// assigned ids in slice order starting at 1, and comments reference them by
// that position.
type SeedData struct {
	Topics   []models.Topic
	Users    []models.User
	Articles []models.Article
	Comments []models.Comment
}

// DevelopmentSeed returns the dataset bundled with the binary
func DevelopmentSeed() (*SeedData, error) {
	sub, err := fs.Sub(seedFiles, "seeds")
	if err != nil {
		return nil, err
	}
	return LoadSeedData(sub)
}

// LoadSeedData reads topics.json, users.json, articles.json and comments.json
// from fsys
func LoadSeedData(fsys fs.FS) (*SeedData, error) {
	data := &SeedData{}
	files := []struct {
		name string
		dst  interface{}
	}{
		{"topics.json", &data.Topics},
		{"users.json", &data.Users},
		{"articles.json", &data.Articles},
		{"comments.json", &data.Comments},
	}

	for _, f := range files {
		raw, err := fs.ReadFile(fsys, f.name)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file %s: %w", f.name, err)
		}
		if err := json.Unmarshal(raw, f.dst); err != nil {
			return nil, fmt.Errorf("failed to parse seed file %s: %w", f.name, err)
		}
	}

	return data, nil
}

// Seed truncates every table and loads data using PostgreSQL COPY inside a
// single transaction
func (db *DB) Seed(ctx context.Context, data *SeedData) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"TRUNCATE comments, articles, users, topics RESTART IDENTITY CASCADE"); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}

	topics := make([][]interface{}, 0, len(data.Topics))
	for _, t := range data.Topics {
		topics = append(topics, []interface{}{t.Slug, t.Description})
	}
	if err := copyRows(ctx, tx, "topics", []string{"slug", "description"}, topics); err != nil {
		return err
	}

	users := make([][]interface{}, 0, len(data.Users))
	for _, u := range data.Users {
		users = append(users, []interface{}{u.Username, u.Name, u.AvatarURL})
	}
	if err := copyRows(ctx, tx, "users", []string{"username", "name", "avatar_url"}, users); err != nil {
		return err
	}

	articles := make([][]interface{}, 0, len(data.Articles))
	for _, a := range data.Articles {
		articles = append(articles, []interface{}{
			a.Title, a.Topic, a.Author, a.Body, a.CreatedAt, a.Votes, a.ArticleImgURL,
		})
	}
	if err := copyRows(ctx, tx, "articles",
		[]string{"title", "topic", "author", "body", "created_at", "votes", "article_img_url"},
		articles); err != nil {
		return err
	}

	comments := make([][]interface{}, 0, len(data.Comments))
	for _, c := range data.Comments {
		comments = append(comments, []interface{}{
			c.Body, c.ArticleID, c.Author, c.Votes, c.CreatedAt,
		})
	}
	if err := copyRows(ctx, tx, "comments",
		[]string{"body", "article_id", "author", "votes", "created_at"},
		comments); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	db.log.Info().
		Int("topics", len(data.Topics)).
		Int("users", len(data.Users)).
		Int("articles", len(data.Articles)).
		Int("comments", len(data.Comments)).
		Msg("Database seeded")

	return nil
}

// copyRows streams rows into table with COPY FROM STDIN
func copyRows(ctx context.Context, tx *sql.Tx, table string, columns []string, rows [][]interface{}) error {
	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, columns...))
	if err != nil {
		return fmt.Errorf("failed to prepare copy into %s: %w", table, err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("failed to copy row into %s: %w", table, err)
		}
	}

	// Execute the COPY
	if _, err := stmt.ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to flush copy into %s: %w", table, err)
	}
	return nil
}
