package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Mariha-B/nc-news/internal/models"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	db DBTX
}

// NewUserRepo creates a new user repository
func NewUserRepo(db DBTX) UserRepository {
	return &userRepo{db: db}
}

// List retrieves every user
func (r *userRepo) List(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT username, name, avatar_url FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		var u models.User
		var avatar sql.NullString
		if err := rows.Scan(&u.Username, &u.Name, &avatar); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		u.AvatarURL = avatar.String
		users = append(users, &u)
	}
	return users, rows.Err()
}
