package validation

import (
	"testing"

	"github.com/Mariha-B/nc-news/internal/apperror"
	"github.com/Mariha-B/nc-news/internal/models"
)

func TestArticleSort(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		sortBy  string
		order   string
		want    models.Sort
		wantErr string
	}{
		{"defaults", "", "", models.Sort{Column: "created_at", Direction: models.Descending}, ""},
		{"votes ascending", "votes", "asc", models.Sort{Column: "votes", Direction: models.Ascending}, ""},
		{"comment count", "comment_count", "desc", models.Sort{Column: "comment_count", Direction: models.Descending}, ""},
		{"order is case insensitive", "", "ASC", models.Sort{Column: "created_at", Direction: models.Ascending}, ""},
		{"mixed case order", "votes", "DeSc", models.Sort{Column: "votes", Direction: models.Descending}, ""},
		{"unknown column", "banana", "", models.Sort{}, "invalid sort_by query"},
		{"injection attempt", "votes; DROP TABLE articles", "", models.Sort{}, "invalid sort_by query"},
		{"sort_by is case sensitive", "VOTES", "", models.Sort{}, "invalid sort_by query"},
		{"unknown order", "", "sideways", models.Sort{}, "invalid order query"},
		{"sort_by reported first", "banana", "sideways", models.Sort{}, "invalid sort_by query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ArticleSort(tt.sortBy, tt.order)
			if tt.wantErr != "" {
				if !apperror.IsBadRequest(err) {
					t.Fatalf("expected bad request, got %v", err)
				}
				if err.Error() != tt.wantErr {
					t.Errorf("message = %q, want %q", err.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ArticleSort() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCommentSort(t *testing.T) {
	v := NewValidator()

	got, err := v.CommentSort("votes", "asc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (models.Sort{Column: "votes", Direction: models.Ascending}) {
		t.Errorf("CommentSort() = %+v", got)
	}

	got, err = v.CommentSort("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (models.Sort{Column: models.DefaultSortColumn, Direction: models.DefaultDirection}) {
		t.Errorf("CommentSort() defaults = %+v", got)
	}

	// comment_count only exists on article listings
	if _, err := v.CommentSort("comment_count", ""); !apperror.IsBadRequest(err) {
		t.Errorf("expected bad request for comment_count, got %v", err)
	}
	if _, err := v.CommentSort("", "up"); err == nil || err.Error() != "invalid order query" {
		t.Errorf("expected invalid order query, got %v", err)
	}
}

func TestNewComment(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		comment *models.NewComment
		wantErr bool
	}{
		{"valid", &models.NewComment{ArticleID: 1, Author: "butter_bridge", Body: "Great read"}, false},
		{"missing author", &models.NewComment{ArticleID: 1, Body: "Great read"}, true},
		{"missing body", &models.NewComment{ArticleID: 1, Author: "butter_bridge"}, true},
		{"empty object", &models.NewComment{ArticleID: 1}, true},
		// the article reference is checked by the store
		{"no article", &models.NewComment{Author: "butter_bridge", Body: "x"}, false},
		{"nil", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.NewComment(tt.comment)
			if tt.wantErr {
				if !apperror.IsBadRequest(err) {
					t.Errorf("expected bad request, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
