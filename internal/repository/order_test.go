package repository

import (
	"testing"

	"github.com/Mariha-B/nc-news/internal/apperror"
	"github.com/Mariha-B/nc-news/internal/models"
)

func TestOrderByClause(t *testing.T) {
	tests := []struct {
		name    string
		columns map[string]sortColumn
		sort    models.Sort
		want    string
		wantErr string
	}{
		{"defaults", articleSortColumns, models.Sort{}, `ORDER BY a."created_at" DESC`, ""},
		{"alias column", articleSortColumns, models.Sort{Column: "comment_count", Direction: models.Ascending}, `ORDER BY "comment_count" ASC`, ""},
		{"comment votes", commentSortColumns, models.Sort{Column: "votes", Direction: models.Descending}, `ORDER BY c."votes" DESC`, ""},
		{"unknown column", articleSortColumns, models.Sort{Column: "title"}, "", "invalid sort_by query"},
		{"comment_count on comments", commentSortColumns, models.Sort{Column: "comment_count"}, "", "invalid sort_by query"},
		{"bad direction", commentSortColumns, models.Sort{Direction: "sideways"}, "", "invalid order query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := orderByClause(tt.columns, tt.sort)
			if tt.wantErr != "" {
				if !apperror.IsBadRequest(err) || err.Error() != tt.wantErr {
					t.Fatalf("expected bad request %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("orderByClause = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSortable(t *testing.T) {
	for _, col := range []string{"created_at", "votes", "comment_count"} {
		if !ArticleSortable(col) {
			t.Errorf("articles should sort by %s", col)
		}
	}
	if CommentSortable("comment_count") {
		t.Error("comments have no comment_count column")
	}
	if ArticleSortable("body") || CommentSortable("body") {
		t.Error("body must not be sortable")
	}
}

func BenchmarkOrderByClause(b *testing.B) {
	s := models.Sort{Column: "comment_count", Direction: models.Ascending}
	for i := 0; i < b.N; i++ {
		_, _ = orderByClause(articleSortColumns, s)
	}
}
