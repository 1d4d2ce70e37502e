package repository

import (
	"github.com/Mariha-B/nc-news/internal/apperror"
	"github.com/Mariha-B/nc-news/internal/models"
	"github.com/lib/pq"
)

// sortColumn is a pre-vetted ORDER BY target. table is the query alias the
// column belongs to, empty for output-column aliases such as comment_count.
type sortColumn struct {
	table string
	name  string
}

var articleSortColumns = map[string]sortColumn{
	"created_at":    {table: "a", name: "created_at"},
	"votes":         {table: "a", name: "votes"},
	"comment_count": {name: "comment_count"},
}

var commentSortColumns = map[string]sortColumn{
	"created_at": {table: "c", name: "created_at"},
	"votes":      {table: "c", name: "votes"},
}

// ArticleSortable reports whether column can be used to order article lists
func ArticleSortable(column string) bool {
	_, ok := articleSortColumns[column]
	return ok
}

// CommentSortable reports whether column can be used to order comment lists
func CommentSortable(column string) bool {
	_, ok := commentSortColumns[column]
	return ok
}

// orderByClause renders an ORDER BY clause. Only identifiers found in columns
// and the two direction keywords ever reach the query text.
func orderByClause(columns map[string]sortColumn, s models.Sort) (string, error) {
	if s.Column == "" {
		s.Column = models.DefaultSortColumn
	}
	if s.Direction == "" {
		s.Direction = models.DefaultDirection
	}

	col, ok := columns[s.Column]
	if !ok {
		return "", apperror.BadRequest("invalid sort_by query")
	}

	var dir string
	switch s.Direction {
	case models.Ascending:
		dir = "ASC"
	case models.Descending:
		dir = "DESC"
	default:
		return "", apperror.BadRequest("invalid order query")
	}

	ident := pq.QuoteIdentifier(col.name)
	if col.table != "" {
		ident = col.table + "." + ident
	}
	return "ORDER BY " + ident + " " + dir, nil
}
