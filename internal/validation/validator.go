package validation

import (
	"errors"
	"strings"

	"github.com/Mariha-B/nc-news/internal/apperror"
	"github.com/Mariha-B/nc-news/internal/models"
	"github.com/Mariha-B/nc-news/internal/repository"
	"github.com/go-playground/validator/v10"
)

const (
	msgInvalidSortBy = "invalid sort_by query"
	msgInvalidOrder  = "invalid order query"
	msgBadRequest    = "Bad Request"
)

type articleSortQuery struct {
	SortBy string `validate:"omitempty,article_sort"`
	Order  string `validate:"omitempty,oneof=asc desc"`
}

type commentSortQuery struct {
	SortBy string `validate:"omitempty,comment_sort"`
	Order  string `validate:"omitempty,oneof=asc desc"`
}

// Validator checks list query parameters and request bodies before they reach
// a repository. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	v := validator.New()
	// Sortable columns are owned by the repository that renders ORDER BY
	_ = v.RegisterValidation("article_sort", func(fl validator.FieldLevel) bool {
		return repository.ArticleSortable(fl.Field().String())
	})
	_ = v.RegisterValidation("comment_sort", func(fl validator.FieldLevel) bool {
		return repository.CommentSortable(fl.Field().String())
	})
	return &Validator{validate: v}
}

// ArticleSort validates the sort_by and order query values of an article
// listing. Empty values fall back to created_at and descending.
func (v *Validator) ArticleSort(sortBy, order string) (models.Sort, error) {
	q := articleSortQuery{SortBy: sortBy, Order: strings.ToLower(order)}
	if err := v.validate.Struct(q); err != nil {
		return models.Sort{}, sortError(err)
	}
	return buildSort(q.SortBy, q.Order), nil
}

// CommentSort validates the sort_by and order query values of a comment
// listing
func (v *Validator) CommentSort(sortBy, order string) (models.Sort, error) {
	q := commentSortQuery{SortBy: sortBy, Order: strings.ToLower(order)}
	if err := v.validate.Struct(q); err != nil {
		return models.Sort{}, sortError(err)
	}
	return buildSort(q.SortBy, q.Order), nil
}

// NewComment checks that a comment carries an author and a body
func (v *Validator) NewComment(c *models.NewComment) error {
	if c == nil {
		return apperror.BadRequest(msgBadRequest)
	}
	if err := v.validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return apperror.BadRequest(msgBadRequest)
		}
		return err
	}
	return nil
}

func buildSort(sortBy, order string) models.Sort {
	s := models.Sort{Column: sortBy, Direction: models.DefaultDirection}
	if s.Column == "" {
		s.Column = models.DefaultSortColumn
	}
	if order == "asc" {
		s.Direction = models.Ascending
	}
	return s
}

// sortError reports the first rejected field. sort_by is declared first so it
// wins when both values are invalid.
func sortError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	if verrs[0].Field() == "SortBy" {
		return apperror.BadRequest(msgInvalidSortBy)
	}
	return apperror.BadRequest(msgInvalidOrder)
}
