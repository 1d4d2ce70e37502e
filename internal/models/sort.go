package models

// Direction is a vetted ORDER BY keyword
type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

// Sort is a validated ordering request. Column is always one of the
// greenlisted column names for the resource being listed.
type Sort struct {
	Column    string
	Direction Direction
}

// Default sort column and direction for articles and comments
const (
	DefaultSortColumn = "created_at"
	DefaultDirection  = Descending
)
