package models

// Topic is a subject area articles are filed under, identified by its slug
type Topic struct {
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
}
