package domain

import "time"

// Template is a saved, named query that users can run from the begin page.
// Templates are grouped into aspects (e.g. "Genomics", "Proteins") for
// display.
type Template struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"` // unique short identifier
	Title     string    `json:"title"`
	Aspect    string    `json:"aspect"`
	SQLText   string    `json:"sql"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TemplateFilter narrows template listings.
type TemplateFilter struct {
	Aspect *string
	Page   PageRequest
}
