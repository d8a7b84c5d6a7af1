package entity

import (
	"time"

	"github.com/google/uuid"
)

// GlobalTutorial is a catalog-independent tutorial shown on the tutorials
// index. Its slug is always derived from the title, never user supplied.
type GlobalTutorial struct {
	Id          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Url         string    `json:"url"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
