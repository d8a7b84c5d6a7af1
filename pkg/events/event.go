package events

import "time"

// Catalog change actions published on the in-process bus.
const (
	ActionSave        = "SAVE"
	ActionDelete      = "DELETE"
	ActionDeleteImage = "DELETE_IMAGE"
	ActionSettings    = "SETTINGS"
	ActionTutorial    = "TUTORIAL"
	ActionRebuild     = "REBUILD"
)

// CatalogChangedEvent describes one mutation of the catalog or its generated
// output. It is published after the write completed, so consumers observe
// only durable state.
type CatalogChangedEvent struct {
	Action     string    `json:"action"`
	Slug       string    `json:"slug,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
