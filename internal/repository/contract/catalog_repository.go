package contract

import "app-catalog-be/internal/entity"

// CatalogRepository persists the whole app catalog as one document.
// Load never fails: a missing or unreadable catalog reads as empty, and
// Save replaces the document atomically.
type CatalogRepository interface {
	Load() []entity.App
	Save(apps []entity.App) error
}
