package contract

import "app-catalog-be/internal/entity"

// TutorialRepository persists the global tutorials document, independent of
// any single app record.
type TutorialRepository interface {
	Load() []entity.GlobalTutorial
	Save(tutorials []entity.GlobalTutorial) error
}
