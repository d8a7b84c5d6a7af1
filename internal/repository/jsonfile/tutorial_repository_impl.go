package jsonfile

import (
	"os"

	"app-catalog-be/internal/entity"
	"app-catalog-be/internal/pkg/logger"
	"app-catalog-be/internal/repository/contract"
)

type tutorialRepository struct {
	path string
	log  logger.ILogger
}

func NewTutorialRepository(path string, log logger.ILogger) contract.TutorialRepository {
	return &tutorialRepository{path: path, log: log}
}

func (r *tutorialRepository) Load() []entity.GlobalTutorial {
	var tutorials []entity.GlobalTutorial
	if err := readDocument(r.path, &tutorials); err != nil {
		if !os.IsNotExist(err) {
			r.log.Warn("tutorials", "unreadable tutorials file, treating as empty", map[string]interface{}{
				"path":  r.path,
				"error": err.Error(),
			})
		}
		return []entity.GlobalTutorial{}
	}
	if tutorials == nil {
		tutorials = []entity.GlobalTutorial{}
	}
	return tutorials
}

func (r *tutorialRepository) Save(tutorials []entity.GlobalTutorial) error {
	if tutorials == nil {
		tutorials = []entity.GlobalTutorial{}
	}
	return writeDocument(r.path, tutorials)
}
