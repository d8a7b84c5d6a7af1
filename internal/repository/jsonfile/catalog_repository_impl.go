package jsonfile

import (
	"os"

	"app-catalog-be/internal/entity"
	"app-catalog-be/internal/pkg/logger"
	"app-catalog-be/internal/repository/contract"
)

type catalogRepository struct {
	path string
	log  logger.ILogger
}

func NewCatalogRepository(path string, log logger.ILogger) contract.CatalogRepository {
	return &catalogRepository{path: path, log: log}
}

func (r *catalogRepository) Load() []entity.App {
	var apps []entity.App
	if err := readDocument(r.path, &apps); err != nil {
		if !os.IsNotExist(err) {
			r.log.Warn("catalog", "unreadable catalog file, treating as empty", map[string]interface{}{
				"path":  r.path,
				"error": err.Error(),
			})
		}
		return []entity.App{}
	}
	if apps == nil {
		apps = []entity.App{}
	}
	return apps
}

func (r *catalogRepository) Save(apps []entity.App) error {
	if apps == nil {
		apps = []entity.App{}
	}
	return writeDocument(r.path, apps)
}
