package jsonfile

import (
	"os"

	"app-catalog-be/internal/entity"
	"app-catalog-be/internal/pkg/logger"
	"app-catalog-be/internal/repository/contract"
)

type settingsRepository struct {
	path string
	log  logger.ILogger
}

func NewSettingsRepository(path string, log logger.ILogger) contract.SettingsRepository {
	return &settingsRepository{path: path, log: log}
}

func (r *settingsRepository) Load() entity.Settings {
	var settings entity.Settings
	if err := readDocument(r.path, &settings); err != nil {
		if !os.IsNotExist(err) {
			r.log.Warn("settings", "unreadable settings file, using defaults", map[string]interface{}{
				"path":  r.path,
				"error": err.Error(),
			})
		}
		return entity.Settings{}
	}
	return settings
}

func (r *settingsRepository) Save(settings entity.Settings) error {
	return writeDocument(r.path, settings)
}
