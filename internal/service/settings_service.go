package service

import (
	"context"
	"fmt"
	"time"

	"app-catalog-be/internal/dto"
	"app-catalog-be/internal/entity"
	"app-catalog-be/internal/pkg/logger"
	"app-catalog-be/internal/repository/contract"
	"app-catalog-be/pkg/events"
)

type ISettingsService interface {
	Get() entity.Settings
	Update(ctx context.Context, req *dto.UpdateSettingsRequest) (entity.Settings, error)
}

// settingsService owns the universal tutorial-video fallbacks. Generated
// pages embed these links, so an update triggers a full rebuild.
type settingsService struct {
	settingsRepo     contract.SettingsRepository
	staticService    IStaticSiteService
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewSettingsService(
	settingsRepo contract.SettingsRepository,
	staticService IStaticSiteService,
	publisherService IPublisherService,
	logger logger.ILogger,
) ISettingsService {
	return &settingsService{
		settingsRepo:     settingsRepo,
		staticService:    staticService,
		publisherService: publisherService,
		logger:           logger,
	}
}

func (s *settingsService) Get() entity.Settings {
	return s.settingsRepo.Load()
}

func (s *settingsService) Update(ctx context.Context, req *dto.UpdateSettingsRequest) (entity.Settings, error) {
	settings := entity.Settings{
		DownloaderVideo:    req.DownloaderVideo,
		DownloaderAltVideo: req.DownloaderAltVideo,
		BrowserVideo:       req.BrowserVideo,
	}
	if err := s.settingsRepo.Save(settings); err != nil {
		return entity.Settings{}, fmt.Errorf("persist settings: %w", err)
	}

	evt := events.CatalogChangedEvent{Action: events.ActionSettings, OccurredAt: time.Now()}
	if err := s.publisherService.Publish(ctx, evt); err != nil {
		s.logger.Warn("settings", "failed to publish catalog event", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if err := s.staticService.RebuildAll(); err != nil {
		s.logger.Error("settings", "rebuild after settings update failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return settings, nil
}
