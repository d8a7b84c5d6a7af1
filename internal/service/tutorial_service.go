package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"app-catalog-be/internal/dto"
	"app-catalog-be/internal/entity"
	"app-catalog-be/internal/pkg/logger"
	"app-catalog-be/internal/repository/contract"
	"app-catalog-be/pkg/events"
	"app-catalog-be/pkg/slug"

	"github.com/google/uuid"
)

var ErrTutorialNotFound = errors.New("tutorial not found")

type ITutorialService interface {
	GetAll() []entity.GlobalTutorial
	Get(id string) (*entity.GlobalTutorial, bool)
	Save(ctx context.Context, req *dto.SaveTutorialRequest) (*entity.GlobalTutorial, error)
	Delete(ctx context.Context, id string) error
}

// tutorialService manages the catalog-independent tutorials. Slugs are
// derived from titles and disambiguated with a numeric suffix; every
// mutation refreshes the tutorials index page.
type tutorialService struct {
	tutorialRepo     contract.TutorialRepository
	staticService    IStaticSiteService
	publisherService IPublisherService
	logger           logger.ILogger
	now              func() time.Time
}

func NewTutorialService(
	tutorialRepo contract.TutorialRepository,
	staticService IStaticSiteService,
	publisherService IPublisherService,
	logger logger.ILogger,
) ITutorialService {
	return &tutorialService{
		tutorialRepo:     tutorialRepo,
		staticService:    staticService,
		publisherService: publisherService,
		logger:           logger,
		now:              time.Now,
	}
}

func (s *tutorialService) GetAll() []entity.GlobalTutorial {
	return s.tutorialRepo.Load()
}

func (s *tutorialService) Get(id string) (*entity.GlobalTutorial, bool) {
	tutorials := s.tutorialRepo.Load()
	for i := range tutorials {
		if tutorials[i].Id.String() == id {
			return &tutorials[i], true
		}
	}
	return nil, false
}

func (s *tutorialService) Save(ctx context.Context, req *dto.SaveTutorialRequest) (*entity.GlobalTutorial, error) {
	tutorials := s.tutorialRepo.Load()
	now := s.now()

	targetIdx := -1
	if req.Id != "" {
		for i := range tutorials {
			if tutorials[i].Id.String() == req.Id {
				targetIdx = i
				break
			}
		}
		if targetIdx < 0 {
			return nil, ErrTutorialNotFound
		}
	}

	var otherSlugs []string
	for i := range tutorials {
		if i != targetIdx {
			otherSlugs = append(otherSlugs, tutorials[i].Slug)
		}
	}

	tutorial := entity.GlobalTutorial{
		Id:          uuid.New(),
		Slug:        slug.Allocate(req.Title, otherSlugs),
		Title:       req.Title,
		Description: req.Description,
		Url:         req.Url,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if targetIdx >= 0 {
		tutorial.Id = tutorials[targetIdx].Id
		tutorial.CreatedAt = tutorials[targetIdx].CreatedAt
		tutorials[targetIdx] = tutorial
	} else {
		tutorials = append(tutorials, tutorial)
	}

	if err := s.tutorialRepo.Save(tutorials); err != nil {
		return nil, fmt.Errorf("persist tutorials: %w", err)
	}

	s.publish(ctx, tutorial.Slug)
	s.regenerateIndex()
	return &tutorial, nil
}

func (s *tutorialService) Delete(ctx context.Context, id string) error {
	tutorials := s.tutorialRepo.Load()
	idx := -1
	for i := range tutorials {
		if tutorials[i].Id.String() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrTutorialNotFound
	}

	removed := tutorials[idx]
	next := make([]entity.GlobalTutorial, 0, len(tutorials)-1)
	next = append(next, tutorials[:idx]...)
	next = append(next, tutorials[idx+1:]...)
	if err := s.tutorialRepo.Save(next); err != nil {
		return fmt.Errorf("persist tutorials: %w", err)
	}

	s.publish(ctx, removed.Slug)
	s.regenerateIndex()
	return nil
}

func (s *tutorialService) regenerateIndex() {
	if err := s.staticService.GenerateTutorialsPage(); err != nil {
		s.logger.Error("tutorial", "failed to regenerate tutorials page", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *tutorialService) publish(ctx context.Context, slug string) {
	evt := events.CatalogChangedEvent{Action: events.ActionTutorial, Slug: slug, OccurredAt: s.now()}
	if err := s.publisherService.Publish(ctx, evt); err != nil {
		s.logger.Warn("tutorial", "failed to publish catalog event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
