package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"app-catalog-be/internal/dto"
	"app-catalog-be/internal/entity"
	"app-catalog-be/internal/pkg/logger"
	"app-catalog-be/internal/repository/contract"
	"app-catalog-be/pkg/events"
)

var ErrAppNotFound = errors.New("app not found")

type IAppService interface {
	GetAll() []entity.App
	Get(slug string) (*entity.App, bool)
	Save(ctx context.Context, req *dto.SaveAppRequest, files *dto.UploadedFiles) (*entity.App, error)
	Delete(ctx context.Context, slug string) error
	DeleteImage(ctx context.Context, slug string, imgName string) error
}

type appService struct {
	catalogRepo      contract.CatalogRepository
	staticService    IStaticSiteService
	publisherService IPublisherService
	logger           logger.ILogger
	uploadsDir       string
	now              func() time.Time
}

func NewAppService(
	catalogRepo contract.CatalogRepository,
	staticService IStaticSiteService,
	publisherService IPublisherService,
	logger logger.ILogger,
	uploadsDir string,
) IAppService {
	return &appService{
		catalogRepo:      catalogRepo,
		staticService:    staticService,
		publisherService: publisherService,
		logger:           logger,
		uploadsDir:       uploadsDir,
		now:              time.Now,
	}
}

func (s *appService) GetAll() []entity.App {
	return s.catalogRepo.Load()
}

func (s *appService) Get(slug string) (*entity.App, bool) {
	apps := s.catalogRepo.Load()
	for i := range apps {
		if apps[i].Slug == slug {
			return &apps[i], true
		}
	}
	return nil, false
}

// Save reconciles one edit form submission against the catalog, persists the
// result and regenerates the site. Cleanup of replaced uploads and the
// rebuild are best-effort once the catalog write succeeded.
func (s *appService) Save(ctx context.Context, req *dto.SaveAppRequest, files *dto.UploadedFiles) (*entity.App, error) {
	result, err := reconcile(s.catalogRepo.Load(), req, files, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.catalogRepo.Save(result.apps); err != nil {
		return nil, fmt.Errorf("persist catalog: %w", err)
	}

	s.removeUploadFiles(result.deletions)
	s.publish(ctx, events.ActionSave, result.app.Slug)

	// A rename leaves the old output directory behind; drop it before the
	// rebuild writes the new one.
	if req.OriginalSlug != "" && req.OriginalSlug != result.app.Slug {
		if err := s.staticService.RemoveAppOutput(req.OriginalSlug); err != nil {
			s.logger.Warn("app", "failed to remove renamed app output", map[string]interface{}{
				"slug":  req.OriginalSlug,
				"error": err.Error(),
			})
		}
	}
	if err := s.staticService.RebuildAll(); err != nil {
		s.logger.Error("app", "rebuild after save failed", map[string]interface{}{
			"slug":  result.app.Slug,
			"error": err.Error(),
		})
	}

	return result.app, nil
}

// Delete removes the record, its generated directory and its hosted uploads,
// then refreshes the listing pages.
func (s *appService) Delete(ctx context.Context, slug string) error {
	apps := s.catalogRepo.Load()
	idx := -1
	for i := range apps {
		if apps[i].Slug == slug {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrAppNotFound
	}

	removed := apps[idx]
	next := make([]entity.App, 0, len(apps)-1)
	next = append(next, apps[:idx]...)
	next = append(next, apps[idx+1:]...)
	if err := s.catalogRepo.Save(next); err != nil {
		return fmt.Errorf("persist catalog: %w", err)
	}

	s.removeUploadFiles(uploadRefs(&removed))
	if err := s.staticService.RemoveAppOutput(slug); err != nil {
		s.logger.Warn("app", "failed to remove app output", map[string]interface{}{
			"slug":  slug,
			"error": err.Error(),
		})
	}

	s.publish(ctx, events.ActionDelete, slug)

	if err := s.staticService.GenerateHomePage(); err != nil {
		s.logger.Error("app", "failed to regenerate home page", map[string]interface{}{"error": err.Error()})
	}
	if err := s.staticService.GenerateTutorialsPage(); err != nil {
		s.logger.Error("app", "failed to regenerate tutorials page", map[string]interface{}{"error": err.Error()})
	}
	return nil
}

// DeleteImage drops one screenshot reference from a record, removes its file
// and regenerates that app's page. The catalog entry and the file must not
// diverge, so the reference goes first.
func (s *appService) DeleteImage(ctx context.Context, slug string, imgName string) error {
	apps := s.catalogRepo.Load()
	idx := -1
	for i := range apps {
		if apps[i].Slug == slug {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrAppNotFound
	}

	ref := "/uploads/" + imgName
	kept := make([]entity.InterfaceImage, 0, len(apps[idx].InterfaceImages))
	for _, img := range apps[idx].InterfaceImages {
		if img.Url != ref {
			kept = append(kept, img)
		}
	}
	apps[idx].InterfaceImages = kept
	apps[idx].UpdatedAt = s.now()

	if err := s.catalogRepo.Save(apps); err != nil {
		return fmt.Errorf("persist catalog: %w", err)
	}

	s.removeUploadFiles([]string{ref})
	s.publish(ctx, events.ActionDeleteImage, slug)

	if err := s.staticService.GenerateAppPage(&apps[idx]); err != nil {
		s.logger.Error("app", "failed to regenerate app page", map[string]interface{}{
			"slug":  slug,
			"error": err.Error(),
		})
	}
	return nil
}

// removeUploadFiles deletes the backing files of hosted references. Failures
// are logged, never surfaced: an orphaned file is acceptable.
func (s *appService) removeUploadFiles(refs []string) {
	for _, ref := range refs {
		name := strings.TrimPrefix(ref, "/uploads/")
		if name == "" || name == ref {
			continue
		}
		path := filepath.Join(s.uploadsDir, filepath.Base(name))
		if err := os.Remove(path); err != nil {
			s.logger.Warn("app", "failed to remove upload", map[string]interface{}{
				"file":  path,
				"error": err.Error(),
			})
		}
	}
}

func (s *appService) publish(ctx context.Context, action, slug string) {
	evt := events.CatalogChangedEvent{Action: action, Slug: slug, OccurredAt: s.now()}
	if err := s.publisherService.Publish(ctx, evt); err != nil {
		s.logger.Warn("app", "failed to publish catalog event", map[string]interface{}{
			"action": action,
			"error":  err.Error(),
		})
	}
}

// uploadRefs collects every hosted reference a record owns.
func uploadRefs(app *entity.App) []string {
	candidates := []string{
		app.Logo,
		app.DownloadUrl,
		app.BrowserDownloadUrl,
		app.DownloaderVideo,
		app.DownloaderAltVideo,
		app.BrowserVideo,
	}
	for _, img := range app.InterfaceImages {
		candidates = append(candidates, img.Url)
	}
	for _, t := range app.Tutorials {
		candidates = append(candidates, t.Url)
	}

	var refs []string
	for _, c := range candidates {
		if strings.HasPrefix(c, "/uploads/") {
			refs = append(refs, c)
		}
	}
	return refs
}
