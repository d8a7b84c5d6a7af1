package service

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"app-catalog-be/internal/dto"
	"app-catalog-be/internal/entity"
	"app-catalog-be/internal/pkg/logger"
	"app-catalog-be/internal/repository/contract"
	"app-catalog-be/pkg/staticgen"
)

type IStaticSiteService interface {
	GenerateAppPage(app *entity.App) error
	GenerateHomePage() error
	GenerateTutorialsPage() error
	RemoveAppOutput(slug string) error
	RebuildAll() error
	VisibleApps() []entity.App
	TutorialIndex() []dto.TutorialIndexItem
}

// staticSiteService regenerates the public site from catalog state: the home
// listing, the tutorials index and one directory per app. Output is derived
// purely from the stored documents, so regeneration is idempotent.
type staticSiteService struct {
	catalogRepo  contract.CatalogRepository
	settingsRepo contract.SettingsRepository
	tutorialRepo contract.TutorialRepository
	renderer     *staticgen.Renderer
	templatesDir string
	publicDir    string
	appsDir      string
	logger       logger.ILogger
}

func NewStaticSiteService(
	catalogRepo contract.CatalogRepository,
	settingsRepo contract.SettingsRepository,
	tutorialRepo contract.TutorialRepository,
	renderer *staticgen.Renderer,
	templatesDir string,
	publicDir string,
	appsDir string,
	logger logger.ILogger,
) IStaticSiteService {
	return &staticSiteService{
		catalogRepo:  catalogRepo,
		settingsRepo: settingsRepo,
		tutorialRepo: tutorialRepo,
		renderer:     renderer,
		templatesDir: templatesDir,
		publicDir:    publicDir,
		appsDir:      appsDir,
		logger:       logger,
	}
}

// GenerateAppPage writes index.html plus the page stylesheet under the app's
// output directory.
func (s *staticSiteService) GenerateAppPage(app *entity.App) error {
	pageTemplate, err := os.ReadFile(filepath.Join(s.templatesDir, "base.html"))
	if err != nil {
		return fmt.Errorf("read page template: %w", err)
	}

	settings := s.settingsRepo.Load()
	page, err := s.renderer.Render(app, &settings, string(pageTemplate))
	if err != nil {
		return err
	}

	outDir := filepath.Join(s.appsDir, app.Slug)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir for %s: %w", app.Slug, err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "index.html"), []byte(page), 0o644); err != nil {
		return fmt.Errorf("write page for %s: %w", app.Slug, err)
	}

	css, err := os.ReadFile(filepath.Join(s.templatesDir, "base.css"))
	if err != nil {
		return fmt.Errorf("read page stylesheet: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "styles.css"), css, 0o644); err != nil {
		return fmt.Errorf("write stylesheet for %s: %w", app.Slug, err)
	}
	return nil
}

// GenerateHomePage writes the public landing page listing every app marked
// visible on home.
func (s *staticSiteService) GenerateHomePage() error {
	data := struct {
		Apps    []entity.App
		BaseURL string
	}{
		Apps:    s.VisibleApps(),
		BaseURL: s.renderer.BaseURL,
	}
	return s.executeView("home.html", filepath.Join(s.publicDir, "index.html"), data)
}

// GenerateTutorialsPage writes the aggregated tutorials index: every app's
// video tutorials plus the global entries.
func (s *staticSiteService) GenerateTutorialsPage() error {
	data := struct {
		Items   []dto.TutorialIndexItem
		BaseURL string
	}{
		Items:   s.TutorialIndex(),
		BaseURL: s.renderer.BaseURL,
	}
	return s.executeView("tutorials.html", filepath.Join(s.publicDir, "tutorial", "index.html"), data)
}

// RemoveAppOutput deletes the generated directory of one app.
func (s *staticSiteService) RemoveAppOutput(slug string) error {
	if slug == "" {
		return nil
	}
	return os.RemoveAll(filepath.Join(s.appsDir, slug))
}

// RebuildAll regenerates home, tutorials index and every app page, in that
// order. One broken record is logged and skipped so the rest of the catalog
// still rebuilds; the aggregated error reports everything that failed.
func (s *staticSiteService) RebuildAll() error {
	var failures []error

	if err := s.GenerateHomePage(); err != nil {
		s.logger.Error("static", "failed to generate home page", map[string]interface{}{"error": err.Error()})
		failures = append(failures, err)
	}
	if err := s.GenerateTutorialsPage(); err != nil {
		s.logger.Error("static", "failed to generate tutorials page", map[string]interface{}{"error": err.Error()})
		failures = append(failures, err)
	}

	apps := s.catalogRepo.Load()
	for i := range apps {
		if err := s.GenerateAppPage(&apps[i]); err != nil {
			s.logger.Error("static", "failed to generate app page", map[string]interface{}{
				"slug":  apps[i].Slug,
				"error": err.Error(),
			})
			failures = append(failures, fmt.Errorf("app %s: %w", apps[i].Slug, err))
		}
	}

	s.logger.Info("static", "site rebuilt", map[string]interface{}{
		"apps":     len(apps),
		"failures": len(failures),
	})
	return errors.Join(failures...)
}

// VisibleApps returns the catalog entries shown on the home page.
func (s *staticSiteService) VisibleApps() []entity.App {
	var out []entity.App
	for _, app := range s.catalogRepo.Load() {
		if app.VisibleOnHome {
			out = append(out, app)
		}
	}
	return out
}

// TutorialIndex flattens every app's video tutorials and the global entries
// into the rows of the tutorials index page.
func (s *staticSiteService) TutorialIndex() []dto.TutorialIndexItem {
	var items []dto.TutorialIndexItem
	for _, app := range s.catalogRepo.Load() {
		for _, t := range app.VideoTutorials() {
			items = append(items, dto.TutorialIndexItem{
				Title:       t.Title,
				Url:         t.Url,
				Icon:        t.Icon,
				Description: t.Description,
				AppName:     app.Name,
				AppSlug:     app.Slug,
			})
		}
	}
	for _, g := range s.tutorialRepo.Load() {
		items = append(items, dto.TutorialIndexItem{
			Title:       g.Title,
			Url:         g.Url,
			Icon:        defaultTutorialIcon,
			Description: g.Description,
		})
	}
	return items
}

func (s *staticSiteService) executeView(name, outPath string, data interface{}) error {
	tmpl, err := template.ParseFiles(filepath.Join(s.templatesDir, name))
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute %s: %w", name, err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", name, err)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}
