package service

import (
	"os"
	"path/filepath"
	"testing"

	"app-catalog-be/internal/entity"
	"app-catalog-be/internal/pkg/logger"
	"app-catalog-be/internal/repository/jsonfile"
	"app-catalog-be/pkg/staticgen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPageTemplate = `<html><head><meta name="description" content="{{meta_description}}"></head>
<body><h1>{{app_name}}</h1>
<section id="videos-section"><div id="video-grid"></div></section>
<section id="links-section"><div id="links-grid"></div></section>
<section id="screenshots-section"><div id="interface-grid"></div></section>
</body></html>`

const testHomeTemplate = `<html><body>{{range .Apps}}<a href="/{{.Slug}}">{{.Name}}</a>{{end}}</body></html>`

const testTutorialsTemplate = `<html><body>{{range .Items}}<p>{{.Title}} {{.AppName}}</p>{{end}}</body></html>`

type catalogSaver interface {
	Save(apps []entity.App) error
}

func newStaticFixture(t *testing.T) (IStaticSiteService, catalogSaver, string, string) {
	t.Helper()
	root := t.TempDir()
	templatesDir := filepath.Join(root, "templates")
	publicDir := filepath.Join(root, "public")
	appsDir := filepath.Join(publicDir, "apps")
	require.NoError(t, os.MkdirAll(templatesDir, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(templatesDir, "base.html"), []byte(testPageTemplate), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(templatesDir, "base.css"), []byte("body{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(templatesDir, "home.html"), []byte(testHomeTemplate), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(templatesDir, "tutorials.html"), []byte(testTutorialsTemplate), 0o644))

	catalogRepo := jsonfile.NewCatalogRepository(filepath.Join(root, "data", "apps.json"), logger.NewNop())
	settingsRepo := jsonfile.NewSettingsRepository(filepath.Join(root, "data", "settings.json"), logger.NewNop())
	tutorialRepo := jsonfile.NewTutorialRepository(filepath.Join(root, "data", "tutorials.json"), logger.NewNop())

	svc := NewStaticSiteService(
		catalogRepo,
		settingsRepo,
		tutorialRepo,
		staticgen.NewRenderer("https://apps.example.com"),
		templatesDir,
		publicDir,
		appsDir,
		logger.NewNop(),
	)
	return svc, catalogRepo, publicDir, appsDir
}

func TestRebuildAllWritesEverything(t *testing.T) {
	svc, catalog, publicDir, appsDir := newStaticFixture(t)
	require.NoError(t, catalog.Save([]entity.App{
		{Slug: "meu-app", Name: "Meu App", VisibleOnHome: true},
		{Slug: "oculto", Name: "Oculto"},
	}))

	require.NoError(t, svc.RebuildAll())

	home, err := os.ReadFile(filepath.Join(publicDir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(home), "Meu App")
	assert.NotContains(t, string(home), "Oculto", "home lists only visibleOnHome records")

	assert.FileExists(t, filepath.Join(publicDir, "tutorial", "index.html"))
	assert.FileExists(t, filepath.Join(appsDir, "meu-app", "index.html"))
	assert.FileExists(t, filepath.Join(appsDir, "meu-app", "styles.css"))
	assert.FileExists(t, filepath.Join(appsDir, "oculto", "index.html"))
}

func TestRebuildAllIdempotent(t *testing.T) {
	svc, catalog, publicDir, appsDir := newStaticFixture(t)
	require.NoError(t, catalog.Save([]entity.App{{Slug: "meu-app", Name: "Meu App", VisibleOnHome: true}}))

	require.NoError(t, svc.RebuildAll())
	first := readAll(t, publicDir, appsDir)
	require.NoError(t, svc.RebuildAll())
	second := readAll(t, publicDir, appsDir)

	assert.Equal(t, first, second)
}

func TestRebuildAllSkipsBrokenRecord(t *testing.T) {
	svc, catalog, _, appsDir := newStaticFixture(t)
	require.NoError(t, catalog.Save([]entity.App{
		{Slug: "quebrado", Name: ""}, // unrenderable
		{Slug: "meu-app", Name: "Meu App"},
	}))

	err := svc.RebuildAll()
	assert.Error(t, err, "aggregated error reports the broken record")
	assert.FileExists(t, filepath.Join(appsDir, "meu-app", "index.html"), "remaining records still rebuild")
	assert.NoFileExists(t, filepath.Join(appsDir, "quebrado", "index.html"))
}

func readAll(t *testing.T, publicDir, appsDir string) map[string]string {
	t.Helper()
	out := map[string]string{}
	for _, p := range []string{
		filepath.Join(publicDir, "index.html"),
		filepath.Join(publicDir, "tutorial", "index.html"),
		filepath.Join(appsDir, "meu-app", "index.html"),
		filepath.Join(appsDir, "meu-app", "styles.css"),
	} {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		out[p] = string(data)
	}
	return out
}
