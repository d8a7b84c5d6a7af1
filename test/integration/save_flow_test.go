package integration

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"app-catalog-be/internal/bootstrap"
	"app-catalog-be/internal/config"
	"app-catalog-be/internal/entity"
	"app-catalog-be/internal/pkg/logger"
	"app-catalog-be/internal/pkg/serverutils"
	"app-catalog-be/internal/repository/jsonfile"
	"app-catalog-be/internal/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminPassword = "admin123"

func newTestApp(t *testing.T) (*fiber.App, *config.Config) {
	t.Helper()
	root := t.TempDir()

	t.Setenv("ADMIN_PASSWORD", adminPassword)
	t.Setenv("JWT_SECRET", "integration-secret")
	t.Setenv("DATA_DIR", filepath.Join(root, "data"))
	t.Setenv("PUBLIC_DIR", filepath.Join(root, "public"))
	t.Setenv("UPLOADS_DIR", filepath.Join(root, "public", "uploads"))
	t.Setenv("APPS_DIR", filepath.Join(root, "public", "apps"))
	t.Setenv("LOG_FILE_PATH", filepath.Join(root, "logs", "app.log"))
	// Real assets from the repo root; tests run in the package dir.
	t.Setenv("TEMPLATES_DIR", "../../templates")
	t.Setenv("VIEWS_DIR", "../../views")

	cfg := config.Load()
	container := bootstrap.NewContainer(cfg)
	srv := server.New(cfg, container)
	return srv.GetApp(), cfg
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	form := url.Values{"password": {adminPassword}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/painel", resp.Header.Get("Location"))

	for _, c := range resp.Cookies() {
		if c.Name == serverutils.AdminCookie {
			require.NotEmpty(t, c.Value)
			return c.Value
		}
	}
	t.Fatal("login response set no admin cookie")
	return ""
}

func TestPanelRequiresAuth(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/painel", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app, _ := newTestApp(t)

	form := url.Values{"password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSaveFlow(t *testing.T) {
	app, cfg := newTestApp(t)
	token := login(t, app)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("name", "Meu App"))
	require.NoError(t, writer.WriteField("description", "X"))
	require.NoError(t, writer.WriteField("devices", "android"))
	require.NoError(t, writer.WriteField("visibleOnHome", "true"))
	require.NoError(t, writer.WriteField("tutorial_title", "Guia"))
	require.NoError(t, writer.WriteField("tutorial_url", "https://example.com/guia"))
	logoPart, err := writer.CreateFormFile("logo_file", "logo.png")
	require.NoError(t, err)
	_, err = logoPart.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/save", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.AddCookie(&http.Cookie{Name: serverutils.AdminCookie, Value: token})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/painel", resp.Header.Get("Location"))

	// Catalog persisted with the reconciled record.
	apps := jsonfile.NewCatalogRepository(cfg.CatalogFile(), logger.NewNop()).Load()
	require.Len(t, apps, 1)
	assert.Equal(t, "meu-app", apps[0].Slug)
	assert.Equal(t, []string{entity.DeviceAndroid}, apps[0].CompatibleDevices)
	assert.True(t, apps[0].VisibleOnHome)
	require.Len(t, apps[0].Tutorials, 1)
	assert.False(t, apps[0].Tutorials[0].IsVideo)
	assert.True(t, strings.HasPrefix(apps[0].Logo, "/uploads/meu-app-logo-"))

	// Upload stored under the deterministic naming scheme.
	entries, err := os.ReadDir(cfg.Site.UploadsDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "meu-app-logo-"))

	// Static output regenerated.
	assert.FileExists(t, filepath.Join(cfg.Site.AppsDir, "meu-app", "index.html"))
	assert.FileExists(t, filepath.Join(cfg.Site.PublicDir, "index.html"))

	// Generated page is served on the public route.
	pageReq := httptest.NewRequest(http.MethodGet, "/meu-app", nil)
	pageResp, err := app.Test(pageReq, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, pageResp.StatusCode)
}

func TestDeleteFlow(t *testing.T) {
	app, cfg := newTestApp(t)
	token := login(t, app)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("name", "Temporário"))
	require.NoError(t, writer.Close())

	saveReq := httptest.NewRequest(http.MethodPost, "/save", &body)
	saveReq.Header.Set("Content-Type", writer.FormDataContentType())
	saveReq.AddCookie(&http.Cookie{Name: serverutils.AdminCookie, Value: token})
	saveResp, err := app.Test(saveReq, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, saveResp.StatusCode)

	delReq := httptest.NewRequest(http.MethodGet, "/delete/temporario", nil)
	delReq.AddCookie(&http.Cookie{Name: serverutils.AdminCookie, Value: token})
	delResp, err := app.Test(delReq, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, delResp.StatusCode)

	apps := jsonfile.NewCatalogRepository(cfg.CatalogFile(), logger.NewNop()).Load()
	assert.Empty(t, apps)
	assert.NoDirExists(t, filepath.Join(cfg.Site.AppsDir, "temporario"))
}
