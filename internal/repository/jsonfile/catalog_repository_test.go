package jsonfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"app-catalog-be/internal/entity"
	"app-catalog-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLoadMissingFile(t *testing.T) {
	repo := NewCatalogRepository(filepath.Join(t.TempDir(), "apps.json"), logger.NewNop())
	assert.Empty(t, repo.Load())
}

func TestCatalogLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewCatalogRepository(path, logger.NewNop())
	assert.Empty(t, repo.Load())
}

func TestCatalogRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps.json")
	repo := NewCatalogRepository(path, logger.NewNop())

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	apps := []entity.App{
		{
			Slug:              "meu-app",
			Name:              "Meu App",
			CompatibleDevices: []string{entity.DeviceAndroid},
			InterfaceImages:   []entity.InterfaceImage{{Url: "/uploads/a.png", Caption: "c"}},
			Tutorials:         []entity.Tutorial{{Title: "T", Url: "/uploads/t.mp4", Icon: "🎬", IsVideo: true}},
			VisibleOnHome:     true,
			CreatedAt:         now,
			UpdatedAt:         now,
		},
	}

	require.NoError(t, repo.Save(apps))
	assert.Equal(t, apps, repo.Load())
}

func TestCatalogSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewCatalogRepository(filepath.Join(dir, "apps.json"), logger.NewNop())

	require.NoError(t, repo.Save([]entity.App{{Slug: "a", Name: "A"}}))
	require.NoError(t, repo.Save([]entity.App{{Slug: "b", Name: "B"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "apps.json", entries[0].Name())
}

// Older catalog files stored screenshots as bare URL strings.
func TestCatalogLoadLegacyImageStrings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps.json")
	legacy := `[{"slug":"old","name":"Old","interface_images":["/uploads/x.png"],"tutorials":[]}]`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	repo := NewCatalogRepository(path, logger.NewNop())
	apps := repo.Load()
	require.Len(t, apps, 1)
	require.Len(t, apps[0].InterfaceImages, 1)
	assert.Equal(t, "/uploads/x.png", apps[0].InterfaceImages[0].Url)
	assert.Empty(t, apps[0].InterfaceImages[0].Caption)
}

func TestSettingsRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	repo := NewSettingsRepository(path, logger.NewNop())

	assert.Equal(t, entity.Settings{}, repo.Load())

	want := entity.Settings{DownloaderVideo: "https://example.com/a.mp4"}
	require.NoError(t, repo.Save(want))
	assert.Equal(t, want, repo.Load())
}

func TestTutorialRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tutorials.json")
	repo := NewTutorialRepository(path, logger.NewNop())

	assert.Empty(t, repo.Load())
	require.NoError(t, repo.Save(nil))
	assert.Empty(t, repo.Load())
}
