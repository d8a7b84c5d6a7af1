package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"app-catalog-be/internal/dto"
	"app-catalog-be/internal/pkg/logger"
	"app-catalog-be/internal/repository/jsonfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTutorialService(t *testing.T) (ITutorialService, *fakeStaticService) {
	t.Helper()
	repo := jsonfile.NewTutorialRepository(filepath.Join(t.TempDir(), "tutorials.json"), logger.NewNop())
	static := &fakeStaticService{}
	svc := NewTutorialService(repo, static, &fakePublisher{}, logger.NewNop())
	svc.(*tutorialService).now = func() time.Time { return t0 }
	return svc, static
}

func TestTutorialServiceCreate(t *testing.T) {
	svc, static := newTutorialService(t)

	created, err := svc.Save(context.Background(), &dto.SaveTutorialRequest{
		Title: "Como instalar",
		Url:   "https://example.com/v.mp4",
	})
	require.NoError(t, err)

	assert.Equal(t, "como-instalar", created.Slug)
	assert.NotEqual(t, created.Id.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, t0, created.CreatedAt)
	assert.Equal(t, 1, static.tutorialPages)
}

func TestTutorialServiceSlugDisambiguation(t *testing.T) {
	svc, _ := newTutorialService(t)

	first, err := svc.Save(context.Background(), &dto.SaveTutorialRequest{Title: "Como instalar", Url: "https://a"})
	require.NoError(t, err)
	second, err := svc.Save(context.Background(), &dto.SaveTutorialRequest{Title: "Como instalar", Url: "https://b"})
	require.NoError(t, err)

	assert.Equal(t, "como-instalar", first.Slug)
	assert.Equal(t, "como-instalar-1", second.Slug)
}

func TestTutorialServiceUpdateKeepsIdentity(t *testing.T) {
	svc, _ := newTutorialService(t)

	created, err := svc.Save(context.Background(), &dto.SaveTutorialRequest{Title: "Como instalar", Url: "https://a"})
	require.NoError(t, err)

	updated, err := svc.Save(context.Background(), &dto.SaveTutorialRequest{
		Id:    created.Id.String(),
		Title: "Como instalar",
		Url:   "https://b",
	})
	require.NoError(t, err)

	assert.Equal(t, created.Id, updated.Id)
	assert.Equal(t, "como-instalar", updated.Slug, "re-saving the same title keeps the slug")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Len(t, svc.GetAll(), 1)
}

func TestTutorialServiceUpdateMissing(t *testing.T) {
	svc, _ := newTutorialService(t)
	_, err := svc.Save(context.Background(), &dto.SaveTutorialRequest{
		Id:    "1b671a64-40d5-491e-99b0-da01ff1f3341",
		Title: "X",
		Url:   "https://x",
	})
	assert.ErrorIs(t, err, ErrTutorialNotFound)
}

func TestTutorialServiceDelete(t *testing.T) {
	svc, static := newTutorialService(t)

	created, err := svc.Save(context.Background(), &dto.SaveTutorialRequest{Title: "Como instalar", Url: "https://a"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.Id.String()))
	assert.Empty(t, svc.GetAll())
	assert.Equal(t, 2, static.tutorialPages)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.Id.String()), ErrTutorialNotFound)
}
