package service

import (
	"errors"
	"strings"
	"time"

	"app-catalog-be/internal/dto"
	"app-catalog-be/internal/entity"
	"app-catalog-be/pkg/slug"
)

var (
	ErrNameRequired = errors.New("app name is required")
	ErrSlugTaken    = errors.New("slug already belongs to another app")
)

const defaultTutorialIcon = "🎬"

// reconcileResult is one catalog mutation worked out in memory: the next
// catalog state, the record that was upserted into it, and the upload
// references whose backing files should be removed best-effort.
type reconcileResult struct {
	apps      []entity.App
	app       *entity.App
	deletions []string
}

// reconcile merges an edit form submission with the current catalog.
// It is pure: the incoming slice is never mutated and the only
// nondeterminism, the clock, is an argument.
func reconcile(apps []entity.App, req *dto.SaveAppRequest, files *dto.UploadedFiles, now time.Time) (reconcileResult, error) {
	if strings.TrimSpace(req.Name) == "" {
		return reconcileResult{}, ErrNameRequired
	}
	if files == nil {
		files = &dto.UploadedFiles{}
	}

	// An edit targets the record at original_slug. Without one this is a
	// create, or a keyed re-save when the explicit slug already exists.
	targetSlug := req.OriginalSlug
	if targetSlug == "" && req.Slug != "" {
		targetSlug = slug.Make(req.Slug)
	}

	targetIdx := -1
	var otherSlugs []string
	for i := range apps {
		if apps[i].Slug == targetSlug {
			targetIdx = i
			continue
		}
		otherSlugs = append(otherSlugs, apps[i].Slug)
	}

	newSlug := slug.Make(req.Slug)
	if newSlug == "" {
		newSlug = slug.Allocate(req.Name, otherSlugs)
	}
	for _, taken := range otherSlugs {
		if taken == newSlug {
			return reconcileResult{}, ErrSlugTaken
		}
	}

	var prior *entity.App
	if targetIdx >= 0 {
		prior = &apps[targetIdx]
	}

	app := entity.App{
		Slug:               newSlug,
		Name:               req.Name,
		Description:        req.Description,
		AndroidCode:        req.AndroidCode,
		FirestickCode:      req.FirestickCode,
		TvboxCode:          req.TvboxCode,
		NtdownCode:         req.NtdownCode,
		DownloaderVideo:    req.DownloaderVideo,
		DownloaderAltVideo: req.DownloaderAltVideo,
		BrowserVideo:       req.BrowserVideo,
		VisibleOnHome:      req.VisibleOnHome == "true",
	}
	if app.NtdownCode == "" {
		app.NtdownCode = req.TvboxCode
	}

	// New uploads win; absent uploads keep what the record already had.
	app.Logo = files.Logo
	app.DownloadUrl = firstNonEmpty(files.Download, req.DownloadUrl)
	app.BrowserDownloadUrl = firstNonEmpty(files.BrowserDownload, req.BrowserDownloadUrl)
	if prior != nil {
		if app.Logo == "" {
			app.Logo = prior.Logo
		}
		if app.DownloadUrl == "" {
			app.DownloadUrl = prior.DownloadUrl
		}
		if app.BrowserDownloadUrl == "" {
			app.BrowserDownloadUrl = prior.BrowserDownloadUrl
		}
	}

	app.CompatibleDevices = normalizeDevices(req.Devices)

	var deletions []string
	app.InterfaceImages, deletions = reconcileImages(req, files)

	app.Tutorials = reconcileTutorials(req.Tutorials, files.TutorialVideos)

	app.CreatedAt = now
	if prior != nil && !prior.CreatedAt.IsZero() {
		app.CreatedAt = prior.CreatedAt
	}
	app.UpdatedAt = now

	next := make([]entity.App, len(apps))
	copy(next, apps)
	if targetIdx >= 0 {
		next[targetIdx] = app
	} else {
		next = append(next, app)
	}

	return reconcileResult{apps: next, app: &app, deletions: deletions}, nil
}

// normalizeDevices reduces the form's device checkboxes to an ordered set in
// canonical display order. No selection means compatible with everything.
func normalizeDevices(submitted []string) []string {
	if len(submitted) == 0 {
		return entity.AllDevices()
	}
	chosen := make(map[string]bool, len(submitted))
	for _, d := range submitted {
		chosen[strings.TrimSpace(d)] = true
	}
	var out []string
	for _, d := range entity.AllDevices() {
		if chosen[d] {
			out = append(out, d)
		}
	}
	if len(out) == 0 {
		return entity.AllDevices()
	}
	return out
}

// reconcileImages rebuilds the screenshot list: the form resubmits the kept
// images in full, deletions are processed before new uploads are appended,
// and captions follow their image positionally.
func reconcileImages(req *dto.SaveAppRequest, files *dto.UploadedFiles) ([]entity.InterfaceImage, []string) {
	deleted := make(map[string]bool, len(req.DeletedImages))
	for _, ref := range req.DeletedImages {
		if ref != "" {
			deleted[ref] = true
		}
	}

	var kept []entity.InterfaceImage
	var deletions []string
	for i, ref := range req.ExistingImages {
		if ref == "" {
			continue
		}
		if deleted[ref] {
			if strings.HasPrefix(ref, "/uploads/") {
				deletions = append(deletions, ref)
			}
			continue
		}
		img := entity.InterfaceImage{Url: ref}
		if i < len(req.ExistingCaptions) {
			img.Caption = req.ExistingCaptions[i]
		}
		kept = append(kept, img)
	}

	for i, ref := range files.Images {
		img := entity.InterfaceImage{Url: ref}
		if i < len(req.NewImageCaptions) {
			img.Caption = req.NewImageCaptions[i]
		}
		kept = append(kept, img)
	}

	return kept, deletions
}

// reconcileTutorials finalizes the structured tutorial rows: uploaded videos
// override the row's URL, empty rows are dropped, and the video flag is
// inferred for hosted uploads and known video extensions.
func reconcileTutorials(rows []dto.TutorialInput, videos map[int]string) []entity.Tutorial {
	var out []entity.Tutorial
	for i, row := range rows {
		url := strings.TrimSpace(row.Url)
		if ref, ok := videos[i]; ok && ref != "" {
			url = ref
		}

		title := strings.TrimSpace(row.Title)
		description := strings.TrimSpace(row.Description)
		if title == "" || (url == "" && description == "") {
			continue
		}

		icon := row.Icon
		if icon == "" {
			icon = defaultTutorialIcon
		}

		out = append(out, entity.Tutorial{
			Title:       title,
			Url:         url,
			Description: description,
			Icon:        icon,
			IsVideo:     row.IsVideo || entity.LooksLikeVideo(url),
		})
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
