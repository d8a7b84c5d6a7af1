package dto

// TutorialInput is one structured tutorial row from the edit form. The
// controller zips the form's positional field arrays into this shape before
// anything else looks at them, so index alignment is handled in one place.
type TutorialInput struct {
	Title       string
	Url         string
	Description string
	Icon        string
	IsVideo     bool // explicit "this is a video" flag from the form
}

// SaveAppRequest carries the scalar fields of the app edit form. The form is
// stateless across requests, so existing image references are resubmitted in
// full alongside the deletion list.
type SaveAppRequest struct {
	OriginalSlug       string   `form:"original_slug"`
	Slug               string   `form:"slug"`
	Name               string   `form:"name" validate:"required"`
	Description        string   `form:"description"`
	DownloadUrl        string   `form:"downloadUrl"`
	BrowserDownloadUrl string   `form:"browserDownloadUrl"`
	AndroidCode        string   `form:"androidCode"`
	FirestickCode      string   `form:"firestickCode"`
	TvboxCode          string   `form:"tvboxCode"`
	NtdownCode         string   `form:"ntdownCode"`
	DownloaderVideo    string   `form:"downloaderVideo"`
	DownloaderAltVideo string   `form:"downloaderAltVideo"`
	BrowserVideo       string   `form:"browserVideo"`
	VisibleOnHome      string   `form:"visibleOnHome"`
	Devices            []string `form:"devices"`
	ExistingImages     []string `form:"existing_interface_images"`
	ExistingCaptions   []string `form:"existing_image_captions"`
	DeletedImages      []string `form:"deleted_images"`
	NewImageCaptions   []string `form:"image_captions"`

	Tutorials []TutorialInput `form:"-"`
}

// UploadedFiles maps the form's named upload fields to stored references
// under /uploads/. TutorialVideos is keyed by tutorial row index.
type UploadedFiles struct {
	Logo            string
	Download        string
	BrowserDownload string
	Images          []string
	TutorialVideos  map[int]string
}
