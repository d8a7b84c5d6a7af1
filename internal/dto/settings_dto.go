package dto

// UpdateSettingsRequest replaces the universal tutorial-video fallback URLs.
type UpdateSettingsRequest struct {
	DownloaderVideo    string `form:"downloaderVideo"`
	DownloaderAltVideo string `form:"downloaderAltVideo"`
	BrowserVideo       string `form:"browserVideo"`
}
