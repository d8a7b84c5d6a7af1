package entity

// Settings is the singleton site configuration: catalog-wide fallback URLs
// for the universal tutorial videos, used when an app has no override.
type Settings struct {
	DownloaderVideo    string `json:"downloaderVideo,omitempty"`
	DownloaderAltVideo string `json:"downloaderAltVideo,omitempty"`
	BrowserVideo       string `json:"browserVideo,omitempty"`
}
