package entity

import (
	"encoding/json"
	"path"
	"strings"
	"time"
)

// Device identifiers recognized by the panel form and the page template.
const (
	DeviceAndroid   = "android"
	DeviceAndroidTV = "androidtv"
	DeviceFirestick = "firestick"
	DeviceTVBox     = "tvbox"
)

// AllDevices returns the full compatibility set, in display order.
func AllDevices() []string {
	return []string{DeviceAndroid, DeviceAndroidTV, DeviceFirestick, DeviceTVBox}
}

// InterfaceImage is one screenshot of the app interface. Older catalog files
// stored bare URL strings, so both shapes unmarshal.
type InterfaceImage struct {
	Url     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

func (i *InterfaceImage) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var url string
		if err := json.Unmarshal(data, &url); err != nil {
			return err
		}
		i.Url = url
		i.Caption = ""
		return nil
	}
	type alias InterfaceImage
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*i = InterfaceImage(a)
	return nil
}

// Tutorial is one per-app tutorial entry, either an embedded video or an
// external link button.
type Tutorial struct {
	Title       string `json:"title"`
	Url         string `json:"url"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon"`
	IsVideo     bool   `json:"is_video"`
}

var videoExtensions = map[string]bool{
	".mp4":  true,
	".webm": true,
	".mov":  true,
	".m4v":  true,
	".mkv":  true,
}

// LooksLikeVideo reports whether a tutorial URL points at a hosted upload or
// carries a known video file extension.
func LooksLikeVideo(url string) bool {
	if strings.HasPrefix(url, "/uploads/") {
		return true
	}
	return videoExtensions[strings.ToLower(path.Ext(url))]
}

// App is one catalog entry. The JSON field names match the catalog files the
// site has always written, so existing data loads unchanged.
type App struct {
	Slug               string           `json:"slug"`
	Name               string           `json:"name"`
	Logo               string           `json:"logo,omitempty"`
	DownloadUrl        string           `json:"downloadUrl,omitempty"`
	BrowserDownloadUrl string           `json:"browserDownloadUrl,omitempty"`
	Description        string           `json:"description,omitempty"`
	CompatibleDevices  []string         `json:"compatibleDevices"`
	AndroidCode        string           `json:"androidCode,omitempty"`
	FirestickCode      string           `json:"firestickCode,omitempty"`
	TvboxCode          string           `json:"tvboxCode,omitempty"`
	NtdownCode         string           `json:"ntdownCode,omitempty"`
	InterfaceImages    []InterfaceImage `json:"interface_images"`
	Tutorials          []Tutorial       `json:"tutorials"`
	VisibleOnHome      bool             `json:"visibleOnHome"`
	DownloaderVideo    string           `json:"downloaderVideo,omitempty"`
	DownloaderAltVideo string           `json:"downloaderAltVideo,omitempty"`
	BrowserVideo       string           `json:"browserVideo,omitempty"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

// Devices returns the compatibility set, never empty: records without one
// are treated as compatible with every device.
func (a *App) Devices() []string {
	if len(a.CompatibleDevices) == 0 {
		return AllDevices()
	}
	return a.CompatibleDevices
}

// VideoTutorials returns the tutorials rendered as embedded videos.
func (a *App) VideoTutorials() []Tutorial {
	out := make([]Tutorial, 0, len(a.Tutorials))
	for _, t := range a.Tutorials {
		if t.IsVideo {
			out = append(out, t)
		}
	}
	return out
}

// LinkTutorials returns the tutorials rendered as link buttons.
func (a *App) LinkTutorials() []Tutorial {
	out := make([]Tutorial, 0, len(a.Tutorials))
	for _, t := range a.Tutorials {
		if !t.IsVideo {
			out = append(out, t)
		}
	}
	return out
}
