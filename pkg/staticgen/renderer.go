package staticgen

import (
	"fmt"
	"html"
	"strings"

	"app-catalog-be/internal/entity"
)

// Placeholder activation codes baked into pages when a record carries none.
const (
	DefaultAndroidCode = "2787533"
	DefaultTvboxCode   = "51412"
)

var deviceLabels = map[string]string{
	entity.DeviceAndroid:   "Celular Android",
	entity.DeviceAndroidTV: "Android TV / Mi Stick",
	entity.DeviceFirestick: "Fire Stick",
	entity.DeviceTVBox:     "TV Box / Receptores / Projetores",
}

// Renderer expands the per-app page template into finished HTML. It is a
// pure text transformation: the same record, settings and template always
// produce byte-identical output.
type Renderer struct {
	BaseURL string
}

func NewRenderer(baseURL string) *Renderer {
	return &Renderer{BaseURL: strings.TrimSuffix(baseURL, "/")}
}

// CompatText joins the device labels into the Portuguese summary shown on
// the page ("A, B e C").
func CompatText(devices []string) string {
	items := make([]string, 0, len(devices))
	for _, d := range devices {
		if label, ok := deviceLabels[d]; ok {
			items = append(items, label)
		}
	}
	switch len(items) {
	case 0:
		return "Android"
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " e " + items[len(items)-1]
	}
}

// Description returns the record description, or the synthesized default
// built from the name and compatibility summary.
func Description(app *entity.App) string {
	if d := strings.TrimSpace(app.Description); d != "" {
		return d
	}
	return fmt.Sprintf("%s — Instalação rápida e segura para %s.", app.Name, CompatText(app.Devices()))
}

// Render produces the static page for one catalog record.
func (r *Renderer) Render(app *entity.App, settings *entity.Settings, templateHTML string) (string, error) {
	if app == nil || strings.TrimSpace(app.Name) == "" {
		return "", fmt.Errorf("render: record has no name")
	}
	if strings.TrimSpace(app.Slug) == "" {
		return "", fmt.Errorf("render %q: record has no slug", app.Name)
	}

	doc := NewDocument(templateHTML)
	devices := app.Devices()

	// Buttons and sections of incompatible devices are dropped wholesale.
	keep := make(map[string]bool, len(devices))
	for _, d := range devices {
		keep[d] = true
	}
	for _, d := range entity.AllDevices() {
		if !keep[d] {
			doc.RemoveElement(`data-target="` + d + `-section"`)
			doc.RemoveElement(`id="` + d + `-section"`)
		}
	}

	// Optional content regions: removed entirely when their list is empty,
	// otherwise filled wholesale with generated markup.
	videos := app.VideoTutorials()
	if len(videos) == 0 {
		doc.RemoveElement(`id="videos-section"`)
	} else {
		doc.SetInner(`id="video-grid"`, videoGridMarkup(videos))
	}
	links := app.LinkTutorials()
	if len(links) == 0 {
		doc.RemoveElement(`id="links-section"`)
	} else {
		doc.SetInner(`id="links-grid"`, linksGridMarkup(links))
	}
	if len(app.InterfaceImages) == 0 {
		doc.RemoveElement(`id="screenshots-section"`)
	} else {
		doc.SetInner(`id="interface-grid"`, screenshotGridMarkup(app))
	}

	// Universal tutorial videos: record override, settings fallback, or no
	// control at all.
	downloader := firstNonEmpty(app.DownloaderVideo, settings.DownloaderVideo)
	downloaderAlt := firstNonEmpty(app.DownloaderAltVideo, settings.DownloaderAltVideo)
	browser := firstNonEmpty(app.BrowserVideo, settings.BrowserVideo)
	if downloader == "" {
		doc.RemoveElement(`id="downloader-video-btn"`)
	}
	if downloaderAlt == "" {
		doc.RemoveElement(`id="downloader-alt-video-btn"`)
	}
	if browser == "" {
		doc.RemoveElement(`id="browser-video-btn"`)
	}

	desc := html.EscapeString(Description(app))
	doc.ReplaceTokens(map[string]string{
		"app_name":             html.EscapeString(app.Name),
		"app_slug":             app.Slug,
		"app_logo":             app.Logo,
		"download_url":         firstNonEmpty(app.DownloadUrl, "#"),
		"browser_download_url": firstNonEmpty(app.BrowserDownloadUrl, app.DownloadUrl, "#"),
		"app_url":              r.BaseURL + "/" + app.Slug,
		"android_code":         firstNonEmpty(app.AndroidCode, app.FirestickCode, DefaultAndroidCode),
		"firestick_code":       firstNonEmpty(app.FirestickCode, DefaultAndroidCode),
		"tvbox_code":           firstNonEmpty(app.TvboxCode, DefaultTvboxCode),
		"NtdownCode":           firstNonEmpty(app.NtdownCode, app.TvboxCode, DefaultTvboxCode),
		"default_device":       devices[0] + "-section",
		"compat_text":          html.EscapeString(CompatText(devices)),
		"app_description":      desc,
		"meta_description":     desc,
		"downloader_video":     downloader,
		"downloader_alt_video": downloaderAlt,
		"browser_video":        browser,
	})

	return doc.String(), nil
}

func videoGridMarkup(videos []entity.Tutorial) string {
	var b strings.Builder
	for _, t := range videos {
		b.WriteString(`
                <div class="video-card">
                    <video controls preload="metadata"><source src="` + t.Url + `" type="video/mp4"></video>
                    <p class="video-title">` + html.EscapeString(t.Title) + `</p>
                </div>`)
	}
	return b.String()
}

func linksGridMarkup(links []entity.Tutorial) string {
	var b strings.Builder
	for _, t := range links {
		b.WriteString(`
                <a href="` + t.Url + `" target="_blank" rel="noopener noreferrer">
                    <span class="link-icon">` + t.Icon + `</span>
                    <span class="link-title">` + html.EscapeString(t.Title) + `</span>
                </a>`)
	}
	return b.String()
}

func screenshotGridMarkup(app *entity.App) string {
	var b strings.Builder
	for _, img := range app.InterfaceImages {
		b.WriteString(`
                <figure>
                    <img src="` + img.Url + `" alt="Interface ` + html.EscapeString(app.Name) + `" loading="lazy" decoding="async">`)
		if img.Caption != "" {
			b.WriteString(`
                    <figcaption>` + html.EscapeString(img.Caption) + `</figcaption>`)
		}
		b.WriteString(`
                </figure>`)
	}
	return b.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
