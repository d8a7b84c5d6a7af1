package uploads

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"app-catalog-be/internal/dto"
	"app-catalog-be/pkg/slug"

	"github.com/gofiber/fiber/v2"
)

// Form field names the edit form uses for uploads. Tutorial videos are
// indexed per row: tutorial_video_0, tutorial_video_1, ...
const (
	FieldLogo               = "logo_file"
	FieldDownload           = "download_file"
	FieldBrowserDownload    = "browser_download_file"
	FieldInterfaceImages    = "interface_images"
	tutorialVideoFieldStart = "tutorial_video_"
)

// Storage writes multipart uploads into the public uploads directory using
// the <slug>-<field>-<timestamp>.<ext> naming scheme the site has always
// produced.
type Storage struct {
	dir string
}

func NewStorage(dir string) *Storage {
	return &Storage{dir: dir}
}

// SaveForm stores every upload of the app edit form and returns their
// public /uploads/ references. A request without multipart content yields
// empty references, not an error.
func (s *Storage) SaveForm(c *fiber.Ctx, appName string) (*dto.UploadedFiles, error) {
	files := &dto.UploadedFiles{TutorialVideos: map[int]string{}}

	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return files, nil
	}

	base := slug.Make(appName)
	if base == "" {
		base = "app"
	}

	if ref, err := s.saveFirst(c, form, FieldLogo, base, "logo"); err != nil {
		return nil, err
	} else if ref != "" {
		files.Logo = ref
	}
	if ref, err := s.saveFirst(c, form, FieldDownload, base, "download"); err != nil {
		return nil, err
	} else if ref != "" {
		files.Download = ref
	}
	if ref, err := s.saveFirst(c, form, FieldBrowserDownload, base, "browser"); err != nil {
		return nil, err
	} else if ref != "" {
		files.BrowserDownload = ref
	}

	for _, fh := range form.File[FieldInterfaceImages] {
		ref, err := s.save(c, fh, base, "img")
		if err != nil {
			return nil, err
		}
		files.Images = append(files.Images, ref)
	}

	for field, headers := range form.File {
		if !strings.HasPrefix(field, tutorialVideoFieldStart) || len(headers) == 0 {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimPrefix(field, tutorialVideoFieldStart))
		if err != nil {
			continue
		}
		ref, err := s.save(c, headers[0], base, "video")
		if err != nil {
			return nil, err
		}
		files.TutorialVideos[idx] = ref
	}

	return files, nil
}

func (s *Storage) saveFirst(c *fiber.Ctx, form *multipart.Form, field, base, token string) (string, error) {
	headers := form.File[field]
	if len(headers) == 0 {
		return "", nil
	}
	return s.save(c, headers[0], base, token)
}

func (s *Storage) save(c *fiber.Ctx, fh *multipart.FileHeader, base, token string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	stamp := strconv.FormatInt(time.Now().UnixMicro(), 10)
	if len(stamp) > 6 {
		stamp = stamp[len(stamp)-6:]
	}
	name := fmt.Sprintf("%s-%s-%s%s", base, token, stamp, ext)

	if err := c.SaveFile(fh, filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("store upload %s: %w", fh.Filename, err)
	}
	return "/uploads/" + name, nil
}
