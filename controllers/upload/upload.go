package uploadController

import (
	"context"
	"io"
	"log"

	"devpath/middleware"
	"devpath/utils"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
)

// Uploader forwards a file to the asset gateway and returns its permanent URL.
// progress receives fractions in (0, 1] as bytes go out.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, size int64, filename, kind string, progress func(float64)) (string, error)
}

// Per-kind MIME allow-lists and size caps. Files failing either are rejected
// before any network call is made.
var uploadKinds = map[string]struct {
	allowedMIMEs []string
	maxSize      int64
}{
	"thumbnail": {
		allowedMIMEs: []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
		maxSize:      5 << 20,
	},
	"document": {
		allowedMIMEs: []string{"application/pdf"},
		maxSize:      10 << 20,
	},
}

type Controller struct {
	uploader Uploader
}

func New(uploader Uploader) *Controller {
	return &Controller{uploader: uploader}
}

// Upload accepts a multipart file for the :kind asset field, validates it
// locally and forwards it to the asset gateway.
func (ctl *Controller) Upload(c *fiber.Ctx) error {
	kind := c.Params("kind")
	rules, ok := uploadKinds[kind]
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown upload kind!", nil)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File is required!", nil)
	}

	if fileHeader.Size > rules.maxSize {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File is too large!", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read file!", nil)
	}
	defer file.Close()

	mime, err := mimetype.DetectReader(file)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read file!", nil)
	}

	allowed := false
	for _, m := range rules.allowedMIMEs {
		if mime.Is(m) {
			allowed = true
			break
		}
	}
	if !allowed {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File type "+mime.String()+" is not allowed for "+kind+"!", nil)
	}

	// Rewind after sniffing so the full file is uploaded
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read file!", nil)
	}

	url, err := ctl.uploader.Upload(c.UserContext(), file, fileHeader.Size, fileHeader.Filename, kind, func(frac float64) {
		log.Printf("Uploading %s %q: %.0f%%", kind, fileHeader.Filename, frac*100)
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, utils.StripVendorPrefix(err.Error()), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "File uploaded successfully!", fiber.Map{
		"url": url,
	})
}
