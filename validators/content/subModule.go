package contentValidator

import (
	"net/url"
	"strings"

	"devpath/middleware"

	"github.com/gofiber/fiber/v2"
)

// Hosts a watch-video URL may point at
var allowedVideoHosts = map[string]bool{
	"youtube.com":     true,
	"www.youtube.com": true,
	"m.youtube.com":   true,
	"youtu.be":        true,
	"vimeo.com":       true,
}

// SubModuleRequest is the validated sub-module draft
type SubModuleRequest struct {
	ModuleID       uint   `json:"module_id"`
	Title          string `json:"title"`
	Level          string `json:"level"`
	ThumbnailURL   string `json:"thumbnail_url"`
	Content        string `json:"sub_module_content"`
	WatchVideos    string `json:"watch_videos"`
	PDFNote        string `json:"pdf_note"`
	AdditionalNote string `json:"additional_note"`
}

func isAllowedVideoURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return allowedVideoHosts[parsed.Hostname()]
}

func validateSubModule(reqData *SubModuleRequest, requireModule bool) map[string]string {
	errors := make(map[string]string)

	reqData.Title = strings.TrimSpace(reqData.Title)
	reqData.WatchVideos = strings.TrimSpace(reqData.WatchVideos)

	if requireModule && reqData.ModuleID == 0 {
		errors["module_id"] = "Parent module is required!"
	}

	if reqData.Title == "" {
		errors["title"] = "Title is required!"
	} else if len(reqData.Title) < 3 {
		errors["title"] = "Title must be at least 3 characters long!"
	}

	// Level may be empty on create; the parent module's level is copied in.
	if reqData.Level != "" {
		if err := validate.Var(reqData.Level, levelOneOf); err != nil {
			errors["level"] = "Level must be Beginner, Intermediate or Advanced!"
		}
	}

	if reqData.WatchVideos != "" && !isAllowedVideoURL(reqData.WatchVideos) {
		errors["watch_videos"] = "Video URL must point to an allowed host!"
	}

	if err := validate.Var(reqData.ThumbnailURL, "omitempty,url"); err != nil {
		errors["thumbnail_url"] = "Thumbnail must be a valid URL!"
	}
	if err := validate.Var(reqData.PDFNote, "omitempty,url"); err != nil {
		errors["pdf_note"] = "PDF note must be a valid URL!"
	}
	if err := validate.Var(reqData.AdditionalNote, "omitempty,url"); err != nil {
		errors["additional_note"] = "Additional note must be a valid URL!"
	}

	return errors
}

// CreateSubModule validates a sub-module creation request
func CreateSubModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubModuleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateSubModule(reqData, true); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubModule", reqData)
		return c.Next()
	}
}

// UpdateSubModule validates a sub-module update request
func UpdateSubModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubModuleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateSubModule(reqData, false); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubModule", reqData)
		return c.Next()
	}
}
