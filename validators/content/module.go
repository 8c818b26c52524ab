package contentValidator

import (
	"strconv"
	"strings"

	"devpath/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

const levelOneOf = "oneof=Beginner Intermediate Advanced"

// ModuleRequest is the validated module draft
type ModuleRequest struct {
	Title        string `json:"title"`
	Level        string `json:"level"`
	ThumbnailURL string `json:"thumbnail_url"`
	Description  string `json:"description"`
}

func validateModule(reqData *ModuleRequest) map[string]string {
	errors := make(map[string]string)

	reqData.Title = strings.TrimSpace(reqData.Title)
	reqData.Description = strings.TrimSpace(reqData.Description)
	if reqData.Level == "" {
		reqData.Level = "Beginner"
	}

	if reqData.Title == "" {
		errors["title"] = "Title is required!"
	} else if len(reqData.Title) < 3 {
		errors["title"] = "Title must be at least 3 characters long!"
	}

	if err := validate.Var(reqData.Level, levelOneOf); err != nil {
		errors["level"] = "Level must be Beginner, Intermediate or Advanced!"
	}

	if err := validate.Var(reqData.ThumbnailURL, "omitempty,url"); err != nil {
		errors["thumbnail_url"] = "Thumbnail must be a valid URL!"
	}

	return errors
}

// CreateModule validates a module creation request
func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ModuleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateModule(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// UpdateModule validates a module update request
func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ModuleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateModule(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// EntityID validates the :id route parameter
func EntityID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
		}

		c.Locals("entityID", uint(id))
		return c.Next()
	}
}
