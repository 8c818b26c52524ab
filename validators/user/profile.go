package userValidator

import (
	"strings"

	"devpath/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ProfileRequest is the validated profile update payload
type ProfileRequest struct {
	Name      string `json:"name"`
	Level     string `json:"level"`
	AvatarURL string `json:"avatar_url"`
}

// UpdateProfile validates a profile update request
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)

		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		}

		if err := validate.Var(reqData.Level, "required,oneof=Beginner Intermediate Advanced"); err != nil {
			errors["level"] = "Level must be Beginner, Intermediate or Advanced!"
		}

		if err := validate.Var(reqData.AvatarURL, "omitempty,url"); err != nil {
			errors["avatar_url"] = "Avatar must be a valid URL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
