package userController

import (
	"devpath/middleware"
	"devpath/repository"
	userValidator "devpath/validators/user"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	users *repository.UserRepository
}

func New(users *repository.UserRepository) *Controller {
	return &Controller{users: users}
}

// GetProfile returns the caller's profile
func (ctl *Controller) GetProfile(c *fiber.Ctx) error {
	session, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := ctl.users.GetByID(session.UserID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}

// UpdateProfile updates the caller's name, level and avatar
func (ctl *Controller) UpdateProfile(c *fiber.Ctx) error {
	session, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*userValidator.ProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := ctl.users.GetByID(session.UserID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.Name = reqData.Name
	user.Level = reqData.Level
	user.AvatarURL = reqData.AvatarURL

	if err := ctl.users.Save(user); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}
