package middleware

import (
	"devpath/models"
	"devpath/repository"

	"github.com/gofiber/fiber/v2"
)

const adminUserKey = "adminUser"

// AdminOnly gates administrative routes. The user row is re-fetched and the
// account type re-checked on every request; a token minted before a demotion
// does not keep working.
func AdminOnly(users *repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := SessionFromCtx(c)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		user, err := users.GetByID(session.UserID)
		if err != nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}

		if user.Type != models.TypeAdmin {
			return JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
		}

		c.Locals(adminUserKey, user)
		return c.Next()
	}
}

// AdminFromCtx returns the user loaded by AdminOnly.
func AdminFromCtx(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(adminUserKey).(*models.User)
	return user, ok
}
