package middleware

import (
	"fmt"
	"strings"
	"time"

	"devpath/config"
	"devpath/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Session is the authenticated identity for one request, built from the token
// claims by JWTMiddleware and passed down via Locals. It is constructed fresh
// on every request; nothing about the auth decision is cached.
type Session struct {
	UserID uint
	Name   string
	Email  string
	Role   string
	Level  string
}

const sessionKey = "session"

// GenerateJWT generates a JWT token for the user
func GenerateJWT(cfg *config.Config, user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId": user.ID,
		"name":   user.Name,
		"role":   user.Type,
		"email":  user.Email,
		"level":  user.Level,
		"iat":    time.Now().Unix(),                     // issued at
		"exp":    time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(cfg.JWTKey))
}

// JWTMiddleware checks for a valid JWT token in the request and attaches the
// resulting Session to the request context.
func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get the token from the Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
		}

		// The token should be prefixed with "Bearer "
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
		}

		tokenString := authHeader[len("Bearer "):]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(cfg.JWTKey), nil
		})

		if err != nil || !token.Valid {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["userId"] == nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
		}

		// JWT number claims decode as float64
		rawID, ok := claims["userId"].(float64)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
		}

		session := Session{UserID: uint(rawID)}
		if name, ok := claims["name"].(string); ok {
			session.Name = name
		}
		if email, ok := claims["email"].(string); ok {
			session.Email = email
		}
		if role, ok := claims["role"].(string); ok {
			session.Role = role
		}
		if level, ok := claims["level"].(string); ok {
			session.Level = level
		}

		c.Locals(sessionKey, session)

		return c.Next()
	}
}

// SessionFromCtx returns the Session attached by JWTMiddleware.
func SessionFromCtx(c *fiber.Ctx) (Session, bool) {
	session, ok := c.Locals(sessionKey).(Session)
	return session, ok
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
