package authController

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"devpath/config"
	"devpath/middleware"
	"devpath/models"
	"devpath/repository"
	"devpath/utils"
	authValidator "devpath/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	maxFailedAttempts = 3
	failedResetWindow = 15 * time.Minute
	blockDuration     = 15 * time.Minute
)

type Controller struct {
	cfg      *config.Config
	users    *repository.UserRepository
	tracking *repository.LoginTrackingRepository
	mailer   *utils.EmailService
}

func New(cfg *config.Config, users *repository.UserRepository, tracking *repository.LoginTrackingRepository, mailer *utils.EmailService) *Controller {
	return &Controller{cfg: cfg, users: users, tracking: tracking, mailer: mailer}
}

// Signup registers a new account. Every account created through this endpoint
// is an admin; the console has no other signup path.
func (ctl *Controller) Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*authValidator.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Check if email already exists
	if _, err := ctl.users.GetByEmail(reqData.Email); err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), ctl.cfg.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: string(hashedPassword),
		Type:     models.TypeAdmin,
		Level:    reqData.Level,
	}

	if err := ctl.users.Create(&newUser); err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to sign up user!", nil)
	}

	go func(name, email string) {
		if err := ctl.mailer.SendWelcomeEmail(name, email); err != nil {
			log.Printf("Error sending welcome email to %s: %v", email, err)
		}
	}(newUser.Name, newUser.Email)

	token, err := middleware.GenerateJWT(ctl.cfg, &newUser)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"user":  newUser,
		"token": token,
	})
}

// Login checks credentials, then requires the profile to be an admin before
// any token is issued. Valid credentials on a non-admin profile fail.
func (ctl *Controller) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := ctl.users.GetByEmail(reqData.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	// Check if the user is blocked
	if user.IsBlocked && user.BlockedUntil != nil && user.BlockedUntil.After(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Your account is temporarily blocked. Try again later.", nil)
	}

	if user.LastFailedLogin != nil && time.Since(*user.LastFailedLogin) > failedResetWindow {
		user.FailedLoginAttempts = 0
		user.LastFailedLogin = nil
		if err := ctl.users.Save(user); err != nil {
			log.Printf("Error resetting failed attempts: %v", err)
		}
	}

	// Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		user.FailedLoginAttempts++
		now := time.Now()
		user.LastFailedLogin = &now

		// Block user after repeated failures
		if user.FailedLoginAttempts >= maxFailedAttempts {
			user.IsBlocked = true
			unblockTime := now.Add(blockDuration)
			user.BlockedUntil = &unblockTime
		}

		if err := ctl.users.Save(user); err != nil {
			log.Printf("Error saving failed login state: %v", err)
		}

		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	// Credentials are valid; the admin console still refuses non-admin
	// profiles and establishes no session for them.
	if user.Type != models.TypeAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Unauthorized access. Admin privileges required.", nil)
	}

	user.LastLogin = time.Now()
	user.FailedLoginAttempts = 0
	user.IsBlocked = false
	user.BlockedUntil = nil
	if err := ctl.users.Save(user); err != nil {
		log.Printf("Error saving last login time: %v", err)
	}

	ip := c.IP()
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		ip = forwarded
	}
	userAgent := c.Get("User-Agent")

	details, _ := json.Marshal(fiber.Map{
		"user_agent": userAgent,
		"referer":    c.Get("Referer"),
	})

	entry := models.LoginTracking{
		UserID:    user.ID,
		IPAddress: ip,
		Device:    userAgent,
		Timestamp: time.Now(),
		Details:   details,
	}
	if err := ctl.tracking.Create(&entry); err != nil {
		log.Printf("Error saving login tracking details: %v", err)
	}

	token, err := middleware.GenerateJWT(ctl.cfg, user)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// LoginHistoryList returns the caller's login history, newest first.
func (ctl *Controller) LoginHistoryList(c *fiber.Ctx) error {
	session, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	query, ok := c.Locals("validatedHistoryQuery").(*authValidator.LoginHistoryQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (query.Page - 1) * query.Limit

	entries, err := ctl.tracking.ListByUser(session.UserID, offset, query.Limit)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch login history!", nil)
	}

	total, err := ctl.tracking.CountByUser(session.UserID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch login history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login history fetched successfully!", fiber.Map{
		"history": entries,
		"total":   total,
		"page":    query.Page,
		"limit":   query.Limit,
	})
}
