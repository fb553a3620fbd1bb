package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"helpdesk-app/auth"
	"helpdesk-app/config"
	"helpdesk-app/listview"
	"helpdesk-app/logger"
	"helpdesk-app/models"
	"helpdesk-app/navigation"
)

type AuthController struct {
	DB       *gorm.DB
	Sessions *auth.Context
	States   *listview.StateStore
}

func NewAuthController(db *gorm.DB, sessions *auth.Context, states *listview.StateStore) *AuthController {
	return &AuthController{DB: db, Sessions: sessions, States: states}
}

// Login checks credentials, deactivates any prior session of the user and
// issues a JWT bound to a fresh session id. Every attempt lands in
// login_logs, failures included.
func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input struct {
		UserName string `json:"user_name"`
		Password string `json:"password"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(listview.Fail("Invalid request"))
	}
	if input.UserName == "" || input.Password == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(listview.Fail("Missing required fields"))
	}

	sessionID := uuid.New().String()
	ip, ua, browser, os, device := getClientInfo(ctx)
	now := time.Now()

	// default log FAILED, flipped on success
	log := models.LoginLog{
		SessionID:   sessionID,
		Username:    input.UserName,
		LoginAt:     &now,
		IPAddress:   ip,
		UserAgent:   ua,
		Browser:     browser,
		OS:          os,
		DeviceType:  device,
		LoginStatus: "FAILED",
		CreatedAt:   now,
	}

	var employee models.Employee
	result := c.DB.Where("(user_name = ? OR email = ?) AND status = ?", input.UserName, input.UserName, true).
		First(&employee)
	if result.Error != nil {
		reason := "USER_NOT_FOUND"
		log.FailureReason = &reason
		c.DB.Create(&log)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(listview.Fail("Invalid username or password"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(listview.Fail(result.Error.Error()))
	}

	if bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(input.Password)) != nil {
		reason := "WRONG_PASSWORD"
		uid := uint64(employee.ID)
		log.UserID = &uid
		log.FailureReason = &reason
		c.DB.Create(&log)

		return ctx.Status(fiber.StatusUnauthorized).JSON(listview.Fail("Invalid username or password"))
	}

	// one live session per user, in the table and in the registry
	c.DB.Model(&models.UserSession{}).
		Where("user_id = ? AND is_active = ?", employee.ID, true).
		Update("is_active", false)
	c.Sessions.DropOthers(employee.ID, sessionID)

	expiresAt := now.Add(time.Duration(config.JWTExpiration) * time.Second)
	userSession := models.UserSession{
		UserID:         uint64(employee.ID),
		SessionID:      sessionID,
		IPAddress:      ip,
		UserAgent:      ua,
		DeviceID:       device,
		IsActive:       true,
		LastActivityAt: now,
		ExpiresAt:      expiresAt,
	}
	if err := c.DB.Create(&userSession).Error; err != nil {
		logger.Errorf("session create failed for %s: %v", employee.UserName, err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(listview.Fail("Failed to create session"))
	}

	uid := uint64(employee.ID)
	log.UserID = &uid
	log.LoginStatus = "SUCCESS"
	log.FailureReason = nil
	c.DB.Create(&log)

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    employee.ID,
		"session_id": sessionID,
		"role":       employee.Role,
		"exp":        expiresAt.Unix(),
		"jti":        uuid.NewString(),
	})
	tokenString, err := accessToken.SignedString([]byte(config.JWTSecret))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(listview.Fail("Failed to generate token"))
	}

	ctx.Cookie(config.GetTokenCookie(tokenString))

	c.Sessions.Login(auth.Session{
		SessionID:      sessionID,
		UserID:         employee.ID,
		UserName:       employee.UserName,
		EmployeeName:   employee.EmployeeName,
		Role:           employee.Role,
		DepartmentID:   employee.DepartmentID,
		DepartmentName: employee.DepartmentName,
		MobileNumber:   employee.MobileNumber,
		ExpiresAt:      expiresAt,
	})

	logger.Infof("user %s logged in from %s (%s)", employee.UserName, ip, device)

	return ctx.JSON(fiber.Map{
		"isSuccess": true,
		"message":   "Login successful",
		"x_token":   tokenString,
		"user": fiber.Map{
			"id":              employee.ID,
			"user_name":       employee.UserName,
			"employee_name":   employee.EmployeeName,
			"email":           employee.Email,
			"role":            employee.Role,
			"department_id":   employee.DepartmentID,
			"department_name": employee.DepartmentName,
		},
		"menus": navigation.FilterByRole(navigation.MenuTree(), employee.Role),
	})
}

// Logout closes the session everywhere it is tracked: login_logs,
// user_sessions, the in-memory registry, the view state store and the
// browser cookie.
func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	sessionID, ok := ctx.Locals("sessionID").(string)
	if !ok || sessionID == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(listview.Fail("Invalid session"))
	}

	now := time.Now()
	result := c.DB.Model(&models.LoginLog{}).
		Where("session_id = ? AND logout_at IS NULL", sessionID).
		Update("logout_at", &now)
	if result.RowsAffected == 0 {
		// double logout or a stale token
		logger.Warnf("no login log to close for session %s", sessionID)
	}

	var userSession models.UserSession
	err := c.DB.Where("session_id = ? AND is_active = ?", sessionID, true).First(&userSession).Error
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(listview.Fail("Invalid session"))
	}

	userSession.IsActive = false
	userSession.LastActivityAt = now
	c.DB.Save(&userSession)

	c.Sessions.Logout(sessionID)
	if c.States != nil {
		c.States.Drop(sessionID)
	}

	ctx.Cookie(config.GetTokenCookie(""))

	return ctx.JSON(listview.Message("Logout successful"))
}

// IsLoggedIn reports whether the caller's token still maps to a live
// session. The route runs behind the auth middleware, so reaching the
// handler already answers the question.
func (c *AuthController) IsLoggedIn(ctx *fiber.Ctx) error {
	session, ok := ctx.Locals("session").(auth.Session)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(listview.Fail("Invalid session"))
	}
	return ctx.JSON(fiber.Map{
		"isSuccess": true,
		"user": fiber.Map{
			"id":              session.UserID,
			"user_name":       session.UserName,
			"employee_name":   session.EmployeeName,
			"role":            session.Role,
			"department_id":   session.DepartmentID,
			"department_name": session.DepartmentName,
		},
	})
}

func getClientInfo(ctx *fiber.Ctx) (ip, ua, browser, os, device string) {
	ip = ctx.IP()
	ua = ctx.Get("User-Agent")

	uaLower := strings.ToLower(ua)

	switch {
	case strings.Contains(uaLower, "chrome"):
		browser = "Chrome"
	case strings.Contains(uaLower, "firefox"):
		browser = "Firefox"
	case strings.Contains(uaLower, "safari"):
		browser = "Safari"
	default:
		browser = "Unknown"
	}

	switch {
	case strings.Contains(uaLower, "windows"):
		os = "Windows"
	case strings.Contains(uaLower, "android"):
		os = "Android"
	case strings.Contains(uaLower, "iphone"):
		os = "iOS"
	case strings.Contains(uaLower, "linux"):
		os = "Linux"
	default:
		os = "Unknown"
	}

	if strings.Contains(uaLower, "mobile") {
		device = "Mobile"
	} else {
		device = "Desktop"
	}
	return
}
