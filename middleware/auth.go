package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"helpdesk-app/auth"
	"helpdesk-app/config"
	"helpdesk-app/logger"
	"helpdesk-app/models"
)

// LoginPath is where unauthenticated requests are pointed to.
const LoginPath = "/auth/login"

var (
	sessions *auth.Context
	db       *gorm.DB
)

// Init wires the middleware to the session registry and the database used
// as fallback when a session is not cached in memory.
func Init(ctx *auth.Context, database *gorm.DB) {
	sessions = ctx
	db = database
}

func unauthenticated(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"isSuccess":  false,
		"message":    message,
		"redirectTo": LoginPath,
	})
}

func AuthMiddleware(ctx *fiber.Ctx) error {
	tokenString := ""

	authHeader := ctx.Get("Authorization")
	if authHeader != "" {
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			return unauthenticated(ctx, "Invalid Authorization header format")
		}
		tokenString = tokenParts[1]
	} else if cookie := ctx.Cookies("refresh_token"); cookie != "" {
		tokenString = cookie
	}

	if tokenString == "" {
		return unauthenticated(ctx, "Missing Authorization header")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: Invalid signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil {
		logger.Debugf("token parse failed: %v", err)
		return unauthenticated(ctx, "Unauthorized: Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return unauthenticated(ctx, "Unauthorized: Invalid token")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return unauthenticated(ctx, "Unauthorized: Invalid user ID")
	}
	sessionID, ok := claims["session_id"].(string)
	if !ok {
		return unauthenticated(ctx, "Unauthorized: Invalid sessionID")
	}

	session, ok := lookupSession(sessionID)
	if !ok {
		return unauthenticated(ctx, "Unauthorized: Session expired")
	}

	ctx.Locals("userID", userID)
	ctx.Locals("sessionID", sessionID)
	ctx.Locals("role", session.Role)
	ctx.Locals("departmentID", session.DepartmentID)
	ctx.Locals("session", session)

	return ctx.Next()
}

// ResolveSession identifies the caller when a valid token is present but
// never rejects the request. Public endpoints that personalize their
// response, like the menu, use it instead of AuthMiddleware.
func ResolveSession(ctx *fiber.Ctx) (auth.Session, bool) {
	if session, ok := ctx.Locals("session").(auth.Session); ok {
		return session, true
	}

	tokenString := ""
	if authHeader := ctx.Get("Authorization"); authHeader != "" {
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) == 2 && strings.ToLower(tokenParts[0]) == "bearer" {
			tokenString = tokenParts[1]
		}
	} else if cookie := ctx.Cookies("refresh_token"); cookie != "" {
		tokenString = cookie
	}
	if tokenString == "" {
		return auth.Session{}, false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: Invalid signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil {
		return auth.Session{}, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return auth.Session{}, false
	}
	sessionID, ok := claims["session_id"].(string)
	if !ok {
		return auth.Session{}, false
	}
	return lookupSession(sessionID)
}

// lookupSession checks the in-memory registry first and falls back to the
// persisted user_sessions table, re-caching on a hit.
func lookupSession(sessionID string) (auth.Session, bool) {
	if sessions != nil {
		if session, ok := sessions.Get(sessionID); ok {
			return session, true
		}
	}
	if db == nil {
		return auth.Session{}, false
	}

	var row models.UserSession
	if err := db.Where("session_id = ? AND is_active = ? AND expires_at > ?",
		sessionID, true, time.Now()).First(&row).Error; err != nil {
		return auth.Session{}, false
	}

	var emp models.Employee
	if err := db.First(&emp, uint(row.UserID)).Error; err != nil {
		return auth.Session{}, false
	}

	row.LastActivityAt = time.Now()
	db.Save(&row)

	session := auth.Session{
		SessionID:      sessionID,
		UserID:         emp.ID,
		UserName:       emp.UserName,
		EmployeeName:   emp.EmployeeName,
		Role:           emp.Role,
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		MobileNumber:   emp.MobileNumber,
		ExpiresAt:      row.ExpiresAt,
	}
	if sessions != nil {
		sessions.Login(session)
	}
	return session, true
}
