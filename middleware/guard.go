package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRoles gates a route on the session role. An empty role set admits
// any authenticated user. A role mismatch answers 404 rather than 403: the
// screens route unauthorized users to the generic not-found page, so the
// API mirrors that and does not reveal the route exists.
func RequireRoles(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if len(roles) == 0 {
			return ctx.Next()
		}

		role, _ := ctx.Locals("role").(string)
		for _, r := range roles {
			if r == role {
				return ctx.Next()
			}
		}

		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"isSuccess": false,
			"message":   "Not Found",
		})
	}
}
