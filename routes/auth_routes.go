package routes

import (
	"github.com/gofiber/fiber/v2"

	"helpdesk-app/controllers"
)

func authRoutes(c *controllers.AuthController) RouteEntry {
	return RouteEntry{
		Path: "/auth",
		Children: []RouteEntry{
			{Method: fiber.MethodPost, Path: "/login", Handler: c.Login, Public: true},
			{Method: fiber.MethodGet, Path: "/logout", Handler: c.Logout},
			{Method: fiber.MethodGet, Path: "/isLoggedIn", Handler: c.IsLoggedIn},
		},
	}
}
