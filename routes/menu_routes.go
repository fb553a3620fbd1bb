package routes

import (
	"github.com/gofiber/fiber/v2"

	"helpdesk-app/controllers"
)

// The menu endpoint is public on purpose: without a session it serves the
// Guest tree, which is how the login screen renders its navigation.
func menuRoutes(c *controllers.MenuController) RouteEntry {
	return RouteEntry{
		Path: "/Menu",
		Children: []RouteEntry{
			{Method: fiber.MethodGet, Path: "/GetMenuUser", Handler: c.GetMenuUser, Public: true},
		},
	}
}
