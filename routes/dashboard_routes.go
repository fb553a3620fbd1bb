package routes

import (
	"github.com/gofiber/fiber/v2"

	"helpdesk-app/controllers"
)

func dashboardRoutes(c *controllers.DashboardController) RouteEntry {
	return RouteEntry{
		Path: "/dashboard",
		Children: []RouteEntry{
			{Method: fiber.MethodGet, Path: "/GetDashboard", Handler: c.GetDashboard, Roles: []string{"Admin", "Manager"}},
		},
	}
}
