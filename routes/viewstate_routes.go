package routes

import (
	"github.com/gofiber/fiber/v2"

	"helpdesk-app/controllers"
)

func viewStateRoutes(c *controllers.ViewStateController) RouteEntry {
	return RouteEntry{
		Path: "/viewstate",
		Children: []RouteEntry{
			{Method: fiber.MethodGet, Path: "/:screen", Handler: c.GetViewState},
			{Method: fiber.MethodPut, Path: "/:screen/columns", Handler: c.ReorderColumns},
			{Method: fiber.MethodPut, Path: "/:screen/expand", Handler: c.ExpandRow},
		},
	}
}
