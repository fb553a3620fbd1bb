package routes

import (
	"github.com/gofiber/fiber/v2"

	"helpdesk-app/controllers"
)

// masterRoutes declares the standard surface of one master screen: list,
// get by id, create, update and the two export formats.
func masterRoutes[T any](name string, c *controllers.MasterController[T], roles []string) RouteEntry {
	return RouteEntry{
		Path: "/" + name,
		Children: []RouteEntry{
			{Method: fiber.MethodGet, Path: "/Get" + name + "List", Handler: c.GetList, Roles: roles},
			{Method: fiber.MethodGet, Path: "/Get" + name + "/:id", Handler: c.GetByID, Roles: roles},
			{Method: fiber.MethodPost, Path: "/Create" + name, Handler: c.Create, Roles: roles},
			{Method: fiber.MethodPut, Path: "/Update" + name + "/:id", Handler: c.Update, Roles: roles},
			{Method: fiber.MethodGet, Path: "/Export" + name, Handler: c.ExportCSV, Roles: roles},
			{Method: fiber.MethodGet, Path: "/Export" + name + "Excel", Handler: c.ExportExcel, Roles: roles},
		},
	}
}
