package routes

import (
	"github.com/gofiber/fiber/v2"

	"helpdesk-app/controllers"
)

func workflowRoutes(c *controllers.WorkflowController) RouteEntry {
	admin := []string{"Admin"}

	entry := masterRoutes("WorkflowTAT", c.MasterController, admin)
	entry.Children = append(entry.Children, RouteEntry{
		Method:  fiber.MethodGet,
		Path:    "/GetDepartmentSteps",
		Handler: c.GetTATList,
		Roles:   []string{"Admin", "Manager"},
	})
	return entry
}
