package routes

import (
	"github.com/gofiber/fiber/v2"

	"helpdesk-app/controllers"
)

func ticketRoutes(c *controllers.TicketController) RouteEntry {
	staff := []string{"Admin", "Manager", "Engineer"}
	leads := []string{"Admin", "Manager"}

	return RouteEntry{
		Path: "/Ticket",
		Children: []RouteEntry{
			{Method: fiber.MethodGet, Path: "/GetTicketList", Handler: c.GetTicketList, Roles: staff},
			{Method: fiber.MethodGet, Path: "/GetTicket/:id", Handler: c.GetTicket, Roles: staff},
			{Method: fiber.MethodPost, Path: "/CreateTicket", Handler: c.CreateTicket, Roles: staff},
			{Method: fiber.MethodPut, Path: "/AssignTicket/:id", Handler: c.AssignTicket, Roles: leads},
			{Method: fiber.MethodPut, Path: "/ExecuteTicket/:id", Handler: c.ExecuteTicket, Roles: staff},
			{Method: fiber.MethodPost, Path: "/AddSparePart/:id", Handler: c.AddSparePart, Roles: staff},
			{Method: fiber.MethodPut, Path: "/ResolveTicket/:id", Handler: c.ResolveTicket, Roles: staff},
			{Method: fiber.MethodPut, Path: "/CloseTicket/:id", Handler: c.CloseTicket, Roles: leads},
			{Method: fiber.MethodGet, Path: "/ExportTicketList", Handler: c.ExportTicketList, Roles: staff},
		},
	}
}
