package controllers

import (
	"github.com/gofiber/fiber/v2"

	"helpdesk-app/listview"
	"helpdesk-app/middleware"
	"helpdesk-app/navigation"
)

type MenuController struct{}

func NewMenuController() *MenuController {
	return &MenuController{}
}

// GetMenuUser returns the sidebar tree pruned to the caller's role.
// Without a session the Guest menu is served.
func (c *MenuController) GetMenuUser(ctx *fiber.Ctx) error {
	role := navigation.RoleGuest
	if session, ok := middleware.ResolveSession(ctx); ok {
		role = session.Role
	}

	menus := navigation.FilterByRole(navigation.MenuTree(), role)
	return ctx.JSON(listview.OK("menus", menus))
}
