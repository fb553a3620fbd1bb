package controllers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk-app/navigation"
)

func fetchMenu(t *testing.T, app *fiber.App) []navigation.MenuItem {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodGet, "/Menu/GetMenuUser", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope struct {
		IsSuccess bool                  `json:"isSuccess"`
		Menus     []navigation.MenuItem `json:"menus"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.True(t, envelope.IsSuccess)
	return envelope.Menus
}

func menuKeys(items []navigation.MenuItem) map[string]bool {
	keys := make(map[string]bool)
	var walk func([]navigation.MenuItem)
	walk = func(items []navigation.MenuItem) {
		for _, item := range items {
			keys[item.Key] = true
			walk(item.Children)
		}
	}
	walk(items)
	return keys
}

func TestGetMenuUserWithoutSessionServesGuestMenu(t *testing.T) {
	app := fiber.New()
	app.Get("/Menu/GetMenuUser", NewMenuController().GetMenuUser)

	keys := menuKeys(fetchMenu(t, app))

	assert.True(t, keys["dashboard"])
	assert.True(t, keys["ticket-list"])

	assert.False(t, keys["employee"], "admin screens must not leak to guests")
	assert.False(t, keys["employee-master"])
	assert.False(t, keys["workflow"])
	assert.False(t, keys["my-tickets"])
}

func TestGetMenuUserMatchesRoleFilter(t *testing.T) {
	app := fiber.New()
	app.Get("/Menu/GetMenuUser", NewMenuController().GetMenuUser)

	got := fetchMenu(t, app)
	want := navigation.FilterByRole(navigation.MenuTree(), navigation.RoleGuest)
	assert.Equal(t, want, got)
}
