package routes

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(c *fiber.Ctx) error { return nil }

func testTree() []RouteEntry {
	return []RouteEntry{
		{
			Path: "/api/v1",
			Children: []RouteEntry{
				{
					Path: "/EmployeeMaster",
					Children: []RouteEntry{
						{Method: "GET", Path: "/GetEmployeeMasterList", Handler: noop, Roles: []string{"Admin"}},
						{Method: "GET", Path: "/GetEmployeeMaster/:id", Handler: noop, Roles: []string{"Admin"}},
						{Method: "POST", Path: "/CreateEmployeeMaster", Handler: noop, Roles: []string{"Admin"}},
					},
				},
				{
					Path: "/TicketList",
					Children: []RouteEntry{
						{Method: "GET", Path: "/GetTicketList", Handler: noop},
					},
				},
			},
		},
		{Method: "POST", Path: "/auth/login", Handler: noop, Public: true},
	}
}

func TestFlattenEmitsEveryNodeInPreOrder(t *testing.T) {
	flat := Flatten(testTree())

	// 8 nodes in the tree, 8 rows in the table
	require.Len(t, flat, 8)

	paths := make([]string, 0, len(flat))
	for _, r := range flat {
		paths = append(paths, r.Path)
	}
	assert.Equal(t, []string{
		"/api/v1",
		"/api/v1/EmployeeMaster",
		"/api/v1/EmployeeMaster/GetEmployeeMasterList",
		"/api/v1/EmployeeMaster/GetEmployeeMaster/:id",
		"/api/v1/EmployeeMaster/CreateEmployeeMaster",
		"/api/v1/TicketList",
		"/api/v1/TicketList/GetTicketList",
		"/auth/login",
	}, paths)
}

func TestFlattenIsDeterministic(t *testing.T) {
	a := Flatten(testTree())
	b := Flatten(testTree())
	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, a[i].Path, b[i].Path)
		assert.Equal(t, a[i].Method, b[i].Method)
	}
}

func TestFlattenKeepsGuardMetadata(t *testing.T) {
	flat := Flatten(testTree())

	byPath := make(map[string]FlatRoute)
	for _, r := range flat {
		byPath[r.Path] = r
	}

	assert.Equal(t, []string{"Admin"}, byPath["/api/v1/EmployeeMaster/GetEmployeeMasterList"].Roles)
	assert.Empty(t, byPath["/api/v1/TicketList/GetTicketList"].Roles)
	assert.True(t, byPath["/auth/login"].Public)
}

func TestRegisterRejectsDuplicatePaths(t *testing.T) {
	app := fiber.New()
	tree := []RouteEntry{
		{Method: "GET", Path: "/pages/EmployeeMaster", Handler: noop, Public: true},
		{Method: "GET", Path: "/pages/EmployeeMaster", Handler: noop, Public: true},
	}

	err := Register(app, tree)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate route")
}

func TestRegisterAllowsSamePathDifferentMethod(t *testing.T) {
	app := fiber.New()
	tree := []RouteEntry{
		{Method: "GET", Path: "/pages/EmployeeMaster", Handler: noop, Public: true},
		{Method: "POST", Path: "/pages/EmployeeMaster", Handler: noop, Public: true},
	}

	assert.NoError(t, Register(app, tree))
}

func TestRegisterSkipsGroupNodes(t *testing.T) {
	app := fiber.New()
	assert.NoError(t, Register(app, testTree()))
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "/a/b", joinPath("/a", "/b"))
	assert.Equal(t, "/a/b", joinPath("/a", "b"))
	assert.Equal(t, "/a", joinPath("/a", ""))
	assert.Equal(t, "/b", joinPath("", "b"))
}
