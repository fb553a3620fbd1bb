package routes

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"helpdesk-app/middleware"
)

// RouteEntry is one node of the declarative route tree. Group nodes carry
// only a Path prefix and Children; handler nodes carry Method + Handler.
// Roles is the allowed role set of the entry itself (empty = any
// authenticated user); Public entries skip the auth guard entirely.
type RouteEntry struct {
	Method   string
	Path     string
	Handler  fiber.Handler
	Roles    []string
	Public   bool
	Children []RouteEntry
}

// FlatRoute is one row of the flattened route table.
type FlatRoute struct {
	Method  string
	Path    string
	Handler fiber.Handler
	Roles   []string
	Public  bool
}

// Flatten walks the route tree depth-first and emits one row per node, in
// pre-order, child paths nested under their parent prefix. The output is a
// pure function of the declared tree.
func Flatten(entries []RouteEntry) []FlatRoute {
	return flattenInto(nil, "", entries)
}

func flattenInto(out []FlatRoute, prefix string, entries []RouteEntry) []FlatRoute {
	for _, entry := range entries {
		full := joinPath(prefix, entry.Path)
		out = append(out, FlatRoute{
			Method:  entry.Method,
			Path:    full,
			Handler: entry.Handler,
			Roles:   entry.Roles,
			Public:  entry.Public,
		})
		out = flattenInto(out, full, entry.Children)
	}
	return out
}

func joinPath(prefix, p string) string {
	if p == "" {
		return prefix
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimSuffix(prefix, "/") + p
}

// Register flattens the tree and binds every handler-bearing entry with its
// guard chain. Two entries declaring the same method and path are a
// configuration error and abort startup.
func Register(app *fiber.App, entries []RouteEntry) error {
	flat := Flatten(entries)

	seen := make(map[string]bool, len(flat))
	for _, route := range flat {
		if route.Handler == nil {
			continue
		}
		key := route.Method + " " + route.Path
		if seen[key] {
			return fmt.Errorf("duplicate route declared: %s", key)
		}
		seen[key] = true

		if route.Public {
			app.Add(route.Method, route.Path, route.Handler)
			continue
		}
		app.Add(route.Method, route.Path,
			middleware.AuthMiddleware,
			middleware.RequireRoles(route.Roles...),
			route.Handler,
		)
	}
	return nil
}
