package navigation

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() []MenuItem {
	return buildTree([]MenuItem{
		{Key: "home", Label: "Home", URL: "/home"},
		{
			Key: "admin", Label: "Admin", Roles: []string{"Admin"},
			Children: []MenuItem{
				{Key: "users", Label: "Users", URL: "/admin/users", Roles: []string{"Admin"}},
				{Key: "audit", Label: "Audit", URL: "/admin/audit", Roles: []string{"Admin"}},
			},
		},
		{
			Key: "service", Label: "Service",
			Children: []MenuItem{
				{Key: "tickets", Label: "Tickets", URL: "/tickets"},
				{Key: "assign", Label: "Assign", URL: "/assign", Roles: []string{"Manager"}},
			},
		},
		{Key: "reports", Label: "Reports", URL: "/reports", Roles: []string{"Manager"},
			Children: []MenuItem{
				{Key: "sla", Label: "SLA Report", URL: "/reports/sla", Roles: []string{"Admin"}},
			},
		},
	})
}

func keys(items []MenuItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Key)
	}
	return out
}

func TestFilterByRoleDropsRestrictedBranches(t *testing.T) {
	got := FilterByRole(sampleTree(), "Engineer")

	require.Equal(t, []string{"home", "service"}, keys(got))
	assert.Equal(t, []string{"tickets"}, keys(got[1].Children))
}

func TestFilterByRoleKeepsPermittedGroups(t *testing.T) {
	got := FilterByRole(sampleTree(), "Admin")

	require.Equal(t, []string{"home", "admin", "service", "reports"}, keys(got))
	assert.Equal(t, []string{"users", "audit"}, keys(got[1].Children))
	// admin cannot see manager-only leaves
	assert.Equal(t, []string{"tickets"}, keys(got[2].Children))
	// reports survives through its admin-only child
	assert.Equal(t, []string{"sla"}, keys(got[3].Children))
}

func TestFilterByRoleGroupSurvivesOnOwnURL(t *testing.T) {
	// Manager loses the only child of "reports" but the group itself is
	// permitted and navigable, so it stays as a plain entry.
	got := FilterByRole(sampleTree(), "Manager")

	require.Equal(t, []string{"home", "service", "reports"}, keys(got))
	reports := got[2]
	assert.Empty(t, reports.Children)
	assert.Equal(t, "/reports", reports.URL)
}

func TestFilterByRoleIsIdempotent(t *testing.T) {
	once := FilterByRole(sampleTree(), "Manager")
	twice := FilterByRole(once, "Manager")
	assert.Equal(t, once, twice)
}

func TestFilterByRoleDoesNotMutateSource(t *testing.T) {
	src := sampleTree()
	before := copyTree(src)

	FilterByRole(src, "Engineer")

	require.True(t, reflect.DeepEqual(before, src), "source tree was mutated")
}

func TestFilterByRoleDefaultsToGuest(t *testing.T) {
	tree := buildTree([]MenuItem{
		{Key: "public", Label: "Public", URL: "/public"},
		{Key: "guest-only", Label: "Guest Only", URL: "/guest", Roles: []string{RoleGuest}},
		{Key: "staff", Label: "Staff", URL: "/staff", Roles: []string{"Admin"}},
	})

	got := FilterByRole(tree, "")
	assert.Equal(t, []string{"public", "guest-only"}, keys(got))
}

func TestMenuTreeReturnsCopy(t *testing.T) {
	a := MenuTree()
	require.NotEmpty(t, a)

	a[0].Label = "tampered"
	if len(a) > 3 && len(a[3].Children) > 0 {
		a[3].Children[0].Label = "tampered"
	}

	b := MenuTree()
	assert.NotEqual(t, "tampered", b[0].Label)
}

func TestMenuTreeParentKeysStitched(t *testing.T) {
	var check func(items []MenuItem, parent string)
	check = func(items []MenuItem, parent string) {
		for _, it := range items {
			assert.Equal(t, parent, it.ParentKey, "parentKey of %s", it.Key)
			check(it.Children, it.Key)
		}
	}
	check(MenuTree(), "")
}
