package navigation

// MenuItem is one entry of the sidebar navigation tree. Group nodes carry
// Children; leaf nodes carry a URL. An empty Roles slice means the entry is
// visible to every authenticated role.
type MenuItem struct {
	Key       string     `json:"key"`
	Label     string     `json:"label"`
	IsTitle   bool       `json:"isTitle,omitempty"`
	Icon      string     `json:"icon,omitempty"`
	URL       string     `json:"url,omitempty"`
	ParentKey string     `json:"parentKey,omitempty"`
	Badge     string     `json:"badge,omitempty"`
	Roles     []string   `json:"roles,omitempty"`
	Children  []MenuItem `json:"children,omitempty"`
}

var menuItems = buildTree([]MenuItem{
	{Key: "navigation", Label: "Navigation", IsTitle: true},
	{Key: "dashboard", Label: "Dashboard", Icon: "uil-home-alt", URL: "/dashboard"},
	{Key: "masters", Label: "Masters", IsTitle: true},
	{
		Key: "employee", Label: "Employee", Icon: "uil-users-alt",
		Roles: []string{"Admin"},
		Children: []MenuItem{
			{Key: "employee-master", Label: "Employee Master", URL: "/pages/EmployeeMaster", Roles: []string{"Admin"}},
			{Key: "department-master", Label: "Department Master", URL: "/pages/DepartmentMaster", Roles: []string{"Admin"}},
			{Key: "role-master", Label: "Role Master", URL: "/pages/RoleMaster", Roles: []string{"Admin"}},
		},
	},
	{
		Key: "catalogue", Label: "Catalogue", Icon: "uil-box",
		Children: []MenuItem{
			{Key: "product-master", Label: "Product Master", URL: "/pages/ProductMaster", Roles: []string{"Admin", "Manager"}},
			{Key: "sparepart-master", Label: "Spare Part Master", URL: "/pages/SparePartMaster", Roles: []string{"Admin", "Manager", "Engineer"}},
			{Key: "customer-master", Label: "Customer Master", URL: "/pages/CustomerMaster", Roles: []string{"Admin", "Manager"}},
		},
	},
	{Key: "service", Label: "Service", IsTitle: true},
	{
		Key: "tickets", Label: "Tickets", Icon: "uil-clipboard-alt",
		Children: []MenuItem{
			{Key: "ticket-list", Label: "Ticket List", URL: "/pages/TicketList"},
			{Key: "my-tickets", Label: "My Tickets", URL: "/pages/MyTickets", Roles: []string{"Engineer"}},
		},
	},
	{
		Key: "workflow", Label: "Workflow", Icon: "uil-sitemap",
		URL:   "/pages/WorkflowTATList",
		Roles: []string{"Admin", "Manager"},
	},
})

// MenuTree returns a deep copy of the static menu so callers can never
// mutate the master tree.
func MenuTree() []MenuItem {
	return copyTree(menuItems)
}

func buildTree(items []MenuItem) []MenuItem {
	stitchParents(items, "")
	return items
}

func stitchParents(items []MenuItem, parentKey string) {
	for i := range items {
		items[i].ParentKey = parentKey
		stitchParents(items[i].Children, items[i].Key)
	}
}

func copyTree(items []MenuItem) []MenuItem {
	if items == nil {
		return nil
	}
	out := make([]MenuItem, len(items))
	for i, item := range items {
		out[i] = item
		if item.Roles != nil {
			out[i].Roles = append([]string(nil), item.Roles...)
		}
		out[i].Children = copyTree(item.Children)
	}
	return out
}
