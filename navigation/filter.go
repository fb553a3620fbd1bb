package navigation

// RoleGuest is the role used when the session carries no role at all.
const RoleGuest = "Guest"

// FilterByRole prunes the menu tree down to the entries visible for the
// given role. The input is never mutated; sibling order is preserved.
//
// A node is permitted when it has no role restriction or its restriction
// contains the role. Group nodes are filtered bottom-up: a group survives
// when at least one child survives, or when the group itself is permitted
// and navigable (has a URL) in its own right.
func FilterByRole(items []MenuItem, role string) []MenuItem {
	if role == "" {
		role = RoleGuest
	}

	var out []MenuItem
	for _, item := range items {
		if len(item.Children) > 0 {
			kids := FilterByRole(item.Children, role)
			if len(kids) > 0 {
				kept := item
				kept.Roles = append([]string(nil), item.Roles...)
				kept.Children = kids
				out = append(out, kept)
			} else if permitted(item, role) && item.URL != "" {
				kept := item
				kept.Roles = append([]string(nil), item.Roles...)
				kept.Children = nil
				out = append(out, kept)
			}
			continue
		}

		if permitted(item, role) {
			kept := item
			kept.Roles = append([]string(nil), item.Roles...)
			kept.Children = nil
			out = append(out, kept)
		}
	}
	return out
}

func permitted(item MenuItem, role string) bool {
	if len(item.Roles) == 0 {
		return true
	}
	for _, r := range item.Roles {
		if r == role {
			return true
		}
	}
	return false
}
