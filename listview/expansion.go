package listview

// Expansion tracks the single expanded detail row of a list screen. At most
// one row is open at a time: expanding a new row collapses the previous one,
// toggling the open row closes it.
type Expansion struct {
	ExpandedRow string `json:"expandedRow"`
}

// Toggle flips the expansion state for rowID and reports whether the row is
// now open.
func (e *Expansion) Toggle(rowID string) bool {
	if e.ExpandedRow == rowID {
		e.ExpandedRow = ""
		return false
	}
	e.ExpandedRow = rowID
	return true
}

func (e *Expansion) Collapse() {
	e.ExpandedRow = ""
}
