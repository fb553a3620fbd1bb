package listview

import (
	"fmt"
	"time"
)

// Column describes one table column of a list screen. ID maps to a json
// field of the entity record; position in the slice is the display order.
type Column struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Visible bool   `json:"visible"`

	// Format overrides the default cell rendering for synthetic columns
	// (status translation and the like).
	Format func(v interface{}) string `json:"-"`
}

// Visible returns the columns that are currently displayed, in order.
func Visible(cols []Column) []Column {
	out := make([]Column, 0, len(cols))
	for _, c := range cols {
		if c.Visible {
			out = append(out, c)
		}
	}
	return out
}

// Reorder moves the column at index from to index to, shifting the rest.
// Out-of-range indexes leave the order untouched.
func Reorder(cols []Column, from, to int) []Column {
	out := append([]Column(nil), cols...)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	rest := append([]Column(nil), out[:to]...)
	rest = append(rest, moved)
	rest = append(rest, out[to:]...)
	return rest
}

// FormatStatus renders the binary status flag the way the screens label it.
func FormatStatus(v interface{}) string {
	if b, ok := v.(bool); ok {
		if b {
			return "Active"
		}
		return "Inactive"
	}
	return fmt.Sprintf("%v", v)
}

// formatCell is the default cell rendering used by the exporters.
func formatCell(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02 15:04:05")
	case *time.Time:
		if t == nil || t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02 15:04:05")
	case bool:
		return FormatStatus(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
