package listview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testColumns() []Column {
	return []Column{
		{ID: "a", Label: "A", Visible: true},
		{ID: "b", Label: "B", Visible: true},
		{ID: "c", Label: "C", Visible: false},
		{ID: "d", Label: "D", Visible: true},
	}
}

func ids(cols []Column) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		out = append(out, c.ID)
	}
	return out
}

func TestReorderMovesColumn(t *testing.T) {
	got := Reorder(testColumns(), 0, 2)
	assert.Equal(t, []string{"b", "c", "a", "d"}, ids(got))

	got = Reorder(testColumns(), 3, 0)
	assert.Equal(t, []string{"d", "a", "b", "c"}, ids(got))
}

func TestReorderOutOfRangeIsNoop(t *testing.T) {
	src := testColumns()
	assert.Equal(t, ids(src), ids(Reorder(src, -1, 2)))
	assert.Equal(t, ids(src), ids(Reorder(src, 0, 9)))
	assert.Equal(t, ids(src), ids(Reorder(src, 2, 2)))
}

func TestReorderDoesNotMutateInput(t *testing.T) {
	src := testColumns()
	Reorder(src, 0, 3)
	require.Equal(t, []string{"a", "b", "c", "d"}, ids(src))
}

func TestVisibleFiltersAndKeepsOrder(t *testing.T) {
	got := Visible(testColumns())
	assert.Equal(t, []string{"a", "b", "d"}, ids(got))
}

func TestFormatStatus(t *testing.T) {
	assert.Equal(t, "Active", FormatStatus(true))
	assert.Equal(t, "Inactive", FormatStatus(false))
}

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "", formatCell(nil))
	assert.Equal(t, "42", formatCell(42))
	assert.Equal(t, "Active", formatCell(true))

	ts := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-14 09:30:00", formatCell(ts))
	assert.Equal(t, "2026-03-14 09:30:00", formatCell(&ts))

	var nilTime *time.Time
	assert.Equal(t, "", formatCell(nilTime))
}
