package listview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exportRecord struct {
	Code      string `json:"employee_code"`
	Name      string `json:"employee_name"`
	Status    bool   `json:"status"`
	Secret    string `json:"-"`
	CreatedAt time.Time
}

func TestRowsFollowColumnOrderAndVisibility(t *testing.T) {
	records := []exportRecord{
		{Code: "EMP-1", Name: "Alice", Status: true, Secret: "x"},
		{Code: "EMP-2", Name: "Bob", Status: false},
	}
	cols := []Column{
		{ID: "employee_name", Label: "Name", Visible: true},
		{ID: "employee_code", Label: "Code", Visible: true},
		{ID: "status", Label: "Status", Visible: true, Format: FormatStatus},
		{ID: "hidden", Label: "Hidden", Visible: false},
	}

	rows := Rows(records, cols)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Alice", "EMP-1", "Active"}, rows[0])
	assert.Equal(t, []string{"Bob", "EMP-2", "Inactive"}, rows[1])
}

func TestRowsUnknownColumnYieldsEmptyCell(t *testing.T) {
	records := []exportRecord{{Code: "EMP-1"}}
	cols := []Column{
		{ID: "employee_code", Label: "Code", Visible: true},
		{ID: "no_such_field", Label: "Missing", Visible: true},
	}

	rows := Rows(records, cols)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"EMP-1", ""}, rows[0])
}

func TestRowsSkipsDashTaggedFields(t *testing.T) {
	records := []exportRecord{{Secret: "x"}}
	cols := []Column{{ID: "Secret", Label: "Secret", Visible: true}}

	rows := Rows(records, cols)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{""}, rows[0])
}

func TestRowsMatchesUntaggedFieldByName(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	records := []exportRecord{{CreatedAt: ts}}
	cols := []Column{{ID: "CreatedAt", Label: "Created", Visible: true}}

	rows := Rows(records, cols)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"2026-01-02 03:04:05"}, rows[0])
}

func TestRowsHandlesPointerSlice(t *testing.T) {
	records := []*exportRecord{{Code: "EMP-1"}}
	cols := []Column{{ID: "employee_code", Label: "Code", Visible: true}}

	rows := Rows(records, cols)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"EMP-1"}, rows[0])
}

func TestHeaders(t *testing.T) {
	cols := []Column{
		{ID: "a", Label: "First", Visible: true},
		{ID: "b", Label: "Second", Visible: false},
		{ID: "c", Label: "Third", Visible: true},
	}
	assert.Equal(t, []string{"First", "Third"}, headers(cols))
}
