package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpansionSingleOpenRow(t *testing.T) {
	var e Expansion

	open := e.Toggle("A")
	require.True(t, open)
	assert.Equal(t, "A", e.ExpandedRow)

	// expanding B collapses A
	open = e.Toggle("B")
	require.True(t, open)
	assert.Equal(t, "B", e.ExpandedRow)

	// toggling the open row closes it
	open = e.Toggle("B")
	assert.False(t, open)
	assert.Equal(t, "", e.ExpandedRow)
}

func TestStateStoreDefaultsPerSession(t *testing.T) {
	s := NewStateStore()
	require.NoError(t, s.RegisterScreen("EmployeeMaster", testColumns()))

	st, err := s.Get("sess-1", "EmployeeMaster")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(st.Columns))

	// reorder for one session does not leak into another
	_, err = s.Reorder("sess-1", "EmployeeMaster", 0, 3)
	require.NoError(t, err)

	st1, _ := s.Get("sess-1", "EmployeeMaster")
	st2, _ := s.Get("sess-2", "EmployeeMaster")
	assert.Equal(t, []string{"b", "c", "d", "a"}, ids(st1.Columns))
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(st2.Columns))
}

func TestStateStoreRejectsDuplicateScreen(t *testing.T) {
	s := NewStateStore()
	require.NoError(t, s.RegisterScreen("X", testColumns()))
	assert.Error(t, s.RegisterScreen("X", testColumns()))
}

func TestStateStoreUnknownScreen(t *testing.T) {
	s := NewStateStore()
	_, err := s.Get("sess", "Nope")
	assert.Error(t, err)
}

func TestStateStoreExpandInvariant(t *testing.T) {
	s := NewStateStore()
	require.NoError(t, s.RegisterScreen("TicketList", testColumns()))

	st, err := s.Expand("sess", "TicketList", "row-1")
	require.NoError(t, err)
	assert.Equal(t, "row-1", st.Expansion.ExpandedRow)

	st, _ = s.Expand("sess", "TicketList", "row-2")
	assert.Equal(t, "row-2", st.Expansion.ExpandedRow)

	st, _ = s.Expand("sess", "TicketList", "row-2")
	assert.Equal(t, "", st.Expansion.ExpandedRow)
}

func TestStateStoreDropClearsSession(t *testing.T) {
	s := NewStateStore()
	require.NoError(t, s.RegisterScreen("A", testColumns()))
	require.NoError(t, s.RegisterScreen("B", testColumns()))

	s.Reorder("sess-1", "A", 0, 1)
	s.Expand("sess-1", "B", "r")
	s.Reorder("sess-2", "A", 0, 1)

	s.Drop("sess-1")

	stA, _ := s.Get("sess-1", "A")
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(stA.Columns))
	stB, _ := s.Get("sess-1", "B")
	assert.Equal(t, "", stB.Expansion.ExpandedRow)

	// other sessions untouched
	st2, _ := s.Get("sess-2", "A")
	assert.Equal(t, []string{"b", "a", "c", "d"}, ids(st2.Columns))
}
