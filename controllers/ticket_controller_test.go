package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"helpdesk-app/auth"
	"helpdesk-app/models"
)

// newDryRunDB builds queries without executing them and records the SQL
// each one would have run.
func newDryRunDB(t *testing.T, captured *[]string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true, SkipDefaultTransaction: true})
	require.NoError(t, err)
	err = db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		*captured = append(*captured, tx.Dialector.Explain(tx.Statement.SQL.String(), tx.Statement.Vars...))
		// dry run keeps the built SQL on the statement; clear it so the
		// next query on the same chain builds from scratch
		tx.Statement.SQL.Reset()
		tx.Statement.Vars = nil
	})
	require.NoError(t, err)
	return db
}

func TestCanWorkOn(t *testing.T) {
	ticket := models.Ticket{AssignedTo: "jdoe"}

	assert.True(t, canWorkOn(auth.Session{UserName: "jdoe", Role: "Engineer"}, ticket))
	assert.True(t, canWorkOn(auth.Session{UserName: "boss", Role: "Admin"}, ticket))
	assert.False(t, canWorkOn(auth.Session{UserName: "asmith", Role: "Engineer"}, ticket))
	assert.False(t, canWorkOn(auth.Session{}, ticket))
}

func TestExportTicketListKeepsListFilters(t *testing.T) {
	var captured []string
	c := NewTicketController(newDryRunDB(t, &captured))

	app := fiber.New()
	app.Get("/ExportTicketList", c.ExportTicketList)

	req := httptest.NewRequest(http.MethodGet,
		"/ExportTicketList?status=open&department_id=2&assigned_to=jdoe", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get(fiber.HeaderContentType))

	// count query plus the page query, both narrowed the same way
	require.Len(t, captured, 2)
	for _, sql := range captured {
		assert.Contains(t, sql, `status = "open"`)
		assert.Contains(t, sql, `department_id = "2"`)
		assert.Contains(t, sql, `assigned_to = "jdoe"`)
	}
}
