package controllers

import (
	"github.com/gofiber/fiber/v2"

	"helpdesk-app/listview"
)

// viewStates keeps per-session column order and row expansion for every
// list screen. Exports read from it so a user downloads exactly the
// layout they are looking at.
var viewStates *listview.StateStore

// InitViewStates wires the shared state store and registers every list
// screen with its default column layout. Call once at startup.
func InitViewStates(store *listview.StateStore) error {
	screens := map[string][]listview.Column{
		"EmployeeMaster":   employeeColumns,
		"DepartmentMaster": departmentColumns,
		"RoleMaster":       roleColumns,
		"CustomerMaster":   customerColumns,
		"ProductMaster":    productColumns,
		"SparePartMaster":  sparePartColumns,
		"TicketList":       ticketColumns,
		"WorkflowTATList":  workflowColumns,
	}
	for screen, cols := range screens {
		if err := store.RegisterScreen(screen, cols); err != nil {
			return err
		}
	}
	viewStates = store
	return nil
}

// ViewStateController exposes the list view state over HTTP.
type ViewStateController struct{}

func NewViewStateController() *ViewStateController {
	return &ViewStateController{}
}

func sessionIDOf(ctx *fiber.Ctx) string {
	if v, ok := ctx.Locals("sessionID").(string); ok {
		return v
	}
	return ""
}

// GetViewState returns the caller's column layout and expanded row for a screen.
func (c *ViewStateController) GetViewState(ctx *fiber.Ctx) error {
	screen := ctx.Params("screen")
	state, err := viewStates.Get(sessionIDOf(ctx), screen)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(listview.Fail("Unknown screen"))
	}
	return ctx.JSON(listview.OK("viewState", state))
}

// ReorderColumns moves one column to a new position in the caller's layout.
func (c *ViewStateController) ReorderColumns(ctx *fiber.Ctx) error {
	screen := ctx.Params("screen")

	var input struct {
		From int `json:"from"`
		To   int `json:"to"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(listview.Fail("Invalid request body"))
	}

	state, err := viewStates.Reorder(sessionIDOf(ctx), screen, input.From, input.To)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(listview.Fail(err.Error()))
	}
	return ctx.JSON(listview.OK("viewState", state))
}

// ExpandRow toggles the single expanded row of a screen. Expanding one
// row collapses whichever row was open before.
func (c *ViewStateController) ExpandRow(ctx *fiber.Ctx) error {
	screen := ctx.Params("screen")

	var input struct {
		RowID string `json:"row_id"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(listview.Fail("Invalid request body"))
	}

	state, err := viewStates.Expand(sessionIDOf(ctx), screen, input.RowID)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(listview.Fail(err.Error()))
	}
	return ctx.JSON(listview.OK("viewState", state))
}
