package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"helpdesk-app/auth"
	"helpdesk-app/controllers/idgen"
	"helpdesk-app/listview"
	"helpdesk-app/logger"
	"helpdesk-app/models"
	"helpdesk-app/utils"
)

var ticketColumns = []listview.Column{
	{ID: "ticket_no", Label: "Ticket No", Visible: true},
	{ID: "title", Label: "Title", Visible: true},
	{ID: "customer_code", Label: "Customer", Visible: true},
	{ID: "product_code", Label: "Product", Visible: true},
	{ID: "priority", Label: "Priority", Visible: true},
	{ID: "status", Label: "Status", Visible: true},
	{ID: "assigned_to", Label: "Assigned To", Visible: true},
	{ID: "sla_due_at", Label: "SLA Due", Visible: true},
	{ID: "created_at", Label: "Created", Visible: false},
}

type TicketController struct {
	DB *gorm.DB
}

func NewTicketController(db *gorm.DB) *TicketController {
	return &TicketController{DB: db}
}

func (c *TicketController) actor(ctx *fiber.Ctx) auth.Session {
	if s, ok := ctx.Locals("session").(auth.Session); ok {
		return s
	}
	return auth.Session{}
}

// canWorkOn limits work on a ticket to its assignee, with Admin override.
func canWorkOn(actor auth.Session, ticket models.Ticket) bool {
	return actor.UserName == ticket.AssignedTo || actor.Role == "Admin"
}

// ticketFilters applies the status, department and assignee narrowing
// shared by the ticket list and its export.
func (c *TicketController) ticketFilters(ctx *fiber.Ctx) *gorm.DB {
	query := c.DB.Model(&models.Ticket{})
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if dept := ctx.Query("department_id"); dept != "" {
		query = query.Where("department_id = ?", dept)
	}
	if assignee := ctx.Query("assigned_to"); assignee != "" {
		query = query.Where("assigned_to = ?", assignee)
	}
	return query
}

// GetTicketList serves one page of tickets, filterable by status,
// department and assignee on top of the free-text filters.
func (c *TicketController) GetTicketList(ctx *fiber.Ctx) error {
	params := listview.ParseParams(ctx, "ticket_no", "title", "customer_code")
	query := c.ticketFilters(ctx)

	tickets := make([]models.Ticket, 0, params.Limit)
	total, err := listview.Paginate(query, &models.Ticket{}, params, &tickets)
	if err != nil {
		logger.Errorf("ticket list fetch failed: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(listview.Fail("Failed to fetch Ticket List"))
	}

	return ctx.JSON(listview.OKList("ticketList", tickets, total))
}

// GetTicket returns one ticket with its activity trail and consumed parts.
func (c *TicketController) GetTicket(ctx *fiber.Ctx) error {
	var ticket models.Ticket
	if err := c.DB.First(&ticket, "id = ?", ctx.Params("id")).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(listview.Fail("Ticket not found"))
	}

	var activities []models.TicketActivity
	c.DB.Where("ticket_id = ?", ticket.ID).Order("created_at asc").Find(&activities)

	var parts []models.TicketSparePart
	c.DB.Where("ticket_id = ?", ticket.ID).Order("created_at asc").Find(&parts)

	return ctx.JSON(fiber.Map{
		"isSuccess":  true,
		"ticket":     ticket,
		"activities": activities,
		"spareParts": parts,
	})
}

// CreateTicket opens a new ticket on the first routing step of its
// department and stamps the SLA from that step's TAT budget.
func (c *TicketController) CreateTicket(ctx *fiber.Ctx) error {
	var input struct {
		Title        string `json:"title" validate:"required,min=5"`
		Description  string `json:"description"`
		CustomerCode string `json:"customer_code" validate:"required"`
		ProductCode  string `json:"product_code" validate:"required"`
		DepartmentID uint   `json:"department_id" validate:"required"`
		Priority     string `json:"priority" validate:"required,oneof=low medium high critical"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(listview.Fail("Invalid request body"))
	}
	if fields := ValidateStruct(input); fields != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(listview.FailFields(fields))
	}

	var customer models.Customer
	if err := c.DB.Where("customer_code = ?", input.CustomerCode).First(&customer).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(listview.FailFields(map[string]string{"customer_code": "customer does not exist"}))
	}
	var product models.Product
	if err := c.DB.Where("product_code = ?", input.ProductCode).First(&product).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(listview.FailFields(map[string]string{"product_code": "product does not exist"}))
	}

	var firstStep models.WorkflowStep
	err := c.DB.Where("department_id = ? AND status = ?", input.DepartmentID, true).
		Order("sequence asc").
		First(&firstStep).Error
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(listview.FailFields(map[string]string{"department_id": "department has no workflow configured"}))
	}

	actor := c.actor(ctx)
	slaDue := time.Now().Add(time.Duration(firstStep.TATHours) * time.Hour)
	ticket := models.Ticket{
		TicketNo:     idgen.GenerateTicketNo(),
		Title:        input.Title,
		Description:  input.Description,
		CustomerCode: input.CustomerCode,
		ProductCode:  input.ProductCode,
		DepartmentID: input.DepartmentID,
		Priority:     input.Priority,
		Status:       models.TicketStatusOpen,
		StepSequence: firstStep.Sequence,
		SLADueAt:     &slaDue,
		CreatedBy:    int(actor.UserID),
		UpdatedBy:    int(actor.UserID),
	}

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ticket).Error; err != nil {
			return err
		}
		return tx.Create(&models.TicketActivity{
			TicketID:   ticket.ID,
			TicketNo:   ticket.TicketNo,
			FromStatus: "",
			ToStatus:   models.TicketStatusOpen,
			Remarks:    "Ticket created",
			ActionBy:   actor.UserName,
		}).Error
	})
	if err != nil {
		logger.Errorf("ticket create failed: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(listview.Fail("Failed to create ticket"))
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"isSuccess": true,
		"message":   "Ticket " + ticket.TicketNo + " created successfully",
		"ticket":    ticket,
	})
}

// AssignTicket hands a ticket to an engineer and restamps the SLA from
// the current routing step. Notification mail is best effort.
func (c *TicketController) AssignTicket(ctx *fiber.Ctx) error {
	var input struct {
		AssignedTo string `json:"assigned_to" validate:"required"`
		Remarks    string `json:"remarks"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(listview.Fail("Invalid request body"))
	}
	if fields := ValidateStruct(input); fields != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(listview.FailFields(fields))
	}

	var ticket models.Ticket
	if err := c.DB.First(&ticket, "id = ?", ctx.Params("id")).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(listview.Fail("Ticket not found"))
	}
	if !models.CanTransition(ticket.Status, models.TicketStatusAssigned) {
		return ctx.Status(fiber.StatusConflict).JSON(listview.Fail(
			"Ticket " + ticket.TicketNo + " cannot be assigned from status " + ticket.Status))
	}

	var engineer models.Employee
	if err := c.DB.Where("user_name = ? AND status = ?", input.AssignedTo, true).First(&engineer).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(listview.FailFields(map[string]string{"assigned_to": "engineer does not exist"}))
	}

	var step models.WorkflowStep
	err := c.DB.Where("department_id = ? AND sequence = ?", ticket.DepartmentID, ticket.StepSequence).
		First(&step).Error
	if err != nil {
		logger.Errorf("workflow step %d missing for ticket %s: %v", ticket.StepSequence, ticket.TicketNo, err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(listview.Fail("Failed to assign ticket"))
	}

	actor := c.actor(ctx)
	fromStatus := ticket.Status
	slaDue := time.Now().Add(time.Duration(step.TATHours) * time.Hour)
	ticket.Status = models.TicketStatusAssigned
	ticket.AssignedTo = engineer.UserName
	ticket.SLADueAt = &slaDue
	ticket.UpdatedBy = int(actor.UserID)

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&ticket).Error; err != nil {
			return err
		}
		return tx.Create(&models.TicketActivity{
			TicketID:   ticket.ID,
			TicketNo:   ticket.TicketNo,
			FromStatus: fromStatus,
			ToStatus:   models.TicketStatusAssigned,
			Remarks:    "Assigned to " + engineer.UserName + ". " + input.Remarks,
			ActionBy:   actor.UserName,
		}).Error
	})
	if err != nil {
		logger.Errorf("ticket assign failed: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(listview.Fail("Failed to assign ticket"))
	}

	// mail failure must not undo the assignment
	go func() {
		_ = utils.SendTicketAssignedMail(engineer.Email, engineer.EmployeeName, ticket.TicketNo,
			ticket.Title, slaDue.Format("2006-01-02 15:04:05"))
	}()

	return ctx.JSON(fiber.Map{
		"isSuccess": true,
		"message":   "Ticket " + ticket.TicketNo + " assigned to " + engineer.UserName,
		"ticket":    ticket,
	})
}

// ExecuteTicket moves an assigned ticket to in progress. Only the
// assignee or an Admin may start the work.
func (c *TicketController) ExecuteTicket(ctx *fiber.Ctx) error {
	var input struct {
		Remarks string `json:"remarks"`
	}
	_ = ctx.BodyParser(&input)

	var ticket models.Ticket
	if err := c.DB.First(&ticket, "id = ?", ctx.Params("id")).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(listview.Fail("Ticket not found"))
	}
	if !models.CanTransition(ticket.Status, models.TicketStatusInProgress) {
		return ctx.Status(fiber.StatusConflict).JSON(listview.Fail(
			"Ticket " + ticket.TicketNo + " cannot be executed from status " + ticket.Status))
	}

	actor := c.actor(ctx)
	if !canWorkOn(actor, ticket) {
		return ctx.Status(fiber.StatusForbidden).JSON(listview.Fail("Only the assignee can execute this ticket"))
	}

	ticket.Status = models.TicketStatusInProgress
	ticket.UpdatedBy = int(actor.UserID)

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&ticket).Error; err != nil {
			return err
		}
		return tx.Create(&models.TicketActivity{
			TicketID:   ticket.ID,
			TicketNo:   ticket.TicketNo,
			FromStatus: models.TicketStatusAssigned,
			ToStatus:   models.TicketStatusInProgress,
			Remarks:    input.Remarks,
			ActionBy:   actor.UserName,
		}).Error
	})
	if err != nil {
		logger.Errorf("ticket execute failed: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(listview.Fail("Failed to execute ticket"))
	}

	return ctx.JSON(fiber.Map{
		"isSuccess": true,
		"message":   "Ticket " + ticket.TicketNo + " is now in progress",
		"ticket":    ticket,
	})
}

// AddSparePart consumes stock against an in-progress ticket.
func (c *TicketController) AddSparePart(ctx *fiber.Ctx) error {
	var input struct {
		PartCode string `json:"part_code" validate:"required"`
		Quantity int    `json:"quantity" validate:"required,min=1"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(listview.Fail("Invalid request body"))
	}
	if fields := ValidateStruct(input); fields != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(listview.FailFields(fields))
	}

	var ticket models.Ticket
	if err := c.DB.First(&ticket, "id = ?", ctx.Params("id")).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(listview.Fail("Ticket not found"))
	}
	if ticket.Status != models.TicketStatusInProgress {
		return ctx.Status(fiber.StatusConflict).JSON(listview.Fail("Spare parts can only be used on in-progress tickets"))
	}

	actor := c.actor(ctx)
	if !canWorkOn(actor, ticket) {
		return ctx.Status(fiber.StatusForbidden).JSON(listview.Fail("Only the assignee can use spare parts on this ticket"))
	}

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		var part models.SparePart
		if err := tx.Where("part_code = ?", input.PartCode).First(&part).Error; err != nil {
			return err
		}
		if part.StockQty < input.Quantity {
			return errInsufficientStock
		}
		part.StockQty -= input.Quantity
		part.UpdatedBy = int(actor.UserID)
		if err := tx.Save(&part).Error; err != nil {
			return err
		}
		return tx.Create(&models.TicketSparePart{
			TicketID:  ticket.ID,
			PartCode:  input.PartCode,
			Quantity:  input.Quantity,
			CreatedBy: int(actor.UserID),
		}).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ctx.Status(fiber.StatusBadRequest).JSON(listview.FailFields(map[string]string{"part_code": "spare part does not exist"}))
	}
	if errors.Is(err, errInsufficientStock) {
		return ctx.Status(fiber.StatusConflict).JSON(listview.FailFields(map[string]string{"quantity": "insufficient stock"}))
	}
	if err != nil {
		logger.Errorf("ticket spare part failed: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(listview.Fail("Failed to record spare part"))
	}

	return ctx.JSON(fiber.Map{
		"isSuccess": true,
		"message":   "Spare part " + input.PartCode + " recorded",
	})
}

var errInsufficientStock = errors.New("insufficient stock")

// ResolveTicket completes the current routing step. When later steps
// remain the ticket goes back to assigned on the next step with a fresh
// SLA; otherwise it is resolved.
func (c *TicketController) ResolveTicket(ctx *fiber.Ctx) error {
	var input struct {
		Remarks string `json:"remarks" validate:"required,min=3"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(listview.Fail("Invalid request body"))
	}
	if fields := ValidateStruct(input); fields != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(listview.FailFields(fields))
	}

	var ticket models.Ticket
	if err := c.DB.First(&ticket, "id = ?", ctx.Params("id")).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(listview.Fail("Ticket not found"))
	}
	if !models.CanTransition(ticket.Status, models.TicketStatusResolved) {
		return ctx.Status(fiber.StatusConflict).JSON(listview.Fail(
			"Ticket " + ticket.TicketNo + " cannot be resolved from status " + ticket.Status))
	}

	actor := c.actor(ctx)
	if !canWorkOn(actor, ticket) {
		return ctx.Status(fiber.StatusForbidden).JSON(listview.Fail("Only the assignee can resolve this ticket"))
	}

	next, err := NextWorkflowStep(c.DB, ticket.DepartmentID, ticket.StepSequence)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Errorf("next step lookup failed for %s: %v", ticket.TicketNo, err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(listview.Fail("Failed to resolve ticket"))
	}

	fromStatus := ticket.Status
	var message string
	if next != nil {
		slaDue := time.Now().Add(time.Duration(next.TATHours) * time.Hour)
		ticket.Status = models.TicketStatusAssigned
		ticket.StepSequence = next.Sequence
		ticket.AssignedTo = ""
		ticket.SLADueAt = &slaDue
		message = "Ticket " + ticket.TicketNo + " routed to step " + next.TaskName
	} else {
		now := time.Now()
		ticket.Status = models.TicketStatusResolved
		ticket.ResolvedAt = &now
		message = "Ticket " + ticket.TicketNo + " resolved"
	}
	ticket.UpdatedBy = int(actor.UserID)

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&ticket).Error; err != nil {
			return err
		}
		return tx.Create(&models.TicketActivity{
			TicketID:   ticket.ID,
			TicketNo:   ticket.TicketNo,
			FromStatus: fromStatus,
			ToStatus:   ticket.Status,
			Remarks:    input.Remarks,
			ActionBy:   actor.UserName,
		}).Error
	})
	if err != nil {
		logger.Errorf("ticket resolve failed: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(listview.Fail("Failed to resolve ticket"))
	}

	return ctx.JSON(fiber.Map{
		"isSuccess": true,
		"message":   message,
		"ticket":    ticket,
	})
}

// CloseTicket finalizes a resolved ticket. Admin and Manager only,
// enforced again here on top of the route guard.
func (c *TicketController) CloseTicket(ctx *fiber.Ctx) error {
	var input struct {
		Remarks string `json:"remarks"`
	}
	_ = ctx.BodyParser(&input)

	var ticket models.Ticket
	if err := c.DB.First(&ticket, "id = ?", ctx.Params("id")).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(listview.Fail("Ticket not found"))
	}
	if !models.CanTransition(ticket.Status, models.TicketStatusClosed) {
		return ctx.Status(fiber.StatusConflict).JSON(listview.Fail(
			"Ticket " + ticket.TicketNo + " cannot be closed from status " + ticket.Status))
	}

	actor := c.actor(ctx)
	if actor.Role != "Admin" && actor.Role != "Manager" {
		return ctx.Status(fiber.StatusForbidden).JSON(listview.Fail("Only Admin or Manager can close tickets"))
	}

	now := time.Now()
	ticket.Status = models.TicketStatusClosed
	ticket.ClosedAt = &now
	ticket.UpdatedBy = int(actor.UserID)

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&ticket).Error; err != nil {
			return err
		}
		return tx.Create(&models.TicketActivity{
			TicketID:   ticket.ID,
			TicketNo:   ticket.TicketNo,
			FromStatus: models.TicketStatusResolved,
			ToStatus:   models.TicketStatusClosed,
			Remarks:    input.Remarks,
			ActionBy:   actor.UserName,
		}).Error
	})
	if err != nil {
		logger.Errorf("ticket close failed: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(listview.Fail("Failed to close ticket"))
	}

	return ctx.JSON(fiber.Map{
		"isSuccess": true,
		"message":   "Ticket " + ticket.TicketNo + " closed",
		"ticket":    ticket,
	})
}

// ExportTicketList downloads the current page of the ticket list as CSV.
func (c *TicketController) ExportTicketList(ctx *fiber.Ctx) error {
	params := listview.ParseParams(ctx, "ticket_no", "title", "customer_code")
	query := c.ticketFilters(ctx)

	tickets := make([]models.Ticket, 0, params.Limit)
	if _, err := listview.Paginate(query, &models.Ticket{}, params, &tickets); err != nil {
		logger.Errorf("ticket export failed: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(listview.Fail("Failed to export Ticket List"))
	}

	cols := ticketColumns
	sessionID, _ := ctx.Locals("sessionID").(string)
	if viewStates != nil && sessionID != "" {
		if state, err := viewStates.Get(sessionID, "TicketList"); err == nil {
			cols = state.Columns
		}
	}

	return listview.WriteCSV(ctx, "Ticket List.csv", cols, tickets)
}
