package models

import (
	"helpdesk-app/controllers/idgen"
	"helpdesk-app/types"
	"time"

	"gorm.io/gorm"
)

// Ticket status lifecycle: open -> assigned -> in_progress -> resolved -> closed
const (
	TicketStatusOpen       = "open"
	TicketStatusAssigned   = "assigned"
	TicketStatusInProgress = "in_progress"
	TicketStatusResolved   = "resolved"
	TicketStatusClosed     = "closed"
)

// ticketTransitions lists the reachable statuses from each status.
// Assigned appears twice on purpose: a ticket can be reassigned, and an
// in-progress ticket goes back to assigned when routed to the next step.
var ticketTransitions = map[string][]string{
	TicketStatusOpen:       {TicketStatusAssigned},
	TicketStatusAssigned:   {TicketStatusAssigned, TicketStatusInProgress},
	TicketStatusInProgress: {TicketStatusAssigned, TicketStatusResolved},
	TicketStatusResolved:   {TicketStatusClosed},
}

func CanTransition(from, to string) bool {
	for _, next := range ticketTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Ticket struct {
	ID           types.SnowflakeID `json:"ID" gorm:"primaryKey"`
	TicketNo     string            `json:"ticket_no" gorm:"unique"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	CustomerCode string            `json:"customer_code"`
	ProductCode  string            `json:"product_code"`
	DepartmentID uint              `json:"department_id"`
	Priority     string            `json:"priority"`
	Status       string            `json:"status" gorm:"default:open"`
	AssignedTo   string            `json:"assigned_to"`
	StepSequence int               `json:"step_sequence"`
	SLADueAt     *time.Time        `json:"sla_due_at"`
	ResolvedAt   *time.Time        `json:"resolved_at"`
	ClosedAt     *time.Time        `json:"closed_at"`
	Remarks      string            `json:"remarks"`
	CreatedAt    time.Time         `json:"created_at"`
	CreatedBy    int               `json:"created_by"`
	UpdatedAt    time.Time         `json:"updated_at"`
	UpdatedBy    int               `json:"updated_by"`
	DeletedAt    gorm.DeletedAt    `json:"-"`
	DeletedBy    int               `json:"-"`
}

func (t *Ticket) BeforeCreate(tx *gorm.DB) (err error) {
	t.ID = types.SnowflakeID(idgen.GenerateID())
	return
}

// TicketActivity records every status transition of a ticket.
type TicketActivity struct {
	ID         types.SnowflakeID `json:"ID" gorm:"primaryKey"`
	TicketID   types.SnowflakeID `json:"ticket_id" gorm:"index"`
	TicketNo   string            `json:"ticket_no"`
	FromStatus string            `json:"from_status"`
	ToStatus   string            `json:"to_status"`
	Remarks    string            `json:"remarks"`
	ActionBy   string            `json:"action_by"`
	CreatedAt  time.Time         `json:"created_at"`
}

func (a *TicketActivity) BeforeCreate(tx *gorm.DB) (err error) {
	a.ID = types.SnowflakeID(idgen.GenerateID())
	return
}

// TicketSparePart is a part consumed while executing a ticket.
type TicketSparePart struct {
	ID        types.SnowflakeID `json:"ID" gorm:"primaryKey"`
	TicketID  types.SnowflakeID `json:"ticket_id" gorm:"index"`
	PartCode  string            `json:"part_code"`
	Quantity  int               `json:"quantity"`
	CreatedAt time.Time         `json:"created_at"`
	CreatedBy int               `json:"created_by"`
}

func (p *TicketSparePart) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = types.SnowflakeID(idgen.GenerateID())
	return
}
