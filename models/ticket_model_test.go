package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketLifecycleForward(t *testing.T) {
	assert.True(t, CanTransition(TicketStatusOpen, TicketStatusAssigned))
	assert.True(t, CanTransition(TicketStatusAssigned, TicketStatusInProgress))
	assert.True(t, CanTransition(TicketStatusInProgress, TicketStatusResolved))
	assert.True(t, CanTransition(TicketStatusResolved, TicketStatusClosed))
}

func TestTicketReassignAndRouting(t *testing.T) {
	// a waiting ticket can change hands
	assert.True(t, CanTransition(TicketStatusAssigned, TicketStatusAssigned))
	// completing a step routes the ticket back to the assignment queue
	assert.True(t, CanTransition(TicketStatusInProgress, TicketStatusAssigned))
}

func TestTicketInvalidTransitions(t *testing.T) {
	assert.False(t, CanTransition(TicketStatusOpen, TicketStatusInProgress))
	assert.False(t, CanTransition(TicketStatusOpen, TicketStatusResolved))
	assert.False(t, CanTransition(TicketStatusOpen, TicketStatusClosed))
	assert.False(t, CanTransition(TicketStatusAssigned, TicketStatusResolved))
	assert.False(t, CanTransition(TicketStatusAssigned, TicketStatusClosed))
	assert.False(t, CanTransition(TicketStatusInProgress, TicketStatusClosed))
	assert.False(t, CanTransition(TicketStatusResolved, TicketStatusInProgress))
	assert.False(t, CanTransition(TicketStatusClosed, TicketStatusOpen))
	assert.False(t, CanTransition(TicketStatusClosed, TicketStatusAssigned))
}

func TestTicketUnknownStatus(t *testing.T) {
	assert.False(t, CanTransition("archived", TicketStatusOpen))
	assert.False(t, CanTransition(TicketStatusOpen, "archived"))
}
