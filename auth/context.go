package auth

import (
	"sync"
	"time"

	"gorm.io/gorm"

	"helpdesk-app/models"
)

// Session is the identity attached to one active login.
type Session struct {
	SessionID      string    `json:"session_id"`
	UserID         uint      `json:"user_id"`
	UserName       string    `json:"user_name"`
	EmployeeName   string    `json:"employee_name"`
	Role           string    `json:"role"`
	DepartmentID   uint      `json:"department_id"`
	DepartmentName string    `json:"department_name"`
	MobileNumber   string    `json:"mobile_number"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// Context is the process-wide registry of live sessions. Login and Logout
// are the only write paths; readers always observe a complete session
// record because values are stored and returned by copy under the lock.
type Context struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewContext() *Context {
	return &Context{sessions: make(map[string]Session)}
}

func (c *Context) Login(s Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[s.SessionID] = s
}

func (c *Context) Logout(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, sessionID)
}

// DropOthers removes every live session belonging to userID except
// keepSessionID. A fresh login must revoke the user's earlier logins here
// as well as in the sessions table, otherwise tokens minted for the old
// session keep resolving against the registry.
func (c *Context) DropOthers(userID uint, keepSessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, s := range c.sessions {
		if s.UserID == userID && id != keepSessionID {
			delete(c.sessions, id)
		}
	}
}

// Get returns a copy of the session, or false when the session is unknown
// or already expired.
func (c *Context) Get(sessionID string) (Session, bool) {
	c.mu.RLock()
	s, ok := c.sessions[sessionID]
	c.mu.RUnlock()

	if !ok {
		return Session{}, false
	}
	if !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt) {
		c.Logout(sessionID)
		return Session{}, false
	}
	return s, true
}

func (c *Context) IsAuthenticated(sessionID string) bool {
	_, ok := c.Get(sessionID)
	return ok
}

func (c *Context) ActiveCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sessions)
}

// Restore reloads active, unexpired sessions from the database so a server
// restart does not log everyone out.
func (c *Context) Restore(db *gorm.DB) error {
	var rows []models.UserSession
	if err := db.Where("is_active = ? AND expires_at > ?", true, time.Now()).Find(&rows).Error; err != nil {
		return err
	}

	for _, row := range rows {
		var emp models.Employee
		if err := db.First(&emp, uint(row.UserID)).Error; err != nil {
			continue
		}
		c.Login(Session{
			SessionID:      row.SessionID,
			UserID:         emp.ID,
			UserName:       emp.UserName,
			EmployeeName:   emp.EmployeeName,
			Role:           emp.Role,
			DepartmentID:   emp.DepartmentID,
			DepartmentName: emp.DepartmentName,
			MobileNumber:   emp.MobileNumber,
			ExpiresAt:      row.ExpiresAt,
		})
	}
	return nil
}
