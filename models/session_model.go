package models

import "time"

type UserSession struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint64    `json:"user_id" gorm:"index"`
	SessionID      string    `json:"session_id" gorm:"uniqueIndex"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent"`
	DeviceID       string    `json:"device_id"`
	IsActive       bool      `json:"is_active" gorm:"index"`
	LastActivityAt time.Time `json:"last_activity_at"`
	ExpiresAt      time.Time `json:"expires_at"`
	CreatedAt      time.Time `json:"created_at"`
}

type LoginLog struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	UserID        *uint64    `json:"user_id" gorm:"index"`
	SessionID     string     `json:"session_id" gorm:"index"`
	Username      string     `json:"username"`
	LoginAt       *time.Time `json:"login_at"`
	LogoutAt      *time.Time `json:"logout_at"`
	IPAddress     string     `json:"ip_address"`
	UserAgent     string     `json:"user_agent"`
	Browser       string     `json:"browser"`
	OS            string     `json:"os"`
	DeviceType    string     `json:"device_type"`
	LoginStatus   string     `json:"login_status"`
	FailureReason *string    `json:"failure_reason"`
	CreatedAt     time.Time  `json:"created_at"`
}
