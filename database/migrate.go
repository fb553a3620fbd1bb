package database

import (
	"helpdesk-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Employee{},
		&models.Role{},
		&models.Department{},
		&models.Customer{},
		&models.Product{},
		&models.SparePart{},
		&models.Ticket{},
		&models.TicketActivity{},
		&models.TicketSparePart{},
		&models.WorkflowStep{},
		&models.UserSession{},
		&models.LoginLog{},
	)
}
