package database

import (
	"helpdesk-app/models"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedRoles(db)
	SeedDepartments(db)
	SeedAdminUser(db)
	SeedWorkflowSteps(db)
}

func SeedRoles(db *gorm.DB) {
	roles := []models.Role{
		{RoleName: "Admin", Description: "Full access"},
		{RoleName: "Manager", Description: "Department manager"},
		{RoleName: "Engineer", Description: "Service engineer"},
		{RoleName: "Guest", Description: "Read-only access"},
	}

	for _, r := range roles {
		var existing models.Role
		if err := db.Where("role_name = ?", r.RoleName).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&r)
			}
		}
	}
}

func SeedDepartments(db *gorm.DB) {
	departments := []models.Department{
		{DepartmentCode: "SVC", DepartmentName: "Service"},
		{DepartmentCode: "INV", DepartmentName: "Inventory"},
		{DepartmentCode: "ADM", DepartmentName: "Administration"},
	}

	for _, d := range departments {
		var existing models.Department
		if err := db.Where("department_code = ?", d.DepartmentCode).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&d)
			}
		}
	}
}

func SeedAdminUser(db *gorm.DB) {
	var existing models.Employee
	if err := db.Where("user_name = ?", "admin").First(&existing).Error; err == nil {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	var dept models.Department
	db.Where("department_code = ?", "ADM").First(&dept)

	admin := models.Employee{
		EmployeeCode:   "EMP-0001",
		EmployeeName:   "Administrator",
		UserName:       "admin",
		Password:       string(hashed),
		Email:          "admin@helpdesk.local",
		Role:           "Admin",
		DepartmentID:   dept.ID,
		DepartmentName: dept.DepartmentName,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
}

func SeedWorkflowSteps(db *gorm.DB) {
	var svc models.Department
	if err := db.Where("department_code = ?", "SVC").First(&svc).Error; err != nil {
		return
	}

	steps := []models.WorkflowStep{
		{DepartmentID: svc.ID, Sequence: 1, TaskName: "Triage", SubTaskName: "Review ticket", AssigneeRole: "Manager", TATHours: 4},
		{DepartmentID: svc.ID, Sequence: 2, TaskName: "Repair", SubTaskName: "On-site service", AssigneeRole: "Engineer", TATHours: 24},
		{DepartmentID: svc.ID, Sequence: 3, TaskName: "Verification", SubTaskName: "Customer sign-off", AssigneeRole: "Manager", TATHours: 8},
	}

	for _, s := range steps {
		var existing models.WorkflowStep
		if err := db.Where("department_id = ? AND sequence = ?", s.DepartmentID, s.Sequence).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&s)
			}
		}
	}
}
