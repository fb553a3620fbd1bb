package models

import "gorm.io/gorm"

type Employee struct {
	gorm.Model
	EmployeeCode   string `json:"employee_code" gorm:"unique"`
	EmployeeName   string `json:"employee_name"`
	UserName       string `json:"user_name" gorm:"unique"`
	Password       string `json:"-"`
	Email          string `json:"email" gorm:"unique"`
	MobileNumber   string `json:"mobile_number"`
	Role           string `json:"role"`
	DepartmentID   uint   `json:"department_id"`
	DepartmentName string `json:"department_name"`
	Designation    string `json:"designation"`
	Status         bool   `json:"status" gorm:"default:true"`
	CreatedBy      int    `json:"created_by"`
	UpdatedBy      int    `json:"updated_by"`
	DeletedBy      int    `json:"-"`
}

// Role Model
type Role struct {
	gorm.Model
	RoleName    string `json:"role_name" gorm:"unique"`
	Description string `json:"description"`
	Status      bool   `json:"status" gorm:"default:true"`
	CreatedBy   int    `json:"created_by"`
	UpdatedBy   int    `json:"updated_by"`
	DeletedBy   int    `json:"-"`
}
