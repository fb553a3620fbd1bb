package models

import "gorm.io/gorm"

type Department struct {
	gorm.Model
	DepartmentCode string `json:"department_code" gorm:"unique"`
	DepartmentName string `json:"department_name" gorm:"unique"`
	Description    string `json:"description"`
	HeadUserName   string `json:"head_user_name"`
	Status         bool   `json:"status" gorm:"default:true"`
	CreatedBy      int    `json:"created_by"`
	UpdatedBy      int    `json:"updated_by"`
	DeletedBy      int    `json:"-"`
}
