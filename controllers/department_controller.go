package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"helpdesk-app/listview"
	"helpdesk-app/models"
)

var departmentColumns = []listview.Column{
	{ID: "department_code", Label: "Department Code", Visible: true},
	{ID: "department_name", Label: "Department Name", Visible: true},
	{ID: "description", Label: "Description", Visible: true},
	{ID: "head_user_name", Label: "Department Head", Visible: true},
	{ID: "status", Label: "Status", Visible: true, Format: listview.FormatStatus},
}

func NewDepartmentController(db *gorm.DB) *MasterController[models.Department] {
	return NewMasterController(db, MasterConfig[models.Department]{
		Screen:     "DepartmentMaster",
		ItemKey:    "departmentMaster",
		ListKey:    "departmentMasterList",
		Label:      "Department Master",
		FilterKeys: []string{"department_code", "department_name"},
		Columns:    departmentColumns,
		Decode:     decodeDepartment,
		ApplyUpdate: func(dst *models.Department, src models.Department) {
			dst.DepartmentCode = src.DepartmentCode
			dst.DepartmentName = src.DepartmentName
			dst.Description = src.Description
			dst.HeadUserName = src.HeadUserName
			dst.Status = src.Status
		},
	})
}

func decodeDepartment(db *gorm.DB, ctx *fiber.Ctx) (models.Department, map[string]string, error) {
	var input struct {
		DepartmentCode string `json:"department_code" validate:"required,min=2"`
		DepartmentName string `json:"department_name" validate:"required,min=3"`
		Description    string `json:"description"`
		HeadUserName   string `json:"head_user_name"`
		Status         *bool  `json:"status"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return models.Department{}, nil, err
	}
	if fields := ValidateStruct(input); fields != nil {
		return models.Department{}, fields, nil
	}

	dept := models.Department{
		DepartmentCode: input.DepartmentCode,
		DepartmentName: input.DepartmentName,
		Description:    input.Description,
		HeadUserName:   input.HeadUserName,
		Status:         true,
	}
	if input.Status != nil {
		dept.Status = *input.Status
	}
	return dept, nil, nil
}
