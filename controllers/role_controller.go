package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"helpdesk-app/listview"
	"helpdesk-app/models"
)

var roleColumns = []listview.Column{
	{ID: "role_name", Label: "Role Name", Visible: true},
	{ID: "description", Label: "Description", Visible: true},
	{ID: "status", Label: "Status", Visible: true, Format: listview.FormatStatus},
}

func NewRoleController(db *gorm.DB) *MasterController[models.Role] {
	return NewMasterController(db, MasterConfig[models.Role]{
		Screen:     "RoleMaster",
		ItemKey:    "roleMaster",
		ListKey:    "roleMasterList",
		Label:      "Role Master",
		FilterKeys: []string{"role_name"},
		Columns:    roleColumns,
		Decode:     decodeRole,
		ApplyUpdate: func(dst *models.Role, src models.Role) {
			dst.RoleName = src.RoleName
			dst.Description = src.Description
			dst.Status = src.Status
		},
	})
}

func decodeRole(db *gorm.DB, ctx *fiber.Ctx) (models.Role, map[string]string, error) {
	var input struct {
		RoleName    string `json:"role_name" validate:"required,min=3"`
		Description string `json:"description"`
		Status      *bool  `json:"status"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return models.Role{}, nil, err
	}
	if fields := ValidateStruct(input); fields != nil {
		return models.Role{}, fields, nil
	}

	role := models.Role{
		RoleName:    input.RoleName,
		Description: input.Description,
		Status:      true,
	}
	if input.Status != nil {
		role.Status = *input.Status
	}
	return role, nil, nil
}
