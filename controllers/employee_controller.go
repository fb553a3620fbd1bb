package controllers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"helpdesk-app/listview"
	"helpdesk-app/models"
)

var employeeColumns = []listview.Column{
	{ID: "employee_code", Label: "Employee Code", Visible: true},
	{ID: "employee_name", Label: "Employee Name", Visible: true},
	{ID: "user_name", Label: "User Name", Visible: true},
	{ID: "email", Label: "Email", Visible: true},
	{ID: "mobile_number", Label: "Mobile Number", Visible: false},
	{ID: "role", Label: "Role", Visible: true},
	{ID: "department_name", Label: "Department", Visible: true},
	{ID: "designation", Label: "Designation", Visible: false},
	{ID: "status", Label: "Status", Visible: true, Format: listview.FormatStatus},
}

func NewEmployeeController(db *gorm.DB) *MasterController[models.Employee] {
	return NewMasterController(db, MasterConfig[models.Employee]{
		Screen:     "EmployeeMaster",
		ItemKey:    "employeeMaster",
		ListKey:    "employeeMasterList",
		Label:      "Employee Master",
		FilterKeys: []string{"employee_code", "employee_name", "department_name", "role"},
		Columns:    employeeColumns,
		Decode:     decodeEmployee,
		ApplyUpdate: func(dst *models.Employee, src models.Employee) {
			dst.EmployeeCode = src.EmployeeCode
			dst.EmployeeName = src.EmployeeName
			dst.UserName = src.UserName
			dst.Email = src.Email
			dst.MobileNumber = src.MobileNumber
			dst.Role = src.Role
			dst.DepartmentID = src.DepartmentID
			dst.DepartmentName = src.DepartmentName
			dst.Designation = src.Designation
			dst.Status = src.Status
			// blank password means keep the current one
			if src.Password != "" {
				dst.Password = src.Password
			}
		},
	})
}

func decodeEmployee(db *gorm.DB, ctx *fiber.Ctx) (models.Employee, map[string]string, error) {
	var input struct {
		EmployeeCode string `json:"employee_code" validate:"required,min=3"`
		EmployeeName string `json:"employee_name" validate:"required,min=3"`
		UserName     string `json:"user_name" validate:"required,min=3"`
		Password     string `json:"password"`
		Email        string `json:"email" validate:"required,email"`
		MobileNumber string `json:"mobile_number"`
		Role         string `json:"role" validate:"required"`
		DepartmentID uint   `json:"department_id" validate:"required"`
		Designation  string `json:"designation"`
		Status       *bool  `json:"status"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return models.Employee{}, nil, err
	}
	if fields := ValidateStruct(input); fields != nil {
		return models.Employee{}, fields, nil
	}
	// blank password is only meaningful on update, where it keeps the
	// current hash; a new employee must get one
	if input.Password == "" && ctx.Params("id") == "" {
		return models.Employee{}, map[string]string{"password": "password is required"}, nil
	}

	var role models.Role
	if err := db.Where("role_name = ?", input.Role).First(&role).Error; err != nil {
		return models.Employee{}, map[string]string{"role": "role does not exist"}, nil
	}

	var dept models.Department
	if err := db.First(&dept, input.DepartmentID).Error; err != nil {
		return models.Employee{}, map[string]string{"department_id": "department does not exist"}, nil
	}

	emp := models.Employee{
		EmployeeCode:   input.EmployeeCode,
		EmployeeName:   input.EmployeeName,
		UserName:       input.UserName,
		Email:          input.Email,
		MobileNumber:   input.MobileNumber,
		Role:           input.Role,
		DepartmentID:   dept.ID,
		DepartmentName: dept.DepartmentName,
		Designation:    input.Designation,
		Status:         true,
	}
	if input.Status != nil {
		emp.Status = *input.Status
	}

	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.Employee{}, nil, err
		}
		emp.Password = string(hashed)
	}

	return emp, nil, nil
}
