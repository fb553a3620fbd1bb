package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type formInput struct {
	EmployeeCode string `json:"employee_code" validate:"required,min=3"`
	EmployeeName string `json:"employee_name" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
}

func TestValidateStructReportsEveryInvalidField(t *testing.T) {
	fields := ValidateStruct(formInput{Email: "not-an-email"})
	require.NotNil(t, fields)

	assert.Equal(t, "employee code is required", fields["employee_code"])
	assert.Equal(t, "employee name is required", fields["employee_name"])
	assert.Equal(t, "email must be a valid email address", fields["email"])
	assert.Len(t, fields, 3)
}

func TestValidateStructKeysByJSONTag(t *testing.T) {
	fields := ValidateStruct(formInput{EmployeeCode: "EM", EmployeeName: "Someone"})
	require.NotNil(t, fields)

	_, hasGoName := fields["EmployeeCode"]
	assert.False(t, hasGoName)
	assert.Equal(t, "employee code must be at least 3 characters", fields["employee_code"])
}

func TestValidateStructPassesValidInput(t *testing.T) {
	fields := ValidateStruct(formInput{
		EmployeeCode: "EMP001",
		EmployeeName: "Someone",
		Email:        "someone@example.com",
	})
	assert.Nil(t, fields)
}
