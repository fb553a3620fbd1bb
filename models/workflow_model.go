package models

import "gorm.io/gorm"

// WorkflowStep is one routing stage of a department's task/sub-task flow.
// Steps are ordered by Sequence and carry the turn-around-time budget the
// SLA due date is computed from.
type WorkflowStep struct {
	gorm.Model
	DepartmentID uint   `json:"department_id" gorm:"uniqueIndex:uniq_dept_seq"`
	Sequence     int    `json:"sequence" gorm:"uniqueIndex:uniq_dept_seq"`
	TaskName     string `json:"task_name"`
	SubTaskName  string `json:"sub_task_name"`
	AssigneeRole string `json:"assignee_role"`
	TATHours     int    `json:"tat_hours"`
	Status       bool   `json:"status" gorm:"default:true"`
	CreatedBy    int    `json:"created_by"`
	UpdatedBy    int    `json:"updated_by"`
	DeletedBy    int    `json:"-"`
}
