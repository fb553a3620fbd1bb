package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"helpdesk-app/listview"
	"helpdesk-app/logger"
	"helpdesk-app/models"
)

var workflowColumns = []listview.Column{
	{ID: "department_id", Label: "Department", Visible: true},
	{ID: "sequence", Label: "Sequence", Visible: true},
	{ID: "task_name", Label: "Task", Visible: true},
	{ID: "sub_task_name", Label: "Sub Task", Visible: true},
	{ID: "assignee_role", Label: "Assignee Role", Visible: true},
	{ID: "tat_hours", Label: "TAT (hours)", Visible: true},
	{ID: "status", Label: "Status", Visible: true, Format: listview.FormatStatus},
}

// WorkflowController manages the per-department task/sub-task routing steps
// and their TAT budgets.
type WorkflowController struct {
	*MasterController[models.WorkflowStep]
}

func NewWorkflowController(db *gorm.DB) *WorkflowController {
	return &WorkflowController{
		MasterController: NewMasterController(db, MasterConfig[models.WorkflowStep]{
			Screen:     "WorkflowTATList",
			ItemKey:    "workflowStep",
			ListKey:    "workflowTATList",
			Label:      "Workflow TAT List",
			FilterKeys: []string{"task_name", "sub_task_name", "assignee_role"},
			Columns:    workflowColumns,
			Decode:     decodeWorkflowStep,
			ApplyUpdate: func(dst *models.WorkflowStep, src models.WorkflowStep) {
				dst.DepartmentID = src.DepartmentID
				dst.Sequence = src.Sequence
				dst.TaskName = src.TaskName
				dst.SubTaskName = src.SubTaskName
				dst.AssigneeRole = src.AssigneeRole
				dst.TATHours = src.TATHours
				dst.Status = src.Status
			},
		}),
	}
}

// GetTATList returns the ordered routing steps of one department.
func (c *WorkflowController) GetTATList(ctx *fiber.Ctx) error {
	departmentID := ctx.Query("department_id")
	if departmentID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(listview.Fail("department_id is required"))
	}

	var steps []models.WorkflowStep
	err := c.DB.Where("department_id = ? AND status = ?", departmentID, true).
		Order("sequence asc").
		Find(&steps).Error
	if err != nil {
		logger.Errorf("TAT list fetch failed: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(listview.Fail("Failed to fetch Workflow TAT List"))
	}

	return ctx.JSON(listview.OKList("workflowTATList", steps, int64(len(steps))))
}

func decodeWorkflowStep(db *gorm.DB, ctx *fiber.Ctx) (models.WorkflowStep, map[string]string, error) {
	var input struct {
		DepartmentID uint   `json:"department_id" validate:"required"`
		Sequence     int    `json:"sequence" validate:"required,min=1"`
		TaskName     string `json:"task_name" validate:"required,min=3"`
		SubTaskName  string `json:"sub_task_name"`
		AssigneeRole string `json:"assignee_role" validate:"required"`
		TATHours     int    `json:"tat_hours" validate:"required,min=1"`
		Status       *bool  `json:"status"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return models.WorkflowStep{}, nil, err
	}
	if fields := ValidateStruct(input); fields != nil {
		return models.WorkflowStep{}, fields, nil
	}

	var dept models.Department
	if err := db.First(&dept, input.DepartmentID).Error; err != nil {
		return models.WorkflowStep{}, map[string]string{"department_id": "department does not exist"}, nil
	}

	// one sequence number per department
	dup := db.Where("department_id = ? AND sequence = ?", input.DepartmentID, input.Sequence)
	if id := ctx.Params("id"); id != "" {
		dup = dup.Where("id <> ?", id)
	}
	var existing models.WorkflowStep
	if err := dup.First(&existing).Error; err == nil {
		return models.WorkflowStep{}, map[string]string{"sequence": "sequence already used for this department"}, nil
	}

	step := models.WorkflowStep{
		DepartmentID: input.DepartmentID,
		Sequence:     input.Sequence,
		TaskName:     input.TaskName,
		SubTaskName:  input.SubTaskName,
		AssigneeRole: input.AssigneeRole,
		TATHours:     input.TATHours,
		Status:       true,
	}
	if input.Status != nil {
		step.Status = *input.Status
	}
	return step, nil, nil
}

// NextWorkflowStep finds the first active routing step after the given
// sequence for a department. gorm.ErrRecordNotFound means the flow is done.
func NextWorkflowStep(db *gorm.DB, departmentID uint, afterSequence int) (*models.WorkflowStep, error) {
	var step models.WorkflowStep
	err := db.Where("department_id = ? AND sequence > ? AND status = ?", departmentID, afterSequence, true).
		Order("sequence asc").
		First(&step).Error
	if err != nil {
		return nil, err
	}
	return &step, nil
}
