package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"helpdesk-app/listview"
	"helpdesk-app/logger"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetDashboard summarizes the open workload: ticket counts per status and
// per department, plus tickets already past their SLA.
func (c *DashboardController) GetDashboard(ctx *fiber.Ctx) error {

	statusSQL := `SELECT status, COUNT(*) AS total
		FROM tickets
		WHERE deleted_at IS NULL AND status <> 'closed'
		GROUP BY status
		ORDER BY status`

	var byStatus []struct {
		Status string `json:"status"`
		Total  int    `json:"total"`
	}
	if err := c.DB.Raw(statusSQL).Scan(&byStatus).Error; err != nil {
		logger.Errorf("dashboard status summary failed: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(listview.Fail("Failed to fetch dashboard"))
	}

	departmentSQL := `SELECT d.department_code, d.department_name, COUNT(t.id) AS total,
			SUM(CASE WHEN t.sla_due_at IS NOT NULL AND t.sla_due_at < CURRENT_TIMESTAMP THEN 1 ELSE 0 END) AS overdue
		FROM departments d
		LEFT JOIN tickets t ON t.department_id = d.id
			AND t.deleted_at IS NULL AND t.status NOT IN ('resolved', 'closed')
		WHERE d.deleted_at IS NULL
		GROUP BY d.department_code, d.department_name
		ORDER BY d.department_code`

	var byDepartment []struct {
		DepartmentCode string `json:"department_code"`
		DepartmentName string `json:"department_name"`
		Total          int    `json:"total"`
		Overdue        int    `json:"overdue"`
	}
	if err := c.DB.Raw(departmentSQL).Scan(&byDepartment).Error; err != nil {
		logger.Errorf("dashboard department summary failed: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(listview.Fail("Failed to fetch dashboard"))
	}

	return ctx.JSON(fiber.Map{
		"isSuccess": true,
		"dashboard": fiber.Map{
			"byStatus":     byStatus,
			"byDepartment": byDepartment,
		},
	})
}
