package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"helpdesk-app/auth"
	"helpdesk-app/config"
	"helpdesk-app/controllers"
	"helpdesk-app/listview"
)

// SetupRoutes declares the whole route table as one tree and registers it.
// Masters are Admin screens, tickets are open to all staff roles, the
// workflow configuration is Admin only.
func SetupRoutes(app *fiber.App, db *gorm.DB, sessions *auth.Context, states *listview.StateStore) error {
	admin := []string{"Admin"}

	tree := []RouteEntry{
		{
			Path: config.MAIN_ROUTES,
			Children: []RouteEntry{
				authRoutes(controllers.NewAuthController(db, sessions, states)),
				menuRoutes(controllers.NewMenuController()),
				masterRoutes("EmployeeMaster", controllers.NewEmployeeController(db), admin),
				masterRoutes("DepartmentMaster", controllers.NewDepartmentController(db), admin),
				masterRoutes("RoleMaster", controllers.NewRoleController(db), admin),
				masterRoutes("CustomerMaster", controllers.NewCustomerController(db), admin),
				masterRoutes("ProductMaster", controllers.NewProductController(db), admin),
				masterRoutes("SparePartMaster", controllers.NewSparePartController(db), admin),
				workflowRoutes(controllers.NewWorkflowController(db)),
				ticketRoutes(controllers.NewTicketController(db)),
				dashboardRoutes(controllers.NewDashboardController(db)),
				viewStateRoutes(controllers.NewViewStateController()),
			},
		},
	}

	return Register(app, tree)
}
