package main

import (
	"github.com/gofiber/fiber/v2"

	"helpdesk-app/auth"
	"helpdesk-app/config"
	"helpdesk-app/controllers"
	"helpdesk-app/controllers/idgen"
	"helpdesk-app/database"
	"helpdesk-app/listview"
	"helpdesk-app/logger"
	"helpdesk-app/middleware"
	"helpdesk-app/routes"
)

func main() {
	config.LoadConfig()
	logger.Init(config.LogLevel)

	app := fiber.New()

	database.EnsureDatabaseExists(config.DBName)

	db, err := database.OpenMasterDB()
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		logger.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	sessions := auth.NewContext()
	if err := sessions.Restore(db); err != nil {
		logger.Warnf("Could not restore sessions: %v", err)
	}
	middleware.Init(sessions, db)

	states := listview.NewStateStore()
	if err := controllers.InitViewStates(states); err != nil {
		logger.Fatalf("Failed to register list screens: %v", err)
	}

	config.SetupCORS(app)

	if err := routes.SetupRoutes(app, db, sessions, states); err != nil {
		logger.Fatalf("Failed to register routes: %v", err)
	}

	logger.Infof("listening on :%s", config.APP_PORT)
	if err := app.Listen(":" + config.APP_PORT); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
}
