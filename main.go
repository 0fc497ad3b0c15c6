package main

import (
	"log"
	"path/filepath"

	"employee-records/app/config"
	"employee-records/app/database"
	"employee-records/app/routes/employees"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler renders error templates for page requests and JSON for
// API requests.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found - Employee Records",
			"CurrentPage": "",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - Employee Records",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// Initialize configuration and database
	config.Load()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize template engine
	engine := html.New("./app/templates", ".html")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files: uploaded content is served at the same relative path it
	// is stored under.
	contentRoot := config.AppConfig.ContentRoot
	app.Static("/static", contentRoot)
	app.Static("/uploads", filepath.Join(contentRoot, "uploads"))

	// Routes
	store := database.NewSQLEmployeeStore(config.GetDB())
	handler := employees.New(store, contentRoot)
	employees.SetupEmployeesRoutes(app, handler)

	port := config.AppConfig.Port
	log.Printf("Starting server on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
