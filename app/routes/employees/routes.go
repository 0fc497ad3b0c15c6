package employees

import (
	"employee-records/app/database"

	"github.com/gofiber/fiber/v2"
)

// Handler carries the dependencies the employee routes need.
type Handler struct {
	Store       database.EmployeeStore
	ContentRoot string
}

func New(store database.EmployeeStore, contentRoot string) *Handler {
	return &Handler{Store: store, ContentRoot: contentRoot}
}

func SetupEmployeesRoutes(app *fiber.App, h *Handler) {
	// Pages
	app.Get("/", h.ListPage)
	app.Get("/list", h.ListPage)
	app.Get("/create", h.CreatePage)
	app.Post("/create", h.Create)
	app.Get("/edit/:id", h.EditPage)
	app.Post("/edit/:id", h.Edit)
	app.Get("/delete/:id", h.DeletePage)
	app.Post("/delete/:id", h.Delete)

	// API routes
	api := app.Group("/api/employees")
	api.Get("/", h.ListAPI)
	api.Post("/", h.CreateAPI)
	api.Get("/:id", h.GetAPI)
	api.Put("/:id", h.UpdateAPI)
	api.Delete("/:id", h.DeleteAPI)

	// Registered last so the fixed paths above take precedence.
	app.Get("/:id", h.DetailPage)
}
