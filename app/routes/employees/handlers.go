package employees

import (
	"errors"
	"strconv"

	"employee-records/app/countries"
	"employee-records/app/database"
	"employee-records/app/models"
	"employee-records/app/uploads"
	"employee-records/app/validation"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ListPage(c *fiber.Ctx) error {
	employeeList, err := h.Store.List()
	if err != nil {
		return err
	}

	return c.Render("employees/index", fiber.Map{
		"Title":       "Employees - Employee Records",
		"CurrentPage": "employees",
		"Employees":   employeeList,
		"Count":       len(employeeList),
	})
}

func (h *Handler) DetailPage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}

	employee, err := h.Store.Get(id)
	if errors.Is(err, database.ErrNotFound) {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}

	return c.Render("employees/detail", fiber.Map{
		"Title":       employee.FullName() + " - Employee Records",
		"CurrentPage": "employees",
		"Employee":    employee,
	})
}

func (h *Handler) CreatePage(c *fiber.Ctx) error {
	codes, err := countries.Load(h.ContentRoot)
	if err != nil {
		return err
	}

	return c.Render("employees/create", fiber.Map{
		"Title":        "Add Employee - Employee Records",
		"CurrentPage":  "employees",
		"Employee":     &models.EmployeeDetail{},
		"Errors":       validation.Errors{},
		"CountryCodes": codes,
	})
}

func (h *Handler) Create(c *fiber.Ctx) error {
	detail, errs, err := h.buildEmployee(c, nil)
	if err != nil {
		return err
	}

	if errs.Any() {
		codes, err := countries.Load(h.ContentRoot)
		if err != nil {
			return err
		}
		return c.Render("employees/create", fiber.Map{
			"Title":        "Add Employee - Employee Records",
			"CurrentPage":  "employees",
			"Employee":     detail,
			"Errors":       errs,
			"CountryCodes": codes,
		})
	}

	if err := h.Store.Insert(&detail.Employee); err != nil {
		return err
	}
	return c.Redirect("/list")
}

func (h *Handler) EditPage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}

	employee, err := h.Store.Get(id)
	if errors.Is(err, database.ErrNotFound) {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}

	codes, err := countries.Load(h.ContentRoot)
	if err != nil {
		return err
	}

	return c.Render("employees/edit", fiber.Map{
		"Title":        "Edit Employee - Employee Records",
		"CurrentPage":  "employees",
		"Employee":     &models.EmployeeDetail{Employee: *employee},
		"Errors":       validation.Errors{},
		"CountryCodes": codes,
	})
}

func (h *Handler) Edit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}

	formID, _ := strconv.Atoi(c.FormValue("Id"))
	if formID != id {
		return fiber.ErrNotFound
	}

	existing, err := h.Store.Get(id)
	if errors.Is(err, database.ErrNotFound) {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}

	detail, errs, err := h.buildEmployee(c, existing)
	if err != nil {
		return err
	}

	if errs.Any() {
		codes, err := countries.Load(h.ContentRoot)
		if err != nil {
			return err
		}
		return c.Render("employees/edit", fiber.Map{
			"Title":        "Edit Employee - Employee Records",
			"CurrentPage":  "employees",
			"Employee":     detail,
			"Errors":       errs,
			"CountryCodes": codes,
		})
	}

	if err := h.Store.Update(&detail.Employee); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}
	return c.Redirect("/list")
}

func (h *Handler) DeletePage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}

	employee, err := h.Store.Get(id)
	if errors.Is(err, database.ErrNotFound) {
		return fiber.ErrNotFound
	}
	if err != nil {
		return err
	}

	return c.Render("employees/delete", fiber.Map{
		"Title":       "Delete Employee - Employee Records",
		"CurrentPage": "employees",
		"Employee":    employee,
	})
}

// Delete removes the record. Files on disk are left in place, matching the
// edit-only cleanup policy for the profile picture.
func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}

	if err := h.Store.Delete(id); err != nil {
		return err
	}
	return c.Redirect("/list")
}

// buildEmployee assembles a candidate record from the form: parse, validate,
// store any uploaded profile picture, and, once the candidate is clean, store
// uploaded documents. existing is the stored record during edit; fields not
// resubmitted (file paths) are carried forward from it. The profile picture
// is written even when other fields are invalid, so the re-rendered form can
// show it inline, but a replaced picture's old file is only removed once the
// candidate is clean and the stored record will stop pointing at it.
func (h *Handler) buildEmployee(c *fiber.Ctx, existing *models.Employee) (*models.EmployeeDetail, validation.Errors, error) {
	employee, errs := parseEmployeeForm(c)

	excludeID := 0
	if existing != nil {
		excludeID = existing.ID
		employee.ID = existing.ID
		employee.CreatedAt = existing.CreatedAt
	}
	detail := &models.EmployeeDetail{Employee: *employee}

	validationErrs, err := validation.Validate(&detail.Employee, excludeID, h.Store)
	if err != nil {
		return nil, nil, err
	}
	for field, messages := range validationErrs {
		for _, message := range messages {
			errs.Add(field, message)
		}
	}

	pictureReplaced := false
	if picture := profilePictureFile(c); picture != nil {
		if err := uploads.SaveProfilePicture(h.ContentRoot, detail, picture, errs); err != nil {
			return nil, nil, err
		}
		pictureReplaced = detail.ProfilePicture != nil
	} else if existing != nil {
		detail.ProfilePicture = existing.ProfilePicture
	}

	if errs.Any() {
		return detail, errs, nil
	}

	if pictureReplaced && existing != nil && existing.ProfilePicture != nil {
		if err := uploads.RemoveStored(h.ContentRoot, *existing.ProfilePicture); err != nil {
			return nil, nil, err
		}
	}

	if files := documentFiles(c); len(files) > 0 {
		if err := uploads.SaveDocuments(h.ContentRoot, &detail.Employee, files); err != nil {
			return nil, nil, err
		}
	} else if existing != nil {
		detail.Document1 = existing.Document1
		detail.Document2 = existing.Document2
		detail.Document3 = existing.Document3
		detail.Document4 = existing.Document4
	}

	return detail, errs, nil
}
