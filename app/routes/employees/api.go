package employees

import (
	"errors"
	"strconv"

	"employee-records/app/database"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ListAPI(c *fiber.Ctx) error {
	employeeList, err := h.Store.List()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch employees"})
	}

	return c.JSON(fiber.Map{
		"employees": employeeList,
		"count":     len(employeeList),
	})
}

func (h *Handler) GetAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee id"})
	}

	employee, err := h.Store.Get(id)
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Employee not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch employee"})
	}

	return c.JSON(fiber.Map{"employee": employee})
}

func (h *Handler) CreateAPI(c *fiber.Ctx) error {
	detail, errs, err := h.buildEmployee(c, nil)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create employee"})
	}
	if errs.Any() {
		return c.Status(422).JSON(fiber.Map{"errors": errs})
	}

	if err := h.Store.Insert(&detail.Employee); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create employee"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":  "Employee created successfully",
		"employee": detail.Employee,
	})
}

func (h *Handler) UpdateAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee id"})
	}

	// A mismatched record id in the payload is rejected like the page flow.
	if v := c.FormValue("Id"); v != "" {
		formID, _ := strconv.Atoi(v)
		if formID != id {
			return c.Status(404).JSON(fiber.Map{"error": "Employee not found"})
		}
	}

	existing, err := h.Store.Get(id)
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Employee not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch employee"})
	}

	detail, errs, err := h.buildEmployee(c, existing)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update employee"})
	}
	if errs.Any() {
		return c.Status(422).JSON(fiber.Map{"errors": errs})
	}

	if err := h.Store.Update(&detail.Employee); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Employee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update employee"})
	}

	return c.JSON(fiber.Map{
		"message":  "Employee updated successfully",
		"employee": detail.Employee,
	})
}

// DeleteAPI removes the record; a missing id is a silent no-op.
func (h *Handler) DeleteAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid employee id"})
	}

	if err := h.Store.Delete(id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete employee"})
	}

	return c.JSON(fiber.Map{"message": "Employee deleted successfully"})
}
