package employees

import (
	"mime/multipart"
	"strings"
	"time"

	"employee-records/app/models"
	"employee-records/app/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// parseEmployeeForm builds an employee from the submitted multipart form.
// Malformed dates and salary values are reported as field errors; required
// and shape checks are left to the validation pass.
func parseEmployeeForm(c *fiber.Ctx) (*models.Employee, validation.Errors) {
	errs := validation.Errors{}

	employee := &models.Employee{
		FirstName:   strings.TrimSpace(c.FormValue("FirstName")),
		LastName:    strings.TrimSpace(c.FormValue("LastName")),
		FatherName:  strings.TrimSpace(c.FormValue("FatherName")),
		Gender:      models.Gender(c.FormValue("Gender")),
		Email:       strings.TrimSpace(c.FormValue("Email")),
		CountryCode: strings.TrimSpace(c.FormValue("CountryCode")),
		PhoneNumber: strings.TrimSpace(c.FormValue("PhoneNumber")),
	}

	if v := strings.TrimSpace(c.FormValue("MiddleName")); v != "" {
		employee.MiddleName = &v
	}
	if v := strings.TrimSpace(c.FormValue("Description")); v != "" {
		employee.Description = &v
	}

	if v := c.FormValue("DOB"); v != "" {
		if parsed, err := time.Parse(dateLayout, v); err == nil {
			employee.DateOfBirth = parsed
		} else {
			errs.Add("DOB", "Date of Birth must be a valid date")
		}
	}
	if v := c.FormValue("DOJ"); v != "" {
		if parsed, err := time.Parse(dateLayout, v); err == nil {
			employee.DateOfJoining = parsed
		} else {
			errs.Add("DOJ", "Date of Joining must be a valid date")
		}
	}
	if v := c.FormValue("DOE"); v != "" {
		if parsed, err := time.Parse(dateLayout, v); err == nil {
			employee.DateOfExit = &parsed
		} else {
			errs.Add("DOE", "Date of Exit must be a valid date")
		}
	}

	// Required here rather than in the validation pass: once parsed, a blank
	// salary and an explicit zero are indistinguishable.
	if v := c.FormValue("Salary"); v != "" {
		if salary, err := decimal.NewFromString(v); err == nil {
			employee.Salary = salary
		} else {
			errs.Add("Salary", "Salary must be a number")
		}
	} else {
		errs.Add("Salary", "Salary is required")
	}

	return employee, errs
}

// profilePictureFile returns the uploaded picture header, or nil when the
// form carries no picture.
func profilePictureFile(c *fiber.Ctx) *multipart.FileHeader {
	file, err := c.FormFile("ProfilePicture")
	if err != nil || file == nil || file.Size == 0 {
		return nil
	}
	return file
}

// documentFiles returns the uploaded document headers, if any.
func documentFiles(c *fiber.Ctx) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["Documents"]
}
