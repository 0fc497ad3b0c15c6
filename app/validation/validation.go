package validation

import (
	"net/mail"
	"regexp"
	"time"
	"unicode/utf8"

	"employee-records/app/models"

	"github.com/shopspring/decimal"
)

// Errors maps a field name to its accumulated validation messages.
// An empty map means the candidate is valid.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

func (e Errors) Any() bool {
	return len(e) > 0
}

// First returns the first message for a field, or "" if the field is clean.
func (e Errors) First(field string) string {
	if len(e[field]) == 0 {
		return ""
	}
	return e[field][0]
}

// EmailLookup is the read-only store access the uniqueness check needs.
type EmailLookup interface {
	EmailTaken(email string, excludeID int) (bool, error)
}

var (
	phonePattern       = regexp.MustCompile(`^[0-9]+$`)
	descriptionPattern = regexp.MustCompile(`^[a-zA-Z\s,\.]+$`)
)

// Validate checks the candidate against today's date. excludeID identifies
// the record being edited so its own email does not count as a duplicate;
// pass 0 on create. The returned error is an infrastructure failure from the
// store lookup, not a validation outcome.
func Validate(employee *models.Employee, excludeID int, lookup EmailLookup) (Errors, error) {
	today := time.Now().Truncate(24 * time.Hour)
	return ValidateAt(employee, today, excludeID, lookup)
}

// ValidateAt is Validate with an explicit "today", which pins the date
// boundaries in tests.
func ValidateAt(employee *models.Employee, today time.Time, excludeID int, lookup EmailLookup) (Errors, error) {
	errs := Errors{}

	validateFields(employee, errs)
	validateDates(employee, today, errs)

	if employee.Email != "" && !errs.Has("Email") {
		taken, err := lookup.EmailTaken(employee.Email, excludeID)
		if err != nil {
			return nil, err
		}
		if taken {
			errs.Add("Email", "Email already exists")
		}
	}

	return errs, nil
}

func validateFields(employee *models.Employee, errs Errors) {
	if employee.FirstName == "" {
		errs.Add("FirstName", "First name is required")
	} else if utf8.RuneCountInString(employee.FirstName) > 50 {
		errs.Add("FirstName", "First name cannot exceed 50 characters")
	}

	if employee.MiddleName != nil && utf8.RuneCountInString(*employee.MiddleName) > 50 {
		errs.Add("MiddleName", "Middle name cannot exceed 50 characters")
	}

	if employee.LastName == "" {
		errs.Add("LastName", "Last name is required")
	} else if utf8.RuneCountInString(employee.LastName) > 50 {
		errs.Add("LastName", "Last name cannot exceed 50 characters")
	}

	if employee.FatherName == "" {
		errs.Add("FatherName", "Father's name is required")
	} else if utf8.RuneCountInString(employee.FatherName) > 100 {
		errs.Add("FatherName", "Father's name cannot exceed 100 characters")
	}

	switch employee.Gender {
	case models.Male, models.Female:
	case "":
		errs.Add("Gender", "Gender is required")
	default:
		errs.Add("Gender", "Gender must be Male or Female")
	}

	if employee.Email == "" {
		errs.Add("Email", "Email is required")
	} else if _, err := mail.ParseAddress(employee.Email); err != nil {
		errs.Add("Email", "Invalid email address")
	}

	if employee.Salary.LessThan(decimal.Zero) {
		errs.Add("Salary", "Salary cannot be negative")
	}

	if employee.CountryCode == "" {
		errs.Add("CountryCode", "Country code is required")
	}

	if employee.PhoneNumber == "" {
		errs.Add("PhoneNumber", "Phone number is required")
	} else if !phonePattern.MatchString(employee.PhoneNumber) {
		errs.Add("PhoneNumber", "Phone number must contain only digits")
	}

	if employee.Description != nil && *employee.Description != "" {
		if utf8.RuneCountInString(*employee.Description) > 250 {
			errs.Add("Description", "Description cannot exceed 250 characters")
		}
		if !descriptionPattern.MatchString(*employee.Description) {
			errs.Add("Description", "Description can contain only letters, spaces, commas, and periods")
		}
	}
}

func validateDates(employee *models.Employee, today time.Time, errs Errors) {
	if employee.DateOfBirth.IsZero() {
		errs.Add("DOB", "Date of Birth is required")
	}
	if employee.DateOfJoining.IsZero() {
		errs.Add("DOJ", "Date of Joining is required")
	}
	if errs.Has("DOB") || errs.Has("DOJ") {
		return
	}

	if employee.DateOfBirth.After(today) {
		errs.Add("DOB", "Date of Birth cannot be in the future.")
	}

	// Strict comparison: a DOB of exactly today minus 18 years passes, so an
	// employee turning 18 today is accepted.
	minDOB := today.AddDate(-18, 0, 0)
	if employee.DateOfBirth.After(minDOB) {
		errs.Add("DOB", "Employee must be at least 18 years old.")
	}

	if employee.DateOfJoining.Before(employee.DateOfBirth) {
		errs.Add("DOJ", "Date of Joining cannot be before Date of Birth.")
	}

	if employee.DateOfExit != nil && !employee.DateOfExit.After(employee.DateOfJoining) {
		errs.Add("DOE", "Date of Exit must be after Date of Joining.")
	}
}
