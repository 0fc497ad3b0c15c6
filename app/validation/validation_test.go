package validation

import (
	"strings"
	"testing"
	"time"

	"employee-records/app/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLookup answers the uniqueness check from a fixed email→id map.
type fakeLookup struct {
	emails map[string]int
}

func (f *fakeLookup) EmailTaken(email string, excludeID int) (bool, error) {
	id, ok := f.emails[email]
	return ok && id != excludeID, nil
}

func noEmails() *fakeLookup {
	return &fakeLookup{emails: map[string]int{}}
}

var today = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

func validEmployee() *models.Employee {
	return &models.Employee{
		FirstName:     "John",
		LastName:      "Doe",
		FatherName:    "Richard Doe",
		Gender:        models.Male,
		DateOfBirth:   time.Date(1990, 1, 15, 0, 0, 0, 0, time.UTC),
		DateOfJoining: time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC),
		Email:         "john.doe@example.com",
		Salary:        decimal.NewFromInt(50000),
		CountryCode:   "+1",
		PhoneNumber:   "5551234",
	}
}

func TestValidEmployeePasses(t *testing.T) {
	errs, err := ValidateAt(validEmployee(), today, 0, noEmails())
	require.NoError(t, err)
	assert.False(t, errs.Any(), "expected no errors, got %v", errs)
}

func TestAgeBoundary(t *testing.T) {
	testCases := []struct {
		name     string
		dob      time.Time
		rejected bool
	}{
		{name: "turns 18 today is accepted", dob: today.AddDate(-18, 0, 0), rejected: false},
		{name: "one day short of 18 is rejected", dob: today.AddDate(-18, 0, 0).AddDate(0, 0, 1), rejected: true},
		{name: "well over 18 is accepted", dob: today.AddDate(-30, 0, 0), rejected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			employee := validEmployee()
			employee.DateOfBirth = tc.dob
			errs, err := ValidateAt(employee, today, 0, noEmails())
			require.NoError(t, err)
			if tc.rejected {
				assert.Contains(t, errs.First("DOB"), "at least 18")
			} else {
				assert.False(t, errs.Has("DOB"), "unexpected DOB errors: %v", errs["DOB"])
			}
		})
	}
}

func TestFutureDOBRejected(t *testing.T) {
	employee := validEmployee()
	employee.DateOfBirth = today.AddDate(0, 0, 1)

	errs, err := ValidateAt(employee, today, 0, noEmails())
	require.NoError(t, err)
	assert.Contains(t, errs["DOB"], "Date of Birth cannot be in the future.")
	// Both DOB rules fire independently.
	assert.Contains(t, errs["DOB"], "Employee must be at least 18 years old.")
}

func TestJoiningBeforeBirthRejected(t *testing.T) {
	employee := validEmployee()
	employee.DateOfJoining = employee.DateOfBirth.AddDate(0, 0, -1)

	errs, err := ValidateAt(employee, today, 0, noEmails())
	require.NoError(t, err)
	assert.Equal(t, "Date of Joining cannot be before Date of Birth.", errs.First("DOJ"))
}

func TestExitMustBeAfterJoining(t *testing.T) {
	employee := validEmployee()

	sameDay := employee.DateOfJoining
	employee.DateOfExit = &sameDay
	errs, err := ValidateAt(employee, today, 0, noEmails())
	require.NoError(t, err)
	assert.Equal(t, "Date of Exit must be after Date of Joining.", errs.First("DOE"))

	dayAfter := employee.DateOfJoining.AddDate(0, 0, 1)
	employee.DateOfExit = &dayAfter
	errs, err = ValidateAt(employee, today, 0, noEmails())
	require.NoError(t, err)
	assert.False(t, errs.Has("DOE"))
}

func TestDuplicateEmailRejectedOnCreate(t *testing.T) {
	lookup := &fakeLookup{emails: map[string]int{"john.doe@example.com": 7}}

	errs, err := ValidateAt(validEmployee(), today, 0, lookup)
	require.NoError(t, err)
	assert.Equal(t, "Email already exists", errs.First("Email"))
}

func TestOwnEmailAllowedOnEdit(t *testing.T) {
	lookup := &fakeLookup{emails: map[string]int{"john.doe@example.com": 7}}
	employee := validEmployee()
	employee.ID = 7

	errs, err := ValidateAt(employee, today, 7, lookup)
	require.NoError(t, err)
	assert.False(t, errs.Has("Email"), "own email must not count as a duplicate")
}

func TestRequiredFieldsAccumulate(t *testing.T) {
	errs, err := ValidateAt(&models.Employee{}, today, 0, noEmails())
	require.NoError(t, err)

	for _, field := range []string{"FirstName", "LastName", "FatherName", "Gender", "DOB", "DOJ", "Email", "CountryCode", "PhoneNumber"} {
		assert.True(t, errs.Has(field), "expected an error for %s", field)
	}
}

func TestFieldShapes(t *testing.T) {
	longText := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = 'a'
		}
		return string(b)
	}

	testCases := []struct {
		name    string
		mutate  func(e *models.Employee)
		field   string
		message string
	}{
		{
			name:    "first name too long",
			mutate:  func(e *models.Employee) { e.FirstName = longText(51) },
			field:   "FirstName",
			message: "First name cannot exceed 50 characters",
		},
		{
			name:    "father name too long",
			mutate:  func(e *models.Employee) { e.FatherName = longText(101) },
			field:   "FatherName",
			message: "Father's name cannot exceed 100 characters",
		},
		{
			name:    "unknown gender",
			mutate:  func(e *models.Employee) { e.Gender = "Other" },
			field:   "Gender",
			message: "Gender must be Male or Female",
		},
		{
			name:    "malformed email",
			mutate:  func(e *models.Employee) { e.Email = "not-an-email" },
			field:   "Email",
			message: "Invalid email address",
		},
		{
			name:    "negative salary",
			mutate:  func(e *models.Employee) { e.Salary = decimal.NewFromInt(-1) },
			field:   "Salary",
			message: "Salary cannot be negative",
		},
		{
			name:    "phone with letters",
			mutate:  func(e *models.Employee) { e.PhoneNumber = "555-1234" },
			field:   "PhoneNumber",
			message: "Phone number must contain only digits",
		},
		{
			name: "description with digits",
			mutate: func(e *models.Employee) {
				d := "Joined in 2020"
				e.Description = &d
			},
			field:   "Description",
			message: "Description can contain only letters, spaces, commas, and periods",
		},
		{
			name: "description too long",
			mutate: func(e *models.Employee) {
				d := longText(251)
				e.Description = &d
			},
			field:   "Description",
			message: "Description cannot exceed 250 characters",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			employee := validEmployee()
			tc.mutate(employee)
			errs, err := ValidateAt(employee, today, 0, noEmails())
			require.NoError(t, err)
			assert.Contains(t, errs[tc.field], tc.message)
		})
	}
}

func TestLengthBoundsCountCharactersNotBytes(t *testing.T) {
	employee := validEmployee()
	// 50 characters but 100 bytes in UTF-8.
	employee.FirstName = strings.Repeat("é", 50)

	errs, err := ValidateAt(employee, today, 0, noEmails())
	require.NoError(t, err)
	assert.False(t, errs.Has("FirstName"), "50 multi-byte characters must fit the 50-character bound: %v", errs["FirstName"])

	employee.FirstName = strings.Repeat("é", 51)
	errs, err = ValidateAt(employee, today, 0, noEmails())
	require.NoError(t, err)
	assert.Contains(t, errs["FirstName"], "First name cannot exceed 50 characters")
}

func TestDescriptionWithAllowedPunctuation(t *testing.T) {
	employee := validEmployee()
	d := "Reliable, punctual. Works well with others."
	employee.Description = &d

	errs, err := ValidateAt(employee, today, 0, noEmails())
	require.NoError(t, err)
	assert.False(t, errs.Has("Description"))
}
