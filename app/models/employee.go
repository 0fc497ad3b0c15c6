package models

import (
	"html/template"
	"time"

	"github.com/shopspring/decimal"
)

// Gender defines the accepted gender values for an employee.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// Employee is the persisted employee record.
type Employee struct {
	ID             int             `json:"id"`
	ProfilePicture *string         `json:"profile_picture,omitempty"`
	FirstName      string          `json:"first_name"`
	MiddleName     *string         `json:"middle_name,omitempty"`
	LastName       string          `json:"last_name"`
	FatherName     string          `json:"father_name"`
	Gender         Gender          `json:"gender"`
	DateOfBirth    time.Time       `json:"date_of_birth"`
	DateOfJoining  time.Time       `json:"date_of_joining"`
	DateOfExit     *time.Time      `json:"date_of_exit,omitempty"`
	Email          string          `json:"email"`
	Salary         decimal.Decimal `json:"salary"`
	CountryCode    string          `json:"country_code"`
	PhoneNumber    string          `json:"phone_number"`
	Description    *string         `json:"description,omitempty"`
	Document1      *string         `json:"document1,omitempty"`
	Document2      *string         `json:"document2,omitempty"`
	Document3      *string         `json:"document3,omitempty"`
	Document4      *string         `json:"document4,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// EmployeeDetail extends the stored record with display-only fields that are
// never persisted, such as the inline copy of a freshly uploaded picture.
type EmployeeDetail struct {
	Employee
	InlineProfilePicture string `json:"-"`
}

// InlinePictureURL marks the data URI as safe for the img src attribute;
// html/template would otherwise reject the data: scheme.
func (e *EmployeeDetail) InlinePictureURL() template.URL {
	return template.URL(e.InlineProfilePicture)
}

// FullPhoneNumber joins the country code and phone number for display.
func (e *Employee) FullPhoneNumber() string {
	if e.CountryCode == "" {
		return e.PhoneNumber
	}
	return e.CountryCode + " " + e.PhoneNumber
}

// FullName joins the name parts, skipping an absent middle name.
func (e *Employee) FullName() string {
	if e.MiddleName != nil && *e.MiddleName != "" {
		return e.FirstName + " " + *e.MiddleName + " " + e.LastName
	}
	return e.FirstName + " " + e.LastName
}

// DateOfBirthValue formats the date of birth for form inputs.
func (e *Employee) DateOfBirthValue() string {
	if e.DateOfBirth.IsZero() {
		return ""
	}
	return e.DateOfBirth.Format("2006-01-02")
}

// DateOfJoiningValue formats the date of joining for form inputs.
func (e *Employee) DateOfJoiningValue() string {
	if e.DateOfJoining.IsZero() {
		return ""
	}
	return e.DateOfJoining.Format("2006-01-02")
}

// DateOfExitValue formats the date of exit for form inputs, "" when unset.
func (e *Employee) DateOfExitValue() string {
	if e.DateOfExit == nil {
		return ""
	}
	return e.DateOfExit.Format("2006-01-02")
}

// Documents returns the four document slots in order. Unset slots are nil.
func (e *Employee) Documents() []*string {
	return []*string{e.Document1, e.Document2, e.Document3, e.Document4}
}

// SetDocuments assigns paths positionally to the four document slots. Paths
// beyond the fourth are ignored; slots beyond the supplied count stay unset.
func (e *Employee) SetDocuments(paths []string) {
	slots := []**string{&e.Document1, &e.Document2, &e.Document3, &e.Document4}
	for i := range slots {
		if i < len(paths) {
			p := paths[i]
			*slots[i] = &p
		} else {
			*slots[i] = nil
		}
	}
}
