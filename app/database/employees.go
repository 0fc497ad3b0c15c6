package database

import (
	"database/sql"
	"errors"

	"employee-records/app/models"
)

// ErrNotFound is returned when no employee matches the requested identifier.
var ErrNotFound = errors.New("employee not found")

// EmployeeStore is the persistence contract for employee records.
type EmployeeStore interface {
	List() ([]*models.Employee, error)
	Get(id int) (*models.Employee, error)
	Insert(employee *models.Employee) error
	Update(employee *models.Employee) error
	Delete(id int) error
	// EmailTaken reports whether another record already uses the email.
	// excludeID skips the record being edited; pass 0 on create.
	EmailTaken(email string, excludeID int) (bool, error)
}

// SQLEmployeeStore implements EmployeeStore against PostgreSQL.
type SQLEmployeeStore struct {
	DB *sql.DB
}

func NewSQLEmployeeStore(db *sql.DB) *SQLEmployeeStore {
	return &SQLEmployeeStore{DB: db}
}

const employeeColumns = `id, profile_picture, first_name, middle_name, last_name, father_name,
	gender, date_of_birth, date_of_joining, date_of_exit, email, salary,
	country_code, phone_number, description, document1, document2, document3, document4,
	created_at, updated_at`

func scanEmployee(row interface{ Scan(...interface{}) error }) (*models.Employee, error) {
	employee := &models.Employee{}
	var gender string

	err := row.Scan(
		&employee.ID, &employee.ProfilePicture, &employee.FirstName, &employee.MiddleName,
		&employee.LastName, &employee.FatherName, &gender, &employee.DateOfBirth,
		&employee.DateOfJoining, &employee.DateOfExit, &employee.Email, &employee.Salary,
		&employee.CountryCode, &employee.PhoneNumber, &employee.Description,
		&employee.Document1, &employee.Document2, &employee.Document3, &employee.Document4,
		&employee.CreatedAt, &employee.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	employee.Gender = models.Gender(gender)
	return employee, nil
}

func (s *SQLEmployeeStore) List() ([]*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY id`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}

func (s *SQLEmployeeStore) Get(id int) (*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	employee, err := scanEmployee(s.DB.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *SQLEmployeeStore) Insert(employee *models.Employee) error {
	query := `
		INSERT INTO employees (profile_picture, first_name, middle_name, last_name, father_name,
			gender, date_of_birth, date_of_joining, date_of_exit, email, salary,
			country_code, phone_number, description, document1, document2, document3, document4)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id, created_at, updated_at`

	return s.DB.QueryRow(query,
		employee.ProfilePicture, employee.FirstName, employee.MiddleName, employee.LastName,
		employee.FatherName, string(employee.Gender), employee.DateOfBirth, employee.DateOfJoining,
		employee.DateOfExit, employee.Email, employee.Salary,
		employee.CountryCode, employee.PhoneNumber, employee.Description,
		employee.Document1, employee.Document2, employee.Document3, employee.Document4,
	).Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)
}

func (s *SQLEmployeeStore) Update(employee *models.Employee) error {
	query := `
		UPDATE employees SET profile_picture=$1, first_name=$2, middle_name=$3, last_name=$4,
			father_name=$5, gender=$6, date_of_birth=$7, date_of_joining=$8, date_of_exit=$9,
			email=$10, salary=$11, country_code=$12, phone_number=$13, description=$14,
			document1=$15, document2=$16, document3=$17, document4=$18, updated_at=NOW()
		WHERE id=$19`

	result, err := s.DB.Exec(query,
		employee.ProfilePicture, employee.FirstName, employee.MiddleName, employee.LastName,
		employee.FatherName, string(employee.Gender), employee.DateOfBirth, employee.DateOfJoining,
		employee.DateOfExit, employee.Email, employee.Salary,
		employee.CountryCode, employee.PhoneNumber, employee.Description,
		employee.Document1, employee.Document2, employee.Document3, employee.Document4,
		employee.ID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the record if present. A missing id is not an error.
func (s *SQLEmployeeStore) Delete(id int) error {
	_, err := s.DB.Exec(`DELETE FROM employees WHERE id = $1`, id)
	return err
}

func (s *SQLEmployeeStore) EmailTaken(email string, excludeID int) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM employees WHERE email = $1 AND id <> $2)`,
		email, excludeID,
	).Scan(&exists)
	return exists, err
}
