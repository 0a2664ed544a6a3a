package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tippool/internal/models"
	"github.com/mmynk/tippool/internal/storage"
)

const employeeColumns = "id, name, role, color, phone, payment_account, created_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (*models.Employee, error) {
	emp := &models.Employee{}
	var role string
	var phone, account sql.NullString
	if err := row.Scan(&emp.ID, &emp.Name, &role, &emp.Color, &phone, &account, &emp.CreatedAt); err != nil {
		return nil, err
	}
	emp.Role = models.Role(role)
	emp.Phone = phone.String
	emp.PaymentAccount = account.String
	return emp, nil
}

// CreateEmployee inserts a new employee into the database.
func (s *SQLiteStore) CreateEmployee(ctx context.Context, emp *models.Employee) error {
	if emp.ID == "" {
		emp.ID = uuid.New().String()
	}
	if emp.CreatedAt == 0 {
		emp.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO employees ("+employeeColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		emp.ID, emp.Name, string(emp.Role), emp.Color, nullable(emp.Phone), nullable(emp.PaymentAccount), emp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert employee: %w", err)
	}

	return nil
}

// GetEmployee retrieves an employee by ID.
func (s *SQLiteStore) GetEmployee(ctx context.Context, id string) (*models.Employee, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+employeeColumns+" FROM employees WHERE id = ?", id)
	emp, err := scanEmployee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("employee %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// FindEmployeeByName retrieves the earliest-created employee with the given name.
func (s *SQLiteStore) FindEmployeeByName(ctx context.Context, name string) (*models.Employee, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+employeeColumns+" FROM employees WHERE name = ? ORDER BY created_at, id LIMIT 1",
		name,
	)
	emp, err := scanEmployee(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("employee named %q: %w", name, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find employee by name: %w", err)
	}
	return emp, nil
}

// ListEmployees retrieves all employees ordered by name.
func (s *SQLiteStore) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+employeeColumns+" FROM employees ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// UpdateEmployee overwrites the mutable fields of an employee.
func (s *SQLiteStore) UpdateEmployee(ctx context.Context, emp *models.Employee) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE employees SET name = ?, role = ?, color = ?, phone = ?, payment_account = ? WHERE id = ?",
		emp.Name, string(emp.Role), emp.Color, nullable(emp.Phone), nullable(emp.PaymentAccount), emp.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("employee %s: %w", emp.ID, storage.ErrNotFound)
	}
	return nil
}

// DeleteEmployee removes an employee by ID. Staff rows cascade.
func (s *SQLiteStore) DeleteEmployee(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM employees WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("employee %s: %w", id, storage.ErrNotFound)
	}
	return nil
}
