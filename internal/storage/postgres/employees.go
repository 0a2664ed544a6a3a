package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mmynk/tippool/internal/models"
	"github.com/mmynk/tippool/internal/storage"
)

const employeeColumns = "id, name, role, color, phone, payment_account, created_at"

func scanEmployee(row pgx.Row) (*models.Employee, error) {
	emp := &models.Employee{}
	var role string
	var phone, account *string
	if err := row.Scan(&emp.ID, &emp.Name, &role, &emp.Color, &phone, &account, &emp.CreatedAt); err != nil {
		return nil, err
	}
	emp.Role = models.Role(role)
	emp.Phone = deref(phone)
	emp.PaymentAccount = deref(account)
	return emp, nil
}

// CreateEmployee inserts an employee, assigning an ID and creation time if unset.
func (s *PostgresStore) CreateEmployee(ctx context.Context, emp *models.Employee) error {
	if emp.ID == "" {
		emp.ID = uuid.New().String()
	}
	if emp.CreatedAt == 0 {
		emp.CreatedAt = time.Now().Unix()
	}

	_, err := s.pool.Exec(ctx,
		"INSERT INTO employees ("+employeeColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7)",
		emp.ID, emp.Name, string(emp.Role), emp.Color, nullable(emp.Phone), nullable(emp.PaymentAccount), emp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert employee: %w", err)
	}
	return nil
}

// GetEmployee retrieves an employee by ID.
func (s *PostgresStore) GetEmployee(ctx context.Context, id string) (*models.Employee, error) {
	emp, err := scanEmployee(s.pool.QueryRow(ctx, "SELECT "+employeeColumns+" FROM employees WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("employee %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// FindEmployeeByName returns the oldest employee with exactly this name.
func (s *PostgresStore) FindEmployeeByName(ctx context.Context, name string) (*models.Employee, error) {
	row := s.pool.QueryRow(ctx,
		"SELECT "+employeeColumns+" FROM employees WHERE name = $1 ORDER BY created_at, id LIMIT 1",
		name,
	)
	emp, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("employee named %q: %w", name, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find employee by name: %w", err)
	}
	return emp, nil
}

// ListEmployees returns all employees ordered by name.
func (s *PostgresStore) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	rows, err := s.pool.Query(ctx, "SELECT "+employeeColumns+" FROM employees ORDER BY name, id")
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

// UpdateEmployee overwrites an employee's editable fields.
func (s *PostgresStore) UpdateEmployee(ctx context.Context, emp *models.Employee) error {
	tag, err := s.pool.Exec(ctx,
		"UPDATE employees SET name = $1, role = $2, color = $3, phone = $4, payment_account = $5 WHERE id = $6",
		emp.Name, string(emp.Role), emp.Color, nullable(emp.Phone), nullable(emp.PaymentAccount), emp.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("employee %s: %w", emp.ID, storage.ErrNotFound)
	}
	return nil
}

// DeleteEmployee removes an employee and their shift assignments.
func (s *PostgresStore) DeleteEmployee(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("employee %s: %w", id, storage.ErrNotFound)
	}
	return nil
}
