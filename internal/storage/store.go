// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/tippool/internal/models"
)

var (
	// ErrNotFound is wrapped by every lookup that finds no record.
	ErrNotFound = errors.New("not found")

	// ErrConflict is wrapped when a write collides with a unique key (a shift date).
	ErrConflict = errors.New("conflict")
)

// AllWeeks asks ListShifts for every shift regardless of week.
const AllWeeks = -1

// Store defines the interface for employee and shift storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the service layer.
type Store interface {
	// CreateEmployee persists a new employee. ID and CreatedAt are populated by the store.
	CreateEmployee(ctx context.Context, emp *models.Employee) error

	// GetEmployee retrieves an employee by ID.
	GetEmployee(ctx context.Context, id string) (*models.Employee, error)

	// FindEmployeeByName returns the first employee with exactly this name.
	FindEmployeeByName(ctx context.Context, name string) (*models.Employee, error)

	// ListEmployees returns every employee ordered by name.
	ListEmployees(ctx context.Context) ([]*models.Employee, error)

	// UpdateEmployee overwrites an existing employee.
	UpdateEmployee(ctx context.Context, emp *models.Employee) error

	// DeleteEmployee removes an employee and its places on shifts.
	DeleteEmployee(ctx context.Context, id string) error

	// SaveShift upserts a shift by date: an existing shift for the date has its
	// tips and week updated and its staff replaced, otherwise a new shift is
	// inserted. shift.ID and CreatedAt are set to the stored values.
	SaveShift(ctx context.Context, shift *models.Shift) error

	// GetShift retrieves a shift with its staff by ID.
	GetShift(ctx context.Context, id string) (*models.Shift, error)

	// GetShiftByDate retrieves the shift recorded for a date.
	GetShiftByDate(ctx context.Context, date string) (*models.Shift, error)

	// ListShifts returns the shifts of a week, or all shifts when week is
	// negative (AllWeeks), newest date first.
	ListShifts(ctx context.Context, week int) ([]*models.Shift, error)

	// UpdateShift overwrites an existing shift by ID, replacing its staff.
	UpdateShift(ctx context.Context, shift *models.Shift) error

	// DeleteShift removes a shift and its staff.
	DeleteShift(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
