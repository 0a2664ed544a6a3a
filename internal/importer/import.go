package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/mmynk/tippool/internal/calculator"
	"github.com/mmynk/tippool/internal/models"
	"github.com/mmynk/tippool/internal/storage"
)

// Result reports what an import wrote.
type Result struct {
	Shifts  []*models.Shift
	Created []*models.Employee
}

// Import stores a parsed schedule. Names missing from roles are ignored; the
// rest are matched to employees by name, creating any that do not exist yet.
// Bartenders are scheduled with their hours and expos by presence. A date that
// already has a shift keeps its tips and gets the imported staff; other dates
// are created with no tips. Shifts go under week when it is non-nil, otherwise
// under the week of their date.
func Import(ctx context.Context, store storage.Store, sched *Schedule, roles map[string]models.Role, week *int) (*Result, error) {
	employees, err := store.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	count := len(employees)

	result := &Result{}
	byDate := make(map[string]*models.Shift)

	for _, name := range sched.Names {
		role, ok := roles[name]
		if !ok {
			slog.Debug("Skipping unmapped schedule name", "name", name)
			continue
		}
		if !role.Valid() {
			return nil, fmt.Errorf("invalid role %q for %s", role, name)
		}

		emp, err := store.FindEmployeeByName(ctx, name)
		if errors.Is(err, storage.ErrNotFound) {
			emp = &models.Employee{Name: name, Role: role, Color: models.PaletteColor(count)}
			if err := store.CreateEmployee(ctx, emp); err != nil {
				return nil, fmt.Errorf("failed to create employee %s: %w", name, err)
			}
			count++
			result.Created = append(result.Created, emp)
			slog.Info("Created employee from schedule", "employee_id", emp.ID, "name", name, "role", role)
		} else if err != nil {
			return nil, fmt.Errorf("failed to find employee %s: %w", name, err)
		}

		for _, scheduled := range sched.Shifts[name] {
			shift, ok := byDate[scheduled.Date]
			if !ok {
				shift = &models.Shift{Date: scheduled.Date, Hours: make(map[string]float64)}
				byDate[scheduled.Date] = shift
			}
			switch role {
			case models.RoleBartender:
				if !contains(shift.BartenderIDs, emp.ID) {
					shift.BartenderIDs = append(shift.BartenderIDs, emp.ID)
				}
				shift.Hours[emp.ID] = scheduled.Hours
			case models.RoleExpo:
				if !contains(shift.ExpoIDs, emp.ID) {
					shift.ExpoIDs = append(shift.ExpoIDs, emp.ID)
				}
			}
		}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		shift := byDate[date]

		existing, err := store.GetShiftByDate(ctx, date)
		switch {
		case err == nil:
			shift.CashTips = existing.CashTips
			shift.CreditTips = existing.CreditTips
		case !errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("failed to look up shift on %s: %w", date, err)
		}

		if week != nil {
			shift.Week = *week
		} else if shift.Week, err = calculator.WeekNumberForDate(date); err != nil {
			return nil, err
		}

		if err := store.SaveShift(ctx, shift); err != nil {
			return nil, fmt.Errorf("failed to save shift on %s: %w", date, err)
		}
		result.Shifts = append(result.Shifts, shift)
	}

	slog.Info("Schedule imported",
		"shifts", len(result.Shifts),
		"created_employees", len(result.Created),
	)
	return result, nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
