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

const shiftColumns = "id, date, week, cash_tips, credit_tips, created_at"

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func scanShift(row rowScanner) (*models.Shift, error) {
	shift := &models.Shift{Hours: make(map[string]float64)}
	err := row.Scan(&shift.ID, &shift.Date, &shift.Week, &shift.CashTips, &shift.CreditTips, &shift.CreatedAt)
	if err != nil {
		return nil, err
	}
	return shift, nil
}

// SaveShift upserts a shift keyed by its date.
func (s *SQLiteStore) SaveShift(ctx context.Context, shift *models.Shift) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var existingID string
	var createdAt int64
	err = tx.QueryRowContext(ctx, "SELECT id, created_at FROM shifts WHERE date = ?", shift.Date).
		Scan(&existingID, &createdAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if shift.ID == "" {
			shift.ID = uuid.New().String()
		}
		if shift.CreatedAt == 0 {
			shift.CreatedAt = time.Now().Unix()
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO shifts ("+shiftColumns+") VALUES (?, ?, ?, ?, ?, ?)",
			shift.ID, shift.Date, shift.Week, shift.CashTips, shift.CreditTips, shift.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert shift: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to look up shift by date: %w", err)
	default:
		shift.ID = existingID
		shift.CreatedAt = createdAt
		_, err = tx.ExecContext(ctx,
			"UPDATE shifts SET week = ?, cash_tips = ?, credit_tips = ? WHERE id = ?",
			shift.Week, shift.CashTips, shift.CreditTips, shift.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update shift: %w", err)
		}
	}

	if err := replaceStaff(ctx, tx, shift); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateShift overwrites a shift by ID, including its date.
func (s *SQLiteStore) UpdateShift(ctx context.Context, shift *models.Shift) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var createdAt int64
	err = tx.QueryRowContext(ctx, "SELECT created_at FROM shifts WHERE id = ?", shift.ID).Scan(&createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("shift %s: %w", shift.ID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check shift existence: %w", err)
	}

	var other string
	err = tx.QueryRowContext(ctx, "SELECT id FROM shifts WHERE date = ? AND id != ?", shift.Date, shift.ID).Scan(&other)
	if err == nil {
		return fmt.Errorf("shift for %s already exists: %w", shift.Date, storage.ErrConflict)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check shift date: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE shifts SET date = ?, week = ?, cash_tips = ?, credit_tips = ? WHERE id = ?",
		shift.Date, shift.Week, shift.CashTips, shift.CreditTips, shift.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	shift.CreatedAt = createdAt

	if err := replaceStaff(ctx, tx, shift); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// replaceStaff rewrites the bartender and expo rows of a shift.
// Hours are only stored for IDs in the bartender set.
func replaceStaff(ctx context.Context, tx execer, shift *models.Shift) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM shift_bartenders WHERE shift_id = ?", shift.ID); err != nil {
		return fmt.Errorf("failed to clear bartenders: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM shift_expos WHERE shift_id = ?", shift.ID); err != nil {
		return fmt.Errorf("failed to clear expos: %w", err)
	}

	seen := make(map[string]bool)
	for _, id := range shift.BartenderIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		_, err := tx.ExecContext(ctx,
			"INSERT INTO shift_bartenders (shift_id, employee_id, hours) VALUES (?, ?, ?)",
			shift.ID, id, shift.HoursFor(id),
		)
		if err != nil {
			return fmt.Errorf("failed to insert bartender %s: %w", id, err)
		}
	}

	seen = make(map[string]bool)
	for _, id := range shift.ExpoIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		_, err := tx.ExecContext(ctx,
			"INSERT INTO shift_expos (shift_id, employee_id) VALUES (?, ?)",
			shift.ID, id,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expo %s: %w", id, err)
		}
	}

	return nil
}

// GetShift retrieves a shift by ID, including its staff.
func (s *SQLiteStore) GetShift(ctx context.Context, id string) (*models.Shift, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+shiftColumns+" FROM shifts WHERE id = ?", id)
	return s.getShift(ctx, row, "shift "+id)
}

// GetShiftByDate retrieves the shift for a date, including its staff.
func (s *SQLiteStore) GetShiftByDate(ctx context.Context, date string) (*models.Shift, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+shiftColumns+" FROM shifts WHERE date = ?", date)
	return s.getShift(ctx, row, "shift on "+date)
}

func (s *SQLiteStore) getShift(ctx context.Context, row *sql.Row, what string) (*models.Shift, error) {
	shift, err := scanShift(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", what, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	byID := map[string]*models.Shift{shift.ID: shift}
	if err := s.loadStaff(ctx, byID, "s.id = ?", shift.ID); err != nil {
		return nil, err
	}
	return shift, nil
}

// ListShifts retrieves the shifts of a week (all shifts for storage.AllWeeks), newest first.
func (s *SQLiteStore) ListShifts(ctx context.Context, week int) ([]*models.Shift, error) {
	where, args := "1 = 1", []any{}
	if week >= 0 {
		where, args = "s.week = ?", []any{week}
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT s.id, s.date, s.week, s.cash_tips, s.credit_tips, s.created_at FROM shifts s WHERE "+where+" ORDER BY s.date DESC",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []*models.Shift
	byID := make(map[string]*models.Shift)
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, shift)
		byID[shift.ID] = shift
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}
	rows.Close()

	if len(shifts) == 0 {
		return shifts, nil
	}
	if err := s.loadStaff(ctx, byID, where, args...); err != nil {
		return nil, err
	}
	return shifts, nil
}

// loadStaff fills bartenders, hours and expos for the shifts matching where.
func (s *SQLiteStore) loadStaff(ctx context.Context, byID map[string]*models.Shift, where string, args ...any) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT sb.shift_id, sb.employee_id, sb.hours
		 FROM shift_bartenders sb JOIN shifts s ON s.id = sb.shift_id
		 WHERE `+where+` ORDER BY sb.shift_id, sb.employee_id`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to get bartenders: %w", err)
	}
	for rows.Next() {
		var shiftID, employeeID string
		var hours float64
		if err := rows.Scan(&shiftID, &employeeID, &hours); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan bartender: %w", err)
		}
		if shift, ok := byID[shiftID]; ok {
			shift.BartenderIDs = append(shift.BartenderIDs, employeeID)
			shift.Hours[employeeID] = hours
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate bartenders: %w", err)
	}

	rows, err = s.db.QueryContext(ctx,
		`SELECT sx.shift_id, sx.employee_id
		 FROM shift_expos sx JOIN shifts s ON s.id = sx.shift_id
		 WHERE `+where+` ORDER BY sx.shift_id, sx.employee_id`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to get expos: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var shiftID, employeeID string
		if err := rows.Scan(&shiftID, &employeeID); err != nil {
			return fmt.Errorf("failed to scan expo: %w", err)
		}
		if shift, ok := byID[shiftID]; ok {
			shift.ExpoIDs = append(shift.ExpoIDs, employeeID)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate expos: %w", err)
	}
	return nil
}

// DeleteShift removes a shift by ID. Staff rows cascade.
func (s *SQLiteStore) DeleteShift(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM shifts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("shift %s: %w", id, storage.ErrNotFound)
	}
	return nil
}
