package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mmynk/tippool/internal/models"
	"github.com/mmynk/tippool/internal/storage"
)

const shiftColumns = "id, date, week, cash_tips, credit_tips, created_at"

func scanShift(row pgx.Row) (*models.Shift, error) {
	shift := &models.Shift{Hours: make(map[string]float64)}
	if err := row.Scan(&shift.ID, &shift.Date, &shift.Week, &shift.CashTips, &shift.CreditTips, &shift.CreatedAt); err != nil {
		return nil, err
	}
	return shift, nil
}

// SaveShift upserts a shift keyed by its date and rewrites its staff.
// An existing shift for the date keeps its ID and creation time.
func (s *PostgresStore) SaveShift(ctx context.Context, shift *models.Shift) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id := shift.ID
	if id == "" {
		id = uuid.New().String()
	}
	createdAt := shift.CreatedAt
	if createdAt == 0 {
		createdAt = time.Now().Unix()
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO shifts (`+shiftColumns+`) VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (date) DO UPDATE
		 SET week = EXCLUDED.week, cash_tips = EXCLUDED.cash_tips, credit_tips = EXCLUDED.credit_tips
		 RETURNING id, created_at`,
		id, shift.Date, shift.Week, shift.CashTips, shift.CreditTips, createdAt,
	).Scan(&shift.ID, &shift.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert shift: %w", err)
	}

	if err := replaceStaff(ctx, tx, shift); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateShift overwrites the shift with the same ID, including its date.
func (s *PostgresStore) UpdateShift(ctx context.Context, shift *models.Shift) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var createdAt int64
	err = tx.QueryRow(ctx, "SELECT created_at FROM shifts WHERE id = $1 FOR UPDATE", shift.ID).Scan(&createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("shift %s: %w", shift.ID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check shift existence: %w", err)
	}

	var other string
	err = tx.QueryRow(ctx, "SELECT id FROM shifts WHERE date = $1 AND id <> $2", shift.Date, shift.ID).Scan(&other)
	if err == nil {
		return fmt.Errorf("shift for %s already exists: %w", shift.Date, storage.ErrConflict)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to check shift date: %w", err)
	}

	_, err = tx.Exec(ctx,
		"UPDATE shifts SET date = $1, week = $2, cash_tips = $3, credit_tips = $4 WHERE id = $5",
		shift.Date, shift.Week, shift.CashTips, shift.CreditTips, shift.ID,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("shift for %s already exists: %w", shift.Date, storage.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	shift.CreatedAt = createdAt

	if err := replaceStaff(ctx, tx, shift); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// uniqueViolation is the SQLSTATE of a unique constraint failure.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// replaceStaff rewrites the bartender and expo rows of a shift in one batch.
func replaceStaff(ctx context.Context, tx pgx.Tx, shift *models.Shift) error {
	batch := &pgx.Batch{}
	batch.Queue("DELETE FROM shift_bartenders WHERE shift_id = $1", shift.ID)
	batch.Queue("DELETE FROM shift_expos WHERE shift_id = $1", shift.ID)

	seen := make(map[string]bool)
	for _, id := range shift.BartenderIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		batch.Queue("INSERT INTO shift_bartenders (shift_id, employee_id, hours) VALUES ($1, $2, $3)",
			shift.ID, id, shift.HoursFor(id))
	}

	seen = make(map[string]bool)
	for _, id := range shift.ExpoIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		batch.Queue("INSERT INTO shift_expos (shift_id, employee_id) VALUES ($1, $2)", shift.ID, id)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to write shift staff: %w", err)
	}
	return nil
}

// GetShift retrieves a shift with its staff by ID.
func (s *PostgresStore) GetShift(ctx context.Context, id string) (*models.Shift, error) {
	return s.getShift(ctx, "id = $1", id, "shift "+id)
}

// GetShiftByDate retrieves the shift stored for a date.
func (s *PostgresStore) GetShiftByDate(ctx context.Context, date string) (*models.Shift, error) {
	return s.getShift(ctx, "date = $1", date, "shift on "+date)
}

func (s *PostgresStore) getShift(ctx context.Context, where, arg, what string) (*models.Shift, error) {
	shift, err := scanShift(s.pool.QueryRow(ctx, "SELECT "+shiftColumns+" FROM shifts WHERE "+where, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", what, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	if err := s.loadStaff(ctx, map[string]*models.Shift{shift.ID: shift}, "s.id = $1", shift.ID); err != nil {
		return nil, err
	}
	return shift, nil
}

// ListShifts returns the shifts of a week, or of every week for storage.AllWeeks, newest first.
func (s *PostgresStore) ListShifts(ctx context.Context, week int) ([]*models.Shift, error) {
	where, args := "TRUE", []any{}
	if week >= 0 {
		where, args = "s.week = $1", []any{week}
	}

	rows, err := s.pool.Query(ctx,
		"SELECT s.id, s.date, s.week, s.cash_tips, s.credit_tips, s.created_at FROM shifts s WHERE "+where+" ORDER BY s.date DESC",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	var shifts []*models.Shift
	byID := make(map[string]*models.Shift)
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, shift)
		byID[shift.ID] = shift
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}

	if len(shifts) == 0 {
		return shifts, nil
	}
	if err := s.loadStaff(ctx, byID, where, args...); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (s *PostgresStore) loadStaff(ctx context.Context, byID map[string]*models.Shift, where string, args ...any) error {
	rows, err := s.pool.Query(ctx,
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

	rows, err = s.pool.Query(ctx,
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

// DeleteShift removes a shift; its staff rows cascade.
func (s *PostgresStore) DeleteShift(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM shifts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shift %s: %w", id, storage.ErrNotFound)
	}
	return nil
}
