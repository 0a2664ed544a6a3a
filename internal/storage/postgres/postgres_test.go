package postgres

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/mmynk/tippool/internal/models"
	"github.com/mmynk/tippool/internal/storage"
)

// newTestStore connects to the database named by TIPPOOL_TEST_POSTGRES_DSN and
// empties it. Tests are skipped when the variable is unset.
func newTestStore(t *testing.T) *PostgresStore {
	t.Helper()

	dsn := os.Getenv("TIPPOOL_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TIPPOOL_TEST_POSTGRES_DSN not set")
	}

	ctx := context.Background()
	store, err := New(ctx, dsn)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if _, err := store.pool.Exec(ctx, "TRUNCATE shift_expos, shift_bartenders, shifts, employees"); err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
	return store
}

func TestPostgresStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alex := &models.Employee{Name: "Alex", Role: models.RoleBartender, Color: "#22c55e"}
	sam := &models.Employee{Name: "Sam", Role: models.RoleExpo, Color: "#06b6d4", PaymentAccount: "acct_9"}
	for _, emp := range []*models.Employee{alex, sam} {
		if err := store.CreateEmployee(ctx, emp); err != nil {
			t.Fatalf("CreateEmployee failed: %v", err)
		}
	}

	t.Run("employee round trip", func(t *testing.T) {
		got, err := store.GetEmployee(ctx, sam.ID)
		if err != nil {
			t.Fatalf("GetEmployee failed: %v", err)
		}
		if got.PaymentAccount != "acct_9" || got.Phone != "" || got.Role != models.RoleExpo {
			t.Errorf("Unexpected employee: %+v", got)
		}
	})

	t.Run("shift upsert by date", func(t *testing.T) {
		shift := &models.Shift{
			Date:         "2026-01-25",
			Week:         3,
			CashTips:     100,
			CreditTips:   100,
			BartenderIDs: []string{alex.ID},
			Hours:        map[string]float64{alex.ID: 6},
			ExpoIDs:      []string{sam.ID},
		}
		if err := store.SaveShift(ctx, shift); err != nil {
			t.Fatalf("SaveShift failed: %v", err)
		}

		again := &models.Shift{Date: "2026-01-25", Week: 3, CashTips: 10, ExpoIDs: []string{sam.ID}}
		if err := store.SaveShift(ctx, again); err != nil {
			t.Fatalf("SaveShift failed: %v", err)
		}
		if again.ID != shift.ID {
			t.Errorf("Upsert created a new shift")
		}

		shifts, err := store.ListShifts(ctx, 3)
		if err != nil {
			t.Fatalf("ListShifts failed: %v", err)
		}
		if len(shifts) != 1 || shifts[0].CashTips != 10 || len(shifts[0].BartenderIDs) != 0 || len(shifts[0].ExpoIDs) != 1 {
			t.Errorf("Unexpected shifts: %+v", shifts)
		}
	})

	t.Run("concurrent saves of a new date", func(t *testing.T) {
		const writers = 8
		var wg sync.WaitGroup
		errs := make([]error, writers)
		ids := make([]string, writers)
		for i := range writers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				shift := &models.Shift{
					Date:         "2026-02-01",
					Week:         4,
					CashTips:     float64(10 * (i + 1)),
					BartenderIDs: []string{alex.ID},
					Hours:        map[string]float64{alex.ID: 5},
				}
				errs[i] = store.SaveShift(ctx, shift)
				ids[i] = shift.ID
			}(i)
		}
		wg.Wait()

		for i, err := range errs {
			if err != nil {
				t.Fatalf("SaveShift %d failed: %v", i, err)
			}
			if ids[i] != ids[0] {
				t.Errorf("SaveShift %d stored shift %s, expected %s", i, ids[i], ids[0])
			}
		}

		shifts, err := store.ListShifts(ctx, 4)
		if err != nil {
			t.Fatalf("ListShifts failed: %v", err)
		}
		if len(shifts) != 1 || len(shifts[0].BartenderIDs) != 1 {
			t.Errorf("Expected one shift with one bartender, got %+v", shifts)
		}
	})

	t.Run("update onto a taken date", func(t *testing.T) {
		other := &models.Shift{Date: "2026-02-02", Week: 4}
		if err := store.SaveShift(ctx, other); err != nil {
			t.Fatalf("SaveShift failed: %v", err)
		}
		other.Date = "2026-02-01"
		if err := store.UpdateShift(ctx, other); !errors.Is(err, storage.ErrConflict) {
			t.Errorf("Expected ErrConflict, got %v", err)
		}
	})

	t.Run("delete employee cascades", func(t *testing.T) {
		if err := store.DeleteEmployee(ctx, sam.ID); err != nil {
			t.Fatalf("DeleteEmployee failed: %v", err)
		}
		shift, err := store.GetShiftByDate(ctx, "2026-01-25")
		if err != nil {
			t.Fatalf("GetShiftByDate failed: %v", err)
		}
		if len(shift.ExpoIDs) != 0 {
			t.Errorf("Expected no expos, got %v", shift.ExpoIDs)
		}
	})

	t.Run("missing records", func(t *testing.T) {
		if _, err := store.GetShift(ctx, "nonexistent-id"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
		if err := store.DeleteShift(ctx, "nonexistent-id"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}
