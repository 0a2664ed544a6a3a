package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/tippool/internal/models"
	"github.com/mmynk/tippool/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "tippool-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustCreateEmployee(t *testing.T, store *SQLiteStore, name string, role models.Role) *models.Employee {
	t.Helper()
	emp := &models.Employee{Name: name, Role: role, Color: "#22c55e"}
	if err := store.CreateEmployee(context.Background(), emp); err != nil {
		t.Fatalf("CreateEmployee(%s) failed: %v", name, err)
	}
	return emp
}

func TestEmployees(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateEmployee generates ID and timestamp", func(t *testing.T) {
		emp := &models.Employee{Name: "Alex Martinez", Role: models.RoleBartender, Color: "#22c55e", Phone: "555-0100"}
		if err := store.CreateEmployee(ctx, emp); err != nil {
			t.Fatalf("CreateEmployee failed: %v", err)
		}
		if emp.ID == "" {
			t.Error("Expected employee ID to be generated")
		}
		if emp.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}

		got, err := store.GetEmployee(ctx, emp.ID)
		if err != nil {
			t.Fatalf("GetEmployee failed: %v", err)
		}
		if got.Name != emp.Name || got.Role != emp.Role || got.Phone != emp.Phone {
			t.Errorf("GetEmployee = %+v, want %+v", got, emp)
		}
		if got.PaymentAccount != "" {
			t.Errorf("Expected empty payment account, got %q", got.PaymentAccount)
		}
	})

	t.Run("ListEmployees orders by name", func(t *testing.T) {
		mustCreateEmployee(t, store, "Sam Rivera", models.RoleExpo)
		mustCreateEmployee(t, store, "Jordan Lee", models.RoleBartender)

		employees, err := store.ListEmployees(ctx)
		if err != nil {
			t.Fatalf("ListEmployees failed: %v", err)
		}
		if len(employees) != 3 {
			t.Fatalf("Expected 3 employees, got %d", len(employees))
		}
		want := []string{"Alex Martinez", "Jordan Lee", "Sam Rivera"}
		for i, name := range want {
			if employees[i].Name != name {
				t.Errorf("employees[%d] = %s, want %s", i, employees[i].Name, name)
			}
		}
	})

	t.Run("FindEmployeeByName", func(t *testing.T) {
		emp, err := store.FindEmployeeByName(ctx, "Jordan Lee")
		if err != nil {
			t.Fatalf("FindEmployeeByName failed: %v", err)
		}
		if emp.Role != models.RoleBartender {
			t.Errorf("Role = %s, want bartender", emp.Role)
		}

		_, err = store.FindEmployeeByName(ctx, "Nobody")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("UpdateEmployee", func(t *testing.T) {
		emp := mustCreateEmployee(t, store, "Casey", models.RoleBartender)
		emp.Role = models.RoleExpo
		emp.PaymentAccount = "acct_123"
		if err := store.UpdateEmployee(ctx, emp); err != nil {
			t.Fatalf("UpdateEmployee failed: %v", err)
		}
		got, err := store.GetEmployee(ctx, emp.ID)
		if err != nil {
			t.Fatalf("GetEmployee failed: %v", err)
		}
		if got.Role != models.RoleExpo || got.PaymentAccount != "acct_123" {
			t.Errorf("Update not applied: %+v", got)
		}

		missing := &models.Employee{ID: "nonexistent-id", Name: "x", Role: models.RoleExpo, Color: "#000"}
		if err := store.UpdateEmployee(ctx, missing); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("GetEmployee returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetEmployee(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestShifts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alex := mustCreateEmployee(t, store, "Alex", models.RoleBartender)
	jordan := mustCreateEmployee(t, store, "Jordan", models.RoleBartender)
	sam := mustCreateEmployee(t, store, "Sam", models.RoleExpo)

	t.Run("SaveShift inserts a new shift", func(t *testing.T) {
		shift := &models.Shift{
			Date:         "2026-01-25",
			Week:         3,
			CashTips:     100,
			CreditTips:   100,
			BartenderIDs: []string{alex.ID, jordan.ID},
			Hours:        map[string]float64{alex.ID: 4, jordan.ID: 6, sam.ID: 9},
			ExpoIDs:      []string{sam.ID},
		}
		if err := store.SaveShift(ctx, shift); err != nil {
			t.Fatalf("SaveShift failed: %v", err)
		}
		if shift.ID == "" {
			t.Fatal("Expected shift ID to be generated")
		}

		got, err := store.GetShift(ctx, shift.ID)
		if err != nil {
			t.Fatalf("GetShift failed: %v", err)
		}
		if got.Date != "2026-01-25" || got.Week != 3 || got.CashTips != 100 || got.CreditTips != 100 {
			t.Errorf("Unexpected shift: %+v", got)
		}
		if len(got.BartenderIDs) != 2 || len(got.ExpoIDs) != 1 {
			t.Errorf("Staff mismatch: bartenders=%v expos=%v", got.BartenderIDs, got.ExpoIDs)
		}
		if got.Hours[alex.ID] != 4 || got.Hours[jordan.ID] != 6 {
			t.Errorf("Hours mismatch: %v", got.Hours)
		}
		if _, ok := got.Hours[sam.ID]; ok {
			t.Error("Hours should only be kept for bartenders")
		}
	})

	t.Run("SaveShift upserts by date", func(t *testing.T) {
		first, err := store.GetShiftByDate(ctx, "2026-01-25")
		if err != nil {
			t.Fatalf("GetShiftByDate failed: %v", err)
		}

		again := &models.Shift{
			Date:         "2026-01-25",
			Week:         3,
			CashTips:     150,
			BartenderIDs: []string{jordan.ID},
			Hours:        map[string]float64{jordan.ID: 8},
		}
		if err := store.SaveShift(ctx, again); err != nil {
			t.Fatalf("SaveShift failed: %v", err)
		}
		if again.ID != first.ID {
			t.Errorf("Upsert created a new shift: %s != %s", again.ID, first.ID)
		}

		got, err := store.GetShift(ctx, first.ID)
		if err != nil {
			t.Fatalf("GetShift failed: %v", err)
		}
		if got.CashTips != 150 || got.CreditTips != 0 {
			t.Errorf("Tips not updated: %+v", got)
		}
		if len(got.BartenderIDs) != 1 || got.BartenderIDs[0] != jordan.ID || len(got.ExpoIDs) != 0 {
			t.Errorf("Staff not replaced: bartenders=%v expos=%v", got.BartenderIDs, got.ExpoIDs)
		}
	})

	t.Run("ListShifts filters by week", func(t *testing.T) {
		for _, s := range []*models.Shift{
			{Date: "2026-01-26", Week: 3, CashTips: 20, ExpoIDs: []string{sam.ID}},
			{Date: "2026-02-02", Week: 4, CashTips: 30, BartenderIDs: []string{alex.ID}, Hours: map[string]float64{alex.ID: 5}},
		} {
			if err := store.SaveShift(ctx, s); err != nil {
				t.Fatalf("SaveShift failed: %v", err)
			}
		}

		week3, err := store.ListShifts(ctx, 3)
		if err != nil {
			t.Fatalf("ListShifts failed: %v", err)
		}
		if len(week3) != 2 {
			t.Fatalf("Expected 2 shifts in week 3, got %d", len(week3))
		}
		if week3[0].Date != "2026-01-26" {
			t.Errorf("Expected newest first, got %s", week3[0].Date)
		}
		if len(week3[0].ExpoIDs) != 1 || len(week3[1].BartenderIDs) != 1 {
			t.Errorf("Staff not loaded: %+v %+v", week3[0], week3[1])
		}

		all, err := store.ListShifts(ctx, storage.AllWeeks)
		if err != nil {
			t.Fatalf("ListShifts failed: %v", err)
		}
		if len(all) != 3 {
			t.Errorf("Expected 3 shifts, got %d", len(all))
		}
		if all[0].Hours[alex.ID] != 5 {
			t.Errorf("Hours not loaded for %s: %v", all[0].Date, all[0].Hours)
		}
	})

	t.Run("UpdateShift rejects a taken date", func(t *testing.T) {
		shift, err := store.GetShiftByDate(ctx, "2026-02-02")
		if err != nil {
			t.Fatalf("GetShiftByDate failed: %v", err)
		}
		shift.Date = "2026-01-26"
		if err := store.UpdateShift(ctx, shift); !errors.Is(err, storage.ErrConflict) {
			t.Errorf("Expected ErrConflict, got %v", err)
		}

		shift.Date = "2026-02-03"
		shift.CreditTips = 40
		if err := store.UpdateShift(ctx, shift); err != nil {
			t.Fatalf("UpdateShift failed: %v", err)
		}
		got, err := store.GetShiftByDate(ctx, "2026-02-03")
		if err != nil {
			t.Fatalf("GetShiftByDate failed: %v", err)
		}
		if got.CreditTips != 40 {
			t.Errorf("CreditTips = %v, want 40", got.CreditTips)
		}
	})

	t.Run("DeleteEmployee removes them from shifts", func(t *testing.T) {
		if err := store.DeleteEmployee(ctx, sam.ID); err != nil {
			t.Fatalf("DeleteEmployee failed: %v", err)
		}
		shift, err := store.GetShiftByDate(ctx, "2026-01-26")
		if err != nil {
			t.Fatalf("GetShiftByDate failed: %v", err)
		}
		if len(shift.ExpoIDs) != 0 {
			t.Errorf("Expected expo to be removed, got %v", shift.ExpoIDs)
		}
		if err := store.DeleteEmployee(ctx, sam.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("DeleteShift", func(t *testing.T) {
		shift, err := store.GetShiftByDate(ctx, "2026-01-26")
		if err != nil {
			t.Fatalf("GetShiftByDate failed: %v", err)
		}
		if err := store.DeleteShift(ctx, shift.ID); err != nil {
			t.Fatalf("DeleteShift failed: %v", err)
		}
		if _, err := store.GetShift(ctx, shift.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
		if err := store.DeleteShift(ctx, shift.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}
