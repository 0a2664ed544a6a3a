package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tippool/internal/calculator"
	"github.com/mmynk/tippool/internal/metrics"
	"github.com/mmynk/tippool/internal/models"
	"github.com/mmynk/tippool/internal/storage"
	"github.com/mmynk/tippool/pkg/api"
	"github.com/mmynk/tippool/pkg/api/apiconnect"
)

// TipService implements the Connect TipService
type TipService struct {
	apiconnect.UnimplementedTipServiceHandler
	store storage.Store
}

// NewTipService creates a new TipService with the given storage backend.
func NewTipService(store storage.Store) *TipService {
	return &TipService{store: store}
}

// roster loads the employees known right now, keyed by ID.
func (s *TipService) roster(ctx context.Context) ([]*models.Employee, map[string]*models.Employee, calculator.Roster, error) {
	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	byID := make(map[string]*models.Employee, len(employees))
	roster := make(calculator.Roster, len(employees))
	for _, emp := range employees {
		byID[emp.ID] = emp
		roster[emp.ID] = struct{}{}
	}
	return employees, byID, roster, nil
}

// distribute runs the calculator and logs the cases it resolves silently.
func distribute(shift calculator.Shift, roster calculator.Roster) (calculator.Distribution, calculator.ShiftPool) {
	pool := calculator.Detail(shift, roster)
	dist := calculator.Distribute(shift, roster)

	slog.Debug("Shift pool",
		"date", shift.Date,
		"total_tips", pool.TotalTips,
		"expo_pool", pool.ExpoPool,
		"bartender_pool", pool.BartenderPool,
		"total_hours", pool.TotalHours,
		"hourly_rate", pool.HourlyRate,
	)
	if pool.Undistributed > 0 {
		slog.Warn("Bartender pool left undistributed: no bartender hours recorded",
			"date", shift.Date,
			"amount", pool.Undistributed,
		)
	}
	return dist, pool
}

// CalculateDistribution splits an unsaved shift. Staff IDs that are not on
// the roster are skipped and reported back.
func (s *TipService) CalculateDistribution(ctx context.Context, req *connect.Request[api.CalculateDistributionRequest]) (*connect.Response[api.CalculateDistributionResponse], error) {
	slog.Info("CalculateDistribution request received")

	if err := validateShift(req.Msg.Shift, nil); err != nil {
		slog.Warn("CalculateDistribution rejected", "error", err)
		return nil, connectError(err)
	}

	_, _, roster, err := s.roster(ctx)
	if err != nil {
		slog.Error("CalculateDistribution failed to load roster", "error", err)
		return nil, connectError(err)
	}

	shift := calculator.Shift{
		Date:         req.Msg.Shift.Date,
		CashTips:     req.Msg.Shift.CashTips,
		CreditTips:   req.Msg.Shift.CreditTips,
		BartenderIDs: req.Msg.Shift.BartenderIDs,
		Hours:        req.Msg.Shift.Hours,
		ExpoIDs:      req.Msg.Shift.ExpoIDs,
	}

	dangling := calculator.DanglingIDs(shift, roster)
	if len(dangling) > 0 {
		slog.Warn("Shift references unknown employees", "date", shift.Date, "employee_ids", dangling)
		metrics.DanglingReferences.Add(float64(len(dangling)))
	}

	dist, pool := distribute(shift, roster)

	return connect.NewResponse(&api.CalculateDistributionResponse{
		Distribution: dist,
		Pool:         poolToAPI(pool),
		DanglingIDs:  dangling,
	}), nil
}

// storable validates a wire shift against the roster and converts it for the store.
func (s *TipService) storable(ctx context.Context, msg *api.Shift) (*models.Shift, calculator.Roster, error) {
	_, byID, roster, err := s.roster(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err := validateShift(msg, byID); err != nil {
		return nil, nil, err
	}

	var week int
	if msg.Week != nil {
		week = *msg.Week
	} else if week, err = calculator.WeekNumberForDate(msg.Date); err != nil {
		return nil, nil, err
	}
	return shiftFromAPI(msg, week), roster, nil
}

// stored computes the payout of a freshly written shift.
func stored(shift *models.Shift, roster calculator.Roster) (*api.Shift, map[string]float64, *api.PoolDetail) {
	dist, pool := distribute(calcShift(shift), roster)
	if pool.Undistributed > 0 {
		metrics.UndistributedTips.Add(pool.Undistributed)
	}
	return shiftToAPI(shift), dist, poolToAPI(pool)
}

// SaveShift records a day's tips and staff. A shift already stored for the
// date is updated in place.
func (s *TipService) SaveShift(ctx context.Context, req *connect.Request[api.SaveShiftRequest]) (*connect.Response[api.SaveShiftResponse], error) {
	slog.Info("SaveShift request received")

	shift, roster, err := s.storable(ctx, req.Msg.Shift)
	if err != nil {
		slog.Warn("SaveShift rejected", "error", err)
		return nil, connectError(err)
	}
	// The date decides which record is written; a client-supplied ID is ignored.
	shift.ID = ""

	if err := s.store.SaveShift(ctx, shift); err != nil {
		slog.Error("SaveShift failed", "date", shift.Date, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Shift saved",
		"shift_id", shift.ID,
		"date", shift.Date,
		"week", shift.Week,
		"bartenders", len(shift.BartenderIDs),
		"expos", len(shift.ExpoIDs),
	)

	out, dist, pool := stored(shift, roster)
	return connect.NewResponse(&api.SaveShiftResponse{Shift: out, Distribution: dist, Pool: pool}), nil
}

// GetShift retrieves a shift by ID.
func (s *TipService) GetShift(ctx context.Context, req *connect.Request[api.GetShiftRequest]) (*connect.Response[api.GetShiftResponse], error) {
	slog.Info("GetShift request received", "shift_id", req.Msg.ID)

	shift, err := s.store.GetShift(ctx, req.Msg.ID)
	if err != nil {
		slog.Error("GetShift failed", "shift_id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.GetShiftResponse{Shift: shiftToAPI(shift)}), nil
}

// ListShifts returns the shifts of a week, or all shifts, newest first.
func (s *TipService) ListShifts(ctx context.Context, req *connect.Request[api.ListShiftsRequest]) (*connect.Response[api.ListShiftsResponse], error) {
	week := storage.AllWeeks
	if req.Msg.Week != nil {
		week = *req.Msg.Week
		if week < 0 {
			verr := &ValidationError{}
			verr.add("week", "must not be negative")
			return nil, connectError(verr)
		}
	}
	slog.Info("ListShifts request received", "week", week)

	shifts, err := s.store.ListShifts(ctx, week)
	if err != nil {
		slog.Error("ListShifts failed", "week", week, "error", err)
		return nil, connectError(err)
	}

	slog.Info("ListShifts successful", "count", len(shifts))

	return connect.NewResponse(&api.ListShiftsResponse{Shifts: shiftsToAPI(shifts)}), nil
}

// UpdateShift overwrites a stored shift by ID, including its date.
func (s *TipService) UpdateShift(ctx context.Context, req *connect.Request[api.UpdateShiftRequest]) (*connect.Response[api.UpdateShiftResponse], error) {
	slog.Info("UpdateShift request received")

	if req.Msg.Shift != nil && req.Msg.Shift.ID == "" {
		verr := &ValidationError{}
		verr.add("id", "is required")
		return nil, connectError(verr)
	}

	shift, roster, err := s.storable(ctx, req.Msg.Shift)
	if err != nil {
		slog.Warn("UpdateShift rejected", "error", err)
		return nil, connectError(err)
	}

	if err := s.store.UpdateShift(ctx, shift); err != nil {
		slog.Error("UpdateShift failed", "shift_id", shift.ID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Shift updated", "shift_id", shift.ID, "date", shift.Date)

	out, dist, pool := stored(shift, roster)
	return connect.NewResponse(&api.UpdateShiftResponse{Shift: out, Distribution: dist, Pool: pool}), nil
}

// DeleteShift removes a shift.
func (s *TipService) DeleteShift(ctx context.Context, req *connect.Request[api.DeleteShiftRequest]) (*connect.Response[api.DeleteShiftResponse], error) {
	slog.Info("DeleteShift request received", "shift_id", req.Msg.ID)

	if err := s.store.DeleteShift(ctx, req.Msg.ID); err != nil {
		slog.Error("DeleteShift failed", "shift_id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Shift deleted", "shift_id", req.Msg.ID)

	return connect.NewResponse(&api.DeleteShiftResponse{}), nil
}

// GetShiftDistribution computes the payouts of a stored shift against the current roster.
func (s *TipService) GetShiftDistribution(ctx context.Context, req *connect.Request[api.GetShiftDistributionRequest]) (*connect.Response[api.GetShiftDistributionResponse], error) {
	slog.Info("GetShiftDistribution request received", "shift_id", req.Msg.ShiftID)

	shift, err := s.store.GetShift(ctx, req.Msg.ShiftID)
	if err != nil {
		slog.Error("GetShiftDistribution failed to load shift", "shift_id", req.Msg.ShiftID, "error", err)
		return nil, connectError(err)
	}
	_, _, roster, err := s.roster(ctx)
	if err != nil {
		slog.Error("GetShiftDistribution failed to load roster", "error", err)
		return nil, connectError(err)
	}

	dist, pool := distribute(calcShift(shift), roster)

	return connect.NewResponse(&api.GetShiftDistributionResponse{
		Distribution: dist,
		Pool:         poolToAPI(pool),
	}), nil
}

// week loads the shifts of a week together with the roster they are paid against.
func (s *TipService) week(ctx context.Context, week int) ([]*models.Employee, calculator.Roster, []calculator.Shift, error) {
	if week < 0 {
		verr := &ValidationError{}
		verr.add("week", "must not be negative")
		return nil, nil, nil, verr
	}
	employees, _, roster, err := s.roster(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	shifts, err := s.store.ListShifts(ctx, week)
	if err != nil {
		return nil, nil, nil, err
	}
	return employees, roster, calcShifts(shifts), nil
}

// GetWeeklyBreakdown reports each employee's cash, credit and fee for a week,
// ordered by employee name.
func (s *TipService) GetWeeklyBreakdown(ctx context.Context, req *connect.Request[api.GetWeeklyBreakdownRequest]) (*connect.Response[api.GetWeeklyBreakdownResponse], error) {
	slog.Info("GetWeeklyBreakdown request received", "week", req.Msg.Week, "include_inactive", req.Msg.IncludeInactive)

	employees, roster, shifts, err := s.week(ctx, req.Msg.Week)
	if err != nil {
		slog.Error("GetWeeklyBreakdown failed", "week", req.Msg.Week, "error", err)
		return nil, connectError(err)
	}

	entries := calculator.AggregateWeek(shifts, roster)
	summary := calculator.SummarizeWeek(req.Msg.Week, shifts, roster)
	if summary.Undistributed > 0 {
		slog.Warn("Week has undistributed bartender tips", "week", req.Msg.Week, "amount", summary.Undistributed)
	}

	out := make([]*api.WeeklyEntry, 0, len(employees))
	for _, emp := range employees {
		entry := entries[emp.ID]
		if entry == nil || (!entry.Active() && !req.Msg.IncludeInactive) {
			continue
		}
		out = append(out, &api.WeeklyEntry{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			Role:         string(emp.Role),
			Color:        emp.Color,
			CashTips:     entry.CashTips,
			CreditTips:   entry.CreditTips,
			CreditFee:    entry.CreditFee,
			Total:        entry.Total(),
			TotalHours:   entry.TotalHours,
			ShiftsCount:  entry.ShiftsCount,
			DaysWorked:   entry.Days(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EmployeeName < out[j].EmployeeName
	})

	slog.Info("GetWeeklyBreakdown successful",
		"week", req.Msg.Week,
		"shifts", summary.ShiftCount,
		"entries", len(out),
	)

	return connect.NewResponse(&api.GetWeeklyBreakdownResponse{
		Entries: out,
		Summary: summaryToAPI(summary),
	}), nil
}

// GetWeekGrid lays out the Sunday to Saturday week containing the requested
// date, with the stored shift and its payouts for each day.
func (s *TipService) GetWeekGrid(ctx context.Context, req *connect.Request[api.GetWeekGridRequest]) (*connect.Response[api.GetWeekGridResponse], error) {
	slog.Info("GetWeekGrid request received", "date", req.Msg.Date)

	day := time.Now()
	if req.Msg.Date != "" {
		t, err := time.Parse(models.DateLayout, req.Msg.Date)
		if err != nil {
			verr := &ValidationError{}
			verr.add("date", "must be a YYYY-MM-DD date, got %q", req.Msg.Date)
			return nil, connectError(verr)
		}
		day = t
	}

	_, _, roster, err := s.roster(ctx)
	if err != nil {
		slog.Error("GetWeekGrid failed to load roster", "error", err)
		return nil, connectError(err)
	}

	start := calculator.WeekStart(day)
	dates := calculator.WeekDates(start)
	days := make([]*api.GridDay, 0, len(dates))
	for _, date := range dates {
		gd := &api.GridDay{Date: date, Day: calculator.DayAbbreviation(date)}
		shift, err := s.store.GetShiftByDate(ctx, date)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			// nothing stored for the day
		case err != nil:
			slog.Error("GetWeekGrid failed to load shift", "date", date, "error", err)
			return nil, connectError(err)
		default:
			gd.Shift = shiftToAPI(shift)
			gd.HasData = shift.HasData()
			gd.Distribution, _ = distribute(calcShift(shift), roster)
		}
		days = append(days, gd)
	}

	slog.Info("GetWeekGrid successful", "week_start", dates[0])

	return connect.NewResponse(&api.GetWeekGridResponse{
		WeekStart: dates[0],
		Days:      days,
	}), nil
}
