package service

import (
	"github.com/mmynk/tippool/internal/calculator"
	"github.com/mmynk/tippool/internal/models"
	"github.com/mmynk/tippool/pkg/api"
)

func employeeToAPI(emp *models.Employee) *api.Employee {
	return &api.Employee{
		ID:             emp.ID,
		Name:           emp.Name,
		Role:           string(emp.Role),
		Color:          emp.Color,
		Phone:          emp.Phone,
		PaymentAccount: emp.PaymentAccount,
		CreatedAt:      emp.CreatedAt,
	}
}

// shiftFromAPI converts a validated wire shift. Staff lists are deduplicated
// and hours are kept only for bartenders.
func shiftFromAPI(msg *api.Shift, week int) *models.Shift {
	shift := &models.Shift{
		ID:           msg.ID,
		Date:         msg.Date,
		Week:         week,
		CashTips:     msg.CashTips,
		CreditTips:   msg.CreditTips,
		BartenderIDs: dedupe(msg.BartenderIDs),
		ExpoIDs:      dedupe(msg.ExpoIDs),
		Hours:        make(map[string]float64),
	}
	for _, id := range shift.BartenderIDs {
		if h, ok := msg.Hours[id]; ok {
			shift.Hours[id] = h
		}
	}
	return shift
}

func shiftToAPI(shift *models.Shift) *api.Shift {
	week := shift.Week
	hours := make(map[string]float64, len(shift.Hours))
	for id, h := range shift.Hours {
		hours[id] = h
	}
	return &api.Shift{
		ID:           shift.ID,
		Date:         shift.Date,
		Week:         &week,
		CashTips:     shift.CashTips,
		CreditTips:   shift.CreditTips,
		BartenderIDs: nonNil(shift.BartenderIDs),
		Hours:        hours,
		ExpoIDs:      nonNil(shift.ExpoIDs),
		CreatedAt:    shift.CreatedAt,
	}
}

func shiftsToAPI(shifts []*models.Shift) []*api.Shift {
	out := make([]*api.Shift, len(shifts))
	for i, shift := range shifts {
		out[i] = shiftToAPI(shift)
	}
	return out
}

func calcShift(shift *models.Shift) calculator.Shift {
	return calculator.Shift{
		Date:         shift.Date,
		CashTips:     shift.CashTips,
		CreditTips:   shift.CreditTips,
		BartenderIDs: shift.BartenderIDs,
		Hours:        shift.Hours,
		ExpoIDs:      shift.ExpoIDs,
	}
}

func calcShifts(shifts []*models.Shift) []calculator.Shift {
	out := make([]calculator.Shift, len(shifts))
	for i, shift := range shifts {
		out[i] = calcShift(shift)
	}
	return out
}

func poolToAPI(p calculator.ShiftPool) *api.PoolDetail {
	return &api.PoolDetail{
		CashTips:      p.CashTips,
		CreditTips:    p.CreditTips,
		CreditFee:     p.CreditFee,
		NetCredit:     p.NetCredit,
		TotalTips:     p.TotalTips,
		ExpoPool:      p.ExpoPool,
		BartenderPool: p.BartenderPool,
		TotalHours:    p.TotalHours,
		HourlyRate:    p.HourlyRate,
		ExpoShare:     p.ExpoShare,
		Undistributed: p.Undistributed,
	}
}

func summaryToAPI(s calculator.WeekSummary) *api.WeekSummary {
	return &api.WeekSummary{
		Week:            s.Week,
		ShiftCount:      s.ShiftCount,
		NetTips:         s.NetTips,
		Fees:            s.Fees,
		Undistributed:   s.Undistributed,
		AveragePerShift: s.AveragePerShift,
		Totals:          s.Totals,
	}
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
