package calculator

import "sort"

// WeeklyEntry accumulates one employee's payouts across the shifts of a week,
// decomposed back into the cash and credit the money came from.
//
// CreditFee is an attribution, not a ledger amount: it back-computes how much
// processing fee the employee's credit share implicitly bore
// (credit / (1-FeeRate) * FeeRate). Audit-facing reports should label it so.
type WeeklyEntry struct {
	EmployeeID  string
	CashTips    float64
	CreditTips  float64 // net of fee
	CreditFee   float64
	TotalHours  float64 // bartender hours only
	ShiftsCount int
	DaysWorked  map[string]struct{}
}

func newWeeklyEntry(id string) *WeeklyEntry {
	return &WeeklyEntry{EmployeeID: id, DaysWorked: make(map[string]struct{})}
}

// Total is the amount the employee receives for the week.
func (e *WeeklyEntry) Total() float64 {
	return e.CashTips + e.CreditTips
}

// Active reports whether the employee contributed to any shift.
func (e *WeeklyEntry) Active() bool {
	return e.ShiftsCount > 0
}

// Days returns the dates worked in ascending order.
func (e *WeeklyEntry) Days() []string {
	days := make([]string, 0, len(e.DaysWorked))
	for d := range e.DaysWorked {
		days = append(days, d)
	}
	sort.Strings(days)
	return days
}

func (e *WeeklyEntry) credit(date string, cash, credit float64) {
	e.CashTips += cash
	e.CreditTips += credit
	e.CreditFee += credit / (1 - FeeRate) * FeeRate
	e.ShiftsCount++
	e.DaysWorked[date] = struct{}{}
}

// AggregateWeek builds a breakdown entry for every roster employee from the
// shifts of one week.
//
// Per shift, the bartender and expo pools are each attributed back to cash and
// credit in the ratio the shift's tips came in:
//
//	pool_cash   = cash       * pool / total_tips
//	pool_credit = net_credit * pool / total_tips
//
// Bartenders with hours take hours/total_hours of the bartender portions, expos
// take an equal share of the expo portions. Employees with no activity keep a
// zero entry; use ActiveEntries to drop them.
func AggregateWeek(shifts []Shift, roster Roster) map[string]*WeeklyEntry {
	entries := make(map[string]*WeeklyEntry, len(roster))
	for id := range roster {
		entries[id] = newWeeklyEntry(id)
	}

	for _, shift := range shifts {
		p := Detail(shift, roster)

		var bartenderCash, bartenderCredit, expoCash, expoCredit float64
		if p.TotalTips > 0 {
			bartenderCash = p.CashTips * p.BartenderPool / p.TotalTips
			bartenderCredit = p.NetCredit * p.BartenderPool / p.TotalTips
			expoCash = p.CashTips * p.ExpoPool / p.TotalTips
			expoCredit = p.NetCredit * p.ExpoPool / p.TotalTips
		}

		for _, id := range p.Bartenders {
			hours := hoursFor(shift, id)
			if hours <= 0 {
				continue
			}
			var share float64
			if p.TotalHours > 0 {
				share = hours / p.TotalHours
			}
			entry := entries[id]
			entry.TotalHours += hours
			entry.credit(shift.Date, bartenderCash*share, bartenderCredit*share)
		}

		if len(p.Expos) == 0 {
			continue
		}
		perPerson := 1 / float64(len(p.Expos))
		for _, id := range p.Expos {
			entries[id].credit(shift.Date, expoCash*perPerson, expoCredit*perPerson)
		}
	}

	return entries
}

// ActiveEntries returns the entries that worked at least one shift, ordered by employee ID.
func ActiveEntries(entries map[string]*WeeklyEntry) []*WeeklyEntry {
	var active []*WeeklyEntry
	for _, e := range entries {
		if e.Active() {
			active = append(active, e)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].EmployeeID < active[j].EmployeeID
	})
	return active
}

// WeeklyTotals sums each employee's single-shift distributions over the week.
func WeeklyTotals(shifts []Shift, roster Roster) map[string]float64 {
	totals := make(map[string]float64)
	for _, shift := range shifts {
		for id, amount := range Distribute(shift, roster) {
			totals[id] += amount
		}
	}
	return totals
}

// WeekSummary is the headline numbers for a week of shifts.
type WeekSummary struct {
	Week            int
	ShiftCount      int
	NetTips         float64 // cash plus credit after fee
	Fees            float64
	Undistributed   float64
	AveragePerShift float64
	Totals          map[string]float64
}

// SummarizeWeek computes the week's headline numbers and per-employee totals.
func SummarizeWeek(week int, shifts []Shift, roster Roster) WeekSummary {
	s := WeekSummary{
		Week:       week,
		ShiftCount: len(shifts),
		Totals:     WeeklyTotals(shifts, roster),
	}
	for _, shift := range shifts {
		p := Detail(shift, roster)
		s.NetTips += p.TotalTips
		s.Fees += p.CreditFee
		s.Undistributed += p.Undistributed
	}
	if s.ShiftCount > 0 {
		s.AveragePerShift = s.NetTips / float64(s.ShiftCount)
	}
	return s
}
