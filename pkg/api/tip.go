package api

// Shift is the wire form of one day's tips and staffing.
type Shift struct {
	ID   string `json:"id,omitempty"`
	Date string `json:"date"`
	// Week is derived from Date when omitted.
	Week         *int               `json:"week,omitempty"`
	CashTips     float64            `json:"cash_tips"`
	CreditTips   float64            `json:"credit_tips"`
	BartenderIDs []string           `json:"bartender_ids"`
	Hours        map[string]float64 `json:"hours,omitempty"`
	ExpoIDs      []string           `json:"expo_ids"`
	CreatedAt    int64              `json:"created_at,omitempty"`
}

// PoolDetail exposes the arithmetic behind a shift's distribution.
type PoolDetail struct {
	CashTips      float64 `json:"cash_tips"`
	CreditTips    float64 `json:"credit_tips"`
	CreditFee     float64 `json:"credit_fee"`
	NetCredit     float64 `json:"net_credit"`
	TotalTips     float64 `json:"total_tips"`
	ExpoPool      float64 `json:"expo_pool"`
	BartenderPool float64 `json:"bartender_pool"`
	TotalHours    float64 `json:"total_hours"`
	HourlyRate    float64 `json:"hourly_rate"`
	ExpoShare     float64 `json:"expo_share"`
	Undistributed float64 `json:"undistributed"`
}

// WeeklyEntry is one employee's line in a weekly breakdown.
type WeeklyEntry struct {
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	Role         string   `json:"role"`
	Color        string   `json:"color"`
	CashTips     float64  `json:"cash_tips"`
	CreditTips   float64  `json:"credit_tips"`
	CreditFee    float64  `json:"credit_fee"`
	Total        float64  `json:"total"`
	TotalHours   float64  `json:"total_hours"`
	ShiftsCount  int      `json:"shifts_count"`
	DaysWorked   []string `json:"days_worked"`
}

// WeekSummary is the headline numbers of a week.
type WeekSummary struct {
	Week            int                `json:"week"`
	ShiftCount      int                `json:"shift_count"`
	NetTips         float64            `json:"net_tips"`
	Fees            float64            `json:"fees"`
	Undistributed   float64            `json:"undistributed"`
	AveragePerShift float64            `json:"average_per_shift"`
	Totals          map[string]float64 `json:"totals"`
}

type CalculateDistributionRequest struct {
	Shift *Shift `json:"shift"`
}

type CalculateDistributionResponse struct {
	Distribution map[string]float64 `json:"distribution"`
	Pool         *PoolDetail        `json:"pool"`
	DanglingIDs  []string           `json:"dangling_ids,omitempty"`
}

type SaveShiftRequest struct {
	Shift *Shift `json:"shift"`
}

type SaveShiftResponse struct {
	Shift        *Shift             `json:"shift"`
	Distribution map[string]float64 `json:"distribution"`
	Pool         *PoolDetail        `json:"pool"`
}

type GetShiftRequest struct {
	ID string `json:"id"`
}

type GetShiftResponse struct {
	Shift *Shift `json:"shift"`
}

type ListShiftsRequest struct {
	// Week filters the shifts; all weeks when omitted.
	Week *int `json:"week,omitempty"`
}

type ListShiftsResponse struct {
	Shifts []*Shift `json:"shifts"`
}

type UpdateShiftRequest struct {
	Shift *Shift `json:"shift"`
}

type UpdateShiftResponse struct {
	Shift        *Shift             `json:"shift"`
	Distribution map[string]float64 `json:"distribution"`
	Pool         *PoolDetail        `json:"pool"`
}

type DeleteShiftRequest struct {
	ID string `json:"id"`
}

type DeleteShiftResponse struct{}

type GetShiftDistributionRequest struct {
	ShiftID string `json:"shift_id"`
}

type GetShiftDistributionResponse struct {
	Distribution map[string]float64 `json:"distribution"`
	Pool         *PoolDetail        `json:"pool"`
}

type GetWeeklyBreakdownRequest struct {
	Week            int  `json:"week"`
	IncludeInactive bool `json:"include_inactive,omitempty"`
}

type GetWeeklyBreakdownResponse struct {
	Entries []*WeeklyEntry `json:"entries"`
	Summary *WeekSummary   `json:"summary"`
}

type GetWeekGridRequest struct {
	// Date is any day of the wanted week; today when omitted.
	Date string `json:"date,omitempty"`
}

// GridDay is one column of the Sunday to Saturday shift grid.
type GridDay struct {
	Date    string `json:"date"`
	Day     string `json:"day"`
	HasData bool   `json:"has_data"`
	// Shift is nil when nothing is stored for the date.
	Shift        *Shift             `json:"shift,omitempty"`
	Distribution map[string]float64 `json:"distribution,omitempty"`
}

type GetWeekGridResponse struct {
	WeekStart string     `json:"week_start"`
	Days      []*GridDay `json:"days"`
}
