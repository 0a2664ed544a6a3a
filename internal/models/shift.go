package models

// DateLayout is the layout of Shift.Date.
const DateLayout = "2006-01-02"

// Shift represents one calendar day's recorded tip activity.
type Shift struct {
	// ID is the unique identifier for the shift (UUID format).
	ID string

	// Date is the calendar day in YYYY-MM-DD form. Unique per store.
	Date string

	// Week is the week number the shift is reported under.
	Week int

	// CashTips is the cash collected for the shift.
	CashTips float64

	// CreditTips is the card tips collected, before the processing fee.
	CreditTips float64

	// BartenderIDs are the employees paid by hours on this shift.
	BartenderIDs []string

	// Hours maps bartender ID to hours worked. Only keys in BartenderIDs
	// are meaningful; a missing key means zero hours.
	Hours map[string]float64

	// ExpoIDs are the employees paid the flat expo rate on this shift.
	ExpoIDs []string

	// CreatedAt is the Unix timestamp when the shift was first stored.
	CreatedAt int64
}

// HoursFor returns the hours recorded for a bartender, zero if absent.
func (s *Shift) HoursFor(id string) float64 {
	if s.Hours == nil {
		return 0
	}
	return s.Hours[id]
}

// Staff returns every employee ID referenced by the shift, bartenders first.
func (s *Shift) Staff() []string {
	ids := make([]string, 0, len(s.BartenderIDs)+len(s.ExpoIDs))
	ids = append(ids, s.BartenderIDs...)
	ids = append(ids, s.ExpoIDs...)
	return ids
}

// HasData reports whether anything has been recorded for the shift.
func (s *Shift) HasData() bool {
	return len(s.Staff()) > 0 || s.CashTips > 0 || s.CreditTips > 0
}
