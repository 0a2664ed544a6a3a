package export

import (
	"fmt"

	"github.com/gocarina/gocsv"
)

// PayrollRow is one line of the payroll CSV. Amounts are fixed-point strings.
type PayrollRow struct {
	Employee   string `csv:"employee"`
	Role       string `csv:"role"`
	Shifts     int    `csv:"shifts"`
	DaysWorked string `csv:"days_worked"`
	Hours      string `csv:"hours"`
	CashTips   string `csv:"cash_tips"`
	CreditTips string `csv:"credit_tips"`
	CreditFee  string `csv:"credit_fee"`
	Total      string `csv:"total"`
}

// PayrollRows converts the summary's lines for payroll upload. The grand
// total is not included.
func (s *Summary) PayrollRows() []PayrollRow {
	rows := make([]PayrollRow, 0, len(s.Lines))
	for _, l := range s.Lines {
		rows = append(rows, PayrollRow{
			Employee:   l.Name,
			Role:       string(l.Role),
			Shifts:     l.Shifts,
			DaysWorked: l.DaysLabel(),
			Hours:      l.Hours.StringFixed(1),
			CashTips:   l.Cash.StringFixed(2),
			CreditTips: l.Credit.StringFixed(2),
			CreditFee:  l.Fee.StringFixed(2),
			Total:      l.Total.StringFixed(2),
		})
	}
	return rows
}

// CSV renders the payroll rows with a header line.
func (s *Summary) CSV() ([]byte, error) {
	data, err := gocsv.MarshalBytes(s.PayrollRows())
	if err != nil {
		return nil, fmt.Errorf("failed to encode payroll csv: %w", err)
	}
	return data, nil
}
