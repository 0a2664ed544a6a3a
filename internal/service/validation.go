package service

import (
	"math"
	"strings"
	"time"

	"github.com/mmynk/tippool/internal/models"
	"github.com/mmynk/tippool/pkg/api"
)

// amount reports whether v can be used as tips or hours.
func amount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// validateShift checks a wire shift. When known is non-nil every staff ID must
// be one of its keys; ad-hoc calculations pass nil and tolerate unknown IDs.
func validateShift(msg *api.Shift, known map[string]*models.Employee) error {
	verr := &ValidationError{}
	if msg == nil {
		verr.add("shift", "is required")
		return verr
	}

	if _, err := time.Parse(models.DateLayout, msg.Date); err != nil {
		verr.add("date", "must be a YYYY-MM-DD date, got %q", msg.Date)
	}
	if msg.Week != nil && *msg.Week < 0 {
		verr.add("week", "must not be negative")
	}
	if !amount(msg.CashTips) {
		verr.add("cash_tips", "must be a non-negative number")
	}
	if !amount(msg.CreditTips) {
		verr.add("credit_tips", "must be a non-negative number")
	}

	bartenders := make(map[string]bool, len(msg.BartenderIDs))
	for _, id := range msg.BartenderIDs {
		bartenders[id] = true
	}
	for id, h := range msg.Hours {
		if bartenders[id] && !amount(h) {
			verr.add("hours", "hours for %s must be a non-negative number", id)
		}
	}
	for _, id := range msg.ExpoIDs {
		if bartenders[id] {
			verr.add("expo_ids", "%s is also listed as a bartender", id)
		}
	}

	staff := []struct {
		field string
		ids   []string
	}{
		{"bartender_ids", msg.BartenderIDs},
		{"expo_ids", msg.ExpoIDs},
	}
	for _, group := range staff {
		for _, id := range group.ids {
			switch {
			case id == "":
				verr.add(group.field, "must not contain empty IDs")
			case known != nil && known[id] == nil:
				verr.add(group.field, "unknown employee %s", id)
			}
		}
	}

	return verr.err()
}

// validateEmployee checks the editable fields of an employee and returns its role.
func validateEmployee(name, role string) (models.Role, error) {
	verr := &ValidationError{}
	if strings.TrimSpace(name) == "" {
		verr.add("name", "is required")
	}
	r, err := models.ParseRole(role)
	if err != nil {
		verr.add("role", "must be %q or %q", models.RoleBartender, models.RoleExpo)
	}
	return r, verr.err()
}
