package models

import "fmt"

// Role is the pay rule an employee is subject to on a shift.
type Role string

const (
	// RoleBartender is paid proportionally to hours worked.
	RoleBartender Role = "bartender"

	// RoleExpo is paid a flat fraction of the shift's tip pool.
	RoleExpo Role = "expo"
)

// ParseRole converts the stored/wire form of a role into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleBartender:
		return RoleBartender, nil
	case RoleExpo:
		return RoleExpo, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleBartender, RoleExpo:
		return true
	default:
		return false
	}
}

// Employee represents a member of staff who can be put on shifts.
type Employee struct {
	// ID is the unique identifier for the employee (UUID format).
	ID string

	// Name is the display name. Schedule imports match employees by name.
	Name string

	// Role decides whether the employee is paid by hours or at the flat expo rate.
	Role Role

	// Color is the hex color used to render the employee in tables.
	Color string

	// Phone is an optional contact number.
	Phone string

	// PaymentAccount is an optional reference to an external payout account.
	PaymentAccount string

	// CreatedAt is the Unix timestamp when the employee was created.
	CreatedAt int64
}

// Palette is the rotation of display colors given to new employees.
var Palette = []string{"#22c55e", "#3b82f6", "#06b6d4", "#8b5cf6", "#ec4899", "#f59e0b", "#10b981"}

// PaletteColor picks a color for the n-th employee.
func PaletteColor(n int) string {
	if n < 0 {
		n = -n
	}
	return Palette[n%len(Palette)]
}
