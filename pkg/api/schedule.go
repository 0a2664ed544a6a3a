package api

// ScheduledShift is one parsed cell of a schedule export.
type ScheduledShift struct {
	Date  string  `json:"date"`
	Start string  `json:"start"`
	End   string  `json:"end"`
	Hours float64 `json:"hours"`
}

// ScheduledEmployee is a schedule row with at least one usable shift.
type ScheduledEmployee struct {
	Name   string            `json:"name"`
	Shifts []*ScheduledShift `json:"shifts"`
	// EmployeeID and Role are set when an employee with this name already exists.
	EmployeeID string `json:"employee_id,omitempty"`
	Role       string `json:"role,omitempty"`
}

type ParseScheduleRequest struct {
	CSV string `json:"csv"`
}

type ParseScheduleResponse struct {
	Dates     []string             `json:"dates"`
	Employees []*ScheduledEmployee `json:"employees"`
}

type ImportScheduleRequest struct {
	CSV string `json:"csv"`
	// RoleMapping maps schedule names to "bartender" or "expo"; unmapped names are skipped.
	RoleMapping map[string]string `json:"role_mapping"`
	Week        *int              `json:"week,omitempty"`
}

type ImportScheduleResponse struct {
	Shifts           []*Shift    `json:"shifts"`
	CreatedEmployees []*Employee `json:"created_employees"`
}

type ExportWeeklySummaryRequest struct {
	Week   int    `json:"week"`
	Format string `json:"format"` // "xlsx" (default) or "csv"
}

type ExportWeeklySummaryResponse struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}
