package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tippool/internal/calculator"
	"github.com/mmynk/tippool/internal/export"
	"github.com/mmynk/tippool/internal/importer"
	"github.com/mmynk/tippool/internal/models"
	"github.com/mmynk/tippool/internal/storage"
	"github.com/mmynk/tippool/pkg/api"
)

// ParseSchedule previews a schedule export: who worked which dates and for how
// long, and which names already match an employee.
func (s *TipService) ParseSchedule(ctx context.Context, req *connect.Request[api.ParseScheduleRequest]) (*connect.Response[api.ParseScheduleResponse], error) {
	slog.Info("ParseSchedule request received", "bytes", len(req.Msg.CSV))

	sched, err := importer.Parse(strings.NewReader(req.Msg.CSV))
	if err != nil {
		slog.Warn("ParseSchedule failed", "error", err)
		return nil, connectError(err)
	}

	out := make([]*api.ScheduledEmployee, 0, len(sched.Names))
	for _, name := range sched.Names {
		entry := &api.ScheduledEmployee{Name: name}
		for _, shift := range sched.Shifts[name] {
			entry.Shifts = append(entry.Shifts, &api.ScheduledShift{
				Date:  shift.Date,
				Start: shift.Start,
				End:   shift.End,
				Hours: shift.Hours,
			})
		}

		emp, err := s.store.FindEmployeeByName(ctx, name)
		switch {
		case err == nil:
			entry.EmployeeID = emp.ID
			entry.Role = string(emp.Role)
		case !errors.Is(err, storage.ErrNotFound):
			slog.Error("ParseSchedule failed to match employee", "name", name, "error", err)
			return nil, connectError(err)
		}
		out = append(out, entry)
	}

	slog.Info("ParseSchedule successful", "dates", len(sched.Dates), "employees", len(out))

	return connect.NewResponse(&api.ParseScheduleResponse{Dates: sched.Dates, Employees: out}), nil
}

// ImportSchedule stores the shifts of a schedule export for the mapped names.
func (s *TipService) ImportSchedule(ctx context.Context, req *connect.Request[api.ImportScheduleRequest]) (*connect.Response[api.ImportScheduleResponse], error) {
	slog.Info("ImportSchedule request received", "mapped", len(req.Msg.RoleMapping))

	verr := &ValidationError{}
	roles := make(map[string]models.Role, len(req.Msg.RoleMapping))
	names := make([]string, 0, len(req.Msg.RoleMapping))
	for name := range req.Msg.RoleMapping {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		role, err := models.ParseRole(req.Msg.RoleMapping[name])
		if err != nil {
			verr.add("role_mapping", "%s: %v", name, err)
			continue
		}
		roles[name] = role
	}
	if req.Msg.Week != nil && *req.Msg.Week < 0 {
		verr.add("week", "must not be negative")
	}
	if err := verr.err(); err != nil {
		slog.Warn("ImportSchedule rejected", "error", err)
		return nil, connectError(err)
	}

	sched, err := importer.Parse(strings.NewReader(req.Msg.CSV))
	if err != nil {
		slog.Warn("ImportSchedule failed to parse", "error", err)
		return nil, connectError(err)
	}

	result, err := importer.Import(ctx, s.store, sched, roles, req.Msg.Week)
	if err != nil {
		slog.Error("ImportSchedule failed", "error", err)
		return nil, connectError(err)
	}

	created := make([]*api.Employee, len(result.Created))
	for i, emp := range result.Created {
		created[i] = employeeToAPI(emp)
	}

	return connect.NewResponse(&api.ImportScheduleResponse{
		Shifts:           shiftsToAPI(result.Shifts),
		CreatedEmployees: created,
	}), nil
}

// ExportWeeklySummary renders a week's breakdown as an xlsx workbook or payroll csv.
func (s *TipService) ExportWeeklySummary(ctx context.Context, req *connect.Request[api.ExportWeeklySummaryRequest]) (*connect.Response[api.ExportWeeklySummaryResponse], error) {
	slog.Info("ExportWeeklySummary request received", "week", req.Msg.Week, "format", req.Msg.Format)

	format, err := export.ParseFormat(req.Msg.Format)
	if err != nil {
		slog.Warn("ExportWeeklySummary rejected", "error", err)
		return nil, connectError(err)
	}

	employees, roster, shifts, err := s.week(ctx, req.Msg.Week)
	if err != nil {
		slog.Error("ExportWeeklySummary failed", "week", req.Msg.Week, "error", err)
		return nil, connectError(err)
	}

	summary := export.Build(req.Msg.Week, employees, calculator.AggregateWeek(shifts, roster))
	data, err := summary.Render(format)
	if err != nil {
		slog.Error("ExportWeeklySummary failed to render", "format", format, "error", err)
		return nil, connectError(err)
	}

	name := export.FileName(req.Msg.Week, format)
	slog.Info("ExportWeeklySummary successful", "file", name, "bytes", len(data), "employees", len(summary.Lines))

	return connect.NewResponse(&api.ExportWeeklySummaryResponse{
		FileName:    name,
		ContentType: format.ContentType(),
		Data:        data,
	}), nil
}
