package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tippool/internal/models"
	"github.com/mmynk/tippool/internal/storage"
	"github.com/mmynk/tippool/pkg/api"
	"github.com/mmynk/tippool/pkg/api/apiconnect"
)

// EmployeeService implements the Connect EmployeeService
type EmployeeService struct {
	apiconnect.UnimplementedEmployeeServiceHandler
	store storage.Store
}

// NewEmployeeService creates a new EmployeeService with the given storage backend.
func NewEmployeeService(store storage.Store) *EmployeeService {
	return &EmployeeService{store: store}
}

// CreateEmployee adds an employee to the roster. Without a color the next
// palette color is used.
func (s *EmployeeService) CreateEmployee(ctx context.Context, req *connect.Request[api.CreateEmployeeRequest]) (*connect.Response[api.CreateEmployeeResponse], error) {
	slog.Info("CreateEmployee request received", "name", req.Msg.Name, "role", req.Msg.Role)

	role, err := validateEmployee(req.Msg.Name, req.Msg.Role)
	if err != nil {
		slog.Warn("CreateEmployee rejected", "error", err)
		return nil, connectError(err)
	}

	color := req.Msg.Color
	if color == "" {
		employees, err := s.store.ListEmployees(ctx)
		if err != nil {
			slog.Error("CreateEmployee failed to count employees", "error", err)
			return nil, connectError(err)
		}
		color = models.PaletteColor(len(employees))
	}

	emp := &models.Employee{
		Name:           strings.TrimSpace(req.Msg.Name),
		Role:           role,
		Color:          color,
		Phone:          req.Msg.Phone,
		PaymentAccount: req.Msg.PaymentAccount,
	}
	if err := s.store.CreateEmployee(ctx, emp); err != nil {
		slog.Error("CreateEmployee failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Employee created", "employee_id", emp.ID)

	return connect.NewResponse(&api.CreateEmployeeResponse{Employee: employeeToAPI(emp)}), nil
}

// GetEmployee retrieves an employee by ID.
func (s *EmployeeService) GetEmployee(ctx context.Context, req *connect.Request[api.GetEmployeeRequest]) (*connect.Response[api.GetEmployeeResponse], error) {
	slog.Info("GetEmployee request received", "employee_id", req.Msg.ID)

	emp, err := s.store.GetEmployee(ctx, req.Msg.ID)
	if err != nil {
		slog.Error("GetEmployee failed", "employee_id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.GetEmployeeResponse{Employee: employeeToAPI(emp)}), nil
}

// ListEmployees retrieves the roster ordered by name.
func (s *EmployeeService) ListEmployees(ctx context.Context, req *connect.Request[api.ListEmployeesRequest]) (*connect.Response[api.ListEmployeesResponse], error) {
	slog.Info("ListEmployees request received")

	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		slog.Error("ListEmployees failed", "error", err)
		return nil, connectError(err)
	}

	out := make([]*api.Employee, len(employees))
	for i, emp := range employees {
		out[i] = employeeToAPI(emp)
	}

	slog.Info("ListEmployees successful", "count", len(out))

	return connect.NewResponse(&api.ListEmployeesResponse{Employees: out}), nil
}

// UpdateEmployee overwrites an employee's details. An empty color keeps the current one.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, req *connect.Request[api.UpdateEmployeeRequest]) (*connect.Response[api.UpdateEmployeeResponse], error) {
	slog.Info("UpdateEmployee request received", "employee_id", req.Msg.ID)

	role, err := validateEmployee(req.Msg.Name, req.Msg.Role)
	if err != nil {
		slog.Warn("UpdateEmployee rejected", "employee_id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}

	emp, err := s.store.GetEmployee(ctx, req.Msg.ID)
	if err != nil {
		slog.Error("UpdateEmployee failed to load employee", "employee_id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}

	emp.Name = strings.TrimSpace(req.Msg.Name)
	emp.Role = role
	emp.Phone = req.Msg.Phone
	emp.PaymentAccount = req.Msg.PaymentAccount
	if req.Msg.Color != "" {
		emp.Color = req.Msg.Color
	}

	if err := s.store.UpdateEmployee(ctx, emp); err != nil {
		slog.Error("UpdateEmployee failed", "employee_id", emp.ID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Employee updated", "employee_id", emp.ID)

	return connect.NewResponse(&api.UpdateEmployeeResponse{Employee: employeeToAPI(emp)}), nil
}

// DeleteEmployee removes an employee. Past shifts lose the employee from their staff.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, req *connect.Request[api.DeleteEmployeeRequest]) (*connect.Response[api.DeleteEmployeeResponse], error) {
	slog.Info("DeleteEmployee request received", "employee_id", req.Msg.ID)

	if err := s.store.DeleteEmployee(ctx, req.Msg.ID); err != nil {
		slog.Error("DeleteEmployee failed", "employee_id", req.Msg.ID, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Employee deleted", "employee_id", req.Msg.ID)

	return connect.NewResponse(&api.DeleteEmployeeResponse{}), nil
}
