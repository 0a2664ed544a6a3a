package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tippool/pkg/api"
)

const (
	EmployeeServiceCreateEmployeeProcedure = "/tippool.v1.EmployeeService/CreateEmployee"
	EmployeeServiceGetEmployeeProcedure    = "/tippool.v1.EmployeeService/GetEmployee"
	EmployeeServiceListEmployeesProcedure  = "/tippool.v1.EmployeeService/ListEmployees"
	EmployeeServiceUpdateEmployeeProcedure = "/tippool.v1.EmployeeService/UpdateEmployee"
	EmployeeServiceDeleteEmployeeProcedure = "/tippool.v1.EmployeeService/DeleteEmployee"
)

// EmployeeServiceHandler is implemented by the employee roster service.
type EmployeeServiceHandler interface {
	CreateEmployee(context.Context, *connect.Request[api.CreateEmployeeRequest]) (*connect.Response[api.CreateEmployeeResponse], error)
	GetEmployee(context.Context, *connect.Request[api.GetEmployeeRequest]) (*connect.Response[api.GetEmployeeResponse], error)
	ListEmployees(context.Context, *connect.Request[api.ListEmployeesRequest]) (*connect.Response[api.ListEmployeesResponse], error)
	UpdateEmployee(context.Context, *connect.Request[api.UpdateEmployeeRequest]) (*connect.Response[api.UpdateEmployeeResponse], error)
	DeleteEmployee(context.Context, *connect.Request[api.DeleteEmployeeRequest]) (*connect.Response[api.DeleteEmployeeResponse], error)
}

// NewEmployeeServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewEmployeeServiceHandler(svc EmployeeServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	return "/" + EmployeeServiceName + "/", serviceMux(map[string]*connect.Handler{
		EmployeeServiceCreateEmployeeProcedure: connect.NewUnaryHandler(EmployeeServiceCreateEmployeeProcedure, svc.CreateEmployee, opts...),
		EmployeeServiceGetEmployeeProcedure:    connect.NewUnaryHandler(EmployeeServiceGetEmployeeProcedure, svc.GetEmployee, opts...),
		EmployeeServiceListEmployeesProcedure:  connect.NewUnaryHandler(EmployeeServiceListEmployeesProcedure, svc.ListEmployees, opts...),
		EmployeeServiceUpdateEmployeeProcedure: connect.NewUnaryHandler(EmployeeServiceUpdateEmployeeProcedure, svc.UpdateEmployee, opts...),
		EmployeeServiceDeleteEmployeeProcedure: connect.NewUnaryHandler(EmployeeServiceDeleteEmployeeProcedure, svc.DeleteEmployee, opts...),
	})
}

// EmployeeServiceClient is a client for the tippool.v1.EmployeeService service.
type EmployeeServiceClient interface {
	CreateEmployee(context.Context, *connect.Request[api.CreateEmployeeRequest]) (*connect.Response[api.CreateEmployeeResponse], error)
	GetEmployee(context.Context, *connect.Request[api.GetEmployeeRequest]) (*connect.Response[api.GetEmployeeResponse], error)
	ListEmployees(context.Context, *connect.Request[api.ListEmployeesRequest]) (*connect.Response[api.ListEmployeesResponse], error)
	UpdateEmployee(context.Context, *connect.Request[api.UpdateEmployeeRequest]) (*connect.Response[api.UpdateEmployeeResponse], error)
	DeleteEmployee(context.Context, *connect.Request[api.DeleteEmployeeRequest]) (*connect.Response[api.DeleteEmployeeResponse], error)
}

// NewEmployeeServiceClient constructs a client for the EmployeeService at baseURL.
func NewEmployeeServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) EmployeeServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &employeeServiceClient{
		createEmployee: connect.NewClient[api.CreateEmployeeRequest, api.CreateEmployeeResponse](httpClient, baseURL+EmployeeServiceCreateEmployeeProcedure, opts...),
		getEmployee:    connect.NewClient[api.GetEmployeeRequest, api.GetEmployeeResponse](httpClient, baseURL+EmployeeServiceGetEmployeeProcedure, opts...),
		listEmployees:  connect.NewClient[api.ListEmployeesRequest, api.ListEmployeesResponse](httpClient, baseURL+EmployeeServiceListEmployeesProcedure, opts...),
		updateEmployee: connect.NewClient[api.UpdateEmployeeRequest, api.UpdateEmployeeResponse](httpClient, baseURL+EmployeeServiceUpdateEmployeeProcedure, opts...),
		deleteEmployee: connect.NewClient[api.DeleteEmployeeRequest, api.DeleteEmployeeResponse](httpClient, baseURL+EmployeeServiceDeleteEmployeeProcedure, opts...),
	}
}

type employeeServiceClient struct {
	createEmployee *connect.Client[api.CreateEmployeeRequest, api.CreateEmployeeResponse]
	getEmployee    *connect.Client[api.GetEmployeeRequest, api.GetEmployeeResponse]
	listEmployees  *connect.Client[api.ListEmployeesRequest, api.ListEmployeesResponse]
	updateEmployee *connect.Client[api.UpdateEmployeeRequest, api.UpdateEmployeeResponse]
	deleteEmployee *connect.Client[api.DeleteEmployeeRequest, api.DeleteEmployeeResponse]
}

func (c *employeeServiceClient) CreateEmployee(ctx context.Context, req *connect.Request[api.CreateEmployeeRequest]) (*connect.Response[api.CreateEmployeeResponse], error) {
	return c.createEmployee.CallUnary(ctx, req)
}

func (c *employeeServiceClient) GetEmployee(ctx context.Context, req *connect.Request[api.GetEmployeeRequest]) (*connect.Response[api.GetEmployeeResponse], error) {
	return c.getEmployee.CallUnary(ctx, req)
}

func (c *employeeServiceClient) ListEmployees(ctx context.Context, req *connect.Request[api.ListEmployeesRequest]) (*connect.Response[api.ListEmployeesResponse], error) {
	return c.listEmployees.CallUnary(ctx, req)
}

func (c *employeeServiceClient) UpdateEmployee(ctx context.Context, req *connect.Request[api.UpdateEmployeeRequest]) (*connect.Response[api.UpdateEmployeeResponse], error) {
	return c.updateEmployee.CallUnary(ctx, req)
}

func (c *employeeServiceClient) DeleteEmployee(ctx context.Context, req *connect.Request[api.DeleteEmployeeRequest]) (*connect.Response[api.DeleteEmployeeResponse], error) {
	return c.deleteEmployee.CallUnary(ctx, req)
}

// UnimplementedEmployeeServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedEmployeeServiceHandler struct{}

func (UnimplementedEmployeeServiceHandler) CreateEmployee(context.Context, *connect.Request[api.CreateEmployeeRequest]) (*connect.Response[api.CreateEmployeeResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tippool.v1.EmployeeService.CreateEmployee is not implemented"))
}

func (UnimplementedEmployeeServiceHandler) GetEmployee(context.Context, *connect.Request[api.GetEmployeeRequest]) (*connect.Response[api.GetEmployeeResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tippool.v1.EmployeeService.GetEmployee is not implemented"))
}

func (UnimplementedEmployeeServiceHandler) ListEmployees(context.Context, *connect.Request[api.ListEmployeesRequest]) (*connect.Response[api.ListEmployeesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tippool.v1.EmployeeService.ListEmployees is not implemented"))
}

func (UnimplementedEmployeeServiceHandler) UpdateEmployee(context.Context, *connect.Request[api.UpdateEmployeeRequest]) (*connect.Response[api.UpdateEmployeeResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tippool.v1.EmployeeService.UpdateEmployee is not implemented"))
}

func (UnimplementedEmployeeServiceHandler) DeleteEmployee(context.Context, *connect.Request[api.DeleteEmployeeRequest]) (*connect.Response[api.DeleteEmployeeResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tippool.v1.EmployeeService.DeleteEmployee is not implemented"))
}
