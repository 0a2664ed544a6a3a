package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/tippool/internal/middleware"
	"github.com/mmynk/tippool/internal/storage/sqlite"
	"github.com/mmynk/tippool/pkg/api"
	"github.com/mmynk/tippool/pkg/api/apiconnect"
)

// setupTestServer starts both services over a temp-file SQLite database.
func setupTestServer(t *testing.T, opts ...connect.HandlerOption) (apiconnect.EmployeeServiceClient, apiconnect.TipServiceClient) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "tippool-service-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	opts = append([]connect.HandlerOption{connect.WithInterceptors(middleware.LoggingInterceptor())}, opts...)

	mux := http.NewServeMux()
	employeePath, employeeHandler := apiconnect.NewEmployeeServiceHandler(NewEmployeeService(store), opts...)
	mux.Handle(employeePath, employeeHandler)
	tipPath, tipHandler := apiconnect.NewTipServiceHandler(NewTipService(store), opts...)
	mux.Handle(tipPath, tipHandler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return apiconnect.NewEmployeeServiceClient(http.DefaultClient, server.URL),
		apiconnect.NewTipServiceClient(http.DefaultClient, server.URL)
}

func mustCreateEmployee(t *testing.T, client apiconnect.EmployeeServiceClient, name, role string) *api.Employee {
	t.Helper()
	resp, err := client.CreateEmployee(context.Background(), connect.NewRequest(&api.CreateEmployeeRequest{
		Name: name,
		Role: role,
	}))
	if err != nil {
		t.Fatalf("CreateEmployee(%s) failed: %v", name, err)
	}
	return resp.Msg.Employee
}

func expectCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Errorf("expected code %v, got %v (%v)", want, got, err)
	}
}

func intPtr(v int) *int {
	return &v
}
