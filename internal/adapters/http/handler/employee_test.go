package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ahsan757/attendance/internal/core/employee"
)

type stubEmployeeUseCase struct {
	upserted *employee.UpsertEmployeeInput
	stored   map[string]*employee.Employee
}

func (s *stubEmployeeUseCase) UpsertEmployee(_ context.Context, in employee.UpsertEmployeeInput) (*employee.Employee, error) {
	s.upserted = &in
	status := employee.StatusActive
	if in.Status != nil {
		status = *in.Status
	}
	return &employee.Employee{
		Name:        in.Name,
		HourlyRate:  in.HourlyRate,
		Position:    in.Position,
		JoiningDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Status:      status,
	}, nil
}

func (s *stubEmployeeUseCase) GetEmployee(_ context.Context, name string) (*employee.Employee, error) {
	found, ok := s.stored[name]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return found, nil
}

func (s *stubEmployeeUseCase) ListEmployees(context.Context) ([]*employee.Employee, error) {
	out := make([]*employee.Employee, 0, len(s.stored))
	for _, e := range s.stored {
		out = append(out, e)
	}
	return out, nil
}

func (s *stubEmployeeUseCase) DeleteEmployee(_ context.Context, name string) error {
	if _, ok := s.stored[name]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(s.stored, name)
	return nil
}

func newEmployeeRouter(uc employee.UseCase) *gin.Engine {
	r := gin.New()
	h := NewEmployeeHandler(uc)
	r.POST("/employees", h.Upsert)
	r.GET("/employees", h.List)
	r.GET("/employees/:name", h.Get)
	r.DELETE("/employees/:name", h.Delete)
	return r
}

func TestEmployeeUpsert_Success(t *testing.T) {
	t.Parallel()

	uc := &stubEmployeeUseCase{stored: map[string]*employee.Employee{}}
	body := `{"name":"Sara Khan","hourly_rate":12.5,"position":"Manager"}`

	req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newEmployeeRouter(uc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if uc.upserted == nil {
		t.Fatal("usecase not invoked")
	}
	if !uc.upserted.HourlyRate.Equal(decimal.NewFromFloat(12.5)) {
		t.Errorf("unexpected hourly rate: %s", uc.upserted.HourlyRate)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["name"] != "Sara Khan" || resp["position"] != "Manager" {
		t.Errorf("unexpected response: %v", resp)
	}
}

func TestEmployeeUpsert_InvalidBody(t *testing.T) {
	t.Parallel()

	uc := &stubEmployeeUseCase{stored: map[string]*employee.Employee{}}
	req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newEmployeeRouter(uc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEmployeeGet_NotFound(t *testing.T) {
	t.Parallel()

	uc := &stubEmployeeUseCase{stored: map[string]*employee.Employee{}}
	req := httptest.NewRequest(http.MethodGet, "/employees/Unknown", nil)
	rec := httptest.NewRecorder()
	newEmployeeRouter(uc).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestEmployeeDelete_Success(t *testing.T) {
	t.Parallel()

	uc := &stubEmployeeUseCase{stored: map[string]*employee.Employee{
		"Sara Khan": {Name: "Sara Khan", HourlyRate: decimal.NewFromInt(10), Status: employee.StatusActive},
	}}

	req := httptest.NewRequest(http.MethodDelete, "/employees/Sara%20Khan", nil)
	rec := httptest.NewRecorder()
	newEmployeeRouter(uc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if _, ok := uc.stored["Sara Khan"]; ok {
		t.Error("employee was not deleted")
	}
}
