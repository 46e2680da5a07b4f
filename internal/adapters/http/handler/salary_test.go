package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ahsan757/attendance/internal/core/employee"
	"github.com/ahsan757/attendance/internal/core/salary"
)

type stubSalaryUseCase struct {
	result   *salary.Result
	err      error
	gotName  string
	gotStart time.Time
	gotEnd   time.Time
}

func (s *stubSalaryUseCase) Calculate(_ context.Context, name string, start, end time.Time) (*salary.Result, error) {
	s.gotName = name
	s.gotStart = start
	s.gotEnd = end
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newSalaryRouter(uc salary.UseCase) *gin.Engine {
	r := gin.New()
	r.GET("/salary/calculate/:employee_name", NewSalaryHandler(uc).Calculate)
	return r
}

func TestSalaryCalculate_Success(t *testing.T) {
	t.Parallel()

	uc := &stubSalaryUseCase{result: &salary.Result{
		EmployeeName: "Ali Raza",
		HourlyRate:   decimal.NewFromInt(10),
		TotalHours:   16,
		DaysPresent:  2,
		TotalPay:     decimal.NewFromInt(160),
		Period:       "2025-07-01 to 2025-07-31",
	}}

	req := httptest.NewRequest(http.MethodGet, "/salary/calculate/Ali%20Raza?start_date=01_07_2025&end_date=31_07_2025", nil)
	rec := httptest.NewRecorder()
	newSalaryRouter(uc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if uc.gotName != "Ali Raza" {
		t.Errorf("unexpected employee name: %s", uc.gotName)
	}
	if !uc.gotStart.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start date: %v", uc.gotStart)
	}
	if !uc.gotEnd.Equal(time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected end date: %v", uc.gotEnd)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["total_pay"] != 160.0 {
		t.Errorf("unexpected total_pay: %v", body["total_pay"])
	}
	if body["days_present"] != 2.0 {
		t.Errorf("unexpected days_present: %v", body["days_present"])
	}
}

func TestSalaryCalculate_MissingDates(t *testing.T) {
	t.Parallel()

	uc := &stubSalaryUseCase{}
	req := httptest.NewRequest(http.MethodGet, "/salary/calculate/Ali%20Raza", nil)
	rec := httptest.NewRecorder()
	newSalaryRouter(uc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSalaryCalculate_UnknownEmployee(t *testing.T) {
	t.Parallel()

	uc := &stubSalaryUseCase{err: employee.ErrEmployeeNotFound}
	req := httptest.NewRequest(http.MethodGet, "/salary/calculate/Ghost?start_date=01_07_2025&end_date=31_07_2025", nil)
	rec := httptest.NewRecorder()
	newSalaryRouter(uc).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
