package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ahsan757/attendance/internal/core/report"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type stubReportUseCase struct {
	daily   *report.DailyReport
	weekly  *report.WeeklyReport
	monthly *report.MonthlyReport
	err     error

	gotDate   time.Time
	gotBranch string
	gotYear   int
	gotMonth  time.Month
}

func (s *stubReportUseCase) Daily(_ context.Context, date time.Time, branchName string) (*report.DailyReport, error) {
	s.gotDate = date
	s.gotBranch = branchName
	if s.err != nil {
		return nil, s.err
	}
	return s.daily, nil
}

func (s *stubReportUseCase) Weekly(_ context.Context, end time.Time, branchName string) (*report.WeeklyReport, error) {
	s.gotDate = end
	s.gotBranch = branchName
	if s.err != nil {
		return nil, s.err
	}
	return s.weekly, nil
}

func (s *stubReportUseCase) Monthly(_ context.Context, year int, month time.Month, branchName string) (*report.MonthlyReport, error) {
	s.gotYear = year
	s.gotMonth = month
	s.gotBranch = branchName
	if s.err != nil {
		return nil, s.err
	}
	return s.monthly, nil
}

type stubRenderer struct {
	gotFormat report.Format
}

func (r *stubRenderer) RenderDaily(_ *report.DailyReport, format report.Format) (*report.File, error) {
	r.gotFormat = format
	return &report.File{Name: "daily.xlsx", ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", Data: []byte("file")}, nil
}

func (r *stubRenderer) RenderWeekly(_ *report.WeeklyReport, format report.Format) (*report.File, error) {
	r.gotFormat = format
	return &report.File{Name: "weekly.csv", ContentType: "text/csv", Data: []byte("file")}, nil
}

func (r *stubRenderer) RenderMonthly(_ *report.MonthlyReport, format report.Format) (*report.File, error) {
	r.gotFormat = format
	return &report.File{Name: "monthly.xlsx", ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", Data: []byte("file")}, nil
}

func newReportRouter(uc report.UseCase, renderer report.Renderer, clock fixedClock) *gin.Engine {
	r := gin.New()
	r.GET("/reports/:period", NewReportHandler(uc, renderer, clock, report.FormatExcel).Generate)
	return r
}

func TestReportGenerate_DailyWithExplicitDate(t *testing.T) {
	t.Parallel()

	uc := &stubReportUseCase{daily: &report.DailyReport{}}
	renderer := &stubRenderer{}
	clock := fixedClock{now: time.Date(2025, 7, 20, 10, 0, 0, 0, time.UTC)}

	req := httptest.NewRequest(http.MethodGet, "/reports/daily?date=14_07_2025&branch_name=Karachi_Clifton", nil)
	rec := httptest.NewRecorder()
	newReportRouter(uc, renderer, clock).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if !uc.gotDate.Equal(time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected report date: %v", uc.gotDate)
	}
	if uc.gotBranch != "Karachi_Clifton" {
		t.Errorf("unexpected branch filter: %s", uc.gotBranch)
	}
	if renderer.gotFormat != report.FormatExcel {
		t.Errorf("expected default excel format, got %s", renderer.gotFormat)
	}

	if disposition := rec.Header().Get("Content-Disposition"); disposition != `attachment; filename="daily.xlsx"` {
		t.Errorf("unexpected content disposition: %s", disposition)
	}
}

func TestReportGenerate_WeeklyDefaultsToToday(t *testing.T) {
	t.Parallel()

	uc := &stubReportUseCase{weekly: &report.WeeklyReport{}}
	renderer := &stubRenderer{}
	clock := fixedClock{now: time.Date(2025, 7, 20, 10, 0, 0, 0, time.UTC)}

	req := httptest.NewRequest(http.MethodGet, "/reports/weekly?format=csv", nil)
	rec := httptest.NewRecorder()
	newReportRouter(uc, renderer, clock).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if !uc.gotDate.Equal(time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected today as week end, got %v", uc.gotDate)
	}
	if renderer.gotFormat != report.FormatCSV {
		t.Errorf("expected csv format, got %s", renderer.gotFormat)
	}
}

func TestReportGenerate_MonthlyWithYearAndMonth(t *testing.T) {
	t.Parallel()

	uc := &stubReportUseCase{monthly: &report.MonthlyReport{}}
	renderer := &stubRenderer{}
	clock := fixedClock{now: time.Date(2025, 7, 20, 10, 0, 0, 0, time.UTC)}

	req := httptest.NewRequest(http.MethodGet, "/reports/monthly?year=2025&month=6", nil)
	rec := httptest.NewRecorder()
	newReportRouter(uc, renderer, clock).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if uc.gotYear != 2025 || uc.gotMonth != time.June {
		t.Errorf("unexpected year/month: %d/%v", uc.gotYear, uc.gotMonth)
	}
}

func TestReportGenerate_NoDataIs404(t *testing.T) {
	t.Parallel()

	uc := &stubReportUseCase{err: report.ErrNoData}
	renderer := &stubRenderer{}
	clock := fixedClock{now: time.Date(2025, 7, 20, 10, 0, 0, 0, time.UTC)}

	req := httptest.NewRequest(http.MethodGet, "/reports/daily", nil)
	rec := httptest.NewRecorder()
	newReportRouter(uc, renderer, clock).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestReportGenerate_UnknownPeriod(t *testing.T) {
	t.Parallel()

	uc := &stubReportUseCase{}
	renderer := &stubRenderer{}
	clock := fixedClock{now: time.Date(2025, 7, 20, 10, 0, 0, 0, time.UTC)}

	req := httptest.NewRequest(http.MethodGet, "/reports/yearly", nil)
	rec := httptest.NewRecorder()
	newReportRouter(uc, renderer, clock).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestReportGenerate_BadDate(t *testing.T) {
	t.Parallel()

	uc := &stubReportUseCase{daily: &report.DailyReport{}}
	renderer := &stubRenderer{}
	clock := fixedClock{now: time.Date(2025, 7, 20, 10, 0, 0, 0, time.UTC)}

	req := httptest.NewRequest(http.MethodGet, "/reports/daily?date=2025-07-14", nil)
	rec := httptest.NewRecorder()
	newReportRouter(uc, renderer, clock).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
