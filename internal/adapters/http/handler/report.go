package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ahsan757/attendance/internal/core/attendance"
	"github.com/ahsan757/attendance/internal/core/report"
)

// ReportHandler はレポート生成エンドポイントです。
type ReportHandler struct {
	reports       report.UseCase
	renderer      report.Renderer
	clock         attendance.Clock
	defaultFormat report.Format
}

// NewReportHandler は ReportHandler を生成します。
func NewReportHandler(reports report.UseCase, renderer report.Renderer, clock attendance.Clock, defaultFormat report.Format) *ReportHandler {
	if clock == nil {
		clock = attendance.NewZoneClock(time.UTC)
	}
	if defaultFormat == "" {
		defaultFormat = report.FormatExcel
	}
	return &ReportHandler{reports: reports, renderer: renderer, clock: clock, defaultFormat: defaultFormat}
}

// Generate は GET /reports/:period を処理し、生成されたファイルを返します。
// period は daily・weekly・monthly のいずれかです。
func (h *ReportHandler) Generate(c *gin.Context) {
	format := h.format(c)
	branchName := c.Query("branch_name")

	var (
		file *report.File
		err  error
	)

	switch c.Param("period") {
	case "daily":
		file, err = h.daily(c, branchName, format)
	case "weekly":
		file, err = h.weekly(c, branchName, format)
	case "monthly":
		file, err = h.monthly(c, branchName, format)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "period must be daily, weekly or monthly"})
		return
	}

	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

func (h *ReportHandler) daily(c *gin.Context, branchName string, format report.Format) (*report.File, error) {
	date, err := h.dateOrToday(c)
	if err != nil {
		return nil, err
	}

	daily, err := h.reports.Daily(c.Request.Context(), date, branchName)
	if err != nil {
		return nil, err
	}
	return h.renderer.RenderDaily(daily, format)
}

func (h *ReportHandler) weekly(c *gin.Context, branchName string, format report.Format) (*report.File, error) {
	end, err := h.dateOrToday(c)
	if err != nil {
		return nil, err
	}

	weekly, err := h.reports.Weekly(c.Request.Context(), end, branchName)
	if err != nil {
		return nil, err
	}
	return h.renderer.RenderWeekly(weekly, format)
}

func (h *ReportHandler) monthly(c *gin.Context, branchName string, format report.Format) (*report.File, error) {
	now := h.clock.Now()

	year := now.Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: year must be a number", report.ErrInvalidMonth)
		}
		year = parsed
	}

	month := now.Month()
	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: month must be a number", report.ErrInvalidMonth)
		}
		month = time.Month(parsed)
	}

	monthly, err := h.reports.Monthly(c.Request.Context(), year, month, branchName)
	if err != nil {
		return nil, err
	}
	return h.renderer.RenderMonthly(monthly, format)
}

// dateOrToday は date クエリ (DD_MM_YYYY) を解析し、未指定なら当日を返します。
func (h *ReportHandler) dateOrToday(c *gin.Context) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return attendance.DateOf(h.clock.Now()), nil
	}
	parsed, err := time.Parse(attendance.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be DD_MM_YYYY", errInvalidDate)
	}
	return parsed, nil
}

func (h *ReportHandler) format(c *gin.Context) report.Format {
	switch c.Query("format") {
	case "excel":
		return report.FormatExcel
	case "csv":
		return report.FormatCSV
	default:
		return h.defaultFormat
	}
}
