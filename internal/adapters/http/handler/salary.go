package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ahsan757/attendance/internal/core/attendance"
	"github.com/ahsan757/attendance/internal/core/salary"
)

// SalaryHandler は給与計算エンドポイントです。
type SalaryHandler struct {
	salaries salary.UseCase
}

// NewSalaryHandler は SalaryHandler を生成します。
func NewSalaryHandler(salaries salary.UseCase) *SalaryHandler {
	return &SalaryHandler{salaries: salaries}
}

// Calculate は GET /salary/calculate/:employee_name を処理します。
// start_date・end_date は DD_MM_YYYY 形式のクエリパラメータで指定します。
func (h *SalaryHandler) Calculate(c *gin.Context) {
	start, err := parseQueryDate(c, "start_date")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	end, err := parseQueryDate(c, "end_date")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.salaries.Calculate(c.Request.Context(), c.Param("employee_name"), start, end)
	if err != nil {
		respondError(c, err)
		return
	}

	rate, _ := result.HourlyRate.Float64()
	pay, _ := result.TotalPay.Float64()
	c.JSON(http.StatusOK, gin.H{
		"employee_name": result.EmployeeName,
		"hourly_rate":   rate,
		"total_hours":   result.TotalHours,
		"days_present":  result.DaysPresent,
		"total_pay":     pay,
		"period":        result.Period,
	})
}

func parseQueryDate(c *gin.Context, key string) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%s is required (DD_MM_YYYY)", key)
	}
	parsed, err := time.Parse(attendance.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be DD_MM_YYYY: %v", key, err)
	}
	return parsed, nil
}
