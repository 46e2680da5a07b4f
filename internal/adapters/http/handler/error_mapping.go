package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahsan757/attendance/internal/core/attendance"
	"github.com/ahsan757/attendance/internal/core/branch"
	"github.com/ahsan757/attendance/internal/core/employee"
	"github.com/ahsan757/attendance/internal/core/report"
	"github.com/ahsan757/attendance/internal/core/salary"
)

// errInvalidDate はクエリパラメータの日付が解析できない場合のエラーです。
var errInvalidDate = errors.New("handler: invalid date parameter")

// statusFromError はドメインエラーを HTTP ステータスコードへ対応付けます。
func statusFromError(err error) int {
	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, branch.ErrBranchNotFound),
		errors.Is(err, attendance.ErrRecordNotFound),
		errors.Is(err, report.ErrNoData):
		return http.StatusNotFound
	case errors.Is(err, employee.ErrInvalidName),
		errors.Is(err, employee.ErrInvalidHourlyRate),
		errors.Is(err, employee.ErrInvalidStatus),
		errors.Is(err, branch.ErrInvalidBranchName),
		errors.Is(err, branch.ErrInvalidDeviceIP),
		errors.Is(err, salary.ErrInvalidDateRange),
		errors.Is(err, salary.ErrInvalidEmployeeName),
		errors.Is(err, report.ErrInvalidFormat),
		errors.Is(err, report.ErrInvalidMonth),
		errors.Is(err, attendance.ErrMalformedEvent),
		errors.Is(err, errInvalidDate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), gin.H{"error": err.Error()})
}
