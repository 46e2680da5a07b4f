package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ahsan757/attendance/internal/core/employee"
)

// EmployeeHandler は従業員プロファイルの管理エンドポイントです。
type EmployeeHandler struct {
	employees employee.UseCase
}

// NewEmployeeHandler は EmployeeHandler を生成します。
func NewEmployeeHandler(employees employee.UseCase) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

type upsertEmployeeRequest struct {
	Name       string  `json:"name"`
	HourlyRate float64 `json:"hourly_rate"`
	Position   string  `json:"position"`
	Status     string  `json:"status"`
}

type employeeResponse struct {
	Name        string  `json:"name"`
	HourlyRate  float64 `json:"hourly_rate"`
	Position    string  `json:"position"`
	JoiningDate string  `json:"joining_date"`
	Status      string  `json:"status"`
}

// Upsert は POST /employees を処理します。
func (h *EmployeeHandler) Upsert(c *gin.Context) {
	var req upsertEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}

	in := employee.UpsertEmployeeInput{
		Name:       req.Name,
		HourlyRate: decimal.NewFromFloat(req.HourlyRate),
		Position:   req.Position,
	}
	if req.Status != "" {
		status := employee.Status(req.Status)
		in.Status = &status
	}

	created, err := h.employees.UpsertEmployee(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEmployeeResponse(created))
}

// List は GET /employees を処理します。
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employees.ListEmployees(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]employeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, toEmployeeResponse(e))
	}
	c.JSON(http.StatusOK, gin.H{"employees": out})
}

// Get は GET /employees/:name を処理します。
func (h *EmployeeHandler) Get(c *gin.Context) {
	found, err := h.employees.GetEmployee(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEmployeeResponse(found))
}

// Delete は DELETE /employees/:name を処理します。
func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.employees.DeleteEmployee(c.Request.Context(), c.Param("name")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func toEmployeeResponse(e *employee.Employee) employeeResponse {
	rate, _ := e.HourlyRate.Float64()
	return employeeResponse{
		Name:        e.Name,
		HourlyRate:  rate,
		Position:    e.Position,
		JoiningDate: e.JoiningDate.Format(time.DateOnly),
		Status:      string(e.Status),
	}
}
