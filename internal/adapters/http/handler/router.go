package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers はルータが束ねるエンドポイント群です。
type Handlers struct {
	Event    *EventHandler
	Employee *EmployeeHandler
	Branch   *BranchHandler
	Salary   *SalaryHandler
	Report   *ReportHandler
}

// NewRouter は全エンドポイントを登録した gin.Engine を構築します。
func NewRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/event", h.Event.ProcessEvent)

	employees := r.Group("/employees")
	{
		employees.POST("", h.Employee.Upsert)
		employees.GET("", h.Employee.List)
		employees.GET("/:name", h.Employee.Get)
		employees.DELETE("/:name", h.Employee.Delete)
	}

	branches := r.Group("/branches")
	{
		branches.POST("", h.Branch.Upsert)
		branches.GET("", h.Branch.List)
		branches.DELETE("/:device_ip", h.Branch.Delete)
	}

	r.GET("/salary/calculate/:employee_name", h.Salary.Calculate)
	r.GET("/reports/:period", h.Report.Generate)

	return r
}
