package handler

import (
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahsan757/attendance/internal/core/attendance"
)

// EventHandler はデバイスイベントの受信エンドポイントです。
type EventHandler struct {
	events attendance.UseCase
}

// NewEventHandler は EventHandler を生成します。
func NewEventHandler(events attendance.UseCase) *EventHandler {
	return &EventHandler{events: events}
}

// ProcessEvent は POST /event を処理します。デバイスは応答コードを解釈しない
// ため、受理したイベントには常に 200 を返し、失敗はペイロードで表現します。
func (h *EventHandler) ProcessEvent(c *gin.Context) {
	raw, err := h.payload(c)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "error": err.Error()})
		return
	}

	ev, err := attendance.ParseDeviceEvent(raw)
	if err != nil {
		log.Printf("event: discarded malformed payload: %v", err)
		c.JSON(http.StatusOK, gin.H{"status": "error", "error": err.Error()})
		return
	}

	result, err := h.events.ProcessEvent(c.Request.Context(), ev)
	if err != nil {
		log.Printf("event: processing failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"status": "error", "error": err.Error()})
		return
	}

	h.audit(result)
	c.JSON(http.StatusOK, eventResponse(result))
}

// payload は multipart/form の event_log フィールドを優先し、
// なければリクエストボディをそのまま返します。
func (h *EventHandler) payload(c *gin.Context) ([]byte, error) {
	if field, ok := c.GetPostForm("event_log"); ok {
		return []byte(field), nil
	}
	if file, err := c.FormFile("event_log"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	return io.ReadAll(c.Request.Body)
}

func (h *EventHandler) audit(result *attendance.Result) {
	switch {
	case result.Action == attendance.ActionCheckIn:
		log.Printf("event %s: %s checked in at %s [%s]", result.ReceiptID, result.Employee, result.Time, result.Branch)
	case result.Action == attendance.ActionCheckOut:
		log.Printf("event %s: %s checked out at %s [%s] total %.2fh", result.ReceiptID, result.Employee, result.Time, result.Branch, result.TotalHours)
	default:
		log.Printf("event %s: ignored (%s)", result.ReceiptID, result.Reason)
	}
}

func eventResponse(result *attendance.Result) gin.H {
	body := gin.H{
		"status":     string(result.Status),
		"receipt_id": result.ReceiptID,
	}
	if result.Action != "" {
		body["action"] = string(result.Action)
	}
	if result.Reason != "" {
		body["reason"] = string(result.Reason)
	}
	if result.Time != "" {
		body["time"] = result.Time
	}
	if result.Branch != "" {
		body["branch"] = result.Branch
	}
	if result.Employee != "" {
		body["employee"] = result.Employee
	}
	if result.Action == attendance.ActionCheckOut {
		body["total_hours"] = result.TotalHours
	}
	return body
}
