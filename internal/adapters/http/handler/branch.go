package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahsan757/attendance/internal/core/branch"
)

// BranchHandler はブランチディレクトリの管理エンドポイントです。
type BranchHandler struct {
	branches branch.UseCase
}

// NewBranchHandler は BranchHandler を生成します。
func NewBranchHandler(branches branch.UseCase) *BranchHandler {
	return &BranchHandler{branches: branches}
}

type upsertBranchRequest struct {
	BranchName   string `json:"branch_name"`
	DeviceIP     string `json:"device_ip"`
	DeviceSerial int64  `json:"device_serial"`
}

type branchResponse struct {
	BranchName   string `json:"branch_name"`
	DeviceIP     string `json:"device_ip"`
	DeviceSerial int64  `json:"device_serial"`
}

// Upsert は POST /branches を処理します。
func (h *BranchHandler) Upsert(c *gin.Context) {
	var req upsertBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}

	created, err := h.branches.UpsertBranch(c.Request.Context(), branch.UpsertBranchInput{
		BranchName:   req.BranchName,
		DeviceIP:     req.DeviceIP,
		DeviceSerial: req.DeviceSerial,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBranchResponse(created))
}

// List は GET /branches を処理します。
func (h *BranchHandler) List(c *gin.Context) {
	branches, err := h.branches.ListBranches(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]branchResponse, 0, len(branches))
	for _, b := range branches {
		out = append(out, toBranchResponse(b))
	}
	c.JSON(http.StatusOK, gin.H{"branches": out})
}

// Delete は DELETE /branches/:device_ip を処理します。
func (h *BranchHandler) Delete(c *gin.Context) {
	if err := h.branches.DeleteBranch(c.Request.Context(), c.Param("device_ip")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func toBranchResponse(b *branch.Branch) branchResponse {
	return branchResponse{
		BranchName:   b.BranchName,
		DeviceIP:     b.DeviceIP,
		DeviceSerial: b.DeviceSerial,
	}
}
