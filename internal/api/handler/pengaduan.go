package handler

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"laporpak/backend/internal/api/middleware"
	"laporpak/backend/internal/lifecycle"
	"laporpak/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// respondLifecycleError maps lifecycle errors onto HTTP status codes.
// Anything outside the taxonomy is a storage failure: logged with context,
// surfaced as a generic 500.
func respondLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, lifecycle.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Pengaduan tidak ditemukan"})
	case errors.Is(err, lifecycle.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Forbidden"})
	case errors.Is(err, lifecycle.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": err.Error()})
	default:
		log.Printf("ERROR: Lifecycle operation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
	}
}

// ListPengaduan returns a paginated, searchable complaint list. Leadership
// only sees complaints relevant to approval.
func (h *Handler) ListPengaduan(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	search := c.Query("search")

	// Clamp at the boundary so totalPages is computed from the page size
	// that is actually served, not the raw query value.
	page, limit = lifecycle.ClampPage(page, limit)

	complaints, total, err := h.Lifecycle.List(page, limit, search, principal.Role)
	if err != nil {
		respondLifecycleError(c, err)
		return
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"pengaduan":  complaints,
			"total":      total,
			"totalPages": totalPages,
		},
	})
}

// GetPengaduan returns one complaint with requester, category and
// attachments joined.
func (h *Handler) GetPengaduan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := h.Lifecycle.GetDetail(id)
	if err != nil {
		respondLifecycleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": detail})
}

// VerifyPengaduan records the admin's accept/reject decision.
func (h *Handler) VerifyPengaduan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input struct {
		Status models.Status `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Status wajib diisi"})
		return
	}
	if input.Status != models.StatusReceived && input.Status != models.StatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Status harus received atau rejected"})
		return
	}

	principal, _ := middleware.GetPrincipal(c)
	updated, err := h.Lifecycle.Verify(id, input.Status, principal.Role)
	if err != nil {
		respondLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Status pengaduan berhasil diverifikasi",
		"data":    updated,
	})
}

// ApprovePengaduan marks a complaint approved for execution. The target
// status is fixed; the endpoint takes no body.
func (h *Handler) ApprovePengaduan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	principal, _ := middleware.GetPrincipal(c)
	updated, err := h.Lifecycle.Approve(id, principal.Role)
	if err != nil {
		respondLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Aduan disetujui untuk dilaksanakan",
		"data":    updated,
	})
}

// CompletePengaduan closes an approved complaint.
func (h *Handler) CompletePengaduan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	principal, _ := middleware.GetPrincipal(c)
	updated, err := h.Lifecycle.Complete(id, principal.Role)
	if err != nil {
		respondLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Aduan berhasil ditandai SELESAI.",
		"data":    updated,
	})
}

// UploadLampiran stores an uploaded file under a generated name and records
// the attachment.
func (h *Handler) UploadLampiran(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.Lifecycle.GetDetail(id); err != nil {
		respondLifecycleError(c, err)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Tidak ada file yang diunggah"})
		return
	}

	name := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(h.UploadDir, name)); err != nil {
		log.Printf("ERROR: Failed to store upload for complaint %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Gagal mengunggah lampiran"})
		return
	}

	attachment := &models.Attachment{ComplaintID: id, FilePath: name}
	if err := h.Storage.CreateAttachment(attachment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Gagal mengunggah lampiran"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Lampiran berhasil diunggah",
		"lampiran": attachment,
	})
}
