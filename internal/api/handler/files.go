package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"laporpak/backend/internal/files"

	"github.com/gin-gonic/gin"
)

// DownloadLampiran streams attachment bytes. Video attachments honor the
// Range header with 206 partial content; everything else is served whole.
func (h *Handler) DownloadLampiran(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resolved, err := h.Files.Resolve(id)
	if err != nil {
		switch {
		case errors.Is(err, files.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Lampiran tidak ditemukan"})
		case errors.Is(err, files.ErrFileMissing):
			// Integrity anomaly: the record exists but the bytes are
			// gone. Same 404 to the client, loud log for us.
			log.Printf("ERROR: Attachment %d has no file on disk: %v", id, err)
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "File tidak ditemukan di server"})
		default:
			log.Printf("ERROR: Failed to resolve attachment %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Gagal membuka file"})
		}
		return
	}

	err = h.Files.Stream(c.Writer, resolved, c.GetHeader("Range"))
	if err != nil {
		switch {
		case errors.Is(err, files.ErrBadRange):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Range tidak valid"})
		case errors.Is(err, files.ErrRangeNotSatisfiable):
			c.Header("Content-Range", "bytes */"+itoa(resolved.Size))
			c.JSON(http.StatusRequestedRangeNotSatisfiable, gin.H{"success": false, "message": "Range di luar ukuran file"})
		case errors.Is(err, files.ErrFileMissing):
			log.Printf("ERROR: Attachment %d disappeared between resolve and stream: %v", id, err)
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "File tidak ditemukan di server"})
		default:
			// Headers are usually already out here (client hung up
			// mid-stream); logging is all that remains.
			log.Printf("ERROR: Streaming attachment %d failed: %v", id, err)
		}
	}
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
