// Package files resolves stored complaint attachments and streams their
// bytes to HTTP clients. Videos get byte-range (206) delivery so mobile
// players can seek; every other media type is always served whole, with the
// Range header ignored.
package files

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"laporpak/backend/internal/models"
	"laporpak/backend/internal/storage"
)

// AttachmentStore is the slice of storage the delivery service needs.
type AttachmentStore interface {
	GetAttachment(id uint) (*models.Attachment, error)
}

// Delivery serves attachment bytes from the upload directory.
type Delivery struct {
	Store AttachmentStore
	// Root is the directory attachment FilePaths are relative to.
	Root string
}

// NewDelivery creates a delivery service over the given store and upload
// directory.
func NewDelivery(store AttachmentStore, root string) *Delivery {
	return &Delivery{Store: store, Root: root}
}

// ResolvedAttachment is an attachment record whose file has been confirmed
// present on disk.
type ResolvedAttachment struct {
	Attachment *models.Attachment
	Path       string
	Size       int64
}

// Resolve looks up the attachment record and stats its file. A missing
// record yields ErrNotFound; a record whose file is gone yields
// ErrFileMissing.
func (d *Delivery) Resolve(id uint) (*ResolvedAttachment, error) {
	attachment, err := d.Store.GetAttachment(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	path := filepath.Join(d.Root, attachment.FilePath)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileMissing, attachment.FilePath)
		}
		return nil, err
	}

	return &ResolvedAttachment{Attachment: attachment, Path: path, Size: info.Size()}, nil
}

// Stream writes the attachment body to w. The media type is sniffed from
// the file content, never taken from the client. When the sniffed type is a
// video and a Range header was supplied, only the requested byte window is
// sent as 206 partial content; in every other case the whole file is sent
// as 200. Range errors are returned before anything is written, so the
// caller can still set a status code. The file handle is closed on all
// paths.
func (d *Delivery) Stream(w http.ResponseWriter, resolved *ResolvedAttachment, rangeHeader string) error {
	f, err := os.Open(resolved.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileMissing, resolved.Attachment.FilePath)
		}
		return err
	}
	defer f.Close()

	contentType, err := sniffContentType(f)
	if err != nil {
		return err
	}

	if strings.HasPrefix(contentType, "video") && rangeHeader != "" {
		byteRange, err := ParseRange(rangeHeader, resolved.Size)
		if err != nil {
			return err
		}
		if _, err := f.Seek(byteRange.Start, io.SeekStart); err != nil {
			return err
		}

		w.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", byteRange.Start, byteRange.End, resolved.Size))
		w.Header().Set("Accept-Ranges", "bytes")
		w.Header().Set("Content-Length", strconv.FormatInt(byteRange.Length(), 10))
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusPartialContent)

		_, err = io.CopyN(w, f, byteRange.Length())
		return err
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.FormatInt(resolved.Size, 10))
	w.WriteHeader(http.StatusOK)

	_, err = io.Copy(w, f)
	return err
}

// sniffContentType reads the first 512 bytes for http.DetectContentType and
// rewinds the file.
func sniffContentType(f *os.File) (string, error) {
	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}
