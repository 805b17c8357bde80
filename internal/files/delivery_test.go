package files_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"laporpak/backend/internal/files"
	"laporpak/backend/internal/models"
	"laporpak/backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	attachment *models.Attachment
	err        error
}

func (s stubStore) GetAttachment(id uint) (*models.Attachment, error) {
	return s.attachment, s.err
}

// mp4Bytes builds a buffer that http.DetectContentType sniffs as video/mp4:
// a 12-byte ftyp box with the mp42 brand, padded with a repeating pattern so
// range assertions can check actual content.
func mp4Bytes(size int) []byte {
	b := make([]byte, size)
	copy(b, []byte{0x00, 0x00, 0x00, 0x0c})
	copy(b[4:], "ftypmp42")
	for i := 12; i < size; i++ {
		b[i] = byte(i % 251)
	}
	return b
}

func pngBytes(size int) []byte {
	b := make([]byte, size)
	copy(b, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})
	return b
}

func writeFixture(t *testing.T, name string, content []byte) *files.ResolvedAttachment {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return &files.ResolvedAttachment{
		Attachment: &models.Attachment{FilePath: name},
		Path:       path,
		Size:       int64(len(content)),
	}
}

func TestStreamVideoRange(t *testing.T) {
	content := mp4Bytes(1000)
	resolved := writeFixture(t, "clip.mp4", content)
	d := files.NewDelivery(stubStore{}, "")

	rec := httptest.NewRecorder()
	err := d.Stream(rec, resolved, "bytes=0-99")

	require.NoError(t, err)
	assert.Equal(t, http.StatusPartialContent, rec.Code)
	assert.Equal(t, "bytes 0-99/1000", rec.Header().Get("Content-Range"))
	assert.Equal(t, "bytes", rec.Header().Get("Accept-Ranges"))
	assert.Equal(t, "100", rec.Header().Get("Content-Length"))
	assert.Equal(t, "video/mp4", rec.Header().Get("Content-Type"))
	assert.Equal(t, content[:100], rec.Body.Bytes())
}

func TestStreamVideoRangeMiddleWindow(t *testing.T) {
	content := mp4Bytes(1000)
	resolved := writeFixture(t, "clip.mp4", content)
	d := files.NewDelivery(stubStore{}, "")

	rec := httptest.NewRecorder()
	err := d.Stream(rec, resolved, "bytes=500-599")

	require.NoError(t, err)
	assert.Equal(t, http.StatusPartialContent, rec.Code)
	assert.Equal(t, "bytes 500-599/1000", rec.Header().Get("Content-Range"))
	assert.Equal(t, content[500:600], rec.Body.Bytes())
}

func TestStreamVideoOpenEndedRange(t *testing.T) {
	content := mp4Bytes(1000)
	resolved := writeFixture(t, "clip.mp4", content)
	d := files.NewDelivery(stubStore{}, "")

	rec := httptest.NewRecorder()
	err := d.Stream(rec, resolved, "bytes=900-")

	require.NoError(t, err)
	assert.Equal(t, http.StatusPartialContent, rec.Code)
	assert.Equal(t, "bytes 900-999/1000", rec.Header().Get("Content-Range"))
	assert.Equal(t, content[900:], rec.Body.Bytes())
}

func TestStreamVideoWithoutRange(t *testing.T) {
	content := mp4Bytes(1000)
	resolved := writeFixture(t, "clip.mp4", content)
	d := files.NewDelivery(stubStore{}, "")

	rec := httptest.NewRecorder()
	err := d.Stream(rec, resolved, "")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Range"))
	assert.Equal(t, "1000", rec.Header().Get("Content-Length"))
	assert.Equal(t, content, rec.Body.Bytes())
}

func TestStreamImageIgnoresRange(t *testing.T) {
	content := pngBytes(600)
	resolved := writeFixture(t, "photo.png", content)
	d := files.NewDelivery(stubStore{}, "")

	rec := httptest.NewRecorder()
	err := d.Stream(rec, resolved, "bytes=0-99")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Range"))
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, content, rec.Body.Bytes())
}

func TestStreamBadRangeWritesNothing(t *testing.T) {
	resolved := writeFixture(t, "clip.mp4", mp4Bytes(1000))
	d := files.NewDelivery(stubStore{}, "")

	rec := httptest.NewRecorder()
	err := d.Stream(rec, resolved, "bytes=oops-100")

	assert.ErrorIs(t, err, files.ErrBadRange)
	assert.Zero(t, rec.Body.Len())
}

func TestStreamRangeBeyondEOF(t *testing.T) {
	resolved := writeFixture(t, "clip.mp4", mp4Bytes(1000))
	d := files.NewDelivery(stubStore{}, "")

	rec := httptest.NewRecorder()
	err := d.Stream(rec, resolved, "bytes=5000-")

	assert.ErrorIs(t, err, files.ErrRangeNotSatisfiable)
	assert.Zero(t, rec.Body.Len())
}

func TestStreamMissingFile(t *testing.T) {
	resolved := &files.ResolvedAttachment{
		Attachment: &models.Attachment{FilePath: "gone.mp4"},
		Path:       filepath.Join(t.TempDir(), "gone.mp4"),
		Size:       1000,
	}
	d := files.NewDelivery(stubStore{}, "")

	rec := httptest.NewRecorder()
	err := d.Stream(rec, resolved, "")

	assert.ErrorIs(t, err, files.ErrFileMissing)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	content := pngBytes(321)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "photo.png"), content, 0o644))

	d := files.NewDelivery(stubStore{
		attachment: &models.Attachment{ID: 7, FilePath: "photo.png"},
	}, dir)

	resolved, err := d.Resolve(7)
	require.NoError(t, err)
	assert.Equal(t, int64(321), resolved.Size)
	assert.Equal(t, filepath.Join(dir, "photo.png"), resolved.Path)
}

func TestResolveUnknownAttachment(t *testing.T) {
	d := files.NewDelivery(stubStore{err: storage.ErrNotFound}, t.TempDir())

	_, err := d.Resolve(99)
	assert.ErrorIs(t, err, files.ErrNotFound)
}

func TestResolveFileGoneFromDisk(t *testing.T) {
	d := files.NewDelivery(stubStore{
		attachment: &models.Attachment{ID: 3, FilePath: "vanished.mp4"},
	}, t.TempDir())

	_, err := d.Resolve(3)
	assert.ErrorIs(t, err, files.ErrFileMissing)
}

func TestResolveStorageFailurePassesThrough(t *testing.T) {
	boom := errors.New("connection refused")
	d := files.NewDelivery(stubStore{err: boom}, t.TempDir())

	_, err := d.Resolve(1)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, files.ErrNotFound)
}
