package files_test

import (
	"testing"

	"laporpak/backend/internal/files"

	"github.com/stretchr/testify/assert"
)

func TestParseRange(t *testing.T) {
	const size = 1000

	tests := []struct {
		name      string
		header    string
		wantStart int64
		wantEnd   int64
		wantErr   error
	}{
		{name: "explicit window", header: "bytes=0-99", wantStart: 0, wantEnd: 99},
		{name: "open end defaults to EOF", header: "bytes=200-", wantStart: 200, wantEnd: 999},
		{name: "single byte", header: "bytes=999-999", wantStart: 999, wantEnd: 999},
		{name: "end clamped to EOF", header: "bytes=900-5000", wantStart: 900, wantEnd: 999},
		{name: "whitespace tolerated", header: "bytes= 10 - 20", wantStart: 10, wantEnd: 20},
		{name: "non-numeric start", header: "bytes=abc-100", wantErr: files.ErrBadRange},
		{name: "suffix range unsupported", header: "bytes=-500", wantErr: files.ErrBadRange},
		{name: "empty spec", header: "bytes=", wantErr: files.ErrBadRange},
		{name: "end before start", header: "bytes=50-10", wantErr: files.ErrBadRange},
		{name: "non-numeric end", header: "bytes=0-xyz", wantErr: files.ErrBadRange},
		{name: "start at EOF", header: "bytes=1000-", wantErr: files.ErrRangeNotSatisfiable},
		{name: "start beyond EOF", header: "bytes=4242-", wantErr: files.ErrRangeNotSatisfiable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := files.ParseRange(tt.header, size)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStart, r.Start)
			assert.Equal(t, tt.wantEnd, r.End)
		})
	}
}

func TestByteRangeLength(t *testing.T) {
	assert.Equal(t, int64(100), files.ByteRange{Start: 0, End: 99}.Length())
	assert.Equal(t, int64(1), files.ByteRange{Start: 42, End: 42}.Length())
}
