package files

import (
	"fmt"
	"strconv"
	"strings"
)

// ByteRange is an inclusive byte window [Start, End] within a file.
type ByteRange struct {
	Start int64
	End   int64
}

// Length returns the number of bytes the range covers.
func (r ByteRange) Length() int64 {
	return r.End - r.Start + 1
}

// ParseRange parses an HTTP Range header value against the file size.
// Only a single "bytes=start-end" spec is supported; the end defaults to
// size-1 when omitted and is clamped to size-1 when it overshoots.
// A non-numeric or negative start (including suffix ranges like
// "bytes=-500") yields ErrBadRange; a start at or beyond the file size
// yields ErrRangeNotSatisfiable.
func ParseRange(header string, size int64) (ByteRange, error) {
	spec := strings.TrimSpace(strings.TrimPrefix(header, "bytes="))
	startPart, endPart, _ := strings.Cut(spec, "-")

	start, err := strconv.ParseInt(strings.TrimSpace(startPart), 10, 64)
	if err != nil || start < 0 {
		return ByteRange{}, fmt.Errorf("%w: %q", ErrBadRange, header)
	}
	if start >= size {
		return ByteRange{}, fmt.Errorf("%w: start %d beyond size %d", ErrRangeNotSatisfiable, start, size)
	}

	end := size - 1
	if trimmed := strings.TrimSpace(endPart); trimmed != "" {
		end, err = strconv.ParseInt(trimmed, 10, 64)
		if err != nil || end < start {
			return ByteRange{}, fmt.Errorf("%w: %q", ErrBadRange, header)
		}
		if end > size-1 {
			end = size - 1
		}
	}

	return ByteRange{Start: start, End: end}, nil
}
