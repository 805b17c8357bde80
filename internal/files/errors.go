package files

import "errors"

var (
	// ErrNotFound means no attachment record exists for the id.
	ErrNotFound = errors.New("lampiran not found")
	// ErrFileMissing means the record exists but the bytes are gone from
	// storage. Clients see a 404 like ErrNotFound; the distinction exists
	// for logging, because a missing file is an integrity anomaly.
	ErrFileMissing = errors.New("file missing from storage")
	// ErrBadRange means the Range header could not be parsed.
	ErrBadRange = errors.New("malformed range")
	// ErrRangeNotSatisfiable means the requested start lies beyond the
	// end of the file.
	ErrRangeNotSatisfiable = errors.New("range not satisfiable")
)
