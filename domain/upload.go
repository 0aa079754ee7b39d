package domain

import (
	"path"
	"strings"
	"time"
)

type UploadID string

const KB = 1024
const MB = KB * KB

// UploadRequest is the buffered POST body together with the boundary
// declared by its Content-Type header.
type UploadRequest struct {
	Body     []byte
	Boundary string
}

// ExtractedFile is the file field found inside an UploadRequest.
// Filename is taken verbatim from the part headers and must go through
// ValidateFilename before it touches the storage root.
type ExtractedFile struct {
	Filename string
	Payload  []byte
}

// Extension returns the lowercase suffix of the filename including the dot,
// or an empty string when the name has none.
func (f ExtractedFile) Extension() string {
	return strings.ToLower(path.Ext(f.Filename))
}

func (f ExtractedFile) Size() int64 {
	return int64(len(f.Payload))
}

// StoredFile describes one entry of the storage root.
type StoredFile struct {
	Name       string
	Size       int64
	IsDir      bool
	ModifiedAt time.Time
}

type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeRejectedExtension
	OutcomeRejectedSize
	OutcomeRejectedFilename
	OutcomeMalformedRequest
	OutcomeStorageFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeRejectedExtension:
		return "rejected_extension"
	case OutcomeRejectedSize:
		return "rejected_size"
	case OutcomeRejectedFilename:
		return "rejected_filename"
	case OutcomeMalformedRequest:
		return "malformed_request"
	case OutcomeStorageFailure:
		return "storage_failure"
	default:
		return "unknown"
	}
}

// UploadOutcome is the result of one ingestion. Err is nil only on success
// and carries the cause for every other kind.
type UploadOutcome struct {
	Kind     OutcomeKind
	ID       UploadID
	Filename string
	Size     int64
	Err      error
}

func (o UploadOutcome) IsSuccess() bool {
	return o.Kind == OutcomeSuccess
}
