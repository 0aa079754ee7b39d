package event

import (
	"file-exchange/domain"
	"time"
)

type DomainEvent interface {
	FileName() string
}

// UploadStored is raised once the payload has been fully written.
type UploadStored struct {
	ID       domain.UploadID
	Filename string
	Size     int64
	MimeType string
	Sha256   string
	At       time.Time
}

func (u UploadStored) FileName() string {
	return u.Filename
}

// UploadRejected covers every non-success outcome, storage failures included.
type UploadRejected struct {
	ID       domain.UploadID
	Filename string
	Size     int64
	Outcome  domain.OutcomeKind
	Reason   string
	At       time.Time
}

func (u UploadRejected) FileName() string {
	return u.Filename
}

type FileDownloaded struct {
	Filename string
	Size     int64
	At       time.Time
}

func (f FileDownloaded) FileName() string {
	return f.Filename
}
