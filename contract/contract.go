//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"file-exchange/domain"
	"file-exchange/domain/event"
	"io"
)

// FileRepository is the only gateway to the storage root. Names are single
// path elements; implementations refuse anything else.
type FileRepository interface {
	List() ([]domain.StoredFile, error)
	Open(name string) (io.ReadSeekCloser, domain.StoredFile, error)
	Create(name string) (StagedFile, error)
}

// StagedFile collects content away from its final name. Commit publishes it
// in one step; Discard leaves any previous version in place.
type StagedFile interface {
	io.Writer
	Commit() error
	Discard() error
}

// ProgressObserver is notified after every bounded write. It must not
// block; the write loop does not wait on it.
type ProgressObserver interface {
	OnProgress(evt domain.ProgressEvent)
}

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

type Ingester interface {
	Ingest(ctx context.Context, body []byte, contentType string) domain.UploadOutcome
}
