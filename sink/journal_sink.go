package sink

import (
	"context"
	"file-exchange/domain"
	"file-exchange/domain/event"
	"file-exchange/repositories"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

const outcomeDownloaded = "downloaded"

// JournalSink records every upload attempt and download in the journal.
type JournalSink struct {
	repository repositories.IJournalRepository
	log        *slog.Logger
}

func NewJournalSink(repository repositories.IJournalRepository, log *slog.Logger) *JournalSink {
	return &JournalSink{repository: repository, log: log}
}

func (j *JournalSink) Consume(_ context.Context, e event.DomainEvent) error {
	entry, ok := toJournalEntry(e)
	if !ok {
		return nil
	}
	if err := j.repository.Store(entry); err != nil {
		return fmt.Errorf("journal store failed for %s: %w", e.FileName(), err)
	}
	j.log.Debug("Journal entry stored", "filename", entry.Filename, "outcome", entry.Outcome)
	return nil
}

func toJournalEntry(e event.DomainEvent) (repositories.JournalEntry, bool) {
	switch evt := e.(type) {
	case event.UploadStored:
		return repositories.JournalEntry{
			ID:       uuid.New(),
			UploadID: string(evt.ID),
			Filename: evt.Filename,
			Size:     evt.Size,
			Outcome:  domain.OutcomeSuccess.String(),
			MimeType: evt.MimeType,
			Sha256:   evt.Sha256,
			At:       evt.At,
		}, true
	case event.UploadRejected:
		return repositories.JournalEntry{
			ID:       uuid.New(),
			UploadID: string(evt.ID),
			Filename: evt.Filename,
			Size:     evt.Size,
			Outcome:  evt.Outcome.String(),
			Reason:   evt.Reason,
			At:       evt.At,
		}, true
	case event.FileDownloaded:
		return repositories.JournalEntry{
			ID:       uuid.New(),
			Filename: evt.Filename,
			Size:     evt.Size,
			Outcome:  outcomeDownloaded,
			At:       evt.At,
		}, true
	default:
		return repositories.JournalEntry{}, false
	}
}
