package services

import (
	"context"
	"crypto/sha256"
	"errors"
	"file-exchange/contract"
	"file-exchange/domain"
	"file-exchange/domain/event"
	"file-exchange/domain/mimetypes"
	customErrors "file-exchange/errors"
	"file-exchange/formdata"
	"fmt"
	"log/slog"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

const DefaultChunkSize = domain.KB

// UploadService turns a buffered multipart body into a persisted file.
// Parsing and policy checks never touch the storage root; only an upload
// that passed every check reaches the write phase.
type UploadService struct {
	log        *slog.Logger
	repository contract.FileRepository
	policy     domain.ValidationPolicy
	observer   contract.ProgressObserver
	sinks      []contract.EventSink
	locks      *KeyedLock
	chunkSize  int
}

func NewUploadService(
	log *slog.Logger,
	repository contract.FileRepository,
	policy domain.ValidationPolicy,
	observer contract.ProgressObserver,
	chunkSize int,
	sinks ...contract.EventSink,
) *UploadService {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &UploadService{
		log:        log,
		repository: repository,
		policy:     policy,
		observer:   observer,
		sinks:      sinks,
		locks:      NewKeyedLock(),
		chunkSize:  chunkSize,
	}
}

func (s *UploadService) Policy() domain.ValidationPolicy {
	return s.policy
}

// Ingest never returns an error: every failure is reported as an outcome
// kind so the caller can map it to a response.
func (s *UploadService) Ingest(ctx context.Context, body []byte, contentType string) domain.UploadOutcome {
	id := domain.UploadID(uuid.NewString())

	file, err := formdata.Parse(body, contentType)
	if err != nil {
		return s.reject(ctx, id, domain.ExtractedFile{}, domain.OutcomeMalformedRequest, err)
	}

	if err := domain.ValidateFilename(file.Filename); err != nil {
		if errors.Is(err, customErrors.ErrEmptyFilename) {
			return s.reject(ctx, id, file, domain.OutcomeMalformedRequest, err)
		}
		return s.reject(ctx, id, file, domain.OutcomeRejectedFilename, err)
	}

	if !s.policy.AllowsExtension(file.Extension()) {
		return s.reject(ctx, id, file, domain.OutcomeRejectedExtension,
			fmt.Errorf("extension %q is not allowed", file.Extension()))
	}

	if !s.policy.AllowsSize(file.Size()) {
		return s.reject(ctx, id, file, domain.OutcomeRejectedSize,
			fmt.Errorf("%d bytes exceeds the limit of %d bytes", file.Size(), s.policy.MaxSizeBytes))
	}

	if err := s.persist(ctx, id, file); err != nil {
		return s.reject(ctx, id, file, domain.OutcomeStorageFailure, err)
	}

	stored := event.UploadStored{
		ID:       id,
		Filename: file.Filename,
		Size:     file.Size(),
		MimeType: mimetype.Detect(file.Payload).String(),
		Sha256:   fmt.Sprintf("%x", sha256.Sum256(file.Payload)),
		At:       time.Now().UTC(),
	}
	s.log.Info("Upload stored",
		"upload_id", id,
		"filename", stored.Filename,
		"size", stored.Size,
		"mime_type", stored.MimeType,
	)
	if !mimetypes.ConsistentWith(file.Extension(), stored.MimeType) {
		s.log.Warn("Content does not look like its extension",
			"upload_id", id, "filename", stored.Filename, "mime_type", stored.MimeType)
	}
	s.publish(ctx, stored)

	return domain.UploadOutcome{
		Kind:     domain.OutcomeSuccess,
		ID:       id,
		Filename: file.Filename,
		Size:     file.Size(),
	}
}

// persist writes the payload in chunkSize increments while holding the lock
// of the destination name. A failed write discards the staged content.
func (s *UploadService) persist(ctx context.Context, id domain.UploadID, file domain.ExtractedFile) error {
	unlock := s.locks.Lock(file.Filename)
	defer unlock()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: upload abandoned: %v", customErrors.ErrStorage, err)
	}

	w, err := s.repository.Create(file.Filename)
	if err != nil {
		return err
	}

	total := file.Size()
	progress := domain.ProgressEvent{UploadID: id, Filename: file.Filename, TotalBytes: total}
	if total == 0 {
		s.notify(progress)
	}

	var written int64
	for written < total {
		if err := ctx.Err(); err != nil {
			return s.abort(w, file.Filename, err)
		}
		end := min(written+int64(s.chunkSize), total)
		n, err := w.Write(file.Payload[written:end])
		written += int64(n)
		if err != nil {
			return s.abort(w, file.Filename, err)
		}
		progress.BytesWritten = written
		s.notify(progress)
	}

	if err := w.Commit(); err != nil {
		return fmt.Errorf("%w: committing %s: %v", customErrors.ErrStorage, file.Filename, err)
	}
	return nil
}

func (s *UploadService) abort(w contract.StagedFile, name string, cause error) error {
	if err := w.Discard(); err != nil {
		s.log.Error("Failed to discard partial upload", "filename", name, "error", err)
	}
	return fmt.Errorf("%w: writing %s: %v", customErrors.ErrStorage, name, cause)
}

// notify isolates the write loop from observer failures.
func (s *UploadService) notify(evt domain.ProgressEvent) {
	if s.observer == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Progress observer panicked", "upload_id", evt.UploadID, "panic", r)
		}
	}()
	s.observer.OnProgress(evt)
}

func (s *UploadService) reject(
	ctx context.Context,
	id domain.UploadID,
	file domain.ExtractedFile,
	kind domain.OutcomeKind,
	cause error,
) domain.UploadOutcome {
	attrs := []any{"upload_id", id, "filename", file.Filename, "size", file.Size(), "outcome", kind.String(), "error", cause}
	if kind == domain.OutcomeStorageFailure {
		s.log.Error("Upload failed", attrs...)
	} else {
		s.log.Warn("Upload rejected", attrs...)
	}

	s.publish(ctx, event.UploadRejected{
		ID:       id,
		Filename: file.Filename,
		Size:     file.Size(),
		Outcome:  kind,
		Reason:   cause.Error(),
		At:       time.Now().UTC(),
	})

	return domain.UploadOutcome{
		Kind:     kind,
		ID:       id,
		Filename: file.Filename,
		Size:     file.Size(),
		Err:      cause,
	}
}

// publish hands the event to every sink. Sink errors are logged and never
// change the outcome returned to the client.
func (s *UploadService) publish(ctx context.Context, e event.DomainEvent) {
	ctx = context.WithoutCancel(ctx)
	for _, sink := range s.sinks {
		if err := sink.Consume(ctx, e); err != nil {
			s.log.Error("Event sink failed", "filename", e.FileName(), "error", err)
		}
	}
}
