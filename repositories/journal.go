//go:generate go run go.uber.org/mock/mockgen -source=journal.go -destination=../mocks/mock_journal_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const journalPrefix = "upload:"

type IJournalRepository interface {
	Store(entry JournalEntry) error
	Recent(limit int) ([]JournalEntry, error)
}

// JournalRepository keeps an audit trail of upload attempts. It is history
// only: what is downloadable is decided by the storage root listing.
type JournalRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewJournalRepository(db *badger.DB, log *slog.Logger) JournalRepository {
	return JournalRepository{db: db, log: log}
}

type JournalEntry struct {
	ID       uuid.UUID `json:"id"`
	UploadID string    `json:"upload_id"`
	Filename string    `json:"filename"`
	Size     int64     `json:"size"`
	Outcome  string    `json:"outcome"`
	Reason   string    `json:"reason,omitempty"`
	MimeType string    `json:"mime_type,omitempty"`
	Sha256   string    `json:"sha256,omitempty"`
	At       time.Time `json:"at"`
}

// Store persists an entry under "upload:{timestamp_padded}:{uuid}" so a
// reverse prefix scan yields the newest entries first.
func (j JournalRepository) Store(entry JournalEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	key := fmt.Sprintf("%s%019d:%s", journalPrefix, entry.At.UnixNano(), entry.ID)
	bytes, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return j.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// Recent returns at most limit entries, newest first.
func (j JournalRepository) Recent(limit int) ([]JournalEntry, error) {
	var entries []JournalEntry
	err := j.db.View(func(txn *badger.Txn) error {
		prefix := []byte(journalPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(append(prefix, []byte("9999999999999999999")...)); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(entries) == limit {
				break
			}
			item := it.Item()
			err := item.Value(func(value []byte) error {
				var entry JournalEntry
				if err := json.Unmarshal(value, &entry); err != nil {
					j.log.Warn("Skipping unreadable journal entry", "key", string(item.Key()), "error", err)
					return nil
				}
				entries = append(entries, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
