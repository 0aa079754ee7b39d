package sink

import (
	"bytes"
	"context"
	"errors"
	"file-exchange/domain"
	"file-exchange/domain/event"
	"file-exchange/mocks"
	"file-exchange/observability"
	"file-exchange/repositories"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type countingObserver struct {
	events []domain.ProgressEvent
}

func (c *countingObserver) OnProgress(evt domain.ProgressEvent) {
	c.events = append(c.events, evt)
}

type brokenObserver struct{}

func (brokenObserver) OnProgress(domain.ProgressEvent) {
	panic("boom")
}

func TestObservers_PanicIsIsolated(t *testing.T) {
	req := require.New(t)
	first, last := &countingObserver{}, &countingObserver{}
	observers := NewObservers(logs.GetLoggerFromLevel(slog.LevelDebug), first, brokenObserver{}, last)

	req.NotPanics(func() {
		observers.OnProgress(domain.ProgressEvent{Filename: "a.bin", BytesWritten: 1, TotalBytes: 2})
		observers.OnProgress(domain.ProgressEvent{Filename: "a.bin", BytesWritten: 2, TotalBytes: 2})
	})
	req.Len(first.events, 2)
	req.Len(last.events, 2)
}

func TestConsoleProgress_Lines(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	console := NewConsoleProgress(&out, false)

	console.OnProgress(domain.ProgressEvent{Filename: "a.bin", BytesWritten: 1024, TotalBytes: 3000})
	console.OnProgress(domain.ProgressEvent{Filename: "a.bin", BytesWritten: 3000, TotalBytes: 3000})
	console.OnProgress(domain.ProgressEvent{Filename: "empty.zip"})

	req.Equal(
		"\rUploading a.bin... 34.13% completed"+
			"\rUploading a.bin... 100.00% completed\n"+
			"\rUploading empty.zip... 100.00% completed\n",
		out.String(),
	)
}

func TestConsoleProgress_Colours(t *testing.T) {
	var out bytes.Buffer
	NewConsoleProgress(&out, true).OnProgress(domain.ProgressEvent{Filename: "a.bin", BytesWritten: 5, TotalBytes: 5})
	require.Contains(t, out.String(), "100.00% completed")
	require.True(t, strings.HasSuffix(out.String(), "\n"))
}

func TestProgressHub_NoSubscribers(t *testing.T) {
	hub := NewProgressHub(logs.GetLoggerFromLevel(slog.LevelDebug))
	require.NotPanics(t, func() {
		hub.OnProgress(domain.ProgressEvent{Filename: "a.bin", BytesWritten: 1, TotalBytes: 1})
	})
	require.Zero(t, hub.Subscribers())
}

func TestJournalSink_Consume(t *testing.T) {
	at := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	testCases := []struct {
		name     string
		event    event.DomainEvent
		expected repositories.JournalEntry
	}{
		{
			name:  "stored",
			event: event.UploadStored{ID: "u-1", Filename: "a.bin", Size: 10, MimeType: "application/octet-stream", Sha256: "abc", At: at},
			expected: repositories.JournalEntry{
				UploadID: "u-1", Filename: "a.bin", Size: 10, Outcome: "success",
				MimeType: "application/octet-stream", Sha256: "abc", At: at,
			},
		},
		{
			name:  "rejected",
			event: event.UploadRejected{ID: "u-2", Filename: "a.exe", Size: 3, Outcome: domain.OutcomeRejectedExtension, Reason: "nope", At: at},
			expected: repositories.JournalEntry{
				UploadID: "u-2", Filename: "a.exe", Size: 3, Outcome: "rejected_extension", Reason: "nope", At: at,
			},
		},
		{
			name:     "downloaded",
			event:    event.FileDownloaded{Filename: "a.bin", Size: 10, At: at},
			expected: repositories.JournalEntry{Filename: "a.bin", Size: 10, Outcome: "downloaded", At: at},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			journal := mocks.NewMockIJournalRepository(ctrl)
			journal.EXPECT().Store(gomock.Any()).DoAndReturn(func(entry repositories.JournalEntry) error {
				req.NotEmpty(entry.ID)
				entry.ID = tc.expected.ID
				req.Equal(tc.expected, entry)
				return nil
			})

			s := NewJournalSink(journal, logs.GetLoggerFromLevel(slog.LevelDebug))
			req.NoError(s.Consume(context.Background(), tc.event))
		})
	}
}

func TestJournalSink_StoreError(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	journal := mocks.NewMockIJournalRepository(ctrl)
	journal.EXPECT().Store(gomock.Any()).Return(errors.New("db closed"))

	s := NewJournalSink(journal, logs.GetLoggerFromLevel(slog.LevelDebug))
	err := s.Consume(context.Background(), event.FileDownloaded{Filename: "a.bin"})
	req.ErrorContains(err, "a.bin")
	req.ErrorContains(err, "db closed")
}

func TestMetricsSink_Consume(t *testing.T) {
	req := require.New(t)
	metrics := observability.NewMetrics(logs.GetLoggerFromLevel(slog.LevelDebug), t.TempDir())
	s := NewMetricsSink(metrics)
	ctx := context.Background()

	req.NoError(s.Consume(ctx, event.UploadStored{Filename: "a.bin", Size: 100}))
	req.NoError(s.Consume(ctx, event.UploadStored{Filename: "b.bin", Size: 50}))
	req.NoError(s.Consume(ctx, event.UploadRejected{Filename: "c.bin", Outcome: domain.OutcomeRejectedSize}))
	req.NoError(s.Consume(ctx, event.FileDownloaded{Filename: "a.bin", Size: 100}))

	req.InDelta(2, testutil.ToFloat64(metrics.Uploads.WithLabelValues("success")), 0)
	req.InDelta(1, testutil.ToFloat64(metrics.Uploads.WithLabelValues("rejected_size")), 0)
	req.InDelta(150, testutil.ToFloat64(metrics.UploadedBytes), 0)
	req.InDelta(1, testutil.ToFloat64(metrics.Downloads), 0)
	req.InDelta(100, testutil.ToFloat64(metrics.DownloadedBytes), 0)
}
