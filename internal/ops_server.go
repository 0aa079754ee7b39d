package internal

import (
	"embed"
	"file-exchange/observability"
	"file-exchange/repositories"
	"file-exchange/sink"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/gorilla/mux"
	"github.com/samber/lo"
)

//go:embed journal.html
var templatesFS embed.FS

const defaultJournalLimit = 100

var journalTemplate = template.Must(template.New("journal.html").Funcs(template.FuncMap{
	"bytes": func(n int64) string { return humanize.IBytes(uint64(n)) },
}).ParseFS(templatesFS, "journal.html"))

type JournalRow struct {
	At       string
	Outcome  string
	Filename string
	Size     int64
	Detail   string
	UploadID string
}

type JournalPage struct {
	Limit int
	Items []JournalRow
	Stats map[string]any
}

// OpsServer exposes the operator surface: prometheus metrics, the upload
// journal and the live progress websocket.
type OpsServer struct {
	log         *slog.Logger
	journal     repositories.IJournalRepository
	metrics     *observability.Metrics
	hub         *sink.ProgressHub
	storageRoot string
}

func NewOpsServer(
	log *slog.Logger,
	journal repositories.IJournalRepository,
	metrics *observability.Metrics,
	hub *sink.ProgressHub,
	storageRoot string,
) *OpsServer {
	return &OpsServer{
		log:         log,
		journal:     journal,
		metrics:     metrics,
		hub:         hub,
		storageRoot: storageRoot,
	}
}

func (o *OpsServer) Handler() http.Handler {
	router := mux.NewRouter()
	router.Handle("/metrics", o.metrics.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/journal", o.journalPage).Methods(http.MethodGet)
	router.HandleFunc("/progress", o.hub.HandleConnection).Methods(http.MethodGet)
	return router
}

func (o *OpsServer) journalPage(w http.ResponseWriter, r *http.Request) {
	limit := defaultJournalLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := o.journal.Recent(limit)
	if err != nil {
		o.log.Error("Failed to read journal", "error", err)
		http.Error(w, "journal unavailable", http.StatusInternalServerError)
		return
	}

	page := JournalPage{
		Limit: limit,
		Items: lo.Map(entries, func(e repositories.JournalEntry, _ int) JournalRow {
			return toJournalRow(e)
		}),
		Stats: o.stats(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := journalTemplate.Execute(w, page); err != nil {
		o.log.Error("Failed to render journal", "error", err)
	}
}

func (o *OpsServer) stats() map[string]any {
	stats := map[string]any{
		"Storage root":         o.storageRoot,
		"Progress subscribers": o.hub.Subscribers(),
	}
	usage, err := observability.StorageUsage(o.storageRoot)
	if err != nil {
		o.log.Debug("Storage usage unavailable", "error", err)
		return stats
	}
	stats["Free"] = humanize.IBytes(usage.Free)
	stats["Total"] = humanize.IBytes(usage.Total)
	stats["Used"] = strconv.FormatFloat(usage.UsedPercent, 'f', 1, 64) + "%"
	return stats
}

func toJournalRow(e repositories.JournalEntry) JournalRow {
	detail := e.Reason
	if e.MimeType != "" {
		detail = e.MimeType
		if e.Sha256 != "" {
			detail += " sha256:" + e.Sha256[:min(12, len(e.Sha256))]
		}
	}
	return JournalRow{
		At:       e.At.Format("2006-01-02 15:04:05"),
		Outcome:  e.Outcome,
		Filename: e.Filename,
		Size:     e.Size,
		Detail:   detail,
		UploadID: e.UploadID,
	}
}
