package server

import (
	"context"
	"embed"
	"errors"
	"file-exchange/contract"
	"file-exchange/domain"
	"file-exchange/domain/event"
	customErrors "file-exchange/errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gorilla/mux"
)

//go:embed templates/index.html
var templatesFS embed.FS

// fileURL escapes the name so a literal "#" or "?" cannot end the path.
var indexTemplate = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"bytes":   func(n int64) string { return humanize.IBytes(uint64(n)) },
	"ago":     humanize.Time,
	"fileURL": func(name string) string { return "/files/" + url.PathEscape(name) },
}).ParseFS(templatesFS, "templates/index.html"))

const (
	msgInvalidType = "Invalid file type. Please upload %s files."
	msgTooLarge    = "File too large. Please upload a file smaller than %s."
	msgMalformed   = "Invalid form submission."
	msgBadFilename = "Invalid filename."
	msgStorage     = "The file could not be stored."
	msgUploaded    = "File '%s' uploaded successfully."
)

type indexPage struct {
	Files   []domain.StoredFile
	Accept  string
	MaxSize int64
}

// Router maps the three public routes onto the file repository and the
// upload pipeline. Every other method or path answers 404.
type Router struct {
	log        *slog.Logger
	repository contract.FileRepository
	ingester   contract.Ingester
	policy     domain.ValidationPolicy
	bodyLimit  int64
	sinks      []contract.EventSink
}

func NewRouter(
	log *slog.Logger,
	repository contract.FileRepository,
	ingester contract.Ingester,
	policy domain.ValidationPolicy,
	bodyLimit int64,
	sinks ...contract.EventSink,
) *Router {
	return &Router{
		log:        log,
		repository: repository,
		ingester:   ingester,
		policy:     policy,
		bodyLimit:  bodyLimit,
		sinks:      sinks,
	}
}

func (rt *Router) Handler() http.Handler {
	router := mux.NewRouter().SkipClean(true)
	router.HandleFunc("/", rt.index).Methods(http.MethodGet)
	router.HandleFunc("/", rt.upload).Methods(http.MethodPost)
	router.HandleFunc("/files/{name}", rt.download).Methods(http.MethodGet)
	router.NotFoundHandler = http.HandlerFunc(rt.notFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(rt.notFound)
	return router
}

func (rt *Router) index(w http.ResponseWriter, r *http.Request) {
	files, err := rt.repository.List()
	if err != nil {
		rt.log.Error("Failed to list storage root", "error", err)
		http.Error(w, "Storage root unavailable.", http.StatusInternalServerError)
		return
	}

	page := indexPage{
		Files:   files,
		Accept:  rt.policy.Accept(),
		MaxSize: rt.policy.MaxSizeBytes,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, page); err != nil {
		rt.log.Error("Failed to render listing", "error", err)
	}
}

func (rt *Router) download(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	content, stored, err := rt.repository.Open(name)
	if err != nil {
		if !errors.Is(err, customErrors.ErrFileNotFound) {
			rt.log.Error("Failed to open stored file", "filename", name, "error", err)
		}
		rt.notFound(w, r)
		return
	}
	defer func() { _ = content.Close() }()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": stored.Name}))
	http.ServeContent(w, r, stored.Name, stored.ModifiedAt, content)

	rt.log.Info("File downloaded", "filename", stored.Name, "size", stored.Size)
	rt.publish(r.Context(), event.FileDownloaded{Filename: stored.Name, Size: stored.Size, At: time.Now().UTC()})
}

func (rt *Router) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, rt.bodyLimit)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			rt.log.Warn("Upload body over limit", "limit", tooLarge.Limit)
			rt.publish(r.Context(), event.UploadRejected{
				Size:    r.ContentLength,
				Outcome: domain.OutcomeRejectedSize,
				Reason:  err.Error(),
				At:      time.Now().UTC(),
			})
			rt.reply(w, http.StatusRequestEntityTooLarge, fmt.Sprintf(msgTooLarge, humanize.IBytes(uint64(rt.policy.MaxSizeBytes))))
			return
		}
		rt.log.Warn("Failed to read upload body", "error", err)
		rt.reply(w, http.StatusBadRequest, msgMalformed)
		return
	}

	outcome := rt.ingester.Ingest(r.Context(), body, r.Header.Get("Content-Type"))
	status, message := rt.translate(outcome)
	rt.reply(w, status, message)
}

func (rt *Router) translate(outcome domain.UploadOutcome) (int, string) {
	switch outcome.Kind {
	case domain.OutcomeSuccess:
		return http.StatusOK, fmt.Sprintf(msgUploaded, outcome.Filename)
	case domain.OutcomeRejectedExtension:
		return http.StatusUnsupportedMediaType, fmt.Sprintf(msgInvalidType, rt.policy.Accept())
	case domain.OutcomeRejectedSize:
		return http.StatusRequestEntityTooLarge, fmt.Sprintf(msgTooLarge, humanize.IBytes(uint64(rt.policy.MaxSizeBytes)))
	case domain.OutcomeRejectedFilename:
		return http.StatusBadRequest, msgBadFilename
	case domain.OutcomeMalformedRequest:
		return http.StatusBadRequest, msgMalformed
	default:
		return http.StatusInternalServerError, msgStorage
	}
}

func (rt *Router) notFound(w http.ResponseWriter, r *http.Request) {
	rt.log.Debug("No route", "method", r.Method, "path", r.URL.Path)
	http.NotFound(w, r)
}

func (rt *Router) reply(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, message)
}

func (rt *Router) publish(ctx context.Context, e event.DomainEvent) {
	ctx = context.WithoutCancel(ctx)
	for _, sink := range rt.sinks {
		if err := sink.Consume(ctx, e); err != nil {
			rt.log.Warn("Event sink failed", "filename", e.FileName(), "error", err)
		}
	}
}
