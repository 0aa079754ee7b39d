package sink

import (
	"file-exchange/domain"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	clientBuffer = 64
	writeTimeout = 5 * time.Second
)

// ProgressMessage is the JSON frame pushed to websocket subscribers.
type ProgressMessage struct {
	UploadID     string  `json:"upload_id"`
	Filename     string  `json:"filename"`
	BytesWritten int64   `json:"bytes_written"`
	TotalBytes   int64   `json:"total_bytes"`
	Percent      float64 `json:"percent"`
}

// ProgressHub broadcasts progress events to websocket subscribers. Each
// subscriber owns a buffered queue; when it is full the frame is dropped
// for that subscriber instead of stalling the upload.
type ProgressHub struct {
	log      *slog.Logger
	upgrader websocket.Upgrader
	mu       sync.RWMutex
	clients  map[*websocket.Conn]chan ProgressMessage
}

func NewProgressHub(log *slog.Logger) *ProgressHub {
	return &ProgressHub{
		log: log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[*websocket.Conn]chan ProgressMessage),
	}
}

func (h *ProgressHub) OnProgress(evt domain.ProgressEvent) {
	msg := ProgressMessage{
		UploadID:     string(evt.UploadID),
		Filename:     evt.Filename,
		BytesWritten: evt.BytesWritten,
		TotalBytes:   evt.TotalBytes,
		Percent:      evt.Percent(),
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, queue := range h.clients {
		select {
		case queue <- msg:
		default:
		}
	}
}

func (h *ProgressHub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// HandleConnection upgrades the request and streams frames until the
// client goes away.
func (h *ProgressHub) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Failed to upgrade progress connection", "error", err)
		return
	}

	queue := make(chan ProgressMessage, clientBuffer)
	h.mu.Lock()
	h.clients[conn] = queue
	h.mu.Unlock()

	done := make(chan struct{})
	go h.readPump(conn, done)
	h.writePump(conn, queue, done)

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	_ = conn.Close()
}

// readPump drains client frames so close messages are processed.
func (h *ProgressHub) readPump(conn *websocket.Conn, done chan struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *ProgressHub) writePump(conn *websocket.Conn, queue chan ProgressMessage, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case msg := <-queue:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(msg); err != nil {
				h.log.Debug("Progress subscriber dropped", "error", err)
				return
			}
		}
	}
}
