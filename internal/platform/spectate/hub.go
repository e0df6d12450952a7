// Package spectate streams world snapshots to WebSocket viewers.
// Viewers are read-only: anything they send is discarded.
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/xtarda-rescue/internal/games/lander"
)

// Frame is one message sent to viewers.
type Frame struct {
	Pilot    string          `json:"pilot"`
	Status   string          `json:"status"`
	Snapshot lander.Snapshot `json:"snapshot"`
}

type message struct {
	pilot   string
	payload []byte
}

// Hub maintains the set of active viewers and broadcasts frames to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan message
	register   chan *Client
	unregister chan *Client
	done       chan struct{} // Closed when Run returns
	mu         sync.Mutex
	logger     *log.Logger
	upgrader   websocket.Upgrader
}

// NewHub creates a hub. Run must be called before viewers connect.
func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan message, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true // Viewers are read-only
			},
		},
	}
}

// Run handles connections and broadcasts until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			h.logger.Debug("spectator hub stopped")
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("spectator connected", "pilot", client.pilot, "remote", client.conn.RemoteAddr().String())

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Info("spectator disconnected", "pilot", client.pilot)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				if client.pilot != "" && client.pilot != msg.pilot {
					continue
				}
				select {
				case client.send <- msg.payload:
				default:
					// Slow viewer
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish queues a snapshot for every viewer following pilot.
// It never blocks the game loop: frames are dropped when the hub is behind.
func (h *Hub) Publish(pilot string, snap lander.Snapshot) {
	if h.Count() == 0 {
		return
	}
	payload, err := json.Marshal(Frame{
		Pilot:    pilot,
		Status:   snap.Status.String(),
		Snapshot: snap,
	})
	if err != nil {
		h.logger.Error("cannot encode frame", "error", err)
		return
	}

	select {
	case h.broadcast <- message{pilot: pilot, payload: payload}:
	default:
	}
}

// Count returns the number of connected viewers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request and registers a viewer.
// The optional pilot query parameter limits the stream to one player.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := newClient(h, conn, r.URL.Query().Get("pilot"))
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// ListenAndServe serves viewers on addr under /ws until ctx is done.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	h.logger.Info("spectator server listening", "address", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
