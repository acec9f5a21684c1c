package plotting

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/notargets/eulerfv/model_problems/Euler1D"
)

const (
	writeWait  = 10 * time.Second
	sendBuffer = 16
)

// Message is the JSON form of a snapshot sent to each client
type Message struct {
	Type string    `json:"type"`
	Step int       `json:"step"`
	Time float64   `json:"time"`
	X    []float64 `json:"x"`
	Rho  []float64 `json:"rho"`
	U    []float64 `json:"u"`
	P    []float64 `json:"p"`
}

type client struct {
	conn *websocket.Conn
	send chan *websocket.PreparedMessage
}

// Hub maintains the set of connected websocket clients and broadcasts
// snapshots to them. A client that falls sendBuffer messages behind is dropped.
type Hub struct {
	upgrader websocket.Upgrader
	mu       sync.Mutex
	clients  map[*client]struct{}
	closed   bool
	writers  sync.WaitGroup
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

// ServeHTTP upgrades the request and keeps the client until it disconnects
// or the hub finishes
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade")
		return
	}
	c := &client{conn: conn, send: make(chan *websocket.PreparedMessage, sendBuffer)}
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "run finished"), time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}
	h.clients[c] = struct{}{}
	h.writers.Add(1)
	h.mu.Unlock()
	log.WithField("remote", conn.RemoteAddr().String()).Info("client connected")

	go h.writePump(c)
	// Clients only listen, reading detects the disconnect
	for {
		if _, _, err = conn.ReadMessage(); err != nil {
			h.unregister(c)
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	defer h.writers.Done()
	defer c.conn.Close()
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WritePreparedMessage(msg); err != nil {
			log.WithError(err).Debug("websocket write")
			h.unregister(c)
			return
		}
	}
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "run finished"), time.Now().Add(writeWait))
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// NumClients is the number of connected clients
func (h *Hub) NumClients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) AddSnapshot(s *Euler1D.Snapshot) (err error) {
	var (
		data []byte
		pm   *websocket.PreparedMessage
	)
	if data, err = json.Marshal(&Message{
		Type: "snapshot",
		Step: s.Step,
		Time: s.Time,
		X:    s.X,
		Rho:  s.Rho,
		U:    s.U(),
		P:    s.P,
	}); err != nil {
		return
	}
	if pm, err = websocket.NewPreparedMessage(websocket.TextMessage, data); err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- pm:
		default:
			log.WithField("remote", c.conn.RemoteAddr().String()).Warn("dropping slow client")
			delete(h.clients, c)
			close(c.send)
		}
	}
	return
}

// Finish flushes queued snapshots, closes every client and refuses new ones
func (h *Hub) Finish() error {
	h.mu.Lock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
	h.writers.Wait()
	return nil
}

// ListenAndServe serves the hub at /ws on addr
func (h *Hub) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	return http.ListenAndServe(addr, mux)
}
