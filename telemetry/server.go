package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/cosmos/core"
	"github.com/lixenwraith/cosmos/sim"
)

const (
	DefaultStreamRate = 5.0
	DefaultMaxClients = 8

	writeTimeout    = 5 * time.Second
	shutdownTimeout = 2 * time.Second
	readLimit       = 512
)

// SnapshotSource publishes the latest simulation state
type SnapshotSource interface {
	Snapshot() *sim.Snapshot
}

// Server serves /metrics, /healthz and the /ws snapshot stream
type Server struct {
	source  SnapshotSource
	metrics *Metrics
	logger  *slog.Logger

	addr       string
	streamRate rate.Limit
	maxClients int

	upgrader websocket.Upgrader

	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener
	clients  map[*websocket.Conn]struct{}
	closing  chan struct{}
	wg       sync.WaitGroup
}

// NewServer creates a telemetry server, nil metrics creates a private set
func NewServer(source SnapshotSource, metrics *Metrics, logger *slog.Logger) *Server {
	if metrics == nil {
		metrics = NewMetrics()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		source:     source,
		metrics:    metrics,
		logger:     logger,
		streamRate: DefaultStreamRate,
		maxClients: DefaultMaxClients,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  readLimit,
			WriteBufferSize: 4096,
		},
		clients: make(map[*websocket.Conn]struct{}),
		closing: make(chan struct{}),
	}
}

// Name implements service.Service
func (s *Server) Name() string {
	return "telemetry"
}

// Dependencies implements service.Service
func (s *Server) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: string listen address, empty disables the server
// args[1]: float64 snapshots per second per client
// args[2]: int maximum concurrent stream clients
func (s *Server) Init(args ...any) error {
	if len(args) > 0 {
		addr, ok := args[0].(string)
		if !ok {
			return fmt.Errorf("telemetry: address arg is %T", args[0])
		}
		s.addr = addr
	}
	if len(args) > 1 {
		if r, ok := args[1].(float64); ok {
			if r <= 0 {
				return fmt.Errorf("telemetry: stream rate %v must be positive", r)
			}
			s.streamRate = rate.Limit(r)
		}
	}
	if len(args) > 2 {
		if n, ok := args[2].(int); ok {
			if n < 1 {
				return fmt.Errorf("telemetry: max clients %d must be positive", n)
			}
			s.maxClients = n
		}
	}
	return nil
}

// Enabled reports whether a listen address is configured
func (s *Server) Enabled() bool {
	return s.addr != ""
}

// Handler returns the HTTP routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", s.metrics.instrument("/metrics", s.metrics.Handler()))
	mux.Handle("GET /healthz", s.metrics.instrument("/healthz", http.HandlerFunc(s.handleHealth)))
	mux.HandleFunc("GET /ws", s.handleStream)
	return mux
}

// Start implements service.Service, binding the listener synchronously
func (s *Server) Start() error {
	if !s.Enabled() {
		return nil
	}
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("telemetry listen %s: %w", s.addr, err)
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.mu.Lock()
	s.srv = srv
	s.listener = ln
	s.mu.Unlock()

	core.Go(func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("telemetry server", "error", err)
		}
	})
	s.logger.Info("telemetry listening", "addr", ln.Addr().String())
	return nil
}

// Addr returns the bound address, empty before Start
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop implements service.Service, closes streams and shuts the listener down
func (s *Server) Stop() error {
	s.mu.Lock()
	select {
	case <-s.closing:
	default:
		close(s.closing)
	}
	srv := s.srv
	s.srv = nil
	for c := range s.clients {
		c.Close()
	}
	s.mu.Unlock()

	var err error
	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err = srv.Shutdown(ctx)
	}
	s.wg.Wait()
	return err
}

// Clients returns the number of connected stream clients
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

type health struct {
	Status string `json:"status"`
	Ready  bool   `json:"ready"`
	Frame  uint64 `json:"frame"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	h := health{Status: "ok"}
	if snap := s.source.Snapshot(); snap != nil {
		h.Ready = snap.Ready
		h.Frame = snap.Frame
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h)
}

// acquire reserves a client slot, false when the server is full or closing
func (s *Server) acquire(c *websocket.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.closing:
		return false
	default:
	}
	if len(s.clients) >= s.maxClients {
		return false
	}
	s.clients[c] = struct{}{}
	s.wg.Add(1)
	s.metrics.streamClients.Inc()
	return true
}

func (s *Server) release(c *websocket.Conn) {
	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()
	s.metrics.streamClients.Dec()
	s.wg.Done()
}

func (s *Server) full() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients) >= s.maxClients
}

// handleStream upgrades to a websocket and pushes snapshots until either side closes
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	if s.full() {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]string{"error": "too many stream clients"})
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("stream upgrade", "error", err)
		return
	}
	if !s.acquire(conn) {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "too many stream clients"),
			time.Now().Add(writeTimeout))
		conn.Close()
		return
	}
	defer s.release(conn)
	defer conn.Close()

	remote := r.RemoteAddr
	start := time.Now()
	s.logger.Info("stream connected", "remote", remote)
	defer func() {
		s.logger.Info("stream disconnected", "remote", remote, "duration", time.Since(start).Round(time.Second))
	}()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Reader drains control frames and cancels on client close
	conn.SetReadLimit(readLimit)
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
	go func() {
		select {
		case <-s.closing:
			cancel()
		case <-ctx.Done():
		}
	}()

	s.stream(ctx, conn)
}

// stream writes at most streamRate snapshots per second, skipping unchanged frames
func (s *Server) stream(ctx context.Context, conn *websocket.Conn) {
	limiter := rate.NewLimiter(s.streamRate, 1)
	var lastFrame uint64
	sent := false
	for {
		if err := limiter.Wait(ctx); err != nil {
			return
		}
		snap := s.source.Snapshot()
		if snap == nil || (sent && snap.Frame == lastFrame) {
			continue
		}
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(snap); err != nil {
			s.logger.Debug("stream write", "error", err)
			return
		}
		s.metrics.streamSent.Inc()
		lastFrame = snap.Frame
		sent = true
	}
}
