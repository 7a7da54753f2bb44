package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"temperature_prediction/internal/logger"
	"temperature_prediction/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	streamWriteTimeout = 10 * time.Second
	streamIdleTimeout  = 60 * time.Second // no pong for this long closes the stream
	streamPingEvery    = streamIdleTimeout * 9 / 10
	streamReadLimit    = 4 << 10 // clients only send control frames
	pushEveryDefault   = 500 * time.Millisecond
	pushEveryMax       = 10 * time.Second

	wsTypeState = "state"
	wsTypeError = "error"
)

type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// The screen may be served from anywhere; there is no auth to protect.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// stateStream pushes prediction snapshots to one WebSocket client.
type stateStream struct {
	conn    *websocket.Conn
	monitor service.Monitoring
	log     *logger.Logger
}

// wsConnect pushes the prediction state right away and then every interval,
// so a screen sees LOADING flip to SETTLED without polling.
func (h *Handler) wsConnect(c *gin.Context) {
	every := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	s := &stateStream{conn: conn, monitor: h.services.Monitoring, log: h.log}
	s.serve(c.Request.Context(), every)
}

func (s *stateStream) serve(ctx context.Context, every time.Duration) {
	s.conn.SetReadLimit(streamReadLimit)
	_ = s.conn.SetReadDeadline(time.Now().Add(streamIdleTimeout))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(streamIdleTimeout))
	})

	gone := make(chan struct{})
	go s.drain(gone)

	if err := s.push(ctx); err != nil {
		s.debug("ws_first_push_failed", err)
		return
	}

	pushes := time.NewTicker(every)
	pings := time.NewTicker(streamPingEvery)
	defer pushes.Stop()
	defer pings.Stop()

	for {
		select {
		case <-gone:
			return
		case <-ctx.Done():
			return
		case <-pings.C:
			if err := s.write(func() error { return s.conn.WriteMessage(websocket.PingMessage, nil) }); err != nil {
				s.debug("ws_ping_failed", err)
				return
			}
		case <-pushes.C:
			if err := s.push(ctx); err != nil {
				s.debug("ws_push_failed", err)
				return
			}
		}
	}
}

// drain reads until the client goes away; gorilla needs a reader for pongs and close frames.
func (s *stateStream) drain(gone chan<- struct{}) {
	defer close(gone)
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			s.debug("ws_client_gone", err)
			return
		}
	}
}

// push sends the current snapshot, or an error envelope when it cannot be read.
func (s *stateStream) push(ctx context.Context) error {
	st, err := s.monitor.GetState(ctx)
	if err != nil {
		if s.log != nil {
			s.log.Errorw("ws_get_state_failed", "err", err)
		}
		_ = s.write(func() error { return s.conn.WriteJSON(wsEnvelope{Type: wsTypeError, Error: errGetState}) })
		return err
	}
	return s.write(func() error {
		return s.conn.WriteJSON(wsEnvelope{Type: wsTypeState, Data: newStateResponse("", st)})
	})
}

func (s *stateStream) write(send func() error) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
	return send()
}

func (s *stateStream) debug(key string, err error) {
	if s.log != nil {
		s.log.Debugw(key, "err", err)
	}
}

// parseInterval reads ?interval=2s or ?interval_ms=2000; out-of-range values
// fall back to pushEveryDefault.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	valid := func(d time.Duration) bool { return d > 0 && d <= pushEveryMax }

	if raw := c.Query("interval"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && valid(d) {
			return d
		}
	}
	if raw := c.Query("interval_ms"); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil && valid(time.Duration(ms)*time.Millisecond) {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return pushEveryDefault
}
