package handlers

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_client/internal/core/ports/gateways"
	"github.com/SscSPs/finance_client/internal/middleware"
	"github.com/SscSPs/finance_client/internal/state"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// Signal types pushed to connected views.
const (
	SignalState    = "state"
	SignalCurrency = "currency"
	SignalNotice   = "notice"
)

// Signal is one message pushed over the websocket. Views re-read GET /state on "state".
type Signal struct {
	Type    string               `json:"type"`
	Level   gateways.NoticeLevel `json:"level,omitempty"`
	Message string               `json:"message,omitempty"`
}

// WSHandler fans store notifications and user notices out to every connected view.
type WSHandler struct {
	M      *melody.Melody
	logger *slog.Logger
}

// NewWSHandler creates the websocket hub.
func NewWSHandler(logger *slog.Logger) *WSHandler {
	if logger == nil {
		logger = slog.Default()
	}
	m := melody.New()
	m.Config.MaxMessageSize = 4096
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	h := &WSHandler{M: m, logger: logger}

	m.HandleConnect(func(s *melody.Session) {
		h.logger.Info("View connected", slog.String("remote_addr", s.Request.RemoteAddr))
	})
	m.HandleDisconnect(func(s *melody.Session) {
		h.logger.Info("View disconnected", slog.String("remote_addr", s.Request.RemoteAddr))
	})
	m.HandleError(func(s *melody.Session, err error) {
		h.logger.Warn("WebSocket error", slog.String("error", err.Error()))
	})
	return h
}

// HandleWS upgrades the request to a websocket.
func (h *WSHandler) HandleWS(c *gin.Context) {
	if err := h.M.HandleRequest(c.Writer, c.Request); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Failed to upgrade websocket", slog.String("error", err.Error()))
	}
}

// Broadcast sends sig to every connected view.
func (h *WSHandler) Broadcast(sig Signal) {
	if h.M.IsClosed() {
		return
	}
	msg, err := json.Marshal(sig)
	if err != nil {
		h.logger.Error("Failed to encode signal", slog.String("error", err.Error()))
		return
	}
	if err := h.M.Broadcast(msg); err != nil {
		h.logger.Warn("Failed to broadcast signal", slog.String("type", sig.Type), slog.String("error", err.Error()))
	}
}

// OnState is a state.Listener signalling views that the snapshot changed.
func (h *WSHandler) OnState(state.AppState) {
	h.Broadcast(Signal{Type: SignalState})
}

// OnCurrencyChange signals views to re-render amounts.
func (h *WSHandler) OnCurrencyChange() {
	h.Broadcast(Signal{Type: SignalCurrency})
}

// Notify implements gateways.Notifier by pushing the notice to views.
func (h *WSHandler) Notify(level gateways.NoticeLevel, message string) {
	h.logger.Info("User notice", slog.String("level", string(level)), slog.String("message", message))
	h.Broadcast(Signal{Type: SignalNotice, Level: level, Message: message})
}

// Close disconnects every view.
func (h *WSHandler) Close() error {
	return h.M.Close()
}

var _ gateways.Notifier = (*WSHandler)(nil)
