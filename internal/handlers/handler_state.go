package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_client/internal/core/ports/services"
	"github.com/SscSPs/finance_client/internal/dto"
	"github.com/SscSPs/finance_client/internal/middleware"
	"github.com/SscSPs/finance_client/internal/state"
	"github.com/gin-gonic/gin"
)

// StateResponse is the snapshot served to views.
type StateResponse struct {
	state.AppState
	NeedsPrimaryCurrency bool   `json:"needsPrimaryCurrency"`
	DefaultCurrencyCode  string `json:"defaultCurrencyCode,omitempty"`
	DefaultSymbol        string `json:"defaultSymbol"`
}

type stateHandler struct {
	store   *state.Store
	session portssvc.SessionSvcFacade
	display portssvc.CurrencyDisplaySvc
}

func newStateHandler(store *state.Store, session portssvc.SessionSvcFacade, display portssvc.CurrencyDisplaySvc) *stateHandler {
	return &stateHandler{store: store, session: session, display: display}
}

// registerStateRoutes registers the snapshot and UI routes.
func registerStateRoutes(rg *gin.RouterGroup, store *state.Store, services *portssvc.ServiceContainer) {
	h := newStateHandler(store, services.Session, services.Display)

	rg.GET("/state", h.getState)
	rg.PUT("/ui/tab", h.setTab)
}

func (h *stateHandler) getState(c *gin.Context) {
	resp := StateResponse{
		AppState:             h.store.State(),
		NeedsPrimaryCurrency: h.session.NeedsPrimaryCurrency(),
		DefaultSymbol:        h.display.Symbol(""),
	}
	if cur, ok := h.display.DefaultCurrency(); ok {
		resp.DefaultCurrencyCode = cur.Code
		resp.DefaultSymbol = cur.DisplaySymbol()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *stateHandler) setTab(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.SetTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetTab", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ui := h.store.State().UI
	ui.CurrentTab = req.Tab
	next := h.store.SetState(state.WithUI(ui))
	c.JSON(http.StatusOK, next.UI)
}
