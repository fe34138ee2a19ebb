package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/finance_client/internal/core/ports/services"
	"github.com/SscSPs/finance_client/internal/dto"
	"github.com/SscSPs/finance_client/internal/state"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all bridge routes on r.
func RegisterRoutes(
	r *gin.Engine,
	store *state.Store,
	services *portssvc.ServiceContainer,
	ws *WSHandler,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
	})

	root := r.Group("")
	registerStateRoutes(root, store, services)
	registerExchangeRoutes(root, services.Conversion)

	if ws != nil {
		r.GET("/ws", ws.HandleWS)
	}
}
