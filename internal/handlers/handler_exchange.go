package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/finance_client/internal/core/ports/services"
	"github.com/SscSPs/finance_client/internal/dto"
	"github.com/SscSPs/finance_client/internal/middleware"
	"github.com/gin-gonic/gin"
)

type exchangeHandler struct {
	conversion portssvc.ConversionSvcFacade
}

func newExchangeHandler(conversion portssvc.ConversionSvcFacade) *exchangeHandler {
	return &exchangeHandler{conversion: conversion}
}

// registerExchangeRoutes registers the rate lookup and conversion routes.
func registerExchangeRoutes(rg *gin.RouterGroup, conversion portssvc.ConversionSvcFacade) {
	h := newExchangeHandler(conversion)

	rg.GET("/rates/:from/:to", h.getRate)
	rg.GET("/equivalents", h.getEquivalents)
	rg.POST("/convert", h.convert)
}

// getRate resolves a rate from the local snapshot. Unresolvable pairs are 404.
func (h *exchangeHandler) getRate(c *gin.Context) {
	from := normalizeCode(c.Param("from"))
	to := normalizeCode(c.Param("to"))

	resp := h.conversion.Rate(from, to)
	if !resp.Resolved {
		middleware.GetLoggerFromContext(c).Info("No rate path", slog.String("from", from), slog.String("to", to))
		c.JSON(http.StatusNotFound, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *exchangeHandler) getEquivalents(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var q dto.EquivalentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind query for Equivalents", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	var codes []string
	for _, code := range strings.Split(q.Codes, ",") {
		if code = normalizeCode(code); code != "" {
			codes = append(codes, code)
		}
	}
	c.JSON(http.StatusOK, h.conversion.Equivalents(q.Amount, normalizeCode(q.From), codes))
}

// convert asks the server for an authoritative conversion.
func (h *exchangeHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.ConvertSimpleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.conversion.Convert(c.Request.Context(), req.FromCurrencyID, req.ToCurrencyID, req.Amount)
	if err != nil {
		respondError(c, logger, err, "convert amount")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
