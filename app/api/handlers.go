package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

func NewHandler(dispatcher DispatcherInterface) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		startedAt:  time.Now(),
		parsed:     make(map[string]int),
	}
}

type parseRequest struct {
	Body string `json:"body"`
}

// ParseLead accepts either a raw text/markup payload or a JSON object
// with a "body" field; a non-empty JSON body wins. Content-processing
// faults never surface as non-200 responses.
func (h *Handler) ParseLead(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		slog.Error("Failed to read request body", "error", err)
		raw = nil
	}

	body := string(raw)
	var req parseRequest
	if json.Unmarshal(raw, &req) == nil && req.Body != "" {
		body = req.Body
	}

	if strings.TrimSpace(body) == "" {
		c.JSON(http.StatusOK, gin.H{"error": "No email content provided."})
		return
	}

	result := h.dispatcher.Run(body)
	h.recordParse(result.Source)

	slog.Debug("Lead parsed", "source", result.Source,
		"has_debug", result.ErrorDebug != "")

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) GetStats(c *gin.Context) {
	h.mu.Lock()
	bySource := make(map[string]int, len(h.parsed))
	total := 0
	for source, count := range h.parsed {
		bySource[source] = count
		total += count
	}
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"parsed_total":     total,
		"parsed_by_source": bySource,
		"uptime":           time.Since(h.startedAt).Round(time.Second).String(),
	})
}

func (h *Handler) recordParse(source string) {
	h.mu.Lock()
	h.parsed[source]++
	h.mu.Unlock()
}
