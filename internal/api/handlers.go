package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Handle maps a raw JSON body to an HTTP status and response body.
// Version problems and malformed bodies are client faults; anything else
// escaping a parser surfaces as a generic parse failure.
func Handle(raw []byte) (int, any) {
	data, err := Dispatch(raw)
	if err == nil {
		return http.StatusOK, data
	}

	var unsupported *UnsupportedVersionError
	switch {
	case errors.Is(err, ErrMissingVersion), errors.Is(err, ErrInvalidBody):
		return http.StatusBadRequest, ErrorResponse{Detail: err.Error()}
	case errors.As(err, &unsupported):
		return http.StatusBadRequest, ErrorResponse{Detail: err.Error()}
	default:
		return http.StatusInternalServerError, ErrorResponse{Detail: "Failed to parse data: " + err.Error()}
	}
}

func handleParse(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		slog.Warn("[API] Failed to read request body",
			slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Unable to read request body"})
		return
	}

	status, resp := Handle(body)
	if fail, ok := resp.(ErrorResponse); ok {
		slog.Warn("[API] Parse request failed",
			slog.Int("status", status),
			slog.String("detail", fail.Detail))
	}
	c.JSON(status, resp)
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "HackerNews Parser API",
		"docs":    "/docs",
		"health":  "/health",
	})
}
