package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sparkboard-dev/sparkboard/internal/config"
	"github.com/sparkboard-dev/sparkboard/internal/logger"
	"github.com/sparkboard-dev/sparkboard/internal/markdown"
	"github.com/sparkboard-dev/sparkboard/internal/service"
)

type Handler struct {
	auth      service.AuthService
	board     service.BoardService
	spark     service.SparkService
	media     service.MediaService
	community service.CommunityService
	markdown  *markdown.Renderer
	health    Pinger
	cfg       *config.Config
}

// Pinger reports whether the backing store can handle requests.
type Pinger interface {
	Ping(ctx context.Context) error
}

func New(auth service.AuthService, board service.BoardService, spark service.SparkService, media service.MediaService, community service.CommunityService, markdown *markdown.Renderer, health Pinger, cfg *config.Config) *Handler {
	return &Handler{auth, board, spark, media, community, markdown, health, cfg}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
