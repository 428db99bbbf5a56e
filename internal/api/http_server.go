package api

import (
	"strings"
	"sync"
	"time"

	"echoforge/internal/auth"
	"echoforge/internal/config"
	"echoforge/internal/model"
	"echoforge/internal/service"
	"echoforge/internal/storage"

	"github.com/gin-gonic/gin"
)

// HTTPHandler serves the REST API.
type HTTPHandler struct {
	cfg               config.Config
	repo              model.Repository
	storage           storage.Storage
	storagePublicBase string
	authManager       *auth.Manager

	generationService *service.GenerationService

	// SSE client registry, keyed by client-chosen ID.
	sseClients map[string][]chan sseMessage
	sseMu      sync.Mutex
}

// NewHTTPHandler creates the HTTP handler and wires the generation
// service's completion callback into the SSE registry.
func NewHTTPHandler(cfg config.Config, repo model.Repository, store storage.Storage) (*HTTPHandler, error) {
	expiry := time.Duration(cfg.JWTExpirationMinutes) * time.Minute
	authManager, err := auth.NewManager(cfg.JWTSecret, cfg.JWTIssuer, expiry)
	if err != nil {
		return nil, err
	}

	delay := time.Duration(cfg.GenerationDelayMs) * time.Millisecond
	generationSvc := service.NewGenerationService(repo, cfg.GenerationMode, delay)

	handler := &HTTPHandler{
		cfg:               cfg,
		repo:              repo,
		storage:           store,
		storagePublicBase: normalisePublicBase(cfg.StoragePublicBaseURL),
		authManager:       authManager,
		generationService: generationSvc,
		sseClients:        make(map[string][]chan sseMessage),
	}

	generationSvc.SetNotifyFunc(handler.notifyGenerationComplete)

	return handler, nil
}

func normalisePublicBase(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		trimmed = "/files"
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return strings.TrimRight(trimmed, "/")
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	return strings.TrimRight(trimmed, "/")
}

// publicURL maps a stored object key onto its public serving path.
func (h *HTTPHandler) publicURL(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed
	}
	base := h.storagePublicBase
	if base == "" {
		base = "/files"
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(trimmed, "/")
}

// notifyGenerationComplete pushes a batch completion event to the
// client that requested it.
func (h *HTTPHandler) notifyGenerationComplete(clientID string, historyID uint, status string, errMsg string) {
	if strings.TrimSpace(clientID) == "" {
		return
	}
	payload := gin.H{
		"history_id": historyID,
		"status":     status,
	}
	if trimmed := strings.TrimSpace(errMsg); trimmed != "" {
		payload["error"] = trimmed
	}
	h.publishSSEMessage(clientID, sseMessage{
		event: "generation_completed",
		data:  payload,
	})
}
