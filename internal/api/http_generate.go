package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"echoforge/internal/entity"
	"echoforge/internal/generate"
	"echoforge/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Generate runs one repurposing batch synchronously and returns the
// persisted outputs. SSE completion events fire as well when the
// request carries a client_id.
func (h *HTTPHandler) Generate(c *gin.Context) {
	requestUser := CurrentUser(c)
	if requestUser == nil {
		Unauthorized(c, "authentication required")
		return
	}
	if h.repo == nil || h.generationService == nil {
		ServiceUnavailable(c, "generation service not available")
		return
	}

	var req entity.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}
	req.Mode = strings.ToLower(strings.TrimSpace(req.Mode))
	req.ClientID = strings.TrimSpace(req.ClientID)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Minute)
	defer cancel()

	result, err := h.generationService.Generate(ctx, requestUser.ID, req)
	if err != nil {
		h.writeGenerationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Regenerate reruns one stored output and returns the refreshed row.
func (h *HTTPHandler) Regenerate(c *gin.Context) {
	requestUser := CurrentUser(c)
	if requestUser == nil {
		Unauthorized(c, "authentication required")
		return
	}
	if h.repo == nil || h.generationService == nil {
		ServiceUnavailable(c, "generation service not available")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		BadRequest(c, ErrCodeInvalidRequest, "invalid content id")
		return
	}

	var req struct {
		Mode string `json:"mode"`
	}
	// The body is optional; an empty one keeps the default mode.
	_ = c.ShouldBindJSON(&req)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Minute)
	defer cancel()

	item, err := h.generationService.Regenerate(ctx, requestUser.ID, id, strings.ToLower(strings.TrimSpace(req.Mode)))
	if err != nil {
		h.writeGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *HTTPHandler) writeGenerationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrInsufficientCredits):
		PaymentRequired(c, "not enough credits for this operation")
	case errors.Is(err, service.ErrUnsupportedTarget):
		BadRequest(c, ErrCodeInvalidPlatform, err.Error())
	case errors.Is(err, generate.ErrNotImplemented):
		ErrorResponse(c, http.StatusNotImplemented, ErrCodeModeNotAvailable, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, ErrCodeNotFound, "requested resource not found")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		ErrorResponse(c, http.StatusGatewayTimeout, ErrCodeGenerationFailed, "generation timed out")
	default:
		// Everything else from the service layer is a request problem
		// (empty batch, unknown mode).
		BadRequest(c, ErrCodeGenerationFailed, err.Error())
	}
}

func (h *HTTPHandler) ListGeneratedContents(c *gin.Context) {
	requestUser := CurrentUser(c)
	if requestUser == nil {
		Unauthorized(c, "authentication required")
		return
	}

	var query entity.GeneratedContentQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		BadRequest(c, ErrCodeInvalidRequest, "invalid query parameters")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	items, meta, err := h.repo.ListGeneratedContents(ctx, requestUser.ID, &query)
	if err != nil {
		logrus.WithError(err).WithField("user_id", requestUser.ID).Error("failed to list generated content")
		InternalError(c, "failed to load generated content")
		return
	}

	c.JSON(http.StatusOK, entity.GeneratedContentListResponse{Items: items, Meta: meta})
}

func (h *HTTPHandler) GetGeneratedContent(c *gin.Context) {
	requestUser := CurrentUser(c)
	if requestUser == nil {
		Unauthorized(c, "authentication required")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		BadRequest(c, ErrCodeInvalidRequest, "invalid content id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	item, err := h.repo.GetGeneratedContent(ctx, requestUser.ID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeContentNotFound, "generated content not found")
			return
		}
		logrus.WithError(err).WithField("content_id", id).Error("failed to load generated content")
		InternalError(c, "failed to load generated content")
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateGeneratedContent accepts manual edits. A text change without
// an explicit status moves the row to edited.
func (h *HTTPHandler) UpdateGeneratedContent(c *gin.Context) {
	requestUser := CurrentUser(c)
	if requestUser == nil {
		Unauthorized(c, "authentication required")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		BadRequest(c, ErrCodeInvalidRequest, "invalid content id")
		return
	}

	var req entity.GeneratedContentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	var updates entity.GeneratedContentUpdates
	updates.GeneratedText = req.GeneratedText
	if req.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*req.Status))
		if !entity.ValidContentStatus(status) {
			BadRequest(c, ErrCodeInvalidStatus, "unsupported status: "+*req.Status)
			return
		}
		updates.Status = &status
	} else if req.GeneratedText != nil {
		status := entity.ContentStatusEdited
		updates.Status = &status
	}

	if updates.IsEmpty() {
		BadRequest(c, ErrCodeInvalidRequest, "no fields to update")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.UpdateGeneratedContent(ctx, requestUser.ID, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeContentNotFound, "generated content not found")
			return
		}
		logrus.WithError(err).WithField("content_id", id).Error("failed to update generated content")
		InternalError(c, "failed to update generated content")
		return
	}

	item, err := h.repo.GetGeneratedContent(ctx, requestUser.ID, id)
	if err != nil {
		logrus.WithError(err).WithField("content_id", id).Error("failed to reload generated content")
		InternalError(c, "failed to load updated content")
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *HTTPHandler) DeleteGeneratedContent(c *gin.Context) {
	requestUser := CurrentUser(c)
	if requestUser == nil {
		Unauthorized(c, "authentication required")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		BadRequest(c, ErrCodeInvalidRequest, "invalid content id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.DeleteGeneratedContent(ctx, requestUser.ID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeContentNotFound, "generated content not found")
			return
		}
		logrus.WithError(err).WithField("content_id", id).Error("failed to delete generated content")
		InternalError(c, "failed to delete generated content")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *HTTPHandler) ListGenerationHistory(c *gin.Context) {
	requestUser := CurrentUser(c)
	if requestUser == nil {
		Unauthorized(c, "authentication required")
		return
	}

	var params entity.BaseParams
	if err := c.ShouldBindQuery(&params); err != nil {
		BadRequest(c, ErrCodeInvalidRequest, "invalid query parameters")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	entries, meta, err := h.repo.ListGenerationHistory(ctx, requestUser.ID, &params)
	if err != nil {
		logrus.WithError(err).WithField("user_id", requestUser.ID).Error("failed to list generation history")
		InternalError(c, "failed to load generation history")
		return
	}

	c.JSON(http.StatusOK, entity.GenerationHistoryListResponse{Entries: entries, Meta: meta})
}
