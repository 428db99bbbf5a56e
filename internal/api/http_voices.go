package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"echoforge/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func (h *HTTPHandler) CreateBrandVoice(c *gin.Context) {
	requestUser := CurrentUser(c)
	if requestUser == nil {
		Unauthorized(c, "authentication required")
		return
	}
	if h.repo == nil {
		ServiceUnavailable(c, "voice repository not available")
		return
	}

	var req entity.BrandVoiceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		MissingField(c, "name")
		return
	}
	tone := strings.ToLower(strings.TrimSpace(req.Tone))
	if !entity.ValidTone(tone) {
		BadRequest(c, ErrCodeInvalidTone, fmt.Sprintf("unsupported tone: %s", req.Tone))
		return
	}

	voice := &entity.DbBrandVoice{
		UserID:         requestUser.ID,
		Name:           name,
		Tone:           tone,
		StyleGuide:     strings.TrimSpace(req.StyleGuide),
		TargetAudience: strings.TrimSpace(req.TargetAudience),
		ExampleTexts:   entity.StringArray(req.ExampleTexts),
		IsDefault:      req.IsDefault,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.CreateBrandVoice(ctx, voice); err != nil {
		logrus.WithError(err).WithField("user_id", requestUser.ID).Error("failed to create brand voice")
		InternalError(c, "failed to create brand voice")
		return
	}

	c.JSON(http.StatusCreated, voice)
}

func (h *HTTPHandler) ListBrandVoices(c *gin.Context) {
	requestUser := CurrentUser(c)
	if requestUser == nil {
		Unauthorized(c, "authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	voices, err := h.repo.ListBrandVoices(ctx, requestUser.ID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", requestUser.ID).Error("failed to list brand voices")
		InternalError(c, "failed to load brand voices")
		return
	}

	c.JSON(http.StatusOK, entity.BrandVoiceListResponse{Voices: voices})
}

func (h *HTTPHandler) GetBrandVoice(c *gin.Context) {
	requestUser := CurrentUser(c)
	if requestUser == nil {
		Unauthorized(c, "authentication required")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		BadRequest(c, ErrCodeInvalidRequest, "invalid voice id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	voice, err := h.repo.GetBrandVoice(ctx, requestUser.ID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeVoiceNotFound, "brand voice not found")
			return
		}
		logrus.WithError(err).WithField("voice_id", id).Error("failed to load brand voice")
		InternalError(c, "failed to load brand voice")
		return
	}

	c.JSON(http.StatusOK, voice)
}

// GetDefaultBrandVoice returns the default voice, falling back to the
// most recently created one when none is flagged.
func (h *HTTPHandler) GetDefaultBrandVoice(c *gin.Context) {
	requestUser := CurrentUser(c)
	if requestUser == nil {
		Unauthorized(c, "authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	voice, err := h.repo.GetDefaultBrandVoice(ctx, requestUser.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logrus.WithError(err).WithField("user_id", requestUser.ID).Error("failed to load default brand voice")
			InternalError(c, "failed to load default brand voice")
			return
		}
		voices, listErr := h.repo.ListBrandVoices(ctx, requestUser.ID)
		if listErr != nil {
			logrus.WithError(listErr).WithField("user_id", requestUser.ID).Error("failed to list brand voices for fallback")
			InternalError(c, "failed to load default brand voice")
			return
		}
		if len(voices) == 0 {
			NotFound(c, ErrCodeVoiceNotFound, "no brand voices configured")
			return
		}
		voice = &voices[0]
	}

	c.JSON(http.StatusOK, voice)
}

func (h *HTTPHandler) UpdateBrandVoice(c *gin.Context) {
	requestUser := CurrentUser(c)
	if requestUser == nil {
		Unauthorized(c, "authentication required")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		BadRequest(c, ErrCodeInvalidRequest, "invalid voice id")
		return
	}

	var req entity.BrandVoiceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	var updates entity.BrandVoiceUpdates
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			BadRequest(c, ErrCodeInvalidRequest, "name must not be empty")
			return
		}
		updates.Name = &name
	}
	if req.Tone != nil {
		tone := strings.ToLower(strings.TrimSpace(*req.Tone))
		if !entity.ValidTone(tone) {
			BadRequest(c, ErrCodeInvalidTone, fmt.Sprintf("unsupported tone: %s", *req.Tone))
			return
		}
		updates.Tone = &tone
	}
	updates.StyleGuide = req.StyleGuide
	updates.TargetAudience = req.TargetAudience
	if req.ExampleTexts != nil {
		examples := entity.StringArray(*req.ExampleTexts)
		updates.ExampleTexts = &examples
	}
	updates.IsDefault = req.IsDefault

	if updates.IsEmpty() {
		BadRequest(c, ErrCodeInvalidRequest, "no fields to update")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.UpdateBrandVoice(ctx, requestUser.ID, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeVoiceNotFound, "brand voice not found")
			return
		}
		logrus.WithError(err).WithField("voice_id", id).Error("failed to update brand voice")
		InternalError(c, "failed to update brand voice")
		return
	}

	voice, err := h.repo.GetBrandVoice(ctx, requestUser.ID, id)
	if err != nil {
		logrus.WithError(err).WithField("voice_id", id).Error("failed to reload brand voice")
		InternalError(c, "failed to load updated brand voice")
		return
	}

	c.JSON(http.StatusOK, voice)
}

func (h *HTTPHandler) DeleteBrandVoice(c *gin.Context) {
	requestUser := CurrentUser(c)
	if requestUser == nil {
		Unauthorized(c, "authentication required")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		BadRequest(c, ErrCodeInvalidRequest, "invalid voice id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.DeleteBrandVoice(ctx, requestUser.ID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeVoiceNotFound, "brand voice not found")
			return
		}
		logrus.WithError(err).WithField("voice_id", id).Error("failed to delete brand voice")
		InternalError(c, "failed to delete brand voice")
		return
	}

	c.Status(http.StatusNoContent)
}
