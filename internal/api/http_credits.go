package api

import (
	"context"
	"net/http"
	"time"

	"echoforge/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GetCredits returns the balance, creating the free tier row on first
// access.
func (h *HTTPHandler) GetCredits(c *gin.Context) {
	requestUser := CurrentUser(c)
	if requestUser == nil {
		Unauthorized(c, "authentication required")
		return
	}
	if h.repo == nil {
		ServiceUnavailable(c, "credit repository not available")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	credits, err := h.repo.GetUserCredits(ctx, requestUser.ID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", requestUser.ID).Error("failed to load user credits")
		InternalError(c, "failed to load credits")
		return
	}

	c.JSON(http.StatusOK, entity.UserCreditsResponse{
		TotalCredits:     credits.TotalCredits,
		UsedCredits:      credits.UsedCredits,
		RemainingCredits: credits.Remaining(),
	})
}

// ListCreditUsage returns the deduction ledger, newest first.
func (h *HTTPHandler) ListCreditUsage(c *gin.Context) {
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

	entries, meta, err := h.repo.ListCreditUsage(ctx, requestUser.ID, &params)
	if err != nil {
		logrus.WithError(err).WithField("user_id", requestUser.ID).Error("failed to list credit usage")
		InternalError(c, "failed to load credit usage")
		return
	}

	c.JSON(http.StatusOK, entity.CreditUsageListResponse{Entries: entries, Meta: meta})
}

// GrantCredits lets an admin top up another user's balance.
func (h *HTTPHandler) GrantCredits(c *gin.Context) {
	requestUser := CurrentUser(c)
	if requestUser == nil || !requestUser.IsAdmin() {
		Forbidden(c, "admin privileges required")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		BadRequest(c, ErrCodeInvalidRequest, "invalid user id")
		return
	}

	var req struct {
		Amount int `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		BadRequest(c, ErrCodeInvalidRequest, "amount must be a positive integer")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.repo.GetUserByID(ctx, id); err != nil {
		NotFound(c, ErrCodeUserNotFound, "user not found")
		return
	}

	if err := h.repo.AddCredits(ctx, id, req.Amount); err != nil {
		logrus.WithError(err).WithField("user_id", id).Error("failed to grant credits")
		InternalError(c, "failed to grant credits")
		return
	}

	credits, err := h.repo.GetUserCredits(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("user_id", id).Error("failed to reload credits")
		InternalError(c, "failed to load credits")
		return
	}

	logrus.WithFields(logrus.Fields{
		"admin_id": requestUser.ID,
		"user_id":  id,
		"amount":   req.Amount,
	}).Info("granted credits")

	c.JSON(http.StatusOK, entity.UserCreditsResponse{
		TotalCredits:     credits.TotalCredits,
		UsedCredits:      credits.UsedCredits,
		RemainingCredits: credits.Remaining(),
	})
}
