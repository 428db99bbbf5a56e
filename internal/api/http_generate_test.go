package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"echoforge/internal/entity"
	"echoforge/internal/generate"
	"echoforge/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func TestWriteGenerationError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &HTTPHandler{}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "insufficient credits",
			err:        entity.ErrInsufficientCredits,
			wantStatus: http.StatusPaymentRequired,
			wantCode:   ErrCodeInsufficientCredits,
		},
		{
			name:       "unsupported target",
			err:        fmt.Errorf("%w: twitter/article", service.ErrUnsupportedTarget),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeInvalidPlatform,
		},
		{
			name:       "external mode not wired",
			err:        fmt.Errorf("external mode for twitter-post: %w", generate.ErrNotImplemented),
			wantStatus: http.StatusNotImplemented,
			wantCode:   ErrCodeModeNotAvailable,
		},
		{
			name:       "missing resource",
			err:        fmt.Errorf("load content source: %w", gorm.ErrRecordNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   ErrCodeNotFound,
		},
		{
			name:       "other service error",
			err:        fmt.Errorf("no platforms requested"),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeGenerationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			h.writeGenerationError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			var response APIError
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if response.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", response.Code, tt.wantCode)
			}
		})
	}
}
