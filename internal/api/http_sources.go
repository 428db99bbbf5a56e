package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"echoforge/internal/entity"
	"echoforge/internal/storage"
	"echoforge/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const maxImportBodyBytes = 4 << 20

// CreateContentSource stores new source material. Inline file payloads
// go to object storage, URL imports snapshot the page text, and the
// upload cost is charged once the row exists.
func (h *HTTPHandler) CreateContentSource(c *gin.Context) {
	requestUser := CurrentUser(c)
	if requestUser == nil {
		Unauthorized(c, "authentication required")
		return
	}
	if h.repo == nil {
		ServiceUnavailable(c, "content repository not available")
		return
	}

	var req entity.ContentSourceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		MissingField(c, "title")
		return
	}
	contentType := strings.ToLower(strings.TrimSpace(req.ContentType))
	if !entity.ValidContentType(contentType) {
		BadRequest(c, ErrCodeInvalidRequest, fmt.Sprintf("unsupported content type: %s", req.ContentType))
		return
	}

	sourceContent := strings.TrimSpace(req.SourceContent)
	sourceURL := strings.TrimSpace(req.SourceURL)
	filePayload := strings.TrimSpace(req.FilePayload)
	if sourceContent == "" && sourceURL == "" && filePayload == "" {
		BadRequest(c, ErrCodeMissingField, "one of source_content, source_url, or file_payload is required")
		return
	}

	metadata := entity.JSONMap{}
	for k, v := range req.Metadata {
		metadata[k] = v
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	filePath := ""
	if filePayload != "" {
		if h.storage == nil {
			ServiceUnavailable(c, "file storage not available")
			return
		}
		data, ext, err := utils.DecodeFilePayload(filePayload, req.FileName)
		if err != nil {
			BadRequest(c, ErrCodeInvalidRequest, fmt.Sprintf("invalid file payload: %v", err))
			return
		}

		baseName := storage.SanitizeToken(strings.TrimSuffix(req.FileName, "."+ext))
		if baseName == "" {
			baseName = storage.SanitizeToken(title)
		}
		filePath, err = h.storage.Save(ctx, data, storage.SaveOptions{
			Category:  storage.CategorySources,
			Extension: ext,
			BaseName:  baseName,
		})
		if err != nil {
			logrus.WithError(err).WithField("user_id", requestUser.ID).Error("failed to store source file")
			InternalError(c, "failed to store file")
			return
		}

		metadata["file_name"] = strings.TrimSpace(req.FileName)
		metadata["file_size"] = len(data)
	}

	if sourceContent == "" && sourceURL != "" {
		snapshot, err := h.snapshotURL(ctx, sourceURL)
		if err != nil {
			h.cleanupStoredFile(filePath)
			BadRequest(c, ErrCodeInvalidRequest, fmt.Sprintf("failed to import url: %v", err))
			return
		}
		sourceContent = snapshot
		metadata["imported_at"] = time.Now().UTC().Format(time.RFC3339)
	}

	if sourceContent != "" {
		metadata["word_count"] = len(strings.Fields(sourceContent))
	}

	source := &entity.DbContentSource{
		UserID:        requestUser.ID,
		Title:         title,
		ContentType:   contentType,
		SourceContent: sourceContent,
		SourceURL:     sourceURL,
		FilePath:      filePath,
		Metadata:      metadata,
	}

	if err := h.repo.CreateContentSource(ctx, source); err != nil {
		h.cleanupStoredFile(filePath)
		logrus.WithError(err).WithField("user_id", requestUser.ID).Error("failed to create content source")
		InternalError(c, "failed to create content source")
		return
	}

	if err := h.generationService.ChargeUpload(ctx, requestUser.ID, title, source.ID); err != nil {
		// Roll the upload back so a broke account keeps nothing.
		if delErr := h.repo.DeleteContentSource(ctx, requestUser.ID, source.ID); delErr != nil {
			logrus.WithError(delErr).WithField("source_id", source.ID).Warn("failed to roll back unpaid source")
		}
		h.cleanupStoredFile(filePath)
		if errors.Is(err, entity.ErrInsufficientCredits) {
			PaymentRequired(c, "not enough credits to upload content")
			return
		}
		logrus.WithError(err).WithField("user_id", requestUser.ID).Error("failed to charge upload")
		InternalError(c, "failed to charge upload")
		return
	}

	c.JSON(http.StatusCreated, h.makeSourceItem(*source))
}

func (h *HTTPHandler) ListContentSources(c *gin.Context) {
	requestUser := CurrentUser(c)
	if requestUser == nil {
		Unauthorized(c, "authentication required")
		return
	}

	var query entity.ContentSourceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		BadRequest(c, ErrCodeInvalidRequest, "invalid query parameters")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	sources, meta, err := h.repo.ListContentSources(ctx, requestUser.ID, &query)
	if err != nil {
		logrus.WithError(err).WithField("user_id", requestUser.ID).Error("failed to list content sources")
		InternalError(c, "failed to load content sources")
		return
	}

	response := entity.ContentSourceListResponse{
		Sources: make([]entity.ContentSourceItem, 0, len(sources)),
		Meta:    meta,
	}
	for _, source := range sources {
		response.Sources = append(response.Sources, h.makeSourceItem(source))
	}

	c.JSON(http.StatusOK, response)
}

func (h *HTTPHandler) GetContentSource(c *gin.Context) {
	requestUser := CurrentUser(c)
	if requestUser == nil {
		Unauthorized(c, "authentication required")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		BadRequest(c, ErrCodeInvalidRequest, "invalid source id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	source, err := h.repo.GetContentSource(ctx, requestUser.ID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeSourceNotFound, "content source not found")
			return
		}
		logrus.WithError(err).WithField("source_id", id).Error("failed to load content source")
		InternalError(c, "failed to load content source")
		return
	}

	c.JSON(http.StatusOK, h.makeSourceItem(*source))
}

func (h *HTTPHandler) UpdateContentSource(c *gin.Context) {
	requestUser := CurrentUser(c)
	if requestUser == nil {
		Unauthorized(c, "authentication required")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		BadRequest(c, ErrCodeInvalidRequest, "invalid source id")
		return
	}

	var req entity.ContentSourceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	var updates entity.ContentSourceUpdates
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			BadRequest(c, ErrCodeInvalidRequest, "title must not be empty")
			return
		}
		updates.Title = &title
	}
	updates.SourceContent = req.SourceContent
	updates.SourceURL = req.SourceURL
	updates.Metadata = req.Metadata

	if updates.IsEmpty() {
		BadRequest(c, ErrCodeInvalidRequest, "no fields to update")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.UpdateContentSource(ctx, requestUser.ID, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeSourceNotFound, "content source not found")
			return
		}
		logrus.WithError(err).WithField("source_id", id).Error("failed to update content source")
		InternalError(c, "failed to update content source")
		return
	}

	source, err := h.repo.GetContentSource(ctx, requestUser.ID, id)
	if err != nil {
		logrus.WithError(err).WithField("source_id", id).Error("failed to reload content source")
		InternalError(c, "failed to load updated content source")
		return
	}

	c.JSON(http.StatusOK, h.makeSourceItem(*source))
}

// DeleteContentSource removes the source, its generated outputs, and
// the stored file, in that order.
func (h *HTTPHandler) DeleteContentSource(c *gin.Context) {
	requestUser := CurrentUser(c)
	if requestUser == nil {
		Unauthorized(c, "authentication required")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		BadRequest(c, ErrCodeInvalidRequest, "invalid source id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	source, err := h.repo.GetContentSource(ctx, requestUser.ID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeSourceNotFound, "content source not found")
			return
		}
		logrus.WithError(err).WithField("source_id", id).Error("failed to load content source for deletion")
		InternalError(c, "failed to delete content source")
		return
	}

	if err := h.repo.DeleteContentSource(ctx, requestUser.ID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, ErrCodeSourceNotFound, "content source not found")
			return
		}
		logrus.WithError(err).WithField("source_id", id).Error("failed to delete content source")
		InternalError(c, "failed to delete content source")
		return
	}

	h.cleanupStoredFile(source.FilePath)

	c.Status(http.StatusNoContent)
}

func (h *HTTPHandler) makeSourceItem(source entity.DbContentSource) entity.ContentSourceItem {
	return entity.ContentSourceItem{
		DbContentSource: source,
		FileURL:         h.publicURL(source.FilePath),
	}
}

// cleanupStoredFile removes an orphaned object; failures are logged
// and otherwise ignored.
func (h *HTTPHandler) cleanupStoredFile(filePath string) {
	if h.storage == nil || strings.TrimSpace(filePath) == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := h.storage.Delete(ctx, filePath); err != nil {
		logrus.WithError(err).WithField("path", filePath).Warn("failed to delete stored file")
	}
}

var (
	scriptBlockPattern = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`)
	blockClosePattern  = regexp.MustCompile(`(?i)</(p|div|h[1-6]|li|br|tr)>`)
	htmlTagPattern     = regexp.MustCompile(`(?s)<[^>]+>`)
	spaceRunPattern    = regexp.MustCompile(`[ \t]+`)
	newlineRunPattern  = regexp.MustCompile(`\n{3,}`)
)

// snapshotURL downloads a page and reduces it to plain text so the
// transformer always works from a stable local copy.
func (h *HTTPHandler) snapshotURL(ctx context.Context, rawURL string) (string, error) {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return "", fmt.Errorf("unsupported url scheme")
	}

	reqCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch url: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch url http %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImportBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	text := string(body)
	if strings.Contains(resp.Header.Get("Content-Type"), "html") || strings.Contains(text, "<html") {
		text = stripHTML(text)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("no text content at url")
	}
	return text, nil
}

// stripHTML reduces markup to readable text. Block boundaries become
// newlines so paragraph structure survives the snapshot.
func stripHTML(input string) string {
	out := scriptBlockPattern.ReplaceAllString(input, " ")
	out = blockClosePattern.ReplaceAllString(out, "\n")
	out = htmlTagPattern.ReplaceAllString(out, " ")
	out = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&#39;", "'", "&nbsp;", " ").Replace(out)
	out = spaceRunPattern.ReplaceAllString(out, " ")

	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	out = strings.Join(lines, "\n")
	out = newlineRunPattern.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}
