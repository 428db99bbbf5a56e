package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"echoforge/internal/entity"
	"echoforge/internal/generate"
	"echoforge/internal/model"
	"echoforge/internal/platform"
	"echoforge/internal/utils"

	"github.com/sirupsen/logrus"
)

// ErrUnsupportedTarget marks a platform/format pair the catalog does
// not know.
var ErrUnsupportedTarget = errors.New("unsupported platform/format")

// GenerationService owns the repurposing workflow: validate targets,
// run the transformer, charge credits, and persist the outputs.
type GenerationService struct {
	repo        model.Repository
	defaultMode string
	delay       time.Duration

	// notifyFunc pushes completion events to connected clients (set
	// by the HTTP layer for SSE).
	notifyFunc func(clientID string, historyID uint, status string, errMsg string)
}

// NewGenerationService creates a generation service instance.
func NewGenerationService(repo model.Repository, defaultMode string, delay time.Duration) *GenerationService {
	return &GenerationService{
		repo:        repo,
		defaultMode: defaultMode,
		delay:       delay,
	}
}

// SetNotifyFunc registers the completion callback used for SSE pushes.
func (s *GenerationService) SetNotifyFunc(fn func(clientID string, historyID uint, status string, errMsg string)) {
	s.notifyFunc = fn
}

// GenerateResult bundles the persisted outputs of one batch.
type GenerateResult struct {
	Items   []entity.DbGeneratedContent `json:"items"`
	History *entity.DbGenerationHistory `json:"history"`
}

// Generate runs one batch: every platform/format pair is transformed
// concurrently, credits are deducted once per batch, and the outputs
// plus an audit row are persisted. Credits are only charged after the
// transformer succeeds, so a failed batch costs nothing.
func (s *GenerationService) Generate(ctx context.Context, userID uint, req entity.GenerateRequest) (*GenerateResult, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("generation service not initialised")
	}
	if userID == 0 {
		return nil, fmt.Errorf("invalid user id")
	}
	if len(req.Platforms) == 0 {
		return nil, fmt.Errorf("no platforms requested")
	}
	for _, target := range req.Platforms {
		if !platform.ValidFormat(target.Platform, target.Format) {
			return nil, fmt.Errorf("%w: %s/%s", ErrUnsupportedTarget, target.Platform, target.Format)
		}
	}

	source, err := s.repo.GetContentSource(ctx, userID, req.SourceID)
	if err != nil {
		return nil, fmt.Errorf("load content source: %w", err)
	}

	voice, err := s.resolveVoice(ctx, userID, req.BrandVoiceID)
	if err != nil {
		return nil, err
	}

	transformer, err := s.transformerFor(req.Mode)
	if err != nil {
		return nil, err
	}

	requests := make([]generate.Request, 0, len(req.Platforms))
	for _, target := range req.Platforms {
		requests = append(requests, buildGenerateRequest(source, voice, target))
	}

	results, err := transformer.TransformMany(ctx, requests)
	if err != nil {
		s.notifyComplete(req.ClientID, 0, "failure", err.Error())
		return nil, err
	}

	platforms := make([]string, 0, len(req.Platforms))
	for _, target := range req.Platforms {
		platforms = append(platforms, target.Platform)
	}

	// One server-generated ID ties the ledger entry, the outputs, and
	// the history row of this batch together.
	batchID := utils.GenerateUUID()

	cost := entity.CreditCosts[entity.OperationGenerate]
	description := fmt.Sprintf("Generated %d outputs from %q", len(results), source.Title)
	if err := s.repo.DeductCredits(ctx, userID, entity.OperationGenerate, cost, description, entity.JSONMap{
		"source_id": source.ID,
		"platforms": platforms,
		"batch_id":  batchID,
	}); err != nil {
		return nil, err
	}

	items := make([]entity.DbGeneratedContent, 0, len(results))
	for _, result := range results {
		metadata := entity.JSONMap(result.Metadata)
		metadata["batch_id"] = batchID
		items = append(items, entity.DbGeneratedContent{
			UserID:        userID,
			SourceID:      source.ID,
			BrandVoiceID:  voiceID(voice),
			Platform:      result.Platform,
			Format:        result.Format,
			GeneratedText: result.Content,
			Status:        entity.ContentStatusDraft,
			Metadata:      metadata,
		})
	}

	items, err = s.repo.CreateGeneratedContents(ctx, items)
	if err != nil {
		s.notifyComplete(req.ClientID, 0, "failure", err.Error())
		return nil, fmt.Errorf("persist generated content: %w", err)
	}

	history := &entity.DbGenerationHistory{
		UserID:             userID,
		SourceID:           source.ID,
		BatchID:            batchID,
		PlatformsGenerated: entity.StringArray(platforms),
		TotalOutputs:       len(items),
	}
	if err := s.repo.CreateGenerationHistory(ctx, history); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id":   userID,
			"source_id": source.ID,
		}).Warn("failed to record generation history")
	}

	logrus.WithFields(logrus.Fields{
		"user_id":   userID,
		"source_id": source.ID,
		"outputs":   len(items),
		"mode":      transformer.StrategyName(),
	}).Info("generated content batch")

	s.notifyComplete(req.ClientID, history.ID, "success", "")

	return &GenerateResult{Items: items, History: history}, nil
}

// Regenerate reruns the transformation for one stored output and
// replaces its text, metadata, and status.
func (s *GenerationService) Regenerate(ctx context.Context, userID, contentID uint, mode string) (*entity.DbGeneratedContent, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("generation service not initialised")
	}

	existing, err := s.repo.GetGeneratedContent(ctx, userID, contentID)
	if err != nil {
		return nil, fmt.Errorf("load generated content: %w", err)
	}

	source, err := s.repo.GetContentSource(ctx, userID, existing.SourceID)
	if err != nil {
		return nil, fmt.Errorf("load content source: %w", err)
	}

	var voice *entity.DbBrandVoice
	if existing.BrandVoiceID != nil {
		// A deleted voice detaches quietly; regeneration continues without it.
		voice, _ = s.repo.GetBrandVoice(ctx, userID, *existing.BrandVoiceID)
	}

	transformer, err := s.transformerFor(mode)
	if err != nil {
		return nil, err
	}

	result, err := transformer.Transform(ctx, buildGenerateRequest(source, voice, entity.PlatformFormat{
		Platform: existing.Platform,
		Format:   existing.Format,
	}))
	if err != nil {
		return nil, err
	}

	cost := entity.CreditCosts[entity.OperationRegenerate]
	description := fmt.Sprintf("Regenerated %s %s for %q", existing.Platform, existing.Format, source.Title)
	if err := s.repo.DeductCredits(ctx, userID, entity.OperationRegenerate, cost, description, entity.JSONMap{
		"content_id": existing.ID,
		"source_id":  source.ID,
	}); err != nil {
		return nil, err
	}

	status := entity.ContentStatusDraft
	metadata := entity.JSONMap(result.Metadata)
	updates := entity.GeneratedContentUpdates{
		GeneratedText: &result.Content,
		Status:        &status,
		Metadata:      &metadata,
	}
	if err := s.repo.UpdateGeneratedContent(ctx, userID, contentID, updates); err != nil {
		return nil, fmt.Errorf("update generated content: %w", err)
	}

	return s.repo.GetGeneratedContent(ctx, userID, contentID)
}

// ChargeUpload deducts the upload cost and records the ledger entry.
func (s *GenerationService) ChargeUpload(ctx context.Context, userID uint, title string, sourceID uint) error {
	if s == nil || s.repo == nil {
		return fmt.Errorf("generation service not initialised")
	}
	cost := entity.CreditCosts[entity.OperationUpload]
	description := fmt.Sprintf("Uploaded %q", title)
	return s.repo.DeductCredits(ctx, userID, entity.OperationUpload, cost, description, entity.JSONMap{
		"source_id": sourceID,
	})
}

func (s *GenerationService) resolveVoice(ctx context.Context, userID uint, voiceID *uint) (*entity.DbBrandVoice, error) {
	if voiceID != nil {
		voice, err := s.repo.GetBrandVoice(ctx, userID, *voiceID)
		if err != nil {
			return nil, fmt.Errorf("load brand voice: %w", err)
		}
		return voice, nil
	}

	// No explicit voice: fall back to the user's default, if one exists.
	voice, err := s.repo.GetDefaultBrandVoice(ctx, userID)
	if err != nil {
		return nil, nil
	}
	return voice, nil
}

func (s *GenerationService) transformerFor(mode string) (*generate.Transformer, error) {
	if strings.TrimSpace(mode) == "" {
		mode = s.defaultMode
	}
	strategy, err := generate.NewStrategy(mode)
	if err != nil {
		return nil, err
	}
	return generate.NewTransformer(strategy, s.delay), nil
}

func (s *GenerationService) notifyComplete(clientID string, historyID uint, status string, errMsg string) {
	if s.notifyFunc != nil && strings.TrimSpace(clientID) != "" {
		s.notifyFunc(clientID, historyID, status, errMsg)
	}
}

func buildGenerateRequest(source *entity.DbContentSource, voice *entity.DbBrandVoice, target entity.PlatformFormat) generate.Request {
	request := generate.Request{
		SourceContent: source.SourceContent,
		Platform:      target.Platform,
		Format:        target.Format,
		Tone:          entity.ToneProfessional,
	}
	if voice != nil {
		request.Tone = voice.Tone
		request.StyleGuide = voice.StyleGuide
		request.TargetAudience = voice.TargetAudience
		request.ExampleTexts = voice.ExampleTexts.ToSlice()
		request.BrandName = voice.Name
	}
	return request
}

func voiceID(voice *entity.DbBrandVoice) *uint {
	if voice == nil {
		return nil
	}
	id := voice.ID
	return &id
}
