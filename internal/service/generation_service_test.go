package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"echoforge/internal/entity"
	"echoforge/internal/generate"
	"echoforge/internal/model"

	"gorm.io/gorm"
)

// memoryRepo is an in-memory Repository for exercising the service
// without a database.
type memoryRepo struct {
	mu       sync.RWMutex
	users    map[uint]entity.DbUser
	sources  map[uint]entity.DbContentSource
	voices   map[uint]entity.DbBrandVoice
	contents map[uint]entity.DbGeneratedContent
	history  []entity.DbGenerationHistory
	credits  map[uint]*entity.DbUserCredits
	ledger   []entity.DbCreditUsage
	nextID   uint
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		users:    make(map[uint]entity.DbUser),
		sources:  make(map[uint]entity.DbContentSource),
		voices:   make(map[uint]entity.DbBrandVoice),
		contents: make(map[uint]entity.DbGeneratedContent),
		credits:  make(map[uint]*entity.DbUserCredits),
	}
}

func (m *memoryRepo) id() uint {
	m.nextID++
	return m.nextID
}

func (m *memoryRepo) CreateUser(_ context.Context, user *entity.DbUser) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = m.id()
	m.users[user.ID] = *user
	return nil
}

func (m *memoryRepo) UpdateUser(context.Context, uint, entity.UserUpdates) error { return nil }

func (m *memoryRepo) GetUserByEmail(context.Context, string) (*entity.DbUser, error) {
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryRepo) GetUserByID(_ context.Context, id uint) (*entity.DbUser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (m *memoryRepo) ListUsers(context.Context, *entity.UserQuery) ([]entity.DbUser, *entity.Meta, error) {
	return nil, nil, nil
}
func (m *memoryRepo) DeleteUser(context.Context, uint) error      { return nil }
func (m *memoryRepo) CountUsers(context.Context) (int64, error)   { return int64(len(m.users)), nil }

func (m *memoryRepo) CreateContentSource(_ context.Context, source *entity.DbContentSource) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	source.ID = m.id()
	m.sources[source.ID] = *source
	return nil
}

func (m *memoryRepo) GetContentSource(_ context.Context, userID, id uint) (*entity.DbContentSource, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	source, ok := m.sources[id]
	if !ok || source.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return &source, nil
}

func (m *memoryRepo) ListContentSources(context.Context, uint, *entity.ContentSourceQuery) ([]entity.DbContentSource, *entity.Meta, error) {
	return nil, nil, nil
}
func (m *memoryRepo) UpdateContentSource(context.Context, uint, uint, entity.ContentSourceUpdates) error {
	return nil
}
func (m *memoryRepo) DeleteContentSource(context.Context, uint, uint) error { return nil }

func (m *memoryRepo) CreateBrandVoice(_ context.Context, voice *entity.DbBrandVoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	voice.ID = m.id()
	m.voices[voice.ID] = *voice
	return nil
}

func (m *memoryRepo) GetBrandVoice(_ context.Context, userID, id uint) (*entity.DbBrandVoice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	voice, ok := m.voices[id]
	if !ok || voice.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return &voice, nil
}

func (m *memoryRepo) GetDefaultBrandVoice(_ context.Context, userID uint) (*entity.DbBrandVoice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, voice := range m.voices {
		if voice.UserID == userID && voice.IsDefault {
			v := voice
			return &v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryRepo) ListBrandVoices(context.Context, uint) ([]entity.DbBrandVoice, error) {
	return nil, nil
}
func (m *memoryRepo) UpdateBrandVoice(context.Context, uint, uint, entity.BrandVoiceUpdates) error {
	return nil
}
func (m *memoryRepo) DeleteBrandVoice(context.Context, uint, uint) error { return nil }

func (m *memoryRepo) CreateGeneratedContents(_ context.Context, items []entity.DbGeneratedContent) ([]entity.DbGeneratedContent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range items {
		items[i].ID = m.id()
		m.contents[items[i].ID] = items[i]
	}
	return items, nil
}

func (m *memoryRepo) GetGeneratedContent(_ context.Context, userID, id uint) (*entity.DbGeneratedContent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.contents[id]
	if !ok || item.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return &item, nil
}

func (m *memoryRepo) ListGeneratedContents(context.Context, uint, *entity.GeneratedContentQuery) ([]entity.DbGeneratedContent, *entity.Meta, error) {
	return nil, nil, nil
}

func (m *memoryRepo) UpdateGeneratedContent(_ context.Context, userID, id uint, updates entity.GeneratedContentUpdates) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.contents[id]
	if !ok || item.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	if updates.GeneratedText != nil {
		item.GeneratedText = *updates.GeneratedText
	}
	if updates.Status != nil {
		item.Status = *updates.Status
	}
	if updates.Metadata != nil {
		item.Metadata = *updates.Metadata
	}
	m.contents[id] = item
	return nil
}

func (m *memoryRepo) DeleteGeneratedContent(context.Context, uint, uint) error { return nil }

func (m *memoryRepo) CreateGenerationHistory(_ context.Context, record *entity.DbGenerationHistory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	record.ID = m.id()
	m.history = append(m.history, *record)
	return nil
}

func (m *memoryRepo) ListGenerationHistory(context.Context, uint, *entity.BaseParams) ([]entity.DbGenerationHistory, *entity.Meta, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]entity.DbGenerationHistory(nil), m.history...), nil, nil
}

func (m *memoryRepo) GetUserCredits(_ context.Context, userID uint) (*entity.DbUserCredits, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ensureCredits(userID), nil
}

func (m *memoryRepo) ensureCredits(userID uint) *entity.DbUserCredits {
	credits, ok := m.credits[userID]
	if !ok {
		credits = &entity.DbUserCredits{UserID: userID, TotalCredits: entity.FreeTierCredits}
		m.credits[userID] = credits
	}
	return credits
}

func (m *memoryRepo) DeductCredits(_ context.Context, userID uint, operation string, amount int, description string, metadata entity.JSONMap) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	credits := m.ensureCredits(userID)
	if credits.Remaining() < amount {
		return entity.ErrInsufficientCredits
	}
	credits.UsedCredits += amount
	m.ledger = append(m.ledger, entity.DbCreditUsage{
		UserID:        userID,
		OperationType: operation,
		CreditsUsed:   amount,
		Description:   description,
		Metadata:      metadata,
	})
	return nil
}

func (m *memoryRepo) AddCredits(_ context.Context, userID uint, amount int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureCredits(userID).TotalCredits += amount
	return nil
}

func (m *memoryRepo) ListCreditUsage(context.Context, uint, *entity.BaseParams) ([]entity.DbCreditUsage, *entity.Meta, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]entity.DbCreditUsage(nil), m.ledger...), nil, nil
}

var _ model.Repository = (*memoryRepo)(nil)

func seedSource(t *testing.T, repo *memoryRepo, userID uint) *entity.DbContentSource {
	t.Helper()
	source := &entity.DbContentSource{
		UserID:        userID,
		Title:         "Launch notes",
		ContentType:   entity.ContentTypeText,
		SourceContent: "Distribution beats creation. Everything else is commentary on that single claim.",
	}
	if err := repo.CreateContentSource(context.Background(), source); err != nil {
		t.Fatalf("seed source: %v", err)
	}
	return source
}

func TestGenerateBatch(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewGenerationService(repo, generate.ModeMock, 0)

	const userID = 1
	source := seedSource(t, repo, userID)

	voice := &entity.DbBrandVoice{
		UserID:    userID,
		Name:      "House Voice",
		Tone:      entity.ToneCasual,
		IsDefault: true,
	}
	if err := repo.CreateBrandVoice(context.Background(), voice); err != nil {
		t.Fatalf("seed voice: %v", err)
	}

	result, err := svc.Generate(context.Background(), userID, entity.GenerateRequest{
		SourceID: source.ID,
		Platforms: []entity.PlatformFormat{
			{Platform: "twitter", Format: "thread"},
			{Platform: "linkedin", Format: "post"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	for _, item := range result.Items {
		if item.Status != entity.ContentStatusDraft {
			t.Errorf("expected draft status, got %q", item.Status)
		}
		if item.GeneratedText == "" {
			t.Error("expected generated text")
		}
		if item.BrandVoiceID == nil || *item.BrandVoiceID != voice.ID {
			t.Error("expected default voice to be attached")
		}
		if _, ok := item.Metadata["character_count"]; !ok {
			t.Error("expected metadata to carry character_count")
		}
	}

	if result.History == nil || result.History.TotalOutputs != 2 {
		t.Fatalf("unexpected history: %+v", result.History)
	}

	credits, _ := repo.GetUserCredits(context.Background(), userID)
	expected := entity.CreditCosts[entity.OperationGenerate]
	if credits.UsedCredits != expected {
		t.Errorf("expected %d credits used, got %d", expected, credits.UsedCredits)
	}
	usage, _, _ := repo.ListCreditUsage(context.Background(), userID, nil)
	if len(usage) != 1 || usage[0].OperationType != entity.OperationGenerate {
		t.Errorf("unexpected ledger: %+v", usage)
	}

	// The same server-generated batch ID must tie together the history
	// row, every output, and the ledger entry.
	if result.History.BatchID == "" {
		t.Fatal("expected a batch id on the history row")
	}
	for _, item := range result.Items {
		if got := item.Metadata["batch_id"]; got != result.History.BatchID {
			t.Errorf("item batch_id = %v, want %q", got, result.History.BatchID)
		}
	}
	if got := usage[0].Metadata["batch_id"]; got != result.History.BatchID {
		t.Errorf("ledger batch_id = %v, want %q", got, result.History.BatchID)
	}
}

func TestGenerateRejectsUnknownTarget(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewGenerationService(repo, generate.ModeMock, 0)
	source := seedSource(t, repo, 1)

	_, err := svc.Generate(context.Background(), 1, entity.GenerateRequest{
		SourceID:  source.ID,
		Platforms: []entity.PlatformFormat{{Platform: "twitter", Format: "article"}},
	})
	if !errors.Is(err, ErrUnsupportedTarget) {
		t.Fatalf("expected ErrUnsupportedTarget, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "unsupported platform/format") {
		t.Fatalf("expected unsupported target error, got %v", err)
	}
}

func TestGenerateEnforcesOwnership(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewGenerationService(repo, generate.ModeMock, 0)
	source := seedSource(t, repo, 1)

	_, err := svc.Generate(context.Background(), 2, entity.GenerateRequest{
		SourceID:  source.ID,
		Platforms: []entity.PlatformFormat{{Platform: "twitter", Format: "post"}},
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found for foreign source, got %v", err)
	}
}

func TestGenerateInsufficientCredits(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewGenerationService(repo, generate.ModeMock, 0)
	const userID = 1
	source := seedSource(t, repo, userID)

	credits, _ := repo.GetUserCredits(context.Background(), userID)
	credits.UsedCredits = credits.TotalCredits - 1

	_, err := svc.Generate(context.Background(), userID, entity.GenerateRequest{
		SourceID:  source.ID,
		Platforms: []entity.PlatformFormat{{Platform: "twitter", Format: "post"}},
	})
	if !errors.Is(err, entity.ErrInsufficientCredits) {
		t.Fatalf("expected insufficient credits, got %v", err)
	}

	if len(repo.contents) != 0 {
		t.Error("expected no content persisted after failed deduction")
	}
	if len(repo.history) != 0 {
		t.Error("expected no history persisted after failed deduction")
	}
}

func TestGenerateExternalModeNotWired(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewGenerationService(repo, generate.ModeMock, 0)
	const userID = 1
	source := seedSource(t, repo, userID)

	_, err := svc.Generate(context.Background(), userID, entity.GenerateRequest{
		SourceID:  source.ID,
		Platforms: []entity.PlatformFormat{{Platform: "twitter", Format: "post"}},
		Mode:      generate.ModeExternal,
	})
	if !errors.Is(err, generate.ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}

	credits, _ := repo.GetUserCredits(context.Background(), userID)
	if credits.UsedCredits != 0 {
		t.Errorf("expected no credits charged for failed batch, got %d used", credits.UsedCredits)
	}
}

func TestRegenerate(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewGenerationService(repo, generate.ModeMock, 0)
	const userID = 1
	source := seedSource(t, repo, userID)

	result, err := svc.Generate(context.Background(), userID, entity.GenerateRequest{
		SourceID:  source.ID,
		Platforms: []entity.PlatformFormat{{Platform: "twitter", Format: "post"}},
	})
	if err != nil {
		t.Fatalf("seed generation failed: %v", err)
	}
	contentID := result.Items[0].ID

	edited := "hand edited"
	status := entity.ContentStatusEdited
	if err := repo.UpdateGeneratedContent(context.Background(), userID, contentID, entity.GeneratedContentUpdates{
		GeneratedText: &edited,
		Status:        &status,
	}); err != nil {
		t.Fatalf("seed edit failed: %v", err)
	}

	regenerated, err := svc.Regenerate(context.Background(), userID, contentID, generate.ModeTemplate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if regenerated.Status != entity.ContentStatusDraft {
		t.Errorf("expected status reset to draft, got %q", regenerated.Status)
	}
	if regenerated.GeneratedText == edited {
		t.Error("expected regenerated text to replace the edit")
	}

	credits, _ := repo.GetUserCredits(context.Background(), userID)
	expected := entity.CreditCosts[entity.OperationGenerate] + entity.CreditCosts[entity.OperationRegenerate]
	if credits.UsedCredits != expected {
		t.Errorf("expected %d credits used, got %d", expected, credits.UsedCredits)
	}
}

func TestChargeUpload(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewGenerationService(repo, generate.ModeMock, 0)

	if err := svc.ChargeUpload(context.Background(), 1, "My doc", 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	credits, _ := repo.GetUserCredits(context.Background(), 1)
	if credits.UsedCredits != entity.CreditCosts[entity.OperationUpload] {
		t.Errorf("expected upload cost deducted, got %d", credits.UsedCredits)
	}
	usage, _, _ := repo.ListCreditUsage(context.Background(), 1, nil)
	if len(usage) != 1 || usage[0].OperationType != entity.OperationUpload {
		t.Errorf("unexpected ledger: %+v", usage)
	}
}
