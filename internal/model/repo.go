package model

import (
	"context"

	"echoforge/internal/entity"
)

// Repository defines the persistence operations. Methods that read or
// mutate user-owned rows take the owner's userID and never return
// another user's data.
type Repository interface {
	// Users
	CreateUser(ctx context.Context, user *entity.DbUser) error
	UpdateUser(ctx context.Context, id uint, updates entity.UserUpdates) error
	GetUserByEmail(ctx context.Context, email string) (*entity.DbUser, error)
	GetUserByID(ctx context.Context, id uint) (*entity.DbUser, error)
	ListUsers(ctx context.Context, params *entity.UserQuery) ([]entity.DbUser, *entity.Meta, error)
	DeleteUser(ctx context.Context, id uint) error
	CountUsers(ctx context.Context) (int64, error)

	// Content sources
	CreateContentSource(ctx context.Context, source *entity.DbContentSource) error
	GetContentSource(ctx context.Context, userID, id uint) (*entity.DbContentSource, error)
	ListContentSources(ctx context.Context, userID uint, params *entity.ContentSourceQuery) ([]entity.DbContentSource, *entity.Meta, error)
	UpdateContentSource(ctx context.Context, userID, id uint, updates entity.ContentSourceUpdates) error
	DeleteContentSource(ctx context.Context, userID, id uint) error

	// Brand voice profiles
	CreateBrandVoice(ctx context.Context, voice *entity.DbBrandVoice) error
	GetBrandVoice(ctx context.Context, userID, id uint) (*entity.DbBrandVoice, error)
	GetDefaultBrandVoice(ctx context.Context, userID uint) (*entity.DbBrandVoice, error)
	ListBrandVoices(ctx context.Context, userID uint) ([]entity.DbBrandVoice, error)
	UpdateBrandVoice(ctx context.Context, userID, id uint, updates entity.BrandVoiceUpdates) error
	DeleteBrandVoice(ctx context.Context, userID, id uint) error

	// Generated content
	CreateGeneratedContents(ctx context.Context, items []entity.DbGeneratedContent) ([]entity.DbGeneratedContent, error)
	GetGeneratedContent(ctx context.Context, userID, id uint) (*entity.DbGeneratedContent, error)
	ListGeneratedContents(ctx context.Context, userID uint, params *entity.GeneratedContentQuery) ([]entity.DbGeneratedContent, *entity.Meta, error)
	UpdateGeneratedContent(ctx context.Context, userID, id uint, updates entity.GeneratedContentUpdates) error
	DeleteGeneratedContent(ctx context.Context, userID, id uint) error

	// Generation history
	CreateGenerationHistory(ctx context.Context, record *entity.DbGenerationHistory) error
	ListGenerationHistory(ctx context.Context, userID uint, params *entity.BaseParams) ([]entity.DbGenerationHistory, *entity.Meta, error)

	// Credits
	GetUserCredits(ctx context.Context, userID uint) (*entity.DbUserCredits, error)
	DeductCredits(ctx context.Context, userID uint, operation string, amount int, description string, metadata entity.JSONMap) error
	AddCredits(ctx context.Context, userID uint, amount int) error
	ListCreditUsage(ctx context.Context, userID uint, params *entity.BaseParams) ([]entity.DbCreditUsage, *entity.Meta, error)
}
