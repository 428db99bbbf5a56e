package entity

import "time"

const (
	ContentStatusDraft    = "draft"
	ContentStatusEdited   = "edited"
	ContentStatusExported = "exported"
)

// ValidContentStatus reports whether the given status is recognised.
func ValidContentStatus(value string) bool {
	switch value {
	case ContentStatusDraft, ContentStatusEdited, ContentStatusExported:
		return true
	default:
		return false
	}
}

// DbGeneratedContent stores one generated output for a platform/format pair.
type DbGeneratedContent struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint    `gorm:"column:user_id;index;not null" json:"user_id"`
	User   *DbUser `gorm:"foreignKey:UserID" json:"-"`

	SourceID uint             `gorm:"column:source_id;index;not null" json:"source_id"`
	Source   *DbContentSource `gorm:"foreignKey:SourceID" json:"-"`

	BrandVoiceID *uint `gorm:"column:brand_voice_id;index" json:"brand_voice_id,omitempty"`

	Platform      string  `gorm:"column:platform;type:varchar(50);index;not null" json:"platform"`
	Format        string  `gorm:"column:format;type:varchar(50);not null" json:"format"`
	GeneratedText string  `gorm:"column:generated_text;type:text" json:"generated_text"`
	Status        string  `gorm:"column:status;type:varchar(20);not null;default:draft" json:"status"`
	Metadata      JSONMap `gorm:"column:metadata;type:json" json:"metadata"`
}

// TableName overrides default pluralised name.
func (DbGeneratedContent) TableName() string {
	return "generated_content"
}

// DbGenerationHistory is an append-only audit row for one generation batch.
type DbGenerationHistory struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID   uint `gorm:"column:user_id;index;not null" json:"user_id"`
	SourceID uint `gorm:"column:source_id;index;not null" json:"source_id"`

	// BatchID correlates the history row, its outputs, and the credit
	// ledger entry for one generation batch.
	BatchID string `gorm:"column:batch_id;type:varchar(64);index" json:"batch_id"`

	PlatformsGenerated StringArray `gorm:"column:platforms_generated;type:json" json:"platforms_generated"`
	TotalOutputs       int         `gorm:"column:total_outputs;not null" json:"total_outputs"`
}

// TableName overrides default pluralised name.
func (DbGenerationHistory) TableName() string {
	return "generation_history"
}

// PlatformFormat identifies one target channel plus content shape.
type PlatformFormat struct {
	Platform string `json:"platform" binding:"required"`
	Format   string `json:"format" binding:"required"`
}

type GenerateRequest struct {
	SourceID     uint             `json:"source_id" binding:"required"`
	Platforms    []PlatformFormat `json:"platforms" binding:"required"`
	BrandVoiceID *uint            `json:"brand_voice_id,omitempty"`
	Mode         string           `json:"mode"`
	ClientID     string           `json:"client_id"`
}

type GeneratedContentUpdateRequest struct {
	GeneratedText *string `json:"generated_text,omitempty"`
	Status        *string `json:"status,omitempty"`
}

// GeneratedContentQuery supports listing generated content with pagination.
type GeneratedContentQuery struct {
	BaseParams
	SourceID uint   `json:"source_id" form:"source_id" query:"source_id"`
	Platform string `json:"platform" form:"platform" query:"platform"`
	Status   string `json:"status" form:"status" query:"status"`
}

type GeneratedContentListResponse struct {
	Items []DbGeneratedContent `json:"items"`
	Meta  *Meta                `json:"meta"`
}

type GenerationHistoryListResponse struct {
	Entries []DbGenerationHistory `json:"entries"`
	Meta    *Meta                 `json:"meta"`
}
