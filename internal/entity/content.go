package entity

import "time"

const (
	ContentTypeText  = "text"
	ContentTypeImage = "image"
	ContentTypeVideo = "video"
	ContentTypeAudio = "audio"
	ContentTypeURL   = "url"
)

// ValidContentType reports whether the given content type is recognised.
func ValidContentType(value string) bool {
	switch value {
	case ContentTypeText, ContentTypeImage, ContentTypeVideo, ContentTypeAudio, ContentTypeURL:
		return true
	default:
		return false
	}
}

// DbContentSource stores a unit of user-supplied source material.
type DbContentSource struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint   `gorm:"column:user_id;index;not null" json:"user_id"`
	User   *DbUser `gorm:"foreignKey:UserID" json:"-"`

	Title         string  `gorm:"column:title;type:varchar(255);not null" json:"title"`
	ContentType   string  `gorm:"column:content_type;type:varchar(20);not null" json:"content_type"`
	SourceContent string  `gorm:"column:source_content;type:text" json:"source_content"`
	SourceURL     string  `gorm:"column:source_url;type:varchar(2048)" json:"source_url"`
	FilePath      string  `gorm:"column:file_path;type:varchar(512)" json:"file_path"`
	Metadata      JSONMap `gorm:"column:metadata;type:json" json:"metadata"`
}

// TableName overrides default pluralised name.
func (DbContentSource) TableName() string {
	return "content_sources"
}

type ContentSourceCreateRequest struct {
	Title         string  `json:"title" binding:"required"`
	ContentType   string  `json:"content_type" binding:"required"`
	SourceContent string  `json:"source_content"`
	SourceURL     string  `json:"source_url"`
	FilePayload   string  `json:"file_payload"`
	FileName      string  `json:"file_name"`
	Metadata      JSONMap `json:"metadata"`
}

type ContentSourceUpdateRequest struct {
	Title         *string  `json:"title,omitempty"`
	SourceContent *string  `json:"source_content,omitempty"`
	SourceURL     *string  `json:"source_url,omitempty"`
	Metadata      *JSONMap `json:"metadata,omitempty"`
}

// ContentSourceQuery supports listing content sources with pagination.
type ContentSourceQuery struct {
	BaseParams
	ContentType string `json:"content_type" form:"content_type" query:"content_type"`
	Keyword     string `json:"keyword" form:"keyword" query:"keyword"`
}

// ContentSourceItem decorates a stored source with its public file URL.
type ContentSourceItem struct {
	DbContentSource
	FileURL string `json:"file_url,omitempty"`
}

type ContentSourceListResponse struct {
	Sources []ContentSourceItem `json:"sources"`
	Meta    *Meta               `json:"meta"`
}
