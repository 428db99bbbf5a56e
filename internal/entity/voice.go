package entity

import "time"

const (
	ToneProfessional   = "professional"
	ToneCasual         = "casual"
	ToneFriendly       = "friendly"
	ToneAuthoritative  = "authoritative"
	ToneHumorous       = "humorous"
	ToneInspirational  = "inspirational"
	ToneTechnical      = "technical"
	ToneConversational = "conversational"
)

// Tones lists every recognised tone value.
func Tones() []string {
	return []string{
		ToneProfessional,
		ToneCasual,
		ToneFriendly,
		ToneAuthoritative,
		ToneHumorous,
		ToneInspirational,
		ToneTechnical,
		ToneConversational,
	}
}

// ValidTone reports whether the given tone is recognised.
func ValidTone(value string) bool {
	for _, tone := range Tones() {
		if tone == value {
			return true
		}
	}
	return false
}

// DbBrandVoice stores a named style configuration applied during generation.
type DbBrandVoice struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint    `gorm:"column:user_id;index;not null" json:"user_id"`
	User   *DbUser `gorm:"foreignKey:UserID" json:"-"`

	Name           string      `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Tone           string      `gorm:"column:tone;type:varchar(50);not null" json:"tone"`
	StyleGuide     string      `gorm:"column:style_guide;type:text" json:"style_guide"`
	TargetAudience string      `gorm:"column:target_audience;type:text" json:"target_audience"`
	ExampleTexts   StringArray `gorm:"column:example_texts;type:json" json:"example_texts"`
	IsDefault      bool        `gorm:"column:is_default;not null;default:false" json:"is_default"`
}

// TableName overrides default pluralised name.
func (DbBrandVoice) TableName() string {
	return "brand_voice_profiles"
}

type BrandVoiceCreateRequest struct {
	Name           string   `json:"name" binding:"required"`
	Tone           string   `json:"tone" binding:"required"`
	StyleGuide     string   `json:"style_guide"`
	TargetAudience string   `json:"target_audience"`
	ExampleTexts   []string `json:"example_texts"`
	IsDefault      bool     `json:"is_default"`
}

type BrandVoiceUpdateRequest struct {
	Name           *string   `json:"name,omitempty"`
	Tone           *string   `json:"tone,omitempty"`
	StyleGuide     *string   `json:"style_guide,omitempty"`
	TargetAudience *string   `json:"target_audience,omitempty"`
	ExampleTexts   *[]string `json:"example_texts,omitempty"`
	IsDefault      *bool     `json:"is_default,omitempty"`
}

type BrandVoiceListResponse struct {
	Voices []DbBrandVoice `json:"voices"`
}
