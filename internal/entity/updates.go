package entity

// UserUpdates holds optional user fields for partial updates.
type UserUpdates struct {
	DisplayName  *string
	Role         *string
	PasswordHash *string
	IsActive     *bool
}

// ToMap converts to a GORM update map.
func (u UserUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.DisplayName != nil {
		updates["display_name"] = *u.DisplayName
	}
	if u.Role != nil {
		updates["role"] = *u.Role
	}
	if u.PasswordHash != nil {
		updates["password_hash"] = *u.PasswordHash
	}
	if u.IsActive != nil {
		updates["is_active"] = *u.IsActive
	}
	return updates
}

// IsEmpty reports whether no field is set.
func (u UserUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// ContentSourceUpdates holds optional content source fields for partial updates.
type ContentSourceUpdates struct {
	Title         *string
	SourceContent *string
	SourceURL     *string
	FilePath      *string
	Metadata      *JSONMap
}

// ToMap converts to a GORM update map.
func (u ContentSourceUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Title != nil {
		updates["title"] = *u.Title
	}
	if u.SourceContent != nil {
		updates["source_content"] = *u.SourceContent
	}
	if u.SourceURL != nil {
		updates["source_url"] = *u.SourceURL
	}
	if u.FilePath != nil {
		updates["file_path"] = *u.FilePath
	}
	if u.Metadata != nil {
		updates["metadata"] = *u.Metadata
	}
	return updates
}

// IsEmpty reports whether no field is set.
func (u ContentSourceUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// BrandVoiceUpdates holds optional brand voice fields for partial updates.
type BrandVoiceUpdates struct {
	Name           *string
	Tone           *string
	StyleGuide     *string
	TargetAudience *string
	ExampleTexts   *StringArray
	IsDefault      *bool
}

// ToMap converts to a GORM update map.
func (u BrandVoiceUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.Tone != nil {
		updates["tone"] = *u.Tone
	}
	if u.StyleGuide != nil {
		updates["style_guide"] = *u.StyleGuide
	}
	if u.TargetAudience != nil {
		updates["target_audience"] = *u.TargetAudience
	}
	if u.ExampleTexts != nil {
		updates["example_texts"] = *u.ExampleTexts
	}
	if u.IsDefault != nil {
		updates["is_default"] = *u.IsDefault
	}
	return updates
}

// IsEmpty reports whether no field is set.
func (u BrandVoiceUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// GeneratedContentUpdates holds optional generated content fields for partial updates.
type GeneratedContentUpdates struct {
	GeneratedText *string
	Status        *string
	Metadata      *JSONMap
}

// ToMap converts to a GORM update map.
func (u GeneratedContentUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.GeneratedText != nil {
		updates["generated_text"] = *u.GeneratedText
	}
	if u.Status != nil {
		updates["status"] = *u.Status
	}
	if u.Metadata != nil {
		updates["metadata"] = *u.Metadata
	}
	return updates
}

// IsEmpty reports whether no field is set.
func (u GeneratedContentUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}
