package sql

import (
	"context"
	"fmt"

	"echoforge/internal/entity"

	"gorm.io/gorm"
)

// CreateBrandVoice persists a new brand voice. When the voice is
// marked default, the user's previous default is cleared in the same
// transaction so at most one default exists per user.
func (r *GormRepository) CreateBrandVoice(ctx context.Context, voice *entity.DbBrandVoice) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if voice == nil {
		return fmt.Errorf("voice is nil")
	}
	if voice.UserID == 0 {
		return fmt.Errorf("voice has no owner")
	}

	if !voice.IsDefault {
		return r.db.WithContext(ctx).Create(voice).Error
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := clearDefaultVoice(tx, voice.UserID, 0); err != nil {
			return err
		}
		return tx.Create(voice).Error
	})
}

// GetBrandVoice loads one of the user's brand voices by ID.
func (r *GormRepository) GetBrandVoice(ctx context.Context, userID, id uint) (*entity.DbBrandVoice, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if userID == 0 || id == 0 {
		return nil, fmt.Errorf("invalid brand voice id")
	}

	var voice entity.DbBrandVoice
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&voice, id).Error; err != nil {
		return nil, err
	}
	return &voice, nil
}

// GetDefaultBrandVoice loads the user's default voice, if any.
func (r *GormRepository) GetDefaultBrandVoice(ctx context.Context, userID uint) (*entity.DbBrandVoice, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if userID == 0 {
		return nil, fmt.Errorf("invalid user id")
	}

	var voice entity.DbBrandVoice
	if err := r.db.WithContext(ctx).Where("user_id = ? AND is_default = ?", userID, true).First(&voice).Error; err != nil {
		return nil, err
	}
	return &voice, nil
}

// ListBrandVoices returns all of the user's brand voices, default first.
func (r *GormRepository) ListBrandVoices(ctx context.Context, userID uint) ([]entity.DbBrandVoice, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if userID == 0 {
		return nil, fmt.Errorf("invalid user id")
	}

	var voices []entity.DbBrandVoice
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&voices).Error; err != nil {
		return nil, err
	}
	return voices, nil
}

// UpdateBrandVoice applies a partial update. Promoting a voice to
// default demotes the previous default in the same transaction.
func (r *GormRepository) UpdateBrandVoice(ctx context.Context, userID, id uint, updates entity.BrandVoiceUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if userID == 0 || id == 0 {
		return fmt.Errorf("invalid brand voice id")
	}
	if updates.IsEmpty() {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if updates.IsDefault != nil && *updates.IsDefault {
			if err := clearDefaultVoice(tx, userID, id); err != nil {
				return err
			}
		}

		result := tx.Model(&entity.DbBrandVoice{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(updates.ToMap())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// DeleteBrandVoice removes one of the user's brand voices. Generated
// content keeps its rows; the voice reference is detached.
func (r *GormRepository) DeleteBrandVoice(ctx context.Context, userID, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if userID == 0 || id == 0 {
		return fmt.Errorf("invalid brand voice id")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.DbBrandVoice{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&entity.DbGeneratedContent{}).
			Where("brand_voice_id = ? AND user_id = ?", id, userID).
			Update("brand_voice_id", nil).Error
	})
}

func clearDefaultVoice(tx *gorm.DB, userID, keepID uint) error {
	query := tx.Model(&entity.DbBrandVoice{}).Where("user_id = ? AND is_default = ?", userID, true)
	if keepID > 0 {
		query = query.Where("id <> ?", keepID)
	}
	return query.Update("is_default", false).Error
}
