package sql

import (
	"context"
	"fmt"
	"strings"

	"echoforge/internal/entity"

	"gorm.io/gorm"
)

// CreateContentSource persists a new content source.
func (r *GormRepository) CreateContentSource(ctx context.Context, source *entity.DbContentSource) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if source == nil {
		return fmt.Errorf("source is nil")
	}
	if source.UserID == 0 {
		return fmt.Errorf("source has no owner")
	}
	return r.db.WithContext(ctx).Create(source).Error
}

// GetContentSource loads one of the user's content sources by ID.
func (r *GormRepository) GetContentSource(ctx context.Context, userID, id uint) (*entity.DbContentSource, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if userID == 0 || id == 0 {
		return nil, fmt.Errorf("invalid content source id")
	}

	var source entity.DbContentSource
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&source, id).Error; err != nil {
		return nil, err
	}
	return &source, nil
}

// ListContentSources returns the user's content sources, paginated.
func (r *GormRepository) ListContentSources(ctx context.Context, userID uint, params *entity.ContentSourceQuery) ([]entity.DbContentSource, *entity.Meta, error) {
	if r == nil || r.db == nil {
		return nil, nil, fmt.Errorf("repository not initialised")
	}
	if userID == 0 {
		return nil, nil, fmt.Errorf("invalid user id")
	}

	query := r.db.WithContext(ctx).Model(&entity.DbContentSource{}).Where("user_id = ?", userID)
	if params != nil {
		if trimmed := strings.TrimSpace(params.ContentType); trimmed != "" {
			query = query.Where("content_type = ?", trimmed)
		}
		if keyword := strings.TrimSpace(params.Keyword); keyword != "" {
			kw := "%" + strings.ToLower(keyword) + "%"
			query = query.Where("LOWER(title) LIKE ?", kw)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var window *entity.BaseParams
	if params != nil {
		window = &params.BaseParams
	}
	page, pageSize, offset := pageWindow(window)

	var sources []entity.DbContentSource
	if err := query.Order("created_at DESC, id DESC").Offset(offset).Limit(pageSize).Find(&sources).Error; err != nil {
		return nil, nil, err
	}

	meta := r.calculatePagination(total, page, pageSize)
	return sources, meta, nil
}

// UpdateContentSource applies a partial update to one of the user's sources.
func (r *GormRepository) UpdateContentSource(ctx context.Context, userID, id uint, updates entity.ContentSourceUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if userID == 0 || id == 0 {
		return fmt.Errorf("invalid content source id")
	}
	if updates.IsEmpty() {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&entity.DbContentSource{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates.ToMap())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteContentSource removes one of the user's sources along with its
// generated content and history rows.
func (r *GormRepository) DeleteContentSource(ctx context.Context, userID, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if userID == 0 || id == 0 {
		return fmt.Errorf("invalid content source id")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.DbContentSource{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("source_id = ? AND user_id = ?", id, userID).Delete(&entity.DbGeneratedContent{}).Error; err != nil {
			return err
		}
		return tx.Where("source_id = ? AND user_id = ?", id, userID).Delete(&entity.DbGenerationHistory{}).Error
	})
}
