package sql

import (
	"context"
	"fmt"
	"strings"

	"echoforge/internal/entity"

	"gorm.io/gorm"
)

// CreateGeneratedContents inserts one batch of generated outputs and
// returns them with assigned IDs.
func (r *GormRepository) CreateGeneratedContents(ctx context.Context, items []entity.DbGeneratedContent) ([]entity.DbGeneratedContent, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no items to create")
	}
	for i := range items {
		if items[i].UserID == 0 || items[i].SourceID == 0 {
			return nil, fmt.Errorf("item %d has no owner or source", i)
		}
	}

	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetGeneratedContent loads one of the user's generated outputs by ID.
func (r *GormRepository) GetGeneratedContent(ctx context.Context, userID, id uint) (*entity.DbGeneratedContent, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if userID == 0 || id == 0 {
		return nil, fmt.Errorf("invalid generated content id")
	}

	var item entity.DbGeneratedContent
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListGeneratedContents returns the user's generated outputs, paginated.
func (r *GormRepository) ListGeneratedContents(ctx context.Context, userID uint, params *entity.GeneratedContentQuery) ([]entity.DbGeneratedContent, *entity.Meta, error) {
	if r == nil || r.db == nil {
		return nil, nil, fmt.Errorf("repository not initialised")
	}
	if userID == 0 {
		return nil, nil, fmt.Errorf("invalid user id")
	}

	query := r.db.WithContext(ctx).Model(&entity.DbGeneratedContent{}).Where("user_id = ?", userID)
	if params != nil {
		if params.SourceID > 0 {
			query = query.Where("source_id = ?", params.SourceID)
		}
		if trimmed := strings.TrimSpace(params.Platform); trimmed != "" {
			query = query.Where("platform = ?", trimmed)
		}
		if trimmed := strings.TrimSpace(params.Status); trimmed != "" {
			query = query.Where("status = ?", trimmed)
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

	var items []entity.DbGeneratedContent
	if err := query.Order("created_at DESC, id DESC").Offset(offset).Limit(pageSize).Find(&items).Error; err != nil {
		return nil, nil, err
	}

	meta := r.calculatePagination(total, page, pageSize)
	return items, meta, nil
}

// UpdateGeneratedContent applies a partial update to one of the
// user's generated outputs.
func (r *GormRepository) UpdateGeneratedContent(ctx context.Context, userID, id uint, updates entity.GeneratedContentUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if userID == 0 || id == 0 {
		return fmt.Errorf("invalid generated content id")
	}
	if updates.IsEmpty() {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&entity.DbGeneratedContent{}).
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

// DeleteGeneratedContent removes one of the user's generated outputs.
func (r *GormRepository) DeleteGeneratedContent(ctx context.Context, userID, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if userID == 0 || id == 0 {
		return fmt.Errorf("invalid generated content id")
	}

	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.DbGeneratedContent{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateGenerationHistory appends one audit row for a generation batch.
func (r *GormRepository) CreateGenerationHistory(ctx context.Context, record *entity.DbGenerationHistory) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if record == nil {
		return fmt.Errorf("record is nil")
	}
	if record.UserID == 0 || record.SourceID == 0 {
		return fmt.Errorf("record has no owner or source")
	}
	return r.db.WithContext(ctx).Create(record).Error
}

// ListGenerationHistory returns the user's generation batches, newest first.
func (r *GormRepository) ListGenerationHistory(ctx context.Context, userID uint, params *entity.BaseParams) ([]entity.DbGenerationHistory, *entity.Meta, error) {
	if r == nil || r.db == nil {
		return nil, nil, fmt.Errorf("repository not initialised")
	}
	if userID == 0 {
		return nil, nil, fmt.Errorf("invalid user id")
	}

	query := r.db.WithContext(ctx).Model(&entity.DbGenerationHistory{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	page, pageSize, offset := pageWindow(params)

	var records []entity.DbGenerationHistory
	if err := query.Order("created_at DESC, id DESC").Offset(offset).Limit(pageSize).Find(&records).Error; err != nil {
		return nil, nil, err
	}

	meta := r.calculatePagination(total, page, pageSize)
	return records, meta, nil
}
