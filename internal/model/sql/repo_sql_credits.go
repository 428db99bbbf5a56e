package sql

import (
	"context"
	"fmt"

	"echoforge/internal/entity"

	"gorm.io/gorm"
)

// GetUserCredits loads the user's balance, creating the row with the
// free tier allowance on first touch.
func (r *GormRepository) GetUserCredits(ctx context.Context, userID uint) (*entity.DbUserCredits, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if userID == 0 {
		return nil, fmt.Errorf("invalid user id")
	}

	var credits entity.DbUserCredits
	err := r.db.WithContext(ctx).
		Where(entity.DbUserCredits{UserID: userID}).
		Attrs(entity.DbUserCredits{TotalCredits: entity.FreeTierCredits}).
		FirstOrCreate(&credits).Error
	if err != nil {
		return nil, err
	}
	return &credits, nil
}

// DeductCredits atomically spends credits and appends the matching
// ledger entry. The deduction is a conditional update so a concurrent
// spend can never push the balance negative; when the guard fails the
// call returns entity.ErrInsufficientCredits and nothing is written.
func (r *GormRepository) DeductCredits(ctx context.Context, userID uint, operation string, amount int, description string, metadata entity.JSONMap) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if userID == 0 {
		return fmt.Errorf("invalid user id")
	}
	if amount <= 0 {
		return fmt.Errorf("invalid deduction amount: %d", amount)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var credits entity.DbUserCredits
		if err := tx.
			Where(entity.DbUserCredits{UserID: userID}).
			Attrs(entity.DbUserCredits{TotalCredits: entity.FreeTierCredits}).
			FirstOrCreate(&credits).Error; err != nil {
			return err
		}

		result := tx.Model(&entity.DbUserCredits{}).
			Where("user_id = ? AND total_credits - used_credits >= ?", userID, amount).
			Update("used_credits", gorm.Expr("used_credits + ?", amount))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return entity.ErrInsufficientCredits
		}

		usage := entity.DbCreditUsage{
			UserID:        userID,
			OperationType: operation,
			CreditsUsed:   amount,
			Description:   description,
			Metadata:      metadata,
		}
		return tx.Create(&usage).Error
	})
}

// AddCredits raises the user's total allowance, creating the balance
// row if needed.
func (r *GormRepository) AddCredits(ctx context.Context, userID uint, amount int) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if userID == 0 {
		return fmt.Errorf("invalid user id")
	}
	if amount <= 0 {
		return fmt.Errorf("invalid credit amount: %d", amount)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var credits entity.DbUserCredits
		if err := tx.
			Where(entity.DbUserCredits{UserID: userID}).
			Attrs(entity.DbUserCredits{TotalCredits: entity.FreeTierCredits}).
			FirstOrCreate(&credits).Error; err != nil {
			return err
		}

		return tx.Model(&entity.DbUserCredits{}).
			Where("user_id = ?", userID).
			Update("total_credits", gorm.Expr("total_credits + ?", amount)).Error
	})
}

// ListCreditUsage returns the user's ledger entries, newest first.
func (r *GormRepository) ListCreditUsage(ctx context.Context, userID uint, params *entity.BaseParams) ([]entity.DbCreditUsage, *entity.Meta, error) {
	if r == nil || r.db == nil {
		return nil, nil, fmt.Errorf("repository not initialised")
	}
	if userID == 0 {
		return nil, nil, fmt.Errorf("invalid user id")
	}

	query := r.db.WithContext(ctx).Model(&entity.DbCreditUsage{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	page, pageSize, offset := pageWindow(params)

	var entries []entity.DbCreditUsage
	if err := query.Order("created_at DESC, id DESC").Offset(offset).Limit(pageSize).Find(&entries).Error; err != nil {
		return nil, nil, err
	}

	meta := r.calculatePagination(total, page, pageSize)
	return entries, meta, nil
}
