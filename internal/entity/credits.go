package entity

import (
	"errors"
	"time"
)

// ErrInsufficientCredits signals a deduction larger than the
// remaining balance. The balance is left untouched.
var ErrInsufficientCredits = errors.New("insufficient credits")

const (
	OperationUpload     = "upload"
	OperationGenerate   = "generate"
	OperationRegenerate = "regenerate"
)

// CreditCosts maps each operation type to its fixed cost.
var CreditCosts = map[string]int{
	OperationUpload:     1,
	OperationGenerate:   5,
	OperationRegenerate: 3,
}

// FreeTierCredits is the allowance granted when a credit row is first created.
const FreeTierCredits = 100

// DbUserCredits tracks the per-user credit balance.
type DbUserCredits struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint    `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	User   *DbUser `gorm:"foreignKey:UserID" json:"-"`

	TotalCredits int `gorm:"column:total_credits;not null;default:0" json:"total_credits"`
	UsedCredits  int `gorm:"column:used_credits;not null;default:0" json:"used_credits"`
}

// TableName overrides default pluralised name.
func (DbUserCredits) TableName() string {
	return "user_credits"
}

// Remaining returns the unspent balance.
func (c DbUserCredits) Remaining() int {
	return c.TotalCredits - c.UsedCredits
}

// DbCreditUsage is an append-only ledger entry for one deduction.
type DbCreditUsage struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID uint `gorm:"column:user_id;index;not null" json:"user_id"`

	OperationType string  `gorm:"column:operation_type;type:varchar(50);not null" json:"operation_type"`
	CreditsUsed   int     `gorm:"column:credits_used;not null" json:"credits_used"`
	Description   string  `gorm:"column:description;type:text" json:"description"`
	Metadata      JSONMap `gorm:"column:metadata;type:json" json:"metadata"`
}

// TableName overrides default pluralised name.
func (DbCreditUsage) TableName() string {
	return "credit_usage_history"
}

type UserCreditsResponse struct {
	TotalCredits     int `json:"total_credits"`
	UsedCredits      int `json:"used_credits"`
	RemainingCredits int `json:"remaining_credits"`
}

type CreditUsageListResponse struct {
	Entries []DbCreditUsage `json:"entries"`
	Meta    *Meta           `json:"meta"`
}
