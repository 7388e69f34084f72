package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalStatus tracks the lifecycle of a financial goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusAbandoned GoalStatus = "abandoned"
)

// Goal is a savings or revenue target for a profile.
type Goal struct {
	Base
	TenantOwned
	Title         string          `gorm:"not null" json:"title"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(18,4)" json:"current_amount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	Status        GoalStatus      `gorm:"default:active" json:"status"`
	Category      string          `json:"category"`
}
