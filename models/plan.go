package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// SubscriptionPlan represents a vendor subscription tier
type SubscriptionPlan struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Name           string         `json:"name" gorm:"not null"`
	BasePrice      float64        `json:"base_price" gorm:"not null"`
	TaxPercent     float64        `json:"tax_percent" gorm:"default:0"`
	DurationMonths int            `json:"duration_months" gorm:"not null"`
	Color          string         `json:"color" gorm:"default:'#4F46E5'"`
	Benefits       StringList     `json:"benefits" gorm:"type:text"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// TotalPrice returns the tax-inclusive price in rupees. Plan listings
// are ordered by this value, lowest first.
func (p *SubscriptionPlan) TotalPrice() float64 {
	return math.Round(p.BasePrice * (1 + p.TaxPercent/100))
}
