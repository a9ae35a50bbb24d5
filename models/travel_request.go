package models

import "time"

// TravelRequest status values
const (
	TravelStatusPending   = "pending"
	TravelStatusConfirmed = "confirmed"
	TravelStatusClosed    = "closed"
)

// TravelRequest represents a transportation booking request
type TravelRequest struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"not null"`
	Phone            string    `json:"phone" gorm:"not null"`
	Purpose          string    `json:"purpose"`
	PickupLocation   string    `json:"pickup_location" gorm:"not null"`
	DropLocation     string    `json:"drop_location" gorm:"not null"`
	TravelDate       string    `json:"travel_date" gorm:"not null"`
	GoodsDescription string    `json:"goods_description"`
	WeightKg         string    `json:"weight_kg"`
	Status           string    `json:"status" gorm:"default:'pending'"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
