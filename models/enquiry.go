package models

import "time"

// Enquiry represents a support enquiry from a visitor or signed-in user
type Enquiry struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"not null"`
	Phone        string    `json:"phone"`
	Message      string    `json:"message" gorm:"not null"`
	UserID       *uint     `json:"user_id"`
	IsSubscribed bool      `json:"is_subscribed" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
}
