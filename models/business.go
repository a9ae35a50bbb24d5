package models

import "gorm.io/gorm"

// Business represents a free listing in the local business directory
type Business struct {
	gorm.Model
	Name             string `json:"name" gorm:"not null"`
	Phone            string `json:"phone"`
	AltPhone         string `json:"alt_phone"`
	Email            string `json:"email"`
	Category         string `json:"category"`
	City             string `json:"city"`
	PinCode          string `json:"pin_code"`
	PreferredAddress string `json:"preferred_address"`
	BusinessDetails  string `json:"business_details"`
	LogoURL          string `json:"logo_url"`
}
