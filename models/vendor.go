package models

import (
	"time"

	"gorm.io/gorm"
)

// Vendor status values
const (
	VendorStatusPending  = "pending"
	VendorStatusApproved = "approved"
	VendorStatusRejected = "rejected"
)

// Vendor represents a registered service provider
type Vendor struct {
	gorm.Model
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	Password         string     `json:"-"`
	OwnerName        string     `json:"owner_name"`
	MobileNumber     string     `json:"mobile_number"`
	AlternateNumber  string     `json:"alternate_number"`
	GSTNumber        string     `json:"gst_number"`
	Address          string     `json:"address"`
	City             string     `json:"city"`
	State            string     `json:"state"`
	Pincode          string     `json:"pincode"`
	CompanyName      string     `json:"company_name"`
	CompanyLogo      string     `json:"company_logo"`
	Website          string     `json:"website"`
	Sector           string     `json:"sector"`
	BusinessType     string     `json:"business_type"`
	BusinessKeywords string     `json:"business_keywords"`
	MediaFiles       StringList `json:"media_files" gorm:"type:text"`
	VideoFiles       StringList `json:"video_files" gorm:"type:text"`
	SubscriptionPlan string     `json:"subscription_plan"`
	PaymentID        string     `json:"payment_id"`
	Status           string     `json:"status" gorm:"default:'pending'"`

	Products []VendorProduct `json:"products,omitempty" gorm:"foreignKey:VendorID"`
}

// VendorProduct represents a service or product offered by a vendor
type VendorProduct struct {
	gorm.Model
	VendorID     uint       `json:"vendor_id" gorm:"index;not null"`
	Vendor       Vendor     `json:"-" gorm:"foreignKey:VendorID"`
	ProductName  string     `json:"product_name" gorm:"not null"`
	Price        float64    `json:"price"`
	Description  string     `json:"description"`
	ProductImage StringList `json:"product_image" gorm:"type:text"`
}

// VendorEnquiry represents a message from a vendor to the admin team
type VendorEnquiry struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	VendorID    uint      `json:"vendor_id" gorm:"index;not null"`
	VendorEmail string    `json:"vendor_email"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}
