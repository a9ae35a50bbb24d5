package models

import "time"

// Promotional content managed from the admin site-home console and
// rendered on the public feed. All six stores share the same shape and
// lifecycle: admin CRUD, public list newest-first.

// PodcastVideo is an episode on the podcast feed
type PodcastVideo struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title"`
	VideoURL  string    `json:"video_url" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// InfluencerVideo is a promotional video attributed to an influencer
type InfluencerVideo struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	VideoURL  string    `json:"video_url" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// DigitalBanner is a campaign banner image
type DigitalBanner struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"default:'New Campaign Banner'"`
	ImageURL  string    `json:"image_url" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// BrandingVideo is a digital branding showcase video
type BrandingVideo struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title"`
	VideoURL  string    `json:"video_url" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// Certificate is a trust certificate displayed on the portal
type Certificate struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	ImageURL  string    `json:"image_url" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// HelpEarnCategory is a reward category for the Help & Earn program
type HelpEarnCategory struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"default:'New Category'"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}
