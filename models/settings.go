package models

// SiteSettingsID is the fixed primary key of the single settings row.
const SiteSettingsID uint = 1

// SiteSettings is a singleton: exactly one row, created on first access.
type SiteSettings struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	HeroImageURL *string `json:"heroImageUrl"`
}
