package models

import "time"

// AppSettings is the persisted settings record for this profile.
// Exactly one row exists (ID=1). OperatingSystem and FirstStartup are set
// when the row is first created and never written again; only CollectionPath
// and Theme change after that.
type AppSettings struct {
	ID              uint      `gorm:"primaryKey"` // single-row table (ID=1)
	OperatingSystem string    `gorm:"not null"`
	FirstStartup    time.Time `gorm:"not null"`
	CollectionPath  string    `gorm:"not null"`
	Theme           string    `gorm:"not null;default:system"` // "light" | "dark" | "system"
	UpdatedAt       time.Time
}
