package models

import "time"

// Connection is a remote-sync connection profile. The secret itself lives in
// the OS keychain under Key; the row only carries metadata.
type Connection struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Key      string `gorm:"size:36;uniqueIndex"` // keychain account name
	Name     string `gorm:"size:120;not null"`
	Endpoint string `gorm:"size:512"`
}
