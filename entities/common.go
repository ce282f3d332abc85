package entities

import "time"

// Timestamp is filled by the database on insert and never written by the application.
type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime:false;index" json:"created_at"`
}
