package entities

import "time"

// Designation is a reusable title used to pre-fill task and routine forms.
type Designation struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"uniqueIndex" json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
