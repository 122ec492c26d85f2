package entities

import "time"

type Zone struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"` // hex, e.g. #4CAF50
	SubZones    []SubZone `gorm:"foreignKey:ZoneID" json:"sub_zones"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// SubZone priority is display/filter only: 1=high, 2=medium, 3=low.
type SubZone struct {
	ID       string `gorm:"primaryKey" json:"id"`
	ZoneID   string `gorm:"index" json:"zone_id"`
	Name     string `json:"name"`
	Priority int    `json:"priority"`
}
