package service

import "jardin/entities"

type SubZoneInput struct {
	Name     string `json:"name"`
	Priority int    `json:"priority"`
}

type ZoneInput struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Color       string         `json:"color"`
	SubZones    []SubZoneInput `json:"sub_zones"`
}

type ZoneService interface {
	CreateZone(in ZoneInput) (*entities.Zone, error)
	UpdateZone(id string, in ZoneInput) (*entities.Zone, error)
	DeleteZone(id string) error
	GetZoneByID(id string) (*entities.Zone, error)
	GetAllZones() ([]entities.Zone, error)
}
