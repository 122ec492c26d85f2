package serviceImp

import (
	"time"

	"github.com/google/uuid"

	"jardin/entities"
	"jardin/pkg/apperr"
	repo "jardin/pkg/zone/repository"
	"jardin/pkg/zone/service"
)

type zoneSvc struct{ r repo.ZoneRepository }

func NewZoneService(r repo.ZoneRepository) service.ZoneService { return &zoneSvc{r} }

func validate(in service.ZoneInput) error {
	if in.Name == "" {
		return apperr.Validation("name", "zone name is required")
	}
	if in.Color == "" {
		return apperr.Validation("color", "zone color is required")
	}
	for _, sz := range in.SubZones {
		if sz.Name == "" {
			return apperr.Validation("sub_zones", "sub-zone name is required")
		}
		if sz.Priority < 1 || sz.Priority > 3 {
			return apperr.Validation("sub_zones", "sub-zone priority must be 1, 2 or 3")
		}
	}
	return nil
}

func buildSubZones(zoneID string, in []service.SubZoneInput) []entities.SubZone {
	out := make([]entities.SubZone, 0, len(in))
	for _, sz := range in {
		out = append(out, entities.SubZone{
			ID:       uuid.NewString(),
			ZoneID:   zoneID,
			Name:     sz.Name,
			Priority: sz.Priority,
		})
	}
	return out
}

func (s *zoneSvc) CreateZone(in service.ZoneInput) (*entities.Zone, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	z := &entities.Zone{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
		CreatedAt:   time.Now(),
	}
	z.SubZones = buildSubZones(z.ID, in.SubZones)
	if err := s.r.Create(z); err != nil {
		return nil, err
	}
	return s.r.FindByID(z.ID)
}

func (s *zoneSvc) UpdateZone(id string, in service.ZoneInput) (*entities.Zone, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	z := &entities.Zone{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
		SubZones:    buildSubZones(id, in.SubZones),
	}
	if err := s.r.Update(z); err != nil {
		return nil, err
	}
	return s.r.FindByID(id)
}

func (s *zoneSvc) DeleteZone(id string) error { return s.r.Delete(id) }

func (s *zoneSvc) GetZoneByID(id string) (*entities.Zone, error) { return s.r.FindByID(id) }

func (s *zoneSvc) GetAllZones() ([]entities.Zone, error) { return s.r.GetAll() }
