package dto

import (
	"salesdesk/internal/domain/catalogs/town"
)

// CreateTownRequest for creating towns.
type CreateTownRequest struct {
	Name string `json:"name" binding:"required"`
}

// ToTown builds a new Town.
func (r *CreateTownRequest) ToTown() *town.Town {
	return town.NewTown(r.Name)
}

// UpdateTownRequest for updating towns.
type UpdateTownRequest struct {
	Name *string `json:"name"`
}

// Apply copies the present fields onto the town.
func (r *UpdateTownRequest) Apply(t *town.Town) {
	if r.Name != nil {
		t.Name = *r.Name
	}
}

// TownResponse contains town fields.
type TownResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FromTown creates TownResponse from town.Town.
func FromTown(t *town.Town) TownResponse {
	return TownResponse{
		ID:   t.ID.String(),
		Name: t.Name,
	}
}

// FromTowns creates TownResponse slice from towns.
func FromTowns(items []*town.Town) []TownResponse {
	out := make([]TownResponse, 0, len(items))
	for _, t := range items {
		out = append(out, FromTown(t))
	}
	return out
}
