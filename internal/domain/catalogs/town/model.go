// Package town provides the Town catalog. Towns are simple reference
// targets for buyers; there is no cascading delete logic.
package town

import (
	"context"
	"strings"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/entity"
)

// Town represents a town a buyer can live in.
type Town struct {
	entity.Base

	// Name is the display name, unique enough for search but not enforced
	Name string `db:"name" json:"name"`
}

// NewTown creates a new Town with generated ID.
func NewTown(name string) *Town {
	return &Town{
		Base: entity.NewBase(),
		Name: name,
	}
}

// Validate implements entity.Validatable.
func (t *Town) Validate(ctx context.Context) error {
	if strings.TrimSpace(t.Name) == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}
