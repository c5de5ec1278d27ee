// Package buyer provides the Buyer catalog. Buyers reference a Town;
// the reference is resolved and validated at write time.
package buyer

import (
	"context"
	"regexp"
	"strings"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/entity"
	"salesdesk/internal/core/id"
	"salesdesk/internal/domain/catalogs/town"
)

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Buyer represents a customer of the shop.
type Buyer struct {
	entity.Base

	// Name is the buyer's display name
	Name string `db:"name" json:"name"`

	// TownID is the resolved town reference (nullable)
	TownID *id.ID `db:"town_id" json:"-"`

	// Contact fields
	Phone   *string `db:"phone" json:"phone,omitempty"`
	Email   *string `db:"email" json:"email,omitempty"`
	Address *string `db:"address" json:"address,omitempty"`

	// Town is populated on reads; never written directly
	Town *town.Town `db:"-" json:"town,omitempty"`
}

// NewBuyer creates a new Buyer with generated ID.
func NewBuyer(name string) *Buyer {
	return &Buyer{
		Base: entity.NewBase(),
		Name: name,
	}
}

// Validate implements entity.Validatable.
func (b *Buyer) Validate(ctx context.Context) error {
	if strings.TrimSpace(b.Name) == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}

	if b.Email != nil && *b.Email != "" && !emailRE.MatchString(*b.Email) {
		return apperror.NewValidation("invalid email format").
			WithDetail("field", "email")
	}

	return nil
}

// SetTown sets the resolved town reference and the populated town.
func (b *Buyer) SetTown(t *town.Town) {
	if t == nil {
		b.TownID = nil
		b.Town = nil
		return
	}
	townID := t.ID
	b.TownID = &townID
	b.Town = t
}
