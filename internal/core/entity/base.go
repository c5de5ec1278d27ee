// Package entity contains the base types shared by all stored records.
package entity

import (
	"context"
	"time"

	"salesdesk/internal/core/id"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// Base contains the fields every record carries. The primary key is
// exposed externally as "id"; no store-internal key name ever leaks.
type Base struct {
	// ID is the primary key (UUIDv7)
	ID id.ID `db:"id" json:"id"`
}

// NewBase creates a Base with a generated ID.
func NewBase() Base {
	return Base{ID: id.New()}
}

// Audited extends Base with creation/update timestamps.
// Used by records whose history matters (sales).
type Audited struct {
	Base

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewAudited creates an Audited base with generated ID and timestamps.
func NewAudited() Audited {
	now := time.Now().UTC()
	return Audited{
		Base:      NewBase(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch updates the UpdatedAt timestamp.
func (a *Audited) Touch() {
	a.UpdatedAt = time.Now().UTC()
}
