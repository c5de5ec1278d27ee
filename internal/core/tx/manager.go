// Package tx defines the transaction boundary used by the domain layer.
package tx

import "context"

// Manager runs a function within a database transaction.
// The domain layer depends on this interface only; the postgres
// implementation lives in infrastructure.
type Manager interface {
	// RunInTransaction executes fn inside a transaction. If a transaction
	// is already active in ctx it is reused.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
