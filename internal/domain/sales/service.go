package sales

import (
	"context"
	"fmt"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/id"
	"salesdesk/internal/core/tx"
	"salesdesk/pkg/logger"
)

const (
	// DefaultPage and DefaultLimit apply when the request carries no
	// pagination values. No upper bound is enforced on limit.
	DefaultPage  = 1
	DefaultLimit = 10
)

// AuditRecorder records sale mutations for the audit trail.
// Recording is best-effort: failures are logged, never surfaced.
type AuditRecorder interface {
	Record(ctx context.Context, entityType string, entityID id.ID, action string, changes any) error
}

// Page is a paginated slice of sales with the counts the API exposes.
type Page struct {
	Sales       []*Sale
	Total       int64
	Pages       int
	CurrentPage int
	Limit       int
}

// Service provides business logic for sales.
type Service struct {
	repo      Repository
	txManager tx.Manager
	audit     AuditRecorder
}

// NewService creates a new sales service. audit may be nil.
func NewService(repo Repository, txm tx.Manager, audit AuditRecorder) *Service {
	return &Service{
		repo:      repo,
		txManager: txm,
		audit:     audit,
	}
}

// List returns one page of the shop's sales.
// Out-of-range page/limit values fall back to the defaults.
func (s *Service) List(ctx context.Context, shopID string, page, limit int) (Page, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	offset := (page - 1) * limit
	items, total, err := s.repo.List(ctx, shopID, limit, offset)
	if err != nil {
		return Page{}, fmt.Errorf("list sales: %w", err)
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	return Page{
		Sales:       items,
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
		Limit:       limit,
	}, nil
}

// GetByID retrieves a sale within the shop scope.
func (s *Service) GetByID(ctx context.Context, saleID id.ID, shopID string) (*Sale, error) {
	sale, err := s.repo.GetByID(ctx, saleID, shopID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("sale", saleID.String())
		}
		return nil, err
	}
	return sale, nil
}

// Create persists a new sale. The shop scope is already set on the record
// by the caller; Validate rejects a missing scope.
func (s *Service) Create(ctx context.Context, sale *Sale) error {
	if err := sale.Validate(ctx); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, sale)
	})
	if err != nil {
		return fmt.Errorf("create sale: %w", err)
	}

	s.record(ctx, sale.ID, "create", sale)
	return nil
}

// Update persists changes to an existing sale. The caller applies the
// partial payload onto the fetched record before calling Update.
func (s *Service) Update(ctx context.Context, sale *Sale) error {
	if err := sale.Validate(ctx); err != nil {
		return err
	}

	sale.Touch()

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, sale)
	})
	if err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NewNotFound("sale", sale.ID.String())
		}
		return fmt.Errorf("update sale: %w", err)
	}

	s.record(ctx, sale.ID, "update", sale)
	return nil
}

// Delete soft-deletes a sale: the record stays in storage with the
// removed flag set. A single update-by-id within the shop scope; a
// miss (wrong shop, already removed, or absent) reports not found.
func (s *Service) Delete(ctx context.Context, saleID id.ID, shopID string) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.MarkRemoved(ctx, saleID, shopID)
	})
	if err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NewNotFound("sale", saleID.String())
		}
		return fmt.Errorf("delete sale: %w", err)
	}

	s.record(ctx, saleID, "delete", map[string]any{"removed": true})
	return nil
}

// Search passes the raw filter through to the repository.
func (s *Service) Search(ctx context.Context, shopID string, filter SearchFilter) ([]*Sale, error) {
	return s.repo.Search(ctx, shopID, filter)
}

func (s *Service) record(ctx context.Context, saleID id.ID, action string, changes any) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, "sale", saleID, action, changes); err != nil {
		logger.Warn(ctx, "audit record failed", "sale_id", saleID.String(), "action", action, "error", err)
	}
}
