package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/docflow-bff/internal/domain"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/document"
	"github.com/jsamuelsen11/docflow-bff/internal/ports"
)

// Compile-time check that DocumentService implements ports.DocumentService.
var _ ports.DocumentService = (*DocumentService)(nil)

// DocumentService implements ports.DocumentService.
type DocumentService struct {
	docs   ports.DocumentClient
	logger *slog.Logger
}

// NewDocumentService creates a DocumentService. A nil logger discards output.
func NewDocumentService(docs ports.DocumentClient, logger *slog.Logger) *DocumentService {
	return &DocumentService{docs: docs, logger: orDiscard(logger)}
}

// List normalizes and validates filter and returns one page.
func (s *DocumentService) List(ctx context.Context, filter document.Filter) (*document.Page, error) {
	filter.Normalize()
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	page, err := s.docs.ListDocuments(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list documents",
			slog.String("operation", "ListDocuments"),
			slog.String("status", filter.Status.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return page, nil
}

// Get returns the document and, when it has one, its approval flow
// interpreted for the current user. A flow embedded in the document is
// used as is; otherwise it is fetched separately.
func (s *DocumentService) Get(ctx context.Context, id string) (*ports.DocumentDetail, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := fetchDocument(ctx, s.docs, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.ErrorContext(ctx, "failed to fetch document",
				slog.String("operation", "GetDocument"),
				slog.String("document_id", id),
				slog.Any("error", err),
			)
		}
		return nil, err
	}

	flow := doc.Flow
	if flow == nil {
		flow, err = fetchFlow(ctx, s.docs, id)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			flow = nil
		case err != nil:
			s.logger.ErrorContext(ctx, "failed to fetch approval flow",
				slog.String("operation", "GetDocument"),
				slog.String("document_id", id),
				slog.Any("error", err),
			)
			return nil, err
		}
	} else {
		remember(ctx, flowKey(id), flow)
	}

	detail := &ports.DocumentDetail{Document: *doc}
	if flow != nil {
		view := NewFlowView(*flow, p.User.ID)
		detail.Approval = &view
	}
	return detail, nil
}
