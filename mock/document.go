package mock

import (
	"context"

	"github.com/doclink/doclink"
)

var _ doclink.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of doclink.DocumentService.
type DocumentService struct {
	CreateDocumentFn           func(ctx context.Context, doc *doclink.Document) error
	FindDocumentByIDFn         func(ctx context.Context, id string) (*doclink.Document, error)
	FindDocumentsFn            func(ctx context.Context, filter doclink.DocumentFilter) ([]*doclink.Document, error)
	LookupDocumentFn           func(ctx context.Context, projectID, collectionID, slug string) (*doclink.DocumentRef, error)
	UpdateDocumentFn           func(ctx context.Context, id string, upd doclink.DocumentUpdate) (*doclink.Document, error)
	DeleteDocumentFn           func(ctx context.Context, id string) error
	DeleteDocumentsByProjectFn func(ctx context.Context, projectID string) error

	// LookupDocumentCalls counts LookupDocument invocations for ordering
	// assertions.
	LookupDocumentCalls int
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *doclink.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*doclink.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter doclink.DocumentFilter) ([]*doclink.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) LookupDocument(ctx context.Context, projectID, collectionID, slug string) (*doclink.DocumentRef, error) {
	s.LookupDocumentCalls++
	return s.LookupDocumentFn(ctx, projectID, collectionID, slug)
}

func (s *DocumentService) UpdateDocument(ctx context.Context, id string, upd doclink.DocumentUpdate) (*doclink.Document, error) {
	return s.UpdateDocumentFn(ctx, id, upd)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}

func (s *DocumentService) DeleteDocumentsByProject(ctx context.Context, projectID string) error {
	return s.DeleteDocumentsByProjectFn(ctx, projectID)
}
