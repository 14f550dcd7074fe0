package doclink

import (
	"context"
	"time"
)

// Document represents an indexed documentation page. Documents belong
// to a collection within a project and are addressed by a
// collection-relative slug. Anchors are the in-document section
// identifiers extracted from the content's headings.
type Document struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"projectId"`
	CollectionID string    `json:"collectionId"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ContentHash  string    `json:"contentHash"`
	Anchors      []string  `json:"anchors"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.ProjectID == "" {
		return Errorf(EINVALID, "document project ID required")
	}
	if d.CollectionID == "" {
		return Errorf(EINVALID, "document collection ID required")
	}
	if d.Slug == "" {
		return Errorf(EINVALID, "document slug required")
	}
	return nil
}

// DocumentRef is the lookup result consumed by the anchor existence
// check. It carries just enough of a document to resolve a link and
// render the fallback messaging.
type DocumentRef struct {
	ID           string    `json:"id"`
	CollectionID string    `json:"collectionId"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Anchors      []string  `json:"anchors"`
}

// HasAnchor reports whether the document contains the given anchor.
func (r *DocumentRef) HasAnchor(anchorID string) bool {
	for _, a := range r.Anchors {
		if a == anchorID {
			return true
		}
	}
	return false
}

// DocumentService represents a service for managing and querying the
// document index.
type DocumentService interface {
	// CreateDocument creates a new document. Anchors are extracted from
	// the content on create.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// LookupDocument retrieves the document addressed by a
	// project/collection/slug triple. Returns ENOTFOUND on a miss; a
	// collection that does not exist simply yields no match. A
	// read-only query against the live index, so each call reflects the
	// index even if it was rebuilt moments earlier.
	LookupDocument(ctx context.Context, projectID, collectionID, slug string) (*DocumentRef, error)

	// UpdateDocument updates an existing document. Anchors are
	// re-extracted when the content changes.
	// Returns ENOTFOUND if document does not exist.
	UpdateDocument(ctx context.Context, id string, upd DocumentUpdate) (*Document, error)

	// DeleteDocument permanently removes a document.
	// Returns ENOTFOUND if document does not exist.
	DeleteDocument(ctx context.Context, id string) error

	// DeleteDocumentsByProject removes all documents for a project.
	DeleteDocumentsByProject(ctx context.Context, projectID string) error
}

// SortOrder represents the sort order for document queries.
type SortOrder string

// SortOrder constants for DocumentFilter.
const (
	SortByUpdatedAt SortOrder = "updated_at"
	SortBySlug      SortOrder = "slug"
)

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID           *string `json:"id"`
	ProjectID    *string `json:"projectId"`
	CollectionID *string `json:"collectionId"`
	Slug         *string `json:"slug"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}

// DocumentUpdate represents fields that can be updated on a document.
type DocumentUpdate struct {
	CollectionID *string `json:"collectionId"`
	Slug         *string `json:"slug"`
	Title        *string `json:"title"`
	Content      *string `json:"content"`
}
