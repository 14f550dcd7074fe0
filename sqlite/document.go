package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/doclink/doclink"
)

// Compile-time interface verification.
var _ doclink.DocumentService = (*DocumentService)(nil)

// DocumentService implements doclink.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// marshalAnchors encodes the anchor list as the JSON stored in the
// anchors column.
func marshalAnchors(anchors []string) (string, error) {
	if anchors == nil {
		anchors = []string{}
	}
	data, err := json.Marshal(anchors)
	if err != nil {
		return "", fmt.Errorf("failed to encode anchors: %w", err)
	}
	return string(data), nil
}

// unmarshalAnchors decodes the anchors column.
func unmarshalAnchors(data string) ([]string, error) {
	var anchors []string
	if err := json.Unmarshal([]byte(data), &anchors); err != nil {
		return nil, fmt.Errorf("failed to decode anchors: %w", err)
	}
	if len(anchors) == 0 {
		return nil, nil
	}
	return anchors, nil
}

// CreateDocument creates a new document. The content hash and the
// anchor vocabulary are derived from the content.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *doclink.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	now := time.Now().UTC().Truncate(time.Second)
	doc.CreatedAt = now
	doc.UpdatedAt = now
	doc.ContentHash = hashContent(doc.Content)
	doc.Anchors = doclink.ExtractAnchors(doc.Content)

	anchors, err := marshalAnchors(doc.Anchors)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (id, project_id, collection_id, slug, title, content, content_hash, anchors, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.ProjectID, doc.CollectionID, doc.Slug, doc.Title, doc.Content, doc.ContentHash,
		anchors, doc.CreatedAt.Format(time.RFC3339), doc.UpdatedAt.Format(time.RFC3339))

	return err
}

const documentColumns = "id, project_id, collection_id, slug, title, content, content_hash, anchors, created_at, updated_at"

// scanDocument reads one document row.
func scanDocument(scan func(dest ...any) error) (*doclink.Document, error) {
	var doc doclink.Document
	var anchors, createdAt, updatedAt string

	if err := scan(&doc.ID, &doc.ProjectID, &doc.CollectionID, &doc.Slug, &doc.Title,
		&doc.Content, &doc.ContentHash, &anchors, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if doc.Anchors, err = unmarshalAnchors(anchors); err != nil {
		return nil, err
	}
	if doc.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if doc.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &doc, nil
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*doclink.Document, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+documentColumns+" FROM documents WHERE id = ?", id)

	doc, err := scanDocument(row.Scan)
	if err == sql.ErrNoRows {
		return nil, doclink.Errorf(doclink.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocuments retrieves documents matching the filter.
func (s *DocumentService) FindDocuments(ctx context.Context, filter doclink.DocumentFilter) ([]*doclink.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + documentColumns + " FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.ProjectID != nil {
		query.WriteString(" AND project_id = ?")
		args = append(args, *filter.ProjectID)
	}
	if filter.CollectionID != nil {
		query.WriteString(" AND collection_id = ?")
		args = append(args, *filter.CollectionID)
	}
	if filter.Slug != nil {
		query.WriteString(" AND slug = ?")
		args = append(args, *filter.Slug)
	}

	switch filter.SortBy {
	case doclink.SortByUpdatedAt:
		query.WriteString(" ORDER BY updated_at DESC")
	default:
		query.WriteString(" ORDER BY collection_id ASC, slug ASC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*doclink.Document
	for rows.Next() {
		doc, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// LookupDocument retrieves the document addressed by a
// project/collection/slug triple, reduced to the reference consumed by
// resolution. Each call re-queries the live index.
func (s *DocumentService) LookupDocument(ctx context.Context, projectID, collectionID, slug string) (*doclink.DocumentRef, error) {
	var ref doclink.DocumentRef
	var anchors, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, collection_id, slug, title, anchors, updated_at
		FROM documents
		WHERE project_id = ? AND collection_id = ? AND slug = ?
	`, projectID, collectionID, slug).Scan(&ref.ID, &ref.CollectionID, &ref.Slug, &ref.Title, &anchors, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, doclink.Errorf(doclink.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}

	if ref.Anchors, err = unmarshalAnchors(anchors); err != nil {
		return nil, err
	}
	if ref.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &ref, nil
}

// UpdateDocument updates an existing document. The content hash and
// anchors are re-derived when the content changes.
func (s *DocumentService) UpdateDocument(ctx context.Context, id string, upd doclink.DocumentUpdate) (*doclink.Document, error) {
	// First check if document exists
	doc, err := s.FindDocumentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.CollectionID != nil {
		doc.CollectionID = *upd.CollectionID
	}
	if upd.Slug != nil {
		doc.Slug = *upd.Slug
	}
	if upd.Title != nil {
		doc.Title = *upd.Title
	}
	if upd.Content != nil {
		doc.Content = *upd.Content
		doc.ContentHash = hashContent(doc.Content)
		doc.Anchors = doclink.ExtractAnchors(doc.Content)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	doc.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	anchors, err := marshalAnchors(doc.Anchors)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE documents
		SET collection_id = ?, slug = ?, title = ?, content = ?, content_hash = ?, anchors = ?, updated_at = ?
		WHERE id = ?
	`, doc.CollectionID, doc.Slug, doc.Title, doc.Content, doc.ContentHash, anchors,
		doc.UpdatedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}

	return doc, nil
}

// DeleteDocument permanently removes a document.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return doclink.Errorf(doclink.ENOTFOUND, "document not found")
	}

	return nil
}

// DeleteDocumentsByProject removes all documents for a project.
func (s *DocumentService) DeleteDocumentsByProject(ctx context.Context, projectID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE project_id = ?", projectID)
	return err
}
