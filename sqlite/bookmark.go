package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/doclink/doclink"
)

// Compile-time interface verification.
var _ doclink.BookmarkService = (*BookmarkService)(nil)

// BookmarkService implements doclink.BookmarkService using SQLite.
type BookmarkService struct {
	db *DB
}

// NewBookmarkService creates a new BookmarkService.
func NewBookmarkService(db *DB) *BookmarkService {
	return &BookmarkService{db: db}
}

// CreateBookmark creates a new bookmark.
func (s *BookmarkService) CreateBookmark(ctx context.Context, bookmark *doclink.Bookmark) error {
	if err := bookmark.Validate(); err != nil {
		return err
	}

	bookmark.ID = uuid.New().String()
	now := time.Now().UTC().Truncate(time.Second)
	bookmark.CreatedAt = now
	bookmark.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO bookmarks (id, project_id, collection_id, doc_slug, anchor_id, title_snapshot, created_at, updated_at, open_count, order_index)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, bookmark.ID, bookmark.ProjectID, bookmark.CollectionID, bookmark.DocSlug, bookmark.AnchorID,
		bookmark.TitleSnapshot, bookmark.CreatedAt.Format(time.RFC3339), bookmark.UpdatedAt.Format(time.RFC3339),
		bookmark.OpenCount, bookmark.OrderIndex)

	return err
}

const bookmarkColumns = "id, project_id, collection_id, doc_slug, anchor_id, title_snapshot, created_at, updated_at, last_opened_at, open_count, order_index"

// scanBookmark reads one bookmark row.
func scanBookmark(scan func(dest ...any) error) (*doclink.Bookmark, error) {
	var bookmark doclink.Bookmark
	var createdAt, updatedAt string
	var lastOpenedAt sql.NullString

	if err := scan(&bookmark.ID, &bookmark.ProjectID, &bookmark.CollectionID, &bookmark.DocSlug,
		&bookmark.AnchorID, &bookmark.TitleSnapshot, &createdAt, &updatedAt, &lastOpenedAt,
		&bookmark.OpenCount, &bookmark.OrderIndex); err != nil {
		return nil, err
	}

	var err error
	if bookmark.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if bookmark.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	if lastOpenedAt.Valid {
		opened, err := parseRFC3339(lastOpenedAt.String, "last_opened_at")
		if err != nil {
			return nil, err
		}
		bookmark.LastOpenedAt = &opened
	}

	return &bookmark, nil
}

// FindBookmarkByID retrieves a bookmark by ID.
func (s *BookmarkService) FindBookmarkByID(ctx context.Context, id string) (*doclink.Bookmark, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+bookmarkColumns+" FROM bookmarks WHERE id = ?", id)

	bookmark, err := scanBookmark(row.Scan)
	if err == sql.ErrNoRows {
		return nil, doclink.Errorf(doclink.ENOTFOUND, "bookmark not found")
	}
	if err != nil {
		return nil, err
	}
	return bookmark, nil
}

// FindBookmarks retrieves bookmarks matching the filter.
func (s *BookmarkService) FindBookmarks(ctx context.Context, filter doclink.BookmarkFilter) ([]*doclink.Bookmark, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + bookmarkColumns + " FROM bookmarks WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.ProjectID != nil {
		query.WriteString(" AND project_id = ?")
		args = append(args, *filter.ProjectID)
	}

	switch filter.SortBy {
	case doclink.BookmarksByCreatedAt:
		query.WriteString(" ORDER BY created_at DESC")
	case doclink.BookmarksByLastOpened:
		query.WriteString(" ORDER BY last_opened_at IS NULL, last_opened_at DESC")
	case doclink.BookmarksByOpenCount:
		query.WriteString(" ORDER BY open_count DESC")
	default:
		query.WriteString(" ORDER BY order_index ASC, created_at ASC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookmarks []*doclink.Bookmark
	for rows.Next() {
		bookmark, err := scanBookmark(rows.Scan)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, bookmark)
	}

	return bookmarks, rows.Err()
}

// UpdateBookmark updates target fields, title snapshot, or order of an
// existing bookmark and bumps UpdatedAt. CreatedAt, OpenCount, and
// LastOpenedAt are never modified here.
func (s *BookmarkService) UpdateBookmark(ctx context.Context, id string, upd doclink.BookmarkUpdate) (*doclink.Bookmark, error) {
	// First check if bookmark exists
	bookmark, err := s.FindBookmarkByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.CollectionID != nil {
		bookmark.CollectionID = *upd.CollectionID
	}
	if upd.DocSlug != nil {
		bookmark.DocSlug = *upd.DocSlug
	}
	if upd.AnchorID != nil {
		bookmark.AnchorID = *upd.AnchorID
	}
	if upd.TitleSnapshot != nil {
		bookmark.TitleSnapshot = *upd.TitleSnapshot
	}
	if upd.OrderIndex != nil {
		bookmark.OrderIndex = *upd.OrderIndex
	}

	if err := bookmark.Validate(); err != nil {
		return nil, err
	}

	bookmark.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		UPDATE bookmarks
		SET collection_id = ?, doc_slug = ?, anchor_id = ?, title_snapshot = ?, order_index = ?, updated_at = ?
		WHERE id = ?
	`, bookmark.CollectionID, bookmark.DocSlug, bookmark.AnchorID, bookmark.TitleSnapshot,
		bookmark.OrderIndex, bookmark.UpdatedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}

	return bookmark, nil
}

// DeleteBookmark permanently removes a bookmark.
func (s *BookmarkService) DeleteBookmark(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM bookmarks WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return doclink.Errorf(doclink.ENOTFOUND, "bookmark not found")
	}

	return nil
}

// TouchBookmarkOpened records a successful open. UpdatedAt is left
// alone: opening a bookmark is usage, not an edit.
func (s *BookmarkService) TouchBookmarkOpened(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE bookmarks
		SET open_count = open_count + 1, last_opened_at = ?
		WHERE id = ?
	`, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return doclink.Errorf(doclink.ENOTFOUND, "bookmark not found")
	}

	return nil
}
