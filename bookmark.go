package doclink

import (
	"context"
	"time"
)

// Bookmark represents a saved link to a document, persisted in the
// user-state store. TitleSnapshot is a point-in-time copy of the
// document title taken when the bookmark was created; it is never
// live-joined against the document and can go stale, which is why the
// recovery flow is allowed to overwrite it during repair.
type Bookmark struct {
	ID           string `json:"id"`
	ProjectID    string `json:"projectId"`
	CollectionID string `json:"collectionId"`
	DocSlug      string `json:"docSlug"`
	AnchorID     string `json:"anchorId,omitempty"`

	TitleSnapshot string `json:"titleSnapshot"`

	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	LastOpenedAt *time.Time `json:"lastOpenedAt"`
	OpenCount    int        `json:"openCount"`
	OrderIndex   int        `json:"orderIndex"`
}

// Validate returns an error if the bookmark contains invalid fields.
func (b *Bookmark) Validate() error {
	if b.ProjectID == "" {
		return Errorf(EINVALID, "bookmark project ID required")
	}
	if b.CollectionID == "" {
		return Errorf(EINVALID, "bookmark collection ID required")
	}
	if b.DocSlug == "" {
		return Errorf(EINVALID, "bookmark document slug required")
	}
	return nil
}

// Target returns the bookmark's stored target as a LinkTarget.
func (b *Bookmark) Target() LinkTarget {
	return LinkTarget{
		ProjectID:    b.ProjectID,
		CollectionID: b.CollectionID,
		DocSlug:      b.DocSlug,
		AnchorID:     b.AnchorID,
	}
}

// BookmarkService represents the user-state store for bookmarks.
type BookmarkService interface {
	// CreateBookmark creates a new bookmark.
	CreateBookmark(ctx context.Context, bookmark *Bookmark) error

	// FindBookmarkByID retrieves a bookmark by ID.
	// Returns ENOTFOUND if bookmark does not exist.
	FindBookmarkByID(ctx context.Context, id string) (*Bookmark, error)

	// FindBookmarks retrieves bookmarks matching the filter.
	FindBookmarks(ctx context.Context, filter BookmarkFilter) ([]*Bookmark, error)

	// UpdateBookmark updates target fields, title snapshot, or order of
	// an existing bookmark and bumps UpdatedAt. CreatedAt, OpenCount,
	// and LastOpenedAt are never modified by an update.
	// Returns ENOTFOUND if bookmark does not exist.
	UpdateBookmark(ctx context.Context, id string, upd BookmarkUpdate) (*Bookmark, error)

	// DeleteBookmark permanently removes a bookmark.
	// Returns ENOTFOUND if bookmark does not exist.
	DeleteBookmark(ctx context.Context, id string) error

	// TouchBookmarkOpened records a successful open: bumps OpenCount and
	// sets LastOpenedAt. It does not modify UpdatedAt.
	// Returns ENOTFOUND if bookmark does not exist.
	TouchBookmarkOpened(ctx context.Context, id string) error
}

// BookmarkSortOrder represents the sort order for bookmark queries.
type BookmarkSortOrder string

// BookmarkSortOrder constants for BookmarkFilter.
const (
	BookmarksByOrder      BookmarkSortOrder = "order_index"
	BookmarksByCreatedAt  BookmarkSortOrder = "created_at"
	BookmarksByLastOpened BookmarkSortOrder = "last_opened_at"
	BookmarksByOpenCount  BookmarkSortOrder = "open_count"
)

// BookmarkFilter represents a filter for FindBookmarks.
type BookmarkFilter struct {
	ID        *string `json:"id"`
	ProjectID *string `json:"projectId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy BookmarkSortOrder `json:"sortBy"`
}

// BookmarkUpdate represents fields that can be updated on a bookmark.
// A nil field is left unchanged; AnchorID uses a pointer so a repair
// can clear a stale anchor explicitly.
type BookmarkUpdate struct {
	CollectionID  *string `json:"collectionId"`
	DocSlug       *string `json:"docSlug"`
	AnchorID      *string `json:"anchorId"`
	TitleSnapshot *string `json:"titleSnapshot"`
	OrderIndex    *int    `json:"orderIndex"`
}
