package mock

import (
	"context"

	"github.com/doclink/doclink"
)

var _ doclink.BookmarkService = (*BookmarkService)(nil)

// BookmarkService is a mock implementation of doclink.BookmarkService.
type BookmarkService struct {
	CreateBookmarkFn      func(ctx context.Context, bookmark *doclink.Bookmark) error
	FindBookmarkByIDFn    func(ctx context.Context, id string) (*doclink.Bookmark, error)
	FindBookmarksFn       func(ctx context.Context, filter doclink.BookmarkFilter) ([]*doclink.Bookmark, error)
	UpdateBookmarkFn      func(ctx context.Context, id string, upd doclink.BookmarkUpdate) (*doclink.Bookmark, error)
	DeleteBookmarkFn      func(ctx context.Context, id string) error
	TouchBookmarkOpenedFn func(ctx context.Context, id string) error
}

func (s *BookmarkService) CreateBookmark(ctx context.Context, bookmark *doclink.Bookmark) error {
	return s.CreateBookmarkFn(ctx, bookmark)
}

func (s *BookmarkService) FindBookmarkByID(ctx context.Context, id string) (*doclink.Bookmark, error) {
	return s.FindBookmarkByIDFn(ctx, id)
}

func (s *BookmarkService) FindBookmarks(ctx context.Context, filter doclink.BookmarkFilter) ([]*doclink.Bookmark, error) {
	return s.FindBookmarksFn(ctx, filter)
}

func (s *BookmarkService) UpdateBookmark(ctx context.Context, id string, upd doclink.BookmarkUpdate) (*doclink.Bookmark, error) {
	return s.UpdateBookmarkFn(ctx, id, upd)
}

func (s *BookmarkService) DeleteBookmark(ctx context.Context, id string) error {
	return s.DeleteBookmarkFn(ctx, id)
}

func (s *BookmarkService) TouchBookmarkOpened(ctx context.Context, id string) error {
	return s.TouchBookmarkOpenedFn(ctx, id)
}
