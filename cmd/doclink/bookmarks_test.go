package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doclink/doclink"
	main "github.com/doclink/doclink/cmd/doclink"
	"github.com/doclink/doclink/mock"
)

func TestBookmarksCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists bookmarks with their encoded targets", func(t *testing.T) {
		t.Parallel()

		var gotFilter doclink.BookmarkFilter
		bookmarks := &mock.BookmarkService{
			FindBookmarksFn: func(_ context.Context, filter doclink.BookmarkFilter) ([]*doclink.Bookmark, error) {
				gotFilter = filter
				return []*doclink.Bookmark{
					{ID: "bm-1", ProjectID: "react", CollectionID: "hooks", DocSlug: "use-state", AnchorID: "lazy-init", TitleSnapshot: "useState", OpenCount: 3},
					{ID: "bm-2", ProjectID: "react", CollectionID: "guides", DocSlug: "setup", TitleSnapshot: "Setup"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Bookmarks: bookmarks,
		}

		cmd := &main.BookmarksCmd{Project: "react", Sort: "open-count"}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, gotFilter.ProjectID)
		assert.Equal(t, "react", *gotFilter.ProjectID)
		assert.Equal(t, doclink.BookmarksByOpenCount, gotFilter.SortBy)

		output := stdout.String()
		assert.Contains(t, output, "bm-1")
		assert.Contains(t, output, "doclink://project/react/collection/hooks/doc/use-state#lazy-init")
		assert.Contains(t, output, "opened 3 times")
	})

	t.Run("shows helpful message when no bookmarks exist", func(t *testing.T) {
		t.Parallel()

		bookmarks := &mock.BookmarkService{
			FindBookmarksFn: func(_ context.Context, _ doclink.BookmarkFilter) ([]*doclink.Bookmark, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Bookmarks: bookmarks,
		}

		cmd := &main.BookmarksCmd{Project: "react", Sort: "order"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "No bookmarks")
	})
}
