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

func TestBookmarkCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("creates a bookmark with the live document title", func(t *testing.T) {
		t.Parallel()

		target := &mock.TargetResolver{
			ResolveTargetFn: func(_ context.Context, target doclink.LinkTarget, _ string) (*doclink.Outcome, error) {
				return &doclink.Outcome{
					Status: doclink.StatusOpened,
					Target: &target,
					Doc:    &doclink.DocumentRef{Slug: target.DocSlug, Title: "useState"},
				}, nil
			},
		}

		var created *doclink.Bookmark
		bookmarks := &mock.BookmarkService{
			CreateBookmarkFn: func(_ context.Context, bookmark *doclink.Bookmark) error {
				bookmark.ID = "bm-1"
				created = bookmark
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Target:    target,
			Bookmarks: bookmarks,
		}

		cmd := &main.BookmarkCmd{Link: "doclink://project/react/collection/hooks/doc/use-state#lazy-init"}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, created)
		assert.Equal(t, "react", created.ProjectID)
		assert.Equal(t, "hooks", created.CollectionID)
		assert.Equal(t, "use-state", created.DocSlug)
		assert.Equal(t, "lazy-init", created.AnchorID)
		assert.Equal(t, "useState", created.TitleSnapshot)
		assert.Contains(t, stdout.String(), "bm-1")
	})

	t.Run("prefers an explicit title over the snapshot", func(t *testing.T) {
		t.Parallel()

		target := &mock.TargetResolver{
			ResolveTargetFn: func(_ context.Context, target doclink.LinkTarget, _ string) (*doclink.Outcome, error) {
				return &doclink.Outcome{
					Status: doclink.StatusOpened,
					Target: &target,
					Doc:    &doclink.DocumentRef{Slug: target.DocSlug, Title: "useState"},
				}, nil
			},
		}

		var created *doclink.Bookmark
		bookmarks := &mock.BookmarkService{
			CreateBookmarkFn: func(_ context.Context, bookmark *doclink.Bookmark) error {
				created = bookmark
				return nil
			},
		}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Target:    target,
			Bookmarks: bookmarks,
		}

		cmd := &main.BookmarkCmd{Link: "doclink://react/hooks/use-state", Title: "State hook"}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, created)
		assert.Equal(t, "State hook", created.TitleSnapshot)
	})

	t.Run("refuses to bookmark an unresolvable link", func(t *testing.T) {
		t.Parallel()

		target := &mock.TargetResolver{
			ResolveTargetFn: func(_ context.Context, target doclink.LinkTarget, _ string) (*doclink.Outcome, error) {
				return &doclink.Outcome{Status: doclink.StatusMissingDocument, Target: &target}, nil
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Target: target,
		}

		cmd := &main.BookmarkCmd{Link: "doclink://react/hooks/gone"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, doclink.EINVALID, doclink.ErrorCode(err))
		assert.Contains(t, stderr.String(), "was not found")
	})

	t.Run("rejects a malformed link", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		cmd := &main.BookmarkCmd{Link: "not-a-link"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
