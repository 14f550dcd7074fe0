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

func TestOpenCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders a fully resolved link", func(t *testing.T) {
		t.Parallel()

		resolver := &mock.Resolver{
			ResolveFn: func(_ context.Context, raw string) (*doclink.Outcome, error) {
				return &doclink.Outcome{
					Status: doclink.StatusOpened,
					Target: &doclink.LinkTarget{ProjectID: "react", CollectionID: "hooks", DocSlug: "use-state", AnchorID: "lazy-init"},
					Doc:    &doclink.DocumentRef{Slug: "use-state", Title: "useState"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Resolver: resolver,
		}

		cmd := &main.OpenCmd{Link: "doclink://project/react/collection/hooks/doc/use-state#lazy-init"}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "Opened hooks/use-state at #lazy-init")
		assert.Contains(t, output, "useState")
	})

	t.Run("renders the document-top fallback for a missing anchor", func(t *testing.T) {
		t.Parallel()

		resolver := &mock.Resolver{
			ResolveFn: func(_ context.Context, raw string) (*doclink.Outcome, error) {
				return &doclink.Outcome{
					Status: doclink.StatusMissingAnchor,
					Target: &doclink.LinkTarget{ProjectID: "react", CollectionID: "hooks", DocSlug: "use-state", AnchorID: "gone"},
					Doc:    &doclink.DocumentRef{Slug: "use-state", Title: "useState"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Resolver: resolver,
		}

		cmd := &main.OpenCmd{Link: "doclink://project/react/collection/hooks/doc/use-state#gone"}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "at the top")
		assert.Contains(t, output, "#gone no longer exists")
	})

	t.Run("offers the nearest match for a missing document", func(t *testing.T) {
		t.Parallel()

		resolver := &mock.Resolver{
			ResolveFn: func(_ context.Context, raw string) (*doclink.Outcome, error) {
				return &doclink.Outcome{
					Status:  doclink.StatusMissingDocument,
					Target:  &doclink.LinkTarget{ProjectID: "react", CollectionID: "hooks", DocSlug: "guide"},
					Nearest: &doclink.NearestCandidate{CollectionID: "guides", Slug: "setup-guide", Title: "Setup Guide", Score: 0.5},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Resolver: resolver,
		}

		cmd := &main.OpenCmd{Link: "doclink://project/react/collection/hooks/doc/guide"}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "was not found")
		assert.Contains(t, output, "guides/setup-guide")
		assert.Contains(t, output, "0.50")
	})

	t.Run("prompts a project add for a missing project", func(t *testing.T) {
		t.Parallel()

		resolver := &mock.Resolver{
			ResolveFn: func(_ context.Context, raw string) (*doclink.Outcome, error) {
				return &doclink.Outcome{
					Status: doclink.StatusMissingProject,
					Target: &doclink.LinkTarget{ProjectID: "vue", CollectionID: "guide", DocSlug: "intro"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Resolver: resolver,
		}

		cmd := &main.OpenCmd{Link: "doclink://project/vue/collection/guide/doc/intro"}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, `Project "vue" is not available locally`)
		// The tried target is preserved so the open can be resumed.
		assert.Contains(t, output, "doclink://project/vue/collection/guide/doc/intro")
	})

	t.Run("reports an invalid link with its reason", func(t *testing.T) {
		t.Parallel()

		resolver := &mock.Resolver{
			ResolveFn: func(_ context.Context, raw string) (*doclink.Outcome, error) {
				return &doclink.Outcome{
					Status: doclink.StatusInvalid,
					Raw:    raw,
					Reason: doclink.ReasonBadScheme,
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Resolver: resolver,
		}

		cmd := &main.OpenCmd{Link: "https://example.com"}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "Not a valid doclink link")
		assert.Contains(t, output, "bad-scheme")
	})

	t.Run("records bookmark usage on a successful open", func(t *testing.T) {
		t.Parallel()

		resolver := &mock.Resolver{
			ResolveFn: func(_ context.Context, raw string) (*doclink.Outcome, error) {
				return &doclink.Outcome{
					Status: doclink.StatusOpened,
					Target: &doclink.LinkTarget{ProjectID: "react", CollectionID: "hooks", DocSlug: "use-state"},
					Doc:    &doclink.DocumentRef{Slug: "use-state", Title: "useState"},
				}, nil
			},
		}

		var touchedID string
		bookmarks := &mock.BookmarkService{
			TouchBookmarkOpenedFn: func(_ context.Context, id string) error {
				touchedID = id
				return nil
			},
		}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Resolver:  resolver,
			Bookmarks: bookmarks,
		}

		cmd := &main.OpenCmd{Link: "doclink://react/hooks/use-state", Bookmark: "bm-1"}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "bm-1", touchedID)
	})

	t.Run("does not record bookmark usage when the document is gone", func(t *testing.T) {
		t.Parallel()

		resolver := &mock.Resolver{
			ResolveFn: func(_ context.Context, raw string) (*doclink.Outcome, error) {
				return &doclink.Outcome{
					Status: doclink.StatusMissingDocument,
					Target: &doclink.LinkTarget{ProjectID: "react", CollectionID: "hooks", DocSlug: "gone"},
				}, nil
			},
		}

		touched := 0
		bookmarks := &mock.BookmarkService{
			TouchBookmarkOpenedFn: func(_ context.Context, id string) error {
				touched++
				return nil
			},
			FindBookmarkByIDFn: func(_ context.Context, id string) (*doclink.Bookmark, error) {
				return &doclink.Bookmark{ID: id, ProjectID: "react", CollectionID: "hooks", DocSlug: "gone"}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Resolver:  resolver,
			Bookmarks: bookmarks,
		}

		cmd := &main.OpenCmd{Link: "doclink://react/hooks/gone", Bookmark: "bm-1"}
		require.NoError(t, cmd.Run(deps))

		assert.Zero(t, touched)
		// The recovery offer is rendered with repair disabled.
		output := stdout.String()
		assert.Contains(t, output, "Recovery options:")
		assert.Contains(t, output, "unavailable: no similar document was found")
		assert.Contains(t, output, "doclink repair bm-1 --choice delete")
	})
}
