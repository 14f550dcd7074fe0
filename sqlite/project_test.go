package sqlite_test

import (
	"context"
	"testing"

	"github.com/doclink/doclink"
	"github.com/doclink/doclink/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProject(t *testing.T, db *sqlite.DB, id string) *doclink.Project {
	t.Helper()

	svc := sqlite.NewProjectService(db)
	project := &doclink.Project{ID: id, Name: "test-project-" + id}
	require.NoError(t, svc.CreateProject(context.Background(), project))
	return project
}

func TestProjectService_CreateProject(t *testing.T) {
	t.Parallel()

	t.Run("creates project with generated ID and timestamps", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProjectService(db)

		project := &doclink.Project{Name: "go-docs"}
		require.NoError(t, svc.CreateProject(context.Background(), project))

		assert.NotEmpty(t, project.ID)
		assert.False(t, project.CreatedAt.IsZero())
		assert.Equal(t, project.CreatedAt, project.UpdatedAt)
	})

	t.Run("keeps a caller-provided ID so links stay human-readable", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProjectService(db)

		project := &doclink.Project{ID: "godocs", Name: "go-docs"}
		require.NoError(t, svc.CreateProject(context.Background(), project))

		assert.Equal(t, "godocs", project.ID)
	})

	t.Run("returns EINVALID for a project without a name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProjectService(db)

		err := svc.CreateProject(context.Background(), &doclink.Project{})
		require.Error(t, err)
		assert.Equal(t, doclink.EINVALID, doclink.ErrorCode(err))
	})
}

func TestProjectService_ProjectExists(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := sqlite.NewProjectService(db)
	project := createTestProject(t, db, "p1")
	ctx := context.Background()

	exists, err := svc.ProjectExists(ctx, project.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.ProjectExists(ctx, "absent")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestProjectService_FindProjectByID(t *testing.T) {
	t.Parallel()

	t.Run("retrieves an existing project", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		project := createTestProject(t, db, "p1")
		svc := sqlite.NewProjectService(db)

		found, err := svc.FindProjectByID(context.Background(), project.ID)
		require.NoError(t, err)
		assert.Equal(t, project.Name, found.Name)
	})

	t.Run("returns ENOTFOUND for missing project", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProjectService(db)

		_, err := svc.FindProjectByID(context.Background(), "absent")
		require.Error(t, err)
		assert.Equal(t, doclink.ENOTFOUND, doclink.ErrorCode(err))
	})
}

func TestProjectService_UpdateProject(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	project := createTestProject(t, db, "p1")
	svc := sqlite.NewProjectService(db)

	name := "renamed"
	updated, err := svc.UpdateProject(context.Background(), project.ID, doclink.ProjectUpdate{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, project.CreatedAt, updated.CreatedAt)
}

func TestProjectService_DeleteProject(t *testing.T) {
	t.Parallel()

	t.Run("cascades to documents and bookmarks", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		project := createTestProject(t, db, "p1")
		ctx := context.Background()

		docs := sqlite.NewDocumentService(db)
		require.NoError(t, docs.CreateDocument(ctx, &doclink.Document{
			ProjectID:    project.ID,
			CollectionID: "c1",
			Slug:         "guide",
		}))

		bookmarks := sqlite.NewBookmarkService(db)
		require.NoError(t, bookmarks.CreateBookmark(ctx, &doclink.Bookmark{
			ProjectID:    project.ID,
			CollectionID: "c1",
			DocSlug:      "guide",
		}))

		svc := sqlite.NewProjectService(db)
		require.NoError(t, svc.DeleteProject(ctx, project.ID))

		remaining, err := docs.FindDocuments(ctx, doclink.DocumentFilter{ProjectID: &project.ID})
		require.NoError(t, err)
		assert.Empty(t, remaining)

		left, err := bookmarks.FindBookmarks(ctx, doclink.BookmarkFilter{ProjectID: &project.ID})
		require.NoError(t, err)
		assert.Empty(t, left)
	})

	t.Run("returns ENOTFOUND for missing project", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewProjectService(db)

		err := svc.DeleteProject(context.Background(), "absent")
		require.Error(t, err)
		assert.Equal(t, doclink.ENOTFOUND, doclink.ErrorCode(err))
	})
}
