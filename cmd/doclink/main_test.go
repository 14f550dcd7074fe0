package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doclink/doclink"
	main "github.com/doclink/doclink/cmd/doclink"
	"github.com/doclink/doclink/sqlite"
)

// seedTestDB creates a database with one project and one document and
// returns its path.
func seedTestDB(t *testing.T) string {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "doclink.db")
	db := sqlite.NewDB(dbPath)
	require.NoError(t, db.Open())
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, sqlite.NewProjectService(db).CreateProject(ctx, &doclink.Project{
		ID:   "react",
		Name: "React Documentation",
	}))
	require.NoError(t, sqlite.NewDocumentService(db).CreateDocument(ctx, &doclink.Document{
		ProjectID:    "react",
		CollectionID: "hooks",
		Slug:         "use-state",
		Title:        "useState",
		Content:      "# useState\n\n## Lazy Init\n",
	}))

	return dbPath
}

// runMain executes one CLI invocation against the given database.
func runMain(t *testing.T, dbPath string, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	t.Helper()

	m := main.NewMain()
	m.DBPath = dbPath
	m.PolicyPath = ""

	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	err = m.Run(context.Background(), args, stdout, stderr)
	return stdout, stderr, err
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("opens a canonical link end to end", func(t *testing.T) {
		t.Parallel()

		dbPath := seedTestDB(t)
		stdout, _, err := runMain(t, dbPath, "open", "doclink://project/react/collection/hooks/doc/use-state#lazy-init")
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "Opened hooks/use-state at #lazy-init")
	})

	t.Run("normalizes a legacy link", func(t *testing.T) {
		t.Parallel()

		dbPath := seedTestDB(t)
		stdout, _, err := runMain(t, dbPath, "open", "doclink://react/hooks/use-state")
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "Opened hooks/use-state")
	})

	t.Run("falls back to the nearest match for a gone document", func(t *testing.T) {
		t.Parallel()

		dbPath := seedTestDB(t)
		stdout, _, err := runMain(t, dbPath, "open", "doclink://project/react/collection/hooks/doc/state")
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "was not found")
		assert.Contains(t, output, "hooks/use-state")
	})

	t.Run("bookmarks a document and lists it", func(t *testing.T) {
		t.Parallel()

		dbPath := seedTestDB(t)
		stdout, _, err := runMain(t, dbPath, "bookmark", "doclink://project/react/collection/hooks/doc/use-state")
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Bookmarked hooks/use-state")

		stdout, _, err = runMain(t, dbPath, "bookmarks", "react")
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "doclink://project/react/collection/hooks/doc/use-state")
	})

	t.Run("returns error when no command specified", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "doclink.db")
		_, _, err := runMain(t, dbPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})
}
