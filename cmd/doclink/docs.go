package main

import (
	"fmt"

	"github.com/doclink/doclink"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	if _, err := deps.Projects.FindProjectByID(deps.Ctx, c.Project); err != nil {
		if doclink.ErrorCode(err) == doclink.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: project %q not found. Use 'doclink projects' to see available projects.\n", c.Project)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", doclink.ErrorMessage(err))
		}
		return err
	}

	filter := doclink.DocumentFilter{
		ProjectID: &c.Project,
		SortBy:    doclink.SortBySlug,
	}
	if c.Collection != "" {
		filter.CollectionID = &c.Collection
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doclink.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintf(deps.Stdout, "Project %q has no documents.\n", c.Project)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Documents for %s (%d total):\n\n", c.Project, len(docs))
	for _, doc := range docs {
		title := doc.Title
		if title == "" {
			title = doc.Slug
		}
		fmt.Fprintf(deps.Stdout, "  %s/%s  %s\n", doc.CollectionID, doc.Slug, title)
	}

	return nil
}
