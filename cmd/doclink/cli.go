package main

import (
	"context"
	"io"

	"github.com/doclink/doclink"
	"github.com/doclink/doclink/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Projects  doclink.ProjectService
	Documents doclink.DocumentService
	Bookmarks doclink.BookmarkService
	Resolver  doclink.Resolver
	Target    doclink.TargetResolver
	Recoverer doclink.Recoverer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Open      OpenCmd      `cmd:"" help:"Resolve a deep link and open its target"`
	Bookmarks BookmarksCmd `cmd:"" help:"List bookmarks for a project"`
	Bookmark  BookmarkCmd  `cmd:"" help:"Create a bookmark from a deep link"`
	Repair    RepairCmd    `cmd:"" help:"Recover a bookmark whose document is gone"`
	Projects  ProjectsCmd  `cmd:"" help:"Manage documentation projects"`
	Docs      DocsCmd      `cmd:"" help:"List documents for a project"`
}

// OpenCmd is the "open" subcommand.
type OpenCmd struct {
	Link     string `arg:"" help:"Deep link (doclink://...)"`
	Bookmark string `short:"b" help:"Bookmark ID this open originated from"`
}

// BookmarksCmd is the "bookmarks" subcommand.
type BookmarksCmd struct {
	Project string `arg:"" help:"Project ID"`
	Sort    string `short:"s" default:"order" enum:"order,created,last-opened,open-count" help:"Sort order"`
}

// BookmarkCmd is the "bookmark" subcommand.
type BookmarkCmd struct {
	Link  string `arg:"" help:"Deep link to bookmark"`
	Title string `short:"t" help:"Title snapshot override"`
}

// RepairCmd is the "repair" subcommand.
type RepairCmd struct {
	ID     string `arg:"" help:"Bookmark ID"`
	Choice string `required:"" enum:"repair,open-nearest,delete" help:"Recovery action to apply"`
}

// ProjectsCmd groups project management subcommands.
type ProjectsCmd struct {
	List   ProjectsListCmd   `cmd:"" default:"1" help:"List all registered projects"`
	Add    ProjectsAddCmd    `cmd:"" help:"Register a project"`
	Delete ProjectsDeleteCmd `cmd:"" help:"Delete a project and its documents"`
}

// ProjectsListCmd is the "projects list" subcommand.
type ProjectsListCmd struct{}

// ProjectsAddCmd is the "projects add" subcommand.
type ProjectsAddCmd struct {
	ID   string `arg:"" help:"Project ID (used in links)"`
	Name string `arg:"" help:"Project display name"`
}

// ProjectsDeleteCmd is the "projects delete" subcommand.
type ProjectsDeleteCmd struct {
	ID    string `arg:"" help:"Project ID"`
	Force bool   `help:"Confirm deletion"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Project    string `arg:"" help:"Project ID"`
	Collection string `short:"c" help:"Limit to a collection"`
}
