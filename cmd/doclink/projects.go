package main

import (
	"fmt"

	"github.com/doclink/doclink"
)

// Run executes the projects list command.
func (c *ProjectsListCmd) Run(deps *Dependencies) error {
	projects, err := deps.Projects.FindProjects(deps.Ctx, doclink.ProjectFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doclink.ErrorMessage(err))
		return err
	}

	if len(projects) == 0 {
		fmt.Fprintln(deps.Stdout, "No projects found. Use 'doclink projects add' to create one.")
		return nil
	}

	for _, p := range projects {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", p.ID, p.Name)
	}

	return nil
}

// Run executes the projects add command.
func (c *ProjectsAddCmd) Run(deps *Dependencies) error {
	project := &doclink.Project{ID: c.ID, Name: c.Name}
	if err := deps.Projects.CreateProject(deps.Ctx, project); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doclink.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added project %s (%s)\n", project.ID, project.Name)
	return nil
}

// Run executes the projects delete command.
func (c *ProjectsDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "This deletes project %q and all of its documents. Re-run with --force to confirm.\n", c.ID)
		return doclink.Errorf(doclink.EINVALID, "deletion not confirmed")
	}

	if err := deps.Projects.DeleteProject(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doclink.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted project %s\n", c.ID)
	return nil
}
