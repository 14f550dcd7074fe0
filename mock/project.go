package mock

import (
	"context"

	"github.com/doclink/doclink"
)

var _ doclink.ProjectService = (*ProjectService)(nil)

// ProjectService is a mock implementation of doclink.ProjectService.
type ProjectService struct {
	CreateProjectFn   func(ctx context.Context, project *doclink.Project) error
	FindProjectByIDFn func(ctx context.Context, id string) (*doclink.Project, error)
	FindProjectsFn    func(ctx context.Context, filter doclink.ProjectFilter) ([]*doclink.Project, error)
	ProjectExistsFn   func(ctx context.Context, id string) (bool, error)
	UpdateProjectFn   func(ctx context.Context, id string, upd doclink.ProjectUpdate) (*doclink.Project, error)
	DeleteProjectFn   func(ctx context.Context, id string) error

	// ProjectExistsCalls counts ProjectExists invocations for ordering
	// assertions.
	ProjectExistsCalls int
}

func (s *ProjectService) CreateProject(ctx context.Context, project *doclink.Project) error {
	return s.CreateProjectFn(ctx, project)
}

func (s *ProjectService) FindProjectByID(ctx context.Context, id string) (*doclink.Project, error) {
	return s.FindProjectByIDFn(ctx, id)
}

func (s *ProjectService) FindProjects(ctx context.Context, filter doclink.ProjectFilter) ([]*doclink.Project, error) {
	return s.FindProjectsFn(ctx, filter)
}

func (s *ProjectService) ProjectExists(ctx context.Context, id string) (bool, error) {
	s.ProjectExistsCalls++
	return s.ProjectExistsFn(ctx, id)
}

func (s *ProjectService) UpdateProject(ctx context.Context, id string, upd doclink.ProjectUpdate) (*doclink.Project, error) {
	return s.UpdateProjectFn(ctx, id, upd)
}

func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	return s.DeleteProjectFn(ctx, id)
}
