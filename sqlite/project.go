package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/doclink/doclink"
)

// Compile-time interface verification.
var _ doclink.ProjectService = (*ProjectService)(nil)

// ProjectService implements doclink.ProjectService using SQLite.
type ProjectService struct {
	db *DB
}

// NewProjectService creates a new ProjectService.
func NewProjectService(db *DB) *ProjectService {
	return &ProjectService{db: db}
}

// CreateProject creates a new project.
func (s *ProjectService) CreateProject(ctx context.Context, project *doclink.Project) error {
	if err := project.Validate(); err != nil {
		return err
	}

	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	now := time.Now().UTC().Truncate(time.Second)
	project.CreatedAt = now
	project.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`, project.ID, project.Name,
		project.CreatedAt.Format(time.RFC3339), project.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindProjectByID retrieves a project by ID.
func (s *ProjectService) FindProjectByID(ctx context.Context, id string) (*doclink.Project, error) {
	var project doclink.Project
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM projects
		WHERE id = ?
	`, id).Scan(&project.ID, &project.Name, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, doclink.Errorf(doclink.ENOTFOUND, "project not found")
	}
	if err != nil {
		return nil, err
	}

	if project.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if project.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &project, nil
}

// FindProjects retrieves projects matching the filter.
func (s *ProjectService) FindProjects(ctx context.Context, filter doclink.ProjectFilter) ([]*doclink.Project, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, created_at, updated_at FROM projects WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*doclink.Project
	for rows.Next() {
		var project doclink.Project
		var createdAt, updatedAt string

		if err := rows.Scan(&project.ID, &project.Name, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if project.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if project.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		projects = append(projects, &project)
	}

	return projects, rows.Err()
}

// ProjectExists reports whether a project with the given ID exists.
func (s *ProjectService) ProjectExists(ctx context.Context, id string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM projects WHERE id = ?", id).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpdateProject updates an existing project.
func (s *ProjectService) UpdateProject(ctx context.Context, id string, upd doclink.ProjectUpdate) (*doclink.Project, error) {
	// First check if project exists
	project, err := s.FindProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		project.Name = *upd.Name
	}

	if err := project.Validate(); err != nil {
		return nil, err
	}

	project.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		UPDATE projects
		SET name = ?, updated_at = ?
		WHERE id = ?
	`, project.Name, project.UpdatedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}

	return project, nil
}

// DeleteProject permanently removes a project. Associated documents and
// bookmarks are removed by the cascading foreign keys.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return doclink.Errorf(doclink.ENOTFOUND, "project not found")
	}

	return nil
}
