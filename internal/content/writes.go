package content

import (
	"context"
	"fmt"
)

// CreateProject inserts a new project.
func (s *Store) CreateProject(ctx context.Context, project Project) error {
	if err := s.client.Insert(ctx, collectionProjects, project, nil); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// UpdateProject overwrites the project with the given id. Concurrent
// edits are last-write-wins; there is no version check.
func (s *Store) UpdateProject(ctx context.Context, id string, project Project) error {
	if err := s.client.Update(ctx, collectionProjects, id, project); err != nil {
		return fmt.Errorf("failed to update project %s: %w", id, err)
	}
	return nil
}

// DeleteProject removes the project row. Photos pointing at it keep their
// project_id; the reference is weak.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, collectionProjects, id); err != nil {
		return fmt.Errorf("failed to delete project %s: %w", id, err)
	}
	return nil
}
