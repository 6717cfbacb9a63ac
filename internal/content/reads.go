package content

import (
	"context"
	"errors"

	"boxpro/internal/backend"
	apperrors "boxpro/internal/errors"
	"boxpro/internal/logger"
)

const (
	collectionProjects = "projects"
	collectionPhotos   = "photos"
)

// Counts summarizes the catalog for the admin dashboard.
type Counts struct {
	Projects int
	Photos   int
}

// Store wraps a backend client with the read paths the site needs.
type Store struct {
	client backend.Client
}

// NewStore returns a Store over the given client.
func NewStore(client backend.Client) *Store {
	return &Store{client: client}
}

// GalleryProjects returns all projects with their photos, ordered by
// order_index. Placeholder projects are returned when the backend fails
// or holds no projects yet.
func (s *Store) GalleryProjects(ctx context.Context) []Project {
	var projects []Project
	err := s.client.Select(ctx, collectionProjects, backend.SelectOptions{
		OrderBy: "order_index",
		Embed:   []string{"photos(id,url,type,placement,alt_ro,alt_en,project_id,order_index)"},
	}, &projects)
	if err != nil {
		logger.Get().Warn().Err(err).Msg("Failed to load gallery projects, serving placeholders")
		return PlaceholderGalleryProjects()
	}
	if len(projects) == 0 {
		return PlaceholderGalleryProjects()
	}
	return projects
}

// FeaturedProjects returns up to six featured projects for the home page,
// falling back to placeholders.
func (s *Store) FeaturedProjects(ctx context.Context) []Project {
	var projects []Project
	err := s.client.Select(ctx, collectionProjects, backend.SelectOptions{
		Filter:  map[string]string{"featured": "true"},
		OrderBy: "order_index",
		Limit:   6,
		Embed:   []string{"photos(id,url,type,placement,alt_ro,alt_en,project_id,order_index)"},
	}, &projects)
	if err != nil {
		logger.Get().Warn().Err(err).Msg("Failed to load featured projects, serving placeholders")
		return PlaceholderFeaturedProjects()
	}
	if len(projects) == 0 {
		return PlaceholderFeaturedProjects()
	}
	return projects
}

// Counts returns catalog counts. A failing count is reported as zero so
// the dashboard renders regardless of backend state.
func (s *Store) Counts(ctx context.Context) Counts {
	var counts Counts
	projects, err := s.client.Count(ctx, collectionProjects, nil)
	if err != nil {
		logger.Get().Warn().Err(err).Msg("Failed to count projects")
	} else {
		counts.Projects = projects
	}
	photos, err := s.client.Count(ctx, collectionPhotos, nil)
	if err != nil {
		logger.Get().Warn().Err(err).Msg("Failed to count photos")
	} else {
		counts.Photos = photos
	}
	return counts
}

// AdminProjects returns all projects in display order for the admin listing.
func (s *Store) AdminProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	err := s.client.Select(ctx, collectionProjects, backend.SelectOptions{
		OrderBy: "order_index",
	}, &projects)
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// AdminPhotos returns all photos newest first with their linked project
// titles for the admin listing.
func (s *Store) AdminPhotos(ctx context.Context) ([]Photo, error) {
	var photos []Photo
	err := s.client.Select(ctx, collectionPhotos, backend.SelectOptions{
		OrderBy:    "created_at",
		Descending: true,
		Embed:      []string{"projects(id,title_ro,title_en)"},
	}, &photos)
	if err != nil {
		return nil, err
	}
	return photos, nil
}

// ProjectByID returns a single project.
func (s *Store) ProjectByID(ctx context.Context, id string) (Project, error) {
	var projects []Project
	err := s.client.Select(ctx, collectionProjects, backend.SelectOptions{
		Filter: map[string]string{"id": id},
		Limit:  1,
	}, &projects)
	if err != nil {
		return Project{}, err
	}
	if len(projects) == 0 {
		return Project{}, apperrors.ErrProjectNotFound
	}
	return projects[0], nil
}

// PhotoByID returns a single photo.
func (s *Store) PhotoByID(ctx context.Context, id string) (Photo, error) {
	var photos []Photo
	err := s.client.Select(ctx, collectionPhotos, backend.SelectOptions{
		Filter: map[string]string{"id": id},
		Limit:  1,
	}, &photos)
	if err != nil {
		return Photo{}, err
	}
	if len(photos) == 0 {
		return Photo{}, apperrors.ErrPhotoNotFound
	}
	return photos[0], nil
}

// ProjectOptions returns projects ordered by Romanian title for linking
// photos to projects in the upload form.
func (s *Store) ProjectOptions(ctx context.Context) ([]Project, error) {
	var projects []Project
	err := s.client.Select(ctx, collectionProjects, backend.SelectOptions{
		OrderBy: "title_ro",
	}, &projects)
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// IsNotFound reports whether err marks a missing project or photo.
func IsNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrProjectNotFound) || errors.Is(err, apperrors.ErrPhotoNotFound)
}
