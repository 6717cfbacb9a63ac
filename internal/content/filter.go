package content

// FilterAll is the filter value that disables filtering.
const FilterAll = "all"

// FilterProjects returns the projects matching a category filter. The
// result is a fresh slice; the input is never mutated, so applying the
// same filter twice yields the same result.
func FilterProjects(projects []Project, category string) []Project {
	if category == "" || category == FilterAll {
		return projects
	}
	filtered := make([]Project, 0, len(projects))
	for _, p := range projects {
		if string(p.Category) == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterPhotos returns the photos matching a placement filter.
func FilterPhotos(photos []Photo, placement string) []Photo {
	if placement == "" || placement == FilterAll {
		return photos
	}
	filtered := make([]Photo, 0, len(photos))
	for _, p := range photos {
		if string(p.Placement) == placement {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
