package content

import "fmt"

// Placeholder content keeps the public site presentable when the backend
// is unreachable or still empty.

func placeholderPrice(value float64) *float64 {
	return &value
}

// PlaceholderGalleryProjects returns the demo portfolio shown on the
// gallery page when no real projects exist.
func PlaceholderGalleryProjects() []Project {
	projects := make([]Project, 6)
	for i := range projects {
		projects[i] = Project{
			ID:            fmt.Sprintf("demo-%d", i+1),
			TitleRo:       fmt.Sprintf("Proiect Demo %d", i+1),
			TitleEn:       fmt.Sprintf("Demo Project %d", i+1),
			DescriptionRo: "Container modular modern, complet echipat.",
			DescriptionEn: "Modern modular container, fully equipped.",
			Category:      Categories[i%len(Categories)],
			Price:         placeholderPrice(float64(12000 + i*3000)),
			Currency:      CurrencyEUR,
			OrderIndex:    i,
		}
	}
	return projects
}

// PlaceholderFeaturedProjects returns the demo entries for the featured
// strip on the home page.
func PlaceholderFeaturedProjects() []Project {
	projects := make([]Project, 3)
	for i := range projects {
		projects[i] = Project{
			ID:            fmt.Sprintf("demo-featured-%d", i+1),
			TitleRo:       fmt.Sprintf("Proiect Demo %d", i+1),
			TitleEn:       fmt.Sprintf("Demo Project %d", i+1),
			DescriptionRo: "Container modular modern, complet echipat.",
			DescriptionEn: "Modern modular container, fully equipped.",
			Category:      Categories[i%len(Categories)],
			Price:         placeholderPrice(float64(15000 + i*5000)),
			Currency:      CurrencyEUR,
			Featured:      true,
			OrderIndex:    i,
		}
	}
	return projects
}
