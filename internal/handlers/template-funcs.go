package handlers

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"

	"boxpro/internal/content"
	"boxpro/internal/i18n"
	"boxpro/internal/logger"
)

func templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"dict":           templateDict,
		"markdown":       renderMarkdown,
		"categoryLabel":  categoryLabel,
		"placementLabel": placementLabel,
	}
}

func categoryLabel(messages i18n.Messages, category content.Category) string {
	switch category {
	case content.CategoryHousing:
		return messages.CategoryHousing
	case content.CategoryOffice:
		return messages.CategoryOffice
	case content.CategoryStorage:
		return messages.CategoryStorage
	case content.CategoryCustom:
		return messages.CategoryCustom
	default:
		return string(category)
	}
}

func placementLabel(messages i18n.Messages, placement content.Placement) string {
	switch placement {
	case content.PlacementHero:
		return messages.PlacementHero
	case content.PlacementGallery:
		return messages.PlacementGallery
	case content.PlacementSectionOffers:
		return messages.PlacementSection
	case content.PlacementProject:
		return messages.PlacementProject
	default:
		return string(placement)
	}
}

// renderMarkdown converts admin-authored markdown to HTML. The admin area
// is the only source of this content, so the rendered HTML is trusted.
func renderMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(source), &buf); err != nil {
		logger.Get().Warn().Err(err).Msg("Failed to render markdown, falling back to raw text")
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(buf.String())
}

// templateDict builds a map out of alternating key/value pairs, for
// passing several values into a partial.
func templateDict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict requires an even number of arguments")
	}
	result := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict keys must be strings")
		}
		result[key] = pairs[i+1]
	}
	return result, nil
}
