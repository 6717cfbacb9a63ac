package validation

import (
	"strconv"
	"strings"

	"boxpro/internal/content"
	apperrors "boxpro/internal/errors"
)

// ProjectForm holds raw project form values before validation.
type ProjectForm struct {
	TitleRo       string
	TitleEn       string
	DescriptionRo string
	DescriptionEn string
	Category      string
	Price         string
	Currency      string
	Featured      string
	OrderIndex    string
}

// ValidateProject checks a submitted project form and returns the
// validated record. An empty price means "on request" and stays unset
// rather than becoming zero.
func ValidateProject(form ProjectForm) (content.Project, error) {
	project := content.Project{
		TitleRo:       strings.TrimSpace(form.TitleRo),
		TitleEn:       strings.TrimSpace(form.TitleEn),
		DescriptionRo: strings.TrimSpace(form.DescriptionRo),
		DescriptionEn: strings.TrimSpace(form.DescriptionEn),
		Featured:      form.Featured == "true" || form.Featured == "on",
	}

	if project.TitleRo == "" {
		return content.Project{}, apperrors.ErrTitleRoRequired
	}
	if project.TitleEn == "" {
		return content.Project{}, apperrors.ErrTitleEnRequired
	}

	category := strings.TrimSpace(form.Category)
	if category == "" {
		category = string(content.CategoryHousing)
	}
	if !content.ValidCategory(category) {
		return content.Project{}, apperrors.ErrInvalidCategory
	}
	project.Category = content.Category(category)

	currency := strings.TrimSpace(form.Currency)
	if currency == "" {
		currency = string(content.CurrencyEUR)
	}
	if !content.ValidCurrency(currency) {
		return content.Project{}, apperrors.ErrInvalidCurrency
	}
	project.Currency = content.Currency(currency)

	if raw := strings.TrimSpace(form.Price); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return content.Project{}, apperrors.ErrInvalidPrice
		}
		if price < 0 {
			return content.Project{}, apperrors.ErrNegativePrice
		}
		project.Price = &price
	}

	if raw := strings.TrimSpace(form.OrderIndex); raw != "" {
		orderIndex, err := strconv.Atoi(raw)
		if err != nil || orderIndex < 0 {
			return content.Project{}, apperrors.ErrInvalidOrderIndex
		}
		project.OrderIndex = orderIndex
	}

	return project, nil
}

// ValidateUpload checks an upload form. A project-placed photo must name
// a project; other placements ignore the project field.
func ValidateUpload(placement, projectID, filename string) (content.Placement, *string, error) {
	trimmed := strings.TrimSpace(placement)
	if !content.ValidPlacement(trimmed) {
		return "", nil, apperrors.ErrInvalidPlacement
	}
	if strings.TrimSpace(filename) == "" {
		return "", nil, apperrors.ErrFileRequired
	}

	result := content.Placement(trimmed)
	if result != content.PlacementProject {
		return result, nil, nil
	}

	id := strings.TrimSpace(projectID)
	if id == "" {
		return "", nil, apperrors.ErrProjectRequired
	}
	return result, &id, nil
}

// ValidateCredentials checks a login form.
func ValidateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return apperrors.ErrInvalidCredentials
	}
	if !strings.Contains(email, "@") {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}
