// Package content defines the project portfolio and photo gallery domain
// and the read paths the public site and the admin area share.
package content

import (
	"fmt"
	"strings"

	"boxpro/internal/i18n"
)

// Category classifies a project.
type Category string

const (
	CategoryHousing Category = "housing"
	CategoryOffice  Category = "office"
	CategoryStorage Category = "storage"
	CategoryCustom  Category = "custom"
)

// Categories lists the valid project categories in display order.
var Categories = []Category{CategoryHousing, CategoryOffice, CategoryStorage, CategoryCustom}

// ValidCategory reports whether value names a known category.
func ValidCategory(value string) bool {
	for _, c := range Categories {
		if string(c) == value {
			return true
		}
	}
	return false
}

// Currency is a price currency.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyRON Currency = "RON"
)

// Currencies lists the accepted currencies.
var Currencies = []Currency{CurrencyEUR, CurrencyRON}

// ValidCurrency reports whether value names a known currency.
func ValidCurrency(value string) bool {
	for _, c := range Currencies {
		if string(c) == value {
			return true
		}
	}
	return false
}

// Placement says where on the site a photo appears.
type Placement string

const (
	PlacementHero          Placement = "hero"
	PlacementGallery       Placement = "gallery"
	PlacementSectionOffers Placement = "section_offers"
	PlacementProject       Placement = "project"
)

// Placements lists the valid photo placements in display order.
var Placements = []Placement{PlacementHero, PlacementGallery, PlacementSectionOffers, PlacementProject}

// ValidPlacement reports whether value names a known placement.
func ValidPlacement(value string) bool {
	for _, p := range Placements {
		if string(p) == value {
			return true
		}
	}
	return false
}

// MediaKind distinguishes images from videos.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Project is a portfolio entry with bilingual copy.
type Project struct {
	ID            string   `json:"id,omitempty"`
	TitleRo       string   `json:"title_ro"`
	TitleEn       string   `json:"title_en"`
	DescriptionRo string   `json:"description_ro"`
	DescriptionEn string   `json:"description_en"`
	Category      Category `json:"category"`
	// Price is optional. A nil price renders as "price on request".
	Price      *float64 `json:"price"`
	Currency   Currency `json:"currency"`
	Featured   bool     `json:"featured"`
	OrderIndex int      `json:"order_index"`
	CreatedAt  string   `json:"created_at,omitempty"`
	Photos     []Photo  `json:"photos,omitempty"`
}

// Title returns the project title for the given locale.
func (p Project) Title(locale i18n.Locale) string {
	if locale == i18n.LocaleEnglish && p.TitleEn != "" {
		return p.TitleEn
	}
	return p.TitleRo
}

// Description returns the project description for the given locale.
func (p Project) Description(locale i18n.Locale) string {
	if locale == i18n.LocaleEnglish && p.DescriptionEn != "" {
		return p.DescriptionEn
	}
	return p.DescriptionRo
}

// PriceLabel formats the price with dot-grouped thousands, or the
// localized "price on request" text when no price is set.
func (p Project) PriceLabel(locale i18n.Locale) string {
	if p.Price == nil {
		return i18n.MessagesForLocale(locale).PriceOnRequest
	}
	return formatThousands(*p.Price) + " " + string(p.Currency)
}

// AdminPriceLabel formats the price for admin tables, with "-" marking an
// absent price.
func (p Project) AdminPriceLabel() string {
	if p.Price == nil {
		return "-"
	}
	return formatThousands(*p.Price) + " " + string(p.Currency)
}

func formatThousands(value float64) string {
	raw := fmt.Sprintf("%.0f", value)
	negative := strings.HasPrefix(raw, "-")
	digits := strings.TrimPrefix(raw, "-")

	var b strings.Builder
	for i, digit := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	if negative {
		return "-" + b.String()
	}
	return b.String()
}

// CoverURL returns the first attached photo URL, if any.
func (p Project) CoverURL() string {
	if len(p.Photos) == 0 {
		return ""
	}
	return p.Photos[0].URL
}

// ProjectRef is the embedded project summary attached to admin photo rows.
type ProjectRef struct {
	ID      string `json:"id"`
	TitleRo string `json:"title_ro"`
	TitleEn string `json:"title_en"`
}

// Photo is an uploaded media item.
type Photo struct {
	ID        string    `json:"id,omitempty"`
	URL       string    `json:"url"`
	Kind      MediaKind `json:"type"`
	Placement Placement `json:"placement"`
	// AltRo and AltEn are optional bilingual alt texts.
	AltRo string `json:"alt_ro,omitempty"`
	AltEn string `json:"alt_en,omitempty"`
	// ProjectID links the photo to a project for the project placement.
	ProjectID  *string `json:"project_id"`
	OrderIndex int     `json:"order_index"`

	Project   *ProjectRef `json:"projects,omitempty"`
	CreatedAt string      `json:"created_at,omitempty"`
}

// Alt returns the alt text for the given locale, falling back to the
// Romanian text.
func (p Photo) Alt(locale i18n.Locale) string {
	if locale == i18n.LocaleEnglish && p.AltEn != "" {
		return p.AltEn
	}
	return p.AltRo
}

// ProjectTitle returns the linked project title for the given locale, or
// empty when the photo is not attached to a project.
func (p Photo) ProjectTitle(locale i18n.Locale) string {
	if p.Project == nil {
		return ""
	}
	if locale == i18n.LocaleEnglish && p.Project.TitleEn != "" {
		return p.Project.TitleEn
	}
	return p.Project.TitleRo
}
