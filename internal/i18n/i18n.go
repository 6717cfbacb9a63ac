package i18n

import "strings"

// Locale represents a supported site locale.
type Locale string

const (
	LocaleRomanian Locale = "ro"
	LocaleEnglish  Locale = "en"
)

// DefaultLocale is used when a request carries no usable locale hint.
const DefaultLocale = LocaleRomanian

// Locales lists the supported locales in navigation order.
var Locales = []Locale{LocaleRomanian, LocaleEnglish}

// Messages contains all translatable UI strings used by the site.
type Messages struct {
	AdminActions        string `json:"adminActions"`
	AdminAddProject     string `json:"adminAddProject"`
	AdminBackToSite     string `json:"adminBackToSite"`
	AdminCancel         string `json:"adminCancel"`
	AdminCategory       string `json:"adminCategory"`
	AdminConfirmDelete  string `json:"adminConfirmDelete"`
	AdminCurrency       string `json:"adminCurrency"`
	AdminDashboard      string `json:"adminDashboard"`
	AdminDelete         string `json:"adminDelete"`
	AdminDescriptionEn  string `json:"adminDescriptionEn"`
	AdminDescriptionRo  string `json:"adminDescriptionRo"`
	AdminDragDrop       string `json:"adminDragDrop"`
	AdminEdit           string `json:"adminEdit"`
	AdminEditProject    string `json:"adminEditProject"`
	AdminEmail          string `json:"adminEmail"`
	AdminFeatured       string `json:"adminFeatured"`
	AdminFormError      string `json:"adminFormError"`
	AdminLogin          string `json:"adminLogin"`
	AdminLoginError     string `json:"adminLoginError"`
	AdminNewProject     string `json:"adminNewProject"`
	AdminNoPhotos       string `json:"adminNoPhotos"`
	AdminNoProjects     string `json:"adminNoProjects"`
	AdminOrClickSelect  string `json:"adminOrClickSelect"`
	AdminOrderIndex     string `json:"adminOrderIndex"`
	AdminPassword       string `json:"adminPassword"`
	AdminPhotos         string `json:"adminPhotos"`
	AdminPlacement      string `json:"adminPlacement"`
	AdminPrice          string `json:"adminPrice"`
	AdminProjects       string `json:"adminProjects"`
	AdminQuickActions   string `json:"adminQuickActions"`
	AdminSave           string `json:"adminSave"`
	AdminSaving         string `json:"adminSaving"`
	AdminSelectProject  string `json:"adminSelectProject"`
	AdminSignIn         string `json:"adminSignIn"`
	AdminSignOut        string `json:"adminSignOut"`
	AdminTitleEn        string `json:"adminTitleEn"`
	AdminTitleRo        string `json:"adminTitleRo"`
	AdminTotalPhotos    string `json:"adminTotalPhotos"`
	AdminTotalProjects  string `json:"adminTotalProjects"`
	AdminUploadError    string `json:"adminUploadError"`
	AdminUploadPhotos   string `json:"adminUploadPhotos"`
	AdminUploading      string `json:"adminUploading"`
	CTAButton           string `json:"ctaButton"`
	CTATitle            string `json:"ctaTitle"`
	CategoryCustom      string `json:"categoryCustom"`
	CategoryHousing     string `json:"categoryHousing"`
	CategoryOffice      string `json:"categoryOffice"`
	CategoryStorage     string `json:"categoryStorage"`
	ErrorOccurred       string `json:"errorOccurred"`
	FilterAll           string `json:"filterAll"`
	FooterRights        string `json:"footerRights"`
	GalleryEmpty        string `json:"galleryEmpty"`
	GalleryTitle        string `json:"galleryTitle"`
	HeroCTA             string `json:"heroCta"`
	HeroSubtitle        string `json:"heroSubtitle"`
	HeroTitle           string `json:"heroTitle"`
	HowItWorksStepOne   string `json:"howItWorksStepOne"`
	HowItWorksStepThree string `json:"howItWorksStepThree"`
	HowItWorksStepTwo   string `json:"howItWorksStepTwo"`
	HowItWorksTitle     string `json:"howItWorksTitle"`
	NavAdmin            string `json:"navAdmin"`
	NavGallery          string `json:"navGallery"`
	NavHome             string `json:"navHome"`
	OffersCustomDesc    string `json:"offersCustomDesc"`
	OffersHousingDesc   string `json:"offersHousingDesc"`
	OffersOfficeDesc    string `json:"offersOfficeDesc"`
	OffersStorageDesc   string `json:"offersStorageDesc"`
	OffersTitle         string `json:"offersTitle"`
	PlacementGallery    string `json:"placementGallery"`
	PlacementHero       string `json:"placementHero"`
	PlacementProject    string `json:"placementProject"`
	PlacementSection    string `json:"placementSection"`
	PriceOnRequest      string `json:"priceOnRequest"`
	RecentTitle         string `json:"recentTitle"`
	RecentViewAll       string `json:"recentViewAll"`
	StatsClients        string `json:"statsClients"`
	StatsDelivered      string `json:"statsDelivered"`
	StatsYears          string `json:"statsYears"`
	WhyUsDelivery       string `json:"whyUsDelivery"`
	WhyUsEfficiency     string `json:"whyUsEfficiency"`
	WhyUsQuality        string `json:"whyUsQuality"`
	WhyUsTitle          string `json:"whyUsTitle"`
}

// Response is the payload returned by the /api/i18n endpoint.
type Response struct {
	Locale   Locale   `json:"locale"`
	Messages Messages `json:"messages"`
}

var romanianMessages = Messages{
	AdminActions:        "Acțiuni",
	AdminAddProject:     "Adaugă proiect",
	AdminBackToSite:     "Înapoi la site",
	AdminCancel:         "Anulează",
	AdminCategory:       "Categorie",
	AdminConfirmDelete:  "Sigur dorești să ștergi? Acțiunea nu poate fi anulată.",
	AdminCurrency:       "Monedă",
	AdminDashboard:      "Panou de control",
	AdminDelete:         "Șterge",
	AdminDescriptionEn:  "Descriere (EN)",
	AdminDescriptionRo:  "Descriere (RO)",
	AdminDragDrop:       "Trage fișierul aici",
	AdminEdit:           "Editează",
	AdminEditProject:    "Editează proiectul",
	AdminEmail:          "Email",
	AdminFeatured:       "Recomandat pe prima pagină",
	AdminFormError:      "Verifică datele introduse în formular",
	AdminLogin:          "Autentificare administrator",
	AdminLoginError:     "Email sau parolă incorecte",
	AdminNewProject:     "Proiect nou",
	AdminNoPhotos:       "Nicio fotografie încărcată.",
	AdminNoProjects:     "Niciun proiect încă.",
	AdminOrClickSelect:  "sau apasă pentru a selecta",
	AdminOrderIndex:     "Ordine afișare",
	AdminPassword:       "Parolă",
	AdminPhotos:         "Fotografii",
	AdminPlacement:      "Amplasare",
	AdminPrice:          "Preț",
	AdminProjects:       "Proiecte",
	AdminQuickActions:   "Acțiuni rapide",
	AdminSave:           "Salvează",
	AdminSaving:         "Se salvează...",
	AdminSelectProject:  "Alege proiectul",
	AdminSignIn:         "Conectare",
	AdminSignOut:        "Deconectare",
	AdminTitleEn:        "Titlu (EN)",
	AdminTitleRo:        "Titlu (RO)",
	AdminTotalPhotos:    "Total fotografii",
	AdminTotalProjects:  "Total proiecte",
	AdminUploadError:    "Fișierul nu a putut fi citit",
	AdminUploadPhotos:   "Încarcă fotografii",
	AdminUploading:      "Se încarcă...",
	CTAButton:           "Cere o ofertă",
	CTATitle:            "Pregătit să construim împreună?",
	CategoryCustom:      "Personalizate",
	CategoryHousing:     "Locuințe",
	CategoryOffice:      "Birouri",
	CategoryStorage:     "Depozite",
	ErrorOccurred:       "A apărut o eroare. Încearcă din nou.",
	FilterAll:           "Toate",
	FooterRights:        "Toate drepturile rezervate.",
	GalleryEmpty:        "Niciun proiect în această categorie.",
	GalleryTitle:        "Galerie proiecte",
	HeroCTA:             "Vezi proiectele",
	HeroSubtitle:        "Containere modulare premium pentru locuințe, birouri și depozite. Personalizabile, eficiente energetic, livrare rapidă.",
	HeroTitle:           "BOXPRO Containere Modulare",
	HowItWorksStepOne:   "Alegi modelul și configurația",
	HowItWorksStepThree: "Livrăm și instalăm containerul",
	HowItWorksStepTwo:   "Primești oferta și confirmi comanda",
	HowItWorksTitle:     "Cum funcționează",
	NavAdmin:            "Administrare",
	NavGallery:          "Galerie",
	NavHome:             "Acasă",
	OffersCustomDesc:    "Configurații la comandă pentru orice destinație",
	OffersHousingDesc:   "Locuințe modulare gata de mutat, de la studio la casă de familie",
	OffersOfficeDesc:    "Birouri containerizate pentru șantiere și sedii temporare",
	OffersStorageDesc:   "Depozite securizate cu montaj în aceeași zi",
	OffersTitle:         "Ce construim",
	PlacementGallery:    "Galerie",
	PlacementHero:       "Banner principal",
	PlacementProject:    "Proiect",
	PlacementSection:    "Secțiune oferte",
	PriceOnRequest:      "Preț la cerere",
	RecentTitle:         "Proiecte recente",
	RecentViewAll:       "Vezi toate proiectele",
	StatsClients:        "Clienți mulțumiți",
	StatsDelivered:      "Containere livrate",
	StatsYears:          "Ani de experiență",
	WhyUsDelivery:       "Livrare și montaj rapid oriunde în țară",
	WhyUsEfficiency:     "Izolație și eficiență energetică ridicată",
	WhyUsQuality:        "Materiale premium și finisaje la comandă",
	WhyUsTitle:          "De ce BOXPRO",
}

var englishMessages = Messages{
	AdminActions:        "Actions",
	AdminAddProject:     "Add project",
	AdminBackToSite:     "Back to site",
	AdminCancel:         "Cancel",
	AdminCategory:       "Category",
	AdminConfirmDelete:  "Are you sure you want to delete? This cannot be undone.",
	AdminCurrency:       "Currency",
	AdminDashboard:      "Dashboard",
	AdminDelete:         "Delete",
	AdminDescriptionEn:  "Description (EN)",
	AdminDescriptionRo:  "Description (RO)",
	AdminDragDrop:       "Drag a file here",
	AdminEdit:           "Edit",
	AdminEditProject:    "Edit project",
	AdminEmail:          "Email",
	AdminFeatured:       "Featured on landing page",
	AdminFormError:      "Check the submitted form values",
	AdminLogin:          "Administrator sign-in",
	AdminLoginError:     "Wrong email or password",
	AdminNewProject:     "New project",
	AdminNoPhotos:       "No photos uploaded yet.",
	AdminNoProjects:     "No projects yet.",
	AdminOrClickSelect:  "or click to select",
	AdminOrderIndex:     "Display order",
	AdminPassword:       "Password",
	AdminPhotos:         "Photos",
	AdminPlacement:      "Placement",
	AdminPrice:          "Price",
	AdminProjects:       "Projects",
	AdminQuickActions:   "Quick actions",
	AdminSave:           "Save",
	AdminSaving:         "Saving...",
	AdminSelectProject:  "Select project",
	AdminSignIn:         "Sign in",
	AdminSignOut:        "Sign out",
	AdminTitleEn:        "Title (EN)",
	AdminTitleRo:        "Title (RO)",
	AdminTotalPhotos:    "Total photos",
	AdminTotalProjects:  "Total projects",
	AdminUploadError:    "The file could not be read",
	AdminUploadPhotos:   "Upload photos",
	AdminUploading:      "Uploading...",
	CTAButton:           "Request a quote",
	CTATitle:            "Ready to build together?",
	CategoryCustom:      "Custom",
	CategoryHousing:     "Housing",
	CategoryOffice:      "Offices",
	CategoryStorage:     "Storage",
	ErrorOccurred:       "An error occurred. Please try again.",
	FilterAll:           "All",
	FooterRights:        "All rights reserved.",
	GalleryEmpty:        "No projects in this category.",
	GalleryTitle:        "Project gallery",
	HeroCTA:             "View projects",
	HeroSubtitle:        "Premium modular containers for housing, offices and storage. Customizable, energy efficient, fast delivery.",
	HeroTitle:           "BOXPRO Modular Containers",
	HowItWorksStepOne:   "Pick the model and configuration",
	HowItWorksStepThree: "We deliver and install the container",
	HowItWorksStepTwo:   "Receive the quote and confirm the order",
	HowItWorksTitle:     "How it works",
	NavAdmin:            "Admin",
	NavGallery:          "Gallery",
	NavHome:             "Home",
	OffersCustomDesc:    "Made-to-order configurations for any purpose",
	OffersHousingDesc:   "Move-in ready modular homes, from studios to family houses",
	OffersOfficeDesc:    "Containerized offices for sites and temporary headquarters",
	OffersStorageDesc:   "Secure storage units installed the same day",
	OffersTitle:         "What we build",
	PlacementGallery:    "Gallery",
	PlacementHero:       "Hero banner",
	PlacementProject:    "Project",
	PlacementSection:    "Offers section",
	PriceOnRequest:      "Price on request",
	RecentTitle:         "Recent projects",
	RecentViewAll:       "View all projects",
	StatsClients:        "Happy clients",
	StatsDelivered:      "Containers delivered",
	StatsYears:          "Years of experience",
	WhyUsDelivery:       "Fast delivery and assembly nationwide",
	WhyUsEfficiency:     "High insulation and energy efficiency",
	WhyUsQuality:        "Premium materials and made-to-order finishes",
	WhyUsTitle:          "Why BOXPRO",
}

// MessagesForLocale returns the translations for a given locale.
func MessagesForLocale(locale Locale) Messages {
	if locale == LocaleEnglish {
		return englishMessages
	}
	return romanianMessages
}

// FromPathSegment parses a locale prefix coming from the URL path.
func FromPathSegment(value string) (Locale, bool) {
	code := strings.ToLower(strings.TrimSpace(value))
	if code == string(LocaleRomanian) {
		return LocaleRomanian, true
	}
	if code == string(LocaleEnglish) {
		return LocaleEnglish, true
	}
	return "", false
}

// FromAcceptLanguage inspects an Accept-Language header and picks a
// best-effort locale, defaulting to Romanian.
func FromAcceptLanguage(headerValue string) Locale {
	lowered := strings.ToLower(headerValue)
	if lowered == "" {
		return DefaultLocale
	}
	for _, part := range strings.Split(lowered, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "ro" || strings.HasPrefix(tag, "ro-") {
			return LocaleRomanian
		}
		if tag == "en" || strings.HasPrefix(tag, "en-") {
			return LocaleEnglish
		}
	}
	return DefaultLocale
}
