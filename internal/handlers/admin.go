package handlers

import (
	"errors"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"boxpro/internal/content"
	apperrors "boxpro/internal/errors"
	"boxpro/internal/i18n"
	"boxpro/internal/logger"
	"boxpro/internal/routing"
	"boxpro/internal/session"
	"boxpro/internal/upload"
	"boxpro/internal/validation"
	"boxpro/middleware"
)

// maxUploadBytes caps a single media upload.
const maxUploadBytes int64 = 50 << 20

type loginTemplateData struct {
	pageTemplateData
	Error string
}

type dashboardTemplateData struct {
	pageTemplateData
	Email  string
	Counts content.Counts
}

type adminProjectsTemplateData struct {
	pageTemplateData
	Projects []content.Project
	Error    string
}

type projectFormTemplateData struct {
	pageTemplateData
	Editing    bool
	ProjectID  string
	Form       validation.ProjectForm
	Categories []content.Category
	Currencies []content.Currency
	Error      string
}

type adminPhotosTemplateData struct {
	pageTemplateData
	Photos         []content.Photo
	ProjectOptions []content.Project
	Placements     []content.Placement
	Filter         string
	Error          string
	Uploaded       bool
}

// AdminHandler serves the admin area: login, dashboard, project CRUD and
// photo management.
type AdminHandler struct {
	gate      *session.Gate
	store     *content.Store
	uploader  *upload.Uploader
	templates *template.Template
}

// RegisterAdminRoutes mounts the admin area under the given locale-scoped
// router.
func RegisterAdminRoutes(router chi.Router, gate *session.Gate, store *content.Store, uploader *upload.Uploader, webFS fs.FS) {
	h := &AdminHandler{
		gate:      gate,
		store:     store,
		uploader:  uploader,
		templates: parseTemplates(webFS),
	}

	router.Route("/{locale}/admin", func(router chi.Router) {
		router.Use(localeOnly)

		router.Get("/", h.loginPage)
		router.Post("/login", h.login)
		router.Post("/logout", h.logout)

		router.Group(func(router chi.Router) {
			router.Use(h.requireAuth)
			router.Get("/dashboard", h.dashboard)
			router.Get("/projects", h.projects)
			router.Get("/projects/new", h.projectNew)
			router.Get("/projects/{id}/edit", h.projectEdit)
			router.Post("/projects", h.projectCreate)
			router.Post("/projects/{id}", h.projectUpdate)
			router.Post("/projects/{id}/delete", h.projectDelete)
			router.Get("/photos", h.photos)
			router.With(middleware.BodyLimit(maxUploadBytes)).Post("/photos/upload", h.photoUpload)
			router.Post("/photos/{id}/delete", h.photoDelete)
		})
	})
}

// requireAuth sends unauthenticated visitors to the locale's login page.
func (h *AdminHandler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.gate.SignedIn(r) {
			routing.RedirectToLogin(w, r, requestLocale(r))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *AdminHandler) loginPage(w http.ResponseWriter, r *http.Request) {
	locale := requestLocale(r)
	if h.gate.SignedIn(r) {
		routing.RedirectToDashboard(w, r, locale)
		return
	}
	renderPage(w, r, h.templates, "login.html", loginTemplateData{pageTemplateData: pageData(r, locale)})
}

func (h *AdminHandler) login(w http.ResponseWriter, r *http.Request) {
	locale := requestLocale(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	email := r.Form.Get("email")
	password := r.Form.Get("password")
	err := validation.ValidateCredentials(email, password)
	if err == nil {
		err = h.gate.SignIn(r.Context(), w, email, password)
	}
	if err != nil {
		requestID := middleware.GetRequestID(r.Context())
		logger.HTTPEvent(r.Method, r.URL.Path, http.StatusUnauthorized, 0).
			Str("request_id", requestID).
			Msg("Login rejected")
		// The same generic message for every failure mode.
		data := loginTemplateData{
			pageTemplateData: pageData(r, locale),
			Error:            i18n.MessagesForLocale(locale).AdminLoginError,
		}
		w.WriteHeader(http.StatusUnauthorized)
		renderPage(w, r, h.templates, "login.html", data)
		return
	}

	routing.RedirectToDashboard(w, r, locale)
}

func (h *AdminHandler) logout(w http.ResponseWriter, r *http.Request) {
	h.gate.SignOut(r.Context(), w, r)
	routing.RedirectToLogin(w, r, requestLocale(r))
}

func (h *AdminHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	locale := requestLocale(r)
	principal, err := h.gate.Principal(r)
	if err != nil {
		routing.RedirectToLogin(w, r, locale)
		return
	}
	data := dashboardTemplateData{
		pageTemplateData: pageData(r, locale),
		Email:            principal.Email,
		Counts:           h.store.Counts(r.Context()),
	}
	renderPage(w, r, h.templates, "dashboard.html", data)
}

func (h *AdminHandler) projects(w http.ResponseWriter, r *http.Request) {
	locale := requestLocale(r)
	data := adminProjectsTemplateData{pageTemplateData: pageData(r, locale)}
	projects, err := h.store.AdminProjects(r.Context())
	if err != nil {
		h.logAdminError(r, err, "Failed to list projects")
		data.Error = i18n.MessagesForLocale(locale).ErrorOccurred
	}
	data.Projects = projects
	renderPage(w, r, h.templates, "projects.html", data)
}

func (h *AdminHandler) projectNew(w http.ResponseWriter, r *http.Request) {
	locale := requestLocale(r)
	data := projectFormTemplateData{
		pageTemplateData: pageData(r, locale),
		Form:             validation.ProjectForm{Category: string(content.CategoryHousing), Currency: string(content.CurrencyEUR)},
		Categories:       content.Categories,
		Currencies:       content.Currencies,
	}
	renderPage(w, r, h.templates, "project-form.html", data)
}

func (h *AdminHandler) projectEdit(w http.ResponseWriter, r *http.Request) {
	locale := requestLocale(r)
	id := chi.URLParam(r, "id")
	project, err := h.store.ProjectByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logAdminError(r, err, "Failed to load project")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data := projectFormTemplateData{
		pageTemplateData: pageData(r, locale),
		Editing:          true,
		ProjectID:        project.ID,
		Form:             formFromProject(project),
		Categories:       content.Categories,
		Currencies:       content.Currencies,
	}
	renderPage(w, r, h.templates, "project-form.html", data)
}

func (h *AdminHandler) projectCreate(w http.ResponseWriter, r *http.Request) {
	h.saveProject(w, r, "")
}

func (h *AdminHandler) projectUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveProject(w, r, chi.URLParam(r, "id"))
}

func (h *AdminHandler) saveProject(w http.ResponseWriter, r *http.Request, id string) {
	locale := requestLocale(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	form := validation.ProjectForm{
		TitleRo:       r.Form.Get("title_ro"),
		TitleEn:       r.Form.Get("title_en"),
		DescriptionRo: r.Form.Get("description_ro"),
		DescriptionEn: r.Form.Get("description_en"),
		Category:      r.Form.Get("category"),
		Price:         r.Form.Get("price"),
		Currency:      r.Form.Get("currency"),
		Featured:      r.Form.Get("featured"),
		OrderIndex:    r.Form.Get("order_index"),
	}

	rerender := func(message string) {
		data := projectFormTemplateData{
			pageTemplateData: pageData(r, locale),
			Editing:          id != "",
			ProjectID:        id,
			Form:             form,
			Categories:       content.Categories,
			Currencies:       content.Currencies,
			Error:            message,
		}
		renderPage(w, r, h.templates, "project-form.html", data)
	}

	project, err := validation.ValidateProject(form)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		rerender(i18n.MessagesForLocale(locale).AdminFormError)
		return
	}

	if id == "" {
		err = h.store.CreateProject(r.Context(), project)
	} else {
		err = h.store.UpdateProject(r.Context(), id, project)
	}
	if err != nil {
		h.logAdminError(r, err, "Failed to save project")
		w.WriteHeader(http.StatusBadGateway)
		rerender(i18n.MessagesForLocale(locale).ErrorOccurred)
		return
	}

	http.Redirect(w, r, routing.Path(locale, "/admin/projects"), http.StatusSeeOther)
}

func (h *AdminHandler) projectDelete(w http.ResponseWriter, r *http.Request) {
	locale := requestLocale(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	// The confirmation dialog posts this value; its absence means the
	// request did not come through the dialog.
	if r.Form.Get("confirm") == "" {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err := h.store.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.logAdminError(r, err, "Failed to delete project")
		data := adminProjectsTemplateData{
			pageTemplateData: pageData(r, locale),
			Error:            i18n.MessagesForLocale(locale).ErrorOccurred,
		}
		projects, listErr := h.store.AdminProjects(r.Context())
		if listErr != nil {
			h.logAdminError(r, listErr, "Failed to list projects")
		}
		data.Projects = projects
		w.WriteHeader(http.StatusBadGateway)
		renderPage(w, r, h.templates, "projects.html", data)
		return
	}
	http.Redirect(w, r, routing.Path(locale, "/admin/projects"), http.StatusSeeOther)
}

func (h *AdminHandler) photos(w http.ResponseWriter, r *http.Request) {
	h.renderPhotos(w, r, "", r.URL.Query().Get("uploaded") == "1")
}

func (h *AdminHandler) renderPhotos(w http.ResponseWriter, r *http.Request, errorMessage string, uploaded bool) {
	locale := requestLocale(r)
	filter := r.URL.Query().Get("placement")
	if filter == "" {
		filter = content.FilterAll
	}
	data := adminPhotosTemplateData{
		pageTemplateData: pageData(r, locale),
		Placements:       content.Placements,
		Filter:           filter,
		Error:            errorMessage,
		Uploaded:         uploaded,
	}

	photos, err := h.store.AdminPhotos(r.Context())
	if err != nil {
		h.logAdminError(r, err, "Failed to list photos")
		data.Error = i18n.MessagesForLocale(locale).ErrorOccurred
	}
	data.Photos = content.FilterPhotos(photos, filter)

	options, err := h.store.ProjectOptions(r.Context())
	if err != nil {
		h.logAdminError(r, err, "Failed to list project options")
	}
	data.ProjectOptions = options

	renderPage(w, r, h.templates, "photos.html", data)
}

func (h *AdminHandler) photoUpload(w http.ResponseWriter, r *http.Request) {
	locale := requestLocale(r)
	messages := i18n.MessagesForLocale(locale)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.renderPhotos(w, r, messages.AdminUploadError, false)
		return
	}

	var filename string
	var fileData []byte
	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()
		filename = header.Filename
		fileData, err = io.ReadAll(file)
		if err != nil {
			h.renderPhotos(w, r, messages.AdminUploadError, false)
			return
		}
	}

	placement, projectID, err := validation.ValidateUpload(r.Form.Get("placement"), r.Form.Get("project_id"), filename)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		h.renderPhotos(w, r, messages.AdminFormError, false)
		return
	}

	requestID := middleware.GetRequestID(r.Context())
	_, err = h.uploader.Upload(r.Context(), filename, fileData, placement, projectID, func(percent int) {
		logger.Get().Debug().
			Str("request_id", requestID).
			Int("percent", percent).
			Msg("Upload progress")
	})
	if err != nil {
		h.logAdminError(r, err, "Failed to upload photo")
		w.WriteHeader(http.StatusBadGateway)
		h.renderPhotos(w, r, messages.ErrorOccurred, false)
		return
	}

	http.Redirect(w, r, routing.Path(locale, "/admin/photos?uploaded=1"), http.StatusSeeOther)
}

func (h *AdminHandler) photoDelete(w http.ResponseWriter, r *http.Request) {
	locale := requestLocale(r)
	id := chi.URLParam(r, "id")

	photo, err := h.store.PhotoByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPhotoNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logAdminError(r, err, "Failed to load photo")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if err := h.uploader.Remove(r.Context(), photo); err != nil {
		h.logAdminError(r, err, "Failed to delete photo")
		w.WriteHeader(http.StatusBadGateway)
		h.renderPhotos(w, r, i18n.MessagesForLocale(locale).ErrorOccurred, false)
		return
	}

	http.Redirect(w, r, routing.Path(locale, "/admin/photos"), http.StatusSeeOther)
}

func (h *AdminHandler) logAdminError(r *http.Request, err error, message string) {
	requestID := middleware.GetRequestID(r.Context())
	logger.HTTPError(r.Method, r.URL.Path, http.StatusInternalServerError, err).
		Str("request_id", requestID).
		Msg(message)
}

func formFromProject(project content.Project) validation.ProjectForm {
	form := validation.ProjectForm{
		TitleRo:       project.TitleRo,
		TitleEn:       project.TitleEn,
		DescriptionRo: project.DescriptionRo,
		DescriptionEn: project.DescriptionEn,
		Category:      string(project.Category),
		Currency:      string(project.Currency),
		OrderIndex:    strconv.Itoa(project.OrderIndex),
	}
	if project.Featured {
		form.Featured = "true"
	}
	if project.Price != nil {
		form.Price = strconv.FormatFloat(*project.Price, 'f', -1, 64)
	}
	return form
}
