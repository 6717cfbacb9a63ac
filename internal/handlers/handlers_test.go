package handlers

import (
	"bytes"
	"io/fs"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"boxpro/internal/backend"
	"boxpro/internal/content"
	"boxpro/internal/i18n"
	"boxpro/internal/session"
	"boxpro/internal/upload"
)

// jpegSample carries a JPEG magic number so content sniffing sees an image.
var jpegSample = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46}

func testWebFS() fs.FS {
	return fstest.MapFS{
		"templates/home.html":         &fstest.MapFile{Data: []byte(`home:{{.Messages.HeroTitle}}{{range .Featured}}[{{.TitleRo}}]{{end}}`)},
		"templates/gallery.html":      &fstest.MapFile{Data: []byte(`gallery:{{template "gallery-grid" .Grid}}`)},
		"templates/gallery-grid.html": &fstest.MapFile{Data: []byte(`{{define "gallery-grid"}}filter={{.Filter}}{{range .Projects}}[{{.TitleRo}}]{{end}}{{end}}`)},
		"templates/login.html":        &fstest.MapFile{Data: []byte(`login:{{with .Error}}error={{.}}{{end}}`)},
		"templates/dashboard.html":    &fstest.MapFile{Data: []byte(`dashboard:{{.Email}} projects={{.Counts.Projects}} photos={{.Counts.Photos}}`)},
		"templates/projects.html":     &fstest.MapFile{Data: []byte(`projects:{{range .Projects}}[{{.TitleRo}}={{.AdminPriceLabel}}]{{end}}{{with .Error}}error={{.}}{{end}}`)},
		"templates/project-form.html": &fstest.MapFile{Data: []byte(`form:editing={{.Editing}} title={{.Form.TitleRo}}{{with .Error}} error={{.}}{{end}}`)},
		"templates/photos.html":       &fstest.MapFile{Data: []byte(`photos:{{if .Uploaded}}uploaded {{end}}{{range .Photos}}[{{.URL}}]{{end}}{{with .Error}}error={{.}}{{end}}`)},
	}
}

func newSiteRouter(client backend.Client) chi.Router {
	router := chi.NewRouter()
	store := content.NewStore(client)
	gate := session.NewGate(client, false)
	uploader := upload.NewUploader(client, "photos")
	RegisterAdminRoutes(router, gate, store, uploader, testWebFS())
	RegisterUIRoutes(router, store, testWebFS())
	RegisterI18nRoutes(router)
	return router
}

// signedToken builds a token the local expiry check accepts; the backend
// mock stands in for signature verification.
func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": expiresAt.Unix()})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func signedIn(t *testing.T, client *backend.MockClient, req *http.Request) {
	t.Helper()
	token := signedToken(t, time.Now().Add(time.Hour))
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	client.MockAuth.On("Principal", mock.Anything, token).
		Return(backend.Principal{ID: "admin-1", Email: "admin@boxpro.ro"}, nil)
}

func TestHome_ServesPlaceholdersWithoutBackend(t *testing.T) {
	router := newSiteRouter(backend.NewDisabledClient())

	req := httptest.NewRequest(http.MethodGet, "/ro", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Proiect Demo 1")
	assert.Contains(t, rec.Body.String(), "Proiect Demo 3")
}

func TestGalleryFragment_FiltersByCategory(t *testing.T) {
	router := newSiteRouter(backend.NewDisabledClient())

	tests := []struct {
		filter  string
		want    []string
		exclude []string
	}{
		{filter: "", want: []string{"Proiect Demo 1", "Proiect Demo 6"}},
		{filter: "all", want: []string{"Proiect Demo 1", "Proiect Demo 6"}},
		{filter: "housing", want: []string{"Proiect Demo 1", "Proiect Demo 5"}, exclude: []string{"Proiect Demo 2"}},
		{filter: "office", want: []string{"Proiect Demo 2", "Proiect Demo 6"}, exclude: []string{"Proiect Demo 1"}},
		{filter: "unknown", exclude: []string{"Proiect Demo 1", "Proiect Demo 2"}},
	}
	for _, tt := range tests {
		t.Run("filter "+tt.filter, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ro/ui/gallery?filter="+tt.filter, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			for _, fragment := range tt.want {
				assert.Contains(t, rec.Body.String(), fragment)
			}
			for _, fragment := range tt.exclude {
				assert.NotContains(t, rec.Body.String(), fragment)
			}
		})
	}
}

func TestGalleryPage_RendersGridInline(t *testing.T) {
	router := newSiteRouter(backend.NewDisabledClient())

	req := httptest.NewRequest(http.MethodGet, "/en/gallery", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gallery:filter=all")
}

func TestLogin_SuccessSetsSessionCookie(t *testing.T) {
	client := &backend.MockClient{}
	client.MockAuth.On("SignIn", mock.Anything, "admin@boxpro.ro", "secret").
		Return(backend.Session{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour)}, nil)
	router := newSiteRouter(client)

	form := url.Values{"email": {"admin@boxpro.ro"}, "password": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, "/ro/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/ro/admin/dashboard", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, session.CookieName, cookies[0].Name)
		assert.Equal(t, "tok", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	}
	client.MockAuth.AssertExpectations(t)
}

func TestLogin_RejectedShowsGenericError(t *testing.T) {
	client := &backend.MockClient{}
	client.MockAuth.On("SignIn", mock.Anything, mock.Anything, mock.Anything).
		Return(backend.Session{}, assert.AnError)
	router := newSiteRouter(client)

	form := url.Values{"email": {"admin@boxpro.ro"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/en/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), i18n.MessagesForLocale(i18n.LocaleEnglish).AdminLoginError)
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogin_MalformedCredentialsSkipBackend(t *testing.T) {
	client := &backend.MockClient{}
	router := newSiteRouter(client)

	form := url.Values{"email": {"not-an-email"}, "password": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, "/ro/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	client.MockAuth.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginPage_SignedInRedirectsToDashboard(t *testing.T) {
	client := &backend.MockClient{}
	router := newSiteRouter(client)

	req := httptest.NewRequest(http.MethodGet, "/ro/admin", nil)
	signedIn(t, client, req)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/ro/admin/dashboard", rec.Header().Get("Location"))
}

func TestDashboard_ShowsEmailAndCounts(t *testing.T) {
	client := &backend.MockClient{}
	client.On("Count", mock.Anything, "projects", map[string]string(nil)).Return(4, nil)
	client.On("Count", mock.Anything, "photos", map[string]string(nil)).Return(9, nil)
	router := newSiteRouter(client)

	req := httptest.NewRequest(http.MethodGet, "/ro/admin/dashboard", nil)
	signedIn(t, client, req)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin@boxpro.ro")
	assert.Contains(t, rec.Body.String(), "projects=4")
	assert.Contains(t, rec.Body.String(), "photos=9")
}

func TestSaveProject_InvalidFormRerendersWith422(t *testing.T) {
	client := &backend.MockClient{}
	router := newSiteRouter(client)

	form := url.Values{"title_ro": {""}, "title_en": {"Alpine Office"}}
	req := httptest.NewRequest(http.MethodPost, "/ro/admin/projects", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	signedIn(t, client, req)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), i18n.MessagesForLocale(i18n.LocaleRomanian).AdminFormError)
	client.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSaveProject_CreateRedirectsToListing(t *testing.T) {
	client := &backend.MockClient{}
	client.On("Insert", mock.Anything, "projects", mock.Anything, nil).Return(nil)
	router := newSiteRouter(client)

	form := url.Values{
		"title_ro": {"Casa Alpina"},
		"title_en": {"Alpine House"},
		"category": {"housing"},
		"price":    {"12500"},
	}
	req := httptest.NewRequest(http.MethodPost, "/en/admin/projects", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	signedIn(t, client, req)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/en/admin/projects", rec.Header().Get("Location"))
	client.AssertExpectations(t)
}

func TestDeleteProject_RequiresConfirmation(t *testing.T) {
	client := &backend.MockClient{}
	router := newSiteRouter(client)

	req := httptest.NewRequest(http.MethodPost, "/ro/admin/projects/p1/delete", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	signedIn(t, client, req)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	client.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteProject_ConfirmedDeletesAndRedirects(t *testing.T) {
	client := &backend.MockClient{}
	client.On("Delete", mock.Anything, "projects", "p1").Return(nil)
	router := newSiteRouter(client)

	form := url.Values{"confirm": {"1"}}
	req := httptest.NewRequest(http.MethodPost, "/ro/admin/projects/p1/delete", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	signedIn(t, client, req)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/ro/admin/projects", rec.Header().Get("Location"))
	client.AssertExpectations(t)
}

func TestDeleteProject_BackendFailureKeepsListing(t *testing.T) {
	client := &backend.MockClient{}
	client.On("Delete", mock.Anything, "projects", "p1").Return(assert.AnError)
	client.On("Select", mock.Anything, "projects", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			projects := args.Get(3).(*[]content.Project)
			*projects = []content.Project{{ID: "p1", TitleRo: "Casa Alpina"}}
		}).Return(nil)
	router := newSiteRouter(client)

	form := url.Values{"confirm": {"1"}}
	req := httptest.NewRequest(http.MethodPost, "/ro/admin/projects/p1/delete", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	signedIn(t, client, req)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))
	assert.Contains(t, rec.Body.String(), i18n.MessagesForLocale(i18n.LocaleRomanian).ErrorOccurred)
	assert.Contains(t, rec.Body.String(), "Casa Alpina")
}

func multipartUpload(t *testing.T, placement string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "casa.jpg")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(jpegSample); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	_ = writer.WriteField("placement", placement)
	for name, value := range fields {
		_ = writer.WriteField(name, value)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestUploadPhoto_StoresAndRedirects(t *testing.T) {
	client := &backend.MockClient{}
	client.MockStorage.On("Upload", mock.Anything, "photos", mock.Anything, mock.Anything, "image/jpeg").
		Return("https://cdn.example/storage/v1/object/public/photos/1-casa.jpg", nil)
	client.On("Insert", mock.Anything, "photos", mock.Anything, mock.Anything).Return(nil)
	router := newSiteRouter(client)

	body, contentType := multipartUpload(t, "gallery", nil)
	req := httptest.NewRequest(http.MethodPost, "/ro/admin/photos/upload", body)
	req.Header.Set("Content-Type", contentType)
	signedIn(t, client, req)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/ro/admin/photos?uploaded=1", rec.Header().Get("Location"))
	client.MockStorage.AssertExpectations(t)
	client.AssertExpectations(t)
}

func TestUploadPhoto_ProjectPlacementNeedsProject(t *testing.T) {
	client := &backend.MockClient{}
	client.On("Select", mock.Anything, "photos", mock.Anything, mock.Anything).Return(nil)
	client.On("Select", mock.Anything, "projects", mock.Anything, mock.Anything).Return(nil)
	router := newSiteRouter(client)

	body, contentType := multipartUpload(t, "project", nil)
	req := httptest.NewRequest(http.MethodPost, "/ro/admin/photos/upload", body)
	req.Header.Set("Content-Type", contentType)
	signedIn(t, client, req)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	client.MockStorage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeletePhoto_RemovesStorageObjectAndRow(t *testing.T) {
	client := &backend.MockClient{}
	client.On("Select", mock.Anything, "photos", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			photos := args.Get(3).(*[]content.Photo)
			*photos = []content.Photo{{ID: "ph1", URL: "https://cdn.example/storage/v1/object/public/photos/1-casa.jpg"}}
		}).Return(nil)
	client.MockStorage.On("Remove", mock.Anything, "photos", []string{"1-casa.jpg"}).Return(nil)
	client.On("Delete", mock.Anything, "photos", "ph1").Return(nil)
	router := newSiteRouter(client)

	req := httptest.NewRequest(http.MethodPost, "/ro/admin/photos/ph1/delete", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	signedIn(t, client, req)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/ro/admin/photos", rec.Header().Get("Location"))
	client.MockStorage.AssertExpectations(t)
	client.AssertExpectations(t)
}

func TestPhotosPage_FiltersByPlacement(t *testing.T) {
	client := &backend.MockClient{}
	client.On("Select", mock.Anything, "photos", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			photos := args.Get(3).(*[]content.Photo)
			*photos = []content.Photo{
				{ID: "ph1", URL: "https://cdn.example/hero.jpg", Placement: content.PlacementHero},
				{ID: "ph2", URL: "https://cdn.example/gallery.jpg", Placement: content.PlacementGallery},
			}
		}).Return(nil)
	client.On("Select", mock.Anything, "projects", mock.Anything, mock.Anything).Return(nil)
	router := newSiteRouter(client)

	req := httptest.NewRequest(http.MethodGet, "/ro/admin/photos?placement=hero", nil)
	signedIn(t, client, req)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hero.jpg")
	assert.NotContains(t, rec.Body.String(), "gallery.jpg")
}

func TestLogout_ClearsCookieAndRedirects(t *testing.T) {
	client := &backend.MockClient{}
	client.MockAuth.On("SignOut", mock.Anything, mock.Anything).Return(nil)
	router := newSiteRouter(client)

	req := httptest.NewRequest(http.MethodPost, "/ro/admin/logout", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: signedToken(t, time.Now().Add(time.Hour))})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/ro/admin", rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()
	if assert.Len(t, cookies, 1) {
		assert.Equal(t, session.CookieName, cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Less(t, cookies[0].MaxAge, 0)
	}
}
