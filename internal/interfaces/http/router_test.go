package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/Empleos-api/internal/application/analytics"
	"github.com/jhoicas/Empleos-api/internal/application/applications"
	"github.com/jhoicas/Empleos-api/internal/application/auth"
	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/application/usecase"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/infrastructure/feed"
	"github.com/jhoicas/Empleos-api/internal/infrastructure/memory"
	"github.com/jhoicas/Empleos-api/internal/infrastructure/notify"
	"github.com/jhoicas/Empleos-api/internal/infrastructure/resume"
	"github.com/jhoicas/Empleos-api/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/Empleos-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Empleos-api/pkg/jwt"
	"github.com/jhoicas/Empleos-api/pkg/logger"
)

type stubReports struct{}

func (stubReports) GenerateApplicantsReport(_ context.Context, _ *entity.Job, apps []*entity.Application) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}

type testServer struct {
	app   *fiber.App
	store *memory.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Users().Create(ctx, &entity.User{ID: "emp", Username: "acme", Email: "hr@acme.io", IsEmployer: true, CompanyName: "Acme Corp"}))
	require.NoError(t, s.Users().Create(ctx, &entity.User{ID: "emp2", Username: "globex", Email: "hr@globex.io", IsEmployer: true, CompanyName: "Globex"}))
	require.NoError(t, s.Users().Create(ctx, &entity.User{ID: "ana", Username: "ana", Email: "ana@mail.io", IsSeeker: true}))
	require.NoError(t, s.Categories().Create(ctx, &entity.Category{ID: "c-dev", Name: "Development", Slug: "development"}))

	files, err := storage.NewLocalStorage(t.TempDir(), "/media")
	require.NoError(t, err)
	log := logger.Nop()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:   auth.NewAuthUseCase(s.Users(), auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		SearchUC: usecase.NewSearchUseCase(s.Jobs(), s.Categories()),
		JobUC: usecase.NewJobUseCase(s.Jobs(), s.Categories(), s.Applications(), s.Users(),
			feed.NewRSSRenderer("Empleos", "http://empleos.test")),
		UserUC:    usecase.NewUserUseCase(s.Users()),
		CompanyUC: usecase.NewCompanyUseCase(s.Users(), s.Jobs()),
		ApplicationsUC: applications.NewUseCase(applications.Deps{
			Jobs:         s.Jobs(),
			Applications: s.Applications(),
			Users:        s.Users(),
			Storage:      files,
			Extractor:    resume.NewPDFExtractor(log),
			Notifier:     notify.NewLogNotifier(log),
			Reports:      stubReports{},
			Log:          log,
		}),
		StatsUC:   appanalytics.NewStatsUseCase(s.Analytics()),
		JWTSecret: testJWTSecret,
	})
	return &testServer{app: app, store: s}
}

func (ts *testServer) do(t *testing.T, method, path, authHeader string, body io.Reader, contentType string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := ts.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (ts *testServer) doJSON(t *testing.T, method, path, authHeader string, in any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	return ts.do(t, method, path, authHeader, bytes.NewReader(raw), fiber.MIMEApplicationJSON)
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func multipartResume(t *testing.T, filename string, content []byte, cover string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("cover_letter", cover))
	if filename != "" {
		part, err := w.CreateFormFile("resume", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

var (
	employerID = pkgjwt.Identity{UserID: "emp", IsEmployer: true}
	otherEmp   = pkgjwt.Identity{UserID: "emp2", IsEmployer: true}
	seekerID   = pkgjwt.Identity{UserID: "ana", IsSeeker: true}
)

func (ts *testServer) postJob(t *testing.T, title, location string) dto.JobResponse {
	t.Helper()
	resp := ts.doJSON(t, http.MethodPost, "/employer/jobs", bearer(t, employerID), dto.CreateJobRequest{
		Title: title, Description: "Go y Postgres", Location: location, CategorySlug: "development",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.JobResponse](t, resp)
}

func TestSearch_VacioYPaginas(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.do(t, http.MethodGet, "/", "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.SearchResponse](t, resp)
	assert.Empty(t, out.Jobs)
	assert.Equal(t, 1, out.Pagination.Page)

	resp = ts.do(t, http.MethodGet, "/?page=abc", "", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = ts.do(t, http.MethodGet, "/?page=3", "", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestSearch_FiltraPorCategoriaYUbicacion(t *testing.T) {
	ts := newTestServer(t)
	ts.postJob(t, "Backend Engineer", "Berlin")
	ts.postJob(t, "Backend Engineer", "Madrid")

	resp := ts.do(t, http.MethodGet, "/?query=backend&location=berlin&category=development", "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.SearchResponse](t, resp)
	require.Len(t, out.Jobs, 1)
	assert.Equal(t, "backend-engineer", out.Jobs[0].Slug)
	assert.Equal(t, "berlin", out.Filters.Location)
}

func TestPostJob_Permisos(t *testing.T) {
	ts := newTestServer(t)
	in := dto.CreateJobRequest{Title: "Backend Engineer", Description: "d", Location: "Berlin"}

	resp := ts.doJSON(t, http.MethodPost, "/employer/jobs", "", in)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = ts.doJSON(t, http.MethodPost, "/employer/jobs", bearer(t, seekerID), in)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = ts.doJSON(t, http.MethodPost, "/employer/jobs", bearer(t, employerID), dto.CreateJobRequest{Title: "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", errBody.Code)
}

func TestUpdateJob_AjenaEs404(t *testing.T) {
	ts := newTestServer(t)
	job := ts.postJob(t, "Backend Engineer", "Berlin")
	in := dto.UpdateJobRequest{CreateJobRequest: dto.CreateJobRequest{Title: "Otro", Description: "d", Location: "Remote"}}

	resp := ts.doJSON(t, http.MethodPut, "/employer/job/"+job.Slug, bearer(t, otherEmp), in)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = ts.doJSON(t, http.MethodPut, "/employer/job/"+job.Slug, bearer(t, employerID), in)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.JobResponse](t, resp)
	assert.Equal(t, "Otro", out.Title)
	assert.Equal(t, job.Slug, out.Slug)
}

func TestApply_FlujoCompleto(t *testing.T) {
	ts := newTestServer(t)
	job := ts.postJob(t, "Backend Engineer", "Berlin")
	path := "/job/" + job.Slug + "/apply"

	body, ct := multipartResume(t, "cv.txt", []byte("experiencia en Go"), "Hola")
	resp := ts.do(t, http.MethodPost, path, "", body, ct)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	body, ct = multipartResume(t, "", nil, "sin archivo")
	resp = ts.do(t, http.MethodPost, path, bearer(t, seekerID), body, ct)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	body, ct = multipartResume(t, "cv.txt", []byte("experiencia en Go"), "Hola")
	resp = ts.do(t, http.MethodPost, path, bearer(t, seekerID), body, ct)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	app := decode[dto.ApplicationResponse](t, resp)
	assert.Equal(t, job.Slug, app.JobSlug)
	assert.Equal(t, "pending", app.Status)
	assert.False(t, app.ResumeIndexed)

	body, ct = multipartResume(t, "cv.txt", []byte("otra vez"), "")
	resp = ts.do(t, http.MethodPost, path, bearer(t, seekerID), body, ct)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "ALREADY_APPLIED", errBody.Code)
	assert.Equal(t, 1, ts.store.Applications().Count(job.ID, "ana"))

	resp = ts.do(t, http.MethodGet, "/job/"+job.Slug, bearer(t, seekerID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	detail := decode[dto.JobDetailResponse](t, resp)
	assert.True(t, detail.HasApplied)

	resp = ts.do(t, http.MethodGet, "/job/"+job.Slug, "", nil, "")
	detail = decode[dto.JobDetailResponse](t, resp)
	assert.False(t, detail.HasApplied)

	resp = ts.do(t, http.MethodPost, "/job/no-existe/apply", bearer(t, seekerID), nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestEmployer_PostulacionesYReporte(t *testing.T) {
	ts := newTestServer(t)
	job := ts.postJob(t, "Backend Engineer", "Berlin")
	body, ct := multipartResume(t, "cv.txt", []byte("cv"), "Hola")
	resp := ts.do(t, http.MethodPost, "/job/"+job.Slug+"/apply", bearer(t, seekerID), body, ct)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = ts.do(t, http.MethodGet, "/employer/job/"+job.Slug+"/applications", bearer(t, otherEmp), nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = ts.do(t, http.MethodGet, "/employer/job/"+job.Slug+"/applications", bearer(t, employerID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.JobApplicationsResponse](t, resp)
	require.Len(t, list.Applications, 1)
	assert.Equal(t, "ana", list.Applications[0].ApplicantUsername)
	assert.True(t, strings.HasPrefix(list.Applications[0].ResumeURL, "/media/resumes/"))

	resp = ts.do(t, http.MethodGet, "/employer/job/"+job.Slug+"/applications.pdf", bearer(t, employerID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "candidatos-backend-engineer.pdf")
	resp.Body.Close()

	resp = ts.do(t, http.MethodGet, "/employer/dashboard", bearer(t, employerID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	dash := decode[dto.EmployerDashboardResponse](t, resp)
	assert.Equal(t, 1, dash.TotalApplications)

	resp = ts.do(t, http.MethodGet, "/api/my-applications", bearer(t, seekerID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	mine := decode[[]dto.MyApplicationResponse](t, resp)
	require.Len(t, mine, 1)
	assert.Equal(t, "Acme Corp", mine[0].CompanyName)

	resp = ts.do(t, http.MethodGet, "/api/my-applications", bearer(t, employerID), nil, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestStats_SoloEmpleadores(t *testing.T) {
	ts := newTestServer(t)
	ts.postJob(t, "Backend Engineer", "Berlin")

	resp := ts.do(t, http.MethodGet, "/employer/stats", bearer(t, seekerID), nil, "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = ts.do(t, http.MethodGet, "/employer/stats", bearer(t, employerID), nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decode[dto.StatsResponse](t, resp)
	assert.Equal(t, 1, stats.Totals.ActiveJobs)
	assert.Equal(t, 2, stats.Totals.Employers)
	assert.Len(t, stats.ApplicationsTrend, 30)
	assert.Empty(t, stats.RecentActivity)
}

func TestAutocompleteYCategorias(t *testing.T) {
	ts := newTestServer(t)
	ts.postJob(t, "Backend Engineer", "Berlin")

	resp := ts.do(t, http.MethodGet, "/api/autocomplete?term=", "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.JSONEq(t, `{"titles":[],"locations":[]}`, string(raw))

	resp = ts.do(t, http.MethodGet, "/api/autocomplete?term=back", "", nil, "")
	ac := decode[dto.AutocompleteResponse](t, resp)
	assert.Equal(t, []string{"Backend Engineer"}, ac.Titles)
	assert.Empty(t, ac.Locations)

	resp = ts.do(t, http.MethodGet, "/api/categories", "", nil, "")
	cats := decode[[]dto.CategoryResponse](t, resp)
	require.Len(t, cats, 1)
	assert.Equal(t, "development", cats[0].Slug)
}

func TestFeed_RSS(t *testing.T) {
	ts := newTestServer(t)
	ts.postJob(t, "Backend Engineer", "Berlin")

	resp := ts.do(t, http.MethodGet, "/feed.xml", "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/rss+xml")
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(raw), "http://empleos.test/job/backend-engineer")
}

func TestAuth_RegistroLoginYPerfil(t *testing.T) {
	ts := newTestServer(t)

	reg := dto.RegisterRequest{Username: "luis", Email: "luis@mail.io", Password: "secreto123"}
	resp := ts.doJSON(t, http.MethodPost, "/api/auth/register", "", reg)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	user := decode[dto.UserResponse](t, resp)
	assert.True(t, user.IsSeeker)
	assert.False(t, user.IsEmployer)

	resp = ts.doJSON(t, http.MethodPost, "/api/auth/register", "", reg)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "USERNAME_TAKEN", errBody.Code)

	resp = ts.doJSON(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "luis", Password: "incorrecta"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = ts.doJSON(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "luis@mail.io", Password: "secreto123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decode[dto.LoginResponse](t, resp)
	require.NotEmpty(t, login.Token)

	phone := "+49 30 1234"
	resp = ts.doJSON(t, http.MethodPut, "/api/profile", "Bearer "+login.Token, dto.UpdateProfileRequest{Phone: &phone})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	profile := decode[dto.UserResponse](t, resp)
	assert.Equal(t, phone, profile.Phone)

	resp = ts.do(t, http.MethodGet, "/api/profile", "", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestDetail_Inexistente(t *testing.T) {
	ts := newTestServer(t)
	resp := ts.do(t, http.MethodGet, "/job/no-existe", "", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "JOB_NOT_FOUND", errBody.Code)
}

func TestCompanies_DirectorioYFicha(t *testing.T) {
	ts := newTestServer(t)
	open := ts.postJob(t, "Backend Engineer", "Berlin")
	closed := ts.postJob(t, "Data Engineer", "Remote")
	off := false
	resp := ts.doJSON(t, http.MethodPut, "/employer/job/"+closed.Slug, bearer(t, employerID), dto.UpdateJobRequest{
		CreateJobRequest: dto.CreateJobRequest{Title: closed.Title, Description: "d", Location: "Remote"},
		IsActive:         &off,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = ts.do(t, http.MethodGet, "/api/companies", "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]dto.CompanyResponse](t, resp)
	require.Len(t, list, 2)
	assert.Equal(t, "Acme Corp", list[0].CompanyName)
	assert.Equal(t, 1, list[0].OpenJobs)
	assert.Equal(t, 2, list[0].TotalJobs)
	assert.Equal(t, "Globex", list[1].CompanyName)
	assert.Equal(t, 0, list[1].TotalJobs)

	resp = ts.do(t, http.MethodGet, "/api/companies/emp", "", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	detail := decode[dto.CompanyDetailResponse](t, resp)
	assert.Equal(t, "acme", detail.Username)
	require.Len(t, detail.Jobs, 1)
	assert.Equal(t, open.Slug, detail.Jobs[0].Slug)
}

func TestCompanies_NoEmpleadorEs404(t *testing.T) {
	ts := newTestServer(t)
	for _, id := range []string{"ana", "no-existe"} {
		resp := ts.do(t, http.MethodGet, "/api/companies/"+id, "", nil, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, id)
		errBody := decode[dto.ErrorResponse](t, resp)
		assert.Equal(t, "NOT_FOUND", errBody.Code)
	}
}
