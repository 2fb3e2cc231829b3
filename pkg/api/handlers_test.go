package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foundhex-site/pkg/clients/repx"
	"foundhex-site/pkg/middleware"
	"foundhex-site/pkg/models"
	"foundhex-site/pkg/pages"
	"foundhex-site/pkg/services"
	"foundhex-site/pkg/signup"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeCreator struct {
	mu    sync.Mutex
	err   error
	calls []models.OrganizationSignupRequest
}

func (f *fakeCreator) CreateOrganization(_ context.Context, req models.OrganizationSignupRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	return f.err
}

type fakeDemoService struct {
	err    error
	booked []models.DemoBookingData
}

func (f *fakeDemoService) Book(_ context.Context, data models.DemoBookingData) (models.DemoBookingResult, error) {
	if f.err != nil {
		return models.DemoBookingResult{}, f.err
	}
	f.booked = append(f.booked, data)
	return models.DemoBookingResult{Email: data.Email}, nil
}

type testServer struct {
	router  *gin.Engine
	signups services.SignupService
	creator *fakeCreator
	demos   *fakeDemoService
}

func newTestServer(t *testing.T, limiter *middleware.RateLimiter) *testServer {
	t.Helper()
	creator := &fakeCreator{}
	signups := services.NewSignupService(creator, 30*time.Minute)
	t.Cleanup(signups.Stop)
	demos := &fakeDemoService{}

	return &testServer{
		router: NewRouter(RouterDeps{
			SignupService: signups,
			DemoService:   demos,
			RateLimiter:   limiter,
			SessionTTL:    30 * time.Minute,
		}),
		signups: signups,
		creator: creator,
		demos:   demos,
	}
}

func (s *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

type errorBody struct {
	Error string          `json:"error"`
	State sessionResponse `json:"state"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (s *testServer) startSession(t *testing.T) string {
	t.Helper()
	w := s.do(http.MethodPost, "/api/signup/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	return decode[sessionResponse](t, w).ID
}

var requiredFields = map[string]string{
	models.FieldOrganizationName: "Acme Diner",
	models.FieldIndustry:         "Restaurant / Food Service",
	models.FieldContactEmail:     "owner@acme.com",
	models.FieldContactName:      "Ann Owner",
}

func (s *testServer) sessionOnPlanStep(t *testing.T) string {
	t.Helper()
	id := s.startSession(t)
	require.Equal(t, http.StatusOK, s.do(http.MethodPatch, "/api/signup/sessions/"+id+"/fields", requiredFields).Code)
	require.Equal(t, http.StatusOK, s.do(http.MethodPost, "/api/signup/sessions/"+id+"/advance", nil).Code)
	require.Equal(t, http.StatusOK, s.do(http.MethodPost, "/api/signup/sessions/"+id+"/advance", nil).Code)
	return id
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t, nil)
	w := s.do(http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCatalog(t *testing.T) {
	s := newTestServer(t, nil)
	w := s.do(http.MethodGet, "/api/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[struct {
		Industries []string           `json:"industries"`
		Plans      []models.PlanOffer `json:"plans"`
	}](t, w)
	assert.Equal(t, models.Industries(), body.Industries)
	require.Len(t, body.Plans, 3)
	assert.Equal(t, models.PlanFree, body.Plans[0].Name)
}

func TestSignupAPI_FullFlow(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.startSession(t)
	base := "/api/signup/sessions/" + id

	w := s.do(http.MethodPost, base+"/advance", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	failed := decode[errorBody](t, w)
	assert.Equal(t, signup.MsgRequiredFields, failed.Error)
	assert.Equal(t, signup.MsgRequiredFields, failed.State.State.Error)
	assert.Equal(t, signup.StepOrganization, failed.State.State.Step)

	w = s.do(http.MethodPatch, base+"/fields", requiredFields)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[sessionResponse](t, w).State.Error)

	w = s.do(http.MethodPost, base+"/advance", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, signup.StepLocation, decode[sessionResponse](t, w).State.Step)

	w = s.do(http.MethodPost, base+"/advance", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, signup.StepPlan, decode[sessionResponse](t, w).State.Step)

	w = s.do(http.MethodPut, base+"/plan", gin.H{"plan": "Pro"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.PlanPro, decode[sessionResponse](t, w).State.FormData.SubscriptionPlan)

	w = s.do(http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	state := decode[sessionResponse](t, w).State
	assert.True(t, state.SubmitSuccess)
	assert.False(t, state.IsSubmitting)

	require.Len(t, s.creator.calls, 1)
	assert.Equal(t, models.PlanPro, s.creator.calls[0].SubscriptionPlan)
	assert.Equal(t, "USA", s.creator.calls[0].FirstLocationCountry)

	w = s.do(http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[sessionResponse](t, w).State.SubmitSuccess)
}

func TestSignupAPI_RetreatKeepsData(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.sessionOnPlanStep(t)
	base := "/api/signup/sessions/" + id

	w := s.do(http.MethodPost, base+"/retreat", nil)
	require.Equal(t, http.StatusOK, w.Code)
	state := decode[sessionResponse](t, w).State
	assert.Equal(t, signup.StepLocation, state.Step)
	assert.Equal(t, "Acme Diner", state.FormData.OrganizationName)
}

func TestSignupAPI_ErrorStatuses(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.startSession(t)
	base := "/api/signup/sessions/" + id

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"unknown session", http.MethodGet, "/api/signup/sessions/nope", nil, http.StatusNotFound},
		{"unknown session advance", http.MethodPost, "/api/signup/sessions/nope/advance", nil, http.StatusNotFound},
		{"unknown field", http.MethodPatch, base + "/fields", gin.H{"favoriteColor": "blue"}, http.StatusBadRequest},
		{"plan through fields", http.MethodPatch, base + "/fields", gin.H{"subscriptionPlan": "Pro"}, http.StatusBadRequest},
		{"empty fields", http.MethodPatch, base + "/fields", gin.H{}, http.StatusBadRequest},
		{"retreat on first step", http.MethodPost, base + "/retreat", nil, http.StatusConflict},
		{"plan before last step", http.MethodPut, base + "/plan", gin.H{"plan": "Pro"}, http.StatusConflict},
		{"missing plan", http.MethodPut, base + "/plan", gin.H{}, http.StatusBadRequest},
		{"submit before last step", http.MethodPost, base + "/submit", nil, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestSignupAPI_InvalidPlan(t *testing.T) {
	s := newTestServer(t, nil)
	id := s.sessionOnPlanStep(t)

	w := s.do(http.MethodPut, "/api/signup/sessions/"+id+"/plan", gin.H{"plan": "Platinum"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupAPI_SubmitFailure(t *testing.T) {
	s := newTestServer(t, nil)
	s.creator.err = &repx.APIError{StatusCode: http.StatusConflict, Message: "Organization already exists"}
	id := s.sessionOnPlanStep(t)

	w := s.do(http.MethodPost, "/api/signup/sessions/"+id+"/submit", nil)
	require.Equal(t, http.StatusBadGateway, w.Code)
	body := decode[errorBody](t, w)
	assert.Equal(t, "Organization already exists", body.Error)
	assert.Equal(t, "Organization already exists", body.State.State.Error)
	assert.Equal(t, signup.StepPlan, body.State.State.Step)
	assert.False(t, body.State.State.SubmitSuccess)
	assert.False(t, body.State.State.IsSubmitting)

	s.creator.err = errors.New("connection refused")
	w = s.do(http.MethodPost, "/api/signup/sessions/"+id+"/submit", nil)
	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, signup.MsgGenericFailure, decode[errorBody](t, w).Error)
}

func TestDemoBookingAPI(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(http.MethodPost, "/api/demo-bookings", gin.H{"name": "Jane"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, services.MsgMissingDemoFields, decode[errorBody](t, w).Error)
	assert.Empty(t, s.demos.booked)

	w = s.do(http.MethodPost, "/api/demo-bookings", gin.H{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"phone":    "555-1234",
		"company":  "Jane's Bistro",
		"industry": "restaurant",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "jane@example.com", decode[models.DemoBookingResult](t, w).Email)
	require.Len(t, s.demos.booked, 1)

	s.demos.err = errors.New("airtable down")
	w = s.do(http.MethodPost, "/api/demo-bookings", gin.H{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"phone":    "555-1234",
		"company":  "Jane's Bistro",
		"industry": "restaurant",
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestRateLimitedRoutes(t *testing.T) {
	limiter := middleware.NewRateLimiter(1, 1)
	t.Cleanup(limiter.Stop)
	s := newTestServer(t, limiter)

	assert.NotEqual(t, http.StatusTooManyRequests, s.do(http.MethodPost, "/api/demo-bookings", gin.H{}).Code)
	assert.Equal(t, http.StatusTooManyRequests, s.do(http.MethodPost, "/api/demo-bookings", gin.H{}).Code)

	// Non-limited routes are unaffected
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/health", nil).Code)
}

func TestHTMLPages(t *testing.T) {
	s := newTestServer(t, nil)

	for path, want := range map[string]string{
		"/":      "FoundHex",
		"/repx":  "Ready to Get Started?",
		"/logos": "<svg",
	} {
		t.Run(path, func(t *testing.T) {
			w := s.do(http.MethodGet, path, nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
			assert.Contains(t, w.Body.String(), want)
		})
	}
}

func signupCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == SignupCookie {
			return c
		}
	}
	t.Fatalf("response has no %s cookie", SignupCookie)
	return nil
}

func TestSignupForm_Flow(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(http.MethodGet, pages.SignupPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookie := signupCookie(t, w)
	assert.True(t, cookie.HttpOnly)
	assert.Contains(t, w.Body.String(), "Organization Name")

	// Missing required fields keeps the first step and stores the message
	w = s.postForm(pages.SignupPath, url.Values{
		models.FieldOrganizationName: {"Acme Diner"},
		"action":                     {pages.ActionNext},
	}, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, pages.SignupPath, w.Header().Get("Location"))

	state, err := s.signups.Get(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, signup.StepOrganization, state.Step)
	assert.Equal(t, signup.MsgRequiredFields, state.Error)

	form := url.Values{"action": {pages.ActionNext}}
	for k, v := range requiredFields {
		form.Set(k, v)
	}
	require.Equal(t, http.StatusSeeOther, s.postForm(pages.SignupPath, form, cookie).Code)

	require.Equal(t, http.StatusSeeOther, s.postForm(pages.SignupPath, url.Values{
		models.FieldFirstLocationCity: {"New York"},
		"action":                      {pages.ActionNext},
	}, cookie).Code)

	require.Equal(t, http.StatusSeeOther, s.postForm(pages.SignupPath, url.Values{
		models.FieldSubscriptionPlan: {"Enterprise"},
		"action":                     {pages.ActionSubmit},
	}, cookie).Code)

	state, err = s.signups.Get(cookie.Value)
	require.NoError(t, err)
	assert.True(t, state.SubmitSuccess)
	require.Len(t, s.creator.calls, 1)
	assert.Equal(t, models.PlanEnterprise, s.creator.calls[0].SubscriptionPlan)
	assert.Equal(t, "New York", s.creator.calls[0].FirstLocationCity)

	req := httptest.NewRequest(http.MethodGet, pages.SignupPath, nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), "owner@acme.com")
}

func TestSignupForm_CookieRefreshedOnUse(t *testing.T) {
	s := newTestServer(t, nil)

	cookie := signupCookie(t, s.do(http.MethodGet, pages.SignupPath, nil))

	w := s.postForm(pages.SignupPath, url.Values{
		models.FieldOrganizationName: {"Acme Diner"},
	}, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)

	refreshed := signupCookie(t, w)
	assert.Equal(t, cookie.Value, refreshed.Value)
	assert.Equal(t, int((30 * time.Minute).Seconds()), refreshed.MaxAge)

	state, err := s.signups.Get(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "Acme Diner", state.FormData.OrganizationName)
}

func TestSignupForm_ExpiredCookieStartsOver(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, pages.SignupPath, nil)
	req.AddCookie(&http.Cookie{Name: SignupCookie, Value: "stale"})
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookie := signupCookie(t, w)
	assert.NotEqual(t, "stale", cookie.Value)
	_, err := s.signups.Get(cookie.Value)
	assert.NoError(t, err)
}

func TestDemoForm(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.postForm(pages.DemoPath, url.Values{"name": {"Jane Doe"}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), services.MsgMissingDemoFields)
	assert.Contains(t, w.Body.String(), `value="Jane Doe"`)

	w = s.postForm(pages.DemoPath, url.Values{
		"name":     {"Jane Doe"},
		"email":    {"jane@example.com"},
		"phone":    {"555-1234"},
		"company":  {"Jane's Bistro"},
		"industry": {"restaurant"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Demo Scheduled!")
	assert.Contains(t, w.Body.String(), "jane@example.com")
}
