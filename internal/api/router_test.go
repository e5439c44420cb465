package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rohits-web03/quick4lio/internal/api/handlers"
	"github.com/rohits-web03/quick4lio/internal/api/middleware"
	"github.com/rohits-web03/quick4lio/internal/api/services"
	"github.com/rohits-web03/quick4lio/internal/config"
	"github.com/rohits-web03/quick4lio/internal/portfolio"
	"github.com/rohits-web03/quick4lio/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
)

const mediaBase = "https://media.example.com"

type fakeMedia struct {
	objects map[string]bool
}

func (m *fakeMedia) PresignPut(_ context.Context, key, _ string, expires time.Duration) (string, error) {
	return fmt.Sprintf("https://bucket.example.com/%s?X-Amz-Expires=%d", key, int(expires.Seconds())), nil
}

func (m *fakeMedia) PublicURL(key string) string {
	return mediaBase + "/" + key
}

func (m *fakeMedia) Exists(_ context.Context, key string) (bool, error) {
	return m.objects[key], nil
}

func (m *fakeMedia) KeyFromPublicURL(u string) (string, bool) {
	if !strings.HasPrefix(u, mediaBase+"/") {
		return "", false
	}
	return strings.TrimPrefix(u, mediaBase+"/"), true
}

type response struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t       *testing.T
	handler http.Handler
}

func newTestServer(t *testing.T, media handlers.MediaStore) *testServer {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := repositories.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), zap.NewNop())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, repositories.Migrate(db))

	cfg := config.Config{
		JWTSecret:     "test-secret",
		Environment:   "test",
		PublicBaseURL: "https://quick4lio.example.com",
		CorsConfig:    config.CorsConfig(),
	}
	log := zap.NewNop()
	users := repositories.NewUserRepository(db)
	h := &handlers.Handler{
		Accounts:   services.NewAccountService(users, log),
		Portfolios: services.NewPortfolioService(repositories.NewPortfolioRepository(db), users, portfolio.NewBuilder(false), log),
		Posts:      repositories.NewPostRepository(db),
		Config:     cfg,
		Log:        log,
	}
	if media != nil {
		h.Media = media
	}
	return &testServer{t: t, handler: SetupRouter(h, cfg, log)}
}

func (s *testServer) do(method, path, contentType string, body io.Reader, token string) (*httptest.ResponseRecorder, response) {
	s.t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: token})
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var res response
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &res))
	}
	return rec, res
}

func (s *testServer) sendJSON(method, path string, body any, token string) (*httptest.ResponseRecorder, response) {
	s.t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(s.t, err)
	return s.do(method, path, "application/json", strings.NewReader(string(raw)), token)
}

func (s *testServer) form(path string, values url.Values, token string) (*httptest.ResponseRecorder, response) {
	s.t.Helper()
	return s.do(http.MethodPost, path, "application/x-www-form-urlencoded", strings.NewReader(values.Encode()), token)
}

// signUp registers username and returns its session token.
func (s *testServer) signUp(username string) string {
	s.t.Helper()
	rec, _ := s.sendJSON(http.MethodPost, "/api/v1/auth/sign-up", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "hunter22",
	}, "")
	require.Equal(s.t, http.StatusCreated, rec.Code)

	rec, _ = s.sendJSON(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": username,
		"password": "hunter22",
	}, "")
	require.Equal(s.t, http.StatusOK, rec.Code)
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.TokenCookie {
			return c.Value
		}
	}
	s.t.Fatal("login did not set the session cookie")
	return ""
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil)
	rec, _ := s.do(http.MethodGet, "/health", "", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestAuthRoutes(t *testing.T) {
	s := newTestServer(t, nil)
	token := s.signUp("ann")

	rec, res := s.sendJSON(http.MethodPost, "/api/v1/auth/sign-up", map[string]string{
		"username": "ann", "email": "other@example.com", "password": "x",
	}, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, res.Success)
	assert.Equal(t, "Username is already taken", res.Message)

	rec, _ = s.sendJSON(http.MethodPost, "/api/v1/auth/sign-up", map[string]string{
		"username": "ann", "unexpected": "field",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = s.sendJSON(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "ann", "password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = s.do(http.MethodGet, "/api/v1/me", "", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, res = s.do(http.MethodGet, "/api/v1/me", "", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[struct {
		User struct {
			Username         string `json:"username"`
			SubscriptionType string `json:"subscriptionType"`
		} `json:"user"`
		SocialLinks map[string]string `json:"socialLinks"`
	}](t, res.Data)
	assert.Equal(t, "ann", me.User.Username)
	assert.Equal(t, "Free", me.User.SubscriptionType)
	assert.Empty(t, me.SocialLinks)
	assert.NotContains(t, rec.Body.String(), "hunter22")

	rec, _ = s.do(http.MethodPost, "/api/v1/auth/logout", "", nil, token)
	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestPortfolioRoutes(t *testing.T) {
	s := newTestServer(t, nil)
	token := s.signUp("ann")

	type publicPage struct {
		View         portfolio.ViewKind  `json:"view"`
		SectionsData *portfolio.Sections `json:"sectionsData"`
	}

	rec, res := s.do(http.MethodGet, "/p/ann", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, portfolio.NoPortfolio, decode[publicPage](t, res.Data).View)

	rec, _ = s.do(http.MethodGet, "/p/nobody", "", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, res = s.do(http.MethodGet, "/api/v1/portfolio", "", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	form := decode[services.EditForm](t, res.Data)
	assert.Equal(t, portfolio.EditFree, form.View)
	assert.Nil(t, form.PaidPages)

	rec, res = s.form("/api/v1/portfolio", url.Values{
		"portfolio_type": {"Free"},
		"name":           {"Ann"},
		"contact_email":  {"ann@example.com"},
		"skills":         {"go, sql,,"},
		"home_content":   {"ignored below Paid"},
	}, token)
	require.Equal(t, http.StatusOK, rec.Code, res.Message)
	saved := decode[struct {
		PublicURL string `json:"publicUrl"`
	}](t, res.Data)
	assert.Equal(t, "https://quick4lio.example.com/p/ann", saved.PublicURL)

	rec, res = s.do(http.MethodGet, "/p/ann", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[publicPage](t, res.Data)
	assert.Equal(t, portfolio.FreeView, page.View)
	require.NotNil(t, page.SectionsData)
	assert.Equal(t, "Ann", page.SectionsData.Header.Name)
	assert.Equal(t, []string{"go", "sql"}, page.SectionsData.Skills)
	assert.Nil(t, page.SectionsData.PaidPages)

	rec, res = s.form("/api/v1/portfolio", url.Values{"portfolio_type": {"Gold"}}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid plan selected.", res.Message)

	rec, _ = s.do(http.MethodPost, "/api/v1/plans/Enterprise", "", nil, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, res = s.do(http.MethodPost, "/api/v1/plans/Premium", "", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, res.Message, "Premium")

	rec, res = s.do(http.MethodGet, "/api/v1/plans", "", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	plans := decode[services.PlanDetails](t, res.Data)
	assert.Equal(t, portfolio.Premium, plans.CurrentPlan)
	assert.Len(t, plans.Plans, 3)

	// Selecting a plan moved the stored portfolio along with the account.
	rec, res = s.do(http.MethodGet, "/p/ann", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, portfolio.PremiumView, decode[publicPage](t, res.Data).View)

	rec, res = s.form("/api/v1/portfolio", url.Values{
		"portfolio_type": {"Premium"},
		"name":           {"Ann"},
		"case_studies":   {"Migrated billing"},
		"resume_link":    {"https://ann.example.com/cv.pdf"},
	}, token)
	require.Equal(t, http.StatusOK, rec.Code, res.Message)

	rec, res = s.do(http.MethodGet, "/p/ann", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	page = decode[publicPage](t, res.Data)
	assert.Equal(t, portfolio.PremiumView, page.View)
	require.NotNil(t, page.SectionsData.PremiumPages)
	assert.Equal(t, "Migrated billing", page.SectionsData.PremiumPages.CaseStudies)
	require.NotNil(t, page.SectionsData.PaidPages)

	rec, res = s.do(http.MethodGet, "/api/v1/portfolio", "", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	form = decode[services.EditForm](t, res.Data)
	assert.Equal(t, portfolio.EditPremium, form.View)
	require.NotNil(t, form.PremiumPages)
	assert.Equal(t, "https://ann.example.com/cv.pdf", form.PremiumPages.ResumeLink)
}

func TestPostRoutes(t *testing.T) {
	media := &fakeMedia{objects: map[string]bool{"posts/x/uploaded.png": true}}
	s := newTestServer(t, media)
	token := s.signUp("ann")

	rec, _ := s.sendJSON(http.MethodPost, "/api/v1/posts", map[string]string{"contentText": "  "}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, res := s.sendJSON(http.MethodPost, "/api/v1/posts", map[string]string{
		"contentText":  "hello",
		"contentImage": mediaBase + "/posts/x/missing.png",
	}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "uploaded image not found", res.Message)

	longURL := "https://elsewhere.example.com/" + strings.Repeat("a", 200)
	rec, res = s.sendJSON(http.MethodPost, "/api/v1/posts", map[string]string{
		"contentText":  "hello",
		"contentImage": longURL,
	}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "image URL must be at most 200 characters", res.Message)

	rec, _ = s.sendJSON(http.MethodPut, "/api/v1/me/profile", map[string]any{
		"profilePhoto": longURL,
	}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = s.sendJSON(http.MethodPost, "/api/v1/posts", map[string]string{
		"contentText":  "first",
		"contentImage": mediaBase + "/posts/x/uploaded.png",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = s.sendJSON(http.MethodPost, "/api/v1/posts", map[string]string{
		"contentText":  "second",
		"contentImage": "https://elsewhere.example.com/cat.gif",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	type post struct {
		Author      string `json:"author"`
		ContentText string `json:"contentText"`
	}

	rec, res = s.do(http.MethodGet, "/feed?limit=10", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	feed := decode[struct {
		Posts []post `json:"posts"`
	}](t, res.Data)
	require.Len(t, feed.Posts, 2)
	for _, p := range feed.Posts {
		assert.Equal(t, "ann", p.Author)
	}

	rec, res = s.do(http.MethodGet, "/user/ann", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decode[struct {
		User struct {
			Username string `json:"username"`
		} `json:"user"`
		Posts []post `json:"posts"`
	}](t, res.Data)
	assert.Equal(t, "ann", profile.User.Username)
	assert.Len(t, profile.Posts, 2)
	assert.NotContains(t, rec.Body.String(), "ann@example.com")

	rec, _ = s.do(http.MethodGet, "/user/nobody", "", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProfileRoute(t *testing.T) {
	s := newTestServer(t, &fakeMedia{objects: map[string]bool{}})
	token := s.signUp("ann")

	rec, _ := s.sendJSON(http.MethodPut, "/api/v1/me/profile", map[string]any{
		"profilePhoto": mediaBase + "/avatars/x/none.png",
	}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, res := s.sendJSON(http.MethodPut, "/api/v1/me/profile", map[string]any{
		"profilePhoto": "",
		"bio":          "  Backend developer ",
		"socialLinks":  map[string]string{"github": "https://github.com/ann"},
	}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode[struct {
		User struct {
			ProfilePhoto string `json:"profilePhoto"`
			Bio          string `json:"bio"`
		} `json:"user"`
		SocialLinks map[string]string `json:"socialLinks"`
	}](t, res.Data)
	assert.Equal(t, "https://via.placeholder.com/150", out.User.ProfilePhoto)
	assert.Equal(t, "Backend developer", out.User.Bio)
	assert.Equal(t, "https://github.com/ann", out.SocialLinks["github"])

	rec, res = s.do(http.MethodGet, "/user/ann", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(res.Data), "https://github.com/ann")
}

func TestPresignUploadRoute(t *testing.T) {
	t.Run("storage not configured", func(t *testing.T) {
		s := newTestServer(t, nil)
		token := s.signUp("ann")
		rec, _ := s.sendJSON(http.MethodPost, "/api/v1/uploads/presign", map[string]string{
			"kind": "posts", "contentType": "image/png",
		}, token)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("configured", func(t *testing.T) {
		s := newTestServer(t, &fakeMedia{})
		token := s.signUp("ann")

		rec, _ := s.sendJSON(http.MethodPost, "/api/v1/uploads/presign", map[string]string{
			"kind": "posts", "contentType": "application/pdf",
		}, token)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec, _ = s.sendJSON(http.MethodPost, "/api/v1/uploads/presign", map[string]string{
			"kind": "secrets", "contentType": "image/png",
		}, token)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec, res := s.sendJSON(http.MethodPost, "/api/v1/uploads/presign", map[string]string{
			"kind": "avatars", "contentType": "image/webp",
		}, token)
		require.Equal(t, http.StatusOK, rec.Code)
		out := decode[struct {
			UploadURL string `json:"uploadUrl"`
			PublicURL string `json:"publicUrl"`
			ExpiresIn int    `json:"expiresIn"`
		}](t, res.Data)
		assert.True(t, strings.HasPrefix(out.PublicURL, mediaBase+"/avatars/"), out.PublicURL)
		assert.True(t, strings.HasSuffix(out.PublicURL, ".webp"), out.PublicURL)
		assert.Contains(t, out.UploadURL, "X-Amz-Expires=900")
		assert.Equal(t, 900, out.ExpiresIn)
	})
}
