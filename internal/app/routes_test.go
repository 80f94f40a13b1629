package app

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/fullsco/core/internal/config"
	"github.com/fullsco/core/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	a, err := New(zap.NewNop(), config.Default())
	require.NoError(t, err)
	t.Cleanup(a.Shutdown)
	return a
}

func request(t *testing.T, a *App, method, path string, body any, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var obj map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &obj))
	return obj
}

func decodeArray(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var arr []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &arr))
	return arr
}

func login(t *testing.T, a *App, username, password string) string {
	t.Helper()
	w := request(t, a, http.MethodPost, "/api/auth/login", gin.H{"username": username, "password": password}, "")
	require.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.CookieName && c.Value != "" {
			return c.Value
		}
	}
	t.Fatal("login response did not set the session cookie")
	return ""
}

func TestPing(t *testing.T) {
	a := newTestApp(t)
	w := request(t, a, http.MethodGet, "/api/ping", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", decodeObject(t, w)["message"])
}

func TestLoginLogoutFlow(t *testing.T) {
	a := newTestApp(t)

	w := request(t, a, http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = request(t, a, http.MethodPost, "/api/auth/login", gin.H{"username": "ghost", "password": "admin123"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := login(t, a, "admin", "admin123")

	w = request(t, a, http.MethodGet, "/api/auth/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	me := decodeObject(t, w)
	assert.Equal(t, "admin", me["username"])
	assert.Equal(t, "admin", me["role"])
	assert.NotContains(t, me, "password")

	w = request(t, a, http.MethodPost, "/api/auth/logout", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	// Session is revoked server-side; the old token no longer works.
	w = request(t, a, http.MethodGet, "/api/auth/me", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutWithoutSessionSucceeds(t *testing.T) {
	a := newTestApp(t)

	w := request(t, a, http.MethodPost, "/api/auth/logout", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Logged out successfully", decodeObject(t, w)["message"])

	// A stale or garbage token is treated the same way.
	w = request(t, a, http.MethodPost, "/api/auth/logout", nil, "not-a-token")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBearerHeaderAuth(t *testing.T) {
	a := newTestApp(t)
	token := login(t, a, "admin", "admin123")

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminTier(t *testing.T) {
	a := newTestApp(t)

	w := request(t, a, http.MethodGet, "/api/subscribers", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	admin := login(t, a, "admin", "admin123")
	w = request(t, a, http.MethodPost, "/api/users", gin.H{
		"username": "editor",
		"password": "pass123",
		"email":    "editor@fullsco.com",
	}, admin)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "user", decodeObject(t, w)["role"])

	editor := login(t, a, "editor", "pass123")

	w = request(t, a, http.MethodGet, "/api/auth/me", nil, editor)
	assert.Equal(t, http.StatusOK, w.Code)

	// Authenticated but not admin.
	w = request(t, a, http.MethodGet, "/api/subscribers", nil, editor)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = request(t, a, http.MethodPost, "/api/categories", gin.H{"name": "X", "slug": "x"}, editor)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDuplicateUserRejected(t *testing.T) {
	a := newTestApp(t)
	admin := login(t, a, "admin", "admin123")

	w := request(t, a, http.MethodPost, "/api/users", gin.H{
		"username": "admin",
		"password": "whatever",
		"email":    "new@fullsco.com",
	}, admin)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSubscribe(t *testing.T) {
	a := newTestApp(t)

	w := request(t, a, http.MethodPost, "/api/subscribers", gin.H{"email": "reader@example.com"}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	w = request(t, a, http.MethodPost, "/api/subscribers", gin.H{"email": "reader@example.com"}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Email already subscribed", decodeObject(t, w)["message"])

	w = request(t, a, http.MethodPost, "/api/subscribers", gin.H{"email": "not-an-email"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	admin := login(t, a, "admin", "admin123")
	w = request(t, a, http.MethodGet, "/api/subscribers", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeArray(t, w), 1)
}

func TestSeoLookupAndFallback(t *testing.T) {
	a := newTestApp(t)

	w := request(t, a, http.MethodGet, "/api/seo-settings/path?path=/", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "FULLSCO - Find Your Perfect Scholarship Opportunity", decodeObject(t, w)["metaTitle"])

	// Unknown pages get the configured site defaults.
	w = request(t, a, http.MethodGet, "/api/seo-settings/path?path=/nowhere", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	fallback := decodeObject(t, w)
	assert.Equal(t, "FULLSCO - Scholarship Blog", fallback["metaTitle"])
	assert.Equal(t, float64(0), fallback["id"])

	w = request(t, a, http.MethodGet, "/api/seo-settings/path", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSeoUpsert(t *testing.T) {
	a := newTestApp(t)
	admin := login(t, a, "admin", "admin123")

	w := request(t, a, http.MethodPost, "/api/seo-settings", gin.H{"pagePath": "/about", "metaTitle": "About"}, admin)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = request(t, a, http.MethodPost, "/api/seo-settings", gin.H{"pagePath": "/about", "metaTitle": "About v2"}, admin)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "About v2", decodeObject(t, w)["metaTitle"])

	w = request(t, a, http.MethodGet, "/api/seo-settings/path?path=/about", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "About v2", decodeObject(t, w)["metaTitle"])
}

func TestScholarshipFilters(t *testing.T) {
	a := newTestApp(t)

	w := request(t, a, http.MethodGet, "/api/scholarships", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeArray(t, w), 3)

	w = request(t, a, http.MethodGet, "/api/scholarships?country=2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeArray(t, w)
	require.Len(t, got, 1)
	assert.Equal(t, "chevening-scholarships", got[0]["slug"])

	// The Id-suffixed alias selects the same record.
	w = request(t, a, http.MethodGet, "/api/scholarships?countryId=2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	got = decodeArray(t, w)
	require.Len(t, got, 1)
	assert.Equal(t, "chevening-scholarships", got[0]["slug"])

	w = request(t, a, http.MethodGet, "/api/scholarships?featured=true&level=3", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	got = decodeArray(t, w)
	require.Len(t, got, 1)
	assert.Equal(t, "daad-scholarships", got[0]["slug"])

	w = request(t, a, http.MethodGet, "/api/scholarships?category=2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeArray(t, w), 2)

	w = request(t, a, http.MethodGet, "/api/scholarships?country=999", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeArray(t, w))

	w = request(t, a, http.MethodGet, "/api/scholarships?country=abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = request(t, a, http.MethodGet, "/api/scholarships/featured", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeArray(t, w), 3)
}

func TestPostAuthorFilter(t *testing.T) {
	a := newTestApp(t)

	// All seeded posts belong to the admin author.
	w := request(t, a, http.MethodGet, "/api/posts?author=1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeArray(t, w), 3)

	w = request(t, a, http.MethodGet, "/api/posts?authorId=1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeArray(t, w), 3)

	w = request(t, a, http.MethodGet, "/api/posts?author=42", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeArray(t, w))

	w = request(t, a, http.MethodGet, "/api/posts?author=abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScholarshipLookup(t *testing.T) {
	a := newTestApp(t)

	w := request(t, a, http.MethodGet, "/api/scholarships/slug/fulbright-scholarship-program", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeObject(t, w)["id"])

	w = request(t, a, http.MethodGet, "/api/scholarships/999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = request(t, a, http.MethodGet, "/api/scholarships/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPartialUpdatePreservesFields(t *testing.T) {
	a := newTestApp(t)
	admin := login(t, a, "admin", "admin123")

	w := request(t, a, http.MethodPut, "/api/scholarships/1", gin.H{"title": "Fulbright 2.0"}, admin)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeObject(t, w)
	assert.Equal(t, "Fulbright 2.0", got["title"])
	assert.Equal(t, "fulbright-scholarship-program", got["slug"])
	assert.Equal(t, true, got["isFeatured"])
}

func TestScholarshipSlugConflict(t *testing.T) {
	a := newTestApp(t)
	admin := login(t, a, "admin", "admin123")

	w := request(t, a, http.MethodPost, "/api/scholarships", gin.H{
		"title":       "Copycat",
		"slug":        "daad-scholarships",
		"description": "duplicate slug",
	}, admin)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = request(t, a, http.MethodPut, "/api/scholarships/1", gin.H{"slug": "daad-scholarships"}, admin)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPostViewCounter(t *testing.T) {
	a := newTestApp(t)

	w := request(t, a, http.MethodGet, "/api/posts/1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeObject(t, w)["views"])

	w = request(t, a, http.MethodGet, "/api/posts/slug/how-to-write-winning-scholarship-essay", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decodeObject(t, w)["views"])

	// List reads do not count as views.
	w = request(t, a, http.MethodGet, "/api/posts", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = request(t, a, http.MethodGet, "/api/posts/1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), decodeObject(t, w)["views"])
}

func TestPostExcerptDerivedFromContent(t *testing.T) {
	a := newTestApp(t)
	admin := login(t, a, "admin", "admin123")

	w := request(t, a, http.MethodPost, "/api/posts", gin.H{
		"title":   "Grant Guide",
		"slug":    "grant-guide",
		"content": "# Grants\n\nSome **useful** advice.",
	}, admin)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Grants Some useful advice.", decodeObject(t, w)["excerpt"])
}

func TestPostTagLinks(t *testing.T) {
	a := newTestApp(t)
	admin := login(t, a, "admin", "admin123")

	w := request(t, a, http.MethodPost, "/api/tags", gin.H{"name": "Essays", "slug": "essays"}, admin)
	require.Equal(t, http.StatusCreated, w.Code)
	tagID := int(decodeObject(t, w)["id"].(float64))

	w = request(t, a, http.MethodPost, "/api/posts/1/tags/"+strconv.Itoa(tagID), nil, admin)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Linking the same pair again is idempotent.
	w = request(t, a, http.MethodPost, "/api/posts/1/tags/"+strconv.Itoa(tagID), nil, admin)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = request(t, a, http.MethodGet, "/api/posts/1/tags", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	tags := decodeArray(t, w)
	require.Len(t, tags, 1)
	assert.Equal(t, "essays", tags[0]["slug"])

	w = request(t, a, http.MethodGet, "/api/tags/1/posts", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	posts := decodeArray(t, w)
	require.Len(t, posts, 1)
	assert.Equal(t, float64(1), posts[0]["id"])

	w = request(t, a, http.MethodDelete, "/api/posts/1/tags/1", nil, admin)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = request(t, a, http.MethodGet, "/api/posts/1/tags", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeArray(t, w))

	w = request(t, a, http.MethodPost, "/api/posts/1/tags/999", nil, admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryCRUD(t *testing.T) {
	a := newTestApp(t)
	admin := login(t, a, "admin", "admin123")

	w := request(t, a, http.MethodPost, "/api/categories", gin.H{"name": "Postdoc", "slug": "postdoc"}, admin)
	require.Equal(t, http.StatusCreated, w.Code)
	id := int(decodeObject(t, w)["id"].(float64))

	w = request(t, a, http.MethodPost, "/api/categories", gin.H{"name": "Again", "slug": "postdoc"}, admin)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = request(t, a, http.MethodPut, "/api/categories/"+strconv.Itoa(id), gin.H{"description": "After the PhD"}, admin)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeObject(t, w)
	assert.Equal(t, "postdoc", got["slug"])
	assert.Equal(t, "After the PhD", got["description"])

	w = request(t, a, http.MethodDelete, "/api/categories/"+strconv.Itoa(id), nil, admin)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = request(t, a, http.MethodGet, "/api/categories/"+strconv.Itoa(id), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatsOverview(t *testing.T) {
	a := newTestApp(t)

	// Generate a couple of views first.
	request(t, a, http.MethodGet, "/api/posts/1", nil, "")
	request(t, a, http.MethodGet, "/api/posts/2", nil, "")

	admin := login(t, a, "admin", "admin123")
	w := request(t, a, http.MethodGet, "/api/stats", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeObject(t, w)
	assert.Equal(t, float64(3), got["scholarships"])
	assert.Equal(t, float64(3), got["posts"])
	assert.Equal(t, float64(2), got["successStories"])
	assert.Equal(t, float64(1), got["users"])
	assert.Equal(t, float64(2), got["totalViews"])
}

func TestNoRouteAndNoMethod(t *testing.T) {
	a := newTestApp(t)

	w := request(t, a, http.MethodGet, "/api/does-not-exist", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = request(t, a, http.MethodPatch, "/api/ping", nil, "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
