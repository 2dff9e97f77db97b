package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"hashly/database"
	"hashly/handlers"
	"hashly/middleware"
	"hashly/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// setupServer wires the full router against a fresh in-memory database.
// Handlers reach the database through the package-level handle, so tests in
// this package must not run in parallel.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	require.NoError(t, database.Connect(":memory:"))
	t.Cleanup(func() { _ = database.Disconnect() })
	require.NoError(t, database.Migrate())

	handlers.SetUploadDir(t.TempDir())

	return routes.SetupRouter()
}

func doForm(router *gin.Engine, method, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doGet(router *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	return doForm(router, http.MethodGet, path, nil, cookies...)
}

// newFormRequest builds a POST form request for tests that need to adjust
// headers before serving it.
func newFormRequest(t *testing.T, path string, form url.Values) *http.Request {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(http.MethodPost, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// login posts the login form and returns the session cookie it sets.
func login(t *testing.T, router *gin.Engine, username, password string) *http.Cookie {
	t.Helper()

	w := doForm(router, http.MethodPost, "/login", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(t, http.StatusFound, w.Code)

	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.SessionCookie && ck.Value != "" {
			return ck
		}
	}

	t.Fatalf("no session cookie set for %s", username)
	return nil
}

// flashMessage returns the flash message a response set, decoded.
func flashMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	for _, ck := range w.Result().Cookies() {
		if ck.Name == "flash" && ck.MaxAge > 0 {
			message, err := url.QueryUnescape(ck.Value)
			require.NoError(t, err)
			return message
		}
	}
	return ""
}
