package pages

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"speaksmart/web"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"index.html":        {Data: []byte("<h1>home</h1>")},
		"accesso.html":      {Data: []byte("<h1>accesso</h1>")},
		"app.js":            {Data: []byte("console.log(1)")},
		"img/logo.svg":      {Data: []byte("<svg/>")},
		"img/nested/x.html": {Data: []byte("nested")},
	}
}

func newServer(static fstest.MapFS) *echo.Echo {
	e := echo.New()
	e.GET("/accesso", PageHandler(static, "accesso.html"))
	e.GET("/*", FallbackHandler(static))
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestPageHandler(t *testing.T) {
	rec := get(newServer(testFS()), "/accesso")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "<h1>accesso</h1>", rec.Body.String())
	require.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
}

func TestFallbackHandler(t *testing.T) {
	e := newServer(testFS())

	cases := map[string]string{
		"/":                   "<h1>home</h1>",
		"/app.js":             "console.log(1)",
		"/img/logo.svg":       "<svg/>",
		"/img/nested/x.html":  "nested",
		"/img":                "<h1>home</h1>",
		"/non-esiste":         "<h1>home</h1>",
		"/qualsiasi/percorso": "<h1>home</h1>",
		"/../../etc/passwd":   "<h1>home</h1>",
	}
	for target, want := range cases {
		rec := get(e, target)
		require.Equal(t, http.StatusOK, rec.Code, target)
		require.Equal(t, want, rec.Body.String(), target)
	}

	rec := get(e, "/app.js")
	require.Contains(t, rec.Header().Get(echo.HeaderContentType), "javascript")
}

func TestEmbeddedPages(t *testing.T) {
	e := echo.New()
	for route, file := range map[string]string{
		"/accesso":         "accesso.html",
		"/area-studenti":   "area-studenti.html",
		"/area-professori": "area-professori.html",
	} {
		e.GET(route, PageHandler(web.Static, file))
	}
	e.GET("/*", FallbackHandler(web.Static))

	for _, target := range []string{"/accesso", "/area-studenti", "/area-professori", "/", "/ignota"} {
		rec := get(e, target)
		require.Equal(t, http.StatusOK, rec.Code, target)
		require.Contains(t, rec.Body.String(), "SpeakSmart", target)
	}
	rec := get(e, "/common.js")
	require.Contains(t, rec.Body.String(), "escapeHTML")
}
