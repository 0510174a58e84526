package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"worldcup-dash/worldcup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter() http.Handler {
	logger := zap.NewNop()
	return newRouter(newDashboard(worldcup.New(), logger), logger)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHomePage_Layout(t *testing.T) {
	rec := get(t, newTestRouter(), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, "<title>FIFA World Cup Dashboard</title>")
	assert.Contains(t, body, ">Winners</button>")
	assert.Contains(t, body, ">Runner-Ups</button>")
	assert.Contains(t, body, `id="choropleth-map-winners-figure"`)
	assert.Contains(t, body, `id="choropleth-map-runners-up-figure"`)
	assert.Contains(t, body, "FIFA World Cup Winners by Country")
	assert.Contains(t, body, "FIFA World Cup Runner-Ups by Country")

	for _, id := range []string{"country-dropdown", "runner-up-dropdown", "year-dropdown"} {
		assert.Contains(t, body, `<select id="`+id+`"`)
	}
	assert.Contains(t, body, `hx-get="/lookup/wins"`)
	assert.Contains(t, body, `hx-target="#runner-up-output"`)
	assert.Contains(t, body, `<option value="Czech Republic">Czech Republic</option>`)
	assert.Contains(t, body, `<option value="1982">1982</option>`)
}

func TestHomePage_OutputsStartEmpty(t *testing.T) {
	body := get(t, newTestRouter(), "/").Body.String()
	for _, id := range []string{"win-output", "runner-up-output", "year-output"} {
		assert.Contains(t, body, `<div id="`+id+`" class="mt-2 text-lg" aria-live="polite"></div>`)
	}
}

func TestHomePage_OptionsComeFromTables(t *testing.T) {
	d := worldcup.New()
	h := newDashboard(d, zap.NewNop())

	require.Len(t, h.bindings, 3)
	for _, b := range h.bindings {
		for _, o := range b.options {
			_, err := b.lookup(o.Value)
			assert.NoError(t, err, "%s option %q", b.control, o.Value)
		}
	}
}

func TestLookupEndpoints(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"wins", "/lookup/wins?country=Brazil", "<p>Brazil has won 5 times.</p>"},
		{"runner-ups", "/lookup/runner-ups?country=Argentina", "<p>Argentina has been runner-up 3 times.</p>"},
		{"year 1990", "/lookup/year?year=1990", "<p>In 1990, Germany won the World Cup, and Argentina was the runner-up.</p>"},
		{"year 2018", "/lookup/year?year=2018", "<p>In 2018, France won the World Cup, and Croatia was the runner-up.</p>"},
		{"spaces in name", "/lookup/runner-ups?country=" + url.QueryEscape("Czech Republic"), "<p>Czech Republic has been runner-up 2 times.</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, router, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, strings.TrimSpace(rec.Body.String()))
		})
	}
}

func TestLookupEndpoints_NoSelection(t *testing.T) {
	router := newTestRouter()
	for _, target := range []string{"/lookup/wins", "/lookup/runner-ups?country=", "/lookup/year?year="} {
		rec := get(t, router, target)
		require.Equal(t, http.StatusOK, rec.Code, target)
		assert.Empty(t, strings.TrimSpace(rec.Body.String()), target)
	}
}

func TestLookupEndpoints_Miss(t *testing.T) {
	router := newTestRouter()

	rec := get(t, router, "/lookup/wins?country=Croatia")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Croatia not found in winners.")
	assert.Contains(t, rec.Body.String(), `class="text-red-700"`)

	rec = get(t, router, "/lookup/year?year=1930")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "1930 not found in results.")
}

func TestLookupEndpoints_EscapesInput(t *testing.T) {
	rec := get(t, newTestRouter(), "/lookup/wins?country="+url.QueryEscape("<script>"))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<script>")
	assert.Contains(t, rec.Body.String(), "&lt;script&gt;")
}

func TestLookupEndpoints_BadYear(t *testing.T) {
	rec := get(t, newTestRouter(), "/lookup/year?year=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/lookup/wins", nil)
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthz(t *testing.T) {
	rec := get(t, newTestRouter(), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	router := newTestRouter()

	rec := get(t, router, "/healthz")
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}
