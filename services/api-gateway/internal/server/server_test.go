package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"real-estate-platform/pkg/contextkeys"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/services/api-gateway/internal/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upstreamCall struct {
	path    string
	query   string
	traceID string
}

func newUpstream(t *testing.T, name string, calls *[]upstreamCall) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls = append(*calls, upstreamCall{path: r.URL.Path, query: r.URL.RawQuery, traceID: r.Header.Get(contextkeys.TraceIDHeader)})
		_, _ = w.Write([]byte(name))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRouter_ProxiesToServices(t *testing.T) {
	var calls []upstreamCall
	props := newUpstream(t, "properties", &calls)
	images := newUpstream(t, "images", &calls)
	notifications := newUpstream(t, "notifications", &calls)

	router, err := NewRouter(&configs.Config{
		Version:                "test",
		PropertiesServiceURL:   props.URL,
		ImageServiceURL:        images.URL,
		NotificationServiceURL: notifications.URL,
	}, time.Now(), logging.NewNoop())
	require.NoError(t, err)

	tests := []struct {
		method   string
		path     string
		wantBody string
		wantPath string
	}{
		{method: http.MethodGet, path: "/api/properties?city=Ljubljana&minPrice=1000", wantBody: "properties", wantPath: "/api/properties"},
		{method: http.MethodDelete, path: "/api/properties/abc", wantBody: "properties", wantPath: "/api/properties/abc"},
		{method: http.MethodGet, path: "/api/images/property/abc", wantBody: "images", wantPath: "/api/images/property/abc"},
		{method: http.MethodGet, path: "/api/images/uploads/images-1-1.png", wantBody: "images", wantPath: "/api/images/uploads/images-1-1.png"},
		{method: http.MethodPost, path: "/api/notifications/property", wantBody: "notifications", wantPath: "/api/notifications/property"},
	}

	for _, tt := range tests {
		calls = nil
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

		assert.Equal(t, http.StatusOK, rec.Code, tt.path)
		assert.Equal(t, tt.wantBody, rec.Body.String(), tt.path)
		require.Len(t, calls, 1, tt.path)
		assert.Equal(t, tt.wantPath, calls[0].path)
		assert.NotEmpty(t, calls[0].traceID, "trace id is forwarded")
	}

	calls = nil
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/properties?city=Ljubljana&minPrice=1000", nil))
	require.Len(t, calls, 1)
	assert.Equal(t, "city=Ljubljana&minPrice=1000", calls[0].query)
}

func TestRouter_UpstreamDown(t *testing.T) {
	down := httptest.NewServer(http.NotFoundHandler())
	downURL := down.URL
	down.Close()

	router, err := NewRouter(&configs.Config{
		PropertiesServiceURL:   downURL,
		ImageServiceURL:        downURL,
		NotificationServiceURL: downURL,
	}, time.Now(), logging.NewNoop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/properties", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "BAD_GATEWAY")
}

func TestRouter_ServesFrontend(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o644))

	router, err := NewRouter(&configs.Config{
		PropertiesServiceURL:   "http://localhost:1",
		ImageServiceURL:        "http://localhost:1",
		NotificationServiceURL: "http://localhost:1",
		FrontendDir:            dir,
	}, time.Now(), logging.NewNoop())
	require.NoError(t, err)

	for path, want := range map[string]string{
		"/":              "<html>app</html>",
		"/assets/app.js": "console.log(1)",
		"/listings/new":  "<html>app</html>",
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		body, _ := io.ReadAll(rec.Body)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, want, string(body), path)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
