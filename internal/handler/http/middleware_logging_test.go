package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-tw-config/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// injectLogger puts a zerolog.Logger into the request context the same way
// withTraceID does.
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	return r.WithContext(l.WithContext(r.Context()))
}

func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return injectLogger(req, zerolog.New(buf).With().Timestamp().Logger())
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/api/config/content",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/api/config/content"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:          "POST 204 no body",
			method:        http.MethodPost,
			path:          "/api/config/reload",
			handlerStatus: http.StatusNoContent,
			checkLogContains: []string{
				`"method":"POST"`,
				`"status":204`,
				`"size":0`,
			},
		},
		{
			name:            "GET 503",
			method:          http.MethodGet,
			path:            "/api/config/",
			handlerStatus:   http.StatusServiceUnavailable,
			handlerResponse: "no document loaded",
			checkLogContains: []string{
				`"status":503`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &buf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, want := range tt.checkLogContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_ImplicitStatusIsLoggedAs200(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/", &buf))

	assert.Contains(t, buf.String(), `"status":200`)
}

func TestWithLogging_CountsRequests(t *testing.T) {
	counter := metrics.HTTPRequestsTotal.WithLabelValues(unmatchedRoute, http.MethodDelete, "418")
	before := testutil.ToFloat64(counter)

	h := newTestHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	var buf bytes.Buffer
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodDelete, "/", &buf))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestWithLogging_LabelsByRoutePattern(t *testing.T) {
	const pattern = "/api/config/theme/{category}"
	counter := metrics.HTTPRequestsTotal.WithLabelValues(pattern, http.MethodGet, "200")
	before := testutil.ToFloat64(counter)

	var buf bytes.Buffer
	h := newTestHandler()
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, injectLogger(r, zerolog.New(&buf)))
		})
	})
	router.Use(h.withLogging)
	router.Get(pattern, func(w http.ResponseWriter, r *http.Request) {})

	for _, category := range []string{"colors", "spacing"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/config/theme/"+category, nil))
	}

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Contains(t, buf.String(), `"route":"/api/config/theme/{category}"`)
}
