package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
)

const testSecret = "segredo-de-teste"

func signToken(t *testing.T, secret string, claims domain.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims() domain.Claims {
	return domain.Claims{
		UserID:    "u1",
		CompanyID: "empresa-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestAuthMiddleware(t *testing.T) {
	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	withoutCompany := validClaims()
	withoutCompany.CompanyID = ""

	tests := []struct {
		name       string
		path       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{name: "rota pública", path: "/healthcheck", wantStatus: http.StatusOK},
		{name: "rascunho é público", path: "/v1/drafts/google", wantStatus: http.StatusOK},
		{name: "sem header", path: "/v1/campaigns", wantStatus: http.StatusUnauthorized, wantCode: apiErrors.ErrInvalidToken},
		{name: "sem bearer", path: "/v1/campaigns", header: "Token abc", wantStatus: http.StatusUnauthorized, wantCode: apiErrors.ErrInvalidToken},
		{name: "assinatura errada", path: "/v1/campaigns", header: "Bearer " + signToken(t, "outro", validClaims()), wantStatus: http.StatusUnauthorized, wantCode: apiErrors.ErrInvalidToken},
		{name: "expirado", path: "/v1/campaigns", header: "Bearer " + signToken(t, testSecret, expired), wantStatus: http.StatusUnauthorized, wantCode: apiErrors.ErrExpiredToken},
		{name: "sem empresa", path: "/v1/campaigns", header: "Bearer " + signToken(t, testSecret, withoutCompany), wantStatus: http.StatusForbidden, wantCode: apiErrors.ErrInsufficientPrivilege},
		{name: "válido", path: "/v1/campaigns", header: "Bearer " + signToken(t, testSecret, validClaims()), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.header != "" {
					claims, ok := ClaimsFromContext(r.Context())
					require.True(t, ok)
					assert.Equal(t, "empresa-1", claims.CompanyID)
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(testSecret)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), tt.wantCode)
			}
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	preflight := httptest.NewRequest(http.MethodOptions, "/v1/campaigns", nil)
	preflight.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, preflight)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	other := httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil)
	other.Header.Set("Origin", "https://desconhecido.example")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingMiddleware_SetsCorrelationID(t *testing.T) {
	log.SetupTestLogger()

	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/campaigns", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get("X-Correlation-ID"))
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falhou")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}

func TestMetricsMiddleware(t *testing.T) {
	require.NoError(t, RegisterMetrics(prometheus.NewRegistry()))

	handler := MetricsMiddleware("/v1/campaigns/:id")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/v1/campaigns/:id", http.MethodGet, "404"))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/campaigns/xyz", nil))
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/v1/campaigns/:id", http.MethodGet, "404"))

	assert.Equal(t, before+1, after)
}

func TestCountRecompute(t *testing.T) {
	require.NoError(t, RegisterMetrics(prometheus.NewRegistry()))

	before := testutil.ToFloat64(recomputeTotal.WithLabelValues("preview"))
	CountRecompute("preview")
	CountRecompute("preview")

	assert.Equal(t, before+2, testutil.ToFloat64(recomputeTotal.WithLabelValues("preview")))
}
