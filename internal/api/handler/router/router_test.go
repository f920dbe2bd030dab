package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRouter_AppliesMiddlewaresAndInstrumentation(t *testing.T) {
	var order []string
	var instrumented []string

	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(
		WithRoutes(Route{
			Path:   "/v1/campaigns/:id",
			Method: http.MethodGet,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, "handler:"+httprouter.ParamsFromContext(r.Context()).ByName("id"))
			}),
			Middlewares: []func(http.Handler) http.Handler{mark("primeiro"), mark("segundo")},
		}),
		WithInstrumentation(func(pattern string) func(http.Handler) http.Handler {
			instrumented = append(instrumented, pattern)
			return mark("instrumentacao")
		}),
	)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/campaigns/abc", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"instrumentacao", "primeiro", "segundo", "handler:abc"}, order)
	assert.Equal(t, []string{"/v1/campaigns/:id"}, instrumented)
}

func TestRouter_NotFound(t *testing.T) {
	rt := New()

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nada", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
