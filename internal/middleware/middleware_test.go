package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"petclinic/internal/platform/logger"

	"github.com/stretchr/testify/assert"
)

func TestRecover_PanicBecomes500(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Output: &buf})

	h := RequestID(Recover(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/owners/1", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "boom")
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Output: &buf})

	h := AccessLog(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusSeeOther)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/owners/10/pets/new", nil))

	out := buf.String()
	assert.Contains(t, out, "status=303")
	assert.Contains(t, out, "method=POST")
	assert.Contains(t, out, "path=/owners/10/pets/new")
}
