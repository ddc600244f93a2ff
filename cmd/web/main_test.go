package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLandingPage(t *testing.T) {
	tests := []struct {
		name string
		data landingData
		want string
	}{
		{"default port", landingData{SSHHost: "play.example.com", SSHPort: "22"}, "ssh -t play.example.com</code>"},
		{"custom port", landingData{SSHHost: "play.example.com", SSHPort: "2222"}, "ssh -t play.example.com -p 2222</code>"},
		{"escaped", landingData{SSHHost: "<b>"}, "ssh -t &lt;b&gt;</code>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newHandler(tt.data).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestUnknownPathIsNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler(landingData{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
