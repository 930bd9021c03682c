package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hairstyleportal-backend/controllers"
	"hairstyleportal-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestInspiration_UpstreamFailureIs502(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	ic := controllers.NewInspirationController(
		services.NewInspirationService("test-key").WithBaseURL(upstream.URL))

	r := gin.New()
	r.GET("/api/inspiration", ic.GetInspiration)

	w := doJSON(r, http.MethodGet, "/api/inspiration", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "inspiration_unavailable", errorMessage(t, w))
}
