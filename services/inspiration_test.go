package services_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hairstyleportal-backend/services"

	"github.com/stretchr/testify/assert"
)

func TestInspiration_NoKeyServesFallbackGallery(t *testing.T) {
	svc := services.NewInspirationService("")

	photos, err := svc.Search(context.Background())
	assert.NoError(t, err)
	assert.Len(t, photos, 12)
	for i, p := range photos {
		assert.Equal(t, fmt.Sprintf("fallback-%d", i+1), p.ID)
		assert.NotEmpty(t, p.Src)
		assert.NotEmpty(t, p.Alt)
	}
}

func TestInspiration_MapsUpstreamPhotos(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "hairstyle", r.URL.Query().Get("query"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"photos": [
				{"id": 101, "url": "https://photos.example/101", "photographer": "Ada",
					"alt": "Curly bob", "src": {"large": "https://img.example/101-lg.jpg", "medium": ""}},
				{"id": 102, "url": "https://photos.example/102", "photographer": "Grace",
					"alt": "", "src": {"large": "", "medium": "https://img.example/102-md.jpg"}},
				{"id": 103, "url": "https://photos.example/103", "photographer": "Linus",
					"alt": "No image", "src": {"large": "", "medium": ""}}
			]
		}`)
	}))
	defer upstream.Close()

	svc := services.NewInspirationService("test-key").WithBaseURL(upstream.URL)

	photos, err := svc.Search(context.Background())
	assert.NoError(t, err)

	// The entry without any image URL is dropped.
	if assert.Len(t, photos, 2) {
		assert.Equal(t, "pexels-101", photos[0].ID)
		assert.Equal(t, "https://img.example/101-lg.jpg", photos[0].Src)
		assert.Equal(t, "Curly bob", photos[0].Alt)
		assert.Equal(t, "Ada", photos[0].Author)
		assert.Equal(t, "https://photos.example/101", photos[0].Link)

		assert.Equal(t, "https://img.example/102-md.jpg", photos[1].Src)
		assert.Equal(t, "Hairstyle inspiration", photos[1].Alt)
	}
}

func TestInspiration_UpstreamErrorFailsClosed(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	svc := services.NewInspirationService("test-key").WithBaseURL(upstream.URL)

	_, err := svc.Search(context.Background())
	assert.Error(t, err)
}
