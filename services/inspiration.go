// services/inspiration.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"hairstyleportal-backend/models"
)

const (
	pexelsSearchURL = "https://api.pexels.com/v1/search"
	galleryQuery    = "hairstyle"
	gallerySize     = 12
)

// InspirationService proxies the inspiration gallery to the Pexels
// photo search. Without an API key it serves a deterministic fallback
// gallery so the site never renders an empty section.
type InspirationService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewInspirationService(apiKey string) *InspirationService {
	return &InspirationService{
		apiKey:  apiKey,
		baseURL: pexelsSearchURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// WithBaseURL points the service at a different search endpoint.
func (s *InspirationService) WithBaseURL(u string) *InspirationService {
	s.baseURL = u
	return s
}

type pexelsPhoto struct {
	ID           int    `json:"id"`
	URL          string `json:"url"`
	Photographer string `json:"photographer"`
	Alt          string `json:"alt"`
	Src          struct {
		Large  string `json:"large"`
		Medium string `json:"medium"`
	} `json:"src"`
}

type pexelsResponse struct {
	Photos []pexelsPhoto `json:"photos"`
}

// Search returns the inspiration gallery. Upstream failures are not
// papered over with partial results; the caller reports them as a
// single unavailable condition.
func (s *InspirationService) Search(ctx context.Context) ([]models.InspirationPhoto, error) {
	if s.apiKey == "" {
		return fallbackGallery(), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s?query=%s&per_page=%d", s.baseURL, galleryQuery, gallerySize), nil)
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}
	req.Header.Set("Authorization", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("photo search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("photo search returned status %d", resp.StatusCode)
	}

	var payload pexelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	photos := make([]models.InspirationPhoto, 0, len(payload.Photos))
	for _, p := range payload.Photos {
		src := p.Src.Large
		if src == "" {
			src = p.Src.Medium
		}
		if src == "" {
			continue
		}
		alt := p.Alt
		if alt == "" {
			alt = "Hairstyle inspiration"
		}
		photos = append(photos, models.InspirationPhoto{
			ID:     fmt.Sprintf("pexels-%d", p.ID),
			Src:    src,
			Alt:    alt,
			Author: p.Photographer,
			Link:   p.URL,
		})
	}
	return photos, nil
}

func fallbackGallery() []models.InspirationPhoto {
	photos := make([]models.InspirationPhoto, 0, gallerySize)
	for i := 1; i <= gallerySize; i++ {
		photos = append(photos, models.InspirationPhoto{
			ID:  fmt.Sprintf("fallback-%d", i),
			Src: fmt.Sprintf("https://picsum.photos/seed/hairstyle-%d/600/800", i),
			Alt: "Hairstyle inspiration",
		})
	}
	return photos
}
