package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"hairstyleportal-backend/controllers"
	"hairstyleportal-backend/models"
	"hairstyleportal-backend/storage"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func styleRouter(t *testing.T) *gin.Engine {
	t.Helper()
	store := storage.New(filepath.Join(t.TempDir(), "styles.json"), []models.Style{})
	sc := controllers.NewStyleController(store)

	r := gin.New()
	r.GET("/api/styles", sc.GetStyles)
	r.POST("/api/styles", sc.CreateStyle)
	r.PUT("/api/styles/:id", sc.UpdateStyle)
	r.DELETE("/api/styles/:id", sc.DeleteStyle)
	return r
}

func reviewRouter(t *testing.T) (*gin.Engine, *controllers.ReviewController) {
	t.Helper()
	store := storage.New(filepath.Join(t.TempDir(), "reviews.json"), []models.Review{})
	rc := controllers.NewReviewController(store)

	r := gin.New()
	r.GET("/api/reviews", rc.GetReviews)
	r.POST("/api/reviews", rc.CreateReview)
	r.GET("/api/reviews/stats", rc.GetReviewStats)
	return r, rc
}

func seededReviewRouter(t *testing.T) (*gin.Engine, *storage.Store[[]models.Review]) {
	t.Helper()
	store := storage.New(filepath.Join(t.TempDir(), "reviews.json"), []models.Review{})
	rc := controllers.NewReviewController(store)

	r := gin.New()
	r.GET("/api/reviews", rc.GetReviews)
	r.GET("/api/reviews/stats", rc.GetReviewStats)
	return r, store
}

func bookingRouter(t *testing.T) *gin.Engine {
	t.Helper()
	store := storage.New(filepath.Join(t.TempDir(), "booking-config.json"), models.DefaultBookingConfig())
	bc := controllers.NewBookingController(store)

	r := gin.New()
	r.GET("/api/booking/config", bc.GetConfig)
	r.POST("/api/booking/config", bc.SetConfig)
	r.POST("/api/booking/initiate", bc.InitiateBooking)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return v
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := decode[map[string]string](t, w)
	return body["error"]
}
