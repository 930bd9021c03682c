// controllers/review.go
package controllers

import (
	"math"
	"net/http"
	"strings"
	"time"

	"hairstyleportal-backend/models"
	"hairstyleportal-backend/storage"
	"hairstyleportal-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Scripted bots submit the form the instant it loads; humans don't.
const minFormFillTime = 3000 * time.Millisecond

// CreateReviewInput defines the expected JSON structure for submitting a
// review. Honeypot and Timestamp are the anti-spam fields the form adds.
type CreateReviewInput struct {
	Name      string   `json:"name"`
	Rating    *float64 `json:"rating"`
	Text      string   `json:"text"`
	Honeypot  string   `json:"honeypot"`
	Timestamp int64    `json:"timestamp"` // ms epoch of form load
}

type ReviewController struct {
	store *storage.Store[[]models.Review]
	now   func() time.Time
}

func NewReviewController(store *storage.Store[[]models.Review]) *ReviewController {
	return &ReviewController{store: store, now: time.Now}
}

// WithClock overrides the controller's clock, for tests.
func (rc *ReviewController) WithClock(now func() time.Time) *ReviewController {
	rc.now = now
	return rc
}

// CreateReview validates, runs the anti-spam checks and appends the
// review. Reviews auto-publish; moderation is an external concern.
func (rc *ReviewController) CreateReview(c *gin.Context) {
	var input CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "name is required")
		return
	}
	if input.Rating == nil || *input.Rating < 1 || *input.Rating > 5 {
		utils.RespondWithError(c, http.StatusBadRequest, "rating must be a number between 1 and 5")
		return
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "text is required")
		return
	}

	// A filled honeypot field means a bot submitted the form.
	if strings.TrimSpace(input.Honeypot) != "" {
		utils.RespondWithError(c, http.StatusBadRequest, "invalid submission")
		return
	}
	if input.Timestamp > 0 {
		elapsed := rc.now().UnixMilli() - input.Timestamp
		if elapsed < minFormFillTime.Milliseconds() {
			utils.RespondWithError(c, http.StatusBadRequest, "submission too quick")
			return
		}
	}

	reviews, err := rc.store.Load()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "internal_error")
		return
	}

	approved := true
	review := models.Review{
		ID:        uuid.New().String(),
		Name:      name,
		Rating:    int(math.Round(*input.Rating)),
		Text:      text,
		CreatedAt: rc.now().UTC(),
		Approved:  &approved,
	}
	reviews = append(reviews, review)

	if err := rc.store.Save(reviews); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "internal_error")
		return
	}

	c.JSON(http.StatusCreated, review)
}

// GetReviews lists the approved reviews
func (rc *ReviewController) GetReviews(c *gin.Context) {
	reviews, err := rc.visibleReviews()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "internal_error")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetReviewStats aggregates the approved reviews into an average, a
// total and a 1-5 star histogram. Zero reviews yields zeros, not a
// division error.
func (rc *ReviewController) GetReviewStats(c *gin.Context) {
	reviews, err := rc.visibleReviews()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "internal_error")
		return
	}

	// Ratings outside 1-5 can only come from a hand-edited file; they
	// stay out of the histogram and the average alike.
	distribution := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	sum, rated := 0, 0
	for _, r := range reviews {
		if r.Rating >= 1 && r.Rating <= 5 {
			distribution[r.Rating]++
			sum += r.Rating
			rated++
		}
	}

	average := 0.0
	if rated > 0 {
		average = math.Round(float64(sum)/float64(rated)*10) / 10
	}

	c.JSON(http.StatusOK, models.ReviewStats{
		AverageRating:      average,
		TotalReviews:       len(reviews),
		RatingDistribution: distribution,
	})
}

func (rc *ReviewController) visibleReviews() ([]models.Review, error) {
	reviews, err := rc.store.Load()
	if err != nil {
		return nil, err
	}
	visible := make([]models.Review, 0, len(reviews))
	for _, r := range reviews {
		if r.Visible() {
			visible = append(visible, r)
		}
	}
	return visible, nil
}
