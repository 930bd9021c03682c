package models

import "time"

// Review is a customer review. Approved is a pointer so records written
// before the moderation flag existed (no "approved" key in the file)
// still count as visible.
type Review struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	Approved  *bool     `json:"approved"`
}

// Visible reports whether the review appears in public listings and
// stats. Only an explicit approved=false hides a review.
func (r Review) Visible() bool {
	return r.Approved == nil || *r.Approved
}

// ReviewStats is the aggregate returned by GET /api/reviews/stats.
type ReviewStats struct {
	AverageRating      float64     `json:"averageRating"`
	TotalReviews       int         `json:"totalReviews"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
}
