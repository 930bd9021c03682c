package models

// Style is a catalog entry for a haircut or styling offering shown on
// the marketing site. The id is a short random token assigned on create
// and never changes afterwards.
type Style struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}
