package models

// InspirationPhoto is one entry in the inspiration gallery, either
// mapped from the upstream photo search or synthesized as a fallback.
type InspirationPhoto struct {
	ID     string `json:"id"`
	Src    string `json:"src"`
	Alt    string `json:"alt"`
	Author string `json:"author"`
	Link   string `json:"link"`
}
