package models

// Product is a retail item listed on the site. The products file is
// maintained out-of-band; this service only reads it.
type Product struct {
	Brand string  `json:"brand"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
	URL   string  `json:"url,omitempty"`
}
