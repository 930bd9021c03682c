package models

// BookingConfig is the single active booking-provider selection.
// Provider is nil when no provider is configured; Settings holds
// provider-specific keys (embedScript, bookingUrl, phoneNumber).
// POST /api/booking/config replaces the whole record, no merging.
type BookingConfig struct {
	Provider *string        `json:"provider"`
	Settings map[string]any `json:"settings"`
}

// DefaultBookingConfig is what the dispatcher sees when the backing
// file is absent or unreadable.
func DefaultBookingConfig() BookingConfig {
	return BookingConfig{Provider: nil, Settings: map[string]any{}}
}

// StringSetting reads a string-valued settings key, tolerating a
// missing key or a non-string value.
func (c BookingConfig) StringSetting(key string) string {
	if s, ok := c.Settings[key].(string); ok {
		return s
	}
	return ""
}

// BookingRequest describes the appointment a visitor wants. All fields
// are optional free-form strings; it is never persisted.
type BookingRequest struct {
	Service       string `json:"service"`
	Stylist       string `json:"stylist"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
}
