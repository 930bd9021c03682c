// services/booking.go
package services

import (
	"net/url"
	"strings"

	"hairstyleportal-backend/models"
)

// Known booking providers. A nil provider means bookings fall back to
// the static contact section.
const (
	ProviderSalonized = "salonized"
	ProviderTreatwell = "treatwell"
	ProviderWhatsApp  = "whatsapp"
)

const defaultTreatwellURL = "https://www.treatwell.com"

// ValidProvider reports whether p is an accepted provider selection.
// nil (no provider) is accepted.
func ValidProvider(p *string) bool {
	if p == nil {
		return true
	}
	switch *p {
	case ProviderSalonized, ProviderTreatwell, ProviderWhatsApp:
		return true
	}
	return false
}

// BookingParams echoes the visitor's request back to the frontend so
// the provider widget can pre-fill the appointment form. Unset fields
// are omitted from the payload.
type BookingParams struct {
	Service       string `json:"service,omitempty"`
	Stylist       string `json:"stylist,omitempty"`
	PreferredDate string `json:"preferredDate,omitempty"`
	PreferredTime string `json:"preferredTime,omitempty"`
}

// FallbackAction tells the frontend to point the visitor at the contact
// section. Used when no provider is configured.
type FallbackAction struct {
	Action      string `json:"action"`
	Message     string `json:"message"`
	FallbackURL string `json:"fallbackUrl"`
}

// EmbedAction tells the frontend to mount the Salonized widget.
type EmbedAction struct {
	Action      string        `json:"action"`
	Provider    string        `json:"provider"`
	EmbedScript string        `json:"embedScript"`
	Params      BookingParams `json:"params"`
}

// LinkAction tells the frontend to open the provider's booking page.
type LinkAction struct {
	Action   string        `json:"action"`
	Provider string        `json:"provider"`
	URL      string        `json:"url"`
	Params   BookingParams `json:"params"`
}

// WhatsAppAction carries a prefilled wa.me deep link plus the plain
// message for display.
type WhatsAppAction struct {
	Action   string `json:"action"`
	Provider string `json:"provider"`
	URL      string `json:"url"`
	Message  string `json:"message"`
}

// DispatchBooking maps the current config and the visitor's request to
// a provider action. It is a pure function: no I/O, and it never fails.
// An unconfigured or unrecognized provider degrades to the fallback
// action so the site always keeps a working contact path.
func DispatchBooking(cfg models.BookingConfig, req models.BookingRequest) any {
	params := BookingParams{
		Service:       req.Service,
		Stylist:       req.Stylist,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
	}

	if cfg.Provider == nil {
		return FallbackAction{
			Action:      "fallback",
			Message:     "No booking provider configured. Please contact us directly.",
			FallbackURL: "#contact",
		}
	}

	switch *cfg.Provider {
	case ProviderSalonized:
		return EmbedAction{
			Action:      "embed",
			Provider:    ProviderSalonized,
			EmbedScript: cfg.StringSetting("embedScript"),
			Params:      params,
		}

	case ProviderTreatwell:
		bookingURL := cfg.StringSetting("bookingUrl")
		if bookingURL == "" {
			bookingURL = defaultTreatwellURL
		}
		return LinkAction{
			Action:   "link",
			Provider: ProviderTreatwell,
			URL:      bookingURL,
			Params:   params,
		}

	case ProviderWhatsApp:
		message := whatsAppMessage(req)
		phone := digitsOnly(cfg.StringSetting("phoneNumber"))
		return WhatsAppAction{
			Action:   "whatsapp",
			Provider: ProviderWhatsApp,
			URL:      "https://wa.me/" + phone + "?text=" + url.QueryEscape(message),
			Message:  message,
		}

	default:
		// Unreachable when the config went through SetConfig validation,
		// kept so a hand-edited config file cannot break the endpoint.
		return FallbackAction{
			Action:      "fallback",
			Message:     "Booking provider not properly configured.",
			FallbackURL: "#contact",
		}
	}
}

// whatsAppMessage builds the prefilled chat message, appending only the
// request fields the visitor supplied, in a fixed order.
func whatsAppMessage(req models.BookingRequest) string {
	var b strings.Builder
	b.WriteString("Hi! I would like to book an appointment.")

	if req.Service != "" {
		b.WriteString("\n\nService: " + req.Service)
	}
	if req.Stylist != "" {
		b.WriteString("\nStylist: " + req.Stylist)
	}
	if req.PreferredDate != "" {
		b.WriteString("\nPreferred Date: " + req.PreferredDate)
	}
	if req.PreferredTime != "" {
		b.WriteString("\nPreferred Time: " + req.PreferredTime)
	}

	b.WriteString("\n\nPlease let me know if this works for you or suggest alternative times. Thank you!")
	return b.String()
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
