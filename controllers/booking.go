// controllers/booking.go
package controllers

import (
	"net/http"

	"hairstyleportal-backend/models"
	"hairstyleportal-backend/services"
	"hairstyleportal-backend/storage"
	"hairstyleportal-backend/utils"

	"github.com/gin-gonic/gin"
)

// SetBookingConfigInput defines the expected JSON structure for
// replacing the booking configuration. Provider may be null.
type SetBookingConfigInput struct {
	Provider *string        `json:"provider"`
	Settings map[string]any `json:"settings"`
}

type BookingController struct {
	store *storage.Store[models.BookingConfig]
}

func NewBookingController(store *storage.Store[models.BookingConfig]) *BookingController {
	return &BookingController{store: store}
}

// GetConfig returns the current provider selection
func (bc *BookingController) GetConfig(c *gin.Context) {
	cfg, err := bc.store.Load()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "internal_error")
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// SetConfig replaces the whole configuration. Settings from the prior
// config are not merged in.
func (bc *BookingController) SetConfig(c *gin.Context) {
	var input SetBookingConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !services.ValidProvider(input.Provider) {
		utils.RespondWithError(c, http.StatusBadRequest,
			"Invalid provider. Must be one of: salonized, treatwell, whatsapp, or null")
		return
	}

	cfg := models.BookingConfig{Provider: input.Provider, Settings: input.Settings}
	if cfg.Settings == nil {
		cfg.Settings = map[string]any{}
	}

	if err := bc.store.Save(cfg); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "internal_error")
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// InitiateBooking dispatches on the configured provider and returns the
// action the frontend should take. It always answers 200: a broken or
// missing configuration degrades to the fallback action instead of
// blocking the visitor.
func (bc *BookingController) InitiateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// The request body is optional.
		req = models.BookingRequest{}
	}

	cfg, err := bc.store.Load()
	if err != nil {
		cfg = models.DefaultBookingConfig()
	}

	c.JSON(http.StatusOK, services.DispatchBooking(cfg, req))
}
