// controllers/inspiration.go
package controllers

import (
	"net/http"

	"hairstyleportal-backend/services"
	"hairstyleportal-backend/utils"

	"github.com/gin-gonic/gin"
)

type InspirationController struct {
	service *services.InspirationService
}

func NewInspirationController(service *services.InspirationService) *InspirationController {
	return &InspirationController{service: service}
}

// GetInspiration returns the gallery. Upstream trouble of any kind
// surfaces as one unavailable condition, never partial results.
func (ic *InspirationController) GetInspiration(c *gin.Context) {
	photos, err := ic.service.Search(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "inspiration_unavailable")
		return
	}
	c.JSON(http.StatusOK, photos)
}
