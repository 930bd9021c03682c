// controllers/style.go
package controllers

import (
	"net/http"

	"hairstyleportal-backend/models"
	"hairstyleportal-backend/storage"
	"hairstyleportal-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateStyleInput defines the expected JSON structure for creating a style
type CreateStyleInput struct {
	Name        string `json:"name" binding:"required,max=80"`
	Description string `json:"description" binding:"max=500"`
	ImageURL    string `json:"imageUrl" binding:"omitempty,url,max=300"`
}

// UpdateStyleInput defines the expected JSON structure for updating a style
type UpdateStyleInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

type StyleController struct {
	store *storage.Store[[]models.Style]
}

func NewStyleController(store *storage.Store[[]models.Style]) *StyleController {
	return &StyleController{store: store}
}

// GetStyles returns the whole catalog in stored order
func (sc *StyleController) GetStyles(c *gin.Context) {
	styles, err := sc.store.Load()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "internal_error")
		return
	}
	if styles == nil {
		styles = []models.Style{}
	}
	c.JSON(http.StatusOK, styles)
}

// CreateStyle appends a new style with a fresh id
func (sc *StyleController) CreateStyle(c *gin.Context) {
	var input CreateStyleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	styles, err := sc.store.Load()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "internal_error")
		return
	}

	style := models.Style{
		ID:          utils.NewID(),
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}
	styles = append(styles, style)

	if err := sc.store.Save(styles); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "internal_error")
		return
	}

	c.JSON(http.StatusCreated, style)
}

// UpdateStyle merges the provided fields over an existing style. The id
// never changes.
func (sc *StyleController) UpdateStyle(c *gin.Context) {
	id := c.Param("id")

	var input UpdateStyleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if input.Name == nil && input.Description == nil && input.ImageURL == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "at least one field required")
		return
	}
	if input.Name != nil && !utils.ValidStyleName(*input.Name) {
		utils.RespondWithError(c, http.StatusBadRequest, "invalid name")
		return
	}
	if input.Description != nil && !utils.ValidStyleDescription(*input.Description) {
		utils.RespondWithError(c, http.StatusBadRequest, "invalid description")
		return
	}
	if input.ImageURL != nil && !utils.ValidImageURL(*input.ImageURL) {
		utils.RespondWithError(c, http.StatusBadRequest, "invalid imageUrl")
		return
	}

	styles, err := sc.store.Load()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "internal_error")
		return
	}

	idx := -1
	for i, s := range styles {
		if s.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		utils.RespondWithError(c, http.StatusNotFound, "Style not found")
		return
	}

	// Update fields if provided
	if input.Name != nil {
		styles[idx].Name = *input.Name
	}
	if input.Description != nil {
		styles[idx].Description = *input.Description
	}
	if input.ImageURL != nil {
		styles[idx].ImageURL = *input.ImageURL
	}

	if err := sc.store.Save(styles); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "internal_error")
		return
	}

	c.JSON(http.StatusOK, styles[idx])
}

// DeleteStyle removes a style and persists the remainder
func (sc *StyleController) DeleteStyle(c *gin.Context) {
	id := c.Param("id")

	styles, err := sc.store.Load()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "internal_error")
		return
	}

	remaining := make([]models.Style, 0, len(styles))
	for _, s := range styles {
		if s.ID != id {
			remaining = append(remaining, s)
		}
	}
	if len(remaining) == len(styles) {
		utils.RespondWithError(c, http.StatusNotFound, "Style not found")
		return
	}

	if err := sc.store.Save(remaining); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "internal_error")
		return
	}

	c.Status(http.StatusNoContent)
}
