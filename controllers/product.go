// controllers/product.go
package controllers

import (
	"net/http"

	"hairstyleportal-backend/models"
	"hairstyleportal-backend/storage"
	"hairstyleportal-backend/utils"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	store *storage.Store[[]models.Product]
}

func NewProductController(store *storage.Store[[]models.Product]) *ProductController {
	return &ProductController{store: store}
}

// GetProducts returns the product list as maintained out-of-band in the
// products file. This service never writes it.
func (pc *ProductController) GetProducts(c *gin.Context) {
	products, err := pc.store.Load()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "internal_error")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}
