package handler

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BossEnterprises/chataru_api/internal/models"
	"github.com/BossEnterprises/chataru_api/internal/utils"
)

// ProductStore is the persistence surface the product endpoints need.
type ProductStore interface {
	Insert(ctx context.Context, p *models.Product) error
	List(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, id int, name string, price int, description string, imagePath *string) error
	Delete(ctx context.Context, id int) error
}

// ImageStore writes an uploaded image and returns its public path.
type ImageStore interface {
	Save(file io.Reader, originalName string) (string, error)
}

// ProductHandler handles the public product listing.
type ProductHandler struct {
	products ProductStore
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(products ProductStore) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles GET /api/products, newest first. No guard: the catalog is
// public.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("product list failed")
		utils.Error(c, 500, "DATABASE_ERROR", "Failed to list products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(200, products)
}
