package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BossEnterprises/chataru_api/internal/models"
	"github.com/BossEnterprises/chataru_api/internal/utils"
)

// ProductManagementHandler handles admin product CRUD with image upload.
type ProductManagementHandler struct {
	products ProductStore
	images   ImageStore
}

// NewProductManagementHandler creates a new ProductManagementHandler.
func NewProductManagementHandler(products ProductStore, images ImageStore) *ProductManagementHandler {
	return &ProductManagementHandler{products: products, images: images}
}

// Create handles POST /api/admin/products. Multipart form: name, price,
// optional description, required image file.
func (h *ProductManagementHandler) Create(c *gin.Context) {
	name, price, description, ok := h.parseProductForm(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		utils.Error(c, 400, "VALIDATION_ERROR", "image file is required")
		return
	}
	defer file.Close()

	imagePath, err := h.images.Save(file, header.Filename)
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("image upload failed")
		utils.Error(c, 500, "UPLOAD_ERROR", "Failed to store image")
		return
	}

	product := &models.Product{
		Name:        name,
		Price:       price,
		Description: description,
		Image:       imagePath,
	}
	if err := h.products.Insert(c.Request.Context(), product); err != nil {
		log.Error().Err(err).Msg("product insert failed")
		utils.Error(c, 500, "DATABASE_ERROR", "Failed to store product")
		return
	}

	c.JSON(200, gin.H{"success": true})
}

// Update handles PUT /api/admin/products/:id. The image file is optional;
// the prior image path is retained when no new file is supplied. The old
// file stays on disk when replaced.
func (h *ProductManagementHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "VALIDATION_ERROR", "invalid product id")
		return
	}

	name, price, description, ok := h.parseProductForm(c)
	if !ok {
		return
	}

	var imagePath *string
	if file, header, ferr := c.Request.FormFile("image"); ferr == nil {
		defer file.Close()
		path, serr := h.images.Save(file, header.Filename)
		if serr != nil {
			log.Error().Err(serr).Str("filename", header.Filename).Msg("image upload failed")
			utils.Error(c, 500, "UPLOAD_ERROR", "Failed to store image")
			return
		}
		imagePath = &path
	} else if !isMissingFile(ferr) {
		utils.Error(c, 400, "VALIDATION_ERROR", "invalid image upload")
		return
	}

	if err := h.products.Update(c.Request.Context(), id, name, price, description, imagePath); err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "NOT_FOUND", "Product not found")
			return
		}
		log.Error().Err(err).Int("id", id).Msg("product update failed")
		utils.Error(c, 500, "DATABASE_ERROR", "Failed to update product")
		return
	}

	c.JSON(200, gin.H{"success": true})
}

// Delete handles DELETE /api/admin/products/:id.
func (h *ProductManagementHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "VALIDATION_ERROR", "invalid product id")
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "NOT_FOUND", "Product not found")
			return
		}
		log.Error().Err(err).Int("id", id).Msg("product delete failed")
		utils.Error(c, 500, "DATABASE_ERROR", "Failed to delete product")
		return
	}

	c.JSON(200, gin.H{"success": true})
}

// parseProductForm reads and validates the shared name/price/description
// form fields. It writes the 400 response itself when validation fails.
func (h *ProductManagementHandler) parseProductForm(c *gin.Context) (name string, price int, description string, ok bool) {
	name = strings.TrimSpace(c.PostForm("name"))
	description = c.PostForm("description")

	price, err := strconv.Atoi(strings.TrimSpace(c.PostForm("price")))
	if name == "" || err != nil {
		utils.Error(c, 400, "VALIDATION_ERROR", "name and an integer price are required")
		return "", 0, "", false
	}
	return name, price, description, true
}

// isMissingFile reports whether a FormFile error means "no new image was
// uploaded" rather than a malformed request.
func isMissingFile(err error) bool {
	return errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart)
}
