package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BossEnterprises/chataru_api/internal/models"
	"github.com/BossEnterprises/chataru_api/internal/utils"
)

// EnquiryStore is the persistence surface the enquiry endpoints need.
type EnquiryStore interface {
	Insert(ctx context.Context, e *models.Enquiry) error
	List(ctx context.Context) ([]models.Enquiry, error)
}

// EnquiryHandler handles the public contact form and the admin listing.
type EnquiryHandler struct {
	enquiries EnquiryStore
}

// NewEnquiryHandler creates a new EnquiryHandler.
func NewEnquiryHandler(enquiries EnquiryStore) *EnquiryHandler {
	return &EnquiryHandler{enquiries: enquiries}
}

// Create handles POST /api/enquiry. Phone and sourcePage are optional and
// stored as empty strings when omitted.
func (h *EnquiryHandler) Create(c *gin.Context) {
	var req struct {
		Name       string `json:"name" binding:"required"`
		Email      string `json:"email" binding:"required"`
		Phone      string `json:"phone"`
		Message    string `json:"message" binding:"required"`
		SourcePage string `json:"sourcePage"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "VALIDATION_ERROR", "name, email and message are required")
		return
	}

	enquiry := &models.Enquiry{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		SourcePage: req.SourcePage,
	}
	if err := h.enquiries.Insert(c.Request.Context(), enquiry); err != nil {
		log.Error().Err(err).Msg("enquiry insert failed")
		utils.Error(c, 500, "DATABASE_ERROR", "Failed to store enquiry")
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Enquiry received"})
}

// List handles GET /api/admin/enquiries, newest first.
func (h *EnquiryHandler) List(c *gin.Context) {
	enquiries, err := h.enquiries.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("enquiry list failed")
		utils.Error(c, 500, "DATABASE_ERROR", "Failed to list enquiries")
		return
	}
	if enquiries == nil {
		enquiries = []models.Enquiry{}
	}
	c.JSON(200, enquiries)
}
