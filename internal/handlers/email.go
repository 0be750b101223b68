package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"peoplebook/internal/models"
	"peoplebook/internal/services"
)

type EmailHandler struct {
	emailService *services.EmailService
}

func NewEmailHandler(emailService *services.EmailService) *EmailHandler {
	return &EmailHandler{emailService: emailService}
}

// Add handles POST /people/:id/emails
func (h *EmailHandler) Add(c *gin.Context) {
	personID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var request models.EmailCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBindingError(c, err)
		return
	}

	email, err := h.emailService.Add(personID, request.Address)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewEmailResponse(email))
}

// ListByPerson handles GET /people/:id/emails
func (h *EmailHandler) ListByPerson(c *gin.Context) {
	personID, ok := idParam(c, "id")
	if !ok {
		return
	}

	emails, err := h.emailService.ListByPerson(personID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.EmailResponse, 0, len(emails))
	for _, email := range emails {
		responses = append(responses, models.NewEmailResponse(email))
	}
	c.JSON(http.StatusOK, responses)
}

// GetByID handles GET /emails/:id
func (h *EmailHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	email, err := h.emailService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewEmailResponse(email))
}

// Update handles PUT /emails/:id
func (h *EmailHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var request models.EmailCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBindingError(c, err)
		return
	}

	email, err := h.emailService.Update(id, request.Address)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewEmailResponse(email))
}

// Remove handles DELETE /emails/:id
func (h *EmailHandler) Remove(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.emailService.Remove(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
