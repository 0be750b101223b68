package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"peoplebook/internal/models"
	"peoplebook/internal/services"
)

type PersonHandler struct {
	personService *services.PersonService
}

func NewPersonHandler(personService *services.PersonService) *PersonHandler {
	return &PersonHandler{personService: personService}
}

// Create handles POST /people
func (h *PersonHandler) Create(c *gin.Context) {
	var request models.PersonCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBindingError(c, err)
		return
	}

	person, err := h.personService.Create(request.Name, request.BirthDate, models.Addresses(request.Emails))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewPersonResponse(person))
}

// GetByID handles GET /people/:id
func (h *PersonHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	person, err := h.personService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewPersonResponse(person))
}

// List handles GET /people
func (h *PersonHandler) List(c *gin.Context) {
	people, err := h.personService.List()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, personResponses(people))
}

// Search handles GET /people/search?name=
func (h *PersonHandler) Search(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		problem(c, http.StatusUnprocessableEntity, "Validation Error", "request failed validation", map[string]string{
			"name": "name is required",
		})
		return
	}

	people, err := h.personService.SearchByName(name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, personResponses(people))
}

// Update handles PUT /people/:id
func (h *PersonHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var request models.PersonUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBindingError(c, err)
		return
	}

	person, err := h.personService.Update(id, request.Name, request.BirthDate, models.Addresses(request.Emails))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.NewPersonResponse(person))
}

// Delete handles DELETE /people/:id
func (h *PersonHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.personService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func personResponses(people []*models.Person) []models.PersonResponse {
	responses := make([]models.PersonResponse, 0, len(people))
	for _, person := range people {
		responses = append(responses, models.NewPersonResponse(person))
	}
	return responses
}
