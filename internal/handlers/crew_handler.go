package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dino24-Max/English-Assessment-sub000/internal/models"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/services"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/utils"
)

// CrewHandler exposes crew roster operations over HTTP.
type CrewHandler struct {
	BaseHandler
	crewService services.CrewService
}

// NewCrewHandler creates a new crew handler
func NewCrewHandler(crewService services.CrewService, logger utils.Logger) *CrewHandler {
	return &CrewHandler{
		BaseHandler: NewBaseHandler(logger),
		crewService: crewService,
	}
}

// RegisterCrewMember handles POST /api/v1/crew
// @Summary Register a crew member for assessment
func (h *CrewHandler) RegisterCrewMember(c *gin.Context) {
	var req services.RegisterCrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.LogRequest(c, "Registering crew member", "email", req.Email)

	member, err := h.crewService.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Message: "Crew member registered successfully",
		Data:    member,
	})
}

// GetCrewMember handles GET /api/v1/crew/:id
// @Summary Get a crew member by ID
func (h *CrewHandler) GetCrewMember(c *gin.Context) {
	id := parseUintParam(c, "id")
	if id == 0 {
		return
	}

	member, err := h.crewService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Crew member retrieved successfully",
		Data:    member,
	})
}

// ListCrewMembers handles GET /api/v1/crew
// @Summary List crew members with optional division filter and pagination
func (h *CrewHandler) ListCrewMembers(c *gin.Context) {
	var division *models.DivisionType
	if raw := c.Query("division"); raw != "" {
		d := models.DivisionType(raw)
		division = &d
	}

	page := parseIntQuery(c, "page", 1)
	size := parseIntQuery(c, "size", 20)
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}

	members, total, err := h.crewService.List(c.Request.Context(), division, size, (page-1)*size)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "Crew members retrieved successfully",
		Data: gin.H{
			"crew_members": members,
			"total":        total,
			"page":         page,
			"size":         size,
		},
	})
}
