package eventtype

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luiisca/cal.com/internal/pkg/response"
	"github.com/luiisca/cal.com/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/event-types", h.Create)
	rg.GET("/event-types", h.List)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEventTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Invalid event type", errs)
		return
	}

	userID := c.GetInt64("user_id")
	et, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrSlugExists) {
			response.Error(c, http.StatusConflict, "CONFLICT",
				"An event type with this slug already exists")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to create event type")
		return
	}

	response.Success(c, http.StatusCreated, et)
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	types, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to list event types")
		return
	}

	response.Success(c, http.StatusOK, types)
}
