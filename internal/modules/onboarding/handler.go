package onboarding

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
	rg.POST("/onboarding", h.Submit)
	rg.PATCH("/me", h.UpdateProfile)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Biography is required", errs)
		return
	}

	userID := c.GetInt64("user_id")
	result, err := h.service.Submit(c.Request.Context(), userID, req.Bio)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to save profile")
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	userID := c.GetInt64("user_id")
	result, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyUpdate):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"At least one field must be provided")
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
				"Failed to save profile")
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}
