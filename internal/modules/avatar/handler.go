package avatar

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luiisca/cal.com/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/me/avatar", h.Upload)
}

func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Missing avatar file")
		return
	}

	userID := c.GetInt64("user_id")
	a, err := h.service.Upload(c.Request.Context(), userID, fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyFile), errors.Is(err, ErrInvalidMimeType):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
				"Failed to upload avatar")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":  a.ID,
		"url": a.URL,
	})
}
