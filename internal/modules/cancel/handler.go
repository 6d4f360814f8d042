package cancel

import (
	"encoding/json"
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
	rg.GET("/cancel/:uid", h.GetPageData)
	rg.DELETE("/cancel", h.Cancel)
}

func (h *Handler) GetPageData(c *gin.Context) {
	uid := c.Param("uid")
	allRemaining := parseBoolParam(c.Query("allRemainingBookings"))
	sessionUserID := c.GetInt64("user_id")

	data, err := h.service.PageData(c.Request.Context(), uid, allRemaining, sessionUserID)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to load booking")
		return
	}

	response.Success(c, http.StatusOK, data)
}

func (h *Handler) Cancel(c *gin.Context) {
	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Invalid request body")
		return
	}

	result, err := h.service.Cancel(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND",
				"Booking not found or already cancelled")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to cancel booking")
		return
	}

	response.Success(c, http.StatusOK, result)
}

// parseBoolParam decodes a JSON-encoded boolean query value. Absent or
// unparseable values are false, never an error.
func parseBoolParam(v string) bool {
	if v == "" {
		return false
	}
	var b bool
	if err := json.Unmarshal([]byte(v), &b); err != nil {
		return false
	}
	return b
}
