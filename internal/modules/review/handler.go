package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"azurea/internal/domain"
	"azurea/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(guest, staff *gin.RouterGroup) {
	guest.POST("/reviews", h.CreateReview)
	guest.GET("/reviews", h.ListMyReviews)
	guest.GET("/bookings/:id/review", h.GetBookingReview)

	staff.GET("/reviews", h.ListAllReviews)
}

func (h *Handler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rv, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 1 and 5")
		case errors.Is(err, ErrReviewNotAllowed):
			response.Error(c, http.StatusForbidden, "REVIEW_NOT_ALLOWED", "Only a completed stay can be reviewed")
		case errors.Is(err, ErrConflict):
			response.Error(c, http.StatusConflict, "REVIEW_EXISTS", "This booking already has a review")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		}
		return
	}
	response.Success(c, http.StatusCreated, rv)
}

func (h *Handler) GetBookingReview(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking id")
		return
	}

	rv, err := h.service.GetForBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "No review for this booking")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		return
	}
	response.Success(c, http.StatusOK, rv)
}

// RoomReviews and AreaReviews serve the public catalog pages and are
// registered outside the authenticated groups.
func (h *Handler) RoomReviews(c *gin.Context) {
	h.listByResource(c, domain.ResourceRoom)
}

func (h *Handler) AreaReviews(c *gin.Context) {
	h.listByResource(c, domain.ResourceVenue)
}

func (h *Handler) listByResource(c *gin.Context, kind domain.ResourceKind) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid resource id")
		return
	}

	rows, err := h.service.ListByResource(c.Request.Context(), domain.ResourceRef{Kind: kind, ID: id})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) ListMyReviews(c *gin.Context) {
	rows, err := h.service.ListByUser(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) ListAllReviews(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := h.service.ListAll(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
		return
	}
	response.Success(c, http.StatusOK, rows)
}
