package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"azurea/internal/domain"
	"azurea/internal/modules/pricing"
	"azurea/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires booking endpoints. guest routes require a valid
// token, staff routes additionally require the admin role (enforced by
// the middleware passed in).
func (h *Handler) RegisterRoutes(guest, staff *gin.RouterGroup) {
	guest.POST("/bookings", h.CreateBooking)
	guest.GET("/bookings", h.ListMyBookings)
	guest.GET("/bookings/:id", h.GetBooking)
	guest.POST("/bookings/:id/cancel", h.CancelBooking)
	guest.POST("/bookings/quote", h.Quote)

	staff.GET("/bookings", h.ListAllBookings)
	staff.POST("/bookings/:id/confirm", h.ConfirmBooking)
	staff.POST("/bookings/:id/reject", h.RejectBooking)
	staff.POST("/bookings/:id/check-in", h.CheckInBooking)
	staff.POST("/bookings/:id/check-out", h.CheckOutBooking)
	staff.POST("/bookings/:id/no-show", h.MarkNoShow)
	staff.GET("/bookings/:id/payments", h.ListBookingPayments)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	req.UserID = c.GetInt64("user_id")

	b, err := h.service.RequestBooking(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	q, err := h.service.Quote(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, q)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if b.UserID != c.GetInt64("user_id") && c.GetString("role") != "admin" {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your booking")
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) ListMyBookings(c *gin.Context) {
	limit, offset := pagination(c)
	rows, err := h.service.ListByUser(c.Request.Context(), c.GetInt64("user_id"), limit, offset)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) ListAllBookings(c *gin.Context) {
	limit, offset := pagination(c)
	status := domain.BookingStatus(c.Query("status"))
	rows, err := h.service.ListAll(c.Request.Context(), status, limit, offset)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cancellation reason is required")
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), id, c.GetInt64("user_id"), req.Reason)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) ConfirmBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	b, err := h.service.Confirm(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) RejectBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rejection reason is required")
		return
	}

	b, err := h.service.Reject(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) CheckInBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CheckIn(c.Request.Context(), id, req.PaidAmount)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) CheckOutBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	b, err := h.service.CheckOut(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) MarkNoShow(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	b, err := h.service.MarkNoShow(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) ListBookingPayments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := h.service.PaymentsForBooking(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rows)
}

// RoomCalendar and AreaCalendar serve the day-by-day availability view
// of one resource. Query params: from/to as YYYY-MM-DD.
func (h *Handler) RoomCalendar(c *gin.Context) {
	h.calendar(c, domain.ResourceRoom)
}

func (h *Handler) AreaCalendar(c *gin.Context) {
	h.calendar(c, domain.ResourceVenue)
}

func (h *Handler) calendar(c *gin.Context, kind domain.ResourceKind) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	from, err1 := time.Parse("2006-01-02", c.Query("from"))
	to, err2 := time.Parse("2006-01-02", c.Query("to"))
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "from and to must be YYYY-MM-DD")
		return
	}

	days, err := h.service.Calendar(c.Request.Context(), domain.ResourceRef{Kind: kind, ID: id}, from, to)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, days)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var conflict *ConflictError
	switch {
	case errors.As(err, &conflict):
		response.ErrorWithDetails(c, http.StatusConflict, "BOOKING_CONFLICT",
			"Resource is not available for the selected time",
			gin.H{"conflicting_status": conflict.Status})
	case errors.Is(err, ErrNotAvailable):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Resource is not available for the selected time")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Booking status does not allow this action")
	case errors.Is(err, ErrPaymentMismatch):
		response.Error(c, http.StatusUnprocessableEntity, "PAYMENT_MISMATCH", "Paid amount must match the booking total")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking or resource not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not allowed")
	case errors.Is(err, pricing.ErrBadRate):
		response.Error(c, http.StatusInternalServerError, "BAD_RATE", "Resource rate is not configured correctly")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
