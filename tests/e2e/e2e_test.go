package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"azurea/internal/database"
	"azurea/internal/domain"
	"azurea/internal/middleware"
	"azurea/internal/modules/availability"
	"azurea/internal/modules/booking"
	"azurea/internal/modules/catalog"
	"azurea/internal/modules/review"
	jwtsvc "azurea/internal/pkg/jwt"
	"azurea/internal/repository"
)

type E2ETestSuite struct {
	router     *gin.Engine
	db         *gorm.DB
	jwtService *jwtsvc.Service
	clock      *testClock
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time   { return c.now }
func (c *testClock) Today() time.Time { return domain.Midnight(c.now) }

func setupTestSuite(t *testing.T) *E2ETestSuite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, repository.AutoMigrate(db))

	bookingRepo := repository.NewBookingRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	clock := &testClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	index := availability.NewIndex(bookingRepo, clock)
	bookingService := booking.NewService(bookingRepo, resourceRepo, index, paymentRepo, nil, clock)
	bookingHandler := booking.NewHandler(bookingService)

	catalogService := catalog.NewService(resourceRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	reviewService := review.NewService(reviewRepo, bookingRepo, clock)
	reviewHandler := review.NewHandler(reviewService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	public := v1.Group("/")
	v1.GET("/rooms/:id/calendar", bookingHandler.RoomCalendar)
	v1.GET("/areas/:id/calendar", bookingHandler.AreaCalendar)
	v1.GET("/rooms/:id/reviews", reviewHandler.RoomReviews)
	v1.GET("/areas/:id/reviews", reviewHandler.AreaReviews)

	guest := v1.Group("/", middleware.JWTAuth(jwtService))
	staff := v1.Group("/admin", middleware.JWTAuth(jwtService), middleware.AdminOnly())

	catalogHandler.RegisterRoutes(public, staff)
	bookingHandler.RegisterRoutes(guest, staff)
	reviewHandler.RegisterRoutes(guest, staff)

	return &E2ETestSuite{router: r, db: db, jwtService: jwtService, clock: clock}
}

func (s *E2ETestSuite) request(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, TestResponse) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp TestResponse
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

func (s *E2ETestSuite) guestToken(t *testing.T, userID int64) string {
	token, err := s.jwtService.GenerateToken(userID, "guest")
	require.NoError(t, err)
	return token
}

func (s *E2ETestSuite) adminToken(t *testing.T) string {
	token, err := s.jwtService.GenerateToken(1, "admin")
	require.NoError(t, err)
	return token
}

func (s *E2ETestSuite) seedRoom(t *testing.T, name, rate string) int64 {
	admin := s.adminToken(t)
	w, resp := s.request(t, "POST", "/api/v1/admin/rooms", admin, map[string]interface{}{
		"name":            name,
		"room_type":       "deluxe",
		"price_per_night": rate,
		"capacity":        2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return int64(resp.Data["id"].(float64))
}

func (s *E2ETestSuite) seedArea(t *testing.T, name, rate string) int64 {
	admin := s.adminToken(t)
	w, resp := s.request(t, "POST", "/api/v1/admin/areas", admin, map[string]interface{}{
		"name":           name,
		"price_per_hour": rate,
		"capacity":       80,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return int64(resp.Data["id"].(float64))
}

func TestBookingLifecycle(t *testing.T) {
	s := setupTestSuite(t)
	roomID := s.seedRoom(t, "Deluxe Room", "₱2,000.00")
	guest := s.guestToken(t, 5)
	admin := s.adminToken(t)

	// guest requests three nights
	w, resp := s.request(t, "POST", "/api/v1/bookings", guest, map[string]interface{}{
		"room_id":    roomID,
		"start_time": "2026-03-10T00:00:00Z",
		"end_time":   "2026-03-13T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "pending", resp.Data["status"])
	assert.Equal(t, 6000.0, resp.Data["total_price"])
	bookingID := int64(resp.Data["id"].(float64))

	// another guest hits the same nights and learns what blocks them
	other := s.guestToken(t, 6)
	w, resp = s.request(t, "POST", "/api/v1/bookings", other, map[string]interface{}{
		"room_id":    roomID,
		"start_time": "2026-03-12T00:00:00Z",
		"end_time":   "2026-03-14T00:00:00Z",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "BOOKING_CONFLICT", resp.Error.Code)

	// back-to-back is fine: starts exactly at the other checkout
	w, _ = s.request(t, "POST", "/api/v1/bookings", other, map[string]interface{}{
		"room_id":    roomID,
		"start_time": "2026-03-13T00:00:00Z",
		"end_time":   "2026-03-14T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// staff confirms, guest checks in with the exact amount
	w, resp = s.request(t, "POST", fmt.Sprintf("/api/v1/admin/bookings/%d/confirm", bookingID), admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "reserved", resp.Data["status"])

	w, resp = s.request(t, "POST", fmt.Sprintf("/api/v1/admin/bookings/%d/check-in", bookingID), admin,
		map[string]interface{}{"paid_amount": 5999.0})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "PAYMENT_MISMATCH", resp.Error.Code)

	w, resp = s.request(t, "POST", fmt.Sprintf("/api/v1/admin/bookings/%d/check-in", bookingID), admin,
		map[string]interface{}{"paid_amount": 6000.0})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "checked_in", resp.Data["status"])

	// the collected amount landed in the ledger
	payReq := httptest.NewRequest("GET", fmt.Sprintf("/api/v1/admin/bookings/%d/payments", bookingID), nil)
	payReq.Header.Set("Authorization", "Bearer "+admin)
	payRec := httptest.NewRecorder()
	s.router.ServeHTTP(payRec, payReq)
	require.Equal(t, http.StatusOK, payRec.Code, payRec.Body.String())

	var payResp struct {
		Success bool                     `json:"success"`
		Data    []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(payRec.Body.Bytes(), &payResp))
	require.Len(t, payResp.Data, 1)
	assert.Equal(t, 6000.0, payResp.Data[0]["amount"])
	assert.Equal(t, "completed", payResp.Data[0]["status"])

	// cancelling after check-in is not allowed
	w, resp = s.request(t, "POST", fmt.Sprintf("/api/v1/bookings/%d/cancel", bookingID), guest,
		map[string]interface{}{"reason": "too late"})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "INVALID_TRANSITION", resp.Error.Code)

	// check out, then leave a review
	w, resp = s.request(t, "POST", fmt.Sprintf("/api/v1/admin/bookings/%d/check-out", bookingID), admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "checked_out", resp.Data["status"])

	w, resp = s.request(t, "POST", "/api/v1/reviews", guest, map[string]interface{}{
		"booking_id": bookingID,
		"rating":     5,
		"comment":    "spotless",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// one review per stay
	w, resp = s.request(t, "POST", "/api/v1/reviews", guest, map[string]interface{}{
		"booking_id": bookingID,
		"rating":     4,
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "REVIEW_EXISTS", resp.Error.Code)

	// the review is visible on the room's public page
	req := httptest.NewRequest("GET", fmt.Sprintf("/api/v1/rooms/%d/reviews", roomID), nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var listResp struct {
		Success bool                     `json:"success"`
		Data    []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	require.Len(t, listResp.Data, 1)
	assert.Equal(t, "spotless", listResp.Data[0]["comment"])
}

func TestCancelFreesTheNights(t *testing.T) {
	s := setupTestSuite(t)
	roomID := s.seedRoom(t, "Standard Twin", "₱2,000.00")
	guest := s.guestToken(t, 5)

	w, resp := s.request(t, "POST", "/api/v1/bookings", guest, map[string]interface{}{
		"room_id":    roomID,
		"start_time": "2026-03-10T00:00:00Z",
		"end_time":   "2026-03-13T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	bookingID := int64(resp.Data["id"].(float64))

	// someone else cannot cancel it
	other := s.guestToken(t, 6)
	w, _ = s.request(t, "POST", fmt.Sprintf("/api/v1/bookings/%d/cancel", bookingID), other,
		map[string]interface{}{"reason": "not mine"})
	require.Equal(t, http.StatusForbidden, w.Code)

	w, resp = s.request(t, "POST", fmt.Sprintf("/api/v1/bookings/%d/cancel", bookingID), guest,
		map[string]interface{}{"reason": "plans changed"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cancelled", resp.Data["status"])

	// the freed nights rebook at a fresh price
	w, resp = s.request(t, "POST", "/api/v1/bookings", other, map[string]interface{}{
		"room_id":    roomID,
		"start_time": "2026-03-10T00:00:00Z",
		"end_time":   "2026-03-12T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 4000.0, resp.Data["total_price"])
}

func TestVenueBookingBillsByHour(t *testing.T) {
	s := setupTestSuite(t)
	areaID := s.seedArea(t, "Garden Pavilion", "₱350.50")
	guest := s.guestToken(t, 5)

	w, resp := s.request(t, "POST", "/api/v1/bookings", guest, map[string]interface{}{
		"area_id":    areaID,
		"start_time": "2026-03-10T14:00:00Z",
		"end_time":   "2026-03-10T15:01:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, true, resp.Data["is_venue_booking"])
	assert.Equal(t, 701.0, resp.Data["total_price"])
}

func TestCalendarEndpoint(t *testing.T) {
	s := setupTestSuite(t)
	roomID := s.seedRoom(t, "Suite", "₱4,500.00")
	guest := s.guestToken(t, 5)

	w, _ := s.request(t, "POST", "/api/v1/bookings", guest, map[string]interface{}{
		"room_id":    roomID,
		"start_time": "2026-03-11T00:00:00Z",
		"end_time":   "2026-03-13T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest("GET",
		fmt.Sprintf("/api/v1/rooms/%d/calendar?from=2026-03-10&to=2026-03-13", roomID), nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			Date   string `json:"date"`
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 4)
	assert.Equal(t, "available", resp.Data[0].Status)
	assert.Equal(t, "pending", resp.Data[1].Status)
	assert.Equal(t, "pending", resp.Data[2].Status)
	// checkout day stays free
	assert.Equal(t, "available", resp.Data[3].Status)
}

func TestStaffRoutesRequireAdmin(t *testing.T) {
	s := setupTestSuite(t)
	guest := s.guestToken(t, 5)

	w, _ := s.request(t, "POST", "/api/v1/admin/rooms", guest, map[string]interface{}{
		"name": "Nope", "room_type": "deluxe", "price_per_night": "₱1.00", "capacity": 1,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = s.request(t, "GET", "/api/v1/admin/bookings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBadRateSurfacesAsError(t *testing.T) {
	s := setupTestSuite(t)
	// catalog validation rejects unreadable rates up front
	admin := s.adminToken(t)
	w, resp := s.request(t, "POST", "/api/v1/admin/rooms", admin, map[string]interface{}{
		"name":            "Broken",
		"room_type":       "deluxe",
		"price_per_night": "contact us",
		"capacity":        2,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}
