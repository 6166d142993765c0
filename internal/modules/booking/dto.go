package booking

import "time"

type CreateBookingRequest struct {
	RoomID         *int64    `json:"room_id"`
	AreaID         *int64    `json:"area_id"`
	UserID         int64     `json:"-"`
	StartTime      time.Time `json:"start_time" binding:"required"`
	EndTime        time.Time `json:"end_time" binding:"required"`
	SpecialRequest string    `json:"special_request"`
}

type ReasonRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type CheckInRequest struct {
	PaidAmount float64 `json:"paid_amount"`
}

type QuoteRequest struct {
	RoomID    *int64    `json:"room_id"`
	AreaID    *int64    `json:"area_id"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type QuoteResponse struct {
	ResourceName string  `json:"resource_name"`
	Units        int     `json:"units"`
	Unit         string  `json:"unit"`
	TotalPrice   float64 `json:"total_price"`
}
