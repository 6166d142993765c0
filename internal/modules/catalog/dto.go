package catalog

import "gorm.io/datatypes"

type CreateRoomRequest struct {
	Name          string         `json:"name" binding:"required"`
	RoomType      string         `json:"room_type" binding:"required"`
	PricePerNight string         `json:"price_per_night" binding:"required"`
	Capacity      int            `json:"capacity" binding:"required"`
	Description   string         `json:"description"`
	Amenities     datatypes.JSON `json:"amenities"`
	ImageURL      string         `json:"image_url"`
}

type UpdateRoomRequest struct {
	Name          *string         `json:"name"`
	RoomType      *string         `json:"room_type"`
	PricePerNight *string         `json:"price_per_night"`
	Capacity      *int            `json:"capacity"`
	Description   *string         `json:"description"`
	Amenities     *datatypes.JSON `json:"amenities"`
	ImageURL      *string         `json:"image_url"`
}

type CreateAreaRequest struct {
	Name         string `json:"name" binding:"required"`
	PricePerHour string `json:"price_per_hour" binding:"required"`
	Capacity     int    `json:"capacity" binding:"required"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
}

type UpdateAreaRequest struct {
	Name         *string `json:"name"`
	PricePerHour *string `json:"price_per_hour"`
	Capacity     *int    `json:"capacity"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"image_url"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
