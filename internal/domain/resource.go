package domain

import (
	"time"

	"gorm.io/datatypes"
)

// ResourceStatus is the administrative lifecycle of a room or area.
// It is set by staff and independent of any booking.
type ResourceStatus string

const (
	ResourceAvailable   ResourceStatus = "available"
	ResourceOccupied    ResourceStatus = "occupied"
	ResourceMaintenance ResourceStatus = "maintenance"
)

type ResourceKind string

const (
	ResourceRoom  ResourceKind = "room"
	ResourceVenue ResourceKind = "venue"
)

// ResourceRef identifies a bookable room or venue.
type ResourceRef struct {
	Kind ResourceKind `json:"kind"`
	ID   int64        `json:"id"`
}

// Resource is the catalog view the booking core reads: an identifier
// and a unit rate (per night for rooms, per hour for venues). The rate
// is already parsed and validated by the repository boundary.
type Resource struct {
	ID       int64          `json:"id"`
	Kind     ResourceKind   `json:"kind"`
	Name     string         `json:"name"`
	Rate     float64        `json:"rate"`
	Capacity int            `json:"capacity"`
	Status   ResourceStatus `json:"status"`
}

func (r *Resource) Ref() ResourceRef {
	return ResourceRef{Kind: r.Kind, ID: r.ID}
}

type Room struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	RoomType      string         `json:"room_type"`
	Status        ResourceStatus `json:"status"`
	PricePerNight string         `json:"price_per_night"`
	Capacity      int            `json:"capacity"`
	Description   string         `json:"description,omitempty"`
	Amenities     datatypes.JSON `json:"amenities,omitempty"`
	ImageURL      string         `json:"image_url,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type Area struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Status       ResourceStatus `json:"status"`
	PricePerHour string         `json:"price_per_hour"`
	Capacity     int            `json:"capacity"`
	Description  string         `json:"description,omitempty"`
	ImageURL     string         `json:"image_url,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
