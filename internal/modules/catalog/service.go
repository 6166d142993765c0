package catalog

import (
	"context"
	"errors"

	"azurea/internal/domain"
	"azurea/internal/modules/pricing"
	"azurea/internal/repository"
)

var (
	ErrValidation = errors.New("invalid catalog request")
	ErrNotFound   = errors.New("resource not found")
)

var roomTypes = map[string]bool{
	"standard":  true,
	"deluxe":    true,
	"suite":     true,
	"executive": true,
	"family":    true,
}

type Service struct {
	resources *repository.ResourceRepository
}

func NewService(resources *repository.ResourceRepository) *Service {
	return &Service{resources: resources}
}

/* ---------- ROOMS ---------- */

func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.resources.ListRooms(ctx)
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.resources.GetRoom(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return room, nil
}

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	if req.Capacity <= 0 || !roomTypes[req.RoomType] {
		return nil, ErrValidation
	}
	// rejecting an unreadable rate here keeps pricing from ever seeing one
	if _, err := pricing.ParseRate(req.PricePerNight); err != nil {
		return nil, ErrValidation
	}

	room := &domain.Room{
		Name:          req.Name,
		RoomType:      req.RoomType,
		Status:        domain.ResourceAvailable,
		PricePerNight: req.PricePerNight,
		Capacity:      req.Capacity,
		Description:   req.Description,
		Amenities:     req.Amenities,
		ImageURL:      req.ImageURL,
	}
	if err := s.resources.CreateRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.resources.GetRoom(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.RoomType != nil {
		if !roomTypes[*req.RoomType] {
			return nil, ErrValidation
		}
		room.RoomType = *req.RoomType
	}
	if req.PricePerNight != nil {
		if _, err := pricing.ParseRate(*req.PricePerNight); err != nil {
			return nil, ErrValidation
		}
		room.PricePerNight = *req.PricePerNight
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return nil, ErrValidation
		}
		room.Capacity = *req.Capacity
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.Amenities != nil {
		room.Amenities = *req.Amenities
	}
	if req.ImageURL != nil {
		room.ImageURL = *req.ImageURL
	}

	if err := s.resources.UpdateRoom(ctx, room); err != nil {
		return nil, mapRepoErr(err)
	}
	return room, nil
}

func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	return mapRepoErr(s.resources.DeleteRoom(ctx, id))
}

/* ---------- AREAS ---------- */

func (s *Service) ListAreas(ctx context.Context) ([]domain.Area, error) {
	return s.resources.ListAreas(ctx)
}

func (s *Service) GetArea(ctx context.Context, id int64) (*domain.Area, error) {
	area, err := s.resources.GetArea(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return area, nil
}

func (s *Service) CreateArea(ctx context.Context, req CreateAreaRequest) (*domain.Area, error) {
	if req.Capacity <= 0 {
		return nil, ErrValidation
	}
	if _, err := pricing.ParseRate(req.PricePerHour); err != nil {
		return nil, ErrValidation
	}

	area := &domain.Area{
		Name:         req.Name,
		Status:       domain.ResourceAvailable,
		PricePerHour: req.PricePerHour,
		Capacity:     req.Capacity,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
	}
	if err := s.resources.CreateArea(ctx, area); err != nil {
		return nil, err
	}
	return area, nil
}

func (s *Service) UpdateArea(ctx context.Context, id int64, req UpdateAreaRequest) (*domain.Area, error) {
	area, err := s.resources.GetArea(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	if req.Name != nil {
		area.Name = *req.Name
	}
	if req.PricePerHour != nil {
		if _, err := pricing.ParseRate(*req.PricePerHour); err != nil {
			return nil, ErrValidation
		}
		area.PricePerHour = *req.PricePerHour
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return nil, ErrValidation
		}
		area.Capacity = *req.Capacity
	}
	if req.Description != nil {
		area.Description = *req.Description
	}
	if req.ImageURL != nil {
		area.ImageURL = *req.ImageURL
	}

	if err := s.resources.UpdateArea(ctx, area); err != nil {
		return nil, mapRepoErr(err)
	}
	return area, nil
}

func (s *Service) DeleteArea(ctx context.Context, id int64) error {
	return mapRepoErr(s.resources.DeleteArea(ctx, id))
}

// SetStatus flips the administrative status of a room or area. This is
// independent of bookings: maintenance takes a resource off the floor
// without touching existing reservations.
func (s *Service) SetStatus(ctx context.Context, ref domain.ResourceRef, status string) error {
	switch domain.ResourceStatus(status) {
	case domain.ResourceAvailable, domain.ResourceOccupied, domain.ResourceMaintenance:
	default:
		return ErrValidation
	}
	return mapRepoErr(s.resources.SetStatus(ctx, ref, domain.ResourceStatus(status)))
}

func mapRepoErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
