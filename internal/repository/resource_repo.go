package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"azurea/internal/domain"
	"azurea/internal/modules/pricing"
)

type ResourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

type roomModel struct {
	ID            int64          `gorm:"column:id;primaryKey"`
	Name          string         `gorm:"column:name"`
	RoomType      string         `gorm:"column:room_type"`
	Status        string         `gorm:"column:status"`
	PricePerNight string         `gorm:"column:price_per_night"`
	Capacity      int            `gorm:"column:capacity"`
	Description   *string        `gorm:"column:description"`
	Amenities     datatypes.JSON `gorm:"column:amenities"`
	ImageURL      *string        `gorm:"column:image_url"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

type areaModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Status       string    `gorm:"column:status"`
	PricePerHour string    `gorm:"column:price_per_hour"`
	Capacity     int       `gorm:"column:capacity"`
	Description  *string   `gorm:"column:description"`
	ImageURL     *string   `gorm:"column:image_url"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (areaModel) TableName() string { return "areas" }

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:            m.ID,
		Name:          m.Name,
		RoomType:      m.RoomType,
		Status:        domain.ResourceStatus(m.Status),
		PricePerNight: m.PricePerNight,
		Capacity:      m.Capacity,
		Description:   strOrEmpty(m.Description),
		Amenities:     m.Amenities,
		ImageURL:      strOrEmpty(m.ImageURL),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	return roomModel{
		ID:            r.ID,
		Name:          r.Name,
		RoomType:      r.RoomType,
		Status:        string(r.Status),
		PricePerNight: r.PricePerNight,
		Capacity:      r.Capacity,
		Description:   strOrNil(r.Description),
		Amenities:     r.Amenities,
		ImageURL:      strOrNil(r.ImageURL),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func toDomainArea(m areaModel) *domain.Area {
	return &domain.Area{
		ID:           m.ID,
		Name:         m.Name,
		Status:       domain.ResourceStatus(m.Status),
		PricePerHour: m.PricePerHour,
		Capacity:     m.Capacity,
		Description:  strOrEmpty(m.Description),
		ImageURL:     strOrEmpty(m.ImageURL),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toAreaModel(a *domain.Area) areaModel {
	return areaModel{
		ID:           a.ID,
		Name:         a.Name,
		Status:       string(a.Status),
		PricePerHour: a.PricePerHour,
		Capacity:     a.Capacity,
		Description:  strOrNil(a.Description),
		ImageURL:     strOrNil(a.ImageURL),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// GetResource resolves a room or venue area into the flat view the
// booking core prices against. The stored rate is a display string
// ("₱2,500.00"); an unparsable rate is surfaced as an error rather
// than priced as zero.
func (r *ResourceRepository) GetResource(ctx context.Context, ref domain.ResourceRef) (*domain.Resource, error) {
	if ref.Kind == domain.ResourceVenue {
		area, err := r.GetArea(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		rate, err := pricing.ParseRate(area.PricePerHour)
		if err != nil {
			return nil, fmt.Errorf("area %d: %w", area.ID, err)
		}
		return &domain.Resource{
			ID:       area.ID,
			Kind:     domain.ResourceVenue,
			Name:     area.Name,
			Rate:     rate,
			Capacity: area.Capacity,
			Status:   area.Status,
		}, nil
	}

	room, err := r.GetRoom(ctx, ref.ID)
	if err != nil {
		return nil, err
	}
	rate, err := pricing.ParseRate(room.PricePerNight)
	if err != nil {
		return nil, fmt.Errorf("room %d: %w", room.ID, err)
	}
	return &domain.Resource{
		ID:       room.ID,
		Kind:     domain.ResourceRoom,
		Name:     room.Name,
		Rate:     rate,
		Capacity: room.Capacity,
		Status:   room.Status,
	}, nil
}

func (r *ResourceRepository) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toDomainRoom(m), nil
}

func (r *ResourceRepository) ListRooms(ctx context.Context) ([]domain.Room, error) {
	var rows []roomModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Room, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *ResourceRepository) CreateRoom(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *ResourceRepository) UpdateRoom(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	res := r.db.WithContext(ctx).Model(&roomModel{}).Where("id = ?", m.ID).Updates(&m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ResourceRepository) DeleteRoom(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&roomModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ResourceRepository) GetArea(ctx context.Context, id int64) (*domain.Area, error) {
	var m areaModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toDomainArea(m), nil
}

func (r *ResourceRepository) ListAreas(ctx context.Context) ([]domain.Area, error) {
	var rows []areaModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Area, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainArea(m))
	}
	return out, nil
}

func (r *ResourceRepository) CreateArea(ctx context.Context, area *domain.Area) error {
	m := toAreaModel(area)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*area = *toDomainArea(m)
	return nil
}

func (r *ResourceRepository) UpdateArea(ctx context.Context, area *domain.Area) error {
	m := toAreaModel(area)
	res := r.db.WithContext(ctx).Model(&areaModel{}).Where("id = ?", m.ID).Updates(&m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ResourceRepository) DeleteArea(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&areaModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetStatus flips the administrative status of a room or area.
func (r *ResourceRepository) SetStatus(ctx context.Context, ref domain.ResourceRef, status domain.ResourceStatus) error {
	table := "rooms"
	if ref.Kind == domain.ResourceVenue {
		table = "areas"
	}
	res := r.db.WithContext(ctx).Table(table).Where("id = ?", ref.ID).Update("status", string(status))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
