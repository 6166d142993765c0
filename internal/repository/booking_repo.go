package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"azurea/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID             int64      `gorm:"column:id;primaryKey"`
	UserID         int64      `gorm:"column:user_id;index"`
	RoomID         *int64     `gorm:"column:room_id;index"`
	AreaID         *int64     `gorm:"column:area_id;index"`
	IsVenueBooking bool       `gorm:"column:is_venue_booking"`
	StartTime      time.Time  `gorm:"column:start_time;index"`
	EndTime        time.Time  `gorm:"column:end_time"`
	Status         string     `gorm:"column:status;index"`
	Reason         *string    `gorm:"column:reason"`
	TotalPrice     float64    `gorm:"column:total_price"`
	PaidAmount     *float64   `gorm:"column:paid_amount"`
	SpecialRequest *string    `gorm:"column:special_request"`
	CancelledAt    *time.Time `gorm:"column:cancelled_at"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var reason, special string
	if m.Reason != nil {
		reason = *m.Reason
	}
	if m.SpecialRequest != nil {
		special = *m.SpecialRequest
	}

	return &domain.Booking{
		ID:             m.ID,
		UserID:         m.UserID,
		RoomID:         m.RoomID,
		AreaID:         m.AreaID,
		IsVenueBooking: m.IsVenueBooking,
		StartTime:      m.StartTime,
		EndTime:        m.EndTime,
		Status:         domain.BookingStatus(m.Status),
		Reason:         reason,
		TotalPrice:     m.TotalPrice,
		PaidAmount:     m.PaidAmount,
		SpecialRequest: special,
		CancelledAt:    m.CancelledAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var reason, special *string
	if b.Reason != "" {
		v := b.Reason
		reason = &v
	}
	if b.SpecialRequest != "" {
		v := b.SpecialRequest
		special = &v
	}

	return bookingModel{
		ID:             b.ID,
		UserID:         b.UserID,
		RoomID:         b.RoomID,
		AreaID:         b.AreaID,
		IsVenueBooking: b.IsVenueBooking,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		Status:         string(b.Status),
		Reason:         reason,
		TotalPrice:     b.TotalPrice,
		PaidAmount:     b.PaidAmount,
		SpecialRequest: special,
		CancelledAt:    b.CancelledAt,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// forUpdate applies a row lock on PostgreSQL. SQLite has a single
// writer and rejects FOR UPDATE, so the clause is skipped there.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func overlapScope(q *gorm.DB, ref domain.ResourceRef, ivl domain.Interval, statuses []domain.BookingStatus, excludeID int64) *gorm.DB {
	ss := make([]string, 0, len(statuses))
	for _, s := range statuses {
		ss = append(ss, string(s))
	}

	// half-open intervals: a.start < b.end AND b.start < a.end
	q = q.Where("status IN ?", ss).
		Where("start_time < ? AND end_time > ?", ivl.End, ivl.Start)

	if ref.Kind == domain.ResourceVenue {
		q = q.Where("area_id = ?", ref.ID)
	} else {
		q = q.Where("room_id = ?", ref.ID)
	}
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	return q
}

func (r *BookingRepository) FindOverlapping(ctx context.Context, ref domain.ResourceRef, ivl domain.Interval, statuses []domain.BookingStatus, excludeID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	q := overlapScope(r.db.WithContext(ctx).Model(&bookingModel{}), ref, ivl, statuses, excludeID)
	if err := q.Order("start_time").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// Create inserts the booking inside a transaction that locks the
// resource row and re-checks for overlap. Two concurrent requests for
// the same resource serialize on the row lock, so only the first one
// passes the re-check.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	ref := b.Resource()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lockTable := "rooms"
		if ref.Kind == domain.ResourceVenue {
			lockTable = "areas"
		}
		var lockedID int64
		if err := forUpdate(tx.Table(lockTable)).
			Select("id").
			Where("id = ?", ref.ID).
			Scan(&lockedID).Error; err != nil {
			return err
		}
		if lockedID == 0 {
			return ErrNotFound
		}

		var count int64
		q := overlapScope(tx.Model(&bookingModel{}), ref, b.Interval(), domain.OccupancyHolding(), 0)
		if err := q.Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrOverlap
		}

		m := toBookingModel(b)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*b = *toDomainBooking(m)
		return nil
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toDomainBooking(m), nil
}

// Mutate loads the booking FOR UPDATE, applies fn, and persists the
// result. fn errors roll the transaction back and nothing is written.
func (r *BookingRepository) Mutate(ctx context.Context, id int64, fn func(b *domain.Booking) error) (*domain.Booking, error) {
	var out *domain.Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m bookingModel
		if err := forUpdate(tx).First(&m, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		b := toDomainBooking(m)
		if err := fn(b); err != nil {
			return err
		}

		updated := toBookingModel(b)
		if err := tx.Save(&updated).Error; err != nil {
			return err
		}
		out = toDomainBooking(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListAll(ctx context.Context, status domain.BookingStatus, limit, offset int) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{})
	if status != "" {
		q = q.Where("status = ?", string(status))
	}

	var rows []bookingModel
	if err := q.Order("start_time DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}
