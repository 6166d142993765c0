package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"azurea/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	BookingID int64     `gorm:"column:booking_id;uniqueIndex"`
	UserID    int64     `gorm:"column:user_id;index"`
	Rating    int       `gorm:"column:rating"`
	Comment   *string   `gorm:"column:comment"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) *domain.Review {
	return &domain.Review{
		ID:        m.ID,
		BookingID: m.BookingID,
		UserID:    m.UserID,
		Rating:    m.Rating,
		Comment:   strOrEmpty(m.Comment),
		CreatedAt: m.CreatedAt,
	}
}

// Create inserts a review. The unique index on booking_id enforces one
// review per stay at the database level.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m := reviewModel{
		BookingID: rv.BookingID,
		UserID:    rv.UserID,
		Rating:    rv.Rating,
		Comment:   strOrNil(rv.Comment),
		CreatedAt: rv.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	*rv = *toDomainReview(m)
	return nil
}

func (r *ReviewRepository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Review, error) {
	var m reviewModel
	if err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toDomainReview(m), nil
}

func (r *ReviewRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Review, error) {
	var rows []reviewModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReview(m))
	}
	return out, nil
}

// ListByResource joins through bookings so guests can read reviews for
// a room or area from the catalog pages.
func (r *ReviewRepository) ListByResource(ctx context.Context, ref domain.ResourceRef) ([]domain.Review, error) {
	col := "bookings.room_id"
	if ref.Kind == domain.ResourceVenue {
		col = "bookings.area_id"
	}
	var rows []reviewModel
	err := r.db.WithContext(ctx).
		Joins("JOIN bookings ON bookings.id = reviews.booking_id").
		Where(col+" = ?", ref.ID).
		Order("reviews.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReview(m))
	}
	return out, nil
}

func (r *ReviewRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.Review, error) {
	var rows []reviewModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReview(m))
	}
	return out, nil
}
