package review

import (
	"context"
	"errors"

	"azurea/internal/domain"
	"azurea/internal/repository"
)

// BookingGate is the slice of the booking store the review module
// needs to decide whether a guest may leave a review.
type BookingGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type ReviewStore interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByBookingID(ctx context.Context, bookingID int64) (*domain.Review, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Review, error)
	ListByResource(ctx context.Context, ref domain.ResourceRef) ([]domain.Review, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.Review, error)
}

type Service struct {
	reviews  ReviewStore
	bookings BookingGate
	clock    domain.Clock
}

func NewService(reviews ReviewStore, bookings BookingGate, clock domain.Clock) *Service {
	return &Service{reviews: reviews, bookings: bookings, clock: clock}
}

// Create records a review for a completed stay. Only the guest who
// checked out may review, once per booking.
func (s *Service) Create(ctx context.Context, userID int64, req CreateReviewRequest) (*domain.Review, error) {
	if userID <= 0 || req.BookingID <= 0 || req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRequest
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrReviewNotAllowed
	}
	if b.Status != domain.BookingCheckedOut {
		return nil, ErrReviewNotAllowed
	}

	rv := &domain.Review{
		BookingID: req.BookingID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: s.clock.Now(),
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return rv, nil
}

func (s *Service) GetForBooking(ctx context.Context, bookingID int64) (*domain.Review, error) {
	rv, err := s.reviews.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.Review, error) {
	return s.reviews.ListByUser(ctx, userID)
}

func (s *Service) ListByResource(ctx context.Context, ref domain.ResourceRef) ([]domain.Review, error) {
	if ref.ID <= 0 {
		return nil, ErrInvalidRequest
	}
	return s.reviews.ListByResource(ctx, ref)
}

func (s *Service) ListAll(ctx context.Context, limit, offset int) ([]domain.Review, error) {
	return s.reviews.ListAll(ctx, limit, offset)
}
