package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"azurea/internal/domain"
	"azurea/internal/modules/availability"
	"azurea/internal/modules/pricing"
	"azurea/internal/repository"
)

type Service struct {
	bookings  BookingRepository
	resources ResourceRepository
	avail     *availability.Index
	payments  PaymentRecorder
	notifs    NotificationSender
	clock     domain.Clock
}

func NewService(
	bookings BookingRepository,
	resources ResourceRepository,
	avail *availability.Index,
	payments PaymentRecorder,
	notifs NotificationSender,
	clock domain.Clock,
) *Service {
	return &Service{
		bookings:  bookings,
		resources: resources,
		avail:     avail,
		payments:  payments,
		notifs:    notifs,
		clock:     clock,
	}
}

// RequestBooking creates a pending booking for exactly one room or one
// venue area. The interval is checked against every occupancy-holding
// booking before the insert, and the repository re-checks it under a
// lock, so a losing racer still gets ErrNotAvailable.
func (s *Service) RequestBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if (req.RoomID == nil) == (req.AreaID == nil) {
		return nil, ErrValidation
	}

	ivl := domain.Interval{Start: req.StartTime, End: req.EndTime}
	if !ivl.Valid() {
		return nil, ErrValidation
	}
	if req.StartTime.Before(s.clock.Today()) {
		return nil, ErrValidation
	}

	ref := domain.ResourceRef{Kind: domain.ResourceRoom}
	if req.AreaID != nil {
		ref = domain.ResourceRef{Kind: domain.ResourceVenue, ID: *req.AreaID}
	} else {
		ref.ID = *req.RoomID
	}

	res, err := s.resources.GetResource(ctx, ref)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	conflicts, err := s.avail.Conflicts(ctx, ref, ivl, 0)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, &ConflictError{Status: conflicts[0].Status}
	}

	total := pricing.PriceFor(res, ivl)

	now := s.clock.Now()
	b := &domain.Booking{
		UserID:         req.UserID,
		RoomID:         req.RoomID,
		AreaID:         req.AreaID,
		IsVenueBooking: req.AreaID != nil,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Status:         domain.BookingPending,
		TotalPrice:     total,
		SpecialRequest: req.SpecialRequest,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrOverlap) {
			return nil, ErrNotAvailable
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23P01") {
			return nil, ErrNotAvailable
		}
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.BookingRequested(ctx, b)
	}
	return b, nil
}

// Quote prices an interval without creating anything.
func (s *Service) Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error) {
	if (req.RoomID == nil) == (req.AreaID == nil) {
		return nil, ErrValidation
	}
	ivl := domain.Interval{Start: req.StartTime, End: req.EndTime}
	if !ivl.Valid() {
		return nil, ErrValidation
	}

	ref := domain.ResourceRef{Kind: domain.ResourceRoom}
	if req.AreaID != nil {
		ref = domain.ResourceRef{Kind: domain.ResourceVenue, ID: *req.AreaID}
	} else {
		ref.ID = *req.RoomID
	}

	res, err := s.resources.GetResource(ctx, ref)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	units, unit := ivl.Nights(), "night"
	if res.Kind == domain.ResourceVenue {
		units, unit = ivl.Hours(), "hour"
	}
	return &QuoteResponse{
		ResourceName: res.Name,
		Units:        units,
		Unit:         unit,
		TotalPrice:   pricing.PriceFor(res, ivl),
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) ListAll(ctx context.Context, status domain.BookingStatus, limit, offset int) ([]domain.Booking, error) {
	if status != "" && !status.Valid() {
		return nil, ErrValidation
	}
	return s.bookings.ListAll(ctx, status, limit, offset)
}

// Confirm moves a pending booking to reserved. Staff only, enforced at
// the route level.
func (s *Service) Confirm(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.mutate(ctx, id, func(b *domain.Booking) error {
		return Confirm(b, s.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	if s.notifs != nil {
		s.notifs.BookingConfirmed(ctx, b)
	}
	return b, nil
}

func (s *Service) Reject(ctx context.Context, id int64, reason string) (*domain.Booking, error) {
	b, err := s.mutate(ctx, id, func(b *domain.Booking) error {
		return Reject(b, reason, s.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	if s.notifs != nil {
		s.notifs.BookingRejected(ctx, b, reason)
	}
	return b, nil
}

// CheckIn admits the guest once the full amount is collected, and
// records the payment in the ledger.
func (s *Service) CheckIn(ctx context.Context, id int64, paidAmount float64) (*domain.Booking, error) {
	b, err := s.mutate(ctx, id, func(b *domain.Booking) error {
		return CheckIn(b, paidAmount, s.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	if s.payments != nil {
		p := &domain.Payment{
			BookingID: b.ID,
			UserID:    b.UserID,
			Kind:      domain.PaymentKindBooking,
			Amount:    *b.PaidAmount,
			Status:    domain.PaymentCompleted,
			CreatedAt: s.clock.Now(),
		}
		// The ledger row is an audit record, not part of the check-in
		// transition. A failed insert must not undo the check-in, but
		// it cannot vanish silently either.
		if err := s.payments.Record(ctx, p); err != nil {
			log.Printf("booking %d: recording check-in payment failed: %v", b.ID, err)
		}
	}
	return b, nil
}

// PaymentsForBooking returns the ledger rows recorded against a booking.
func (s *Service) PaymentsForBooking(ctx context.Context, id int64) ([]domain.Payment, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if s.payments == nil {
		return []domain.Payment{}, nil
	}
	return s.payments.ListByBooking(ctx, id)
}

func (s *Service) CheckOut(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.mutate(ctx, id, func(b *domain.Booking) error {
		return CheckOut(b, s.clock.Now())
	})
}

func (s *Service) MarkNoShow(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.mutate(ctx, id, func(b *domain.Booking) error {
		return MarkNoShow(b, s.clock.Now())
	})
}

// Cancel is guest-initiated: only the booking owner may cancel, and
// only before check-in.
func (s *Service) Cancel(ctx context.Context, id, userID int64, reason string) (*domain.Booking, error) {
	b, err := s.mutate(ctx, id, func(b *domain.Booking) error {
		if b.UserID != userID {
			return ErrForbidden
		}
		return Cancel(b, reason, s.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	if s.notifs != nil {
		s.notifs.BookingCancelled(ctx, b, reason)
	}
	return b, nil
}

// Calendar classifies each day of the requested range for one
// resource.
func (s *Service) Calendar(ctx context.Context, ref domain.ResourceRef, from, to time.Time) ([]availability.DayClassification, error) {
	if to.Before(from) {
		return nil, ErrValidation
	}
	if _, err := s.resources.GetResource(ctx, ref); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.avail.ClassifyRange(ctx, ref, from, to)
}

func (s *Service) mutate(ctx context.Context, id int64, fn func(b *domain.Booking) error) (*domain.Booking, error) {
	b, err := s.bookings.Mutate(ctx, id, fn)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}
