package review

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"azurea/internal/domain"
	"azurea/internal/repository"
)

type MockReviewStore struct {
	mock.Mock
}

func (m *MockReviewStore) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	if rv != nil {
		rv.ID = 77
	}
	return args.Error(0)
}

func (m *MockReviewStore) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Review, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewStore) ListByUser(ctx context.Context, userID int64) ([]domain.Review, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewStore) ListByResource(ctx context.Context, ref domain.ResourceRef) ([]domain.Review, error) {
	args := m.Called(ctx, ref)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewStore) ListAll(ctx context.Context, limit, offset int) ([]domain.Review, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.Review), args.Error(1)
}

type MockBookingGate struct {
	mock.Mock
}

func (m *MockBookingGate) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type stubClock struct{ now time.Time }

func (c stubClock) Now() time.Time   { return c.now }
func (c stubClock) Today() time.Time { return domain.Midnight(c.now) }

func newTestService(store *MockReviewStore, gate *MockBookingGate) *Service {
	return NewService(store, gate, stubClock{now: time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC)})
}

func checkedOutBooking(userID int64) *domain.Booking {
	roomID := int64(7)
	return &domain.Booking{ID: 1, UserID: userID, RoomID: &roomID, Status: domain.BookingCheckedOut}
}

func TestCreateReview(t *testing.T) {
	t.Run("after checkout", func(t *testing.T) {
		store := new(MockReviewStore)
		gate := new(MockBookingGate)
		svc := newTestService(store, gate)

		gate.On("GetByID", mock.Anything, int64(1)).Return(checkedOutBooking(5), nil)
		store.On("Create", mock.Anything, mock.Anything).Return(nil)

		rv, err := svc.Create(context.Background(), 5, CreateReviewRequest{
			BookingID: 1, Rating: 4, Comment: "quiet room",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(77), rv.ID)
		assert.Equal(t, 4, rv.Rating)
	})

	t.Run("rating out of range", func(t *testing.T) {
		svc := newTestService(new(MockReviewStore), new(MockBookingGate))
		for _, rating := range []int{0, 6, -1} {
			_, err := svc.Create(context.Background(), 5, CreateReviewRequest{BookingID: 1, Rating: rating})
			assert.ErrorIs(t, err, ErrInvalidRequest)
		}
	})

	t.Run("not yet checked out", func(t *testing.T) {
		store := new(MockReviewStore)
		gate := new(MockBookingGate)
		svc := newTestService(store, gate)

		b := checkedOutBooking(5)
		b.Status = domain.BookingCheckedIn
		gate.On("GetByID", mock.Anything, int64(1)).Return(b, nil)

		_, err := svc.Create(context.Background(), 5, CreateReviewRequest{BookingID: 1, Rating: 5})
		assert.ErrorIs(t, err, ErrReviewNotAllowed)
		store.AssertNotCalled(t, "Create")
	})

	t.Run("someone else's booking", func(t *testing.T) {
		store := new(MockReviewStore)
		gate := new(MockBookingGate)
		svc := newTestService(store, gate)

		gate.On("GetByID", mock.Anything, int64(1)).Return(checkedOutBooking(5), nil)

		_, err := svc.Create(context.Background(), 99, CreateReviewRequest{BookingID: 1, Rating: 5})
		assert.ErrorIs(t, err, ErrReviewNotAllowed)
	})

	t.Run("missing booking", func(t *testing.T) {
		store := new(MockReviewStore)
		gate := new(MockBookingGate)
		svc := newTestService(store, gate)

		gate.On("GetByID", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound)

		_, err := svc.Create(context.Background(), 5, CreateReviewRequest{BookingID: 404, Rating: 5})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("second review conflicts", func(t *testing.T) {
		store := new(MockReviewStore)
		gate := new(MockBookingGate)
		svc := newTestService(store, gate)

		gate.On("GetByID", mock.Anything, int64(1)).Return(checkedOutBooking(5), nil)
		store.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

		_, err := svc.Create(context.Background(), 5, CreateReviewRequest{BookingID: 1, Rating: 3})
		assert.ErrorIs(t, err, ErrConflict)
	})
}
