package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"azurea/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	BookingID int64     `gorm:"column:booking_id;index"`
	UserID    int64     `gorm:"column:user_id;index"`
	Kind      string    `gorm:"column:kind"`
	Amount    float64   `gorm:"column:amount"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (paymentModel) TableName() string { return "payments" }

func (r *PaymentRepository) Record(ctx context.Context, p *domain.Payment) error {
	m := paymentModel{
		BookingID: p.BookingID,
		UserID:    p.UserID,
		Kind:      string(p.Kind),
		Amount:    p.Amount,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	p.ID = m.ID
	return nil
}

func (r *PaymentRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.Payment, error) {
	var rows []paymentModel
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Payment, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Payment{
			ID:        m.ID,
			BookingID: m.BookingID,
			UserID:    m.UserID,
			Kind:      domain.PaymentKind(m.Kind),
			Amount:    m.Amount,
			Status:    m.Status,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}
