package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Model is the storage shape of a Booking; it is what AutoMigrate creates.
type Model struct {
	ID          int64      `gorm:"column:id;primaryKey"`
	ClientID    int64      `gorm:"column:client_id;not null;index"`
	ProviderID  int64      `gorm:"column:provider_id;not null;index"`
	ServiceID   int64      `gorm:"column:service_id;not null;index"`
	Date        time.Time  `gorm:"column:booking_date;not null"`
	Status      string     `gorm:"column:status;type:varchar(16);not null;index"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
	CancelledAt *time.Time `gorm:"column:cancelled_at"`
}

func (Model) TableName() string { return "bookings" }

func toDomainBooking(m Model) *Booking {
	return &Booking{
		ID:          m.ID,
		ClientID:    m.ClientID,
		ProviderID:  m.ProviderID,
		ServiceID:   m.ServiceID,
		Date:        m.Date,
		Status:      Status(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		CancelledAt: m.CancelledAt,
	}
}

func toBookingModel(b *Booking) Model {
	return Model{
		ID:          b.ID,
		ClientID:    b.ClientID,
		ProviderID:  b.ProviderID,
		ServiceID:   b.ServiceID,
		Date:        b.Date,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
		CancelledAt: b.CancelledAt,
	}
}

func (r *bookingRepository) Create(ctx context.Context, b *Booking) error {
	m := toBookingModel(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	var m Model
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking %d: %w", id, err)
	}
	return toDomainBooking(m), nil
}

type detailsRow struct {
	Model
	ServiceTitle string  `gorm:"column:service_title"`
	ServicePrice float64 `gorm:"column:service_price"`
	ClientName   string  `gorm:"column:client_name"`
	ProviderName string  `gorm:"column:provider_name"`
}

func (r *bookingRepository) List(ctx context.Context, f ListFilter) ([]Details, error) {
	q := r.db.WithContext(ctx).
		Table("bookings AS b").
		Select(`b.*,
			s.title AS service_title,
			s.price AS service_price,
			c.name AS client_name,
			p.name AS provider_name`).
		Joins("LEFT JOIN services s ON s.id = b.service_id").
		Joins("LEFT JOIN users c ON c.id = b.client_id").
		Joins("LEFT JOIN users p ON p.id = b.provider_id")

	if f.ClientID > 0 {
		q = q.Where("b.client_id = ?", f.ClientID)
	}
	if f.ProviderID > 0 {
		q = q.Where("b.provider_id = ?", f.ProviderID)
	}
	if f.Status != "" {
		q = q.Where("b.status = ?", string(f.Status))
	}

	var rows []detailsRow
	if err := q.Order("b.booking_date DESC, b.id DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	out := make([]Details, 0, len(rows))
	for _, row := range rows {
		out = append(out, Details{
			Booking:      *toDomainBooking(row.Model),
			ServiceTitle: row.ServiceTitle,
			ServicePrice: row.ServicePrice,
			ClientName:   row.ClientName,
			ProviderName: row.ProviderName,
		})
	}
	return out, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, from, to Status, at time.Time) (bool, error) {
	updates := map[string]any{
		"status":     string(to),
		"updated_at": at,
	}
	if to == StatusCancelled {
		updates["cancelled_at"] = at
	}

	res := r.db.WithContext(ctx).
		Model(&Model{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	if res.Error != nil {
		return false, fmt.Errorf("update booking %d status: %w", id, res.Error)
	}
	return res.RowsAffected == 1, nil
}
