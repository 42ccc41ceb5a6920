package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"marketplace/internal/database"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Model is the storage shape of a Review.
type Model struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	BookingID int64     `gorm:"column:booking_id;uniqueIndex;not null"`
	ClientID  int64     `gorm:"column:client_id;not null;index"`
	ServiceID int64     `gorm:"column:service_id;not null;index"`
	Rating    int       `gorm:"column:rating;not null"`
	Comment   *string   `gorm:"column:comment;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Model) TableName() string { return "reviews" }

func toDomainReview(m Model) Review {
	comment := ""
	if m.Comment != nil {
		comment = *m.Comment
	}
	return Review{
		ID:        m.ID,
		BookingID: m.BookingID,
		ClientID:  m.ClientID,
		ServiceID: m.ServiceID,
		Rating:    m.Rating,
		Comment:   comment,
		CreatedAt: m.CreatedAt,
	}
}

func toReviewModel(r *Review) Model {
	var comment *string
	if r.Comment != "" {
		v := r.Comment
		comment = &v
	}
	return Model{
		ID:        r.ID,
		BookingID: r.BookingID,
		ClientID:  r.ClientID,
		ServiceID: r.ServiceID,
		Rating:    r.Rating,
		Comment:   comment,
		CreatedAt: r.CreatedAt,
	}
}

// Create returns ErrAlreadyReviewed when the booking already has a review.
func (r *ReviewRepository) Create(ctx context.Context, rv *Review) error {
	m := toReviewModel(rv)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return ErrAlreadyReviewed
		}
		return fmt.Errorf("create review: %w", err)
	}
	*rv = toDomainReview(m)
	return nil
}

func (r *ReviewRepository) ExistsForBooking(ctx context.Context, bookingID int64) (bool, error) {
	var m Model
	err := r.db.WithContext(ctx).Select("id").Where("booking_id = ?", bookingID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("check review of booking %d: %w", bookingID, err)
	}
	return true, nil
}

func (r *ReviewRepository) GetByService(ctx context.Context, serviceID int64, limit, offset int) ([]Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var rows []Model
	err := r.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews of service %d: %w", serviceID, err)
	}

	out := make([]Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainReview(m))
	}
	return out, nil
}

func (r *ReviewRepository) SummaryForService(ctx context.Context, serviceID int64) (Summary, error) {
	var row struct {
		Average *float64
		Count   int64
	}
	err := r.db.WithContext(ctx).
		Model(&Model{}).
		Select("AVG(rating) AS average, COUNT(*) AS count").
		Where("service_id = ?", serviceID).
		Scan(&row).Error
	if err != nil {
		return Summary{}, fmt.Errorf("summarize reviews of service %d: %w", serviceID, err)
	}

	s := Summary{Count: row.Count}
	if row.Average != nil {
		s.Average = *row.Average
	}
	return s, nil
}

// SummaryForProvider aggregates the reviews of every service the provider offers.
func (r *ReviewRepository) SummaryForProvider(ctx context.Context, providerID int64) (Summary, error) {
	var row struct {
		Average *float64
		Count   int64
	}
	err := r.db.WithContext(ctx).
		Table("reviews AS r").
		Select("AVG(r.rating) AS average, COUNT(*) AS count").
		Joins("JOIN services s ON s.id = r.service_id").
		Where("s.provider_id = ?", providerID).
		Scan(&row).Error
	if err != nil {
		return Summary{}, fmt.Errorf("summarize reviews of provider %d: %w", providerID, err)
	}

	s := Summary{Count: row.Count}
	if row.Average != nil {
		s.Average = *row.Average
	}
	return s, nil
}
