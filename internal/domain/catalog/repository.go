package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListFilters narrows the public catalog
type ListFilters struct {
	CategoryID int64
	ProviderID int64
	MinPrice   float64
	MaxPrice   float64
	Search     string
	SortBy     string
	SortOrder  string
	Limit      int
	Offset     int
}

// Repository handles persistence for listings and categories
type Repository interface {
	Create(ctx context.Context, l *Listing) error
	// CreateWithinLimit inserts l unless the provider already has limit
	// listings. A negative limit means unlimited.
	CreateWithinLimit(ctx context.Context, l *Listing, limit int) error
	GetByID(ctx context.Context, id int64) (*Listing, error)
	List(ctx context.Context, f ListFilters) ([]Listing, int64, error)
	CountByProvider(ctx context.Context, providerID int64) (int64, error)
	Update(ctx context.Context, l *Listing) error
	Delete(ctx context.Context, id int64) error

	ListCategories(ctx context.Context) ([]Category, error)
	CategoryExists(ctx context.Context, id int64) (bool, error)
	CountCategories(ctx context.Context) (int64, error)
	CreateCategories(ctx context.Context, cats []Category) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, l *Listing) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(l).Error; err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	return nil
}

func (r *repository) CreateWithinLimit(ctx context.Context, l *Listing, limit int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Serialise publishes of one provider on the users row.
		var ids []int64
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Table("users").
			Where("id = ?", l.ProviderID).
			Pluck("id", &ids).Error; err != nil {
			return fmt.Errorf("lock provider %d: %w", l.ProviderID, err)
		}

		if limit >= 0 {
			var count int64
			if err := tx.Model(&Listing{}).Where("provider_id = ?", l.ProviderID).Count(&count).Error; err != nil {
				return fmt.Errorf("count services: %w", err)
			}
			if count >= int64(limit) {
				return ErrQuotaExceeded
			}
		}

		if err := tx.Omit(clause.Associations).Create(l).Error; err != nil {
			return fmt.Errorf("create service: %w", err)
		}
		return nil
	})
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Listing, error) {
	var l Listing
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Provider", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email", "role", "phone")
		}).
		First(&l, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service %d: %w", id, err)
	}
	return &l, nil
}

func (r *repository) List(ctx context.Context, f ListFilters) ([]Listing, int64, error) {
	var (
		listings []Listing
		total    int64
	)

	q := r.db.WithContext(ctx).Model(&Listing{})

	if f.CategoryID > 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.ProviderID > 0 {
		q = q.Where("provider_id = ?", f.ProviderID)
	}
	if f.MinPrice > 0 {
		q = q.Where("price >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price <= ?", f.MaxPrice)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count services: %w", err)
	}

	q = q.Order(orderClause(f.SortBy, f.SortOrder))
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	err := q.
		Preload("Category").
		Preload("Provider", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email", "role", "phone")
		}).
		Find(&listings).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list services: %w", err)
	}
	return listings, total, nil
}

// orderClause only lets whitelisted columns reach the ORDER BY.
func orderClause(sortBy, sortOrder string) string {
	col := "created_at"
	switch sortBy {
	case "price", "title", "created_at":
		col = sortBy
	}
	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}
	return col + " " + dir + ", id " + dir
}

func (r *repository) CountByProvider(ctx context.Context, providerID int64) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&Listing{}).Where("provider_id = ?", providerID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count services of provider %d: %w", providerID, err)
	}
	return n, nil
}

func (r *repository) Update(ctx context.Context, l *Listing) error {
	err := r.db.WithContext(ctx).
		Model(&Listing{ID: l.ID}).
		Select("category_id", "title", "description", "price", "image_url", "updated_at").
		Omit(clause.Associations).
		Updates(l).Error
	if err != nil {
		return fmt.Errorf("update service %d: %w", l.ID, err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&Listing{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete service %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func (r *repository) ListCategories(ctx context.Context) ([]Category, error) {
	var cats []Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

func (r *repository) CategoryExists(ctx context.Context, id int64) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&Category{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("check category %d: %w", id, err)
	}
	return n > 0, nil
}

func (r *repository) CountCategories(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&Category{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

func (r *repository) CreateCategories(ctx context.Context, cats []Category) error {
	if len(cats) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&cats).Error
	if err != nil {
		return fmt.Errorf("create categories: %w", err)
	}
	return nil
}
