package catalog

import (
	"time"

	"marketplace/internal/domain/auth"
)

// Category groups listings on the public catalog
type Category struct {
	ID   int64  `gorm:"column:id;primaryKey" json:"id"`
	Name string `gorm:"column:name;uniqueIndex;not null" json:"name"`
	Icon string `gorm:"column:icon" json:"icon,omitempty"`
}

func (Category) TableName() string { return "categories" }

// Listing is a service offered by a provider.
type Listing struct {
	ID          int64      `gorm:"column:id;primaryKey" json:"id"`
	ProviderID  int64      `gorm:"column:provider_id;not null;index" json:"provider_id"`
	CategoryID  int64      `gorm:"column:category_id;not null;index" json:"category_id"`
	Title       string     `gorm:"column:title;not null" json:"title"`
	Description string     `gorm:"column:description;type:text" json:"description"`
	Price       float64    `gorm:"column:price;not null" json:"price"`
	ImageURL    string     `gorm:"column:image_url" json:"image_url,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updated_at"`
	Provider    *auth.User `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	Category    *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Listing) TableName() string { return "services" }

// DefaultCategories is inserted by SeedCategories into an empty catalog.
var DefaultCategories = []Category{
	{Name: "Plumbing", Icon: "wrench"},
	{Name: "Electrical", Icon: "bolt"},
	{Name: "Cleaning", Icon: "broom"},
	{Name: "Gardening", Icon: "leaf"},
	{Name: "Moving", Icon: "truck"},
	{Name: "Painting", Icon: "brush"},
	{Name: "IT Support", Icon: "laptop"},
	{Name: "Tutoring", Icon: "book"},
}
