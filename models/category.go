package models

import "time"

type Category struct {
	ID          string    `gorm:"primaryKey;size:255;column:id" json:"id"`
	Name        string    `gorm:"size:255;not null;column:name" json:"name"`
	Slug        string    `gorm:"size:255;not null;uniqueIndex:idx_categories_slug;column:slug" json:"slug"`
	Icon        string    `gorm:"size:100;not null;column:icon" json:"icon"`
	Description string    `gorm:"type:text;column:description" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}

// Subcategory 必须挂在一个 Category 下
type Subcategory struct {
	ID         string    `gorm:"primaryKey;size:255;column:id" json:"id"`
	CategoryID string    `gorm:"size:255;not null;index:idx_subcategories_category;column:category_id" json:"category_id"`
	Name       string    `gorm:"size:255;not null;column:name" json:"name"`
	Slug       string    `gorm:"size:255;not null;column:slug" json:"slug"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Subcategory) TableName() string {
	return "subcategories"
}
