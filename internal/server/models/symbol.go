package models

import "time"

// UserCategorySymbol is one keyword a user added to a symbol category.
// (user, category, keyword) is unique; category names are stored lowercase.
type UserCategorySymbol struct {
	ID           string    `json:"id"`
	UserID       string    `json:"-"`
	CategoryName string    `json:"category_name"`
	Keyword      string    `json:"keyword"`
	CreatedAt    time.Time `json:"created_at"`
}
