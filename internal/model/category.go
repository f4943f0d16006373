package model

// Category is a spending label. Labels are not unique: every creation
// inserts a new row, even when another user already owns the same label.
type Category struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Label string `json:"category" gorm:"column:category;size:255;not null;index"`
}

// TableName pins the table name.
func (Category) TableName() string {
	return "categories"
}

// UserCategory makes a category visible to a user.
type UserCategory struct {
	ID         uint `gorm:"primaryKey"`
	UserID     uint `gorm:"column:uc_user;not null;index"`
	CategoryID uint `gorm:"column:uc_category;not null;index"`
}

// TableName pins the table name.
func (UserCategory) TableName() string {
	return "users_categories"
}
