package model

import "time"

// User is an account able to log in. Password holds the hashed credential,
// never the raw password.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"column:username;uniqueIndex;size:255;not null"`
	Password  string    `json:"-" gorm:"column:password;size:128;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName pins the table name.
func (User) TableName() string {
	return "users"
}
