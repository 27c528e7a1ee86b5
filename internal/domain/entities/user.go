package entities

import (
	"time"
)

// User represents a registered survey creator account
type User struct {
	UserID       int64     `json:"user_id" gorm:"primaryKey;column:user_id;autoIncrement"`
	Username     string    `json:"username" gorm:"column:username;uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at"`

	// Relações
	Surveys []Survey `json:"surveys,omitempty" gorm:"foreignKey:CreatorID"`
}

func (User) TableName() string {
	return "users"
}
