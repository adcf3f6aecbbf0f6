package models

import (
	"time"
)

type Reply struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Body      string    `gorm:"not null;type:text" json:"body"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	CommentID uint      `gorm:"not null" json:"comment_id"`
	Comment   Comment   `json:"-" gorm:"foreignKey:CommentID"`
	CreatedAt time.Time `json:"created_at"`
}
