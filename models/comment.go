package models

import (
	"time"
)

type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Body      string    `gorm:"not null;type:text" json:"body"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	PostID    uint      `gorm:"not null" json:"post_id"`
	Post      Post      `json:"-" gorm:"foreignKey:PostID"`
	CreatedAt time.Time `json:"created"`

	Replies []Reply `json:"-" gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE"`
}
