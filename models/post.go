package models

import (
	"time"
)

type Post struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"not null;type:varchar(100)" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	LikeCount int       `gorm:"not null;default:0" json:"like_count"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`

	Likes    []Like    `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}
