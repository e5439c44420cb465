package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/quick4lio/internal/portfolio"
)

const (
	DefaultProfilePhoto = "https://via.placeholder.com/150"
	DefaultBio          = "A new user on Quick4lio."

	// MaxImageURLLength is the width of the varchar columns holding image URLs.
	MaxImageURLLength = 200
)

type User struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Username         string         `json:"username" gorm:"uniqueIndex;not null"`
	Email            string         `json:"email" gorm:"uniqueIndex;not null"`
	Password         string         `json:"-" gorm:"not null"`
	SubscriptionType portfolio.Tier `json:"subscriptionType" gorm:"type:varchar(20);not null;default:'Free'"`
	ProfilePhoto     string         `json:"profilePhoto" gorm:"type:varchar(200);default:'https://via.placeholder.com/150'"`
	Bio              string         `json:"bio" gorm:"type:text;default:'A new user on Quick4lio.'"`
	SocialLinks      string         `json:"-" gorm:"type:text;not null;default:'{}'"` // JSON object label -> URL
	CreatedAt        time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
	Posts            []Post         `json:"-" gorm:"foreignKey:UserID"`
	Portfolio        *Portfolio     `json:"-" gorm:"foreignKey:UserID"`
}
