package models

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"` // foreign key
	ContentText  string    `json:"contentText" gorm:"type:text;not null"`
	ContentImage string    `json:"contentImage,omitempty" gorm:"type:varchar(200)"` // public media URL
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
	Author       *User     `json:"author,omitempty" gorm:"foreignKey:UserID"`
}
