package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// assignID gives a new row a random UUID unless the caller already set one.
func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	assignID(&u.ID)
	return nil
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}

func (p *Portfolio) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}
