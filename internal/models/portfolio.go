package models

import (
	"github.com/google/uuid"
	"github.com/rohits-web03/quick4lio/internal/portfolio"
)

// Portfolio is the single portfolio record of a user. SectionsData holds
// the serialized portfolio.Sections; the column has no schema of its own.
type Portfolio struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID      `json:"userId" gorm:"type:uuid;uniqueIndex;not null"` // at most one per user
	PortfolioType portfolio.Tier `json:"portfolioType" gorm:"type:varchar(20);not null;default:'Free'"`
	SectionsData  string         `json:"-" gorm:"type:text;not null;default:'{}'"`
}
