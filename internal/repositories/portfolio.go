package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rohits-web03/quick4lio/internal/models"
	"github.com/rohits-web03/quick4lio/internal/portfolio"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PortfolioRepository owns the one-to-one link between a user and their
// portfolio row.
type PortfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

// GetByUserID returns ErrNotFound when the user has no portfolio yet.
func (r *PortfolioRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Portfolio, error) {
	var p models.Portfolio
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	switch {
	case err == nil:
		return &p, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	default:
		return nil, persistenceError("get portfolio", err)
	}
}

// GetOrCreate returns the user's portfolio, creating an empty one at tier
// if none exists. The insert is conditional on user_id, so concurrent first
// calls for the same user all end up with the same row.
func (r *PortfolioRepository) GetOrCreate(ctx context.Context, userID uuid.UUID, tier portfolio.Tier) (*models.Portfolio, error) {
	if _, err := portfolio.ParseTier(string(tier)); err != nil {
		return nil, err
	}

	var p models.Portfolio
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		candidate := models.Portfolio{
			UserID:        userID,
			PortfolioType: tier,
			SectionsData:  portfolio.EmptySectionsData,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).Create(&candidate).Error
		if err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).First(&p).Error
	})
	if err != nil {
		return nil, persistenceError("get or create portfolio", err)
	}
	return &p, nil
}

// Save overwrites the tier and the whole sections record of p. Nothing is
// merged with what was stored before.
func (r *PortfolioRepository) Save(ctx context.Context, p *models.Portfolio, tier portfolio.Tier, sectionsData string) error {
	if _, err := portfolio.ParseTier(string(tier)); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Portfolio{}).
			Where("id = ?", p.ID).
			Updates(map[string]any{
				"portfolio_type": string(tier),
				"sections_data":  sectionsData,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		return ErrNotFound
	default:
		return persistenceError("save portfolio", err)
	}

	p.PortfolioType = tier
	p.SectionsData = sectionsData
	return nil
}
