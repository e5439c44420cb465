package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rohits-web03/quick4lio/internal/models"
	"github.com/rohits-web03/quick4lio/internal/portfolio"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts u. A username or email collision returns ErrUsernameTaken
// or ErrEmailTaken (both ErrDuplicateIdentity) and writes nothing; the
// unique indexes catch the registrations that race past the lookups.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", u.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrUsernameTaken
		}
		if err := tx.Model(&models.User{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}
		return tx.Create(u).Error
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrDuplicateIdentity):
		return err
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateIdentity
	default:
		return persistenceError("create user", err)
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *UserRepository) first(ctx context.Context, query string, arg any) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error
	switch {
	case err == nil:
		return &u, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	default:
		return nil, persistenceError("get user", err)
	}
}

// UpdateSubscription moves the account to tier and, when the user already
// has a portfolio, retags it in the same transaction.
func (r *UserRepository) UpdateSubscription(ctx context.Context, userID uuid.UUID, tier portfolio.Tier) error {
	if _, err := portfolio.ParseTier(string(tier)); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).Where("id = ?", userID).Update("subscription_type", string(tier))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Model(&models.Portfolio{}).Where("user_id = ?", userID).Update("portfolio_type", string(tier)).Error
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return ErrNotFound
	default:
		return persistenceError("update subscription", err)
	}
}

// UpdateProfile replaces the profile metadata of a user. socialLinks is the
// serialized label to URL mapping.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, photo, bio, socialLinks string) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"profile_photo": photo,
		"bio":           bio,
		"social_links":  socialLinks,
	})
	if res.Error != nil {
		return persistenceError("update profile", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
