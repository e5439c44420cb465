package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/rohits-web03/quick4lio/internal/models"
	"gorm.io/gorm"
)

const defaultFeedLimit = 100

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, p *models.Post) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return persistenceError("create post", err)
	}
	return nil
}

// Feed returns the newest posts of all users with their authors loaded.
func (r *PostRepository) Feed(ctx context.Context, limit int) ([]models.Post, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, persistenceError("load feed", err)
	}
	return posts, nil
}

// ByUser returns the posts of one user, newest first.
func (r *PostRepository) ByUser(ctx context.Context, userID uuid.UUID) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, persistenceError("load user posts", err)
	}
	return posts, nil
}
