package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rohits-web03/quick4lio/internal/models"
	"github.com/rohits-web03/quick4lio/internal/portfolio"
	"github.com/rohits-web03/quick4lio/internal/repositories"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, photo, bio, socialLinks string) error
}

type AccountService struct {
	users UserStore
	log   *zap.Logger
}

func NewAccountService(users UserStore, log *zap.Logger) *AccountService {
	return &AccountService{users: users, log: log}
}

// Register creates an account on the Free plan. Username and email
// collisions come back as repositories.ErrDuplicateIdentity.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, ErrInvalidInput
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:         username,
		Email:            email,
		Password:         string(hashed),
		SubscriptionType: portfolio.Free,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.String("user_id", user.ID.String()))
	return user, nil
}

// Authenticate checks a username and password pair.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if user.Password == "" {
		// accounts created through Google have no password
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AccountService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *AccountService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.users.GetByUsername(ctx, username)
}

// GoogleSignIn resolves the account for a Google identity. The register
// flow refuses an email that already has an account; the login flow
// returns repositories.ErrNotFound for an unknown email.
func (s *AccountService) GoogleSignIn(ctx context.Context, flow string, gu GoogleUser) (*models.User, error) {
	if gu.Email == "" {
		return nil, ErrInvalidInput
	}
	existing, err := s.users.GetByEmail(ctx, gu.Email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	switch flow {
	case "register":
		if existing != nil {
			return nil, repositories.ErrEmailTaken
		}
		username, err := s.freeUsername(ctx, usernameFromEmail(gu.Email))
		if err != nil {
			return nil, err
		}
		photo := gu.Picture
		if len(photo) > models.MaxImageURLLength {
			photo = ""
		}
		user := &models.User{
			Username:         username,
			Email:            gu.Email,
			Password:         "", // Google-authenticated
			SubscriptionType: portfolio.Free,
			ProfilePhoto:     photo,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
		s.log.Info("user registered with google", zap.String("user_id", user.ID.String()))
		return user, nil
	default:
		if existing == nil {
			return nil, repositories.ErrNotFound
		}
		return existing, nil
	}
}

// usernameFromEmail keeps the lowercase letters, digits, dots, dashes and
// underscores of the email local part.
func usernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	var b strings.Builder
	for _, r := range strings.ToLower(local) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "user"
	}
	return b.String()
}

// freeUsername returns base, or base with a random suffix when base is
// taken. A name claimed in between still fails in Create.
func (s *AccountService) freeUsername(ctx context.Context, base string) (string, error) {
	candidate := base
	for range 5 {
		_, err := s.users.GetByUsername(ctx, candidate)
		if errors.Is(err, repositories.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = base + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	}
	return candidate, nil
}

// UpdateProfile replaces the profile photo, bio and social links of user.
func (s *AccountService) UpdateProfile(ctx context.Context, user *models.User, photo, bio string, links map[string]string) error {
	if photo == "" {
		photo = models.DefaultProfilePhoto
	}
	raw, err := portfolio.SerializeSocialLinks(links)
	if err != nil {
		return err
	}
	if err := s.users.UpdateProfile(ctx, user.ID, photo, bio, raw); err != nil {
		return err
	}
	user.ProfilePhoto = photo
	user.Bio = bio
	user.SocialLinks = raw
	return nil
}
