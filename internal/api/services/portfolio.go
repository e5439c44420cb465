package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rohits-web03/quick4lio/internal/models"
	"github.com/rohits-web03/quick4lio/internal/portfolio"
	"github.com/rohits-web03/quick4lio/internal/repositories"
	"go.uber.org/zap"
)

// PortfolioStore persists the single portfolio row of each user.
type PortfolioStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Portfolio, error)
	GetOrCreate(ctx context.Context, userID uuid.UUID, tier portfolio.Tier) (*models.Portfolio, error)
	Save(ctx context.Context, p *models.Portfolio, tier portfolio.Tier, sectionsData string) error
}

// PlanStore looks up accounts and moves them between tiers.
type PlanStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateSubscription(ctx context.Context, userID uuid.UUID, tier portfolio.Tier) error
}

type PortfolioService struct {
	portfolios PortfolioStore
	users      PlanStore
	builder    *portfolio.Builder
	log        *zap.Logger
}

func NewPortfolioService(portfolios PortfolioStore, users PlanStore, builder *portfolio.Builder, log *zap.Logger) *PortfolioService {
	return &PortfolioService{
		portfolios: portfolios,
		users:      users,
		builder:    builder,
		log:        log,
	}
}

// EditForm is what the editor needs to render the form for the account plan.
type EditForm struct {
	View         portfolio.EditView      `json:"view"`
	Portfolio    *models.Portfolio       `json:"portfolio"`
	Sections     portfolio.Sections      `json:"sectionsData"`
	Editable     []string                `json:"editableSections"`
	PaidPages    *portfolio.PaidPages    `json:"paidPages,omitempty"`
	PremiumPages *portfolio.PremiumPages `json:"premiumPages,omitempty"`
}

// PublicPortfolio is the payload of a public portfolio page. Portfolio and
// Sections are nil when View is NoPortfolio.
type PublicPortfolio struct {
	View      portfolio.ViewKind  `json:"view"`
	User      *models.User        `json:"user"`
	Portfolio *models.Portfolio   `json:"portfolio"`
	Sections  *portfolio.Sections `json:"sectionsData"`
}

type PlanInfo struct {
	Tier     portfolio.Tier `json:"tier"`
	Sections []string       `json:"sections"`
}

type PlanDetails struct {
	CurrentPlan portfolio.Tier `json:"currentPlan"`
	Plans       []PlanInfo     `json:"plans"`
}

// EditForm makes sure the user has a portfolio (created at the account
// tier) and returns its stored record for the editor of the account plan.
// An account tier outside the allow-list yields portfolio.ErrInvalidTier.
func (s *PortfolioService) EditForm(ctx context.Context, user *models.User) (*EditForm, error) {
	plan := user.SubscriptionType
	view, err := portfolio.EditViewForTier(plan)
	if err != nil {
		s.log.Warn("account has no usable plan",
			zap.String("user_id", user.ID.String()),
			zap.String("subscription_type", string(plan)))
		return nil, err
	}

	p, err := s.portfolios.GetOrCreate(ctx, user.ID, plan)
	if err != nil {
		return nil, err
	}

	sections := s.parse(p)
	editable, _ := portfolio.EditableSections(plan)
	form := &EditForm{
		View:      view,
		Portfolio: p,
		Sections:  sections,
		Editable:  editable,
	}
	if plan.AtLeast(portfolio.Paid) {
		form.PaidPages = sections.PaidPages
		if form.PaidPages == nil {
			form.PaidPages = &portfolio.PaidPages{}
		}
	}
	if plan.AtLeast(portfolio.Premium) {
		form.PremiumPages = sections.PremiumPages
		if form.PremiumPages == nil {
			form.PremiumPages = &portfolio.PremiumPages{}
		}
	}
	return form, nil
}

// Save builds the record for the submitted portfolio_type (Free when the
// field is absent) and overwrites whatever the user had stored. The account
// tier is not touched. Concurrent saves are not ordered: the last commit wins.
func (s *PortfolioService) Save(ctx context.Context, user *models.User, fields portfolio.Fields) (*models.Portfolio, portfolio.Sections, error) {
	raw := fields[portfolio.FieldPortfolioType]
	if raw == "" {
		raw = string(portfolio.Free)
	}
	tier, err := portfolio.ParseTier(raw)
	if err != nil {
		return nil, portfolio.Sections{}, err
	}

	sections, err := s.builder.Build(fields, tier)
	if err != nil {
		return nil, portfolio.Sections{}, err
	}
	data, err := sections.Serialize()
	if err != nil {
		return nil, portfolio.Sections{}, err
	}

	p, err := s.portfolios.GetOrCreate(ctx, user.ID, tier)
	if err != nil {
		return nil, portfolio.Sections{}, err
	}
	if err := s.portfolios.Save(ctx, p, tier, data); err != nil {
		return nil, portfolio.Sections{}, err
	}

	s.log.Info("portfolio saved",
		zap.String("user_id", user.ID.String()),
		zap.String("portfolio_id", p.ID.String()),
		zap.String("portfolio_type", string(tier)))
	return p, sections, nil
}

// Public resolves the public page of username. A missing user is
// repositories.ErrNotFound; a user without a usable portfolio gets the
// NoPortfolio view.
func (s *PortfolioService) Public(ctx context.Context, username string) (*PublicPortfolio, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	p, err := s.portfolios.GetByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	view := s.SelectView(p)
	if view == portfolio.NoPortfolio {
		return &PublicPortfolio{View: view, User: user}, nil
	}

	sections := s.parse(p)
	if err := sections.Conforms(p.PortfolioType); err != nil {
		s.log.Warn("stored sections exceed portfolio tier, hiding them",
			zap.String("portfolio_id", p.ID.String()),
			zap.Error(err))
		sections = sections.Restrict(p.PortfolioType)
	}
	return &PublicPortfolio{View: view, User: user, Portfolio: p, Sections: &sections}, nil
}

// SelectView picks the presentation for a stored portfolio. A nil portfolio
// and an unrecognized stored tier both give NoPortfolio; the latter is a
// data-integrity problem and gets logged.
func (s *PortfolioService) SelectView(p *models.Portfolio) portfolio.ViewKind {
	if p == nil {
		return portfolio.NoPortfolio
	}
	view, err := portfolio.ViewForTier(string(p.PortfolioType))
	if err != nil {
		s.log.Error("portfolio has unrecognized tier",
			zap.String("portfolio_id", p.ID.String()),
			zap.String("user_id", p.UserID.String()),
			zap.Error(err))
	}
	return view
}

// ChangePlan moves user to plan. Values outside the allow-list are
// rejected before anything is written.
func (s *PortfolioService) ChangePlan(ctx context.Context, user *models.User, plan string) (portfolio.Tier, error) {
	tier, err := portfolio.ParseTier(plan)
	if err != nil {
		return "", err
	}
	if err := s.users.UpdateSubscription(ctx, user.ID, tier); err != nil {
		return "", fmt.Errorf("change plan: %w", err)
	}

	s.log.Info("plan changed",
		zap.String("user_id", user.ID.String()),
		zap.String("from", string(user.SubscriptionType)),
		zap.String("to", string(tier)))
	user.SubscriptionType = tier
	return tier, nil
}

// PlanDetails lists every plan with the sections it unlocks.
func (s *PortfolioService) PlanDetails(user *models.User) PlanDetails {
	details := PlanDetails{CurrentPlan: user.SubscriptionType}
	for _, tier := range portfolio.Tiers() {
		sections, _ := portfolio.VisibleSections(tier)
		details.Plans = append(details.Plans, PlanInfo{Tier: tier, Sections: sections})
	}
	return details
}

func (s *PortfolioService) parse(p *models.Portfolio) portfolio.Sections {
	sections, err := portfolio.ParseReport(p.SectionsData)
	if err != nil {
		s.log.Warn("stored sections data is malformed, using an empty record",
			zap.String("portfolio_id", p.ID.String()),
			zap.Error(err))
	}
	return sections
}
