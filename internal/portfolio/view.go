package portfolio

import (
	"errors"
	"fmt"
)

// ViewKind names the presentation produced for a stored portfolio.
type ViewKind string

const (
	NoPortfolio ViewKind = "no_portfolio"
	FreeView    ViewKind = "free_portfolio"
	PaidView    ViewKind = "paid_portfolio"
	PremiumView ViewKind = "premium_portfolio"
)

var ErrUnknownTier = errors.New("unknown stored tier")

var viewByTier = map[Tier]ViewKind{
	Free:    FreeView,
	Paid:    PaidView,
	Premium: PremiumView,
}

// ViewForTier dispatches on a stored portfolio_type value. Values outside
// the allow-list map to NoPortfolio together with ErrUnknownTier.
func ViewForTier(raw string) (ViewKind, error) {
	kind, ok := viewByTier[Tier(raw)]
	if !ok {
		return NoPortfolio, fmt.Errorf("%w: %q", ErrUnknownTier, raw)
	}
	return kind, nil
}

// EditView names the editor form shown for an account plan.
type EditView string

const (
	EditFree    EditView = "edit_free_portfolio"
	EditPaid    EditView = "edit_paid_portfolio"
	EditPremium EditView = "edit_premium_portfolio"
)

// EditViewForTier picks the editor form for an account tier.
func EditViewForTier(t Tier) (EditView, error) {
	switch t {
	case Free:
		return EditFree, nil
	case Paid:
		return EditPaid, nil
	case Premium:
		return EditPremium, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTier, string(t))
}
