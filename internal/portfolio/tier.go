package portfolio

import (
	"errors"
	"fmt"
)

// Tier is a subscription level. It gates which portfolio sections a user
// may populate and which are shown on the public page.
type Tier string

const (
	Free    Tier = "Free"
	Paid    Tier = "Paid"
	Premium Tier = "Premium"
)

var ErrInvalidTier = errors.New("invalid tier")

// Section keys of the stored record.
const (
	SectionHeader       = "header"
	SectionAbout        = "about"
	SectionProjects     = "projects"
	SectionSkills       = "skills"
	SectionContact      = "contact"
	SectionPaidPages    = "paid_pages"
	SectionPremiumPages = "premium_pages"
)

var baseSections = []string{SectionHeader, SectionAbout, SectionProjects, SectionSkills, SectionContact}

var tierRank = map[Tier]int{
	Free:    0,
	Paid:    1,
	Premium: 2,
}

// Tiers returns the allow-list in ascending order.
func Tiers() []Tier {
	return []Tier{Free, Paid, Premium}
}

// ParseTier validates a raw tier value against the allow-list.
func ParseTier(raw string) (Tier, error) {
	t := Tier(raw)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTier, raw)
	}
	return t, nil
}

func (t Tier) Valid() bool {
	_, ok := tierRank[t]
	return ok
}

// AtLeast reports whether t is the same as or above other.
// Unknown tiers are never at least anything.
func (t Tier) AtLeast(other Tier) bool {
	r, ok := tierRank[t]
	if !ok {
		return false
	}
	o, ok := tierRank[other]
	if !ok {
		return false
	}
	return r >= o
}

func (t Tier) String() string {
	return string(t)
}

// VisibleSections lists the section keys rendered on the public page of a
// portfolio at tier t.
func VisibleSections(t Tier) ([]string, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTier, string(t))
	}
	sections := append([]string{}, baseSections...)
	if t.AtLeast(Paid) {
		sections = append(sections, SectionPaidPages)
	}
	if t.AtLeast(Premium) {
		sections = append(sections, SectionPremiumPages)
	}
	return sections, nil
}

// EditableSections lists the section keys a user at tier t may populate.
// Every visible section is editable.
func EditableSections(t Tier) ([]string, error) {
	return VisibleSections(t)
}
