package portfolio

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Form field names accepted by the editor.
const (
	FieldName          = "name"
	FieldTitle         = "title"
	FieldBio           = "bio"
	FieldProjectName   = "project_name_1"
	FieldProjectDesc   = "project_desc_1"
	FieldProjectImage  = "project_img_1"
	FieldSkills        = "skills"
	FieldContactEmail  = "contact_email"
	FieldContactPhone  = "contact_phone"
	FieldPortfolioType = "portfolio_type"
	FieldHomeContent   = "home_content"
	FieldCaseStudies   = "case_studies"
	FieldTestimonials  = "testimonials"
	FieldResumeLink    = "resume_link"
	FieldAwards        = "awards"
)

var formFields = []string{
	FieldName, FieldTitle, FieldBio,
	FieldProjectName, FieldProjectDesc, FieldProjectImage,
	FieldSkills, FieldContactEmail, FieldContactPhone, FieldPortfolioType,
	FieldHomeContent, FieldCaseStudies, FieldTestimonials, FieldResumeLink, FieldAwards,
}

var ErrMissingField = errors.New("missing required field")

// Fields maps submitted form field names to their values.
type Fields map[string]string

// FieldsFromForm keeps the first value of every recognized field.
func FieldsFromForm(form url.Values) Fields {
	fields := make(Fields, len(formFields))
	for _, name := range formFields {
		if vals, ok := form[name]; ok && len(vals) > 0 {
			fields[name] = vals[0]
		}
	}
	return fields
}

// Builder assembles a Sections record from submitted fields.
type Builder struct {
	strict bool
}

// NewBuilder returns a Builder. In strict mode a record without a header
// name or a contact email is rejected instead of stored with empty strings.
func NewBuilder(strict bool) *Builder {
	return &Builder{strict: strict}
}

// Build assembles the record for tier. Sections above tier are never
// populated, whatever fields were submitted.
func (b *Builder) Build(fields Fields, tier Tier) (Sections, error) {
	if !tier.Valid() {
		return Sections{}, fmt.Errorf("%w: %q", ErrInvalidTier, string(tier))
	}

	if b.strict {
		for _, name := range []string{FieldName, FieldContactEmail} {
			if strings.TrimSpace(fields[name]) == "" {
				return Sections{}, fmt.Errorf("%w: %s", ErrMissingField, name)
			}
		}
	}

	// Invalid UTF-8 is replaced here, as encoding/json would on Serialize,
	// so the built record equals what is stored.
	field := func(name string) string {
		return strings.ToValidUTF8(fields[name], "\uFFFD")
	}

	s := Sections{
		Header: Header{Name: field(FieldName), Title: field(FieldTitle)},
		About:  About{Bio: field(FieldBio)},
		Projects: []Project{{
			Name:  field(FieldProjectName),
			Desc:  field(FieldProjectDesc),
			Image: field(FieldProjectImage),
		}},
		Skills:  splitSkills(field(FieldSkills)),
		Contact: Contact{Email: field(FieldContactEmail), Phone: field(FieldContactPhone)},
	}

	if tier.AtLeast(Paid) {
		s.PaidPages = &PaidPages{HomeContent: field(FieldHomeContent)}
	}
	if tier.AtLeast(Premium) {
		s.PremiumPages = &PremiumPages{
			CaseStudies:  field(FieldCaseStudies),
			Testimonials: field(FieldTestimonials),
			ResumeLink:   field(FieldResumeLink),
			Awards:       field(FieldAwards),
		}
	}
	return s, nil
}

func splitSkills(raw string) []string {
	skills := []string{}
	for _, part := range strings.Split(raw, ",") {
		if skill := strings.TrimSpace(part); skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}
