// Package portfolio holds the tiered portfolio record: the tier policy, the
// builder that assembles a record from submitted form fields, the lenient
// parser for stored records and the view selection used by the public page.
package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// EmptySectionsData is the stored form of a freshly created record.
const EmptySectionsData = "{}"

var ErrMalformedData = errors.New("malformed sections data")

type Header struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

type About struct {
	Bio string `json:"bio"`
}

type Project struct {
	Name  string `json:"name"`
	Desc  string `json:"desc"`
	Image string `json:"image"`
}

type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type PaidPages struct {
	HomeContent string `json:"home_content"`
}

type PremiumPages struct {
	CaseStudies  string `json:"case_studies"`
	Testimonials string `json:"testimonials"`
	ResumeLink   string `json:"resume_link"`
	Awards       string `json:"awards"`
}

// Sections is the decoded sections_data record. PaidPages and PremiumPages
// are nil for records built below their tier and are omitted from the
// serialized form.
type Sections struct {
	Header       Header        `json:"header"`
	About        About         `json:"about"`
	Projects     []Project     `json:"projects"`
	Skills       []string      `json:"skills"`
	Contact      Contact       `json:"contact"`
	PaidPages    *PaidPages    `json:"paid_pages,omitempty"`
	PremiumPages *PremiumPages `json:"premium_pages,omitempty"`
}

// Parse decodes stored sections data. Anything that does not decode into a
// record yields the empty record.
func Parse(raw string) Sections {
	s, _ := ParseReport(raw)
	return s
}

// ParseReport is Parse for callers that want to log malformed data. The
// returned record is always usable; the error only describes why it is empty.
func ParseReport(raw string) (Sections, error) {
	if strings.TrimSpace(raw) == "" {
		return Sections{}, nil
	}
	var s Sections
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return Sections{}, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	return s, nil
}

// Serialize encodes the record for storage.
func (s Sections) Serialize() (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("serialize sections: %w", err)
	}
	return string(b), nil
}

// Keys returns the section keys present in the serialized form of s.
func (s Sections) Keys() []string {
	keys := append([]string{}, baseSections...)
	if s.PaidPages != nil {
		keys = append(keys, SectionPaidPages)
	}
	if s.PremiumPages != nil {
		keys = append(keys, SectionPremiumPages)
	}
	return keys
}

// Conforms reports an error when s carries a section above tier t.
func (s Sections) Conforms(t Tier) error {
	visible, err := VisibleSections(t)
	if err != nil {
		return err
	}
	allowed := make(map[string]bool, len(visible))
	for _, key := range visible {
		allowed[key] = true
	}
	for _, key := range s.Keys() {
		if !allowed[key] {
			return fmt.Errorf("section %s not allowed for tier %s", key, t)
		}
	}
	return nil
}

// Restrict returns a copy of s without the sections above tier t.
func (s Sections) Restrict(t Tier) Sections {
	if !t.AtLeast(Paid) {
		s.PaidPages = nil
	}
	if !t.AtLeast(Premium) {
		s.PremiumPages = nil
	}
	return s
}

// ParseSocialLinks decodes a user's label to URL mapping with the same
// leniency as Parse.
func ParseSocialLinks(raw string) map[string]string {
	links := map[string]string{}
	if strings.TrimSpace(raw) == "" {
		return links
	}
	if err := json.Unmarshal([]byte(raw), &links); err != nil || links == nil {
		return map[string]string{}
	}
	return links
}

// SerializeSocialLinks is the inverse of ParseSocialLinks.
func SerializeSocialLinks(links map[string]string) (string, error) {
	if links == nil {
		return EmptySectionsData, nil
	}
	b, err := json.Marshal(links)
	if err != nil {
		return "", fmt.Errorf("serialize social links: %w", err)
	}
	return string(b), nil
}
