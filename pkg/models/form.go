package models

import "strings"

// SubscriptionPlan is the service tier chosen during signup
type SubscriptionPlan string

const (
	PlanFree       SubscriptionPlan = "Free"
	PlanPro        SubscriptionPlan = "Pro"
	PlanEnterprise SubscriptionPlan = "Enterprise"

	// DefaultPlan is preselected when a signup starts
	DefaultPlan = PlanFree
)

// DefaultCountry is sent as the first location's country on every signup
const DefaultCountry = "USA"

// Valid reports whether p is one of the offered plans
func (p SubscriptionPlan) Valid() bool {
	switch p {
	case PlanFree, PlanPro, PlanEnterprise:
		return true
	}
	return false
}

// ParsePlan matches a plan name exactly; the names are what the API expects.
func ParsePlan(s string) (SubscriptionPlan, bool) {
	p := SubscriptionPlan(strings.TrimSpace(s))
	return p, p.Valid()
}

// PlanOffer describes a plan card on the landing page and in the wizard
type PlanOffer struct {
	Name     SubscriptionPlan `json:"name"`
	Price    string           `json:"price"`
	Monthly  bool             `json:"monthly"`
	Features []string         `json:"features"`
}

// Plans returns the plan catalog in display order
func Plans() []PlanOffer {
	return []PlanOffer{
		{
			Name:     PlanFree,
			Price:    "$0",
			Features: []string{"1 Location", "1 User", "10 SMS/month", "Basic Analytics"},
		},
		{
			Name:     PlanPro,
			Price:    "$99",
			Monthly:  true,
			Features: []string{"5 Locations", "10 Users", "500 SMS/month", "Advanced Analytics", "Priority Support"},
		},
		{
			Name:     PlanEnterprise,
			Price:    "Custom",
			Monthly:  true,
			Features: []string{"Unlimited Locations", "Unlimited Users", "Unlimited SMS", "Custom Integrations", "Dedicated Support"},
		},
	}
}

// Industries returns the industries an organization can sign up under
func Industries() []string {
	return []string{
		"Restaurant / Food Service",
		"Medical / Healthcare",
		"Dental",
		"Automotive",
		"Real Estate",
		"Retail",
		"Beauty / Salon",
		"Professional Services",
		"Home Services",
		"Other",
	}
}

// Field names as they appear in forms and JSON payloads
const (
	FieldOrganizationName     = "organizationName"
	FieldIndustry             = "industry"
	FieldContactEmail         = "contactEmail"
	FieldContactName          = "contactName"
	FieldPhoneNumber          = "phoneNumber"
	FieldSubscriptionPlan     = "subscriptionPlan"
	FieldWebsite              = "website"
	FieldDescription          = "description"
	FieldFirstLocationName    = "firstLocationName"
	FieldFirstLocationAddress = "firstLocationAddress"
	FieldFirstLocationCity    = "firstLocationCity"
	FieldFirstLocationState   = "firstLocationState"
	FieldFirstLocationZipCode = "firstLocationZipCode"
)

// OrganizationFields are edited on the first wizard step
var OrganizationFields = []string{
	FieldOrganizationName,
	FieldIndustry,
	FieldContactName,
	FieldContactEmail,
	FieldPhoneNumber,
	FieldWebsite,
	FieldDescription,
}

// LocationFields are edited on the second wizard step
var LocationFields = []string{
	FieldFirstLocationName,
	FieldFirstLocationAddress,
	FieldFirstLocationCity,
	FieldFirstLocationState,
	FieldFirstLocationZipCode,
}

// SignupFormData holds everything collected by one signup wizard
type SignupFormData struct {
	OrganizationName     string           `json:"organizationName"`
	Industry             string           `json:"industry"`
	ContactEmail         string           `json:"contactEmail"`
	ContactName          string           `json:"contactName"`
	PhoneNumber          string           `json:"phoneNumber"`
	SubscriptionPlan     SubscriptionPlan `json:"subscriptionPlan"`
	Website              string           `json:"website"`
	Description          string           `json:"description"`
	FirstLocationName    string           `json:"firstLocationName"`
	FirstLocationAddress string           `json:"firstLocationAddress"`
	FirstLocationCity    string           `json:"firstLocationCity"`
	FirstLocationState   string           `json:"firstLocationState"`
	FirstLocationZipCode string           `json:"firstLocationZipCode"`
}

// NewSignupFormData returns an empty record with the default plan selected
func NewSignupFormData() SignupFormData {
	return SignupFormData{SubscriptionPlan: DefaultPlan}
}

// TextField returns a pointer to the named free-text field, or nil when the name
// is unknown. The plan is not a text field.
func (d *SignupFormData) TextField(name string) *string {
	switch name {
	case FieldOrganizationName:
		return &d.OrganizationName
	case FieldIndustry:
		return &d.Industry
	case FieldContactEmail:
		return &d.ContactEmail
	case FieldContactName:
		return &d.ContactName
	case FieldPhoneNumber:
		return &d.PhoneNumber
	case FieldWebsite:
		return &d.Website
	case FieldDescription:
		return &d.Description
	case FieldFirstLocationName:
		return &d.FirstLocationName
	case FieldFirstLocationAddress:
		return &d.FirstLocationAddress
	case FieldFirstLocationCity:
		return &d.FirstLocationCity
	case FieldFirstLocationState:
		return &d.FirstLocationState
	case FieldFirstLocationZipCode:
		return &d.FirstLocationZipCode
	}
	return nil
}

// MissingRequired lists the required fields that are still empty
func (d SignupFormData) MissingRequired() []string {
	var missing []string
	if d.OrganizationName == "" {
		missing = append(missing, FieldOrganizationName)
	}
	if d.Industry == "" {
		missing = append(missing, FieldIndustry)
	}
	if d.ContactEmail == "" {
		missing = append(missing, FieldContactEmail)
	}
	if d.ContactName == "" {
		missing = append(missing, FieldContactName)
	}
	return missing
}

// OrganizationSignupRequest is the body posted to the signup API. Every key is
// always sent, empty strings included.
type OrganizationSignupRequest struct {
	OrganizationName     string           `json:"organizationName"`
	Industry             string           `json:"industry"`
	Description          string           `json:"description"`
	Website              string           `json:"website"`
	PhoneNumber          string           `json:"phoneNumber"`
	ContactEmail         string           `json:"contactEmail"`
	ContactName          string           `json:"contactName"`
	SubscriptionPlan     SubscriptionPlan `json:"subscriptionPlan"`
	FirstLocationName    string           `json:"firstLocationName"`
	FirstLocationAddress string           `json:"firstLocationAddress"`
	FirstLocationCity    string           `json:"firstLocationCity"`
	FirstLocationState   string           `json:"firstLocationState"`
	FirstLocationZipCode string           `json:"firstLocationZipCode"`
	FirstLocationCountry string           `json:"firstLocationCountry"`
}

// NewOrganizationSignupRequest builds the API body from the wizard data
func NewOrganizationSignupRequest(d SignupFormData) OrganizationSignupRequest {
	return OrganizationSignupRequest{
		OrganizationName:     d.OrganizationName,
		Industry:             d.Industry,
		Description:          d.Description,
		Website:              d.Website,
		PhoneNumber:          d.PhoneNumber,
		ContactEmail:         d.ContactEmail,
		ContactName:          d.ContactName,
		SubscriptionPlan:     d.SubscriptionPlan,
		FirstLocationName:    d.FirstLocationName,
		FirstLocationAddress: d.FirstLocationAddress,
		FirstLocationCity:    d.FirstLocationCity,
		FirstLocationState:   d.FirstLocationState,
		FirstLocationZipCode: d.FirstLocationZipCode,
		FirstLocationCountry: DefaultCountry,
	}
}
