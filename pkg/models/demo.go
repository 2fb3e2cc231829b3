package models

import "strings"

// Represents the data coming from the "Book a Demo" form
type DemoBookingData struct {
	Name          string `json:"name" form:"name" binding:"required"`
	Email         string `json:"email" form:"email" binding:"required"`
	Phone         string `json:"phone" form:"phone" binding:"required"`
	Company       string `json:"company" form:"company" binding:"required"`
	Industry      string `json:"industry" form:"industry" binding:"required"`
	Locations     string `json:"locations" form:"locations"`
	PreferredDate string `json:"preferredDate" form:"preferredDate"`
	PreferredTime string `json:"preferredTime" form:"preferredTime"`
	Message       string `json:"message" form:"message"`
}

// DefaultLocations is assumed when the form leaves the location count blank
const DefaultLocations = "1"

// LocationRanges are the choices for how many locations a business runs
var LocationRanges = []string{"1", "2-5", "6-10", "11+"}

// NormalizedLocations returns Locations, falling back to the default for blank
// or unknown values.
func (d DemoBookingData) NormalizedLocations() string {
	v := strings.TrimSpace(d.Locations)
	for _, r := range LocationRanges {
		if v == r {
			return v
		}
	}
	return DefaultLocations
}

// MissingRequired lists required demo fields that are empty
func (d DemoBookingData) MissingRequired() []string {
	var missing []string
	for _, f := range []struct {
		name, value string
	}{
		{"name", d.Name},
		{"email", d.Email},
		{"phone", d.Phone},
		{"company", d.Company},
		{"industry", d.Industry},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// DemoIndustry is one option of the demo form's industry select
type DemoIndustry struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

// DemoIndustries returns the industry options of the demo form
func DemoIndustries() []DemoIndustry {
	return []DemoIndustry{
		{"restaurant", "Restaurant / Food Service"},
		{"medical", "Medical / Healthcare"},
		{"dental", "Dental"},
		{"automotive", "Automotive"},
		{"real-estate", "Real Estate"},
		{"retail", "Retail"},
		{"beauty", "Beauty / Salon"},
		{"professional", "Professional Services"},
		{"home-services", "Home Services"},
		{"other", "Other"},
	}
}

// DemoBookingResult is returned once a demo request has been handled
type DemoBookingResult struct {
	Email     string `json:"email"`
	Duplicate bool   `json:"duplicate"`
	Simulated bool   `json:"simulated"`
}
