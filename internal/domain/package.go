package domain

// Package is a multi-day wellness program priced per day.
type Package struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Description          string  `json:"description"`
	BasePrice            float64 `json:"basePrice"`
	Type                 string  `json:"type"`
	Image                string  `json:"image,omitempty"`
	IncludesStandardRoom bool    `json:"includesStandardRoom"`
}
