package dto

import (
	"time"

	"retreat/internal/domain"
	"retreat/internal/pricing"
)

type SessionResponse struct {
	TraceID   string      `json:"traceId"`
	Session   SessionView `json:"session"`
	Ignored   []string    `json:"ignoredParams,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// SessionView is the session as the wizard renders it, derived values
// included.
type SessionView struct {
	ID              string                    `json:"id"`
	CurrentStep     int                       `json:"currentStep"`
	BookingType     domain.BookingType        `json:"bookingType"`
	EventStage      int                       `json:"eventStage"`
	SelectedPackage *domain.Package           `json:"selectedPackage"`
	Duration        domain.Duration           `json:"duration"`
	StartDate       *string                   `json:"startDate"`
	EndDate         *string                   `json:"endDate"`
	AddOnCategories []domain.AddOnCategory    `json:"addOnCategories"`
	SelectedRoom    *domain.Room              `json:"selectedRoom"`
	RoomAddOns      []domain.RoomAddOn        `json:"roomAddOns"`
	CustomerInfo    domain.CustomerInfo       `json:"customerInfo"`
	Event           EventView                 `json:"event"`
	Registration    *domain.EventRegistration `json:"eventRegistration"`
	StandardRoom    *domain.Room              `json:"standardRoom"`
	UpgradePrice    float64                   `json:"upgradePrice"`
	SelectedAddOns  []string                  `json:"selectedAddOns"`
	TotalPrice      float64                   `json:"totalPrice"`
	Breakdown       pricing.Breakdown         `json:"breakdown"`
	UpdatedAt       time.Time                 `json:"updatedAt"`
}

type EventView struct {
	EventSpace    string          `json:"eventSpace"`
	EventDate     *string         `json:"eventDate"`
	Attendees     int             `json:"attendees"`
	EventType     string          `json:"eventType"`
	EventDuration int             `json:"eventDuration"`
	EventAddons   []string        `json:"eventAddons"`
	RoomType      domain.RoomType `json:"roomType,omitempty"`
}
