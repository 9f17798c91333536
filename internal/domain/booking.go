package domain

import (
	"strconv"
	"time"
)

// Duration is the stay length in nights. Only the three values below exist.
type Duration string

const (
	Duration4  Duration = "4"
	Duration7  Duration = "7"
	Duration14 Duration = "14"

	DefaultDuration = Duration4
)

func (d Duration) Valid() bool {
	switch d {
	case Duration4, Duration7, Duration14:
		return true
	}
	return false
}

// Days parses the duration. Invalid values count as zero days.
func (d Duration) Days() int {
	n, err := strconv.Atoi(string(d))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// DurationFromNights maps a night count back to a Duration.
func DurationFromNights(nights int) (Duration, bool) {
	d := Duration(strconv.Itoa(nights))
	return d, d.Valid()
}

type BookingType string

const (
	BookingTypeNone    BookingType = ""
	BookingTypePackage BookingType = "package"
	BookingTypeRoom    BookingType = "room"
	BookingTypeEvent   BookingType = "event"
)

func (t BookingType) Valid() bool {
	switch t {
	case BookingTypeNone, BookingTypePackage, BookingTypeRoom, BookingTypeEvent:
		return true
	}
	return false
}

// Wizard steps of the package and room flows.
const (
	StepPackage  = 1
	StepAddOns   = 2
	StepRoom     = 3
	StepCheckout = 4
)

// Stages of the event flow, which does not use the wizard steps.
const (
	EventStageDetails  = 1
	EventStageRooms    = 2
	EventStageCheckout = 3
)

type CustomerInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type BookingData struct {
	SelectedPackage *Package        `json:"selectedPackage"`
	Duration        Duration        `json:"duration"`
	StartDate       *time.Time      `json:"startDate"`
	AddOnCategories []AddOnCategory `json:"addOnCategories"`
	SelectedRoom    *Room           `json:"selectedRoom"`
	RoomAddOns      []RoomAddOn     `json:"roomAddOns"`
	CustomerInfo    CustomerInfo    `json:"customerInfo"`
}

// EventState holds the event booking fields. They are mutually exclusive
// with the package and room selections.
type EventState struct {
	EventSpace    string     `json:"eventSpace"`
	EventDate     *time.Time `json:"eventDate"`
	Attendees     int        `json:"attendees"`
	EventType     string     `json:"eventType"`
	EventDuration int        `json:"eventDuration"`
	EventAddons   []string   `json:"eventAddons"`
	RoomType      RoomType   `json:"roomType,omitempty"`
}

func (e EventState) HasAddon(id string) bool {
	for _, a := range e.EventAddons {
		if a == id {
			return true
		}
	}
	return false
}

// Priceable reports whether enough of the event is filled in to price it.
func (e EventState) Priceable() bool {
	return e.EventSpace != "" && e.EventType != "" && e.Attendees > 0
}

// EventRegistration is the pass-through record of a ticket purchased via
// the "buy ticket" shortcut. When present it overrides all other pricing.
type EventRegistration struct {
	EventID        string  `json:"eventId"`
	EventName      string  `json:"eventName"`
	EarlyBirdPrice float64 `json:"earlyBirdPrice"`
	Attendees      int     `json:"attendees"`
	TotalPrice     float64 `json:"totalPrice"`
}
