package domain

import "time"

// Booking is a checked-out session as persisted by the booking store.
type Booking struct {
	ID          uint
	Reference   string
	BookingType BookingType
	PackageID   *string
	RoomID      *string
	EventSpace  *string
	StartDate   *time.Time
	EndDate     *time.Time
	Duration    Duration
	FirstName   string
	LastName    string
	Email       string
	Phone       *string
	Status      string
	TotalPrice  float64
	CreatedAt   time.Time
}

type BookingItem struct {
	ID          uint
	BookingID   uint
	Kind        string
	RefID       string
	Description string
	Quantity    float64
	UnitPrice   float64
	Amount      float64
}

const (
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCanceled  = "CANCELED"
)
