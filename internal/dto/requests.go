package dto

type SelectPackageRequest struct {
	PackageID string `json:"packageId" validate:"required"`
}

type SetDatesRequest struct {
	StartDate string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	Duration  string `json:"duration" validate:"required,oneof=4 7 14"`
}

type SelectRoomRequest struct {
	RoomID string `json:"roomId" validate:"required"`
}

// UpdateQuantityRequest takes any integer; values below 1 are stored as 1.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type UpdateEventRequest struct {
	EventSpace    string   `json:"eventSpace"`
	EventDate     string   `json:"eventDate" validate:"omitempty,datetime=2006-01-02"`
	Attendees     int      `json:"attendees" validate:"gte=0,lte=1000"`
	EventType     string   `json:"eventType"`
	EventDuration int      `json:"eventDuration" validate:"gte=0,lte=24"`
	EventAddons   []string `json:"eventAddons" validate:"dive,oneof=catering decoration liveMusic extendedHours room-booking"`
	RoomType      string   `json:"roomType" validate:"omitempty,oneof=single deluxe suite"`
}

type EventRegistrationRequest struct {
	EventID        string  `json:"eventId" validate:"required"`
	EventName      string  `json:"eventName"`
	EarlyBirdPrice float64 `json:"earlyBirdPrice" validate:"gte=0"`
	Attendees      int     `json:"attendees" validate:"gte=1"`
	TotalPrice     float64 `json:"totalPrice" validate:"gte=0"`
}

type CustomerInfoRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=150"`
	Phone     string `json:"phone" validate:"omitempty,min=6,max=30"`
}

type BookingTypeRequest struct {
	BookingType string `json:"bookingType" validate:"omitempty,oneof=package room event"`
}

type GoToStepRequest struct {
	Step int `json:"step" validate:"min=1,max=4"`
}
