package dto

import "time"

type CheckoutResult struct {
	BookingID  uint
	Reference  string
	Status     string
	TotalPrice float64
	Items      []BookingItemView
}

type CheckoutResponse struct {
	TraceID    string            `json:"traceId"`
	BookingID  uint              `json:"bookingId"`
	Reference  string            `json:"reference"`
	Status     string            `json:"status"`
	TotalPrice float64           `json:"totalPrice"`
	Items      []BookingItemView `json:"items"`
	Timestamp  time.Time         `json:"timestamp"`
}

type BookingResponse struct {
	TraceID     string            `json:"traceId"`
	Reference   string            `json:"reference"`
	BookingType string            `json:"bookingType"`
	Status      string            `json:"status"`
	PackageID   *string           `json:"packageId"`
	RoomID      *string           `json:"roomId"`
	EventSpace  *string           `json:"eventSpace"`
	StartDate   *string           `json:"startDate"`
	EndDate     *string           `json:"endDate"`
	Duration    string            `json:"duration"`
	Customer    BookingCustomer   `json:"customer"`
	TotalPrice  float64           `json:"totalPrice"`
	Items       []BookingItemView `json:"items"`
	CreatedAt   time.Time         `json:"createdAt"`
}

type BookingCustomer struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
}

type BookingItemView struct {
	Kind        string  `json:"kind"`
	RefID       string  `json:"refId,omitempty"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
}
