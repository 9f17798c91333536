// Package booking is the per-visitor booking state container. A Session owns
// the wizard position, the active booking type and every selection, and is
// changed only through its methods so that the cross-flow rules hold.
package booking

import (
	"fmt"
	"time"

	"retreat/internal/catalog"
	"retreat/internal/domain"
	apperrors "retreat/internal/errors"
	"retreat/internal/pricing"
	"retreat/internal/selection"
)

type Session struct {
	ID           string
	CurrentStep  int
	BookingType  domain.BookingType
	EventStage   int
	Data         domain.BookingData
	Event        domain.EventState
	Registration *domain.EventRegistration
	CreatedAt    time.Time
	UpdatedAt    time.Time

	catalog *catalog.Catalog
	calc    *pricing.Calculator
}

func NewSession(id string, cat *catalog.Catalog, calc *pricing.Calculator, now time.Time) *Session {
	return &Session{
		ID:          id,
		CurrentStep: domain.StepPackage,
		BookingType: domain.BookingTypeNone,
		EventStage:  domain.EventStageDetails,
		Data:        initialData(cat),
		CreatedAt:   now,
		UpdatedAt:   now,
		catalog:     cat,
		calc:        calc,
	}
}

func initialData(cat *catalog.Catalog) domain.BookingData {
	return domain.BookingData{
		Duration:        domain.DefaultDuration,
		AddOnCategories: cat.NewAddOnCategories(),
		RoomAddOns:      cat.NewRoomAddOns(),
	}
}

func (s *Session) SelectPackage(packageID string) error {
	sel := selection.SelectPackage(s.catalog.Packages, packageID, s.catalog.StandardRoom(), s.Data.SelectedRoom)
	if sel.Package == nil {
		return apperrors.NewNotFoundError(fmt.Sprintf("package %q not found", packageID))
	}

	if s.BookingType == domain.BookingTypeEvent {
		s.clearEvent()
	}

	s.Data.SelectedPackage = sel.Package
	s.Data.SelectedRoom = sel.Room
	s.BookingType = domain.BookingTypePackage
	return nil
}

func (s *Session) ResetPackage() {
	s.Data = selection.ResetPackage(s.Data)
	if s.BookingType == domain.BookingTypePackage {
		s.BookingType = domain.BookingTypeNone
	}
}

// SetDates sets the stay start and length. A nil start clears the date.
func (s *Session) SetDates(start *time.Time, d domain.Duration) error {
	if !d.Valid() {
		return apperrors.NewValidationError("invalid duration", apperrors.ValidationDetail{
			Field:   "duration",
			Message: "duration must be one of 4, 7 or 14",
		})
	}
	if start != nil {
		day := truncateDay(*start)
		start = &day
	}
	s.Data.StartDate = start
	s.Data.Duration = d
	return nil
}

// SelectRoom picks a room. Inside the package flow the room belongs to the
// package booking; anywhere else it starts a room-only booking.
func (s *Session) SelectRoom(roomID string) error {
	room := selection.SelectRoom(s.catalog.Rooms, roomID)
	if room == nil {
		return apperrors.NewNotFoundError(fmt.Sprintf("room %q not found", roomID))
	}

	if s.BookingType == domain.BookingTypeEvent {
		s.clearEvent()
	}

	s.Data.SelectedRoom = room
	if s.BookingType != domain.BookingTypePackage {
		s.BookingType = domain.BookingTypeRoom
	}
	return nil
}

func (s *Session) ResetRoom() {
	s.Data = selection.ResetRoom(s.Data)
	if s.BookingType == domain.BookingTypeRoom {
		s.BookingType = domain.BookingTypeNone
	}
}

func (s *Session) ToggleAddOn(categoryID, itemID string) error {
	if !s.hasAddOn(categoryID, itemID) {
		return apperrors.NewNotFoundError(fmt.Sprintf("add-on %q in category %q not found", itemID, categoryID))
	}
	d := s.Data.Duration
	s.Data.AddOnCategories = selection.ToggleAddOn(s.Data.AddOnCategories, categoryID, itemID, func() int {
		return selection.DefaultAddOnQuantity(d)
	})
	return nil
}

func (s *Session) RemoveAddOn(categoryID, itemID string) error {
	if !s.hasAddOn(categoryID, itemID) {
		return apperrors.NewNotFoundError(fmt.Sprintf("add-on %q in category %q not found", itemID, categoryID))
	}
	s.Data.AddOnCategories = selection.RemoveAddOn(s.Data.AddOnCategories, categoryID, itemID)
	return nil
}

func (s *Session) UpdateAddOnQuantity(categoryID, itemID string, quantity int) error {
	if !s.hasAddOn(categoryID, itemID) {
		return apperrors.NewNotFoundError(fmt.Sprintf("add-on %q in category %q not found", itemID, categoryID))
	}
	s.Data.AddOnCategories = selection.UpdateAddOnQuantity(s.Data.AddOnCategories, categoryID, itemID, quantity)
	return nil
}

func (s *Session) ToggleRoomAddOn(addOnID string) error {
	if !s.hasRoomAddOn(addOnID) {
		return apperrors.NewNotFoundError(fmt.Sprintf("room add-on %q not found", addOnID))
	}
	s.Data.RoomAddOns = selection.ToggleRoomAddOn(s.Data.RoomAddOns, addOnID)
	return nil
}

func (s *Session) RemoveRoomAddOn(addOnID string) error {
	if !s.hasRoomAddOn(addOnID) {
		return apperrors.NewNotFoundError(fmt.Sprintf("room add-on %q not found", addOnID))
	}
	s.Data.RoomAddOns = selection.RemoveRoomAddOn(s.Data.RoomAddOns, addOnID)
	return nil
}

// SetEventSpace moves the session into the event flow, dropping package
// and room selections.
func (s *Session) SetEventSpace(space string) {
	s.enterEventFlow()
	s.Event.EventSpace = space
}

// UpdateEvent replaces the event details. A non-empty space enters the
// event flow the same way SetEventSpace does.
func (s *Session) UpdateEvent(e domain.EventState) {
	if e.EventSpace != "" {
		s.enterEventFlow()
	}
	if e.EventAddons == nil {
		e.EventAddons = []string{}
	}
	if e.EventDate != nil {
		day := truncateDay(*e.EventDate)
		e.EventDate = &day
	}
	s.Event = e
}

// SetEventRegistration stores a ticket bought through the direct shortcut
// and jumps the event flow to checkout.
func (s *Session) SetEventRegistration(reg domain.EventRegistration) {
	s.enterEventFlow()
	s.Registration = &reg
	s.EventStage = domain.EventStageCheckout
	s.CurrentStep = domain.StepCheckout
}

func (s *Session) ClearEventRegistration() {
	s.Registration = nil
	if s.EventStage == domain.EventStageCheckout {
		s.EventStage = domain.EventStageDetails
	}
}

func (s *Session) UpdateCustomerInfo(info domain.CustomerInfo) {
	s.Data.CustomerInfo = info
}

// ResetAllSelections returns the session to its initial state. Customer
// details are the only thing that survive.
func (s *Session) ResetAllSelections() {
	customer := s.Data.CustomerInfo
	s.Data = initialData(s.catalog)
	s.Data.CustomerInfo = customer
	s.Event = domain.EventState{}
	s.Registration = nil
	s.BookingType = domain.BookingTypeNone
	s.CurrentStep = domain.StepPackage
	s.EventStage = domain.EventStageDetails
}

// EndDate is the checkout day, or nil without a start date.
func (s *Session) EndDate() *time.Time {
	if s.Data.StartDate == nil {
		return nil
	}
	end := s.Data.StartDate.AddDate(0, 0, s.Data.Duration.Days())
	return &end
}

func (s *Session) StandardRoom() *domain.Room {
	return selection.GetStandardRoom(s.catalog.Rooms)
}

func (s *Session) UpgradePrice(roomID string) float64 {
	return selection.GetRoomUpgradePrice(s.catalog.Rooms, roomID)
}

func (s *Session) SelectedAddOns() []string {
	return selection.GetSelectedAddOns(s.Data.AddOnCategories, s.Data.RoomAddOns)
}

func (s *Session) pricingInput() pricing.Input {
	return pricing.Input{Data: s.Data, Event: s.Event, Registration: s.Registration}
}

func (s *Session) TotalPrice() float64 {
	return s.calc.CalculateTotalPrice(s.pricingInput())
}

func (s *Session) Breakdown() pricing.Breakdown {
	return s.calc.Breakdown(s.pricingInput())
}

func (s *Session) hasAddOn(categoryID, itemID string) bool {
	for _, c := range s.Data.AddOnCategories {
		if c.ID != categoryID {
			continue
		}
		for _, item := range c.Items {
			if item.ID == itemID {
				return true
			}
		}
	}
	return false
}

func (s *Session) hasRoomAddOn(addOnID string) bool {
	for _, a := range s.Data.RoomAddOns {
		if a.ID == addOnID {
			return true
		}
	}
	return false
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
