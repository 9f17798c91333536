package booking

import (
	"fmt"

	"retreat/internal/domain"
	apperrors "retreat/internal/errors"
	"retreat/internal/selection"
)

// SetBookingType switches the active flow explicitly, clearing whatever the
// flow being left had selected.
func (s *Session) SetBookingType(t domain.BookingType) error {
	if !t.Valid() {
		return apperrors.NewValidationError("invalid booking type", apperrors.ValidationDetail{
			Field:   "bookingType",
			Message: "bookingType must be one of package, room, event or empty",
		})
	}
	if t == s.BookingType {
		return nil
	}

	s.CurrentStep = domain.StepPackage
	if t == domain.BookingTypeEvent {
		s.enterEventFlow()
		return nil
	}

	switch s.BookingType {
	case domain.BookingTypePackage:
		s.leavePackageFlow()
	case domain.BookingTypeRoom:
		s.Data = selection.ResetRoom(s.Data)
	case domain.BookingTypeEvent:
		s.clearEvent()
	}

	s.BookingType = t
	return nil
}

// leavePackageFlow drops the package. The room goes with it only when it is
// the standard room the package bundled.
func (s *Session) leavePackageFlow() {
	pkg := s.Data.SelectedPackage
	room := s.Data.SelectedRoom
	if pkg != nil && pkg.IncludesStandardRoom && room != nil && room.IsStandard {
		s.Data.SelectedRoom = nil
	}
	s.Data = selection.ResetPackage(s.Data)
}

func (s *Session) enterEventFlow() {
	if s.BookingType == domain.BookingTypeEvent {
		return
	}
	s.Data = selection.ResetRoom(s.Data)
	s.Data = selection.ResetPackage(s.Data)
	s.BookingType = domain.BookingTypeEvent
	s.EventStage = domain.EventStageDetails
}

func (s *Session) clearEvent() {
	s.Event = domain.EventState{}
	s.Registration = nil
	s.EventStage = domain.EventStageDetails
	if s.BookingType == domain.BookingTypeEvent {
		s.BookingType = domain.BookingTypeNone
	}
}

// GoToNextStep advances the wizard. The event flow has no add-on or room
// steps and goes straight to checkout.
func (s *Session) GoToNextStep() error {
	if s.BookingType == domain.BookingTypeEvent {
		s.CurrentStep = domain.StepCheckout
		return nil
	}
	if s.CurrentStep >= domain.StepCheckout {
		return nil
	}
	next := s.CurrentStep + 1
	if err := s.CanEnterStep(next); err != nil {
		return err
	}
	s.CurrentStep = next
	return nil
}

func (s *Session) GoToPreviousStep() {
	if s.CurrentStep > domain.StepPackage {
		s.CurrentStep--
	}
}

// GoToStep jumps to step. Going back is always allowed; going forward checks
// every step in between. In the event flow any forward jump lands on
// checkout, as GoToNextStep does.
func (s *Session) GoToStep(step int) error {
	if step < domain.StepPackage || step > domain.StepCheckout {
		return apperrors.NewValidationError("invalid step", apperrors.ValidationDetail{
			Field:   "step",
			Message: fmt.Sprintf("step must be between %d and %d", domain.StepPackage, domain.StepCheckout),
		})
	}
	if s.BookingType == domain.BookingTypeEvent && step > s.CurrentStep {
		s.CurrentStep = domain.StepCheckout
		return nil
	}
	for next := s.CurrentStep + 1; next <= step; next++ {
		if err := s.CanEnterStep(next); err != nil {
			return err
		}
	}
	s.CurrentStep = step
	return nil
}

// CanEnterStep reports what is missing before step can be shown.
func (s *Session) CanEnterStep(step int) error {
	if step <= domain.StepPackage {
		return nil
	}

	var details []apperrors.ValidationDetail
	needsPackage := s.BookingType != domain.BookingTypeRoom && s.BookingType != domain.BookingTypeEvent

	if step >= domain.StepAddOns && needsPackage && s.Data.SelectedPackage == nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "selectedPackage",
			Message: "select a package before continuing",
		})
	}
	if step >= domain.StepCheckout && s.BookingType != domain.BookingTypeEvent && s.Data.SelectedRoom == nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "selectedRoom",
			Message: "select a room before checkout",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError(fmt.Sprintf("cannot enter step %d", step), details...)
	}
	return nil
}

// NextEventStage advances details -> rooms -> checkout. A ticket bought via
// the shortcut is already at checkout.
func (s *Session) NextEventStage() error {
	if s.BookingType != domain.BookingTypeEvent {
		return apperrors.NewConflictError("session is not in the event flow")
	}
	if s.Registration != nil {
		s.EventStage = domain.EventStageCheckout
		return nil
	}

	switch s.EventStage {
	case domain.EventStageDetails:
		if err := s.validateEventDetails(); err != nil {
			return err
		}
		s.EventStage = domain.EventStageRooms
	case domain.EventStageRooms:
		s.EventStage = domain.EventStageCheckout
	}
	return nil
}

func (s *Session) validateEventDetails() error {
	var details []apperrors.ValidationDetail
	e := s.Event

	if e.EventSpace == "" {
		details = append(details, apperrors.ValidationDetail{Field: "eventSpace", Message: "choose a venue"})
	}
	if e.EventDate == nil {
		details = append(details, apperrors.ValidationDetail{Field: "eventDate", Message: "choose an event date"})
	}
	if e.Attendees <= 0 {
		details = append(details, apperrors.ValidationDetail{Field: "attendees", Message: "attendees must be at least 1"})
	}
	if e.EventType == "" {
		details = append(details, apperrors.ValidationDetail{Field: "eventType", Message: "choose an event type"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("event details incomplete", details...)
	}
	return nil
}
