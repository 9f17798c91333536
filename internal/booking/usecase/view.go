package usecase

import (
	"time"

	"retreat/internal/booking"
	"retreat/internal/domain"
	"retreat/internal/dto"
)

// NewSessionView snapshots s with its derived values. It must run while the
// store holds the session lock; the result shares no memory with s.
func NewSessionView(s *booking.Session) dto.SessionView {
	view := dto.SessionView{
		ID:              s.ID,
		CurrentStep:     s.CurrentStep,
		BookingType:     s.BookingType,
		EventStage:      s.EventStage,
		SelectedPackage: clonePtr(s.Data.SelectedPackage),
		Duration:        s.Data.Duration,
		StartDate:       formatDate(s.Data.StartDate),
		EndDate:         formatDate(s.EndDate()),
		AddOnCategories: domain.CloneAddOnCategories(s.Data.AddOnCategories),
		SelectedRoom:    clonePtr(s.Data.SelectedRoom),
		RoomAddOns:      domain.CloneRoomAddOns(s.Data.RoomAddOns),
		CustomerInfo:    s.Data.CustomerInfo,
		Event: dto.EventView{
			EventSpace:    s.Event.EventSpace,
			EventDate:     formatDate(s.Event.EventDate),
			Attendees:     s.Event.Attendees,
			EventType:     s.Event.EventType,
			EventDuration: s.Event.EventDuration,
			EventAddons:   append([]string{}, s.Event.EventAddons...),
			RoomType:      s.Event.RoomType,
		},
		Registration:   clonePtr(s.Registration),
		StandardRoom:   s.StandardRoom(),
		SelectedAddOns: s.SelectedAddOns(),
		Breakdown:      s.Breakdown(),
		UpdatedAt:      s.UpdatedAt,
	}
	view.TotalPrice = view.Breakdown.Total
	if s.Data.SelectedRoom != nil {
		view.UpgradePrice = s.UpgradePrice(s.Data.SelectedRoom.ID)
	}
	return view
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(booking.DateLayout)
	return &v
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
