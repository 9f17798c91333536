// Package pricing computes booking totals. Totals are always derived from
// the current selections and never stored on the session.
package pricing

import (
	"fmt"
	"math"

	"retreat/internal/domain"
)

type LineKind string

const (
	LineKindPackage     LineKind = "package"
	LineKindAddOn       LineKind = "addon"
	LineKindRoom        LineKind = "room"
	LineKindRoomUpgrade LineKind = "room_upgrade"
	LineKindRoomAddOn   LineKind = "room_addon"
	LineKindVenue       LineKind = "venue"
	LineKindMultiplier  LineKind = "event_type_adjustment"
	LineKindExtraHours  LineKind = "extra_hours"
	LineKindAttendees   LineKind = "attendees"
	LineKindCatering    LineKind = "catering"
	LineKindDecoration  LineKind = "decoration"
	LineKindLiveMusic   LineKind = "live_music"
	LineKindExtendedHrs LineKind = "extended_hours"
	LineKindEventRooms  LineKind = "event_rooms"
	LineKindEventTicket LineKind = "event_ticket"
)

type Line struct {
	Kind        LineKind `json:"kind"`
	RefID       string   `json:"refId,omitempty"`
	Description string   `json:"description"`
	Quantity    float64  `json:"quantity"`
	UnitPrice   float64  `json:"unitPrice"`
	Amount      float64  `json:"amount"`
}

type Breakdown struct {
	Lines []Line  `json:"lines"`
	Total float64 `json:"total"`
}

func (b *Breakdown) add(l Line) {
	b.Lines = append(b.Lines, l)
	b.Total += l.Amount
}

// Input is everything the calculator reads. Registration, when set, is the
// externally purchased event ticket and short-circuits all other pricing.
type Input struct {
	Data         domain.BookingData
	Event        domain.EventState
	Registration *domain.EventRegistration
}

type Calculator struct {
	rooms []domain.Room
	rates Rates
}

// NewCalculator prices against the given room catalog. The room list is
// needed for the standard room and for event room blocks.
func NewCalculator(rooms []domain.Room, rates Rates) *Calculator {
	return &Calculator{rooms: rooms, rates: rates}
}

func (c *Calculator) Rates() Rates {
	return c.rates
}

func (c *Calculator) CalculateTotalPrice(in Input) float64 {
	return c.Breakdown(in).Total
}

// Breakdown runs the pricing rules in order and records every contribution
// as a line. The event type multiplier scales the running total, so lines
// collected before it are scaled as well.
func (c *Calculator) Breakdown(in Input) Breakdown {
	b := Breakdown{Lines: []Line{}}

	if reg := in.Registration; reg != nil {
		b.add(Line{
			Kind:        LineKindEventTicket,
			RefID:       reg.EventID,
			Description: reg.EventName,
			Quantity:    float64(reg.Attendees),
			UnitPrice:   reg.EarlyBirdPrice,
			Amount:      reg.EarlyBirdPrice * float64(reg.Attendees),
		})
		return b
	}

	data := in.Data
	days := float64(data.Duration.Days())

	if p := data.SelectedPackage; p != nil {
		b.add(Line{
			Kind:        LineKindPackage,
			RefID:       p.ID,
			Description: p.Name,
			Quantity:    days,
			UnitPrice:   p.BasePrice,
			Amount:      p.BasePrice * days,
		})
	}

	for _, cat := range data.AddOnCategories {
		for _, item := range cat.Items {
			if !item.Selected {
				continue
			}
			b.add(Line{
				Kind:        LineKindAddOn,
				RefID:       item.ID,
				Description: item.Name,
				Quantity:    float64(item.Quantity),
				UnitPrice:   item.Price,
				Amount:      item.Price * float64(item.Quantity),
			})
		}
	}

	c.addRoom(&b, data, days)

	for _, a := range data.RoomAddOns {
		if !a.Selected {
			continue
		}
		b.add(Line{
			Kind:        LineKindRoomAddOn,
			RefID:       a.ID,
			Description: a.Name,
			Quantity:    1,
			UnitPrice:   a.Price,
			Amount:      a.Price,
		})
	}

	if in.Event.Priceable() {
		c.addEvent(&b, in.Event, days)
	}

	return b
}

func (c *Calculator) addRoom(b *Breakdown, data domain.BookingData, days float64) {
	room := data.SelectedRoom
	if room == nil {
		return
	}

	pkg := data.SelectedPackage
	includesStandard := pkg != nil && pkg.IncludesStandardRoom

	switch {
	case includesStandard && !room.IsStandard:
		standard := c.standardRoom()
		if standard == nil {
			return
		}
		fee := room.Price - standard.Price
		b.add(Line{
			Kind:        LineKindRoomUpgrade,
			RefID:       room.ID,
			Description: fmt.Sprintf("Upgrade to %s", room.Name),
			Quantity:    days,
			UnitPrice:   fee,
			Amount:      fee * days,
		})
	case !includesStandard:
		b.add(Line{
			Kind:        LineKindRoom,
			RefID:       room.ID,
			Description: room.Name,
			Quantity:    days,
			UnitPrice:   room.Price,
			Amount:      room.Price * days,
		})
	}
}

func (c *Calculator) addEvent(b *Breakdown, e domain.EventState, days float64) {
	r := c.rates
	attendees := float64(e.Attendees)

	venue := r.Venue(e.EventSpace)
	if venue != nil {
		b.add(Line{
			Kind:        LineKindVenue,
			RefID:       venue.ID,
			Description: venue.Name,
			Quantity:    1,
			UnitPrice:   venue.BasePrice,
			Amount:      venue.BasePrice,
		})
	}

	if m := r.Multiplier(e.EventType); m != 1 {
		b.add(Line{
			Kind:        LineKindMultiplier,
			RefID:       e.EventType,
			Description: fmt.Sprintf("%s rate x%.2f", e.EventType, m),
			Quantity:    m - 1,
			UnitPrice:   b.Total,
			Amount:      b.Total * (m - 1),
		})
	}

	if extra := e.EventDuration - r.IncludedEventHours; extra > 0 {
		b.add(Line{
			Kind:        LineKindExtraHours,
			Description: "Additional hours",
			Quantity:    float64(extra),
			UnitPrice:   r.ExtraHourRate,
			Amount:      float64(extra) * r.ExtraHourRate,
		})
	}

	b.add(Line{
		Kind:        LineKindAttendees,
		Description: "Attendees",
		Quantity:    attendees,
		UnitPrice:   r.PerAttendeeRate,
		Amount:      attendees * r.PerAttendeeRate,
	})

	if e.HasAddon(AddonCatering) {
		b.add(Line{
			Kind:        LineKindCatering,
			RefID:       AddonCatering,
			Description: "Catering",
			Quantity:    attendees,
			UnitPrice:   r.CateringPerAttendee,
			Amount:      attendees * r.CateringPerAttendee,
		})
	}

	if e.HasAddon(AddonDecoration) {
		b.add(Line{
			Kind:        LineKindDecoration,
			RefID:       AddonDecoration,
			Description: "Decoration",
			Quantity:    attendees,
			UnitPrice:   r.DecorationPerAttendee,
			Amount:      attendees * r.DecorationPerAttendee,
		})
	}

	if e.HasAddon(AddonLiveMusic) {
		b.add(Line{
			Kind:        LineKindLiveMusic,
			RefID:       AddonLiveMusic,
			Description: "Live music",
			Quantity:    1,
			UnitPrice:   r.LiveMusicFlat,
			Amount:      r.LiveMusicFlat,
		})
	}

	if e.HasAddon(AddonExtendedHours) {
		hours := float64(e.EventDuration)
		b.add(Line{
			Kind:        LineKindExtendedHrs,
			RefID:       AddonExtendedHours,
			Description: "Extended hours",
			Quantity:    hours,
			UnitPrice:   r.ExtendedHoursRate,
			Amount:      hours * r.ExtendedHoursRate,
		})
	}

	if e.HasAddon(AddonRoomBooking) {
		if room := c.roomByType(e.RoomType); room != nil {
			count := math.Round(attendees * r.EventRoomShare)
			b.add(Line{
				Kind:        LineKindEventRooms,
				RefID:       room.ID,
				Description: fmt.Sprintf("%s block", room.Name),
				Quantity:    count * days,
				UnitPrice:   room.Price,
				Amount:      room.Price * count * days,
			})
		}
	}
}

func (c *Calculator) standardRoom() *domain.Room {
	for i := range c.rooms {
		if c.rooms[i].IsStandard {
			return &c.rooms[i]
		}
	}
	return nil
}

func (c *Calculator) roomByType(t domain.RoomType) *domain.Room {
	if t == "" {
		return nil
	}
	for i := range c.rooms {
		if c.rooms[i].Type == t {
			return &c.rooms[i]
		}
	}
	return nil
}
