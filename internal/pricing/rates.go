package pricing

type Venue struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
	Capacity  int     `json:"capacity"`
}

// Rates are the fixed event pricing tables.
type Rates struct {
	Venues               []Venue
	EventTypeMultipliers map[string]float64

	IncludedEventHours    int
	ExtraHourRate         float64
	PerAttendeeRate       float64
	CateringPerAttendee   float64
	DecorationPerAttendee float64
	LiveMusicFlat         float64
	ExtendedHoursRate     float64
	EventRoomShare        float64
}

// Event add-on ids.
const (
	AddonCatering      = "catering"
	AddonDecoration    = "decoration"
	AddonLiveMusic     = "liveMusic"
	AddonExtendedHours = "extendedHours"
	AddonRoomBooking   = "room-booking"
)

func DefaultRates() Rates {
	return Rates{
		Venues: []Venue{
			{ID: "grand-ballroom", Name: "Grand Ballroom", BasePrice: 2500, Capacity: 300},
			{ID: "garden-pavilion", Name: "Garden Pavilion", BasePrice: 1800, Capacity: 150},
			{ID: "lakeside-terrace", Name: "Lakeside Terrace", BasePrice: 1500, Capacity: 120},
			{ID: "conference-hall", Name: "Conference Hall", BasePrice: 1200, Capacity: 200},
		},
		EventTypeMultipliers: map[string]float64{
			"wedding":   1.2,
			"corporate": 1.0,
			"workshop":  0.9,
			"social":    0.8,
		},
		IncludedEventHours:    4,
		ExtraHourRate:         300,
		PerAttendeeRate:       25,
		CateringPerAttendee:   45,
		DecorationPerAttendee: 15,
		LiveMusicFlat:         800,
		ExtendedHoursRate:     300,
		EventRoomShare:        0.10,
	}
}

func (r Rates) Venue(id string) *Venue {
	for i := range r.Venues {
		if r.Venues[i].ID == id {
			v := r.Venues[i]
			return &v
		}
	}
	return nil
}

// Multiplier for an event type. Unknown types are neutral.
func (r Rates) Multiplier(eventType string) float64 {
	if m, ok := r.EventTypeMultipliers[eventType]; ok {
		return m
	}
	return 1
}
