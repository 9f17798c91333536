package domain

type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDeluxe RoomType = "deluxe"
	RoomTypeSuite  RoomType = "suite"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDeluxe, RoomTypeSuite:
		return true
	}
	return false
}

// Room is priced per night. Exactly one catalog room is the standard room.
type Room struct {
	ID          string   `json:"id"`
	Type        RoomType `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	IsStandard  bool     `json:"isStandard"`
}
