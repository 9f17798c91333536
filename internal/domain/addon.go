package domain

type AddOnItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Selected    bool    `json:"selected"`
	Quantity    int     `json:"quantity"`
}

type AddOnCategory struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Items []AddOnItem `json:"items"`
}

// Clone returns a copy whose Items slice does not alias c.Items.
func (c AddOnCategory) Clone() AddOnCategory {
	items := make([]AddOnItem, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	return c
}

// RoomAddOn is a flat-priced room enhancement with no quantity.
type RoomAddOn struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Icon        string  `json:"icon"`
	Selected    bool    `json:"selected"`
}

func CloneAddOnCategories(categories []AddOnCategory) []AddOnCategory {
	out := make([]AddOnCategory, len(categories))
	for i, c := range categories {
		out[i] = c.Clone()
	}
	return out
}

func CloneRoomAddOns(addOns []RoomAddOn) []RoomAddOn {
	out := make([]RoomAddOn, len(addOns))
	copy(out, addOns)
	return out
}
