package catalog

import (
	"fmt"

	"retreat/internal/domain"
	apperrors "retreat/internal/errors"
)

// Catalog is read-only reference data. Sessions never mutate it; they work
// on the copies returned by NewAddOnCategories and NewRoomAddOns.
type Catalog struct {
	Packages        []domain.Package
	Rooms           []domain.Room
	AddOnCategories []domain.AddOnCategory
	RoomAddOns      []domain.RoomAddOn
}

func (c *Catalog) Room(id string) *domain.Room {
	for i := range c.Rooms {
		if c.Rooms[i].ID == id {
			r := c.Rooms[i]
			return &r
		}
	}
	return nil
}

func (c *Catalog) StandardRoom() *domain.Room {
	for i := range c.Rooms {
		if c.Rooms[i].IsStandard {
			r := c.Rooms[i]
			return &r
		}
	}
	return nil
}

// NewAddOnCategories returns a fresh, unselected copy of the add-on catalog.
func (c *Catalog) NewAddOnCategories() []domain.AddOnCategory {
	categories := domain.CloneAddOnCategories(c.AddOnCategories)
	for ci := range categories {
		for ii := range categories[ci].Items {
			categories[ci].Items[ii].Selected = false
			if categories[ci].Items[ii].Quantity < 1 {
				categories[ci].Items[ii].Quantity = 1
			}
		}
	}
	return categories
}

func (c *Catalog) NewRoomAddOns() []domain.RoomAddOn {
	addOns := domain.CloneRoomAddOns(c.RoomAddOns)
	for i := range addOns {
		addOns[i].Selected = false
	}
	return addOns
}

// Validate rejects catalogs the pricing rules cannot work with: anything
// other than exactly one standard room, a non-standard room cheaper than the
// standard one (negative upgrade fee), duplicate ids and negative prices.
func (c *Catalog) Validate() error {
	var details []apperrors.ValidationDetail
	add := func(field, msg string) {
		details = append(details, apperrors.ValidationDetail{Field: field, Message: msg})
	}

	seen := make(map[string]bool)
	for i, p := range c.Packages {
		field := fmt.Sprintf("packages[%d]", i)
		if p.ID == "" {
			add(field+".id", "package id is required")
		}
		if seen[p.ID] {
			add(field+".id", fmt.Sprintf("duplicate package id %q", p.ID))
		}
		seen[p.ID] = true
		if p.BasePrice < 0 {
			add(field+".basePrice", "basePrice must be non-negative")
		}
	}

	seen = make(map[string]bool)
	var standard *domain.Room
	standardCount := 0
	for i, r := range c.Rooms {
		field := fmt.Sprintf("rooms[%d]", i)
		if r.ID == "" {
			add(field+".id", "room id is required")
		}
		if seen[r.ID] {
			add(field+".id", fmt.Sprintf("duplicate room id %q", r.ID))
		}
		seen[r.ID] = true
		if !r.Type.Valid() {
			add(field+".type", fmt.Sprintf("unknown room type %q", r.Type))
		}
		if r.Price < 0 {
			add(field+".price", "price must be non-negative")
		}
		if r.IsStandard {
			standardCount++
			if standard == nil {
				room := r
				standard = &room
			}
		}
	}
	if standardCount != 1 {
		add("rooms", fmt.Sprintf("exactly one standard room is required, found %d", standardCount))
	}
	if standard != nil {
		for i, r := range c.Rooms {
			if !r.IsStandard && r.Price < standard.Price {
				add(fmt.Sprintf("rooms[%d].price", i),
					fmt.Sprintf("room %q is priced below the standard room %q", r.ID, standard.ID))
			}
		}
	}

	seen = make(map[string]bool)
	for ci, cat := range c.AddOnCategories {
		field := fmt.Sprintf("addOnCategories[%d]", ci)
		if seen[cat.ID] {
			add(field+".id", fmt.Sprintf("duplicate add-on category id %q", cat.ID))
		}
		seen[cat.ID] = true
		items := make(map[string]bool)
		for ii, item := range cat.Items {
			if items[item.ID] {
				add(fmt.Sprintf("%s.items[%d].id", field, ii), fmt.Sprintf("duplicate add-on id %q", item.ID))
			}
			items[item.ID] = true
			if item.Price < 0 {
				add(fmt.Sprintf("%s.items[%d].price", field, ii), "price must be non-negative")
			}
		}
	}

	seen = make(map[string]bool)
	for i, a := range c.RoomAddOns {
		if seen[a.ID] {
			add(fmt.Sprintf("roomAddOns[%d].id", i), fmt.Sprintf("duplicate room add-on id %q", a.ID))
		}
		seen[a.ID] = true
		if a.Price < 0 {
			add(fmt.Sprintf("roomAddOns[%d].price", i), "price must be non-negative")
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("invalid catalog", details...)
	}
	return nil
}
