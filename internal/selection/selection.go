// Package selection holds the state-transition rules for package, room and
// add-on choices. Every function returns new values and leaves its inputs
// untouched; categories and items that are not affected keep sharing their
// backing storage with the input.
package selection

import "retreat/internal/domain"

type PackageSelection struct {
	Package *domain.Package
	Room    *domain.Room
}

// SelectPackage looks up packageID and decides the room that goes with it.
// A package that includes the standard room swaps it in when the current
// room is empty or already the standard room; any other room is kept.
func SelectPackage(packages []domain.Package, packageID string, standardRoom, currentRoom *domain.Room) PackageSelection {
	var pkg *domain.Package
	for i := range packages {
		if packages[i].ID == packageID {
			p := packages[i]
			pkg = &p
			break
		}
	}

	room := currentRoom
	if pkg != nil && pkg.IncludesStandardRoom && standardRoom != nil {
		if currentRoom == nil || currentRoom.ID == standardRoom.ID {
			r := *standardRoom
			room = &r
		}
	}

	return PackageSelection{Package: pkg, Room: room}
}

// ResetPackage clears the package and its dates. Room and add-ons stay.
func ResetPackage(data domain.BookingData) domain.BookingData {
	data.SelectedPackage = nil
	data.StartDate = nil
	data.Duration = domain.DefaultDuration
	return data
}

func SelectRoom(rooms []domain.Room, roomID string) *domain.Room {
	for i := range rooms {
		if rooms[i].ID == roomID {
			r := rooms[i]
			return &r
		}
	}
	return nil
}

// ResetRoom clears the room and deselects every room add-on.
func ResetRoom(data domain.BookingData) domain.BookingData {
	addOns := make([]domain.RoomAddOn, len(data.RoomAddOns))
	for i, a := range data.RoomAddOns {
		a.Selected = false
		addOns[i] = a
	}
	data.SelectedRoom = nil
	data.RoomAddOns = addOns
	return data
}

// DefaultAddOnQuantity is the quantity an add-on gets when switched on:
// one unit for every two nights.
func DefaultAddOnQuantity(d domain.Duration) int {
	return d.Days() / 2
}

func updateItem(categories []domain.AddOnCategory, categoryID, itemID string, fn func(domain.AddOnItem) domain.AddOnItem) []domain.AddOnCategory {
	out := make([]domain.AddOnCategory, len(categories))
	copy(out, categories)
	for ci := range out {
		if out[ci].ID != categoryID {
			continue
		}
		items := make([]domain.AddOnItem, len(out[ci].Items))
		copy(items, out[ci].Items)
		for ii := range items {
			if items[ii].ID == itemID {
				items[ii] = fn(items[ii])
			}
		}
		out[ci].Items = items
	}
	return out
}

// ToggleAddOn flips the item's selection. Switching it on resets the
// quantity to defaultQuantity(); switching it off leaves the quantity alone.
func ToggleAddOn(categories []domain.AddOnCategory, categoryID, itemID string, defaultQuantity func() int) []domain.AddOnCategory {
	return updateItem(categories, categoryID, itemID, func(item domain.AddOnItem) domain.AddOnItem {
		item.Selected = !item.Selected
		if item.Selected && defaultQuantity != nil {
			item.Quantity = defaultQuantity()
		}
		return item
	})
}

func RemoveAddOn(categories []domain.AddOnCategory, categoryID, itemID string) []domain.AddOnCategory {
	return updateItem(categories, categoryID, itemID, func(item domain.AddOnItem) domain.AddOnItem {
		item.Selected = false
		return item
	})
}

// UpdateAddOnQuantity stores quantity, clamped to a minimum of 1.
func UpdateAddOnQuantity(categories []domain.AddOnCategory, categoryID, itemID string, quantity int) []domain.AddOnCategory {
	if quantity < 1 {
		quantity = 1
	}
	return updateItem(categories, categoryID, itemID, func(item domain.AddOnItem) domain.AddOnItem {
		item.Quantity = quantity
		return item
	})
}

func updateRoomAddOn(addOns []domain.RoomAddOn, addOnID string, fn func(domain.RoomAddOn) domain.RoomAddOn) []domain.RoomAddOn {
	out := make([]domain.RoomAddOn, len(addOns))
	copy(out, addOns)
	for i := range out {
		if out[i].ID == addOnID {
			out[i] = fn(out[i])
		}
	}
	return out
}

func ToggleRoomAddOn(addOns []domain.RoomAddOn, addOnID string) []domain.RoomAddOn {
	return updateRoomAddOn(addOns, addOnID, func(a domain.RoomAddOn) domain.RoomAddOn {
		a.Selected = !a.Selected
		return a
	})
}

func RemoveRoomAddOn(addOns []domain.RoomAddOn, addOnID string) []domain.RoomAddOn {
	return updateRoomAddOn(addOns, addOnID, func(a domain.RoomAddOn) domain.RoomAddOn {
		a.Selected = false
		return a
	})
}

func GetStandardRoom(rooms []domain.Room) *domain.Room {
	for i := range rooms {
		if rooms[i].IsStandard {
			r := rooms[i]
			return &r
		}
	}
	return nil
}

// GetRoomUpgradePrice is the nightly delta over the standard room. Unknown
// and standard rooms cost nothing extra. The result is not clamped.
func GetRoomUpgradePrice(rooms []domain.Room, roomID string) float64 {
	room := SelectRoom(rooms, roomID)
	if room == nil || room.IsStandard {
		return 0
	}
	standard := GetStandardRoom(rooms)
	if standard == nil {
		return 0
	}
	return room.Price - standard.Price
}

// GetSelectedAddOns lists selected add-on ids followed by selected room
// add-on ids, both in catalog order.
func GetSelectedAddOns(categories []domain.AddOnCategory, roomAddOns []domain.RoomAddOn) []string {
	ids := []string{}
	for _, c := range categories {
		for _, item := range c.Items {
			if item.Selected {
				ids = append(ids, item.ID)
			}
		}
	}
	for _, a := range roomAddOns {
		if a.Selected {
			ids = append(ids, a.ID)
		}
	}
	return ids
}
