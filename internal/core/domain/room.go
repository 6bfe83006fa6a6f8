package domain

type RoomCategory string

const (
	CategoryLuxury RoomCategory = "LUXURY"
	CategoryDeluxe RoomCategory = "DELUXE"
)

// NightlyRate returns the fixed rate for the category in whole currency units.
func (c RoomCategory) NightlyRate() int64 {
	switch c {
	case CategoryLuxury:
		return 5000
	case CategoryDeluxe:
		return 3000
	}
	return 0
}

func (c RoomCategory) Label() string {
	switch c {
	case CategoryLuxury:
		return "Luxury Room"
	case CategoryDeluxe:
		return "Deluxe Room"
	}
	return "Unknown Room"
}

func (c RoomCategory) IsValid() bool {
	return c == CategoryLuxury || c == CategoryDeluxe
}

type Room struct {
	Number   int
	Category RoomCategory
	Booked   bool
}

func (r *Room) NightlyRate() int64 {
	return r.Category.NightlyRate()
}

// Inventory is the fixed room catalog. Rooms are created once and never removed;
// only the Booked flag changes after initialization.
type Inventory struct {
	rooms []*Room
}

func NewInventory() *Inventory {
	return &Inventory{}
}

// Initialize populates the catalog: rooms 1-5 are Luxury, 6-10 are Deluxe.
// Calling it again on a populated inventory is a no-op.
func (inv *Inventory) Initialize() {
	if len(inv.rooms) > 0 {
		return
	}

	for i := 1; i <= 5; i++ {
		inv.rooms = append(inv.rooms, &Room{Number: i, Category: CategoryLuxury})
	}

	for i := 6; i <= 10; i++ {
		inv.rooms = append(inv.rooms, &Room{Number: i, Category: CategoryDeluxe})
	}
}

func (inv *Inventory) Find(roomNumber int) (*Room, error) {
	for _, room := range inv.rooms {
		if room.Number == roomNumber {
			return room, nil
		}
	}

	return nil, ErrRoomNotFound
}

func (inv *Inventory) Len() int {
	return len(inv.rooms)
}
