package domain

import (
	"time"

	"github.com/google/uuid"
)

// FoodUnitPrice is the flat per-unit price charged for every food item.
const FoodUnitPrice int64 = 200

type Customer struct {
	Name    string
	Contact string
}

type FoodItem struct {
	Item      string
	Quantity  int
	UnitPrice int64
}

func (f FoodItem) LineTotal() int64 {
	return int64(f.Quantity) * f.UnitPrice
}

// Booking links one customer to one room plus its accumulated food orders.
// The room is referenced by number and category; the canonical Room (and its
// Booked flag) lives in the Inventory.
type Booking struct {
	ID         uuid.UUID
	RoomNumber int
	Category   RoomCategory
	Customer   Customer
	FoodOrders []FoodItem
	CreatedAt  time.Time
}

// AddFood appends one order line, preserving insertion order.
func (b *Booking) AddFood(item FoodItem) {
	b.FoodOrders = append(b.FoodOrders, item)
}

func (b *Booking) RoomCharge() int64 {
	return b.Category.NightlyRate()
}

// Ledger maps a room number to its active booking. It is the unit of
// persistence: the whole map is saved and restored as one snapshot.
type Ledger map[int]*Booking
