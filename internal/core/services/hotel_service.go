package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/avelik/hotel_ledger/internal/core/domain"
	"github.com/avelik/hotel_ledger/internal/core/ports"
)

type BookRoomRequest struct {
	RoomNumber      int    `json:"room_number"`
	CustomerName    string `json:"customer_name"`
	CustomerContact string `json:"customer_contact"`
}

type BookRoomResponse struct {
	BookingID   string `json:"booking_id"`
	RoomNumber  int    `json:"room_number"`
	RoomType    string `json:"room_type"`
	NightlyRate int64  `json:"nightly_rate"`
}

type BillResponse struct {
	RoomNumber   int               `json:"room_number"`
	CustomerName string            `json:"customer_name"`
	RoomType     string            `json:"room_type"`
	RoomCharge   int64             `json:"room_charge"`
	FoodLines    []domain.FoodLine `json:"food_lines"`
	FoodTotal    int64             `json:"food_total"`
	GrandTotal   int64             `json:"grand_total"`
}

// HotelService owns the booking ledger and the room inventory. It is the
// single execution context for every operation; callers drive it one request
// at a time, so no internal locking is needed.
type HotelService struct {
	inventory *domain.Inventory
	ledger    domain.Ledger
	repo      ports.LedgerRepository
}

func NewHotelService(repo ports.LedgerRepository) *HotelService {
	return &HotelService{
		inventory: domain.NewInventory(),
		ledger:    domain.Ledger{},
		repo:      repo,
	}
}

// InitializeInventory populates the fixed room catalog. Safe to call more
// than once; the catalog is only built while empty.
func (s *HotelService) InitializeInventory() {
	s.inventory.Initialize()
}

// Restore loads the last ledger snapshot and re-marks the matching rooms as
// booked, so a booking surviving a restart still blocks its room.
func (s *HotelService) Restore(ctx context.Context) error {
	ledger, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	s.ledger = ledger

	for roomNumber := range s.ledger {
		room, err := s.inventory.Find(roomNumber)
		if err != nil {
			// Snapshot entry for a room no longer in the catalog; keep the
			// booking data but there is no flag to set.
			continue
		}
		room.Booked = true
	}

	return nil
}

func (s *HotelService) BookRoom(req BookRoomRequest) (*BookRoomResponse, error) {
	room, err := s.inventory.Find(req.RoomNumber)
	if err != nil {
		return nil, err
	}

	if room.Booked {
		return nil, domain.ErrRoomAlreadyBooked
	}

	booking := &domain.Booking{
		ID:         uuid.New(),
		RoomNumber: room.Number,
		Category:   room.Category,
		Customer: domain.Customer{
			Name:    req.CustomerName,
			Contact: req.CustomerContact,
		},
		CreatedAt: time.Now(),
	}

	room.Booked = true
	s.ledger[room.Number] = booking

	return &BookRoomResponse{
		BookingID:   booking.ID.String(),
		RoomNumber:  room.Number,
		RoomType:    room.Category.Label(),
		NightlyRate: room.NightlyRate(),
	}, nil
}

func (s *HotelService) AddFood(roomNumber int, item string, quantity int) error {
	booking, ok := s.ledger[roomNumber]
	if !ok {
		return domain.ErrBookingNotFound
	}

	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}

	booking.AddFood(domain.FoodItem{
		Item:      item,
		Quantity:  quantity,
		UnitPrice: domain.FoodUnitPrice,
	})

	return nil
}

func (s *HotelService) GetBooking(roomNumber int) (*domain.Booking, error) {
	booking, ok := s.ledger[roomNumber]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}

	return booking, nil
}

// ListBookings returns every active booking sorted by room number.
func (s *HotelService) ListBookings() []*domain.Booking {
	bookings := make([]*domain.Booking, 0, len(s.ledger))
	for _, booking := range s.ledger {
		bookings = append(bookings, booking)
	}

	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].RoomNumber < bookings[j].RoomNumber
	})

	return bookings
}

func (s *HotelService) GetBillBreakdown(roomNumber int) (*BillResponse, error) {
	booking, err := s.GetBooking(roomNumber)
	if err != nil {
		return nil, err
	}

	bill := domain.ComputeBill(booking)

	return &BillResponse{
		RoomNumber:   booking.RoomNumber,
		CustomerName: booking.Customer.Name,
		RoomType:     booking.Category.Label(),
		RoomCharge:   bill.RoomCharge,
		FoodLines:    bill.FoodLines,
		FoodTotal:    bill.FoodTotal,
		GrandTotal:   bill.GrandTotal,
	}, nil
}

// Snapshot writes the whole ledger through the repository. Write failures are
// returned to the caller, who decides whether they are fatal.
func (s *HotelService) Snapshot(ctx context.Context) error {
	return s.repo.Save(ctx, s.ledger)
}
