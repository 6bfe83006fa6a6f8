package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/avelik/hotel_ledger/internal/core/domain"
)

const snapshotVersion = 1

// LedgerRepository stores the whole booking ledger as one JSON snapshot on
// disk. Writes go through a temp file and a rename, so a crash mid-write
// leaves the previous snapshot intact.
type LedgerRepository struct {
	path string
}

func NewLedgerRepository(path string) *LedgerRepository {
	return &LedgerRepository{path: path}
}

type snapshot struct {
	Version  int             `json:"version"`
	Bookings []bookingRecord `json:"bookings"`
}

type bookingRecord struct {
	BookingID  string         `json:"booking_id"`
	RoomNumber int            `json:"room_number"`
	Category   string         `json:"category"`
	Customer   customerRecord `json:"customer"`
	FoodOrders []foodRecord   `json:"food_orders"`
	CreatedAt  time.Time      `json:"created_at"`
}

type customerRecord struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type foodRecord struct {
	Item      string `json:"item"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

func (r *LedgerRepository) Save(ctx context.Context, ledger domain.Ledger) error {
	snap := snapshot{Version: snapshotVersion}

	for _, booking := range ledger {
		record := bookingRecord{
			BookingID:  booking.ID.String(),
			RoomNumber: booking.RoomNumber,
			Category:   string(booking.Category),
			Customer: customerRecord{
				Name:    booking.Customer.Name,
				Contact: booking.Customer.Contact,
			},
			CreatedAt: booking.CreatedAt,
		}

		for _, food := range booking.FoodOrders {
			record.FoodOrders = append(record.FoodOrders, foodRecord{
				Item:      food.Item,
				Quantity:  food.Quantity,
				UnitPrice: food.UnitPrice,
			})
		}

		snap.Bookings = append(snap.Bookings, record)
	}

	sort.Slice(snap.Bookings, func(i, j int) bool {
		return snap.Bookings[i].RoomNumber < snap.Bookings[j].RoomNumber
	})

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode ledger snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".ledger-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close snapshot file: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace snapshot file: %w", err)
	}

	return nil
}

// Load restores the last snapshot. Any read or decode failure (missing file,
// corrupt data, unknown format) degrades to an empty ledger rather than an
// error: availability over recovering a broken file.
func (r *LedgerRepository) Load(ctx context.Context) (domain.Ledger, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return domain.Ledger{}, nil
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.Ledger{}, nil
	}

	if snap.Version != snapshotVersion {
		return domain.Ledger{}, nil
	}

	ledger := domain.Ledger{}
	for _, record := range snap.Bookings {
		booking, ok := decodeBooking(record)
		if !ok {
			return domain.Ledger{}, nil
		}
		ledger[booking.RoomNumber] = booking
	}

	return ledger, nil
}

func decodeBooking(record bookingRecord) (*domain.Booking, bool) {
	id, err := uuid.Parse(record.BookingID)
	if err != nil {
		return nil, false
	}

	category := domain.RoomCategory(record.Category)
	if !category.IsValid() {
		return nil, false
	}

	if record.RoomNumber < 1 {
		return nil, false
	}

	booking := &domain.Booking{
		ID:         id,
		RoomNumber: record.RoomNumber,
		Category:   category,
		Customer: domain.Customer{
			Name:    record.Customer.Name,
			Contact: record.Customer.Contact,
		},
		CreatedAt: record.CreatedAt,
	}

	for _, food := range record.FoodOrders {
		if food.Quantity < 1 {
			return nil, false
		}
		booking.FoodOrders = append(booking.FoodOrders, domain.FoodItem{
			Item:      food.Item,
			Quantity:  food.Quantity,
			UnitPrice: food.UnitPrice,
		})
	}

	return booking, true
}
