package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelik/hotel_ledger/internal/core/domain"
)

func TestInventory_Initialize(t *testing.T) {
	inv := domain.NewInventory()

	inv.Initialize()
	assert.Equal(t, 10, inv.Len())

	room, err := inv.Find(1)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryLuxury, room.Category)
	assert.False(t, room.Booked)

	room, err = inv.Find(10)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryDeluxe, room.Category)
}

func TestInventory_Initialize_Idempotent(t *testing.T) {
	inv := domain.NewInventory()

	inv.Initialize()
	inv.Initialize()

	assert.Equal(t, 10, inv.Len())
}

func TestInventory_Find_NotFound(t *testing.T) {
	inv := domain.NewInventory()
	inv.Initialize()

	for _, n := range []int{0, 11, -3, 100} {
		_, err := inv.Find(n)
		assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	}
}

func TestRoomCategory_NightlyRate(t *testing.T) {
	assert.Equal(t, int64(5000), domain.CategoryLuxury.NightlyRate())
	assert.Equal(t, int64(3000), domain.CategoryDeluxe.NightlyRate())
}

func TestRoomCategory_Label(t *testing.T) {
	assert.Equal(t, "Luxury Room", domain.CategoryLuxury.Label())
	assert.Equal(t, "Deluxe Room", domain.CategoryDeluxe.Label())
}

func TestRoomCategory_IsValid(t *testing.T) {
	assert.True(t, domain.CategoryLuxury.IsValid())
	assert.True(t, domain.CategoryDeluxe.IsValid())
	assert.False(t, domain.RoomCategory("PENTHOUSE").IsValid())
	assert.False(t, domain.RoomCategory("").IsValid())
}
