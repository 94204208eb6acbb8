//go:build unit

package commands_test

import (
	"context"
	"testing"

	"parking-reservation/internal/domain/lot"
	"parking-reservation/internal/domain/spot"
	"parking-reservation/internal/pkg/clock"
	"parking-reservation/internal/pkg/errs"
	"parking-reservation/internal/testutil/memuow"
	"parking-reservation/internal/usecase/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lotInput(maxSpots int) commands.LotInput {
	return commands.LotInput{
		Name:        "Forum Mall",
		Address:     "21 Hosur Road",
		Pincode:     "560029",
		CostPerHour: decimal.RequireFromString("25.5"),
		MaxSpots:    maxSpots,
	}
}

func spotNumbers(rows []memuow.SpotRow) []int {
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Number)
	}
	return out
}

func TestLotCommands_CreateLot(t *testing.T) {
	t.Run("creates numbered available spots", func(t *testing.T) {
		store := memuow.New()
		id, err := commands.NewLotCommands(store).CreateLot(context.Background(), lotInput(4))
		require.NoError(t, err)

		l := store.Lot(id)
		assert.Equal(t, 4, l.MaxSpots)
		assert.Equal(t, 4, l.AvailableSpots)
		assert.True(t, l.IsActive)

		spots := store.Spots(id)
		assert.Equal(t, []int{1, 2, 3, 4}, spotNumbers(spots))
		for _, s := range spots {
			assert.Equal(t, spot.StatusAvailable, s.Status)
		}
	})

	t.Run("zero capacity", func(t *testing.T) {
		store := memuow.New()
		id, err := commands.NewLotCommands(store).CreateLot(context.Background(), lotInput(0))
		require.NoError(t, err)
		assert.Empty(t, store.Spots(id))
	})

	t.Run("duplicate name at the same pincode", func(t *testing.T) {
		store := memuow.New()
		cmds := commands.NewLotCommands(store)
		_, err := cmds.CreateLot(context.Background(), lotInput(2))
		require.NoError(t, err)

		_, err = cmds.CreateLot(context.Background(), lotInput(3))
		assert.ErrorIs(t, err, commands.ErrDuplicateLot)
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	})

	t.Run("invalid input", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*commands.LotInput)
		}{
			{name: "bad pincode", mutate: func(in *commands.LotInput) { in.Pincode = "12AB" }},
			{name: "negative price", mutate: func(in *commands.LotInput) { in.CostPerHour = decimal.NewFromInt(-1) }},
			{name: "capacity above limit", mutate: func(in *commands.LotInput) { in.MaxSpots = lot.MaxSpotsLimit + 1 }},
			{name: "blank name", mutate: func(in *commands.LotInput) { in.Name = "  " }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				in := lotInput(2)
				tt.mutate(&in)
				_, err := commands.NewLotCommands(memuow.New()).CreateLot(context.Background(), in)
				assert.ErrorIs(t, err, errs.ErrInvalidInput)
			})
		}
	})
}

func TestLotCommands_UpdateLot(t *testing.T) {
	t.Run("grow fills gaps before extending", func(t *testing.T) {
		store := memuow.New()
		cmds := commands.NewLotCommands(store)
		id, err := cmds.CreateLot(context.Background(), lotInput(5))
		require.NoError(t, err)
		require.NoError(t, cmds.DeleteSpot(context.Background(), id, 2))
		require.NoError(t, cmds.DeleteSpot(context.Background(), id, 4))
		require.Equal(t, []int{1, 3, 5}, spotNumbers(store.Spots(id)))

		require.NoError(t, cmds.UpdateLot(context.Background(), id, lotInput(6)))

		assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, spotNumbers(store.Spots(id)))
		l := store.Lot(id)
		assert.Equal(t, 6, l.MaxSpots)
		assert.Equal(t, 6, l.AvailableSpots)
	})

	t.Run("shrink removes the highest free spots", func(t *testing.T) {
		store := memuow.New()
		id := store.SeedLot(memuow.LotRow{Details: lotDetails(t, "Orion", "30"), IsActive: true},
			spot.StatusOccupied, spot.StatusAvailable, spot.StatusAvailable, spot.StatusAvailable)

		in := lotInput(2)
		in.Name = "Orion"
		require.NoError(t, commands.NewLotCommands(store).UpdateLot(context.Background(), id, in))

		assert.Equal(t, []int{1, 2}, spotNumbers(store.Spots(id)))
		l := store.Lot(id)
		assert.Equal(t, 2, l.MaxSpots)
		assert.Equal(t, 1, l.AvailableSpots)
		assert.Equal(t, "Orion", l.Details.Name)
	})

	t.Run("shrink past occupied spots is rejected without changes", func(t *testing.T) {
		store := memuow.New()
		id := store.SeedLot(memuow.LotRow{Details: lotDetails(t, "Orion", "30"), IsActive: true},
			spot.StatusOccupied, spot.StatusOccupied, spot.StatusAvailable)
		before := store.Spots(id)

		in := lotInput(0)
		in.Name = "Renamed"
		err := commands.NewLotCommands(store).UpdateLot(context.Background(), id, in)
		require.ErrorIs(t, err, errs.ErrSpotsOccupied)

		var shrinkErr *lot.ShrinkError
		require.ErrorAs(t, err, &shrinkErr)
		assert.Equal(t, 2, shrinkErr.Occupied())

		assert.Equal(t, before, store.Spots(id))
		l := store.Lot(id)
		assert.Equal(t, 3, l.MaxSpots)
		assert.Equal(t, "Orion", l.Details.Name)
	})

	t.Run("spots held by in-flight bookings count as occupied", func(t *testing.T) {
		store := memuow.New()
		id := store.SeedLot(memuow.LotRow{Details: lotDetails(t, "Orion", "30"), IsActive: true}, availableSpots(3)...)
		// counters still say 3 free, but one row is already taken
		store.SetSpotStatus(id, 3, spot.StatusOccupied)

		in := lotInput(0)
		in.Name = "Orion"
		err := commands.NewLotCommands(store).UpdateLot(context.Background(), id, in)
		assert.ErrorIs(t, err, errs.ErrSpotsOccupied)
		assert.Len(t, store.Spots(id), 3)
	})

	t.Run("same capacity only updates details", func(t *testing.T) {
		store := memuow.New()
		cmds := commands.NewLotCommands(store)
		id, err := cmds.CreateLot(context.Background(), lotInput(3))
		require.NoError(t, err)

		in := lotInput(3)
		in.CostPerHour = decimal.RequireFromString("19.999")
		require.NoError(t, cmds.UpdateLot(context.Background(), id, in))

		l := store.Lot(id)
		assert.True(t, decimal.RequireFromString("20").Equal(l.Details.CostPerHour))
		assert.Len(t, store.Spots(id), 3)
	})

	t.Run("unknown lot", func(t *testing.T) {
		err := commands.NewLotCommands(memuow.New()).UpdateLot(context.Background(), 42, lotInput(1))
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestLotCommands_ToggleLot(t *testing.T) {
	store := memuow.New()
	cmds := commands.NewLotCommands(store)
	id, err := cmds.CreateLot(context.Background(), lotInput(1))
	require.NoError(t, err)

	active, err := cmds.ToggleLot(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, active)
	assert.False(t, store.Lot(id).IsActive)

	active, err = cmds.ToggleLot(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestLotCommands_DeleteSpot(t *testing.T) {
	t.Run("available spot", func(t *testing.T) {
		store := memuow.New()
		id := store.SeedLot(memuow.LotRow{Details: lotDetails(t, "Orion", "30"), IsActive: true},
			spot.StatusOccupied, spot.StatusAvailable)

		require.NoError(t, commands.NewLotCommands(store).DeleteSpot(context.Background(), id, 2))

		assert.Equal(t, []int{1}, spotNumbers(store.Spots(id)))
		l := store.Lot(id)
		assert.Equal(t, 1, l.MaxSpots)
		assert.Equal(t, 0, l.AvailableSpots)
	})

	t.Run("occupied spot is kept", func(t *testing.T) {
		store := memuow.New()
		id := store.SeedLot(memuow.LotRow{Details: lotDetails(t, "Orion", "30"), IsActive: true},
			spot.StatusOccupied, spot.StatusAvailable)

		err := commands.NewLotCommands(store).DeleteSpot(context.Background(), id, 1)
		assert.ErrorIs(t, err, spot.ErrSpotOccupied)
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
		assert.Len(t, store.Spots(id), 2)
		assert.Equal(t, 2, store.Lot(id).MaxSpots)
	})

	t.Run("unknown spot", func(t *testing.T) {
		store := memuow.New()
		id := store.SeedLot(memuow.LotRow{Details: lotDetails(t, "Orion", "30"), IsActive: true}, availableSpots(1)...)

		err := commands.NewLotCommands(store).DeleteSpot(context.Background(), id, 7)
		assert.ErrorIs(t, err, commands.ErrSpotNotFound)
	})

	t.Run("unknown lot", func(t *testing.T) {
		err := commands.NewLotCommands(memuow.New()).DeleteSpot(context.Background(), 404, 1)
		assert.ErrorIs(t, err, commands.ErrLotNotFound)
	})

	t.Run("locks the spot before the lot like booking does", func(t *testing.T) {
		store := memuow.New()
		id := store.SeedLot(memuow.LotRow{Details: lotDetails(t, "Orion", "30"), IsActive: true}, availableSpots(3)...)
		userID := store.SeedUser(memuow.UserRow{Username: "driver02", Email: "d2@example.com", Phone: "9876500000", IsActive: true})

		_, err := commands.NewParkingCommands(store, clock.NewMockClock(t0), nil).
			Book(context.Background(), userID, commands.BookInput{LotID: id, VehicleNumber: "KA01AB1234"})
		require.NoError(t, err)
		assert.Equal(t, []string{"spot", "lot", "user"}, store.LockOrder())

		require.NoError(t, commands.NewLotCommands(store).DeleteSpot(context.Background(), id, 3))
		assert.Equal(t, []string{"spot", "lot"}, store.LockOrder())
	})
}
