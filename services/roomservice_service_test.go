package services

import (
	"testing"
	"time"

	"frontdesk-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerFixture(t *testing.T) (*RoomServiceService, *HistoryService, models.Room, models.History, models.Service) {
	t.Helper()
	db := newTestDB(t)

	histories := NewHistoryService(db)
	ledger := NewRoomServiceService(db)

	room := seedRoom(t, db, "101", models.RoomStatusAvailable, nil)
	user := seedUser(t, db, "staff1")
	water := seedService(t, db, "Mineral water", 10000)

	history := checkIn(t, histories, room.ID, user.ID, time.Now().Add(-time.Hour))
	return ledger, histories, room, history, water
}

func TestAddServicesMergesRepeatedPairs(t *testing.T) {
	ledger, _, room, history, water := ledgerFixture(t)

	_, err := ledger.AddServices(AddServicesInput{
		HistoryID: history.ID,
		RoomID:    room.ID,
		Services:  []ServiceQuantity{{ServiceID: water.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	refreshed, err := ledger.AddServices(AddServicesInput{
		HistoryID: history.ID,
		RoomID:    room.ID,
		Services:  []ServiceQuantity{{ServiceID: water.ID, Quantity: 3}},
	})
	require.NoError(t, err)

	require.Len(t, refreshed.RoomServices, 1)
	assert.Equal(t, 5, refreshed.RoomServices[0].Quantity)
	assert.Equal(t, water.ID, refreshed.RoomServices[0].ServiceID)
}

func TestAddServicesClampsQuantityToOne(t *testing.T) {
	ledger, _, room, history, water := ledgerFixture(t)

	refreshed, err := ledger.AddServices(AddServicesInput{
		HistoryID: history.ID,
		RoomID:    room.ID,
		Services:  []ServiceQuantity{{ServiceID: water.ID, Quantity: 0}},
	})
	require.NoError(t, err)

	require.Len(t, refreshed.RoomServices, 1)
	assert.Equal(t, 1, refreshed.RoomServices[0].Quantity)
}

func TestAddServicesUnknownService(t *testing.T) {
	ledger, _, room, history, _ := ledgerFixture(t)

	_, err := ledger.AddServices(AddServicesInput{
		HistoryID: history.ID,
		RoomID:    room.ID,
		Services:  []ServiceQuantity{{ServiceID: 999, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestAddServicesWrongRoom(t *testing.T) {
	ledger, _, _, history, water := ledgerFixture(t)

	_, err := ledger.AddServices(AddServicesInput{
		HistoryID: history.ID,
		RoomID:    999,
		Services:  []ServiceQuantity{{ServiceID: water.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrHistoryNotFound)
}

func TestAddServicesClosedSessionRejected(t *testing.T) {
	ledger, histories, room, history, water := ledgerFixture(t)

	_, err := histories.CheckOut(history.ID, nil)
	require.NoError(t, err)

	_, err = ledger.AddServices(AddServicesInput{
		HistoryID: history.ID,
		RoomID:    room.ID,
		Services:  []ServiceQuantity{{ServiceID: water.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
}

func TestSetQuantityOverwrites(t *testing.T) {
	ledger, _, room, history, water := ledgerFixture(t)

	refreshed, err := ledger.AddServices(AddServicesInput{
		HistoryID: history.ID,
		RoomID:    room.ID,
		Services:  []ServiceQuantity{{ServiceID: water.ID, Quantity: 4}},
	})
	require.NoError(t, err)
	line := refreshed.RoomServices[0]

	updated, err := ledger.SetQuantity(line.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Quantity)
}

func TestSetQuantityRejectsBelowOne(t *testing.T) {
	ledger, _, room, history, water := ledgerFixture(t)

	refreshed, err := ledger.AddServices(AddServicesInput{
		HistoryID: history.ID,
		RoomID:    room.ID,
		Services:  []ServiceQuantity{{ServiceID: water.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	line := refreshed.RoomServices[0]

	_, err = ledger.SetQuantity(line.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = ledger.SetQuantity(999, 2)
	assert.ErrorIs(t, err, ErrLineNotFound)
}

func TestDeleteLineLeavesSiblings(t *testing.T) {
	ledger, _, room, history, water := ledgerFixture(t)
	noodles := seedService(t, ledger.DB, "Instant noodles", 15000)

	refreshed, err := ledger.AddServices(AddServicesInput{
		HistoryID: history.ID,
		RoomID:    room.ID,
		Services: []ServiceQuantity{
			{ServiceID: water.ID, Quantity: 2},
			{ServiceID: noodles.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.Len(t, refreshed.RoomServices, 2)

	var target models.RoomService
	for _, line := range refreshed.RoomServices {
		if line.ServiceID == water.ID {
			target = line
		}
	}
	require.NoError(t, ledger.DeleteLine(target.ID))

	remaining, err := ledger.ListForHistory(history.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, noodles.ID, remaining[0].ServiceID)

	// a removed pair can be added back afterwards
	refreshed, err = ledger.AddServices(AddServicesInput{
		HistoryID: history.ID,
		RoomID:    room.ID,
		Services:  []ServiceQuantity{{ServiceID: water.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Len(t, refreshed.RoomServices, 2)
}

func TestDeleteLineUnknownID(t *testing.T) {
	ledger, _, _, _, _ := ledgerFixture(t)
	assert.ErrorIs(t, ledger.DeleteLine(999), ErrLineNotFound)
}

func TestDeleteByRoomAndService(t *testing.T) {
	ledger, _, room, history, water := ledgerFixture(t)

	_, err := ledger.AddServices(AddServicesInput{
		HistoryID: history.ID,
		RoomID:    room.ID,
		Services:  []ServiceQuantity{{ServiceID: water.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	require.NoError(t, ledger.DeleteByRoomAndService(room.ID, water.ID))

	remaining, err := ledger.ListForHistory(history.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	assert.ErrorIs(t, ledger.DeleteByRoomAndService(room.ID, water.ID), ErrLineNotFound)
}
