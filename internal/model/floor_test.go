package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFloorMaterializesRooms(t *testing.T) {
	floor := NewFloor(2, 3)

	assert.Equal(t, 2, floor.FloorNumber)
	require.Len(t, floor.Rooms, 3)
	for i, room := range floor.Rooms {
		assert.Equal(t, i+1, room.RoomNumber)
		assert.Equal(t, 2, room.FloorNumber)
		assert.False(t, room.Occupied())
	}
}

func TestFloorAssignManagerOnlyOnce(t *testing.T) {
	floor := NewFloor(1, 2)
	first := uuid.New()
	second := uuid.New()

	assert.False(t, floor.HasManager())
	assert.True(t, floor.AssignManager(first))
	assert.True(t, floor.HasManager())

	// Second assignment is refused and the original binding survives.
	assert.False(t, floor.AssignManager(second))
	assert.Equal(t, first, *floor.ManagerID)
}

func TestFloorRoomLookup(t *testing.T) {
	floor := NewFloor(1, 3)

	require.NotNil(t, floor.Room(2))
	assert.Equal(t, 2, floor.Room(2).RoomNumber)
	assert.Nil(t, floor.Room(4))
	assert.Nil(t, floor.Room(0))
}

func TestFloorFull(t *testing.T) {
	floor := NewFloor(1, 2)
	assert.False(t, floor.Full())

	require.True(t, floor.Room(1).AssignPatient(uuid.New()))
	assert.False(t, floor.Full())

	require.True(t, floor.Room(2).AssignPatient(uuid.New()))
	assert.True(t, floor.Full())
}

func TestRoomAssignPatient(t *testing.T) {
	room := NewRoom(5, 1)
	occupant := uuid.New()

	assert.True(t, room.AssignPatient(occupant))
	assert.True(t, room.Occupied())

	// An occupied room refuses a second patient and keeps the first.
	assert.False(t, room.AssignPatient(uuid.New()))
	assert.Equal(t, occupant, *room.PatientID)

	room.RemovePatient()
	assert.False(t, room.Occupied())
	assert.True(t, room.AssignPatient(uuid.New()))
}

func TestRoomRef(t *testing.T) {
	room := NewRoom(7, 3)
	assert.Equal(t, RoomRef{FloorNumber: 3, RoomNumber: 7}, room.Ref())
}
