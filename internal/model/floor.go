package model

import "github.com/google/uuid"

// Floor is a fixed collection of rooms plus at most one manager. The
// room list is materialized at construction and never resized.
type Floor struct {
	FloorNumber int        `json:"floor_number"`
	Rooms       []*Room    `json:"rooms"`
	ManagerID   *uuid.UUID `json:"manager_id,omitempty"`
}

func NewFloor(floorNumber, roomCount int) *Floor {
	f := &Floor{
		FloorNumber: floorNumber,
		Rooms:       make([]*Room, 0, roomCount),
	}
	for i := 1; i <= roomCount; i++ {
		f.Rooms = append(f.Rooms, NewRoom(i, floorNumber))
	}
	return f
}

// AssignManager binds a manager to the floor. A floor takes exactly one
// manager for its lifetime: the second and later calls return false and
// leave the original binding intact.
func (f *Floor) AssignManager(managerID uuid.UUID) bool {
	if f.ManagerID != nil {
		return false
	}
	f.ManagerID = &managerID
	return true
}

// HasManager reports whether a manager is assigned.
func (f *Floor) HasManager() bool {
	return f.ManagerID != nil
}

// Room returns the room with the given number, or nil.
func (f *Floor) Room(roomNumber int) *Room {
	for _, r := range f.Rooms {
		if r.RoomNumber == roomNumber {
			return r
		}
	}
	return nil
}

// Full reports whether every room on the floor is occupied.
func (f *Floor) Full() bool {
	for _, r := range f.Rooms {
		if !r.Occupied() {
			return false
		}
	}
	return true
}
