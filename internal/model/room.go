package model

import "github.com/google/uuid"

// Room is a single-occupancy unit identified by (FloorNumber, RoomNumber).
// It references its occupant by ID; the patient's matching RoomRef is
// maintained by the ward service so the two sides never drift.
type Room struct {
	RoomNumber  int        `json:"room_number"`
	FloorNumber int        `json:"floor_number"`
	PatientID   *uuid.UUID `json:"patient_id,omitempty"`
}

func NewRoom(roomNumber, floorNumber int) *Room {
	return &Room{RoomNumber: roomNumber, FloorNumber: floorNumber}
}

// Occupied reports whether a patient holds the room.
func (r *Room) Occupied() bool {
	return r.PatientID != nil
}

// AssignPatient sets the occupant. Returns false without mutating if the
// room is already occupied; callers must inspect the result.
func (r *Room) AssignPatient(patientID uuid.UUID) bool {
	if r.PatientID != nil {
		return false
	}
	r.PatientID = &patientID
	return true
}

// RemovePatient clears the occupant.
func (r *Room) RemovePatient() {
	r.PatientID = nil
}

// Ref returns the room's stable identifier pair.
func (r *Room) Ref() RoomRef {
	return RoomRef{FloorNumber: r.FloorNumber, RoomNumber: r.RoomNumber}
}
