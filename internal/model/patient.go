package model

import "github.com/google/uuid"

// RoomRef addresses a room by its stable (floor, room) identifier pair.
// Patients reference rooms through this instead of an object link so
// both sides of the assignment can be updated as plain field writes.
type RoomRef struct {
	FloorNumber int `json:"floor_number"`
	RoomNumber  int `json:"room_number"`
}

// PatientState is the patient payload of a User.
type PatientState struct {
	CheckedIn bool       `json:"checked_in"`
	Room      *RoomRef   `json:"room,omitempty"`
	SurgeryID *uuid.UUID `json:"surgery_id,omitempty"`
}

// CannotCheckOut reports whether the patient is blocked from checking
// out: checked in with no surgery scheduled yet, or with one still
// pending. surgery is nil when no schedule exists.
func (p *PatientState) CannotCheckOut(surgery *SurgerySchedule) bool {
	return p.CheckedIn && (surgery == nil || !surgery.Completed)
}

// CannotCheckIn reports whether the patient is blocked from checking
// in. A patient whose surgery is complete can never check in again.
func (p *PatientState) CannotCheckIn(surgery *SurgerySchedule) bool {
	return !p.CheckedIn && surgery != nil && surgery.Completed
}

// EligibleForSurgery reports whether a surgery may be scheduled: the
// patient must be checked in, have a room, and not be scheduled already.
func (p *PatientState) EligibleForSurgery() bool {
	return p.CheckedIn && p.Room != nil && p.SurgeryID == nil
}
