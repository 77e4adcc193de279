package model

import (
	"time"

	"github.com/google/uuid"
)

// SurgeryTimeFormat is the display format for surgery datetimes.
const SurgeryTimeFormat = "15:04 02/01/2006"

// SurgerySchedule binds one patient and one surgeon to a datetime.
// Patient, surgeon and datetime are fixed at construction; Completed is
// the only mutable field and only ever moves false to true.
type SurgerySchedule struct {
	Base
	PatientID   uuid.UUID `json:"patient_id"`
	SurgeonID   uuid.UUID `json:"surgeon_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Completed   bool      `json:"completed"`
}

func NewSurgerySchedule(patientID, surgeonID uuid.UUID, scheduledAt time.Time) *SurgerySchedule {
	return &SurgerySchedule{
		Base:        newBase(),
		PatientID:   patientID,
		SurgeonID:   surgeonID,
		ScheduledAt: scheduledAt,
	}
}

// Complete marks the surgery as performed.
func (s *SurgerySchedule) Complete() {
	s.Completed = true
	s.UpdatedAt = time.Now()
}
