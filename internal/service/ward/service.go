// Package ward implements the floor manager operations: room
// assignment and surgery scheduling for the managed floor.
package ward

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/hospital-admin/internal/hospital"
	"github.com/jwalitptl/hospital-admin/internal/model"
	apperrors "github.com/jwalitptl/hospital-admin/pkg/errors"
	"github.com/jwalitptl/hospital-admin/pkg/metrics"
)

// AssignmentResult bundles the outcome of a room operation with its
// user-facing message, so callers never have to re-run an operation
// just to build the message.
type AssignmentResult struct {
	Message string         `json:"message"`
	Room    *model.RoomRef `json:"room,omitempty"`
}

type Service struct {
	store   *hospital.Store
	metrics *metrics.Metrics

	// One critical section for every Room<->Patient update; the two
	// sides of the link must never be observable out of sync.
	mu sync.Mutex
}

func NewService(store *hospital.Store, m *metrics.Metrics) *Service {
	return &Service{store: store, metrics: m}
}

// AssignPatientToRoom puts the patient into roomNumber on the manager's
// floor, setting both sides of the Room<->Patient link. The patient
// must be checked in and not hold a room already; a second assignment
// would strand the old room's occupant reference.
func (s *Service) AssignPatientToRoom(ctx context.Context, managerID, patientID uuid.UUID, roomNumber int) (*AssignmentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	floor, err := s.managedFloor(managerID)
	if err != nil {
		return nil, err
	}
	patient, err := s.patient(patientID)
	if err != nil {
		return nil, err
	}

	if !patient.Patient.CheckedIn {
		return nil, apperrors.NewBadRequest("patient must be checked in before a room is assigned", nil)
	}
	if patient.Patient.Room != nil {
		return nil, apperrors.New(apperrors.ErrConflict, "patient already has an assigned room")
	}

	room := floor.Room(roomNumber)
	if room == nil {
		return nil, apperrors.NewNotFound("room", nil)
	}
	if !room.AssignPatient(patient.ID) {
		if s.metrics != nil {
			s.metrics.RoomAssignments.WithLabelValues("assign", "rejected").Inc()
		}
		return nil, apperrors.New(apperrors.ErrRoomOccupied, "room is already occupied")
	}

	ref := room.Ref()
	patient.Patient.Room = &ref
	if s.metrics != nil {
		s.metrics.RoomAssignments.WithLabelValues("assign", "success").Inc()
		s.metrics.RoomsOccupied.Inc()
	}

	return &AssignmentResult{
		Message: fmt.Sprintf("Patient %s has been assigned to room number %d on floor %d.",
			patient.Name, room.RoomNumber, floor.FloorNumber),
		Room: &ref,
	}, nil
}

// UnassignPatientFromRoom frees the patient's room. Rejected while an
// incomplete surgery is scheduled. The room is resolved through the
// patient's own reference, so a manager can release a patient roomed on
// any floor without touching the same-numbered room on their own. The
// confirmation message is built from the values before the link is
// cleared.
func (s *Service) UnassignPatientFromRoom(ctx context.Context, managerID, patientID uuid.UUID) (*AssignmentResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.managedFloor(managerID); err != nil {
		return nil, err
	}
	patient, err := s.patient(patientID)
	if err != nil {
		return nil, err
	}

	if surgery := s.store.SurgeryForPatient(patient); surgery != nil && !surgery.Completed {
		return nil, apperrors.New(apperrors.ErrSurgeryInProgress, "Patient has a scheduled surgery.")
	}

	ref := patient.Patient.Room
	if ref == nil {
		return nil, apperrors.NewBadRequest("patient has no assigned room", nil)
	}
	message := fmt.Sprintf("Room number %d on floor %d has been unassigned.", ref.RoomNumber, ref.FloorNumber)

	if floor := s.store.Floor(ref.FloorNumber); floor != nil {
		if room := floor.Room(ref.RoomNumber); room != nil {
			room.RemovePatient()
		}
	}
	patient.Patient.Room = nil
	if s.metrics != nil {
		s.metrics.RoomAssignments.WithLabelValues("unassign", "success").Inc()
		s.metrics.RoomsOccupied.Dec()
	}

	return &AssignmentResult{Message: message}, nil
}

// ScheduleSurgery books surgeonID for the patient at the given time.
// The patient must be checked in, room-assigned and not already
// scheduled. Nothing stops two schedules from claiming the same surgeon
// at the same time; the booking layer never checked that and this port
// keeps the behavior.
func (s *Service) ScheduleSurgery(ctx context.Context, managerID, patientID, surgeonID uuid.UUID, at time.Time) (*model.SurgerySchedule, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.managedFloor(managerID); err != nil {
		return nil, "", err
	}
	patient, err := s.patient(patientID)
	if err != nil {
		return nil, "", err
	}

	surgeon := s.store.User(surgeonID)
	if surgeon == nil || surgeon.Role != model.RoleSurgeon {
		return nil, "", apperrors.NewNotFound("surgeon", nil)
	}

	if !patient.Patient.EligibleForSurgery() {
		return nil, "", apperrors.NewBadRequest("patient must be checked in with an assigned room and no scheduled surgery", nil)
	}

	surgery := model.NewSurgerySchedule(patient.ID, surgeon.ID, at)
	s.store.AddScheduledSurgery(surgery)
	patient.Patient.SurgeryID = &surgery.ID
	if s.metrics != nil {
		s.metrics.SurgeriesScheduled.Inc()
	}

	message := fmt.Sprintf("Surgeon %s has been assigned to patient %s.\nSurgery will take place on %s.",
		surgeon.Name, patient.Name, at.Format(model.SurgeryTimeFormat))
	return surgery, message, nil
}

func (s *Service) managedFloor(managerID uuid.UUID) (*model.Floor, error) {
	manager := s.store.User(managerID)
	if manager == nil || manager.Role != model.RoleFloorManager {
		return nil, apperrors.Forbidden("only floor managers can perform ward operations")
	}
	floor := s.store.Floor(manager.Staff.FloorNumber)
	if floor == nil {
		return nil, apperrors.NewNotFound("floor", nil)
	}
	return floor, nil
}

func (s *Service) patient(patientID uuid.UUID) (*model.User, error) {
	patient := s.store.User(patientID)
	if patient == nil || patient.Role != model.RolePatient {
		return nil, apperrors.NewNotFound("patient", nil)
	}
	return patient, nil
}
