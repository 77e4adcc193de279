// Package patientcare implements the patient self-service operations:
// check-in state and the read-only projections of a patient's stay.
package patientcare

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jwalitptl/hospital-admin/internal/hospital"
	"github.com/jwalitptl/hospital-admin/internal/model"
	apperrors "github.com/jwalitptl/hospital-admin/pkg/errors"
	"github.com/jwalitptl/hospital-admin/pkg/metrics"
)

type Service struct {
	store   *hospital.Store
	metrics *metrics.Metrics
}

func NewService(store *hospital.Store, m *metrics.Metrics) *Service {
	return &Service{store: store, metrics: m}
}

// CheckInOrOut toggles the patient's check-in state unless blocked.
// Checked-in patients cannot leave before a scheduled surgery is
// completed, and a patient whose surgery is complete can never check in
// again.
func (s *Service) CheckInOrOut(ctx context.Context, patientID uuid.UUID) (string, error) {
	patient, err := s.patient(patientID)
	if err != nil {
		return "", err
	}

	state := patient.Patient
	surgery := s.store.SurgeryForPatient(patient)

	if state.CannotCheckOut(surgery) || state.CannotCheckIn(surgery) {
		if state.CheckedIn {
			return "", apperrors.New(apperrors.ErrCheckBlocked, "You are unable to check out at this time.")
		}
		return "", apperrors.New(apperrors.ErrCheckBlocked, "You are unable to check in at this time.")
	}

	state.CheckedIn = !state.CheckedIn
	if state.CheckedIn {
		if s.metrics != nil {
			s.metrics.PatientCheckEvents.WithLabelValues("check_in").Inc()
		}
		return fmt.Sprintf("Patient %s has been checked in.", patient.Name), nil
	}
	if s.metrics != nil {
		s.metrics.PatientCheckEvents.WithLabelValues("check_out").Inc()
	}
	return fmt.Sprintf("Patient %s has been checked out.", patient.Name), nil
}

// RoomDetails describes the patient's assigned room.
func (s *Service) RoomDetails(ctx context.Context, patientID uuid.UUID) (string, error) {
	patient, err := s.patient(patientID)
	if err != nil {
		return "", err
	}

	room := patient.Patient.Room
	if room == nil {
		return "You do not have an assigned room.", nil
	}
	return fmt.Sprintf("Your room is number %d on floor %d.", room.RoomNumber, room.FloorNumber), nil
}

// SurgeonDetails names the surgeon assigned to the patient.
func (s *Service) SurgeonDetails(ctx context.Context, patientID uuid.UUID) (string, error) {
	patient, err := s.patient(patientID)
	if err != nil {
		return "", err
	}

	surgery := s.store.SurgeryForPatient(patient)
	if surgery == nil {
		return "You do not have an assigned surgeon.", nil
	}
	surgeon := s.store.User(surgery.SurgeonID)
	if surgeon == nil {
		return "You do not have an assigned surgeon.", nil
	}
	return fmt.Sprintf("Your surgeon is %s.", surgeon.Name), nil
}

// SurgeryDetails describes the pending surgery. Completed surgeries are
// reported the same as no surgery at all.
func (s *Service) SurgeryDetails(ctx context.Context, patientID uuid.UUID) (string, error) {
	patient, err := s.patient(patientID)
	if err != nil {
		return "", err
	}

	surgery := s.store.SurgeryForPatient(patient)
	if surgery == nil || surgery.Completed {
		return "You do not have assigned surgery.", nil
	}
	return fmt.Sprintf("Your surgery time is %s.", surgery.ScheduledAt.Format(model.SurgeryTimeFormat)), nil
}

func (s *Service) patient(patientID uuid.UUID) (*model.User, error) {
	patient := s.store.User(patientID)
	if patient == nil || patient.Role != model.RolePatient {
		return nil, apperrors.NewNotFound("patient", nil)
	}
	return patient, nil
}
