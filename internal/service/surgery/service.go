// Package surgery implements the surgeon operations: viewing assigned
// patients, the surgery roster, and performing surgeries.
package surgery

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/hospital-admin/internal/hospital"
	"github.com/jwalitptl/hospital-admin/internal/model"
	apperrors "github.com/jwalitptl/hospital-admin/pkg/errors"
	"github.com/jwalitptl/hospital-admin/pkg/metrics"
)

// ScheduleEntry is one row of a surgeon's roster.
type ScheduleEntry struct {
	PatientID   uuid.UUID `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Completed   bool      `json:"completed"`
}

type Service struct {
	store   *hospital.Store
	metrics *metrics.Metrics
}

func NewService(store *hospital.Store, m *metrics.Metrics) *Service {
	return &Service{store: store, metrics: m}
}

// Patients returns the patients whose scheduled surgery is assigned to
// this surgeon, completed or not, in registration order.
func (s *Service) Patients(ctx context.Context, surgeonID uuid.UUID) ([]*model.User, error) {
	if _, err := s.surgeon(surgeonID); err != nil {
		return nil, err
	}

	var assigned []*model.User
	for _, patient := range s.store.Patients() {
		surgery := s.store.SurgeryForPatient(patient)
		if surgery != nil && surgery.SurgeonID == surgeonID {
			assigned = append(assigned, patient)
		}
	}
	return assigned, nil
}

// Schedule returns the surgeon's roster sorted ascending by surgery
// datetime.
func (s *Service) Schedule(ctx context.Context, surgeonID uuid.UUID) ([]ScheduleEntry, error) {
	patients, err := s.Patients(ctx, surgeonID)
	if err != nil {
		return nil, err
	}

	var entries []ScheduleEntry
	for _, patient := range patients {
		surgery := s.store.SurgeryForPatient(patient)
		entries = append(entries, ScheduleEntry{
			PatientID:   patient.ID,
			PatientName: patient.Name,
			ScheduledAt: surgery.ScheduledAt,
			Completed:   surgery.Completed,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ScheduledAt.Before(entries[j].ScheduledAt)
	})
	return entries, nil
}

// Perform marks the patient's scheduled surgery as completed. A patient
// without a schedule is an explicit precondition violation, and a
// surgeon cannot complete another surgeon's booking. Completion is
// monotonic; performing an already-completed surgery is rejected.
func (s *Service) Perform(ctx context.Context, surgeonID, patientID uuid.UUID) (string, error) {
	surgeon, err := s.surgeon(surgeonID)
	if err != nil {
		return "", err
	}

	patient := s.store.User(patientID)
	if patient == nil || patient.Role != model.RolePatient {
		return "", apperrors.NewNotFound("patient", nil)
	}

	surgery := s.store.SurgeryForPatient(patient)
	if surgery == nil {
		return "", apperrors.New(apperrors.ErrNotScheduled, "patient has no scheduled surgery")
	}
	if surgery.SurgeonID != surgeonID {
		return "", apperrors.Forbidden("surgery is assigned to another surgeon")
	}
	if surgery.Completed {
		return "", apperrors.New(apperrors.ErrNotScheduled, "surgery has already been performed")
	}

	surgery.Complete()
	if s.metrics != nil {
		s.metrics.SurgeriesCompleted.Inc()
	}

	return fmt.Sprintf("Surgery performed on %s by %s.", patient.Name, surgeon.Name), nil
}

func (s *Service) surgeon(surgeonID uuid.UUID) (*model.User, error) {
	surgeon := s.store.User(surgeonID)
	if surgeon == nil || surgeon.Role != model.RoleSurgeon {
		return nil, apperrors.Forbidden("only surgeons can perform this operation")
	}
	return surgeon, nil
}
