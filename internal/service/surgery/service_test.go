package surgery

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/hospital-admin/internal/hospital"
	"github.com/jwalitptl/hospital-admin/internal/model"
	apperrors "github.com/jwalitptl/hospital-admin/pkg/errors"
)

type fixture struct {
	svc     *Service
	store   *hospital.Store
	surgeon *model.User
}

func newFixture() *fixture {
	store := hospital.NewStore(1, 3)
	surgeon := model.NewSurgeon("Carol White", 50, "0411111111", "carol@example.com", "Passw0rd1", 456, model.SpecialityGeneral)
	store.AddUser(surgeon)
	return &fixture{svc: NewService(store, nil), store: store, surgeon: surgeon}
}

func (f *fixture) addPatient(name, email string) *model.User {
	patient := model.NewPatient(name, 30, "0412345678", email, "Passw0rd1")
	f.store.AddUser(patient)
	return patient
}

func (f *fixture) schedule(patient *model.User, at time.Time) *model.SurgerySchedule {
	surgery := model.NewSurgerySchedule(patient.ID, f.surgeon.ID, at)
	f.store.AddScheduledSurgery(surgery)
	patient.Patient.SurgeryID = &surgery.ID
	return surgery
}

func TestPatientsFiltersBySurgeon(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	mine := f.addPatient("Alice Smith", "alice@example.com")
	f.schedule(mine, time.Now().Add(time.Hour))

	// A patient with no surgery and a patient booked with another
	// surgeon are both excluded.
	f.addPatient("Cathy Green", "cathy@example.com")
	other := f.addPatient("Dan Brown", "dan@example.com")
	otherSurgeon := model.NewSurgeon("Eve Black", 40, "0422222222", "eve@example.com", "Passw0rd1", 457, model.SpecialityNeurosurgeon)
	f.store.AddUser(otherSurgeon)
	surgery := model.NewSurgerySchedule(other.ID, otherSurgeon.ID, time.Now().Add(time.Hour))
	f.store.AddScheduledSurgery(surgery)
	other.Patient.SurgeryID = &surgery.ID

	patients, err := f.svc.Patients(ctx, f.surgeon.ID)
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, mine, patients[0])

	// Completed surgeries keep the patient on the list.
	f.store.SurgeryForPatient(mine).Complete()
	patients, err = f.svc.Patients(ctx, f.surgeon.ID)
	require.NoError(t, err)
	assert.Len(t, patients, 1)
}

func TestScheduleSortedByTime(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	base := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	late := f.addPatient("Alice Smith", "alice@example.com")
	f.schedule(late, base.Add(48*time.Hour))
	early := f.addPatient("Cathy Green", "cathy@example.com")
	f.schedule(early, base)
	middle := f.addPatient("Dan Brown", "dan@example.com")
	f.schedule(middle, base.Add(24*time.Hour))

	entries, err := f.svc.Schedule(ctx, f.surgeon.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Cathy Green", entries[0].PatientName)
	assert.Equal(t, "Dan Brown", entries[1].PatientName)
	assert.Equal(t, "Alice Smith", entries[2].PatientName)
	assert.True(t, entries[0].ScheduledAt.Before(entries[1].ScheduledAt))
}

func TestPerformSurgery(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	patient := f.addPatient("Alice Smith", "alice@example.com")
	surgery := f.schedule(patient, time.Now().Add(time.Hour))

	message, err := f.svc.Perform(ctx, f.surgeon.ID, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Surgery performed on Alice Smith by Carol White.", message)
	assert.True(t, surgery.Completed)

	// Completion is one-way; a second attempt is rejected.
	_, err = f.svc.Perform(ctx, f.surgeon.ID, patient.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotScheduled))
	assert.True(t, surgery.Completed)
}

func TestPerformSurgeryWithoutSchedule(t *testing.T) {
	f := newFixture()
	patient := f.addPatient("Alice Smith", "alice@example.com")

	_, err := f.svc.Perform(context.Background(), f.surgeon.ID, patient.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotScheduled))
}

func TestPerformSurgeryForAnotherSurgeon(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	patient := f.addPatient("Alice Smith", "alice@example.com")
	otherSurgeon := model.NewSurgeon("Eve Black", 40, "0422222222", "eve@example.com", "Passw0rd1", 457, model.SpecialityNeurosurgeon)
	f.store.AddUser(otherSurgeon)
	surgery := model.NewSurgerySchedule(patient.ID, otherSurgeon.ID, time.Now().Add(time.Hour))
	f.store.AddScheduledSurgery(surgery)
	patient.Patient.SurgeryID = &surgery.ID

	_, err := f.svc.Perform(ctx, f.surgeon.ID, patient.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrForbidden))
	assert.False(t, surgery.Completed)
}

func TestOperationsRequireSurgeon(t *testing.T) {
	f := newFixture()
	patient := f.addPatient("Alice Smith", "alice@example.com")

	_, err := f.svc.Patients(context.Background(), patient.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrForbidden))

	_, err = f.svc.Perform(context.Background(), patient.ID, patient.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrForbidden))
}
