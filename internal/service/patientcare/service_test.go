package patientcare

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

func newFixture() (*Service, *hospital.Store, *model.User) {
	store := hospital.NewStore(1, 2)
	patient := model.NewPatient("Alice Smith", 30, "0412345678", "alice@example.com", "Passw0rd1")
	store.AddUser(patient)
	return NewService(store, nil), store, patient
}

func scheduleFor(store *hospital.Store, patient *model.User) *model.SurgerySchedule {
	surgeon := model.NewSurgeon("Carol White", 50, "0411111111", "carol@example.com", "Passw0rd1", 456, model.SpecialityGeneral)
	store.AddUser(surgeon)
	surgery := model.NewSurgerySchedule(patient.ID, surgeon.ID, time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC))
	store.AddScheduledSurgery(surgery)
	patient.Patient.SurgeryID = &surgery.ID
	return surgery
}

func TestCheckInOrOutToggles(t *testing.T) {
	svc, _, patient := newFixture()
	ctx := context.Background()

	message, err := svc.CheckInOrOut(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Patient Alice Smith has been checked in.", message)
	assert.True(t, patient.Patient.CheckedIn)

	// A checked-in patient with no surgery cannot leave.
	_, err = svc.CheckInOrOut(ctx, patient.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrCheckBlocked))
	assert.True(t, patient.Patient.CheckedIn)
}

func TestCheckOutAfterCompletedSurgery(t *testing.T) {
	svc, store, patient := newFixture()
	ctx := context.Background()

	patient.Patient.CheckedIn = true
	surgery := scheduleFor(store, patient)

	// Pending surgery still blocks check-out.
	_, err := svc.CheckInOrOut(ctx, patient.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrCheckBlocked))

	surgery.Complete()
	message, err := svc.CheckInOrOut(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Patient Alice Smith has been checked out.", message)
	assert.False(t, patient.Patient.CheckedIn)

	// Completed surgery locks out any further check-in.
	_, err = svc.CheckInOrOut(ctx, patient.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrCheckBlocked))
	assert.False(t, patient.Patient.CheckedIn)
}

func TestCheckInOrOutUnknownPatient(t *testing.T) {
	svc, store, _ := newFixture()
	surgeon := model.NewSurgeon("Carol White", 50, "0411111111", "carol@example.com", "Passw0rd1", 456, model.SpecialityGeneral)
	store.AddUser(surgeon)

	_, err := svc.CheckInOrOut(context.Background(), surgeon.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestRoomDetails(t *testing.T) {
	svc, _, patient := newFixture()
	ctx := context.Background()

	message, err := svc.RoomDetails(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "You do not have an assigned room.", message)

	patient.Patient.Room = &model.RoomRef{FloorNumber: 1, RoomNumber: 2}
	message, err = svc.RoomDetails(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Your room is number 2 on floor 1.", message)
}

func TestSurgeonDetails(t *testing.T) {
	svc, store, patient := newFixture()
	ctx := context.Background()

	message, err := svc.SurgeonDetails(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "You do not have an assigned surgeon.", message)

	scheduleFor(store, patient)
	message, err = svc.SurgeonDetails(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Your surgeon is Carol White.", message)
}

func TestSurgeryDetails(t *testing.T) {
	svc, store, patient := newFixture()
	ctx := context.Background()

	message, err := svc.SurgeryDetails(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "You do not have assigned surgery.", message)

	surgery := scheduleFor(store, patient)
	message, err = svc.SurgeryDetails(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Your surgery time is 10:30 14/09/2026.", message)

	// A completed surgery reads the same as none.
	surgery.Complete()
	message, err = svc.SurgeryDetails(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "You do not have assigned surgery.", message)
}
