package account

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/hospital-admin/internal/hospital"
	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/pkg/auth"
	apperrors "github.com/jwalitptl/hospital-admin/pkg/errors"
)

func newTestService() (*Service, *hospital.Store) {
	store := hospital.NewStore(2, 3)
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	return NewService(store, jwtSvc, time.Hour, nil), store
}

func patientRequest(email string) *model.RegisterPatientRequest {
	return &model.RegisterPatientRequest{
		Name:     "Alice Smith",
		Age:      30,
		Mobile:   "0412345678",
		Email:    email,
		Password: "Passw0rd1",
	}
}

func managerRequest(email string, staffID, floor int) *model.RegisterFloorManagerRequest {
	return &model.RegisterFloorManagerRequest{
		Name:        "Bob Jones",
		Age:         45,
		Mobile:      "0498765432",
		Email:       email,
		Password:    "Passw0rd1",
		StaffID:     staffID,
		FloorNumber: floor,
	}
}

func surgeonRequest(email string, staffID int) *model.RegisterSurgeonRequest {
	return &model.RegisterSurgeonRequest{
		Name:       "Carol White",
		Age:        50,
		Mobile:     "0411111111",
		Email:      email,
		Password:   "Passw0rd1",
		StaffID:    staffID,
		Speciality: model.SpecialityGeneral,
	}
}

func TestRegisterPatient(t *testing.T) {
	svc, store := newTestService()

	user, message, err := svc.RegisterPatient(context.Background(), patientRequest("alice@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith is registered as a patient.", message)
	assert.Equal(t, model.RolePatient, user.Role)
	assert.Len(t, store.Users(), 1)
	assert.True(t, svc.IsEmailRegistered("alice@example.com"))
}

func TestRegisterPatientDuplicateEmail(t *testing.T) {
	svc, store := newTestService()

	_, _, err := svc.RegisterPatient(context.Background(), patientRequest("alice@example.com"))
	require.NoError(t, err)

	_, _, err = svc.RegisterPatient(context.Background(), patientRequest("alice@example.com"))
	assert.True(t, apperrors.Is(err, apperrors.ErrDuplicateEmail))
	assert.Len(t, store.Users(), 1)
}

func TestRegisterFloorManager(t *testing.T) {
	svc, store := newTestService()

	user, message, err := svc.RegisterFloorManager(context.Background(), managerRequest("bob@example.com", 123, 1))
	require.NoError(t, err)
	assert.Equal(t, "Bob Jones is registered as a floor manager.", message)
	require.NotNil(t, user.Staff)
	assert.Equal(t, 1, user.Staff.FloorNumber)

	// The floor side of the binding was made too.
	floor := store.Floor(1)
	require.True(t, floor.HasManager())
	assert.Equal(t, user.ID, *floor.ManagerID)
	assert.False(t, svc.IsFloorAvailable(1))
	assert.True(t, svc.IsFloorAvailable(2))
}

func TestRegisterFloorManagerFloorTaken(t *testing.T) {
	svc, _ := newTestService()

	_, _, err := svc.RegisterFloorManager(context.Background(), managerRequest("bob@example.com", 123, 1))
	require.NoError(t, err)

	_, _, err = svc.RegisterFloorManager(context.Background(), managerRequest("ben@example.com", 124, 1))
	assert.True(t, apperrors.Is(err, apperrors.ErrFloorUnavailable))
}

func TestRegisterFloorManagerUnknownFloor(t *testing.T) {
	svc, _ := newTestService()

	_, _, err := svc.RegisterFloorManager(context.Background(), managerRequest("bob@example.com", 123, 9))
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

func TestRegisterStaffDuplicateStaffID(t *testing.T) {
	svc, _ := newTestService()

	_, _, err := svc.RegisterFloorManager(context.Background(), managerRequest("bob@example.com", 123, 1))
	require.NoError(t, err)
	assert.False(t, svc.IsStaffIDUnique(123))

	_, _, err = svc.RegisterSurgeon(context.Background(), surgeonRequest("carol@example.com", 123))
	assert.True(t, apperrors.Is(err, apperrors.ErrDuplicateStaffID))

	_, _, err = svc.RegisterSurgeon(context.Background(), surgeonRequest("carol@example.com", 456))
	assert.NoError(t, err)
}

func TestAuthenticateAndLogout(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.RegisterPatient(ctx, patientRequest("alice@example.com"))
	require.NoError(t, err)

	result, err := svc.Authenticate(ctx, "alice@example.com", "Passw0rd1")
	require.NoError(t, err)
	assert.Equal(t, "Hello Alice Smith welcome back.", result.Message)
	assert.NotEmpty(t, result.Token)

	user, err := svc.CurrentUser(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	message, err := svc.Logout(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, "Patient Alice Smith has logged out.", message)

	// The session is gone.
	_, err = svc.CurrentUser(result.Token)
	assert.True(t, apperrors.Is(err, apperrors.ErrNoSession))
}

func TestAuthenticateFailures(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, _, err := svc.RegisterPatient(ctx, patientRequest("alice@example.com"))
	require.NoError(t, err)

	// Wrong password and unknown email are indistinguishable outcomes;
	// IsEmailRegistered is the pre-check that tells them apart.
	_, err = svc.Authenticate(ctx, "alice@example.com", "WrongPass1")
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCredentials))

	_, err = svc.Authenticate(ctx, "nobody@example.com", "Passw0rd1")
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCredentials))
	assert.False(t, svc.IsEmailRegistered("nobody@example.com"))
}

func TestLogoutWithoutSession(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Logout(context.Background(), "")
	assert.True(t, apperrors.Is(err, apperrors.ErrNoSession))

	_, err = svc.Logout(context.Background(), "not-a-real-token")
	assert.True(t, apperrors.Is(err, apperrors.ErrNoSession))
}

func TestChangePassword(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	user, _, err := svc.RegisterPatient(ctx, patientRequest("alice@example.com"))
	require.NoError(t, err)

	message, err := svc.ChangePassword(ctx, user.ID, "NewPassw0rd")
	require.NoError(t, err)
	assert.Equal(t, "Password has been changed.", message)

	_, err = svc.Authenticate(ctx, "alice@example.com", "Passw0rd1")
	assert.Error(t, err)
	_, err = svc.Authenticate(ctx, "alice@example.com", "NewPassw0rd")
	assert.NoError(t, err)
}

func TestFloorAvailabilityQueries(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	assert.True(t, svc.AreAnyFloorsAvailable())
	assert.False(t, svc.AreUsersRegistered())

	_, _, err := svc.RegisterFloorManager(ctx, managerRequest("bob@example.com", 123, 1))
	require.NoError(t, err)
	_, _, err = svc.RegisterFloorManager(ctx, managerRequest("ben@example.com", 124, 2))
	require.NoError(t, err)

	assert.False(t, svc.AreAnyFloorsAvailable())
	assert.True(t, svc.AreUsersRegistered())
	assert.False(t, svc.IsFloorAvailable(9))
}

func TestEmailUniquenessAcrossRoles(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	_, _, err := svc.RegisterSurgeon(ctx, surgeonRequest("shared@example.com", 456))
	require.NoError(t, err)

	_, _, err = svc.RegisterPatient(ctx, patientRequest("shared@example.com"))
	assert.True(t, apperrors.Is(err, apperrors.ErrDuplicateEmail))

	// Emails stay pairwise distinct through the service path.
	seen := map[string]bool{}
	for _, u := range store.Users() {
		assert.False(t, seen[u.Email])
		seen[u.Email] = true
	}
}
