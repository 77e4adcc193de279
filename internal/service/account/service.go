// Package account is the gatekeeper for every mutation that has to
// satisfy a cross-entity invariant: registration uniqueness, floor
// availability, and the session lifecycle.
package account

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/jwalitptl/hospital-admin/internal/hospital"
	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/pkg/auth"
	apperrors "github.com/jwalitptl/hospital-admin/pkg/errors"
	"github.com/jwalitptl/hospital-admin/pkg/metrics"
)

// AuthResult is the outcome of a successful authentication.
type AuthResult struct {
	Token   string      `json:"token"`
	Message string      `json:"message"`
	User    *model.User `json:"user"`
}

type Service struct {
	store    *hospital.Store
	jwtSvc   auth.JWTService
	sessions *cache.Cache
	metrics  *metrics.Metrics

	// Serializes registrations so uniqueness checks and inserts are one
	// critical section. The query helpers below remain available to
	// callers that want to pre-validate, but correctness does not
	// depend on them.
	regMu sync.Mutex
}

func NewService(store *hospital.Store, jwtSvc auth.JWTService, sessionTTL time.Duration, m *metrics.Metrics) *Service {
	return &Service{
		store:    store,
		jwtSvc:   jwtSvc,
		sessions: cache.New(sessionTTL, 2*sessionTTL),
		metrics:  m,
	}
}

// Authenticate looks the user up by email and compares passwords. An
// unknown email and a wrong password both come back as invalid
// credentials; IsEmailRegistered is the pre-check for callers that want
// to tell the two apart.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	user := s.store.UserByEmail(email)
	if user == nil || user.Password != password {
		if s.metrics != nil {
			s.metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return nil, apperrors.New(apperrors.ErrInvalidCredentials, "invalid credentials")
	}

	token, err := s.jwtSvc.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	s.sessions.SetDefault(token, user.ID)
	if s.metrics != nil {
		s.metrics.LoginsTotal.WithLabelValues("success").Inc()
		s.metrics.ActiveSessions.Set(float64(s.sessions.ItemCount()))
	}

	return &AuthResult{
		Token:   token,
		Message: fmt.Sprintf("Hello %s welcome back.", user.Name),
		User:    user,
	}, nil
}

// Logout ends the session held by token. The departing user's role
// label and name are captured into the message before the session is
// dropped.
func (s *Service) Logout(ctx context.Context, token string) (string, error) {
	user, err := s.CurrentUser(token)
	if err != nil {
		return "", err
	}

	s.sessions.Delete(token)
	if s.metrics != nil {
		s.metrics.ActiveSessions.Set(float64(s.sessions.ItemCount()))
	}

	return fmt.Sprintf("%s %s has logged out.", user.Role.Label(), user.Name), nil
}

// CurrentUser resolves the session token to its user. Returns a
// no-session error when the token is unknown, expired or forged.
func (s *Service) CurrentUser(token string) (*model.User, error) {
	if token == "" {
		return nil, apperrors.New(apperrors.ErrNoSession, "no active session")
	}
	if _, err := s.jwtSvc.ValidateToken(token); err != nil {
		return nil, apperrors.New(apperrors.ErrNoSession, "no active session")
	}

	raw, found := s.sessions.Get(token)
	if !found {
		return nil, apperrors.New(apperrors.ErrNoSession, "no active session")
	}
	userID, ok := raw.(uuid.UUID)
	if !ok {
		return nil, apperrors.New(apperrors.ErrNoSession, "no active session")
	}

	user := s.store.User(userID)
	if user == nil {
		return nil, apperrors.New(apperrors.ErrNoSession, "no active session")
	}
	return user, nil
}

// RegisterPatient registers a new patient.
func (s *Service) RegisterPatient(ctx context.Context, req *model.RegisterPatientRequest) (*model.User, string, error) {
	s.regMu.Lock()
	defer s.regMu.Unlock()

	if s.IsEmailRegistered(req.Email) {
		return nil, "", apperrors.New(apperrors.ErrDuplicateEmail, "email is already registered")
	}

	patient := model.NewPatient(req.Name, req.Age, req.Mobile, req.Email, req.Password)
	s.store.AddUser(patient)
	if s.metrics != nil {
		s.metrics.RegistrationsTotal.WithLabelValues(string(model.RolePatient)).Inc()
	}

	return patient, fmt.Sprintf("%s is registered as a patient.", patient.Name), nil
}

// RegisterFloorManager registers a new floor manager bound to the
// requested floor. The floor's one-manager invariant is enforced here,
// in the same critical section as the uniqueness checks.
func (s *Service) RegisterFloorManager(ctx context.Context, req *model.RegisterFloorManagerRequest) (*model.User, string, error) {
	s.regMu.Lock()
	defer s.regMu.Unlock()

	if s.IsEmailRegistered(req.Email) {
		return nil, "", apperrors.New(apperrors.ErrDuplicateEmail, "email is already registered")
	}
	if !s.IsStaffIDUnique(req.StaffID) {
		return nil, "", apperrors.New(apperrors.ErrDuplicateStaffID, "staff ID is already registered")
	}

	floor := s.store.Floor(req.FloorNumber)
	if floor == nil {
		return nil, "", apperrors.NewNotFound("floor", nil)
	}

	manager := model.NewFloorManager(req.Name, req.Age, req.Mobile, req.Email, req.Password, req.StaffID, req.FloorNumber)
	if !floor.AssignManager(manager.ID) {
		return nil, "", apperrors.New(apperrors.ErrFloorUnavailable, "floor already has an assigned manager")
	}
	s.store.AddUser(manager)
	if s.metrics != nil {
		s.metrics.RegistrationsTotal.WithLabelValues(string(model.RoleFloorManager)).Inc()
	}

	return manager, fmt.Sprintf("%s is registered as a floor manager.", manager.Name), nil
}

// RegisterSurgeon registers a new surgeon.
func (s *Service) RegisterSurgeon(ctx context.Context, req *model.RegisterSurgeonRequest) (*model.User, string, error) {
	s.regMu.Lock()
	defer s.regMu.Unlock()

	if s.IsEmailRegistered(req.Email) {
		return nil, "", apperrors.New(apperrors.ErrDuplicateEmail, "email is already registered")
	}
	if !s.IsStaffIDUnique(req.StaffID) {
		return nil, "", apperrors.New(apperrors.ErrDuplicateStaffID, "staff ID is already registered")
	}

	surgeon := model.NewSurgeon(req.Name, req.Age, req.Mobile, req.Email, req.Password, req.StaffID, req.Speciality)
	s.store.AddUser(surgeon)
	if s.metrics != nil {
		s.metrics.RegistrationsTotal.WithLabelValues(string(model.RoleSurgeon)).Inc()
	}

	return surgeon, fmt.Sprintf("%s is registered as a surgeon.", surgeon.Name), nil
}

// ChangePassword updates the only mutable identity field.
func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, newPassword string) (string, error) {
	user := s.store.User(userID)
	if user == nil {
		return "", apperrors.NewNotFound("user", nil)
	}
	user.ChangePassword(newPassword)
	return "Password has been changed.", nil
}

// Query helpers: pure reads over the hospital's current state, exposed
// so callers can pre-validate before registering or assigning.

func (s *Service) IsEmailRegistered(email string) bool {
	return s.store.UserByEmail(email) != nil
}

func (s *Service) IsStaffIDUnique(staffID int) bool {
	for _, u := range s.store.Users() {
		if u.Staff != nil && u.Staff.StaffID == staffID {
			return false
		}
	}
	return true
}

func (s *Service) AreUsersRegistered() bool {
	return len(s.store.Users()) > 0
}

func (s *Service) AreAnyFloorsAvailable() bool {
	for _, f := range s.store.Floors() {
		if !f.HasManager() {
			return true
		}
	}
	return false
}

func (s *Service) IsFloorAvailable(floorNumber int) bool {
	f := s.store.Floor(floorNumber)
	return f != nil && !f.HasManager()
}

func (s *Service) Floor(floorNumber int) *model.Floor {
	return s.store.Floor(floorNumber)
}

func (s *Service) Floors() []*model.Floor {
	return s.store.Floors()
}

func (s *Service) Patients() []*model.User {
	return s.store.Patients()
}

func (s *Service) Surgeons() []*model.User {
	return s.store.Surgeons()
}
