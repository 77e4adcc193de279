// Package hospital holds the in-memory aggregate all other entities are
// reachable through. The store is deliberately passive: it appends and
// looks up, and leaves every cross-entity invariant to its callers.
package hospital

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jwalitptl/hospital-admin/internal/model"
)

// Store is the single long-lived store. Floors are materialized at
// construction and never change shape; users and surgeries are
// append-only.
type Store struct {
	mu        sync.RWMutex
	floors    []*model.Floor
	users     []*model.User
	usersByID map[uuid.UUID]*model.User
	surgeries []*model.SurgerySchedule
	surgByID  map[uuid.UUID]*model.SurgerySchedule
}

// NewStore builds a hospital with numFloors floors of roomsPerFloor
// rooms each, numbered sequentially from 1.
func NewStore(numFloors, roomsPerFloor int) *Store {
	s := &Store{
		usersByID: make(map[uuid.UUID]*model.User),
		surgByID:  make(map[uuid.UUID]*model.SurgerySchedule),
	}
	for i := 1; i <= numFloors; i++ {
		s.floors = append(s.floors, model.NewFloor(i, roomsPerFloor))
	}
	return s
}

// AddUser appends unconditionally. Uniqueness is the caller's
// responsibility.
func (s *Store) AddUser(user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
	s.usersByID[user.ID] = user
}

// Users returns all registered users in registration order.
func (s *Store) Users() []*model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.User, len(s.users))
	copy(out, s.users)
	return out
}

// User returns the user with the given ID, or nil.
func (s *Store) User(id uuid.UUID) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usersByID[id]
}

// UserByEmail returns the first user registered with email, or nil.
func (s *Store) UserByEmail(email string) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

// Patients returns all patient users in registration order.
func (s *Store) Patients() []*model.User {
	return s.usersWithRole(model.RolePatient)
}

// Surgeons returns all surgeon users in registration order.
func (s *Store) Surgeons() []*model.User {
	return s.usersWithRole(model.RoleSurgeon)
}

func (s *Store) usersWithRole(role model.Role) []*model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*model.User
	for _, u := range s.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

// Floors exposes the fixed floor list.
func (s *Store) Floors() []*model.Floor {
	return s.floors
}

// Floor returns the floor with the given number, or nil.
func (s *Store) Floor(floorNumber int) *model.Floor {
	for _, f := range s.floors {
		if f.FloorNumber == floorNumber {
			return f
		}
	}
	return nil
}

// AddScheduledSurgery appends a surgery schedule.
func (s *Store) AddScheduledSurgery(surgery *model.SurgerySchedule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.surgeries = append(s.surgeries, surgery)
	s.surgByID[surgery.ID] = surgery
}

// Surgery returns the schedule with the given ID, or nil.
func (s *Store) Surgery(id uuid.UUID) *model.SurgerySchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.surgByID[id]
}

// ScheduledSurgeries returns every schedule ever created.
func (s *Store) ScheduledSurgeries() []*model.SurgerySchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.SurgerySchedule, len(s.surgeries))
	copy(out, s.surgeries)
	return out
}

// SurgeryForPatient resolves a patient's scheduled surgery, or nil when
// none is linked.
func (s *Store) SurgeryForPatient(patient *model.User) *model.SurgerySchedule {
	if patient == nil || patient.Patient == nil || patient.Patient.SurgeryID == nil {
		return nil
	}
	return s.Surgery(*patient.Patient.SurgeryID)
}
