package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role identifies the user variant. The set is closed: every user is
// exactly one of these, fixed at registration.
type Role string

const (
	RolePatient      Role = "patient"
	RoleFloorManager Role = "floor_manager"
	RoleSurgeon      Role = "surgeon"
)

// Label returns the human-readable role name used in messages.
func (r Role) Label() string {
	switch r {
	case RolePatient:
		return "Patient"
	case RoleFloorManager:
		return "Floor manager"
	case RoleSurgeon:
		return "Surgeon"
	default:
		return "???"
	}
}

// Speciality is a surgeon speciality from the fixed set.
type Speciality string

const (
	SpecialityGeneral        Speciality = "General Surgeon"
	SpecialityOrthopaedic    Speciality = "Orthopaedic Surgeon"
	SpecialityCardiothoracic Speciality = "Cardiothoracic Surgeon"
	SpecialityNeurosurgeon   Speciality = "Neurosurgeon"
)

// Base contains common fields for all models
type Base struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// User is a registered hospital user. Instead of an inheritance chain,
// the variant is a tag (Role) with a payload per variant: Staff is set
// for floor managers and surgeons, Patient for patients. All identity
// fields are immutable after registration except Password.
type User struct {
	Base
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"-"` // stored in the clear, known limitation
	Role     Role   `json:"role"`

	Staff   *StaffInfo    `json:"staff,omitempty"`
	Patient *PatientState `json:"patient,omitempty"`
}

// StaffInfo is the staff payload. FloorNumber is meaningful only for
// floor managers, Speciality only for surgeons.
type StaffInfo struct {
	StaffID     int        `json:"staff_id"`
	FloorNumber int        `json:"floor_number,omitempty"`
	Speciality  Speciality `json:"speciality,omitempty"`
}

// NewPatient constructs a patient user.
func NewPatient(name string, age int, mobile, email, password string) *User {
	return &User{
		Base:     newBase(),
		Name:     name,
		Age:      age,
		Email:    email,
		Mobile:   mobile,
		Password: password,
		Role:     RolePatient,
		Patient:  &PatientState{},
	}
}

// NewFloorManager constructs a floor manager bound to floorNumber. The
// floor side of the binding is the caller's job (Floor.AssignManager).
func NewFloorManager(name string, age int, mobile, email, password string, staffID, floorNumber int) *User {
	return &User{
		Base:     newBase(),
		Name:     name,
		Age:      age,
		Email:    email,
		Mobile:   mobile,
		Password: password,
		Role:     RoleFloorManager,
		Staff:    &StaffInfo{StaffID: staffID, FloorNumber: floorNumber},
	}
}

// NewSurgeon constructs a surgeon user.
func NewSurgeon(name string, age int, mobile, email, password string, staffID int, speciality Speciality) *User {
	return &User{
		Base:     newBase(),
		Name:     name,
		Age:      age,
		Email:    email,
		Mobile:   mobile,
		Password: password,
		Role:     RoleSurgeon,
		Staff:    &StaffInfo{StaffID: staffID, Speciality: speciality},
	}
}

func newBase() Base {
	now := time.Now()
	return Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
}

// ChangePassword is the only mutation allowed on identity fields.
func (u *User) ChangePassword(newPassword string) {
	u.Password = newPassword
	u.UpdatedAt = time.Now()
}

// Details returns the user's profile lines, dispatching on the role tag.
func (u *User) Details() []string {
	details := []string{
		"Your details.",
		fmt.Sprintf("Name: %s", u.Name),
		fmt.Sprintf("Age: %d", u.Age),
		fmt.Sprintf("Mobile phone: %s", u.Mobile),
		fmt.Sprintf("Email: %s", u.Email),
	}

	switch u.Role {
	case RoleFloorManager:
		details = append(details,
			fmt.Sprintf("Staff ID: %d", u.Staff.StaffID),
			fmt.Sprintf("Floor: %d.", u.Staff.FloorNumber))
	case RoleSurgeon:
		details = append(details,
			fmt.Sprintf("Staff ID: %d", u.Staff.StaffID),
			fmt.Sprintf("Speciality: %s", u.Staff.Speciality))
	}

	return details
}
