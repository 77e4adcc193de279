package model

import "time"

// LoginRequest carries the credentials for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterPatientRequest carries patient registration parameters.
type RegisterPatientRequest struct {
	Name     string `json:"name" binding:"required,person_name"`
	Age      int    `json:"age" binding:"required,gte=1,lte=130"`
	Mobile   string `json:"mobile" binding:"required,au_mobile"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,password_complexity"`
}

// RegisterFloorManagerRequest carries floor manager registration
// parameters. StaffID range is a convention of the validation layer.
type RegisterFloorManagerRequest struct {
	Name        string `json:"name" binding:"required,person_name"`
	Age         int    `json:"age" binding:"required,gte=1,lte=130"`
	Mobile      string `json:"mobile" binding:"required,au_mobile"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,password_complexity"`
	StaffID     int    `json:"staff_id" binding:"required,min=100,max=999"`
	FloorNumber int    `json:"floor_number" binding:"required,gt=0"`
}

// RegisterSurgeonRequest carries surgeon registration parameters.
type RegisterSurgeonRequest struct {
	Name       string     `json:"name" binding:"required,person_name"`
	Age        int        `json:"age" binding:"required,gte=1,lte=130"`
	Mobile     string     `json:"mobile" binding:"required,au_mobile"`
	Email      string     `json:"email" binding:"required,email"`
	Password   string     `json:"password" binding:"required,password_complexity"`
	StaffID    int        `json:"staff_id" binding:"required,min=100,max=999"`
	Speciality Speciality `json:"speciality" binding:"required,speciality"`
}

// ChangePasswordRequest carries a password change.
type ChangePasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,password_complexity"`
}

// AssignRoomRequest assigns a patient to a room on the manager's floor.
type AssignRoomRequest struct {
	PatientID  string `json:"patient_id" binding:"required,uuid"`
	RoomNumber int    `json:"room_number" binding:"required,gt=0"`
}

// UnassignRoomRequest frees a patient's room.
type UnassignRoomRequest struct {
	PatientID string `json:"patient_id" binding:"required,uuid"`
}

// ScheduleSurgeryRequest books a surgeon for a patient.
type ScheduleSurgeryRequest struct {
	PatientID   string    `json:"patient_id" binding:"required,uuid"`
	SurgeonID   string    `json:"surgeon_id" binding:"required,uuid"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
}

// PerformSurgeryRequest marks a patient's surgery as completed.
type PerformSurgeryRequest struct {
	PatientID string `json:"patient_id" binding:"required,uuid"`
}
