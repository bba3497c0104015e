package user

import "time"

type Role string

const (
	RoleStudent Role = "student" // Trainee entering their own attendance
	RoleTeacher Role = "teacher" // Instructor, may edit on a trainee's behalf
	RoleAdmin   Role = "admin"   // Institution staff
)

type User struct {
	ID           string
	TraineeID    *string // Set for students; the attendance owner key
	CourseID     *string
	LoginID      string
	Name         string
	PasswordHash string
	Role         Role
	LeaveDate    *time.Time // Set when the trainee withdrew mid-course
	DeleteFlag   int16
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsStudent checks if the user is a trainee.
func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}
