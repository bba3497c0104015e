package user

// Actor identifies who is performing an operation. It is built once at the
// HTTP boundary from the verified token and passed explicitly into every
// service call; there is no ambient current-user state.
type Actor struct {
	UserID    string
	TraineeID string // Empty for staff without a trainee identity
	CourseID  string
	Role      Role
}

func (a Actor) IsStudent() bool {
	return a.Role == RoleStudent
}

func (a Actor) IsStaff() bool {
	return a.Role == RoleTeacher || a.Role == RoleAdmin
}
