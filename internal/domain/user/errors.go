package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrStudentRoleRequired   = errors.New("only students can punch attendance")
	ErrForbiddenTraineeEdits = errors.New("not allowed to edit this trainee's attendance")
)
